package main

import (
	"github.com/spf13/cobra"

	"github.com/mkvet/mkvet/internal/app"
	"github.com/mkvet/mkvet/internal/logger"
)

func newServeCommand(configFlag *string) *cobra.Command {
	var listenFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the documentation tree locally and revalidate on change",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := toolConfig(*configFlag)
			if listenFlag != "" {
				cfg.ListenAddr = listenFlag
			}

			log := logger.New(cfg.LogLevel, cfg.PrettyLog)
			defer func() { _ = log.Sync() }()

			a, err := app.New(cfg, log)
			if err != nil {
				return err
			}
			return a.Run()
		},
	}

	cmd.Flags().StringVarP(&listenFlag, "listen", "l", "",
		"Listen address for the preview server (default :8000)")

	return cmd
}
