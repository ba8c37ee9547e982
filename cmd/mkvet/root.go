package main

import (
	"github.com/spf13/cobra"

	"github.com/mkvet/mkvet/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "mkvet",
		Short:         "Load, validate and preview documentation site configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"Path to the site configuration document (default mkdocs.yml)")

	rootCmd.AddCommand(newCheckCommand(&configFlag))
	rootCmd.AddCommand(newDumpCommand(&configFlag))
	rootCmd.AddCommand(newServeCommand(&configFlag))
	rootCmd.AddCommand(newRegistryCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// toolConfig merges the environment config with the --config flag.
func toolConfig(configFlag string) *config.Config {
	cfg := config.Load()
	if configFlag != "" {
		cfg.ConfigFile = configFlag
	}
	return cfg
}
