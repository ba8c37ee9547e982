package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkvet/mkvet/internal/schema"
)

func newDumpCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Parse the site configuration and re-serialize it to stdout",
		Long: `Parse the configuration document into the typed model and write it back
as YAML. Loading the output again yields an identical in-memory
configuration, which makes dump useful for normalizing hand-edited
documents and for diffing configuration changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := toolConfig(*configFlag)

			site, err := schema.NewLoader(cfg.ConfigFile).Load()
			if err != nil {
				return err
			}

			data, err := schema.Encode(site)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
