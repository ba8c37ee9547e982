package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkvet/mkvet/internal/registry"
)

func newRegistryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "List the plugins and markdown extensions the renderer recognizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "plugins:")
			for _, name := range registry.PluginNames() {
				handle, err := registry.ResolvePlugin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-12s %s\n", handle.Name, handle.Description)
			}

			fmt.Fprintln(out, "markdown extensions:")
			for _, name := range registry.ExtensionNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}
	return cmd
}
