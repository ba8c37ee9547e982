package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkvet/mkvet/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mkvet %s (commit=%s, built=%s, %s)\n",
				version.Version, version.Commit, version.BuildDate, version.GoVersion)
		},
	}
}
