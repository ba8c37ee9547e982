package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mkvet/mkvet/internal/domain"
	"github.com/mkvet/mkvet/internal/logger"
	"github.com/mkvet/mkvet/internal/schema"
	"github.com/mkvet/mkvet/internal/validate"
)

func newCheckCommand(configFlag *string) *cobra.Command {
	var docsDirFlag string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load the site configuration and verify every referenced file exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, *configFlag, docsDirFlag)
		},
	}

	cmd.Flags().StringVar(&docsDirFlag, "docs-dir", "",
		"Override the documentation root (default: docs_dir from the document)")

	return cmd
}

func runCheck(cmd *cobra.Command, configFlag, docsDirFlag string) error {
	cfg := toolConfig(configFlag)
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	site, err := schema.NewLoader(cfg.ConfigFile).Load()
	if err != nil {
		return err
	}

	docRoot := filepath.Join(filepath.Dir(cfg.ConfigFile), site.DocsDir)
	if docsDirFlag != "" {
		docRoot = docsDirFlag
	}

	report := validate.New(docRoot, log).Run(site)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "site: %s\n", site.Site.Name)
	fmt.Fprintf(out, "pages: %d, plugins: %d, extensions: %d, checked files: %d\n",
		domain.CountLeaves(site.Nav), len(site.Plugins), len(site.Extensions), report.Checked)

	if report.OK() {
		fmt.Fprintf(out, "✅ configuration is valid (run %s)\n", report.RunID)
		return nil
	}

	rows := problemRows(report)
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Kind", "Detail"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
	))

	return fmt.Errorf("validation failed with %d problem(s)", len(rows))
}

// problemRows flattens a report into table rows, one per individual miss.
func problemRows(report *validate.Report) [][]string {
	var rows [][]string
	add := func(kind, detail string) {
		rows = append(rows, []string{strconv.Itoa(len(rows) + 1), kind, detail})
	}

	for _, problem := range report.Problems() {
		var missingErr *domain.MissingFileError
		var extErr *domain.UnknownExtensionError
		var pluginErr *domain.UnknownPluginError

		switch {
		case errors.As(problem, &missingErr):
			for _, path := range missingErr.Paths {
				add("missing file", path)
			}
		case errors.As(problem, &extErr):
			add("unknown extension", extErr.Name)
		case errors.As(problem, &pluginErr):
			add("unknown plugin", pluginErr.Name)
		default:
			add("invalid", problem.Error())
		}
	}
	return rows
}
