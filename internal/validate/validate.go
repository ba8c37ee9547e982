package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/text/language"

	"github.com/mkvet/mkvet/internal/domain"
	"github.com/mkvet/mkvet/internal/logger"
	"github.com/mkvet/mkvet/internal/registry"
)

// Report is the outcome of one validation run.
type Report struct {
	// RunID tags the run in logs and API responses.
	RunID string

	StartedAt time.Time
	Duration  time.Duration

	// Checked counts every file reference that was resolved against disk.
	Checked int

	// Missing lists the referenced paths that do not exist, relative to the
	// docs root, sorted. Exactly the misses: a path appears here if and only
	// if it did not resolve.
	Missing []string

	err error
}

// Err returns the aggregated failure of the run, nil when the
// configuration is fully valid.
func (r *Report) Err() error { return r.err }

// OK reports whether the configuration passed every check.
func (r *Report) OK() bool { return r.err == nil }

// Problems flattens the aggregate into individual errors for rendering.
func (r *Report) Problems() []error {
	return multierr.Errors(r.err)
}

// Validator resolves file references against a documentation root.
type Validator struct {
	root string // docs root directory, absolute or relative to the cwd
	log  logger.Logger
}

// New creates a validator rooted at the given docs directory.
func New(root string, log logger.Logger) *Validator {
	return &Validator{
		root: root,
		log:  log,
	}
}

// Run validates cfg in a single pass: every nav leaf, theme asset and extra
// stylesheet/script must resolve to an existing file under the docs root,
// and every plugin and extension name must be known to the renderer.
// All misses are batched; Run never stops at the first problem.
func (v *Validator) Run(cfg *domain.Config) *Report {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	var missing []string
	check := func(relPath string) {
		report.Checked++
		if !v.fileExists(relPath) {
			missing = append(missing, relPath)
		}
	}

	domain.WalkLeaves(cfg.Nav, func(leaf domain.Leaf) {
		check(leaf.Path)
	})

	if cfg.Theme.Logo != "" {
		check(cfg.Theme.Logo)
	}
	if cfg.Theme.Favicon != "" {
		check(cfg.Theme.Favicon)
	}
	for _, path := range cfg.ExtraCSS {
		check(path)
	}
	for _, path := range cfg.ExtraJS {
		check(path)
	}

	if cfg.Theme.CustomDir != "" {
		report.Checked++
		if !v.dirExists(cfg.Theme.CustomDir) {
			missing = append(missing, cfg.Theme.CustomDir)
		}
	}

	var errs error
	if len(missing) > 0 {
		sort.Strings(missing)
		report.Missing = missing
		errs = multierr.Append(errs, &domain.MissingFileError{Paths: missing})
	}

	for _, ext := range cfg.Extensions {
		if err := registry.ResolveExtension(ext.Name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	for _, plugin := range cfg.Plugins {
		if _, err := registry.ResolvePlugin(plugin.Name); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if plugin.Name == "i18n" {
			errs = multierr.Append(errs, validateI18n(plugin))
		}
	}

	report.err = errs
	report.Duration = time.Since(report.StartedAt)

	v.log.Info("validation run finished",
		logger.String("run_id", report.RunID),
		logger.Int("checked", report.Checked),
		logger.Int("missing", len(report.Missing)),
		logger.Bool("ok", report.OK()),
		logger.Duration("duration", report.Duration))

	return report
}

func (v *Validator) fileExists(relPath string) bool {
	info, err := os.Stat(filepath.Join(v.root, filepath.FromSlash(relPath)))
	return err == nil && !info.IsDir()
}

func (v *Validator) dirExists(relPath string) bool {
	info, err := os.Stat(filepath.Join(v.root, filepath.FromSlash(relPath)))
	return err == nil && info.IsDir()
}

// validateI18n checks the i18n plugin's language declarations: the default
// language and every per-language locale must be well-formed BCP 47 tags.
func validateI18n(plugin domain.Plugin) error {
	var errs error

	if def := domain.StringOption(plugin.Options, "default_language"); def != "" {
		if _, err := language.Parse(def); err != nil {
			errs = multierr.Append(errs,
				fmt.Errorf("i18n default_language %q: %w", def, err))
		}
	}

	languages, ok := plugin.Options["languages"].([]interface{})
	if !ok {
		return errs
	}
	for _, entry := range languages {
		m, ok := entry.(map[string]interface{})
		if !ok {
			errs = multierr.Append(errs,
				fmt.Errorf("i18n languages entries must be mappings"))
			continue
		}
		locale := domain.StringOption(m, "locale")
		if locale == "" {
			errs = multierr.Append(errs,
				fmt.Errorf("i18n language entry is missing a locale"))
			continue
		}
		if _, err := language.Parse(locale); err != nil {
			errs = multierr.Append(errs,
				fmt.Errorf("i18n locale %q: %w", locale, err))
		}
	}
	return errs
}
