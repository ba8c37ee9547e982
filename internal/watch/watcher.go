package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mkvet/mkvet/internal/domain"
	"github.com/mkvet/mkvet/internal/logger"
	"github.com/mkvet/mkvet/internal/schema"
	"github.com/mkvet/mkvet/internal/state"
	"github.com/mkvet/mkvet/internal/validate"
)

// Watcher polls the configuration document and revalidates it whenever its
// mtime changes. A reload that fails leaves the last good snapshot in place;
// the preview keeps serving while the author fixes the document.
type Watcher struct {
	loader        *schema.Loader
	snapshot      *state.Snapshot
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
	lastMod       time.Time
}

// NewWatcher creates a watcher for the document behind loader.
// manualTrigger may be nil when no out-of-band reloads are needed.
func NewWatcher(
	loader *schema.Loader,
	snapshot *state.Snapshot,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *Watcher {
	return &Watcher{
		loader:        loader,
		snapshot:      snapshot,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start performs an initial load (which must succeed) and then polls for
// document changes until the context is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.Reload(); err != nil {
		return fmt.Errorf("initial load failed: %w", err)
	}

	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !w.changed() {
					continue
				}
				w.logger.Info("config document changed, reloading",
					logger.String("file", w.loader.Path()))
				if err := w.Reload(); err != nil {
					w.logger.Error("reload failed, keeping last good config",
						logger.Error(err))
				}
			case <-w.manualTrigger:
				w.logger.Info("manual reload triggered")
				if err := w.Reload(); err != nil {
					w.logger.Error("reload failed, keeping last good config",
						logger.Error(err))
				}
			case <-w.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

// Reload loads the document, validates it and replaces the snapshot.
// Parse failures abort the reload; validation problems do not, since the
// report itself is what serve mode exposes.
func (w *Watcher) Reload() error {
	cfg, err := w.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	docRoot := filepath.Join(filepath.Dir(w.loader.Path()), cfg.DocsDir)
	report := validate.New(docRoot, w.logger).Run(cfg)
	if !report.OK() {
		w.logger.Warn("configuration has validation problems",
			logger.String("run_id", report.RunID),
			logger.Strings("missing", report.Missing))
	}

	w.snapshot.Update(cfg, report)
	w.rememberMod()

	w.logger.Info("configuration loaded",
		logger.String("site", cfg.Site.Name),
		logger.Int("pages", domain.CountLeaves(cfg.Nav)),
		logger.Int("plugins", len(cfg.Plugins)))
	return nil
}

func (w *Watcher) changed() bool {
	info, err := os.Stat(w.loader.Path())
	if err != nil {
		// Transient editor saves can briefly remove the file.
		return false
	}
	return info.ModTime().After(w.lastMod)
}

func (w *Watcher) rememberMod() {
	if info, err := os.Stat(w.loader.Path()); err == nil {
		w.lastMod = info.ModTime()
	}
}
