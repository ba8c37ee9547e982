package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mkvet/mkvet/internal/config"
	"github.com/mkvet/mkvet/internal/httpserver"
	"github.com/mkvet/mkvet/internal/httpserver/deps"
	"github.com/mkvet/mkvet/internal/logger"
	"github.com/mkvet/mkvet/internal/schema"
	"github.com/mkvet/mkvet/internal/state"
	"github.com/mkvet/mkvet/internal/version"
	"github.com/mkvet/mkvet/internal/watch"
)

// App wires the preview server: config loader, watcher, snapshot, HTTP.
type App struct {
	cfg      *config.Config
	logger   logger.Logger
	server   *httpserver.Server
	watcher  *watch.Watcher
	snapshot *state.Snapshot
}

// New assembles the serve-mode application around the given tool config.
func New(cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	loader := schema.NewLoader(cfg.ConfigFile)
	snapshot := state.NewSnapshot()

	// Manual reload trigger, exposed via POST /api/reload.
	reloadTrigger := make(chan struct{}, 1)

	watcher := watch.NewWatcher(
		loader,
		snapshot,
		loggerClient,
		cfg.WatchInterval,
		reloadTrigger,
	)

	// The doc root is only known after the first load, so resolve it the
	// same way the watcher does: docs_dir relative to the document.
	site, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.ConfigFile, err)
	}
	docRoot := filepath.Join(filepath.Dir(cfg.ConfigFile), site.DocsDir)

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		Snapshot:      snapshot,
		DocRoot:       docRoot,
		ConfigFile:    cfg.ConfigFile,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:      cfg,
		logger:   loggerClient,
		server:   server,
		watcher:  watcher,
		snapshot: snapshot,
	}, nil
}

// Run starts the watcher and the preview server, then blocks until a signal
// arrives or the server fails.
func (a *App) Run() error {
	a.logger.Infof("🚀 mkvet %s serving %s on %s",
		version.Version, a.cfg.ConfigFile, a.cfg.ListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.watcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start config watcher: %w", err)
	}
	a.logger.Info("config watcher started",
		logger.Duration("interval", a.cfg.WatchInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.watcher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ mkvet stopped cleanly")
	return nil
}
