// Package app is the composition root: it loads configuration, opens the
// diagnostic log, wires the store to its backing file and hands everything
// to the UI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fogmite/rolodex/internal/config"
	"github.com/fogmite/rolodex/internal/coop"
	"github.com/fogmite/rolodex/internal/persist"
	"github.com/fogmite/rolodex/internal/store"
	"github.com/fogmite/rolodex/internal/ui"
)

// Options configure the rolodex application.
type Options struct {
	ConfigPath   string // empty uses ~/.config/rolodex/config.toml
	ContactsPath string // overrides the configured contacts file
}

// Run boots the browser until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ContactsPath != "" {
		cfg.ContactsPath = opts.ContactsPath
	}

	logger, closeLog := openLogger(cfg.LogPath())
	defer closeLog()

	file := persist.NewFile(cfg.ContactsPath, logger)
	st := store.New(file, logger)
	sched := coop.NewScheduler()

	logger.Info("rolodex starting", "contacts", cfg.ContactsPath)

	// The store load runs as a cooperative task from the UI's Init, so the
	// browser comes up immediately and shows readiness as it happens.
	return ui.Run(ctx, ui.Options{
		Store:  st,
		Sched:  sched,
		Config: cfg,
		Logger: logger,
	})
}

// openLogger writes diagnostics to the configured log file. The TUI owns
// stdout, so there is nowhere else for them to go; if the file cannot be
// opened the diagnostics are dropped rather than corrupting the screen.
func openLogger(path string) (*slog.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}
	logger := slog.New(slog.NewTextHandler(f, nil))
	return logger, func() { _ = f.Close() }
}
