package ui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fogmite/rolodex/internal/config"
	"github.com/fogmite/rolodex/internal/coop"
	"github.com/fogmite/rolodex/internal/store"
)

// Options configure the UI runtime.
type Options struct {
	Store  *store.Store
	Sched  *coop.Scheduler
	Config config.Config
	Logger *slog.Logger
}

// Run starts the browser and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a contact store")
	}
	if opts.Sched == nil {
		opts.Sched = coop.NewScheduler()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	p := tea.NewProgram(newModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
