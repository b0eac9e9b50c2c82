package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/cubegen/internal/component"
	"github.com/atomicstack/cubegen/internal/event"
	"github.com/atomicstack/cubegen/internal/input"
	"github.com/atomicstack/cubegen/internal/logging"
	"github.com/atomicstack/cubegen/internal/logging/events"
	"github.com/atomicstack/cubegen/internal/session"
	"github.com/atomicstack/cubegen/internal/settings"
	"github.com/atomicstack/cubegen/internal/store"
	"github.com/atomicstack/cubegen/internal/terminal"
	"github.com/atomicstack/cubegen/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Settings settings.Settings
	Bindings input.RawBindings
	// DBPath is the solve history database; empty disables history.
	DBPath     string
	Width      int
	Height     int
	ShowFooter bool
	Mouse      bool
}

// Run opens the history, takes over the terminal and runs the loop until
// the user quits.
func Run(ctx context.Context, cfg Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		history component.History
		sink    session.Sink
	)
	if cfg.DBPath != "" {
		st, err := store.Open(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()
		recorder := store.NewRecorder(st)
		defer recorder.Close()
		history, sink = st, recorder
	}

	bindings := cfg.Bindings
	if bindings == nil {
		bindings = input.DefaultBindings()
	}
	shared := &component.Context{
		Settings: cfg.Settings,
		Bindings: input.Build(bindings),
		Session:  session.New(sink),
	}

	term := terminal.New(terminal.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Mouse:       cfg.Mouse,
		KeyReleases: cfg.Settings.Timer.UseKeyRelease,
	})
	term.Start(ctx)
	defer func() {
		if err := term.Close(); err != nil {
			logging.Error(fmt.Errorf("close terminal: %w", err))
		}
	}()

	source := event.NewSource(term, cfg.Settings.TickRate)
	defer source.Stop()

	loop := ui.NewLoop(source, term, shared, Components(cfg, history)...)
	err := loop.Run(ctx)
	source.Stop()
	events.Loop.Discarded(source.Pending())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Components returns the UI elements in draw order.
func Components(cfg Config, history component.History) []component.Component {
	comps := []component.Component{
		component.NewStats(history),
		component.NewTimer(),
		component.NewSolveList(),
	}
	if cfg.ShowFooter {
		comps = append(comps, component.NewHints())
	}
	return comps
}
