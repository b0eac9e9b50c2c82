package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/cubegen/internal/component"
	"github.com/atomicstack/cubegen/internal/event"
	"github.com/atomicstack/cubegen/internal/input"
	"github.com/atomicstack/cubegen/internal/logging"
	"github.com/atomicstack/cubegen/internal/logging/events"
	"github.com/atomicstack/cubegen/internal/render"
	"github.com/atomicstack/cubegen/internal/session"
	"github.com/atomicstack/cubegen/internal/settings"
)

// EventSource is the ordered event stream consumed by the loop.
type EventSource interface {
	Next(ctx context.Context) (event.Event, error)
	Send(evt event.Event) bool
}

type eventHandler func(event.Event) error

// Loop owns the components and drives them from a single goroutine.
type Loop struct {
	source     EventSource
	surface    render.Surface
	ctx        *component.Context
	components []component.Component
	running    bool

	handlers map[event.Kind]eventHandler
}

// NewLoop wires the loop. Components are updated and drawn in the order
// given. A nil ctx gets default settings and bindings.
func NewLoop(source EventSource, surface render.Surface, ctx *component.Context, components ...component.Component) *Loop {
	if ctx == nil {
		ctx = &component.Context{
			Settings: settings.Default(),
			Bindings: input.Default(),
			Session:  session.New(nil),
		}
	}
	l := &Loop{
		source:     source,
		surface:    surface,
		ctx:        ctx,
		components: components,
	}
	l.registerHandlers()
	return l
}

func (l *Loop) registerHandlers() {
	l.handlers = map[event.Kind]eventHandler{
		event.KindKey:    l.handleKey,
		event.KindMouse:  l.handleMouse,
		event.KindTick:   l.handleTick,
		event.KindResize: l.handleResize,
		event.KindError:  l.handleError,
	}
}

// Context returns the context shared with the components.
func (l *Loop) Context() *component.Context {
	return l.ctx
}

// Running reports whether the loop still accepts events.
func (l *Loop) Running() bool {
	return l.running
}

// Run initialises the components and processes events until Quit, a fatal
// error, or the end of the stream. The end of the stream is not an error.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Init(); err != nil {
		return err
	}
	for l.running {
		evt, err := l.source.Next(ctx)
		if errors.Is(err, event.ErrClosed) {
			events.Loop.Closed()
			return nil
		}
		if err != nil {
			return err
		}
		if err := l.Handle(evt); err != nil {
			return err
		}
	}
	return nil
}

// Init runs every component's Init hook in order and marks the loop running.
func (l *Loop) Init() error {
	names := make([]string, len(l.components))
	for i, c := range l.components {
		names[i] = c.Name()
		if err := c.Init(l.ctx); err != nil {
			return fmt.Errorf("init %s: %w", c.Name(), err)
		}
	}
	events.Loop.Init(names)
	l.running = true
	return nil
}

// Handle processes a single event and redraws unless the loop is stopping.
// Error events are not followed by a redraw so a failing draw cannot feed
// itself.
func (l *Loop) Handle(evt event.Event) error {
	if h, ok := l.handlers[evt.Kind]; ok {
		if err := h(evt); err != nil {
			return err
		}
	}
	if !l.running || evt.Kind == event.KindError {
		return nil
	}
	l.draw()
	return nil
}

func (l *Loop) handleKey(evt event.Event) error {
	action, ok := l.ctx.Bindings.Resolve(evt.Key)
	if !ok {
		events.Loop.Unbound(evt.Key.String())
		return nil
	}
	events.Loop.Action(action.String(), evt.Key.String())
	if action == input.ActionQuit {
		l.running = false
		events.Loop.Quit()
	}
	for _, c := range l.components {
		if err := c.HandleAction(l.ctx, action); err != nil {
			return fmt.Errorf("%s: %s: %w", c.Name(), action, err)
		}
	}
	return nil
}

func (l *Loop) handleMouse(evt event.Event) error {
	for _, c := range l.components {
		if err := c.HandleMouse(l.ctx, evt.Mouse); err != nil {
			return fmt.Errorf("%s: mouse: %w", c.Name(), err)
		}
	}
	return nil
}

func (l *Loop) handleTick(event.Event) error {
	for _, c := range l.components {
		if err := c.Update(l.ctx); err != nil {
			return fmt.Errorf("%s: update: %w", c.Name(), err)
		}
	}
	return nil
}

func (l *Loop) handleResize(evt event.Event) error {
	events.Loop.Resize(evt.Width, evt.Height)
	return nil
}

func (l *Loop) handleError(evt event.Event) error {
	events.Loop.Error(evt.Err, evt.Fatal)
	if evt.Fatal {
		return evt.Err
	}
	logging.Error(evt.Err)
	return nil
}

// draw renders every component into its slice of the surface. Failures are
// fed back into the stream as recoverable errors.
func (l *Loop) draw() {
	err := l.surface.Draw(func(f *render.Frame, area render.Rect) error {
		areas := component.Layout(area, l.components)
		for i, c := range l.components {
			if p, ok := c.(component.Placer); ok {
				p.Place(areas[i])
			}
			if err := c.Draw(l.ctx, f, areas[i]); err != nil {
				return fmt.Errorf("%s: %w", c.Name(), err)
			}
		}
		return nil
	})
	if err != nil {
		l.source.Send(event.Error(fmt.Errorf("draw: %w", err)))
	}
}
