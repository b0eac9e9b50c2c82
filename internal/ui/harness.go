package ui

import (
	"context"
	"sync"

	"github.com/atomicstack/cubegen/internal/component"
	"github.com/atomicstack/cubegen/internal/event"
	"github.com/atomicstack/cubegen/internal/render"
)

// MemorySource is a scripted EventSource. Next returns queued events in order
// and event.ErrClosed once the queue is empty.
type MemorySource struct {
	mu     sync.Mutex
	queue  []event.Event
	closed bool
}

// NewMemorySource returns a source preloaded with evts.
func NewMemorySource(evts ...event.Event) *MemorySource {
	return &MemorySource{queue: append([]event.Event(nil), evts...)}
}

func (s *MemorySource) Next(ctx context.Context) (event.Event, error) {
	if err := ctx.Err(); err != nil {
		return event.Event{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return event.Event{}, event.ErrClosed
	}
	evt := s.queue[0]
	s.queue = s.queue[1:]
	return evt, nil
}

func (s *MemorySource) Send(evt event.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.queue = append(s.queue, evt)
	return true
}

// Close makes further Sends fail.
func (s *MemorySource) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Pending returns the queued events.
func (s *MemorySource) Pending() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.queue...)
}

// Harness drives the loop programmatically for integration tests.
type Harness struct {
	loop    *Loop
	source  *MemorySource
	surface *render.MemorySurface
}

// NewHarness creates an initialised loop drawing onto a width x height
// memory surface.
func NewHarness(width, height int, ctx *component.Context, components ...component.Component) (*Harness, error) {
	source := NewMemorySource()
	surface := render.NewMemorySurface(width, height)
	loop := NewLoop(source, surface, ctx, components...)
	if err := loop.Init(); err != nil {
		return nil, err
	}
	return &Harness{loop: loop, source: source, surface: surface}, nil
}

// Send handles evt and then any events it caused, such as re-injected draw
// errors. Events sent after Quit are dropped.
func (h *Harness) Send(evt event.Event) error {
	if !h.loop.Running() {
		return nil
	}
	if err := h.loop.Handle(evt); err != nil {
		return err
	}
	for h.loop.Running() {
		next, err := h.source.Next(context.Background())
		if err != nil {
			return nil
		}
		if err := h.loop.Handle(next); err != nil {
			return err
		}
	}
	return nil
}

// Resize changes the surface size and delivers the matching event.
func (h *Harness) Resize(width, height int) error {
	h.surface.Resize(width, height)
	return h.Send(event.Resize(width, height))
}

// View returns the last frame without styling.
func (h *Harness) View() string {
	f := h.surface.Last()
	if f == nil {
		return ""
	}
	return f.Plain()
}

// Frames reports how many frames were drawn.
func (h *Harness) Frames() int {
	return h.surface.Frames()
}

// Loop exposes the underlying loop.
func (h *Harness) Loop() *Loop {
	return h.loop
}
