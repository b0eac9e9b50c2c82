// Package component holds the UI elements driven by the application loop.
//
// Every hook receives the shared *Context. Components must treat its
// Settings and Bindings as read-only; the Session is owned by the loop and
// may be appended to from HandleAction.
package component

import (
	"github.com/atomicstack/cubegen/internal/event"
	"github.com/atomicstack/cubegen/internal/input"
	"github.com/atomicstack/cubegen/internal/render"
	"github.com/atomicstack/cubegen/internal/session"
	"github.com/atomicstack/cubegen/internal/settings"
)

// Context is the state shared with every component hook.
type Context struct {
	Settings settings.Settings
	Bindings *input.ActionMap
	Session  *session.Session
}

// Component is a unit of UI state and behaviour. Embed Base to get no-op
// defaults for the hooks a component does not need.
type Component interface {
	Name() string
	// Init runs once before the first event. An error aborts startup.
	Init(ctx *Context) error
	// Update runs once per tick and must not block.
	Update(ctx *Context) error
	// HandleAction runs once per resolved key action.
	HandleAction(ctx *Context, action input.Action) error
	// HandleMouse runs once per mouse event.
	HandleMouse(ctx *Context, mouse event.Mouse) error
	// Draw renders into area. It must not change component state.
	Draw(ctx *Context, f *render.Frame, area render.Rect) error
}

// Sizer is implemented by components that want a fixed number of rows.
type Sizer interface {
	Height() int
}

// Placer is implemented by components that need to know the area they were
// given. The loop calls Place before each Draw.
type Placer interface {
	Place(area render.Rect)
}

// Base implements every hook except Name and Draw as a no-op.
type Base struct{}

func (Base) Init(*Context) error                       { return nil }
func (Base) Update(*Context) error                     { return nil }
func (Base) HandleAction(*Context, input.Action) error { return nil }
func (Base) HandleMouse(*Context, event.Mouse) error   { return nil }

// Layout splits area between comps top to bottom. Sizers get their fixed
// height; the rest share what remains.
func Layout(area render.Rect, comps []Component) []render.Rect {
	heights := make([]int, len(comps))
	for i, c := range comps {
		if s, ok := c.(Sizer); ok {
			heights[i] = s.Height()
		}
	}
	return render.SplitVertical(area, heights)
}
