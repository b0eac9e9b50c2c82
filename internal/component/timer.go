package component

import (
	"strconv"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/atomicstack/cubegen/internal/clock"
	"github.com/atomicstack/cubegen/internal/input"
	"github.com/atomicstack/cubegen/internal/logging/events"
	"github.com/atomicstack/cubegen/internal/render"
	"github.com/atomicstack/cubegen/internal/theme"
)

// TimerState is the visible phase of the timer.
type TimerState int

const (
	TimerIdle TimerState = iota
	// TimerArming means the start key is held but not yet for long enough.
	TimerArming
	// TimerReady means releasing the start key will start the timer.
	TimerReady
	TimerRunning
)

func (s TimerState) String() string {
	switch s {
	case TimerArming:
		return "arming"
	case TimerReady:
		return "ready"
	case TimerRunning:
		return "running"
	default:
		return "idle"
	}
}

// Timer is the stopwatch component. With hold-to-start enabled the toggle
// press arms a second clock, and the release starts timing once the key was
// held for the configured freeze time.
type Timer struct {
	Base

	main    *clock.Clock
	release *clock.Clock
	last    time.Duration
	styles  *theme.Styles
}

// NewTimer returns an idle timer backed by the wall clock.
func NewTimer() *Timer {
	return NewTimerWithClocks(clock.New(), clock.New())
}

// NewTimerWithClocks returns a timer using the given main and release clocks.
func NewTimerWithClocks(main, release *clock.Clock) *Timer {
	return &Timer{main: main, release: release, styles: theme.Default()}
}

func (t *Timer) Name() string { return "timer" }

// HandleAction drives the start/stop state machine.
func (t *Timer) HandleAction(ctx *Context, action input.Action) error {
	switch action {
	case input.ActionTimerToggle:
		t.toggle(ctx)
	case input.ActionTimerStartRelease:
		t.startOnRelease(ctx)
	}
	return nil
}

func (t *Timer) toggle(ctx *Context) {
	if t.main.Running() {
		if t.main.Elapsed() <= 0 {
			return
		}
		t.last = t.main.Stop()
		events.Timer.Stop(t.last)
		if ctx != nil && ctx.Session != nil {
			ctx.Session.Add(t.last)
		}
		return
	}
	if holdToStart(ctx) {
		if !t.release.Running() {
			t.release.Start()
			events.Timer.Arm()
		}
		return
	}
	t.main.Start()
	events.Timer.Start()
}

func (t *Timer) startOnRelease(ctx *Context) {
	if !holdToStart(ctx) || t.main.Running() || !t.release.Running() {
		return
	}
	held, freeze := t.release.Elapsed(), ctx.Settings.Timer.Freeze()
	if held < freeze {
		// Disarm so the next press measures its hold from zero.
		t.release.Stop()
		events.Timer.EarlyRelease(held, freeze)
		return
	}
	t.release.Stop()
	t.main.Start()
	events.Timer.Start()
}

// State reports the current phase.
func (t *Timer) State(ctx *Context) TimerState {
	switch {
	case t.main.Running():
		return TimerRunning
	case holdToStart(ctx) && t.release.Running():
		if t.release.Elapsed() >= ctx.Settings.Timer.Freeze() {
			return TimerReady
		}
		return TimerArming
	default:
		return TimerIdle
	}
}

// Display returns the live elapsed time while running, else the last result.
func (t *Timer) Display() time.Duration {
	if t.main.Running() {
		return t.main.Elapsed()
	}
	return t.last
}

// Last returns the most recent result.
func (t *Timer) Last() time.Duration {
	return t.last
}

// Draw renders the time centred in area.
func (t *Timer) Draw(ctx *Context, f *render.Frame, area render.Rect) error {
	decimals := 2
	if ctx != nil {
		decimals = ctx.Settings.Timer.DisplayDecimalPoints
	}
	text := FormatDuration(t.Display(), decimals)
	text = theme.Render(t.style(t.State(ctx)), text)
	return f.Render(area, lipgloss.Place(area.Width, area.Height, lipgloss.Center, lipgloss.Center, text))
}

func (t *Timer) style(state TimerState) *lipgloss.Style {
	switch state {
	case TimerArming:
		return t.styles.TimerArming
	case TimerReady:
		return t.styles.TimerReady
	case TimerRunning:
		return t.styles.TimerRunning
	default:
		return t.styles.TimerIdle
	}
}

// FormatDuration renders d in seconds with the given number of decimals.
func FormatDuration(d time.Duration, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(d.Seconds(), 'f', decimals, 64)
}

func holdToStart(ctx *Context) bool {
	return ctx != nil && ctx.Settings.Timer.UseKeyRelease
}
