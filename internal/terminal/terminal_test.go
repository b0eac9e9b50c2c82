package terminal

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/cubegen/internal/event"
	"github.com/atomicstack/cubegen/internal/input"
	"github.com/atomicstack/cubegen/internal/render"
)

func nextEvent(t *testing.T, term *Terminal) event.Event {
	t.Helper()
	select {
	case evt := <-term.Events():
		return evt
	default:
		t.Fatalf("expected an event")
	}
	return event.Event{}
}

func TestModelForwardsKeys(t *testing.T) {
	term := New(Options{})
	m := &model{term: term}

	m.Update(tea.KeyPressMsg{Code: 'q'})
	if evt := nextEvent(t, term); evt.Kind != event.KindKey || evt.Key != input.RuneChord('q', 0) {
		t.Fatalf("unexpected press event %#v", evt)
	}
	m.Update(tea.KeyReleaseMsg{Code: tea.KeySpace})
	if evt := nextEvent(t, term); evt.Key.Phase != input.PhaseRelease {
		t.Fatalf("expected release phase, got %s", evt.Key)
	}
}

func TestModelIgnoresMouseWhenDisabled(t *testing.T) {
	term := New(Options{})
	m := &model{term: term}
	m.Update(tea.MouseClickMsg{Button: tea.MouseLeft})
	if len(term.Events()) != 0 {
		t.Fatalf("expected mouse to be ignored")
	}

	term = New(Options{Mouse: true})
	m = &model{term: term}
	m.Update(tea.MouseClickMsg{Button: tea.MouseLeft})
	if evt := nextEvent(t, term); evt.Kind != event.KindMouse {
		t.Fatalf("expected mouse event, got %s", evt.Kind)
	}
}

func TestResizeFollowsTerminalUnlessPinned(t *testing.T) {
	term := New(Options{Height: 10})
	m := &model{term: term}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	evt := nextEvent(t, term)
	if evt.Kind != event.KindResize || evt.Width != 120 || evt.Height != 10 {
		t.Fatalf("unexpected resize event %#v", evt)
	}
	if w, h := term.Size(); w != 120 || h != 10 {
		t.Fatalf("expected 120x10, got %dx%d", w, h)
	}
}

func TestModelShowsLastFrame(t *testing.T) {
	term := New(Options{Mouse: true, KeyReleases: true})
	m := &model{term: term}
	m.Update(frameMsg("hello"))
	v := m.View()
	if !v.AltScreen {
		t.Fatalf("expected alt screen")
	}
	if v.MouseMode != tea.MouseModeCellMotion {
		t.Fatalf("expected cell motion mouse mode")
	}
	if !v.KeyboardEnhancements.ReportEventTypes {
		t.Fatalf("expected key release reporting")
	}
	if m.frame != "hello" {
		t.Fatalf("expected frame stored, got %q", m.frame)
	}
}

func TestDrawUsesCurrentSize(t *testing.T) {
	term := New(Options{Width: 12, Height: 3})
	var got render.Rect
	err := term.Draw(func(f *render.Frame, area render.Rect) error {
		got = area
		return f.Render(area, "ok")
	})
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if got.Width != 12 || got.Height != 3 {
		t.Fatalf("expected 12x3 area, got %s", got)
	}
}

func TestCloseWithoutStart(t *testing.T) {
	term := New(Options{})
	if err := term.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, ok := <-term.Events(); ok {
		t.Fatalf("expected closed event stream")
	}
	if err := term.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
