package terminal

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/cubegen/internal/event"
	"github.com/atomicstack/cubegen/internal/input"
)

func mustChord(t *testing.T, raw string) input.Chord {
	t.Helper()
	c, err := input.ParseChord(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return c
}

func TestKeyChordMatchesParsedBindings(t *testing.T) {
	cases := []struct {
		key   tea.Key
		phase input.Phase
		want  string
	}{
		{tea.Key{Code: 'q'}, input.PhasePress, "q"},
		{tea.Key{Code: 'c', Mod: tea.ModCtrl}, input.PhasePress, "ctrl+c"},
		{tea.Key{Code: 'Q'}, input.PhasePress, "shift+q"},
		{tea.Key{Code: 'q', Mod: tea.ModShift | tea.ModCtrl}, input.PhasePress, "ctrl+shift+q"},
		{tea.Key{Code: tea.KeySpace}, input.PhasePress, "space"},
		{tea.Key{Code: tea.KeySpace}, input.PhaseRelease, "release:space"},
		{tea.Key{Code: tea.KeyEnter}, input.PhasePress, "enter"},
		{tea.Key{Code: tea.KeyEscape}, input.PhasePress, "esc"},
		{tea.Key{Code: tea.KeyPgDown}, input.PhasePress, "pagedown"},
		{tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}, input.PhasePress, "backtab"},
		{tea.Key{Code: tea.KeyF5}, input.PhasePress, "f5"},
		{tea.Key{Code: tea.KeyLeft, Mod: tea.ModAlt}, input.PhasePress, "alt+left"},
	}
	for _, tc := range cases {
		got, ok := keyChord(tc.key, tc.phase)
		if !ok {
			t.Fatalf("expected %q to convert", tc.want)
		}
		if want := mustChord(t, tc.want); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
}

func TestKeyChordMarksRepeats(t *testing.T) {
	got, ok := keyChord(tea.Key{Code: tea.KeySpace, IsRepeat: true}, input.PhasePress)
	if !ok || got.Phase != input.PhaseRepeat {
		t.Fatalf("expected repeat phase, got %s ok=%v", got, ok)
	}
	if _, bound := input.Default().Resolve(got); bound {
		t.Fatalf("expected repeats never to resolve")
	}
}

func TestKeyChordRejectsUnprintable(t *testing.T) {
	if _, ok := keyChord(tea.Key{Code: 0x07}, input.PhasePress); ok {
		t.Fatalf("expected control rune to be rejected")
	}
}

func TestMouseEvent(t *testing.T) {
	got := mouseEvent(tea.MouseWheelMsg{X: 3, Y: 4, Button: tea.MouseWheelDown})
	if got.Action != event.MouseWheel || got.Button != event.WheelDown || got.X != 3 || got.Y != 4 {
		t.Fatalf("unexpected wheel event %#v", got)
	}
	got = mouseEvent(tea.MouseClickMsg{Button: tea.MouseLeft, Mod: tea.ModCtrl})
	if got.Action != event.MousePress || got.Button != event.ButtonLeft || !got.Mods.Has(input.ModCtrl) {
		t.Fatalf("unexpected click event %#v", got)
	}
	got = mouseEvent(tea.MouseReleaseMsg{Button: tea.MouseRight})
	if got.Action != event.MouseRelease || got.Button != event.ButtonRight {
		t.Fatalf("unexpected release event %#v", got)
	}
}
