package terminal

import (
	"unicode"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/cubegen/internal/event"
	"github.com/atomicstack/cubegen/internal/input"
)

var namedKeys = map[rune]input.KeyCode{
	tea.KeyEnter:     input.KeyEnter,
	tea.KeyBackspace: input.KeyBackspace,
	tea.KeyTab:       input.KeyTab,
	tea.KeyEscape:    input.KeyEsc,
	tea.KeyUp:        input.KeyUp,
	tea.KeyDown:      input.KeyDown,
	tea.KeyLeft:      input.KeyLeft,
	tea.KeyRight:     input.KeyRight,
	tea.KeyHome:      input.KeyHome,
	tea.KeyEnd:       input.KeyEnd,
	tea.KeyPgUp:      input.KeyPageUp,
	tea.KeyPgDown:    input.KeyPageDown,
	tea.KeyDelete:    input.KeyDelete,
	tea.KeyInsert:    input.KeyInsert,
	tea.KeyPause:     input.KeyPause,
	tea.KeyMenu:      input.KeyMenu,
}

// keyChord converts a Bubble Tea key into a chord with the given phase.
// Keys with no chord equivalent report false.
func keyChord(k tea.Key, phase input.Phase) (input.Chord, bool) {
	mods := modifiers(k.Mod)
	if k.IsRepeat && phase == input.PhasePress {
		phase = input.PhaseRepeat
	}

	var chord input.Chord
	switch {
	case k.Code == tea.KeyTab && mods.Has(input.ModShift):
		chord = input.KeyChord(input.KeyBackTab, mods&^input.ModShift)
	case k.Code >= tea.KeyF1 && k.Code <= tea.KeyF63:
		chord = input.Chord{Code: input.KeyF, F: uint8(k.Code-tea.KeyF1) + 1, Mods: mods}
	default:
		if code, ok := namedKeys[k.Code]; ok {
			chord = input.KeyChord(code, mods)
			break
		}
		r := k.Code
		if !unicode.IsPrint(r) {
			return input.Chord{}, false
		}
		if unicode.IsUpper(r) {
			r = unicode.ToLower(r)
			mods |= input.ModShift
		}
		chord = input.RuneChord(r, mods)
	}
	return chord.WithPhase(phase), true
}

func modifiers(m tea.KeyMod) input.Modifier {
	var out input.Modifier
	if m.Contains(tea.ModAlt) {
		out |= input.ModAlt
	}
	if m.Contains(tea.ModCtrl) {
		out |= input.ModCtrl
	}
	if m.Contains(tea.ModMeta) {
		out |= input.ModMeta
	}
	if m.Contains(tea.ModShift) {
		out |= input.ModShift
	}
	return out
}

// mouseEvent converts a Bubble Tea mouse message.
func mouseEvent(msg tea.MouseMsg) event.Mouse {
	m := msg.Mouse()
	out := event.Mouse{X: m.X, Y: m.Y, Button: mouseButton(m.Button), Mods: modifiers(m.Mod)}
	switch msg.(type) {
	case tea.MouseReleaseMsg:
		out.Action = event.MouseRelease
	case tea.MouseWheelMsg:
		out.Action = event.MouseWheel
	case tea.MouseMotionMsg:
		out.Action = event.MouseMotion
	default:
		out.Action = event.MousePress
	}
	return out
}

func mouseButton(b tea.MouseButton) event.MouseButton {
	switch b {
	case tea.MouseLeft:
		return event.ButtonLeft
	case tea.MouseMiddle:
		return event.ButtonMiddle
	case tea.MouseRight:
		return event.ButtonRight
	case tea.MouseWheelUp:
		return event.WheelUp
	case tea.MouseWheelDown:
		return event.WheelDown
	case tea.MouseWheelLeft:
		return event.WheelLeft
	case tea.MouseWheelRight:
		return event.WheelRight
	default:
		return event.ButtonNone
	}
}
