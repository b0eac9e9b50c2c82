package input

import (
	"strconv"
	"strings"
)

// KeyCode identifies the base key of a chord. Character keys use KeyRune and
// carry the character in Chord.Rune; function keys use KeyF and Chord.F.
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyF
	KeyBackspace
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyNull
	KeyEsc
	KeyPause
	KeyMenu
)

var keyNames = map[KeyCode]string{
	KeyBackspace: "backspace",
	KeyEnter:     "enter",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyTab:       "tab",
	KeyBackTab:   "backtab",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyNull:      "null",
	KeyEsc:       "esc",
	KeyPause:     "pause",
	KeyMenu:      "menu",
}

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModAlt Modifier = 1 << iota
	ModCtrl
	ModMeta
	ModShift
)

var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModMeta, "meta"},
	{ModShift, "shift"},
}

// Has reports whether every bit of m2 is set in m.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// Phase distinguishes key presses from releases. Repeat marks auto-repeat
// presses; no binding can name it, so repeats never resolve to an action.
type Phase uint8

const (
	PhasePress Phase = iota
	PhaseRelease
	PhaseRepeat
)

func (p Phase) String() string {
	switch p {
	case PhaseRelease:
		return "release"
	case PhaseRepeat:
		return "repeat"
	default:
		return "press"
	}
}

// Chord is a base key, a modifier set and a phase. Chords are comparable and
// are used directly as map keys by ActionMap.
type Chord struct {
	Code  KeyCode
	Rune  rune
	F     uint8
	Mods  Modifier
	Phase Phase
}

// RuneChord builds a press chord for a character key.
func RuneChord(r rune, mods Modifier) Chord {
	return Chord{Code: KeyRune, Rune: r, Mods: mods}
}

// KeyChord builds a press chord for a named key.
func KeyChord(code KeyCode, mods Modifier) Chord {
	return Chord{Code: code, Mods: mods}
}

// WithPhase returns a copy of c using phase p.
func (c Chord) WithPhase(p Phase) Chord {
	c.Phase = p
	return c
}

// String renders the chord in the same grammar ParseChord accepts, e.g.
// "ctrl+shift+q" or "release:space".
func (c Chord) String() string {
	var b strings.Builder
	if c.Phase != PhasePress {
		b.WriteString(c.Phase.String())
		b.WriteByte(':')
	}
	for _, m := range modifierOrder {
		if c.Mods.Has(m.mod) {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(c.keyName())
	return b.String()
}

func (c Chord) keyName() string {
	switch c.Code {
	case KeyRune:
		if c.Rune == ' ' {
			return "space"
		}
		return string(c.Rune)
	case KeyF:
		return "f" + strconv.Itoa(int(c.F))
	case KeyNone:
		return "none"
	}
	if name, ok := keyNames[c.Code]; ok {
		return name
	}
	return "unknown"
}
