package input

import (
	"errors"
	"sort"

	"github.com/atomicstack/cubegen/internal/logging/events"
)

// RawBindings maps each action to the raw binding strings configured for it.
type RawBindings map[Action][]string

// ActionMap is the bidirectional binding table. It is built once and only
// read afterwards.
type ActionMap struct {
	actionToKeys map[Action][]Chord
	keyToAction  map[Chord]Action
}

// DefaultBindings returns the built-in key bindings.
func DefaultBindings() RawBindings {
	return RawBindings{
		ActionQuit:              {"q", "ctrl+c"},
		ActionLeft:              {"left", "h"},
		ActionRight:             {"right", "l"},
		ActionUp:                {"up", "k"},
		ActionDown:              {"down", "j"},
		ActionEnter:             {"enter"},
		ActionExit:              {"esc"},
		ActionTimerToggle:       {"space"},
		ActionTimerStartRelease: {"release:space"},
	}
}

// Default builds the action map from DefaultBindings.
func Default() *ActionMap {
	return Build(DefaultBindings())
}

// Build compiles raw bindings into an ActionMap. Actions are processed in
// declaration order; when two actions claim the same chord the later one
// wins. Unparseable bindings are skipped and traced.
func Build(raw RawBindings) *ActionMap {
	m := &ActionMap{
		actionToKeys: make(map[Action][]Chord, len(raw)),
		keyToAction:  make(map[Chord]Action),
	}

	actions := make([]Action, 0, len(raw))
	for action := range raw {
		actions = append(actions, action)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, action := range actions {
		chords := make([]Chord, 0, len(raw[action]))
		for _, binding := range raw[action] {
			chord, err := ParseChord(binding)
			if err != nil {
				traceInvalid(action, binding, err)
				continue
			}
			if prev, ok := m.keyToAction[chord]; ok && prev != action {
				events.Binding.Collision(chord.String(), prev.String(), action.String())
				m.actionToKeys[prev] = removeChord(m.actionToKeys[prev], chord)
			}
			if containsChord(chords, chord) {
				continue
			}
			chords = append(chords, chord)
			m.keyToAction[chord] = action
		}
		m.actionToKeys[action] = chords
	}
	return m
}

// Resolve returns the action bound to chord, matching key, modifiers and
// phase exactly.
func (m *ActionMap) Resolve(chord Chord) (Action, bool) {
	if m == nil {
		return 0, false
	}
	action, ok := m.keyToAction[chord]
	return action, ok
}

// Keys returns the chords bound to action, in configuration order.
func (m *ActionMap) Keys(action Action) []Chord {
	if m == nil {
		return nil
	}
	return append([]Chord(nil), m.actionToKeys[action]...)
}

// Len reports the number of bound chords.
func (m *ActionMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keyToAction)
}

func traceInvalid(action Action, binding string, err error) {
	if errors.Is(err, ErrNoBinding) {
		events.Binding.Invalid(action.String(), binding, "none", "")
		return
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		events.Binding.Invalid(action.String(), binding, perr.Reason, perr.Suggestion)
		return
	}
	events.Binding.Invalid(action.String(), binding, err.Error(), "")
}

func containsChord(chords []Chord, chord Chord) bool {
	for _, c := range chords {
		if c == chord {
			return true
		}
	}
	return false
}

func removeChord(chords []Chord, chord Chord) []Chord {
	out := chords[:0]
	for _, c := range chords {
		if c != chord {
			out = append(out, c)
		}
	}
	return out
}
