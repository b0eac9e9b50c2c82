package input

import (
	"fmt"
	"strings"
)

// Action is a semantic intent produced by resolving a key chord.
type Action int

const (
	ActionQuit Action = iota

	ActionLeft
	ActionRight
	ActionUp
	ActionDown

	ActionEnter
	ActionExit

	ActionTimerToggle
	ActionTimerStartRelease
)

var actionNames = [...]string{
	ActionQuit:              "quit",
	ActionLeft:              "left",
	ActionRight:             "right",
	ActionUp:                "up",
	ActionDown:              "down",
	ActionEnter:             "enter",
	ActionExit:              "exit",
	ActionTimerToggle:       "timer_toggle",
	ActionTimerStartRelease: "timer_start_release",
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, len(actionNames))
	for i := range actionNames {
		out[i] = Action(i)
	}
	return out
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps a configuration name such as "timer_toggle" back to its
// Action. Dashes are accepted in place of underscores.
func ParseAction(name string) (Action, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range actionNames {
		if n == key {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}
