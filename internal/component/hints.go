package component

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"

	"github.com/atomicstack/cubegen/internal/input"
	"github.com/atomicstack/cubegen/internal/render"
)

var hintLabels = []struct {
	action input.Action
	label  string
}{
	{input.ActionTimerToggle, "start/stop"},
	{input.ActionUp, "up"},
	{input.ActionDown, "down"},
	{input.ActionEnter, "newest"},
	{input.ActionExit, "oldest"},
	{input.ActionQuit, "quit"},
}

// Hints is a one-line footer listing the main key bindings.
type Hints struct {
	Base

	help help.Model
}

func NewHints() *Hints {
	return &Hints{help: help.New()}
}

func (h *Hints) Name() string { return "hints" }

func (h *Hints) Height() int { return 1 }

func (h *Hints) Draw(ctx *Context, f *render.Frame, area render.Rect) error {
	var bindings *input.ActionMap
	if ctx != nil {
		bindings = ctx.Bindings
	}
	return f.Render(area, h.help.View(hintKeyMap(bindings)))
}

type keyMap []key.Binding

func (k keyMap) ShortHelp() []key.Binding { return k }

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func hintKeyMap(bindings *input.ActionMap) keyMap {
	out := make(keyMap, 0, len(hintLabels))
	for _, hint := range hintLabels {
		chords := bindings.Keys(hint.action)
		if len(chords) == 0 {
			continue
		}
		names := make([]string, len(chords))
		for i, c := range chords {
			names[i] = c.String()
		}
		out = append(out, key.NewBinding(
			key.WithKeys(names...),
			key.WithHelp(strings.Join(names, "/"), hint.label),
		))
	}
	return out
}
