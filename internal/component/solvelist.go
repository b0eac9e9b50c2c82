package component

import (
	"strconv"

	"github.com/atomicstack/cubegen/internal/event"
	"github.com/atomicstack/cubegen/internal/format/table"
	"github.com/atomicstack/cubegen/internal/input"
	"github.com/atomicstack/cubegen/internal/render"
	"github.com/atomicstack/cubegen/internal/theme"
	"github.com/atomicstack/cubegen/internal/ui/state"
)

// SolveList is a scrollable table of the session's solves, newest last.
type SolveList struct {
	Base

	list    state.List
	visible int
	styles  *theme.Styles
}

func NewSolveList() *SolveList {
	return &SolveList{styles: theme.Default()}
}

func (l *SolveList) Name() string { return "solves" }

// Cursor returns the selected row index.
func (l *SolveList) Cursor() int { return l.list.Cursor }

// Update keeps the cursor on the newest solve as solves arrive.
func (l *SolveList) Update(ctx *Context) error {
	l.sync(ctx)
	return nil
}

func (l *SolveList) HandleAction(ctx *Context, action input.Action) error {
	l.sync(ctx)
	switch action {
	case input.ActionUp:
		l.list.MoveCursorUp()
	case input.ActionDown:
		l.list.MoveCursorDown()
	case input.ActionLeft:
		l.list.MoveCursorPageUp(l.visible)
	case input.ActionRight:
		l.list.MoveCursorPageDown(l.visible)
	case input.ActionEnter:
		l.list.MoveCursorEnd()
	case input.ActionExit:
		l.list.MoveCursorHome()
	}
	l.list.EnsureCursorVisible(l.visible)
	return nil
}

// HandleMouse scrolls on the wheel.
func (l *SolveList) HandleMouse(ctx *Context, mouse event.Mouse) error {
	if mouse.Action != event.MouseWheel {
		return nil
	}
	l.sync(ctx)
	switch mouse.Button {
	case event.WheelUp:
		l.list.MoveCursorUp()
	case event.WheelDown:
		l.list.MoveCursorDown()
	}
	l.list.EnsureCursorVisible(l.visible)
	return nil
}

// Place records how many table rows fit in area; paging moves by that much.
func (l *SolveList) Place(area render.Rect) {
	l.visible = area.Height - 1
	if l.visible < 0 {
		l.visible = 0
	}
	l.list.EnsureCursorVisible(l.visible)
}

func (l *SolveList) sync(ctx *Context) {
	if ctx == nil || ctx.Session == nil {
		return
	}
	if n := ctx.Session.Len(); n != l.list.Len {
		l.list.SetLen(n, true)
		l.list.EnsureCursorVisible(l.visible)
	}
}

func (l *SolveList) Draw(ctx *Context, f *render.Frame, area render.Rect) error {
	if area.Empty() || ctx == nil || ctx.Session == nil {
		return f.Render(area, "")
	}
	solves := ctx.Session.Solves()
	if len(solves) == 0 {
		return f.Render(area, theme.Render(l.styles.ListItem, "no solves yet"))
	}
	decimals := ctx.Settings.Timer.DisplayDecimalPoints

	rows := make([][]string, 0, len(solves)+1)
	rows = append(rows, []string{"#", "time", "ao5"})
	for i, solve := range solves {
		ao5 := "-"
		if avg, ok := ctx.Session.AverageAt(i, 5); ok {
			ao5 = FormatDuration(avg, decimals)
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), FormatDuration(solve.Time, decimals), ao5})
	}
	lines := table.Format(rows, []table.Alignment{table.AlignRight, table.AlignRight, table.AlignRight})

	view := l.list
	view.SetLen(len(solves), true)
	visible := area.Height - 1
	offset := view.Window(visible)
	out := theme.Render(l.styles.ListHeader, lines[0])
	for i := offset; i < len(solves) && i < offset+visible; i++ {
		style := l.styles.ListItem
		if i == view.Cursor {
			style = l.styles.ListSelected
		}
		out += "\n" + theme.Render(style, lines[i+1])
	}
	return f.Render(area, out)
}
