package component

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/cubegen/internal/event"
	"github.com/atomicstack/cubegen/internal/input"
	"github.com/atomicstack/cubegen/internal/render"
)

func TestSolveListEmpty(t *testing.T) {
	list := NewSolveList()
	ctx := newTestContext(false)
	if got := drawPlain(t, list, ctx, 30, 4); !strings.Contains(got, "no solves yet") {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestSolveListFollowsNewSolves(t *testing.T) {
	list := NewSolveList()
	ctx := newTestContext(false)
	list.Place(render.Rect{Width: 30, Height: 4})

	for i := 1; i <= 5; i++ {
		ctx.Session.Add(time.Duration(i) * time.Second)
		list.Update(ctx)
	}
	if list.Cursor() != 4 {
		t.Fatalf("expected cursor on newest row, got %d", list.Cursor())
	}

	got := drawPlain(t, list, ctx, 30, 4)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %q", got)
	}
	if !strings.Contains(lines[0], "time") {
		t.Fatalf("expected header row, got %q", lines[0])
	}
	if !strings.Contains(lines[3], "5.00") || !strings.Contains(lines[3], "3.00") {
		t.Fatalf("expected newest row with ao5 in view, got %q", lines[3])
	}
	if strings.Contains(got, "1.00") {
		t.Fatalf("expected oldest rows scrolled out, got %q", got)
	}
}

func TestSolveListNavigation(t *testing.T) {
	list := NewSolveList()
	ctx := newTestContext(false)
	list.Place(render.Rect{Width: 30, Height: 3})
	for i := 1; i <= 6; i++ {
		ctx.Session.Add(time.Duration(i) * time.Second)
	}

	list.HandleAction(ctx, input.ActionUp)
	if list.Cursor() != 4 {
		t.Fatalf("expected cursor 4 after up, got %d", list.Cursor())
	}
	list.HandleAction(ctx, input.ActionLeft)
	if list.Cursor() != 2 {
		t.Fatalf("expected page up by 2, got %d", list.Cursor())
	}
	list.HandleAction(ctx, input.ActionDown)
	if list.Cursor() != 3 {
		t.Fatalf("expected cursor 3 after down, got %d", list.Cursor())
	}

	ctx.Session.Add(7 * time.Second)
	list.Update(ctx)
	if list.Cursor() != 3 {
		t.Fatalf("expected cursor to stay put when not on newest, got %d", list.Cursor())
	}

	list.HandleAction(ctx, input.ActionEnter)
	if list.Cursor() != 6 {
		t.Fatalf("expected enter to jump to newest, got %d", list.Cursor())
	}
	list.HandleAction(ctx, input.ActionRight)
	if list.Cursor() != 6 {
		t.Fatalf("expected page down to clamp, got %d", list.Cursor())
	}

	list.HandleAction(ctx, input.ActionExit)
	if list.Cursor() != 0 {
		t.Fatalf("expected exit to jump to oldest, got %d", list.Cursor())
	}
	ctx.Session.Add(8 * time.Second)
	list.Update(ctx)
	if list.Cursor() != 0 {
		t.Fatalf("expected cursor to stay on oldest as solves arrive, got %d", list.Cursor())
	}
}

func TestSolveListWheel(t *testing.T) {
	list := NewSolveList()
	ctx := newTestContext(false)
	list.Place(render.Rect{Width: 30, Height: 5})
	for i := 1; i <= 3; i++ {
		ctx.Session.Add(time.Duration(i) * time.Second)
	}
	list.HandleMouse(ctx, event.Mouse{Action: event.MouseWheel, Button: event.WheelUp})
	if list.Cursor() != 1 {
		t.Fatalf("expected wheel up to move cursor to 1, got %d", list.Cursor())
	}
	list.HandleMouse(ctx, event.Mouse{Action: event.MousePress, Button: event.ButtonLeft})
	if list.Cursor() != 1 {
		t.Fatalf("expected click to be ignored, got %d", list.Cursor())
	}
}
