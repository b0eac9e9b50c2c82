package state

import "testing"

func TestMoveCursorHome(t *testing.T) {
	l := &List{Len: 3, Cursor: 2}
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := &List{Cursor: 5}
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := &List{Len: 3}
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}

	empty := &List{}
	if empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty list")
	}
}

func TestMoveCursorUpDownClamps(t *testing.T) {
	l := &List{Len: 2}
	if l.MoveCursorUp() {
		t.Fatalf("expected no movement above first row")
	}
	if !l.MoveCursorDown() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	if l.MoveCursorDown() {
		t.Fatalf("expected no movement past last row")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := &List{Len: 5}
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on first page down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on second page down")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(2) {
		t.Fatalf("expected movement on page up")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(10) {
		t.Fatalf("expected movement back to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := &List{Len: 5, Cursor: 4}
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}

func TestWindowDoesNotModifyList(t *testing.T) {
	l := List{Len: 10, Cursor: 9}
	if got := l.Window(3); got != 7 {
		t.Fatalf("expected window offset 7, got %d", got)
	}
	if l.ViewportOffset != 0 {
		t.Fatalf("expected Window to leave offset untouched, got %d", l.ViewportOffset)
	}
}

func TestSetLenFollowsNewestRow(t *testing.T) {
	l := &List{}
	l.SetLen(1, true)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	l.SetLen(2, true)
	if l.Cursor != 1 {
		t.Fatalf("expected cursor to follow to 1, got %d", l.Cursor)
	}
	l.MoveCursorHome()
	l.SetLen(3, true)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor to stay when not at end, got %d", l.Cursor)
	}
	l.Cursor = 2
	l.SetLen(1, false)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped after shrink, got %d", l.Cursor)
	}
}
