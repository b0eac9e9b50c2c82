package render

import (
	"errors"
	"strings"
	"testing"
)

func TestFrameRenderClipsAndPads(t *testing.T) {
	f := NewFrame(6, 3)
	if err := f.Render(Rect{Y: 1, Width: 6, Height: 2}, "abcdefgh\nxy"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := f.Line(0); got != "" {
		t.Fatalf("expected untouched first row, got %q", got)
	}
	if got := f.Line(1); got != "abcdef" {
		t.Fatalf("expected clipped row, got %q", got)
	}
	if got := f.Line(2); got != "xy" {
		t.Fatalf("expected second content row, got %q", got)
	}
	for i, line := range strings.Split(f.String(), "\n") {
		if len(line) != 6 {
			t.Fatalf("row %d: expected padded width 6, got %d (%q)", i, len(line), line)
		}
	}
}

func TestFrameRenderRespectsXOffset(t *testing.T) {
	f := NewFrame(8, 1)
	if err := f.Render(Rect{Width: 8, Height: 1}, "left"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := f.Render(Rect{X: 5, Width: 3, Height: 1}, "abc"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := f.Line(0); got != "left abc" {
		t.Fatalf("expected composed row, got %q", got)
	}
}

func TestFrameRenderOutOfBounds(t *testing.T) {
	f := NewFrame(4, 2)
	err := f.Render(Rect{Y: 1, Width: 4, Height: 2}, "x")
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if err := f.Render(Rect{}, "ignored"); err != nil {
		t.Fatalf("expected empty rect to be a no-op, got %v", err)
	}
}

func TestFramePlainStripsStyling(t *testing.T) {
	f := NewFrame(10, 1)
	if err := f.Render(f.Area(), "\x1b[1mbold\x1b[0m"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := f.Plain(); got != "bold" {
		t.Fatalf("expected plain text, got %q", got)
	}
}

func TestSplitVerticalFixedAndFlex(t *testing.T) {
	rects := SplitVertical(Rect{Width: 10, Height: 10}, []int{1, 0, 0, 2})
	want := []Rect{
		{Y: 0, Width: 10, Height: 1},
		{Y: 1, Width: 10, Height: 4},
		{Y: 5, Width: 10, Height: 3},
		{Y: 8, Width: 10, Height: 2},
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Fatalf("rect %d: expected %v, got %v", i, want[i], rects[i])
		}
	}
}

func TestSplitVerticalOverflow(t *testing.T) {
	rects := SplitVertical(Rect{Width: 5, Height: 3}, []int{2, 0, 2})
	if rects[0].Height != 2 {
		t.Fatalf("expected first rect to keep 2 rows, got %d", rects[0].Height)
	}
	if rects[1].Height != 0 {
		t.Fatalf("expected flex rect to get no rows, got %d", rects[1].Height)
	}
	if rects[2].Height != 1 || rects[2].Y != 2 {
		t.Fatalf("expected last rect clipped to 1 row at y=2, got %v", rects[2])
	}
}

func TestMemorySurfaceKeepsLastFrame(t *testing.T) {
	s := NewMemorySurface(5, 1)
	if s.Last() != nil {
		t.Fatalf("expected no frame before first draw")
	}
	if err := s.Draw(func(f *Frame, area Rect) error { return f.Render(area, "one") }); err != nil {
		t.Fatalf("draw: %v", err)
	}
	boom := errors.New("boom")
	if err := s.Draw(func(f *Frame, area Rect) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected draw error, got %v", err)
	}
	if got := s.Last().Plain(); got != "one" {
		t.Fatalf("expected previous frame to be kept, got %q", got)
	}
	if s.Frames() != 1 {
		t.Fatalf("expected 1 frame, got %d", s.Frames())
	}
	s.Resize(3, 2)
	_ = s.Draw(func(f *Frame, area Rect) error { return nil })
	if area := s.Last().Area(); area.Width != 3 || area.Height != 2 {
		t.Fatalf("expected resized frame, got %v", area)
	}
}
