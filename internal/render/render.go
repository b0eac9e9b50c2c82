package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ErrOutOfBounds is returned when drawing outside the frame.
var ErrOutOfBounds = errors.New("area out of bounds")

// Rect is a region of the frame in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.Width <= r.X+r.Width &&
		o.Y+o.Height <= r.Y+r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Frame is a line buffer for one rendered screen. Lines may carry ANSI
// styling; widths are measured in terminal cells.
type Frame struct {
	width  int
	height int
	lines  []string
}

// NewFrame returns a blank frame of the given size.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	return &Frame{width: width, height: height, lines: lines}
}

// Area returns the full frame rect.
func (f *Frame) Area() Rect {
	return Rect{Width: f.width, Height: f.height}
}

// Render writes content into area, one line per row. Lines are clipped to
// the area width and padded with spaces; rows past the content are blanked.
// Anything to the right of the area on the same rows is discarded.
func (f *Frame) Render(area Rect, content string) error {
	if area.Empty() {
		return nil
	}
	if !f.Area().Contains(area) {
		return fmt.Errorf("render %s in %s: %w", area, f.Area(), ErrOutOfBounds)
	}
	lines := strings.Split(content, "\n")
	for i := 0; i < area.Height; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		row := area.Y + i
		prefix := ""
		if area.X > 0 {
			prefix = fit(f.lines[row], area.X)
		}
		f.lines[row] = prefix + fit(line, area.Width)
	}
	return nil
}

// Line returns row i without trailing padding, or "" when out of range.
func (f *Frame) Line(i int) string {
	if i < 0 || i >= len(f.lines) {
		return ""
	}
	return strings.TrimRight(f.lines[i], " ")
}

// String joins all rows.
func (f *Frame) String() string {
	return strings.Join(f.lines, "\n")
}

// Plain returns the frame with ANSI sequences and trailing padding removed.
func (f *Frame) Plain() string {
	out := make([]string, len(f.lines))
	for i, line := range f.lines {
		out[i] = strings.TrimRight(ansi.Strip(line), " ")
	}
	return strings.Join(out, "\n")
}

func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
