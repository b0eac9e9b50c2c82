package render

// SplitVertical stacks rects top to bottom inside area. A positive height is
// a fixed row count; zero shares the remaining rows equally with the other
// zero entries. Rows that do not fit produce empty rects.
func SplitVertical(area Rect, heights []int) []Rect {
	out := make([]Rect, len(heights))
	fixed, flex := 0, 0
	for _, h := range heights {
		if h > 0 {
			fixed += h
		} else {
			flex++
		}
	}
	remaining := area.Height - fixed
	if remaining < 0 {
		remaining = 0
	}
	share, extra := 0, 0
	if flex > 0 {
		share = remaining / flex
		extra = remaining % flex
	}

	y := area.Y
	bottom := area.Y + area.Height
	for i, h := range heights {
		rows := h
		if h <= 0 {
			rows = share
			if extra > 0 {
				rows++
				extra--
			}
		}
		if y+rows > bottom {
			rows = bottom - y
		}
		if rows < 0 {
			rows = 0
		}
		out[i] = Rect{X: area.X, Y: y, Width: area.Width, Height: rows}
		y += rows
	}
	return out
}
