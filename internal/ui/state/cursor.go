package state

// List tracks the cursor and scroll offset of a list of Len rows.
type List struct {
	Len            int
	Cursor         int
	ViewportOffset int
}

// SetLen updates the row count, clamping the cursor. When follow is true and
// the cursor was on the last row, it moves to the new last row.
func (l *List) SetLen(n int, follow bool) {
	if n < 0 {
		n = 0
	}
	atEnd := l.Len == 0 || l.Cursor >= l.Len-1
	l.Len = n
	if follow && atEnd {
		l.MoveCursorEnd()
		return
	}
	l.clamp()
}

// MoveCursorHome moves the cursor to the first item.
func (l *List) MoveCursorHome() bool {
	if l.Len == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (l *List) MoveCursorEnd() bool {
	if l.Len == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = l.Len - 1
	return old != l.Cursor
}

// MoveCursorUp moves the cursor one row up.
func (l *List) MoveCursorUp() bool {
	return l.moveCursorBy(-1)
}

// MoveCursorDown moves the cursor one row down.
func (l *List) MoveCursorDown() bool {
	return l.moveCursorBy(1)
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *List) moveCursorBy(delta int) bool {
	if l.Len == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	l.clamp()
	return l.Cursor != old
}

func (l *List) clamp() {
	if l.Cursor < 0 || l.Len == 0 {
		l.Cursor = 0
	}
	if l.Len > 0 && l.Cursor >= l.Len {
		l.Cursor = l.Len - 1
	}
}

func (l *List) pageSize(maxVisible int) int {
	if l.Len == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > l.Len {
		size = l.Len
	}
	if size < 1 {
		size = 1
	}
	return size
}

// Window returns the offset of the first visible row for a viewport of
// maxVisible rows, keeping the cursor visible. It does not modify l, so it is
// safe to call while drawing.
func (l List) Window(maxVisible int) int {
	l.EnsureCursorVisible(maxVisible)
	return l.ViewportOffset
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if l.Len == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.clamp()
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := l.Len - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}
