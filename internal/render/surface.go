package render

import "sync"

// Surface draws one frame per call. The callback receives a blank frame and
// the full drawable area.
type Surface interface {
	Draw(func(f *Frame, area Rect) error) error
}

// MemorySurface keeps the last drawn frame in memory.
type MemorySurface struct {
	mu     sync.Mutex
	width  int
	height int
	last   *Frame
	frames int
}

// NewMemorySurface returns a surface of the given size.
func NewMemorySurface(width, height int) *MemorySurface {
	return &MemorySurface{width: width, height: height}
}

// Draw renders a new frame. The previous frame is kept when fn fails.
func (m *MemorySurface) Draw(fn func(f *Frame, area Rect) error) error {
	m.mu.Lock()
	w, h := m.width, m.height
	m.mu.Unlock()

	f := NewFrame(w, h)
	if err := fn(f, f.Area()); err != nil {
		return err
	}

	m.mu.Lock()
	m.last = f
	m.frames++
	m.mu.Unlock()
	return nil
}

// Resize changes the size used by subsequent draws.
func (m *MemorySurface) Resize(width, height int) {
	m.mu.Lock()
	m.width, m.height = width, height
	m.mu.Unlock()
}

// Last returns the most recent frame, or nil before the first draw.
func (m *MemorySurface) Last() *Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Frames reports how many frames were drawn.
func (m *MemorySurface) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}
