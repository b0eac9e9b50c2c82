// Package terminal adapts a Bubble Tea program into the render surface and
// raw input stream used by the application loop.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/cubegen/internal/event"
	"github.com/atomicstack/cubegen/internal/input"
	"github.com/atomicstack/cubegen/internal/render"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	eventBuffer   = 64
)

// Options configures the terminal.
type Options struct {
	// Width and Height pin the frame size; zero follows the terminal.
	Width  int
	Height int
	// Mouse enables cell-motion mouse reporting.
	Mouse bool
	// KeyReleases asks the terminal to report key releases. Terminals
	// without the kitty keyboard protocol ignore the request.
	KeyReleases bool

	Input  io.Reader
	Output io.Writer
}

// Terminal is a render.Surface and event.Input backed by Bubble Tea.
type Terminal struct {
	opts    Options
	program *tea.Program
	events  chan event.Event
	quit    chan struct{}
	done    chan struct{}

	mu     sync.Mutex
	width  int
	height int
	err    error

	closeOnce sync.Once
}

// New prepares a terminal. Call Start to take over the screen.
func New(opts Options) *Terminal {
	t := &Terminal{
		opts:   opts,
		events: make(chan event.Event, eventBuffer),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		width:  defaultWidth,
		height: defaultHeight,
	}
	if opts.Width > 0 {
		t.width = opts.Width
	}
	if opts.Height > 0 {
		t.height = opts.Height
	}
	return t
}

// Start runs the Bubble Tea program in the background. When the program
// fails the error is delivered as a fatal event before the stream ends.
func (t *Terminal) Start(ctx context.Context) {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(t.opts.Input))
	}
	if t.opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(t.opts.Output))
	}
	t.program = tea.NewProgram(&model{term: t}, progOpts...)

	go func() {
		defer close(t.done)
		defer close(t.events)
		_, err := t.program.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrInterrupted) {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
			t.emit(event.Fatal(fmt.Errorf("terminal: %w", err)))
		}
	}()
}

// Events returns the raw input stream. It is closed when the program exits.
func (t *Terminal) Events() <-chan event.Event {
	return t.events
}

// Size returns the current frame size.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// Draw renders a frame and hands it to the program.
func (t *Terminal) Draw(fn func(f *render.Frame, area render.Rect) error) error {
	w, h := t.Size()
	f := render.NewFrame(w, h)
	if err := fn(f, f.Area()); err != nil {
		return err
	}
	select {
	case <-t.done:
		return errors.New("terminal closed")
	default:
	}
	if t.program != nil {
		t.program.Send(frameMsg(f.String()))
	}
	return nil
}

// Close stops the program and waits for the terminal to be restored.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		close(t.quit)
		if t.program == nil {
			close(t.events)
			close(t.done)
			return
		}
		t.program.Quit()
	})
	<-t.done
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Terminal) resize(width, height int) (int, int) {
	t.mu.Lock()
	if t.opts.Width <= 0 && width > 0 {
		t.width = width
	}
	if t.opts.Height <= 0 && height > 0 {
		t.height = height
	}
	w, h := t.width, t.height
	t.mu.Unlock()
	return w, h
}

func (t *Terminal) emit(evt event.Event) {
	select {
	case t.events <- evt:
	case <-t.quit:
	}
}

type frameMsg string

// model is the Bubble Tea side of the bridge. It forwards input and shows
// whatever frame was last drawn.
type model struct {
	term  *Terminal
	frame string
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = string(msg)
	case tea.WindowSizeMsg:
		w, h := m.term.resize(msg.Width, msg.Height)
		m.term.emit(event.Resize(w, h))
	case tea.KeyPressMsg:
		if chord, ok := keyChord(msg.Key(), input.PhasePress); ok {
			m.term.emit(event.Key(chord))
		}
	case tea.KeyReleaseMsg:
		if chord, ok := keyChord(msg.Key(), input.PhaseRelease); ok {
			m.term.emit(event.Key(chord))
		}
	case tea.MouseMsg:
		if m.term.opts.Mouse {
			m.term.emit(event.MouseEvent(mouseEvent(msg)))
		}
	}
	return m, nil
}

func (m *model) View() tea.View {
	v := tea.NewView(m.frame)
	v.AltScreen = true
	if m.term.opts.Mouse {
		v.MouseMode = tea.MouseModeCellMotion
	}
	if m.term.opts.KeyReleases {
		v.KeyboardEnhancements.ReportEventTypes = true
	}
	return v
}
