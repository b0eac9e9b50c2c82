package event

import (
	"fmt"

	"github.com/atomicstack/cubegen/internal/input"
)

// Kind represents the type of an Event.
type Kind int

const (
	KindKey Kind = iota
	KindMouse
	KindResize
	KindError
	KindTick
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	case KindResize:
		return "resize"
	case KindError:
		return "error"
	case KindTick:
		return "tick"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MouseAction describes what the pointer did.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
	MouseWheel
)

// MouseButton identifies the button or wheel direction of a mouse event.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	WheelUp
	WheelDown
	WheelLeft
	WheelRight
)

// Mouse is a pointer event in cell coordinates.
type Mouse struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Mods   input.Modifier
}

// Event is a single item of the event stream. Only the fields matching Kind
// are meaningful. Fatal applies to KindError: fatal errors end the loop,
// others are logged and the loop keeps running.
type Event struct {
	Kind   Kind
	Key    input.Chord
	Mouse  Mouse
	Width  int
	Height int
	Err    error
	Fatal  bool
}

// Key builds a key event.
func Key(chord input.Chord) Event {
	return Event{Kind: KindKey, Key: chord}
}

// MouseEvent builds a mouse event.
func MouseEvent(m Mouse) Event {
	return Event{Kind: KindMouse, Mouse: m}
}

// Resize builds a resize event.
func Resize(width, height int) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

// Tick builds a tick event.
func Tick() Event {
	return Event{Kind: KindTick}
}

// Error builds a recoverable error event.
func Error(err error) Event {
	return Event{Kind: KindError, Err: err}
}

// Fatal builds an error event that terminates the loop.
func Fatal(err error) Event {
	return Event{Kind: KindError, Err: err, Fatal: true}
}
