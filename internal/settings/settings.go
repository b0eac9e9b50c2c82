package settings

import (
	"fmt"
	"math"
	"time"
)

// Settings is the read-only configuration handed to every component.
type Settings struct {
	// TickRate is the number of Tick events per second.
	TickRate float64
	Timer    Timer
}

// Timer holds the timer component options.
type Timer struct {
	// UseKeyRelease enables hold-to-start: the timer starts when the toggle
	// key is released after being held for FreezeTime. It needs a terminal
	// that reports key releases (kitty, foot, WezTerm, alacritty).
	UseKeyRelease bool
	// FreezeTime is the minimum hold, in seconds, before a release starts
	// the timer.
	FreezeTime float64
	// DisplayDecimalPoints is the number of fractional digits shown.
	DisplayDecimalPoints int
}

const (
	DefaultTickRate      = 10.0
	DefaultFreezeTime    = 0.3
	DefaultDecimalPoints = 2
	MaxDecimalPoints     = 9
	MaxTickRate          = 1000.0
)

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		TickRate: DefaultTickRate,
		Timer: Timer{
			FreezeTime:           DefaultFreezeTime,
			DisplayDecimalPoints: DefaultDecimalPoints,
		},
	}
}

// Freeze returns FreezeTime as a duration.
func (t Timer) Freeze() time.Duration {
	return time.Duration(t.FreezeTime * float64(time.Second))
}

// Validate reports the first out-of-range value.
func (s Settings) Validate() error {
	if math.IsNaN(s.TickRate) || s.TickRate <= 0 || s.TickRate > MaxTickRate {
		return fmt.Errorf("tickrate must be > 0 and <= %v (got %v)", MaxTickRate, s.TickRate)
	}
	if math.IsNaN(s.Timer.FreezeTime) || math.IsInf(s.Timer.FreezeTime, 0) || s.Timer.FreezeTime < 0 {
		return fmt.Errorf("freeze time must be >= 0 (got %v)", s.Timer.FreezeTime)
	}
	if s.Timer.DisplayDecimalPoints < 0 || s.Timer.DisplayDecimalPoints > MaxDecimalPoints {
		return fmt.Errorf("decimal points must be between 0 and %d (got %d)", MaxDecimalPoints, s.Timer.DisplayDecimalPoints)
	}
	return nil
}
