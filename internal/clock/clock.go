package clock

import "time"

// Clock is a restartable stopwatch. While running, Elapsed reports the live
// time since Start; once stopped it reports the value frozen by the last Stop.
// The zero value is a stopped clock reading zero.
type Clock struct {
	start   time.Time
	elapsed time.Duration
	running bool

	now func() time.Time
}

// New returns a stopped clock backed by the wall clock.
func New() *Clock {
	return &Clock{}
}

// NewWithSource returns a clock that reads time from now. Tests use it to
// drive the clock without sleeping.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Start records the current instant. Starting a running clock does nothing,
// so the original start instant is preserved.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.start = c.read()
	c.running = true
}

// Stop freezes the elapsed time and returns it. Stopping a stopped clock
// returns the previously frozen value.
func (c *Clock) Stop() time.Duration {
	if !c.running {
		return c.elapsed
	}
	c.elapsed = c.since()
	c.start = time.Time{}
	c.running = false
	return c.elapsed
}

// Elapsed returns the live elapsed time while running, else the frozen value.
func (c *Clock) Elapsed() time.Duration {
	if c.running {
		return c.since()
	}
	return c.elapsed
}

// Running reports whether the clock has been started and not yet stopped.
func (c *Clock) Running() bool {
	return c.running
}

func (c *Clock) since() time.Duration {
	d := c.read().Sub(c.start)
	if d < 0 {
		return 0
	}
	return d
}

func (c *Clock) read() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}
