package events

import (
	"time"

	"github.com/atomicstack/cubegen/internal/logging"
)

type TimerTracer struct{}

var Timer = TimerTracer{}

func (TimerTracer) Arm() {
	logging.Trace("timer.arm", nil)
}

func (TimerTracer) EarlyRelease(held, freeze time.Duration) {
	logging.Trace("timer.release.early", map[string]interface{}{"heldMs": held.Milliseconds(), "freezeMs": freeze.Milliseconds()})
}

func (TimerTracer) Start() {
	logging.Trace("timer.start", nil)
}

func (TimerTracer) Stop(result time.Duration) {
	logging.Trace("timer.stop", map[string]interface{}{"ms": result.Milliseconds()})
}
