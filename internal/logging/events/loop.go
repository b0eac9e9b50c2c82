package events

import "github.com/atomicstack/cubegen/internal/logging"

type LoopTracer struct{}

var Loop = LoopTracer{}

func (LoopTracer) Init(components []string) {
	logging.Trace("loop.init", map[string]interface{}{"components": components})
}

func (LoopTracer) Action(action, chord string) {
	logging.Trace("loop.action", map[string]interface{}{"action": action, "chord": chord})
}

func (LoopTracer) Unbound(chord string) {
	logging.Trace("loop.unbound", map[string]interface{}{"chord": chord})
}

func (LoopTracer) Resize(width, height int) {
	logging.Trace("loop.resize", map[string]interface{}{"width": width, "height": height})
}

func (LoopTracer) Error(err error, fatal bool) {
	if err == nil {
		return
	}
	logging.Trace("loop.error", map[string]interface{}{"error": err.Error(), "fatal": fatal})
}

func (LoopTracer) Quit() {
	logging.Trace("loop.quit", nil)
}

func (LoopTracer) Closed() {
	logging.Trace("loop.closed", nil)
}

// Discarded records events still queued when the loop stopped reading.
func (LoopTracer) Discarded(pending int) {
	if pending == 0 {
		return
	}
	logging.Trace("loop.discarded", map[string]interface{}{"pending": pending})
}
