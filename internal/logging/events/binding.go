package events

import "github.com/atomicstack/cubegen/internal/logging"

type BindingTracer struct{}

var Binding = BindingTracer{}

// Invalid records a raw binding that was dropped while building the action map.
func (BindingTracer) Invalid(action, raw, reason, suggestion string) {
	payload := map[string]interface{}{"action": action, "raw": raw, "reason": reason}
	if suggestion != "" {
		payload["suggestion"] = suggestion
	}
	logging.Trace("binding.invalid", payload)
}

func (BindingTracer) Collision(chord, previous, next string) {
	logging.Trace("binding.collision", map[string]interface{}{"chord": chord, "previous": previous, "next": next})
}
