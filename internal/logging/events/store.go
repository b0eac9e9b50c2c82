package events

import "github.com/atomicstack/cubegen/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Open(path string) {
	logging.Trace("store.open", map[string]interface{}{"path": path})
}

func (StoreTracer) Record(id string, ms int64) {
	logging.Trace("store.record", map[string]interface{}{"id": id, "ms": ms})
}

func (StoreTracer) Drop(id string) {
	logging.Trace("store.drop", map[string]interface{}{"id": id})
}

func (StoreTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("store.error", map[string]interface{}{"error": err.Error()})
}
