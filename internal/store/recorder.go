package store

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/cubegen/internal/logging"
	"github.com/atomicstack/cubegen/internal/logging/events"
	"github.com/atomicstack/cubegen/internal/session"
)

// Writer is the persistence side used by the Recorder.
type Writer interface {
	InsertSolve(ctx context.Context, sessionID string, solve session.Solve) error
}

type record struct {
	sessionID string
	solve     session.Solve
}

// Recorder persists solves on a background goroutine so the UI loop never
// waits on disk I/O. It implements session.Sink.
type Recorder struct {
	writer  Writer
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	records chan record
	mu      sync.Mutex
	closed  bool
	wg      sync.WaitGroup
}

const recorderBuffer = 64

// NewRecorder starts a recorder writing through w.
func NewRecorder(w Writer) *Recorder {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Recorder{
		writer:  w,
		timeout: 5 * time.Second,
		ctx:     ctx,
		cancel:  cancel,
		records: make(chan record, recorderBuffer),
	}
	r.wg.Add(1)
	go r.run()
	return r
}

// Record queues a solve. It never blocks: when the buffer is full the solve
// is dropped and the drop is logged.
func (r *Recorder) Record(sessionID string, solve session.Solve) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		events.Store.Drop(solve.ID)
		return
	}
	select {
	case r.records <- record{sessionID: sessionID, solve: solve}:
	default:
		events.Store.Drop(solve.ID)
		logging.Error(errDropped(solve.ID))
	}
}

// Close stops accepting solves and waits until queued ones are written.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.records)
	r.mu.Unlock()
	r.wg.Wait()
	r.cancel()
}

func (r *Recorder) run() {
	defer r.wg.Done()
	for rec := range r.records {
		ctx, cancel := context.WithTimeout(r.ctx, r.timeout)
		err := r.writer.InsertSolve(ctx, rec.sessionID, rec.solve)
		cancel()
		if err != nil {
			events.Store.Error(err)
			logging.Error(err)
			continue
		}
		events.Store.Record(rec.solve.ID, rec.solve.Time.Milliseconds())
	}
}

type errDropped string

func (e errDropped) Error() string {
	return "recorder buffer full, dropped solve " + string(e)
}
