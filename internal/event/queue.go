package event

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Next once the stream is closed and drained.
var ErrClosed = errors.New("no further events")

// queue is an unbounded FIFO with one consumer. Producers never block.
type queue struct {
	mu     sync.Mutex
	items  []Event
	closed bool
	ready  chan struct{}
}

func newQueue() *queue {
	return &queue{ready: make(chan struct{}, 1)}
}

func (q *queue) push(evt Event) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, evt)
	q.mu.Unlock()
	q.wake()
	return true
}

func (q *queue) pop(ctx context.Context) (Event, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			evt := q.items[0]
			q.items[0] = Event{}
			q.items = q.items[1:]
			q.mu.Unlock()
			return evt, nil
		}
		if q.closed {
			q.mu.Unlock()
			return Event{}, ErrClosed
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-q.ready:
		}
	}
}

func (q *queue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.wake()
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *queue) wake() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
