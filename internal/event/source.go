package event

import (
	"context"
	"sync"
	"time"
)

// Input is the raw input stream. The channel is closed when input ends.
type Input interface {
	Events() <-chan Event
}

// Source merges a periodic Tick with raw input into a single ordered stream.
// One background goroutine produces; the application loop is the only
// consumer.
type Source struct {
	input  Input
	period time.Duration

	queue *queue

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSource starts producing events from input and a ticker firing tickRate
// times per second. A Tick is emitted immediately so the first frame is drawn
// without waiting a full period.
func NewSource(input Input, tickRate float64) *Source {
	ctx, cancel := context.WithCancel(context.Background())
	period := time.Second / 10
	if tickRate > 0 {
		period = time.Duration(float64(time.Second) / tickRate)
	}
	if period <= 0 {
		period = time.Nanosecond
	}
	s := &Source{
		input:  input,
		period: period,
		queue:  newQueue(),
		ctx:    ctx,
		cancel: cancel,
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Send appends evt to the stream from any goroutine. It reports false once
// the stream is closed.
func (s *Source) Send(evt Event) bool {
	return s.queue.push(evt)
}

// Next blocks until the next event is available. It returns ErrClosed once
// input has ended and every queued event has been consumed.
func (s *Source) Next(ctx context.Context) (Event, error) {
	return s.queue.pop(ctx)
}

// Pending reports how many events are queued but not yet consumed.
func (s *Source) Pending() int {
	return s.queue.len()
}

// Stop cancels the producer and waits for it to exit. Events already queued
// remain readable.
func (s *Source) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Source) run() {
	defer s.wg.Done()

	var events <-chan Event
	if s.input != nil {
		events = s.input.Events()
	}

	if !s.queue.push(Tick()) {
		return
	}

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.queue.push(Tick())
		case evt, ok := <-events:
			if !ok {
				s.queue.close()
				return
			}
			s.queue.push(evt)
		}
	}
}
