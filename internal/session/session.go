package session

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Solve is one timed attempt.
type Solve struct {
	ID         string
	Time       time.Duration
	RecordedAt time.Time
}

// Sink receives solves as they are recorded. Implementations must not block.
type Sink interface {
	Record(sessionID string, solve Solve)
}

// Session is the ordered list of solves timed during one run. It is owned by
// the application loop and is not safe for concurrent use.
type Session struct {
	ID     string
	solves []Solve
	sink   Sink
	now    func() time.Time
}

// New starts a session with a fresh id. sink may be nil.
func New(sink Sink) *Session {
	return &Session{ID: uuid.NewString(), sink: sink, now: time.Now}
}

// Add records a solve and forwards it to the sink.
func (s *Session) Add(d time.Duration) Solve {
	solve := Solve{ID: uuid.NewString(), Time: d, RecordedAt: s.now().UTC()}
	s.solves = append(s.solves, solve)
	if s.sink != nil {
		s.sink.Record(s.ID, solve)
	}
	return solve
}

// Len returns the number of solves.
func (s *Session) Len() int {
	return len(s.solves)
}

// Solves returns a copy of the solves, oldest first.
func (s *Session) Solves() []Solve {
	return append([]Solve(nil), s.solves...)
}

// Last returns the newest solve.
func (s *Session) Last() (Solve, bool) {
	if len(s.solves) == 0 {
		return Solve{}, false
	}
	return s.solves[len(s.solves)-1], true
}

// Summary aggregates the session. Zero durations mean "not enough solves".
type Summary struct {
	Count int
	Best  time.Duration
	Worst time.Duration
	Mean  time.Duration
	Ao5   time.Duration
	Ao12  time.Duration
}

// Summary computes statistics over every solve.
func (s *Session) Summary() Summary {
	sum := Summary{Count: len(s.solves)}
	if sum.Count == 0 {
		return sum
	}
	var total time.Duration
	for i, solve := range s.solves {
		total += solve.Time
		if i == 0 || solve.Time < sum.Best {
			sum.Best = solve.Time
		}
		if solve.Time > sum.Worst {
			sum.Worst = solve.Time
		}
	}
	sum.Mean = total / time.Duration(sum.Count)
	sum.Ao5, _ = s.AverageAt(len(s.solves)-1, 5)
	sum.Ao12, _ = s.AverageAt(len(s.solves)-1, 12)
	return sum
}

// AverageAt returns the average of n solves ending at index end, with the
// best and worst removed. It reports false when fewer than n solves exist or
// n is below 3.
func (s *Session) AverageAt(end, n int) (time.Duration, bool) {
	if n < 3 || end < 0 || end >= len(s.solves) || end+1 < n {
		return 0, false
	}
	window := make([]time.Duration, n)
	for i := 0; i < n; i++ {
		window[i] = s.solves[end-n+1+i].Time
	}
	return Trimmed(window), true
}

// Trimmed averages times after dropping the single best and worst value.
func Trimmed(times []time.Duration) time.Duration {
	if len(times) < 3 {
		return 0
	}
	sorted := append([]time.Duration(nil), times...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var total time.Duration
	for _, t := range sorted[1 : len(sorted)-1] {
		total += t
	}
	return total / time.Duration(len(sorted)-2)
}
