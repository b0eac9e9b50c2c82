package component

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/cubegen/internal/render"
	"github.com/atomicstack/cubegen/internal/session"
	"github.com/atomicstack/cubegen/internal/store"
	"github.com/atomicstack/cubegen/internal/theme"
)

const historyTimeout = 5 * time.Second

// History is the solve archive consulted for all-time figures.
type History interface {
	PersonalBest(ctx context.Context) (session.Solve, error)
	CountSolves(ctx context.Context) (int, error)
}

// Stats shows a one-line summary of the session.
type Stats struct {
	Base

	history  History
	best     time.Duration
	archived int
	styles  *theme.Styles
}

// NewStats returns a stats line. history may be nil.
func NewStats(history History) *Stats {
	return &Stats{history: history, styles: theme.Default()}
}

func (s *Stats) Name() string { return "stats" }

func (s *Stats) Height() int { return 1 }

// Init loads the archived solve count and personal best. An empty archive is
// not an error.
func (s *Stats) Init(*Context) error {
	if s.history == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
	defer cancel()
	n, err := s.history.CountSolves(ctx)
	if err != nil {
		return fmt.Errorf("count archived solves: %w", err)
	}
	s.archived = n
	solve, err := s.history.PersonalBest(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load personal best: %w", err)
	}
	s.best = solve.Time
	return nil
}

// PersonalBest returns the best time across the archive and the session.
func (s *Stats) PersonalBest(ctx *Context) time.Duration {
	best := s.best
	if ctx == nil || ctx.Session == nil {
		return best
	}
	if sum := ctx.Session.Summary(); sum.Count > 0 && (best == 0 || sum.Best < best) {
		best = sum.Best
	}
	return best
}

func (s *Stats) Draw(ctx *Context, f *render.Frame, area render.Rect) error {
	var sum session.Summary
	decimals := 2
	if ctx != nil {
		decimals = ctx.Settings.Timer.DisplayDecimalPoints
		if ctx.Session != nil {
			sum = ctx.Session.Summary()
		}
	}
	value := func(d time.Duration) string {
		if d <= 0 {
			return "-"
		}
		return FormatDuration(d, decimals)
	}

	parts := []string{
		s.field("solves", fmt.Sprintf("%d", sum.Count)),
		s.field("best", value(sum.Best)),
		s.field("mean", value(sum.Mean)),
		s.field("ao5", value(sum.Ao5)),
		s.field("ao12", value(sum.Ao12)),
	}
	pb := value(s.PersonalBest(ctx))
	parts = append(parts, theme.Render(s.styles.StatsLabel, "pb ")+theme.Render(s.styles.StatsBest, pb))
	if s.history != nil {
		parts = append(parts, s.field("total", fmt.Sprintf("%d", s.archived+sum.Count)))
	}
	return f.Render(area, strings.Join(parts, "  "))
}

func (s *Stats) field(label, value string) string {
	return theme.Render(s.styles.StatsLabel, label+" ") + theme.Render(s.styles.StatsValue, value)
}
