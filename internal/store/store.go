package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/atomicstack/cubegen/internal/logging/events"
	"github.com/atomicstack/cubegen/internal/session"
)

var ErrNotFound = errors.New("not found")

// Store persists solves in sqlite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("open store: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := ApplyMigrations(ctx, db); err != nil {
		db.Close() //nolint:errcheck
		return nil, err
	}
	events.Store.Open(path)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// InsertSolve stores one solve. Re-inserting the same solve id is a no-op.
func (s *Store) InsertSolve(ctx context.Context, sessionID string, solve session.Solve) error {
	if solve.ID == "" {
		return fmt.Errorf("solve_id is required")
	}
	if sessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	if solve.Time < 0 {
		return fmt.Errorf("solve time must be >= 0 (got %v)", solve.Time)
	}
	if solve.RecordedAt.IsZero() {
		solve.RecordedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO solves(solve_id, session_id, time_ms, time_us, recorded_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(solve_id) DO NOTHING
`, solve.ID, sessionID, solve.Time.Milliseconds(), solve.Time.Microseconds(), ts(solve.RecordedAt))
	if err != nil {
		return fmt.Errorf("insert solve: %w", err)
	}
	return nil
}

// PersonalBest returns the fastest stored solve, or ErrNotFound.
func (s *Store) PersonalBest(ctx context.Context) (session.Solve, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT solve_id, time_us, recorded_at
FROM solves
ORDER BY time_us ASC, recorded_at ASC
LIMIT 1
`)
	solve, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Solve{}, ErrNotFound
	}
	if err != nil {
		return session.Solve{}, fmt.Errorf("select personal best: %w", err)
	}
	return solve, nil
}

// CountSolves returns the number of stored solves across all sessions.
func (s *Store) CountSolves(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM solves`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count solves: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (session.Solve, error) {
	var (
		id         string
		us         int64
		recordedAt string
	)
	if err := row.Scan(&id, &us, &recordedAt); err != nil {
		return session.Solve{}, err
	}
	at, err := parseTS(recordedAt)
	if err != nil {
		return session.Solve{}, fmt.Errorf("parse recorded_at %q: %w", recordedAt, err)
	}
	return session.Solve{ID: id, Time: time.Duration(us) * time.Microsecond, RecordedAt: at}, nil
}

// tsLayout is fixed width so recorded_at sorts chronologically as text.
const tsLayout = "2006-01-02T15:04:05.000000000Z07:00"

func ts(t time.Time) string {
	return t.UTC().Format(tsLayout)
}

func parseTS(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
