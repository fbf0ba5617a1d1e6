// Package sessions buckets timed activity rows of a read-only sqlite
// database into local days and weeks.
package sessions

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/faithboard/faithboard/internal/period"
	"github.com/faithboard/faithboard/schema"

	_ "modernc.org/sqlite" // SQLite driver.
)

// OpenReadOnly opens an existing sqlite file without write access.
func OpenReadOnly(path, what string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("%s path is not configured", what)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", what, err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", what, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open %s in read-only mode: %w", what, err)
	}
	return db, nil
}

// Source reads sessions with a query selecting (start unix seconds,
// duration seconds). The query ends with two placeholders bounding the start
// as [from, to) in unix seconds, which follow Args.
type Source struct {
	DB    *sql.DB
	Query string
	Args  []any
	Clock period.Clock
}

// TodayMinutes returns the minutes of sessions started today.
func (s Source) TodayMinutes(ctx context.Context, now time.Time) (float64, error) {
	days, err := s.Daily(ctx, now, 1)
	if err != nil {
		return 0, err
	}
	return days[0].Minutes, nil
}

// Daily returns minutes for the last n days, oldest first.
func (s Source) Daily(ctx context.Context, now time.Time, n int) ([]schema.MinutesStats, error) {
	return s.buckets(ctx, s.Clock.LastDays(now, n), s.Clock.DayKey)
}

// Weekly returns minutes for the last n weeks, oldest first.
func (s Source) Weekly(ctx context.Context, now time.Time, n int) ([]schema.MinutesStats, error) {
	return s.buckets(ctx, s.Clock.LastWeeks(now, n), s.Clock.WeekKey)
}

func (s Source) buckets(ctx context.Context, p period.Period, key func(time.Time) string) ([]schema.MinutesStats, error) {
	args := append(append([]any{}, s.Args...), p.Start.Unix(), p.End.Unix())
	rows, err := s.DB.QueryContext(ctx, s.Query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	seconds := make(map[string]float64)
	for rows.Next() {
		var start int64
		var duration float64
		if err := rows.Scan(&start, &duration); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if duration <= 0 {
			continue
		}
		seconds[key(time.Unix(start, 0))] += duration
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return period.Fill(p.Keys, seconds, func(k string, secs float64) schema.MinutesStats {
		return schema.MinutesStats{Key: k, Minutes: secs / 60}
	}), nil
}
