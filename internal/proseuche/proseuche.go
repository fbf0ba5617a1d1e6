// Package proseuche reads prayer time from a prayer timer database.
//
// The table and column names are configurable because the app's schema is
// not fixed across versions. Start times are unix seconds and durations are
// seconds.
package proseuche

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/period"
	"github.com/faithboard/faithboard/internal/sessions"
	"github.com/faithboard/faithboard/schema"
)

// Options names the session table and its columns.
type Options struct {
	Table          string
	StartColumn    string
	DurationColumn string
	Clock          period.Clock
}

// Reader is a read-only handle on the prayer database.
type Reader struct {
	db  *sql.DB
	src sessions.Source
}

// Open opens the prayer database at path after validating the identifiers.
func Open(path string, opts Options) (*Reader, error) {
	for kind, name := range map[string]string{
		"prayer table":           opts.Table,
		"prayer start column":    opts.StartColumn,
		"prayer duration column": opts.DurationColumn,
	} {
		if err := contract.ValidateIdentifier(kind, name); err != nil {
			return nil, err
		}
	}

	db, err := sessions.OpenReadOnly(path, "prayer database")
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %[2]s, %[3]s FROM %[1]s WHERE %[2]s >= ? AND %[2]s < ?`,
		opts.Table, opts.StartColumn, opts.DurationColumn)
	return &Reader{
		db:  db,
		src: sessions.Source{DB: db, Query: query, Clock: opts.Clock},
	}, nil
}

// Close closes the underlying database.
func (r *Reader) Close() error {
	return r.db.Close()
}

// TodayMinutes returns today's prayer time.
func (r *Reader) TodayMinutes(ctx context.Context, now time.Time) (float64, error) {
	return r.src.TodayMinutes(ctx, now)
}

// Daily returns prayer minutes for the last n days, oldest first.
func (r *Reader) Daily(ctx context.Context, now time.Time, n int) ([]schema.MinutesStats, error) {
	return r.src.Daily(ctx, now, n)
}

// Weekly returns prayer minutes for the last n weeks, oldest first.
func (r *Reader) Weekly(ctx context.Context, now time.Time, n int) ([]schema.MinutesStats, error) {
	return r.src.Weekly(ctx, now, n)
}
