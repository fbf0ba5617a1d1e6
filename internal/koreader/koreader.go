// Package koreader reads Bible reading time from a KOReader statistics database.
package koreader

import (
	"context"
	"database/sql"
	"time"

	"github.com/faithboard/faithboard/internal/period"
	"github.com/faithboard/faithboard/internal/sessions"
	"github.com/faithboard/faithboard/schema"
)

// pageQuery selects page turns of books whose title matches a LIKE pattern.
// SQLite LIKE is case-insensitive for ASCII.
const pageQuery = `
	SELECT p.start_time, p.duration
	FROM page_stat_data p
	JOIN book b ON b.id = p.id_book
	WHERE b.title LIKE ?
		AND p.start_time >= ? AND p.start_time < ?`

// Options selects the books counted as Bible reading.
type Options struct {
	TitlePattern string // substring of the book title, default "Bible"
	Clock        period.Clock
}

// Reader is a read-only handle on statistics.sqlite3.
type Reader struct {
	db  *sql.DB
	src sessions.Source
}

// Open opens the statistics database at path.
func Open(path string, opts Options) (*Reader, error) {
	db, err := sessions.OpenReadOnly(path, "koreader statistics")
	if err != nil {
		return nil, err
	}
	title := opts.TitlePattern
	if title == "" {
		title = "Bible"
	}
	return &Reader{
		db: db,
		src: sessions.Source{
			DB:    db,
			Query: pageQuery,
			Args:  []any{"%" + title + "%"},
			Clock: opts.Clock,
		},
	}, nil
}

// Close closes the underlying database.
func (r *Reader) Close() error {
	return r.db.Close()
}

// TodayMinutes returns today's reading time.
func (r *Reader) TodayMinutes(ctx context.Context, now time.Time) (float64, error) {
	return r.src.TodayMinutes(ctx, now)
}

// Daily returns reading minutes for the last n days, oldest first.
func (r *Reader) Daily(ctx context.Context, now time.Time, n int) ([]schema.MinutesStats, error) {
	return r.src.Daily(ctx, now, n)
}

// Weekly returns reading minutes for the last n weeks, oldest first.
func (r *Reader) Weekly(ctx context.Context, now time.Time, n int) ([]schema.MinutesStats, error) {
	return r.src.Weekly(ctx, now, n)
}
