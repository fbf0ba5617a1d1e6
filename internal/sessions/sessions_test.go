package sessions

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/faithboard/faithboard/internal/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenReadOnly(t *testing.T) {
	_, err := OpenReadOnly("", "test db")
	assert.ErrorContains(t, err, "not configured")

	_, err = OpenReadOnly(filepath.Join(t.TempDir(), "missing.db"), "test db")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "s.db")
	rw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = rw.Exec(`CREATE TABLE s (start INTEGER, secs INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, rw.Close())

	db, err := OpenReadOnly(path, "test db")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Exec(`INSERT INTO s VALUES (1, 1)`)
	assert.Error(t, err, "read-only handle must reject writes")
}

func TestSourceBuckets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Exec(`CREATE TABLE s (kind TEXT, start INTEGER, secs INTEGER)`)
	require.NoError(t, err)

	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	rows := []struct {
		kind string
		at   time.Time
		secs int
	}{
		{"a", time.Date(2025, 10, 21, 8, 0, 0, 0, loc), 600},
		{"a", time.Date(2025, 10, 21, 3, 0, 0, 0, loc), 300}, // before rollover, previous day
		{"a", time.Date(2025, 10, 19, 9, 0, 0, 0, loc), 1800},
		{"a", time.Date(2025, 10, 18, 9, 0, 0, 0, loc), -5},
		{"b", time.Date(2025, 10, 21, 9, 0, 0, 0, loc), 6000},
	}
	for _, r := range rows {
		_, err := db.Exec(`INSERT INTO s VALUES (?, ?, ?)`, r.kind, r.at.Unix(), r.secs)
		require.NoError(t, err)
	}

	clock, err := period.New(loc, 4)
	require.NoError(t, err)
	src := Source{
		DB:    db,
		Query: `SELECT start, secs FROM s WHERE kind = ? AND start >= ? AND start < ?`,
		Args:  []any{"a"},
		Clock: clock,
	}
	now := time.Date(2025, 10, 21, 12, 0, 0, 0, loc)
	ctx := context.Background()

	today, err := src.TodayMinutes(ctx, now)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, today, 1e-9)

	days, err := src.Daily(ctx, now, 3)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "2025-10-19", days[0].Key)
	assert.InDelta(t, 30.0, days[0].Minutes, 1e-9)
	assert.InDelta(t, 5.0, days[1].Minutes, 1e-9)
	assert.InDelta(t, 10.0, days[2].Minutes, 1e-9)

	weeks, err := src.Weekly(ctx, now, 2)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, "2025-10-12", weeks[0].Key)
	assert.Zero(t, weeks[0].Minutes)
	assert.Equal(t, "2025-10-19", weeks[1].Key)
	assert.InDelta(t, 45.0, weeks[1].Minutes, 1e-9)
}
