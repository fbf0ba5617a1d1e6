package proseuche

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

func createPrayerDB(t *testing.T, table, start, duration string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Exec(`CREATE TABLE ` + table + ` (id INTEGER PRIMARY KEY, ` + start + ` INTEGER, ` + duration + ` INTEGER)`)
	require.NoError(t, err)
	for _, s := range []struct {
		at   time.Time
		secs int
	}{
		{time.Date(2025, 10, 21, 6, 0, 0, 0, time.UTC), 900},
		{time.Date(2025, 10, 20, 21, 0, 0, 0, time.UTC), 300},
	} {
		_, err := db.Exec(`INSERT INTO `+table+` (`+start+`, `+duration+`) VALUES (?, ?)`, s.at.Unix(), s.secs)
		require.NoError(t, err)
	}
	return path
}

func TestReader(t *testing.T) {
	clock, err := period.New(time.UTC, 0)
	require.NoError(t, err)

	tests := []struct {
		name  string
		table string
		start string
		dur   string
	}{
		{"default names", "prayer_sessions", "started_at", "duration_seconds"},
		{"custom names", "sessions", "begin_ts", "secs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createPrayerDB(t, tt.table, tt.start, tt.dur)
			r, err := Open(path, Options{Table: tt.table, StartColumn: tt.start, DurationColumn: tt.dur, Clock: clock})
			require.NoError(t, err)
			defer func() { _ = r.Close() }()

			ctx := context.Background()
			now := time.Date(2025, 10, 21, 12, 0, 0, 0, time.UTC)

			today, err := r.TodayMinutes(ctx, now)
			require.NoError(t, err)
			assert.InDelta(t, 15.0, today, 1e-9)

			days, err := r.Daily(ctx, now, 2)
			require.NoError(t, err)
			require.Len(t, days, 2)
			assert.InDelta(t, 5.0, days[0].Minutes, 1e-9)

			weeks, err := r.Weekly(ctx, now, 1)
			require.NoError(t, err)
			assert.InDelta(t, 20.0, weeks[0].Minutes, 1e-9)
		})
	}
}

func TestOpenRejectsBadIdentifiers(t *testing.T) {
	path := createPrayerDB(t, "prayer_sessions", "started_at", "duration_seconds")
	_, err := Open(path, Options{Table: "prayer_sessions; DROP TABLE x", StartColumn: "started_at", DurationColumn: "duration_seconds"})
	assert.Error(t, err)
}

func TestMissingTable(t *testing.T) {
	clock, err := period.New(time.UTC, 0)
	require.NoError(t, err)
	path := createPrayerDB(t, "prayer_sessions", "started_at", "duration_seconds")
	r, err := Open(path, Options{Table: "other", StartColumn: "started_at", DurationColumn: "duration_seconds", Clock: clock})
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	_, err = r.TodayMinutes(context.Background(), time.Now())
	assert.Error(t, err)
}
