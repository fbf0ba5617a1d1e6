package history

import (
	"testing"
	"time"

	"github.com/faithboard/faithboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBibleStats() schema.BibleStats {
	stats := schema.NewBibleStats()
	stats.OldTestament.AddBook(schema.BookStats{Book: "Genesis", MatureVerses: 10, YoungVerses: 2, MaturePassages: 3, UnseenPassages: 1})
	stats.NewTestament.AddBook(schema.BookStats{Book: "John", LearningVerses: 4, SuspendedVerses: 1, LearningPassages: 2})
	return stats
}

func newMemoryStore(t *testing.T) *StoreImpl {
	t.Helper()
	store, err := NewStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	impl, ok := store.(*StoreImpl)
	require.True(t, ok)
	return impl
}

func TestStore_NoneBackend(t *testing.T) {
	store, err := NewStore(schema.NoneBackend, "")
	require.NoError(t, err)

	runID, err := store.RecordRun(time.Now(), "books", map[string]any{"view": "verses"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	assert.NoError(t, store.RecordBibleTotals(1, sampleBibleStats()))
	assert.NoError(t, store.RecordFaithTotals(1, "daily", map[schema.Category]float64{schema.AnkiCategory: 5}))
	assert.NoError(t, store.EndRun(1, time.Now()))

	runs, err := store.ListRuns(10)
	assert.NoError(t, err)
	assert.Empty(t, runs)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)
	assert.NoError(t, store.Close())
}

func TestStore_UnsupportedBackend(t *testing.T) {
	_, err := NewStore(schema.DatabaseBackend("oracle"), "")
	assert.ErrorContains(t, err, "unsupported backend")
}

func TestStore_SQLiteRoundTrip(t *testing.T) {
	store := newMemoryStore(t)

	start := time.Date(2025, 10, 19, 15, 0, 0, 0, time.UTC)
	runID, err := store.RecordRun(start, "books", map[string]any{"view": "verses"})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	require.NoError(t, store.RecordBibleTotals(runID, sampleBibleStats()))
	require.NoError(t, store.RecordFaithTotals(runID, "daily", map[schema.Category]float64{
		schema.AnkiCategory:    30,
		schema.ReadingCategory: 12.5,
	}))
	require.NoError(t, store.EndRun(runID, start.Add(1500*time.Millisecond)))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "books", runs[0].Command)
	assert.True(t, start.Equal(runs[0].StartTime))
	require.NotNil(t, runs[0].EndTime)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.Equal(t, int32(1500), *runs[0].RunDurationMs)
	require.NotNil(t, runs[0].ConfigParams)
	assert.JSONEq(t, `{"view":"verses"}`, *runs[0].ConfigParams)

	tiers, err := store.GetAllTierTotals()
	require.NoError(t, err)
	// two testaments, two units, five tiers
	assert.Len(t, tiers, 20)

	categories, err := store.GetAllCategoryTotals()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, schema.AnkiCategory, categories[0].Category)
	assert.Equal(t, 30.0, categories[0].Minutes)
}

func TestStore_ListRuns(t *testing.T) {
	store := newMemoryStore(t)
	base := time.Date(2025, 10, 19, 15, 0, 0, 0, time.UTC)

	first, err := store.RecordRun(base, "books", nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordBibleTotals(first, sampleBibleStats()))

	second, err := store.RecordRun(base.Add(time.Hour), "faith daily", nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordFaithTotals(second, "daily", map[schema.Category]float64{
		schema.AnkiCategory:   20,
		schema.PrayerCategory: 10,
	}))

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, second, runs[0].RunID)
	assert.Equal(t, "faith daily", runs[0].Command)
	assert.Equal(t, 30.0, runs[0].TotalMinutes)
	assert.Equal(t, int64(0), runs[0].TotalVerses)

	assert.Equal(t, first, runs[1].RunID)
	assert.Equal(t, int64(17), runs[1].TotalVerses)
	assert.Equal(t, int64(6), runs[1].TotalPassages)

	limited, err := store.ListRuns(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second, limited[0].RunID)

	_, err = store.ListRuns(0)
	assert.Error(t, err)
}

func TestStore_GetStatus(t *testing.T) {
	store := newMemoryStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)

	base := time.Date(2025, 10, 19, 15, 0, 0, 0, time.UTC)
	for i := range 3 {
		runID, err := store.RecordRun(base.Add(time.Duration(i)*time.Hour), "books", nil)
		require.NoError(t, err)
		require.NoError(t, store.RecordBibleTotals(runID, sampleBibleStats()))
	}

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 3, status.TotalRuns)
	assert.Equal(t, int64(3), status.LastRunID)
	assert.True(t, base.Add(2*time.Hour).Equal(status.LastRunTime))
	assert.True(t, base.Equal(status.OldestRunTime))
	assert.Equal(t, int64(3), status.TableSizes[runsTable])
	assert.Equal(t, int64(60), status.TableSizes[tierTotalsTable])
	assert.Equal(t, int64(0), status.TableSizes[categoryTotalsTable])
}

func TestQuoteTableName(t *testing.T) {
	tests := []struct {
		backend  schema.DatabaseBackend
		expected string
	}{
		{schema.SQLiteBackend, `"faithboard_runs"`},
		{schema.MySQLBackend, "`faithboard_runs`"},
		{schema.PostgreSQLBackend, `"faithboard_runs"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			assert.Equal(t, tt.expected, quoteTableName(runsTable, tt.backend))
		})
	}
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?, ?, ?", placeholders(schema.SQLiteBackend, 1, 3))
	assert.Equal(t, "?", placeholders(schema.MySQLBackend, 1, 1))
	assert.Equal(t, "$2, $3", placeholders(schema.PostgreSQLBackend, 2, 2))
}

func TestParseTime(t *testing.T) {
	now := time.Date(2025, 10, 19, 15, 0, 0, 123, time.UTC)

	parsed, err := parseTime(now)
	require.NoError(t, err)
	assert.Equal(t, now, parsed)

	parsed, err = parseTime(now.Format(time.RFC3339Nano))
	require.NoError(t, err)
	assert.True(t, now.Equal(parsed))

	parsed, err = parseTime([]byte(now.Format(time.RFC3339Nano)))
	require.NoError(t, err)
	assert.True(t, now.Equal(parsed))

	_, err = parseTime(42)
	assert.Error(t, err)
}
