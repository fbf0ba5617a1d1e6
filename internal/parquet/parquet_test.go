package parquet

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/faithboard/faithboard/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowSchemas(t *testing.T) {
	tests := []struct {
		name    string
		model   any
		columns []string
	}{
		{"books", new(BookRow), []string{"testament", "book", "mature_verses", "suspended_passages"}},
		{"days", new(DayRow), []string{"date", "anki_minutes", "reading_minutes", "prayer_minutes"}},
		{"weeks", new(WeekRow), []string{"week_start", "at_church_minutes", "at_church_daily_minutes"}},
		{"places", new(PlaceRow), []string{"place_name", "hours"}},
		{"runs", new(RunRow), []string{"run_id", "start_time", "end_time", "run_duration_ms", "command", "config_params"}},
		{"tier totals", new(TierTotalRow), []string{"run_id", "testament", "unit", "tier", "count"}},
		{"category totals", new(CategoryTotalRow), []string{"run_id", "period", "category", "minutes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := parquet.SchemaOf(tt.model)
			for _, col := range tt.columns {
				_, ok := s.Lookup(col)
				assert.True(t, ok, "column %s should exist", col)
			}
		})
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	end := time.Date(2025, 10, 21, 12, 0, 5, 0, time.UTC)
	duration := int32(5000)
	params := `{"output":"text"}`
	runs := []RunRow{
		{RunID: 1, StartTime: end.Add(-5 * time.Second), EndTime: &end, RunDurationMs: &duration, Command: "books", ConfigParams: &params},
		{RunID: 2, StartTime: end, Command: "faith daily"},
	}

	path := filepath.Join(t.TempDir(), "runs.parquet")
	require.NoError(t, WriteFile(runs, path))

	got, err := parquet.ReadFile[RunRow](path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "books", got[0].Command)
	require.NotNil(t, got[0].EndTime)
	assert.True(t, end.Equal(*got[0].EndTime))
	assert.Equal(t, params, *got[0].ConfigParams)
	assert.Nil(t, got[1].EndTime)
	assert.Nil(t, got[1].RunDurationMs)
	assert.Nil(t, got[1].ConfigParams)
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []PlaceRow{}))
	assert.Greater(t, buf.Len(), 0)
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile([]PlaceRow{}, filepath.Join(t.TempDir(), "missing", "x.parquet"))
	assert.ErrorContains(t, err, "failed to create output file")
}

func TestConverters(t *testing.T) {
	stats := schema.NewBibleStats()
	stats.OldTestament.AddBook(schema.BookStats{Book: "Genesis", MatureVerses: 3})
	stats.NewTestament.AddBook(schema.BookStats{Book: "John", YoungPassages: 1})

	books := ConvertBooks(stats)
	require.Len(t, books, 2)
	assert.Equal(t, BookRow{Testament: "Old Testament", Book: "Genesis", MatureVerses: 3}, books[0])
	assert.Equal(t, "New Testament", books[1].Testament)

	weeks := ConvertWeeks([]schema.FaithWeekStats{{WeekStart: "2025-10-19", AtChurchDailyMinutes: [7]float64{0: 90}}})
	assert.Equal(t, []float64{90, 0, 0, 0, 0, 0, 0}, weeks[0].AtChurchDailyMinutes)

	days := ConvertDays([]schema.FaithDayStats{{Date: "2025-10-19", PrayerMinutes: 5}})
	assert.Equal(t, 5.0, days[0].PrayerMinutes)

	places := ConvertPlaces([]schema.PlaceStats{{PlaceName: "Church", Hours: 2}})
	assert.Equal(t, PlaceRow{PlaceName: "Church", Hours: 2}, places[0])

	tiers := ConvertTierTotalRecords([]schema.TierTotalRecord{{RunID: 1, Testament: "OT", Unit: schema.VersesView, Tier: schema.MatureTier, Count: 7}})
	assert.Equal(t, TierTotalRow{RunID: 1, Testament: "OT", Unit: "verses", Tier: "mature", Count: 7}, tiers[0])

	cats := ConvertCategoryTotalRecords([]schema.CategoryTotalRecord{{RunID: 1, Period: "daily", Category: schema.PrayerCategory, Minutes: 30}})
	assert.Equal(t, CategoryTotalRow{RunID: 1, Period: "daily", Category: "prayer", Minutes: 30}, cats[0])
}
