// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/faithboard/faithboard/schema"
)

// StatsProvider defines every statistic the dashboard can show.
// This allows the outer surfaces (CLI, HTTP, MCP) to be tested without real databases.
type StatsProvider interface {
	// --- Anki memorization ---

	// BibleStats returns per-book tier counts, Old Testament then New Testament.
	BibleStats(ctx context.Context) (schema.BibleStats, error)

	// AnkiToday returns today's study time.
	AnkiToday(ctx context.Context) (schema.TodayStats, error)

	// AnkiDaily returns the last days of study time and progress, oldest first.
	AnkiDaily(ctx context.Context) ([]schema.DayStats, error)

	// AnkiWeekly returns the last weeks of study time and progress, oldest first.
	AnkiWeekly(ctx context.Context) ([]schema.WeekStats, error)

	// References returns the distinct references of the deck, sorted.
	References(ctx context.Context) ([]string, error)

	// --- Combined activity ---

	FaithToday(ctx context.Context) (schema.FaithTodayStats, error)
	FaithDaily(ctx context.Context) (schema.FaithDailyStats, error)
	FaithWeekly(ctx context.Context) (schema.FaithWeeklyStats, error)

	// --- Location history ---

	// TopPlaces returns the places with the most hours in the configured window.
	TopPlaces(ctx context.Context) ([]schema.PlaceStats, error)

	// ChurchWeeks returns church attendance per week with a weekday breakdown.
	ChurchWeeks(ctx context.Context) ([]schema.ChurchWeekStats, error)
}

// HistoryStore defines the interface for recording snapshots of computed totals.
type HistoryStore interface {
	// RecordRun creates a new run and returns its unique ID
	RecordRun(startTime time.Time, command string, configParams map[string]any) (int64, error)

	// RecordBibleTotals stores the tier totals of both testaments in both units
	RecordBibleTotals(runID int64, stats schema.BibleStats) error

	// RecordFaithTotals stores per-category minutes for a period ("daily", "weekly", "today")
	RecordFaithTotals(runID int64, period string, minutes map[schema.Category]float64) error

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time) error

	// ListRuns returns the most recent runs with their grand totals, newest first
	ListRuns(limit int) ([]schema.RunSummary, error)

	// GetAllRuns returns every run row, oldest first
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllTierTotals returns every tier total row
	GetAllTierTotals() ([]schema.TierTotalRecord, error)

	// GetAllCategoryTotals returns every category total row
	GetAllCategoryTotals() ([]schema.CategoryTotalRecord, error)

	// GetStatus returns status information about the store
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection
	Close() error
}
