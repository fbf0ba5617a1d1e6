package schema

import "time"

// RunRecord represents a row from the faithboard_runs table.
type RunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	Command       string
	ConfigParams  *string
}

// TierTotalRecord represents a row from the faithboard_tier_totals table.
type TierTotalRecord struct {
	RunID     int64
	Testament string
	Unit      ViewMode
	Tier      Tier
	Count     int64
}

// CategoryTotalRecord represents a row from the faithboard_category_totals table.
type CategoryTotalRecord struct {
	RunID    int64
	Period   string
	Category Category
	Minutes  float64
}

// RunSummary is a run joined with its grand totals, used by history listings.
type RunSummary struct {
	RunID         int64     `json:"run_id"`
	StartTime     time.Time `json:"start_time"`
	Command       string    `json:"command"`
	TotalVerses   int64     `json:"total_verses"`
	TotalPassages int64     `json:"total_passages"`
	TotalMinutes  float64   `json:"total_minutes"`
}
