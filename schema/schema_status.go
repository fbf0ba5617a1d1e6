package schema

import "time"

// HistoryStatus represents the status of the history store.
type HistoryStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// HealthCheck is the body of the HTTP health endpoint.
type HealthCheck struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse is the body of every HTTP error.
type ErrorResponse struct {
	Error string `json:"error"`
}
