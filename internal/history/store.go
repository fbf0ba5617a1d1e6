package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/schema"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Table names for history tracking.
const (
	runsTable           = "faithboard_runs"
	tierTotalsTable     = "faithboard_tier_totals"
	categoryTotalsTable = "faithboard_category_totals"
)

// Testament keys stored in the tier totals table.
const (
	OldTestamentKey = "OT"
	NewTestamentKey = "NT"
)

// historyTables lists every table owned by the store, parents first.
var historyTables = []string{runsTable, tierTotalsTable, categoryTotalsTable}

// StoreImpl implements the HistoryStore interface.
type StoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.HistoryStore = &StoreImpl{} // Compile-time check

// NewStore creates a new HistoryStore with the specified backend.
func NewStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	if backend == schema.NoneBackend {
		// Return a no-op store for disabled tracking
		return &StoreImpl{backend: backend}, nil
	}

	db, driverName, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure parseTime=true is set."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database file is accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}

	if err := createTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	return &StoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// openDB opens the database handle of a SQL backend without verifying it.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, string, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetHistoryDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		return db, "sqlite", nil

	case schema.MySQLBackend:
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname?parseTime=true", err)
		}
		return db, "mysql", nil

	case schema.PostgreSQLBackend:
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=...", err)
		}
		return db, "pgx", nil

	default:
		return nil, "", fmt.Errorf("unsupported backend: %s", backend)
	}
}

// createTables applies the statements of the first embedded migration, which
// are all idempotent.
func createTables(db *sql.DB, backend schema.DatabaseBackend) error {
	dir, err := migrationDir(backend)
	if err != nil {
		return err
	}
	content, err := migrationsFS.ReadFile("migrations/" + dir + "/1_init.up.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}
	for _, stmt := range strings.Split(string(content), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply %q: %w", strings.TrimSpace(stmt), err)
		}
	}
	return nil
}

// quoteTableName quotes a table name for the backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("%q", name)
	}
}

// placeholders returns n comma-separated bind parameters starting at position start.
func placeholders(backend schema.DatabaseBackend, start, n int) string {
	parts := make([]string, n)
	for i := range parts {
		if backend == schema.PostgreSQLBackend {
			parts[i] = fmt.Sprintf("$%d", start+i)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

// disabled reports whether the store drops every write.
func (s *StoreImpl) disabled() bool {
	return s.backend == schema.NoneBackend || s.db == nil
}

// RecordRun creates a new run and returns its unique ID.
func (s *StoreImpl) RecordRun(startTime time.Time, command string, configParams map[string]any) (int64, error) {
	if s.disabled() {
		return 0, nil
	}

	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	table := quoteTableName(runsTable, s.backend)
	var runID int64
	switch s.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (start_time, command, config_params) VALUES ($1, $2, $3) RETURNING run_id`, table)
		err = s.db.QueryRow(query, startTime, command, string(configJSON)).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (start_time, command, config_params) VALUES (?, ?, ?)`, table)
		var result sql.Result
		result, err = s.db.Exec(query, formatTime(startTime, s.backend), command, string(configJSON))
		if err == nil {
			runID, err = result.LastInsertId()
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return runID, nil
}

// RecordBibleTotals stores every tier of both testaments in both units.
func (s *StoreImpl) RecordBibleTotals(runID int64, stats schema.BibleStats) error {
	if s.disabled() {
		return nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (run_id, testament, unit, tier, tier_count) VALUES (%s)`,
		quoteTableName(tierTotalsTable, s.backend), placeholders(s.backend, 1, 5))

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	testaments := []struct {
		key string
		agg schema.AggregateStats
	}{
		{OldTestamentKey, stats.OldTestament},
		{NewTestamentKey, stats.NewTestament},
	}
	for _, t := range testaments {
		for _, view := range []schema.ViewMode{schema.VersesView, schema.PassagesView} {
			for _, tier := range schema.AllTiers {
				if _, err := tx.Exec(query, runID, t.key, string(view), string(tier), t.agg.Tier(tier, view)); err != nil {
					return fmt.Errorf("failed to insert %s %s %s total: %w", t.key, view, tier, err)
				}
			}
		}
	}
	return tx.Commit()
}

// RecordFaithTotals stores the minutes of each category for a period.
func (s *StoreImpl) RecordFaithTotals(runID int64, period string, minutes map[schema.Category]float64) error {
	if s.disabled() {
		return nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (run_id, period, category, minutes) VALUES (%s)`,
		quoteTableName(categoryTotalsTable, s.backend), placeholders(s.backend, 1, 4))

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, category := range schema.WeeklyCategories {
		value, ok := minutes[category]
		if !ok {
			continue
		}
		if _, err := tx.Exec(query, runID, period, string(category), value); err != nil {
			return fmt.Errorf("failed to insert %s %s total: %w", period, category, err)
		}
	}
	return tx.Commit()
}

// EndRun updates the run with completion data.
func (s *StoreImpl) EndRun(runID int64, endTime time.Time) error {
	if s.disabled() {
		return nil
	}

	table := quoteTableName(runsTable, s.backend)
	query := fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = %s`, table, placeholders(s.backend, 1, 1))
	startTime, err := s.scanTime(s.db.QueryRow(query, runID))
	if err != nil {
		return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
	}

	durationMs := endTime.Sub(startTime).Milliseconds()

	var update string
	switch s.backend {
	case schema.PostgreSQLBackend:
		update = fmt.Sprintf(`UPDATE %s SET end_time = $1, run_duration_ms = $2 WHERE run_id = $3`, table)
	default: // SQLite and MySQL
		update = fmt.Sprintf(`UPDATE %s SET end_time = ?, run_duration_ms = ? WHERE run_id = ?`, table)
	}
	if _, err := s.db.Exec(update, formatTime(endTime, s.backend), durationMs, runID); err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs with their grand totals, newest first.
func (s *StoreImpl) ListRuns(limit int) ([]schema.RunSummary, error) {
	if s.disabled() {
		return nil, nil
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0 (received %d)", limit)
	}

	query := fmt.Sprintf(`SELECT run_id, start_time, command FROM %s ORDER BY run_id DESC LIMIT %d`,
		quoteTableName(runsTable, s.backend), limit)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RunSummary
	index := make(map[int64]int)
	for rows.Next() {
		var summary schema.RunSummary
		var startTime any
		if err := rows.Scan(&summary.RunID, &startTime, &summary.Command); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if summary.StartTime, err = parseTime(startTime); err != nil {
			return nil, fmt.Errorf("failed to parse start_time: %w", err)
		}
		index[summary.RunID] = len(results)
		results = append(results, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	if len(results) == 0 {
		return results, nil
	}

	oldest := results[len(results)-1].RunID
	tiers, err := s.queryTierTotals(oldest)
	if err != nil {
		return nil, err
	}
	for _, t := range tiers {
		i, ok := index[t.RunID]
		if !ok {
			continue
		}
		switch t.Unit {
		case schema.VersesView:
			results[i].TotalVerses += t.Count
		case schema.PassagesView:
			results[i].TotalPassages += t.Count
		}
	}

	categories, err := s.queryCategoryTotals(oldest)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if i, ok := index[c.RunID]; ok {
			results[i].TotalMinutes += c.Minutes
		}
	}
	return results, nil
}

// GetAllRuns retrieves all runs from the store, oldest first.
func (s *StoreImpl) GetAllRuns() ([]schema.RunRecord, error) {
	if s.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT run_id, start_time, end_time, run_duration_ms, command, config_params FROM %s ORDER BY run_id",
		quoteTableName(runsTable, s.backend))
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RunRecord
	for rows.Next() {
		var record schema.RunRecord
		var startTime, endTime any
		if err := rows.Scan(&record.RunID, &startTime, &endTime, &record.RunDurationMs, &record.Command, &record.ConfigParams); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if record.StartTime, err = parseTime(startTime); err != nil {
			return nil, fmt.Errorf("failed to parse start_time: %w", err)
		}
		if endTime != nil {
			end, err := parseTime(endTime)
			if err != nil {
				return nil, fmt.Errorf("failed to parse end_time: %w", err)
			}
			record.EndTime = &end
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return results, nil
}

// GetAllTierTotals retrieves every tier total row.
func (s *StoreImpl) GetAllTierTotals() ([]schema.TierTotalRecord, error) {
	if s.disabled() {
		return nil, nil
	}
	return s.queryTierTotals(0)
}

// GetAllCategoryTotals retrieves every category total row.
func (s *StoreImpl) GetAllCategoryTotals() ([]schema.CategoryTotalRecord, error) {
	if s.disabled() {
		return nil, nil
	}
	return s.queryCategoryTotals(0)
}

// queryTierTotals returns the tier totals of runs from minRunID onward.
func (s *StoreImpl) queryTierTotals(minRunID int64) ([]schema.TierTotalRecord, error) {
	query := fmt.Sprintf(`SELECT run_id, testament, unit, tier, tier_count FROM %s WHERE run_id >= %s ORDER BY run_id, testament, unit, tier`,
		quoteTableName(tierTotalsTable, s.backend), placeholders(s.backend, 1, 1))
	rows, err := s.db.Query(query, minRunID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tier totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.TierTotalRecord
	for rows.Next() {
		var record schema.TierTotalRecord
		var unit, tier string
		if err := rows.Scan(&record.RunID, &record.Testament, &unit, &tier, &record.Count); err != nil {
			return nil, fmt.Errorf("failed to scan tier total: %w", err)
		}
		record.Unit = schema.ViewMode(unit)
		record.Tier = schema.Tier(tier)
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tier totals: %w", err)
	}
	return results, nil
}

// queryCategoryTotals returns the category totals of runs from minRunID onward.
func (s *StoreImpl) queryCategoryTotals(minRunID int64) ([]schema.CategoryTotalRecord, error) {
	query := fmt.Sprintf(`SELECT run_id, period, category, minutes FROM %s WHERE run_id >= %s ORDER BY run_id, period, category`,
		quoteTableName(categoryTotalsTable, s.backend), placeholders(s.backend, 1, 1))
	rows, err := s.db.Query(query, minRunID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.CategoryTotalRecord
	for rows.Next() {
		var record schema.CategoryTotalRecord
		var category string
		if err := rows.Scan(&record.RunID, &record.Period, &category, &record.Minutes); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		record.Category = schema.Category(category)
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals: %w", err)
	}
	return results, nil
}

// GetStatus returns status information about the history store.
func (s *StoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:    string(s.backend),
		Connected:  s.db != nil,
		TableSizes: make(map[string]int64),
	}
	if s.disabled() {
		return status, nil
	}

	table := quoteTableName(runsTable, s.backend)
	if err := s.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		var lastRunTime any
		row := s.db.QueryRow(fmt.Sprintf("SELECT run_id, start_time FROM %s ORDER BY run_id DESC LIMIT 1", table))
		if err := row.Scan(&status.LastRunID, &lastRunTime); err != nil {
			return status, fmt.Errorf("failed to get last run info: %w", err)
		}
		var err error
		if status.LastRunTime, err = parseTime(lastRunTime); err != nil {
			return status, fmt.Errorf("failed to parse last run time: %w", err)
		}

		oldest, err := s.scanTime(s.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id ASC LIMIT 1", table)))
		if err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}
		status.OldestRunTime = oldest
	}

	for _, name := range historyTables {
		var count int64
		if err := s.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(name, s.backend))).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", name, err)
		}
		status.TableSizes[name] = count
	}
	return status, nil
}

// Close closes the underlying connection.
func (s *StoreImpl) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// scanTime reads a single time column from a row.
func (s *StoreImpl) scanTime(row *sql.Row) (time.Time, error) {
	var value any
	if err := row.Scan(&value); err != nil {
		return time.Time{}, err
	}
	return parseTime(value)
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.Format(time.RFC3339Nano)
	default:
		return t
	}
}

// parseTime accepts the native time of MySQL/PostgreSQL and the RFC 3339
// text SQLite stores.
func parseTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		return time.Parse(time.RFC3339Nano, v)
	case []byte:
		return time.Parse(time.RFC3339Nano, string(v))
	default:
		return time.Time{}, fmt.Errorf("unexpected time value %T", value)
	}
}
