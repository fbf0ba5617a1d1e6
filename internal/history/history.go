// Package history keeps a record of computed totals across runs.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/schema"
)

// StoreManager guards the process-wide history store.
type StoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	store        contract.HistoryStore
}

// Global Manager instance for main logic.
var (
	Manager   = &StoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetStore returns the history store, or nil before Init.
func (mgr *StoreManager) GetStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.store
}

// Init initializes the global history store. An empty backend leaves history disabled.
func Init(backend schema.DatabaseBackend, connStr string) error {
	var initErr error
	initOnce.Do(func() {
		if backend == "" {
			return
		}
		store, err := NewStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize history store: %w", err)
			return
		}
		Manager.Lock()
		Manager.store = store
		Manager.Unlock()
	})
	return initErr
}

// Close should be called on application shutdown.
func Close() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.store != nil {
			_ = Manager.store.Close()
		}
	})
}

// Clear removes the recorded history for the specified backend.
// For SQLite, it deletes the database file.
// For MySQL/PostgreSQL, it drops the history tables and the migration bookkeeping.
// For NoneBackend, it does nothing.
func Clear(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		db, driverName, err := openDB(backend, connStr)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to ping %s database: %w", driverName, err)
		}
		tables := append([]string{"schema_migrations"}, historyTables...)
		for i := len(tables) - 1; i >= 0; i-- {
			if err := dropTable(db, backend, tables[i]); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported history backend for clearing: %s", backend)
	}
}

// dropTable drops the table if it exists.
func dropTable(db *sql.DB, backend schema.DatabaseBackend, tableName string) error {
	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(tableName, backend))
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}
	return nil
}

// Snapshot records one command's totals as a run. Failures are reported as
// warnings, since history never blocks the command that produced the data.
func Snapshot(store contract.HistoryStore, command string, params map[string]any, record func(runID int64) error) {
	if store == nil {
		return
	}
	start := time.Now()
	runID, err := store.RecordRun(start, command, params)
	if err != nil {
		contract.LogWarn("history run not recorded", err)
		return
	}
	if runID == 0 {
		return
	}
	if err := record(runID); err != nil {
		contract.LogWarn("history totals not recorded", err)
	}
	if err := store.EndRun(runID, time.Now()); err != nil {
		contract.LogWarn("history run not completed", err)
	}
}
