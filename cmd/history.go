package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/history"
	"github.com/faithboard/faithboard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultHistoryRuns = 20

// historyBackend reads the backend settings without the full shared setup.
func historyBackend() (schema.DatabaseBackend, string, error) {
	if err := loadConfigFile(); err != nil {
		return "", "", err
	}

	backend := schema.DatabaseBackend(strings.ToLower(viper.GetString("history-backend")))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", "", fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return "", "", err
	}
	return backend, connStr, nil
}

// historySetup loads minimal configuration needed for history operations.
// This avoids validating the source paths for simple history operations.
func historySetup() error {
	backend, connStr, err := historyBackend()
	if err != nil {
		return err
	}
	if err := history.Init(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Output = schema.OutputMode(strings.ToLower(viper.GetString("output")))
	cfg.Precision = viper.GetInt("precision")
	cfg.Width = viper.GetInt("width")
	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup does NOT initialize the store or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup(_ *cobra.Command, _ []string) error {
	backend, connStr, err := historyBackend()
	if err != nil {
		return err
	}
	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	return nil
}

// historyStore returns the initialized store or exits.
func historyStore() contract.HistoryStore {
	store := history.Manager.GetStore()
	if store == nil {
		contract.LogFatal("History is not available", fmt.Errorf("no store for backend %s", cfg.HistoryBackend))
	}
	return store
}

// historyCmd focused on history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead of
// the full sharedSetup used by report commands. This avoids validating
// the source paths and calendar settings for simple history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the recorded history of totals",
	Long: `Manage the history of computed totals.

Every books and faith run records:
- Run metadata (timestamp, command, configuration, duration)
- Bible tier totals per testament, in verses and passages
- Faith category minutes of the report period

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show history statistics and connection info
  list    - List recent runs with their grand totals
  clear   - Remove all recorded history
  migrate - Run database schema migrations
  export  - Export history to Parquet files

Examples:
  # Check history status
  faithboard history status

  # Export to Parquet
  faithboard history export --output-file history`,
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display history statistics and connection details",
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := historyStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		history.PrintStatus(os.Stdout, status)
	},
}

// historyListCmd lists recent runs.
var historyListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List recent runs with their grand totals",
	PreRunE: historySetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		n, _ := cmd.Flags().GetInt("runs")
		if n <= 0 {
			contract.LogFatal("Invalid --runs", fmt.Errorf("runs must be greater than 0 (received %d)", n))
		}
		runs, err := historyStore().ListRuns(n)
		if err != nil {
			contract.LogFatal("Failed to list history runs", err)
		}
		if err := writer.WriteRuns(runs, cfg); err != nil {
			contract.LogFatal("Failed to write history runs", err)
		}
	},
}

// historyClearCmd clears the history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded history",
	Long: `Delete all recorded runs and totals.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the history tables`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		backend, connStr, err := historyBackend()
		if err != nil {
			return err
		}
		cfg.HistoryBackend = backend
		cfg.HistoryDBConnect = connStr
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.Clear(cfg.HistoryBackend, contract.GetHistoryDBFilePath(), cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the history store.

By default, migrates to the latest version. Use --target-version for specific versions.
MySQL connection strings need multiStatements=true.

Examples:
  # Migrate to latest version (default)
  faithboard history migrate

  # Rollback to initial state
  faithboard history migrate --target-version 0`,
	PreRunE: historyMigrateSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		targetVersion, _ := cmd.Flags().GetInt("target-version")
		if err := history.Migrate(os.Stdout, cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

// historyExportCmd exports the history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history to Parquet for BI tools and analytics",
	Long: `Export all recorded history to Parquet format.

Writes three files next to --output-file:
- <output-file>.runs.parquet
- <output-file>.tier_totals.parquet
- <output-file>.category_totals.parquet

Requires: --output-file parameter`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.Export(os.Stdout, historyStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
	},
}
