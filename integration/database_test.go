//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/faithboard/faithboard/internal/history"
	"github.com/faithboard/faithboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startMySQL(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "faithboard",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = mysqlC.Terminate(ctx) })

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	return fmt.Sprintf("root:secret123@tcp(%s:%s)/faithboard?parseTime=true&multiStatements=true", host, port.Port())
}

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres sslmode=disable", host, port.Port())
}

func sampleStats() schema.BibleStats {
	stats := schema.NewBibleStats()
	stats.OldTestament.AddBook(schema.BookStats{Book: "Psalms", MatureVerses: 12, MaturePassages: 2, YoungVerses: 4, YoungPassages: 1})
	stats.NewTestament.AddBook(schema.BookStats{Book: "Romans", LearningVerses: 3, LearningPassages: 1, UnseenVerses: 9, UnseenPassages: 2})
	return stats
}

// exerciseStore records a run through the store and reads it back.
func exerciseStore(t *testing.T, backend schema.DatabaseBackend, connStr string) {
	t.Helper()
	store, err := history.NewStore(backend, connStr)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	start := time.Date(2025, 10, 19, 8, 0, 0, 0, time.UTC)
	runID, err := store.RecordRun(start, "books", map[string]any{"view": "verses"})
	require.NoError(t, err)
	require.NotZero(t, runID)

	require.NoError(t, store.RecordBibleTotals(runID, sampleStats()))
	require.NoError(t, store.RecordFaithTotals(runID, "weekly", map[schema.Category]float64{
		schema.AnkiCategory:   45,
		schema.ChurchCategory: 90,
	}))
	require.NoError(t, store.EndRun(runID, start.Add(2*time.Second)))

	runs, err := store.ListRuns(5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "books", runs[0].Command)
	assert.Equal(t, int64(28), runs[0].TotalVerses)
	assert.Equal(t, int64(6), runs[0].TotalPassages)
	assert.InDelta(t, 135, runs[0].TotalMinutes, 1e-9)
	assert.True(t, runs[0].StartTime.Equal(start))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 1, status.TotalRuns)
}

// exerciseCLI drives the history commands of the binary against the backend.
func exerciseCLI(t *testing.T, backend schema.DatabaseBackend, connStr string) {
	t.Helper()
	env := map[string]string{
		"FAITHBOARD_HISTORY_BACKEND":    string(backend),
		"FAITHBOARD_HISTORY_DB_CONNECT": connStr,
	}

	_, err := runCommand(t, env, "history", "clear")
	require.NoError(t, err)

	out, err := runCommand(t, env, "history", "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully migrated")

	out, err = runCommand(t, env, "history", "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "No migration needed")

	out, err = runCommand(t, env, "history", "status")
	require.NoError(t, err)
	assert.Contains(t, out, string(backend))

	_, err = runCommand(t, env, "history", "list", "--output", "json")
	require.NoError(t, err)

	_, err = runCommand(t, env, "history", "migrate", "--target-version", "0")
	require.NoError(t, err)
}

// TestHistoryWithMySQL tests the history store and commands with a MySQL backend.
func TestHistoryWithMySQL(t *testing.T) {
	connStr := startMySQL(t)
	exerciseCLI(t, schema.MySQLBackend, connStr)
	exerciseStore(t, schema.MySQLBackend, connStr)
	require.NoError(t, history.Clear(schema.MySQLBackend, "", connStr))
}

// TestHistoryWithPostgres tests the history store and commands with a PostgreSQL backend.
func TestHistoryWithPostgres(t *testing.T) {
	connStr := startPostgres(t)
	exerciseCLI(t, schema.PostgreSQLBackend, connStr)
	exerciseStore(t, schema.PostgreSQLBackend, connStr)
	require.NoError(t, history.Clear(schema.PostgreSQLBackend, "", connStr))
}
