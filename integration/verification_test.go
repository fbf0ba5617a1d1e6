//go:build basic

// Package integration contains integration tests for faithboard.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Database backends: go test -tags database ./integration
package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVersion(t *testing.T) {
	out, err := runCommand(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "faithboard ")
	assert.Contains(t, out, "Platform:")
	assert.Contains(t, out, "Runtime:")
}

func TestConfigMergesEnvAndFlags(t *testing.T) {
	env := map[string]string{
		"FAITHBOARD_DAYS":               "14",
		"FAITHBOARD_HISTORY_DB_CONNECT": "host=db dbname=faith password=hunter2",
	}
	out, err := runCommand(t, env, "config", "--view", "passages")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "passages", got["view"])
	assert.EqualValues(t, "14", got["days"])
	assert.Equal(t, "REDACTED", got["history-db-connect"])
	assert.NotContains(t, out, "hunter2")
}

func TestInvalidChart(t *testing.T) {
	out, err := runCommand(t, nil, "chart", "pie")
	require.Error(t, err)
	assert.Contains(t, out, "invalid argument")
}

func TestInvalidView(t *testing.T) {
	out, err := runCommand(t, nil, "books", "--view", "chapters")
	require.Error(t, err)
	assert.Contains(t, out, "invalid view 'chapters'")
}

func TestHistoryWithSQLite(t *testing.T) {
	out, err := runCommand(t, nil, "history", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "History Backend: sqlite")
	assert.Contains(t, out, "Total Runs: 0")

	out, err = runCommand(t, nil, "history", "clear")
	require.NoError(t, err)
	assert.Equal(t, "History cleared successfully.", strings.TrimSpace(out))
}

func TestHistoryDisabled(t *testing.T) {
	out, err := runCommand(t, map[string]string{"FAITHBOARD_HISTORY_BACKEND": "none"}, "history", "migrate")
	require.Error(t, err)
	assert.Contains(t, out, "migrations are not supported for none backend")
}
