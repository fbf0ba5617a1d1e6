package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCommandTree(t *testing.T) {
	want := map[string][]string{
		"faith":   {"today", "daily", "weekly"},
		"history": {"status", "list", "clear", "migrate", "export"},
	}
	for _, name := range []string{"books", "today", "daily", "weekly", "refs", "places", "church", "chart", "serve", "mcp", "config", "version"} {
		want[name] = nil
	}

	for name, subs := range want {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
		for _, sub := range subs {
			sc, _, err := rootCmd.Find([]string{name, sub})
			require.NoError(t, err, name+" "+sub)
			assert.Equal(t, sub, sc.Name())
		}
	}
}

func TestChartArgs(t *testing.T) {
	assert.NoError(t, chartCmd.Args(chartCmd, []string{"bible"}))
	assert.Error(t, chartCmd.Args(chartCmd, []string{"pie"}))
	assert.Error(t, chartCmd.Args(chartCmd, nil))
}

func TestWriteConfigYAML(t *testing.T) {
	var buf bytes.Buffer
	settings := map[string]any{
		"view":               "passages",
		"days":               30,
		"history-db-connect": "user:secret@tcp(db:3306)/faith",
		"config":             "ignored.yaml",
	}
	require.NoError(t, writeConfigYAML(&buf, settings))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]any{
		"view":               "passages",
		"days":               30,
		"history-db-connect": "REDACTED",
	}, got)
	assert.NotContains(t, buf.String(), "secret")
	// Keys are sorted.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("days")), bytes.Index(buf.Bytes(), []byte("view")))
}

func TestWriteConfigYAMLEmptySecret(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeConfigYAML(&buf, map[string]any{"history-db-connect": ""}))
	assert.NotContains(t, buf.String(), "REDACTED")
}
