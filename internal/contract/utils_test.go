package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"", false, true},
		{"maybe", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateIdentifier(t *testing.T) {
	assert.NoError(t, ValidateIdentifier("table", "prayer_sessions"))
	assert.NoError(t, ValidateIdentifier("column", "_x1"))
	assert.Error(t, ValidateIdentifier("table", "1abc"))
	assert.Error(t, ValidateIdentifier("table", "a b"))
	assert.Error(t, ValidateIdentifier("table", "a;--"))
	assert.Error(t, ValidateIdentifier("table", ""))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "anki", "collection.anki2"), ExpandPath("~/anki/collection.anki2"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/tmp/x.db", ExpandPath("/tmp/x.db"))
	assert.Equal(t, "~user/x", ExpandPath("~user/x"))
	assert.Equal(t, "", ExpandPath(""))
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.txt")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, path)
}

func TestGetHistoryDBFilePath(t *testing.T) {
	assert.Equal(t, ".faithboard_history.db", filepath.Base(GetHistoryDBFilePath()))
}
