package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAsOf(t *testing.T) {
	loc, err := time.LoadLocation(DefaultLocation)
	require.NoError(t, err)
	now := time.Date(2025, 10, 21, 12, 0, 0, 0, loc)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"empty is now", "", now},
		{"rfc3339", "2025-10-01T08:30:00Z", time.Date(2025, 10, 1, 8, 30, 0, 0, time.UTC)},
		{"date is local noon", "2025-10-19", time.Date(2025, 10, 19, 12, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAsOf(tt.input, now, loc)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestParseAsOfPhrase(t *testing.T) {
	now := time.Date(2025, 10, 21, 12, 0, 0, 0, time.UTC)
	clock, err := New(time.UTC, 0)
	require.NoError(t, err)

	got, err := ParseAsOf("yesterday", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-20", clock.DayKey(got))
}

func TestParseAsOfInvalid(t *testing.T) {
	_, err := ParseAsOf("not a date at all", time.Now(), nil)
	assert.Error(t, err)
}
