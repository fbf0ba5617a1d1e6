package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chicagoClock(t *testing.T) Clock {
	t.Helper()
	c, err := NewNamed(DefaultLocation, DefaultRolloverHour)
	require.NoError(t, err)
	return c
}

func TestNewRejectsBadRollover(t *testing.T) {
	_, err := New(time.UTC, 24)
	assert.Error(t, err)
	_, err = New(time.UTC, -1)
	assert.Error(t, err)

	_, err = NewNamed("Not/AZone", 4)
	assert.Error(t, err)
}

func TestDayKeyRollover(t *testing.T) {
	c := chicagoClock(t)
	loc := c.Location()

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"before rollover", time.Date(2025, 10, 19, 3, 59, 0, 0, loc), "2025-10-18"},
		{"at rollover", time.Date(2025, 10, 19, 4, 0, 0, 0, loc), "2025-10-19"},
		{"late evening", time.Date(2025, 10, 19, 23, 30, 0, 0, loc), "2025-10-19"},
		{"utc instant", time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC), "2025-10-19"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.DayKey(tt.at))
		})
	}
}

func TestWeekKeyAndWeekday(t *testing.T) {
	c := chicagoClock(t)
	loc := c.Location()

	// 2025-10-19 is a Sunday.
	sunday := time.Date(2025, 10, 19, 10, 0, 0, 0, loc)
	assert.Equal(t, "2025-10-19", c.WeekKey(sunday))
	assert.Equal(t, 0, c.Weekday(sunday))

	saturday := time.Date(2025, 10, 25, 22, 0, 0, 0, loc)
	assert.Equal(t, "2025-10-19", c.WeekKey(saturday))
	assert.Equal(t, 6, c.Weekday(saturday))

	// Early Sunday morning still belongs to Saturday of the previous week.
	earlySunday := time.Date(2025, 10, 26, 2, 0, 0, 0, loc)
	assert.Equal(t, "2025-10-19", c.WeekKey(earlySunday))
	assert.Equal(t, 6, c.Weekday(earlySunday))
}

func TestTodayStart(t *testing.T) {
	c := chicagoClock(t)
	loc := c.Location()

	now := time.Date(2025, 10, 21, 2, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 10, 20, 4, 0, 0, 0, loc), c.TodayStart(now))

	now = time.Date(2025, 10, 21, 12, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 10, 21, 4, 0, 0, 0, loc), c.TodayStart(now))
}

func TestLastDays(t *testing.T) {
	c := chicagoClock(t)
	loc := c.Location()
	now := time.Date(2025, 10, 21, 12, 0, 0, 0, loc)

	p := c.LastDays(now, 30)
	require.Len(t, p.Keys, 30)
	assert.Equal(t, "2025-09-22", p.Keys[0])
	assert.Equal(t, "2025-10-21", p.Keys[29])
	assert.Equal(t, time.Date(2025, 9, 22, 4, 0, 0, 0, loc), p.Start)
	assert.Equal(t, time.Date(2025, 10, 22, 4, 0, 0, 0, loc), p.End)
	assert.Equal(t, p.Start.UnixMilli(), p.StartMs())
	assert.True(t, p.Contains(now))
	assert.False(t, p.Contains(p.End))

	assert.Empty(t, c.LastDays(now, 0).Keys)
}

func TestLastWeeks(t *testing.T) {
	c := chicagoClock(t)
	loc := c.Location()
	now := time.Date(2025, 10, 22, 12, 0, 0, 0, loc) // Wednesday

	p := c.LastWeeks(now, 12)
	require.Len(t, p.Keys, 12)
	assert.Equal(t, "2025-08-03", p.Keys[0])
	assert.Equal(t, "2025-10-19", p.Keys[11])
	for _, k := range p.Keys {
		assert.True(t, IsSunday(k), k)
	}
	assert.Equal(t, time.Date(2025, 10, 26, 4, 0, 0, 0, loc), p.End)
}

func TestFill(t *testing.T) {
	keys := []string{"a", "b", "c"}
	values := map[string]int{"a": 1, "c": 3, "z": 26}

	got := Fill(keys, values, func(k string, v int) string {
		return k + ":" + string(rune('0'+v))
	})
	assert.Equal(t, []string{"a:1", "b:0", "c:3"}, got)
}

func TestIsSunday(t *testing.T) {
	assert.True(t, IsSunday("2025-10-19"))
	assert.False(t, IsSunday("2025-10-20"))
	assert.False(t, IsSunday("not-a-date"))
}
