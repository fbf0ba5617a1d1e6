// Package period maps instants to local day and week buckets.
//
// A day starts at the rollover hour in the configured location, so activity at
// 02:00 belongs to the previous day. Weeks start on Sunday.
package period

import (
	"fmt"
	"time"
)

// Default values for the local calendar.
const (
	DefaultLocation     = "America/Chicago"
	DefaultRolloverHour = 4
	DateFormat          = "2006-01-02"
)

// Clock converts instants into day and week keys.
type Clock struct {
	loc      *time.Location
	rollover int
}

// New creates a Clock. A nil location means UTC.
func New(loc *time.Location, rolloverHour int) (Clock, error) {
	if rolloverHour < 0 || rolloverHour > 23 {
		return Clock{}, fmt.Errorf("rollover hour must be between 0 and 23 (received %d)", rolloverHour)
	}
	if loc == nil {
		loc = time.UTC
	}
	return Clock{loc: loc, rollover: rolloverHour}, nil
}

// NewNamed loads the named location and creates a Clock.
func NewNamed(name string, rolloverHour int) (Clock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time zone %q: %w", name, err)
	}
	return New(loc, rolloverHour)
}

// Location returns the clock's location.
func (c Clock) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// RolloverHour returns the hour at which a new day begins.
func (c Clock) RolloverHour() int {
	return c.rollover
}

// localDate returns midnight of the calendar day t belongs to.
func (c Clock) localDate(t time.Time) time.Time {
	lt := t.In(c.Location())
	if lt.Hour() < c.rollover {
		lt = lt.AddDate(0, 0, -1)
	}
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, c.Location())
}

// weekDate returns midnight of the Sunday that starts t's week.
func (c Clock) weekDate(t time.Time) time.Time {
	d := c.localDate(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// start returns the instant a calendar day begins, honoring the rollover.
func (c Clock) start(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.rollover, 0, 0, 0, c.Location())
}

// DayKey returns the YYYY-MM-DD key of the day t belongs to.
func (c Clock) DayKey(t time.Time) string {
	return c.localDate(t).Format(DateFormat)
}

// WeekKey returns the YYYY-MM-DD key of the Sunday starting t's week.
func (c Clock) WeekKey(t time.Time) string {
	return c.weekDate(t).Format(DateFormat)
}

// Weekday returns the day of week of t's day, 0 being Sunday.
func (c Clock) Weekday(t time.Time) int {
	return int(c.localDate(t).Weekday())
}

// TodayStart returns the instant the current day began.
func (c Clock) TodayStart(now time.Time) time.Time {
	return c.start(c.localDate(now))
}

// Period is an ordered run of bucket keys with its covering [Start, End) window.
type Period struct {
	Keys  []string
	Start time.Time
	End   time.Time
}

// StartMs returns Start in Unix milliseconds.
func (p Period) StartMs() int64 {
	return p.Start.UnixMilli()
}

// EndMs returns End in Unix milliseconds.
func (p Period) EndMs() int64 {
	return p.End.UnixMilli()
}

// Contains reports whether t falls inside the window.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// LastDays returns the n days ending with today, oldest first.
func (c Clock) LastDays(now time.Time, n int) Period {
	if n <= 0 {
		return Period{}
	}
	today := c.localDate(now)
	first := today.AddDate(0, 0, -(n - 1))
	keys := make([]string, 0, n)
	for i := range n {
		keys = append(keys, first.AddDate(0, 0, i).Format(DateFormat))
	}
	return Period{
		Keys:  keys,
		Start: c.start(first),
		End:   c.start(today.AddDate(0, 0, 1)),
	}
}

// LastWeeks returns the n Sunday-start weeks ending with the current week, oldest first.
func (c Clock) LastWeeks(now time.Time, n int) Period {
	if n <= 0 {
		return Period{}
	}
	current := c.weekDate(now)
	first := current.AddDate(0, 0, -7*(n-1))
	keys := make([]string, 0, n)
	for i := range n {
		keys = append(keys, first.AddDate(0, 0, 7*i).Format(DateFormat))
	}
	return Period{
		Keys:  keys,
		Start: c.start(first),
		End:   c.start(current.AddDate(0, 0, 7)),
	}
}

// Fill builds one result per key in order. Keys missing from values get
// the zero value of V.
func Fill[V, R any](keys []string, values map[string]V, build func(key string, v V) R) []R {
	out := make([]R, 0, len(keys))
	for _, k := range keys {
		out = append(out, build(k, values[k]))
	}
	return out
}

// IsSunday reports whether a YYYY-MM-DD key falls on a Sunday.
// Unparseable keys are not Sundays.
func IsSunday(key string) bool {
	d, err := time.Parse(DateFormat, key)
	if err != nil {
		return false
	}
	return d.Weekday() == time.Sunday
}
