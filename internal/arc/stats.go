package arc

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/faithboard/faithboard/internal/period"
	"github.com/faithboard/faithboard/schema"
)

// Options names the special places and the calendar used for weeks.
type Options struct {
	ChurchPlace string
	HomePlace   string
	Clock       period.Clock
}

// Export is an export directory with the options applied to its statistics.
type Export struct {
	path string
	opts Options
}

// Open checks that path is a directory.
func Open(path string, opts Options) (*Export, error) {
	if path == "" {
		return nil, fmt.Errorf("arc export path is not configured")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open arc export: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("arc export %s is not a directory", path)
	}
	return &Export{path: path, opts: opts}, nil
}

// Path returns the export directory.
func (e *Export) Path() string {
	return e.path
}

// visits returns the non-deleted visits that resolved to a place.
func (e *Export) visits() ([]ItemWithPlace, error) {
	items, err := LoadAllItemsWithPlaces(e.path)
	if err != nil {
		return nil, err
	}
	out := items[:0]
	for _, it := range items {
		if it.Item.Base.IsVisit && !it.Item.Base.Deleted && it.Place != nil {
			out = append(out, it)
		}
	}
	return out, nil
}

// ChurchWeeks returns church minutes for the last n weeks with a
// Sunday..Saturday breakdown. A visit counts in full toward the day it starts.
func (e *Export) ChurchWeeks(now time.Time, n int) ([]schema.ChurchWeekStats, error) {
	visits, err := e.visits()
	if err != nil {
		return nil, err
	}

	clock := e.opts.Clock
	weeks := make(map[string]schema.ChurchWeekStats)
	for _, v := range visits {
		if v.Place.Name != e.opts.ChurchPlace {
			continue
		}
		start := v.Item.Start()
		key := clock.WeekKey(start)
		minutes := v.Item.Duration().Minutes()

		w := weeks[key]
		w.Minutes += minutes
		w.DailyMinutes[clock.Weekday(start)] += minutes
		weeks[key] = w
	}

	p := clock.LastWeeks(now, n)
	return period.Fill(p.Keys, weeks, func(key string, w schema.ChurchWeekStats) schema.ChurchWeekStats {
		w.WeekStart = key
		return w
	}), nil
}

// TopPlaces returns hours per place for visits starting in the last days,
// excluding home, most hours first, at most limit entries.
func (e *Export) TopPlaces(now time.Time, days, limit int) ([]schema.PlaceStats, error) {
	visits, err := e.visits()
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	hours := make(map[string]float64)
	for _, v := range visits {
		if v.Place.Name == e.opts.HomePlace || v.Item.Start().Before(cutoff) {
			continue
		}
		hours[v.Place.Name] += v.Item.Duration().Hours()
	}

	stats := make([]schema.PlaceStats, 0, len(hours))
	for name, h := range hours {
		stats = append(stats, schema.PlaceStats{PlaceName: name, Hours: h})
	}
	slices.SortFunc(stats, func(a, b schema.PlaceStats) int {
		if c := cmp.Compare(b.Hours, a.Hours); c != 0 {
			return c
		}
		return cmp.Compare(a.PlaceName, b.PlaceName)
	})
	if limit >= 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}
