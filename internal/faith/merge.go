// Package faith combines the Anki, reading, prayer and church sources into
// daily, weekly and today reports.
package faith

import (
	"errors"
	"fmt"

	"github.com/faithboard/faithboard/schema"
)

// ErrSourceMismatch is returned when two sources do not cover the same buckets.
var ErrSourceMismatch = errors.New("source buckets do not line up")

func checkKeys(what string, keys []string, other []schema.MinutesStats) error {
	if len(other) != len(keys) {
		return fmt.Errorf("%w: %s has %d buckets, expected %d", ErrSourceMismatch, what, len(other), len(keys))
	}
	for i, m := range other {
		if m.Key != keys[i] {
			return fmt.Errorf("%w: %s bucket %d is %s, expected %s", ErrSourceMismatch, what, i, m.Key, keys[i])
		}
	}
	return nil
}

// MergeDaily zips the daily sources by position.
func MergeDaily(anki []schema.DayStats, reading, prayer []schema.MinutesStats) ([]schema.FaithDayStats, error) {
	keys := make([]string, len(anki))
	for i, d := range anki {
		keys[i] = d.Date
	}
	if err := checkKeys("reading", keys, reading); err != nil {
		return nil, err
	}
	if err := checkKeys("prayer", keys, prayer); err != nil {
		return nil, err
	}

	days := make([]schema.FaithDayStats, len(anki))
	for i, d := range anki {
		days[i] = schema.FaithDayStats{
			Date:                   d.Date,
			AnkiMinutes:            d.Minutes,
			AnkiMaturedPassages:    d.MaturedPassages,
			AnkiLostPassages:       d.LostPassages,
			AnkiCumulativePassages: d.CumulativePassages,
			ReadingMinutes:         reading[i].Minutes,
			PrayerMinutes:          prayer[i].Minutes,
		}
	}
	return days, nil
}

// MergeWeekly zips the weekly sources by position.
func MergeWeekly(anki []schema.WeekStats, reading, prayer []schema.MinutesStats, church []schema.ChurchWeekStats) ([]schema.FaithWeekStats, error) {
	keys := make([]string, len(anki))
	for i, w := range anki {
		keys[i] = w.WeekStart
	}
	if err := checkKeys("reading", keys, reading); err != nil {
		return nil, err
	}
	if err := checkKeys("prayer", keys, prayer); err != nil {
		return nil, err
	}
	churchKeys := make([]schema.MinutesStats, len(church))
	for i, c := range church {
		churchKeys[i] = schema.MinutesStats{Key: c.WeekStart, Minutes: c.Minutes}
	}
	if err := checkKeys("church", keys, churchKeys); err != nil {
		return nil, err
	}

	weeks := make([]schema.FaithWeekStats, len(anki))
	for i, w := range anki {
		weeks[i] = schema.FaithWeekStats{
			WeekStart:              w.WeekStart,
			AnkiMinutes:            w.Minutes,
			AnkiMaturedPassages:    w.MaturedPassages,
			AnkiLostPassages:       w.LostPassages,
			AnkiCumulativePassages: w.CumulativePassages,
			ReadingMinutes:         reading[i].Minutes,
			AtChurchMinutes:        church[i].Minutes,
			AtChurchDailyMinutes:   church[i].DailyMinutes,
			PrayerMinutes:          prayer[i].Minutes,
		}
	}
	return weeks, nil
}
