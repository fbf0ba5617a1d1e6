package faith

import "github.com/faithboard/faithboard/schema"

func summarizeCategory(values []float64) schema.CategorySummary {
	var s schema.CategorySummary
	for _, v := range values {
		s.TotalMinutes += v
		if v > 0 {
			s.ActiveBuckets++
		}
	}
	s.TotalHours = s.TotalMinutes / 60
	if len(values) > 0 {
		s.AverageMinutes = s.TotalMinutes / float64(len(values))
	}
	return s
}

func column[T any](rows []T, get func(T) float64) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = get(r)
	}
	return out
}

// SummarizeDaily totals a merged daily report.
func SummarizeDaily(days []schema.FaithDayStats) schema.FaithDailySummary {
	s := schema.FaithDailySummary{
		Anki:      summarizeCategory(column(days, func(d schema.FaithDayStats) float64 { return d.AnkiMinutes })),
		Reading:   summarizeCategory(column(days, func(d schema.FaithDayStats) float64 { return d.ReadingMinutes })),
		Prayer:    summarizeCategory(column(days, func(d schema.FaithDayStats) float64 { return d.PrayerMinutes })),
		TotalDays: len(days),
	}
	for _, d := range days {
		s.AnkiTotalMatured += d.AnkiMaturedPassages
		s.AnkiTotalLost += d.AnkiLostPassages
		total := d.TotalMinutes()
		s.TotalMinutes += total
		if total > 0 {
			s.DaysWithAnyActivity++
		}
	}
	s.AnkiNetProgress = s.AnkiTotalMatured - s.AnkiTotalLost
	s.TotalHours = s.TotalMinutes / 60
	if len(days) > 0 {
		s.AverageMinutesPerDay = s.TotalMinutes / float64(len(days))
	}
	return s
}

// SummarizeWeekly totals a merged weekly report.
func SummarizeWeekly(weeks []schema.FaithWeekStats) schema.FaithWeeklySummary {
	s := schema.FaithWeeklySummary{
		Anki:       summarizeCategory(column(weeks, func(w schema.FaithWeekStats) float64 { return w.AnkiMinutes })),
		Reading:    summarizeCategory(column(weeks, func(w schema.FaithWeekStats) float64 { return w.ReadingMinutes })),
		Church:     summarizeCategory(column(weeks, func(w schema.FaithWeekStats) float64 { return w.AtChurchMinutes })),
		Prayer:     summarizeCategory(column(weeks, func(w schema.FaithWeekStats) float64 { return w.PrayerMinutes })),
		TotalWeeks: len(weeks),
	}
	for _, w := range weeks {
		s.AnkiTotalMatured += w.AnkiMaturedPassages
		s.AnkiTotalLost += w.AnkiLostPassages
		total := w.TotalMinutes()
		s.TotalMinutes += total
		if total > 0 {
			s.WeeksWithAnyActivity++
		}
	}
	s.AnkiNetProgress = s.AnkiTotalMatured - s.AnkiTotalLost
	s.TotalHours = s.TotalMinutes / 60
	if len(weeks) > 0 {
		s.AverageMinutesPerWeek = s.TotalMinutes / float64(len(weeks))
	}
	return s
}

// DailyTotals returns minutes per daily category, used for history snapshots.
func DailyTotals(s schema.FaithDailySummary) map[schema.Category]float64 {
	return map[schema.Category]float64{
		schema.AnkiCategory:    s.Anki.TotalMinutes,
		schema.ReadingCategory: s.Reading.TotalMinutes,
		schema.PrayerCategory:  s.Prayer.TotalMinutes,
	}
}

// WeeklyTotals returns minutes per weekly category.
func WeeklyTotals(s schema.FaithWeeklySummary) map[schema.Category]float64 {
	return map[schema.Category]float64{
		schema.AnkiCategory:    s.Anki.TotalMinutes,
		schema.ReadingCategory: s.Reading.TotalMinutes,
		schema.ChurchCategory:  s.Church.TotalMinutes,
		schema.PrayerCategory:  s.Prayer.TotalMinutes,
	}
}

// TodayTotals returns minutes per category for today.
func TodayTotals(t schema.FaithTodayStats) map[schema.Category]float64 {
	return map[schema.Category]float64{
		schema.AnkiCategory:    t.AnkiMinutes,
		schema.ReadingCategory: t.ReadingMinutes,
		schema.PrayerCategory:  t.PrayerMinutes,
	}
}
