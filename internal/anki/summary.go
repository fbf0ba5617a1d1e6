package anki

import "github.com/faithboard/faithboard/schema"

// SummarizeDays totals a daily report. An empty report has zero averages.
func SummarizeDays(days []schema.DayStats) schema.DailySummary {
	s := schema.DailySummary{TotalDays: len(days)}
	for _, d := range days {
		s.TotalMinutes += d.Minutes
		s.TotalMatured += d.MaturedPassages
		s.TotalLost += d.LostPassages
		if d.Minutes > 0 {
			s.DaysStudied++
		}
	}
	s.TotalHours = s.TotalMinutes / 60
	if len(days) > 0 {
		s.AverageMinutesPerDay = s.TotalMinutes / float64(len(days))
	}
	s.AverageHoursPerDay = s.AverageMinutesPerDay / 60
	s.NetProgress = s.TotalMatured - s.TotalLost
	return s
}

// SummarizeWeeks totals a weekly report. An empty report has zero averages.
func SummarizeWeeks(weeks []schema.WeekStats) schema.WeeklySummary {
	s := schema.WeeklySummary{TotalWeeks: len(weeks)}
	for _, w := range weeks {
		s.TotalMinutes += w.Minutes
		s.TotalMatured += w.MaturedPassages
		s.TotalLost += w.LostPassages
		if w.Minutes > 0 {
			s.WeeksStudied++
		}
	}
	s.TotalHours = s.TotalMinutes / 60
	if len(weeks) > 0 {
		s.AverageMinutesPerWeek = s.TotalMinutes / float64(len(weeks))
	}
	s.AverageHoursPerWeek = s.AverageMinutesPerWeek / 60
	s.NetProgress = s.TotalMatured - s.TotalLost
	return s
}
