package outwriter

import (
	"fmt"
	"io"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/dashboard"
	"github.com/faithboard/faithboard/internal/parquet"
	"github.com/faithboard/faithboard/schema"
)

// FaithTodayReport shows today's minutes per category.
func FaithTodayReport(today schema.FaithTodayStats, cfg *contract.Config) Report {
	fmtFloat, _ := createFormatters(cfg.Precision)
	return Report{
		Title:  "Faith Today",
		Emoji:  "🙏",
		Header: []string{"Anki", "Reading", "Prayer", "Total", "Hours"},
		Rows: [][]string{{
			fmtFloat(today.AnkiMinutes),
			fmtFloat(today.ReadingMinutes),
			fmtFloat(today.PrayerMinutes),
			fmtFloat(today.TotalMinutes),
			fmtFloat(today.TotalHours),
		}},
		LabelColumn: -1,
		Data:        today,
	}
}

// categoryHeader returns the bucket column followed by one column per category and a total.
func categoryHeader(bucket string, categories []schema.Category) []string {
	header := []string{bucket}
	for _, c := range categories {
		header = append(header, c.Label())
	}
	return append(header, "Total")
}

// categoryFooter prints the per-category totals of a table.
func categoryFooter(table dashboard.CategoryTable, fmtFloat func(float64) string) []string {
	line := "Totals (minutes):"
	for _, row := range table.Rows {
		line += fmt.Sprintf(" %s %s", row.Category.Label(), fmtFloat(row.Minutes))
	}
	return []string{line + fmt.Sprintf(" | all %s (%s hours)", fmtFloat(table.Total), fmtFloat(table.Total/60))}
}

// FaithDailyReport lists the merged minutes per day.
func FaithDailyReport(stats schema.FaithDailyStats, cfg *contract.Config) Report {
	fmtFloat, _ := createFormatters(cfg.Precision)

	rows := make([][]string, len(stats.Days))
	for i, d := range stats.Days {
		row := []string{d.Date}
		for _, c := range schema.DailyCategories {
			row = append(row, fmtFloat(d.Minutes(c)))
		}
		rows[i] = append(row, fmtFloat(d.TotalMinutes()))
	}

	s := stats.Summary
	footer := categoryFooter(dashboard.DailyTable(stats.Days), fmtFloat)
	footer = append(footer,
		fmt.Sprintf("Active on %d of %d days, %s minutes per day on average", s.DaysWithAnyActivity, s.TotalDays, fmtFloat(s.AverageMinutesPerDay)),
		fmt.Sprintf("Anki matured %d, lost %d, net %d passages", s.AnkiTotalMatured, s.AnkiTotalLost, s.AnkiNetProgress),
	)

	chart := dashboard.DailyChart(stats.Days, dashboardOptions(cfg))
	return Report{
		Title:       fmt.Sprintf("Faith Daily (last %d days)", len(stats.Days)),
		Emoji:       "📅",
		Header:      categoryHeader("Date", schema.DailyCategories),
		Rows:        rows,
		LabelColumn: -1,
		Footer:      footer,
		Data:        stats,
		Parquet: func(w io.Writer) error {
			return parquet.Write(w, parquet.ConvertDays(stats.Days))
		},
		Chart: &chart,
	}
}

// FaithWeeklyReport lists the merged minutes per week.
func FaithWeeklyReport(stats schema.FaithWeeklyStats, cfg *contract.Config) Report {
	fmtFloat, _ := createFormatters(cfg.Precision)

	rows := make([][]string, len(stats.Weeks))
	for i, wk := range stats.Weeks {
		row := []string{wk.WeekStart}
		for _, c := range schema.WeeklyCategories {
			row = append(row, fmtFloat(wk.Minutes(c)))
		}
		rows[i] = append(row, fmtFloat(wk.TotalMinutes()))
	}

	s := stats.Summary
	footer := categoryFooter(dashboard.WeeklyTable(stats.Weeks), fmtFloat)
	footer = append(footer,
		fmt.Sprintf("Active in %d of %d weeks, %s minutes per week on average", s.WeeksWithAnyActivity, s.TotalWeeks, fmtFloat(s.AverageMinutesPerWeek)),
		fmt.Sprintf("Anki matured %d, lost %d, net %d passages", s.AnkiTotalMatured, s.AnkiTotalLost, s.AnkiNetProgress),
	)

	chart := dashboard.WeeklyChart(stats.Weeks, dashboardOptions(cfg))
	return Report{
		Title:       fmt.Sprintf("Faith Weekly (last %d weeks)", len(stats.Weeks)),
		Emoji:       "📆",
		Header:      categoryHeader("Week", schema.WeeklyCategories),
		Rows:        rows,
		LabelColumn: -1,
		Footer:      footer,
		Data:        stats,
		Parquet: func(w io.Writer) error {
			return parquet.Write(w, parquet.ConvertWeeks(stats.Weeks))
		},
		Chart: &chart,
	}
}
