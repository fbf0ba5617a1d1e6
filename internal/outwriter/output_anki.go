package outwriter

import (
	"fmt"
	"io"

	"github.com/faithboard/faithboard/internal/anki"
	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/parquet"
	"github.com/faithboard/faithboard/schema"
)

// AnkiTodayReport shows today's study time.
func AnkiTodayReport(today schema.TodayStats, cfg *contract.Config) Report {
	fmtFloat, _ := createFormatters(cfg.Precision)
	return Report{
		Title:       "Anki Today",
		Emoji:       "🗓️",
		Header:      []string{"Minutes", "Hours"},
		Rows:        [][]string{{fmtFloat(today.Minutes), fmtFloat(today.Hours)}},
		LabelColumn: -1,
		Data:        today,
	}
}

type ankiDailyPayload struct {
	Days    []schema.DayStats   `json:"days"`
	Summary schema.DailySummary `json:"summary"`
}

// AnkiDailyReport lists study time and progress per day.
func AnkiDailyReport(days []schema.DayStats, cfg *contract.Config) Report {
	fmtFloat, fmtInt := createFormatters(cfg.Precision)
	summary := anki.SummarizeDays(days)

	rows := make([][]string, len(days))
	for i, d := range days {
		rows[i] = []string{d.Date, fmtFloat(d.Minutes), fmtInt(d.MaturedPassages), fmtInt(d.LostPassages), fmtInt(d.CumulativePassages)}
	}

	return Report{
		Title:       fmt.Sprintf("Anki Daily (last %d days)", len(days)),
		Emoji:       "📅",
		Header:      []string{"Date", "Minutes", "Matured", "Lost", "Cumulative"},
		Rows:        rows,
		LabelColumn: -1,
		Footer: []string{
			fmt.Sprintf("Studied %d of %d days, %s minutes (%s hours), %s minutes per day on average",
				summary.DaysStudied, summary.TotalDays, fmtFloat(summary.TotalMinutes), fmtFloat(summary.TotalHours), fmtFloat(summary.AverageMinutesPerDay)),
			fmt.Sprintf("Matured %s, lost %s, net %s passages",
				fmtInt(summary.TotalMatured), fmtInt(summary.TotalLost), fmtInt(summary.NetProgress)),
		},
		Data: ankiDailyPayload{Days: days, Summary: summary},
		Parquet: func(w io.Writer) error {
			merged := make([]schema.FaithDayStats, len(days))
			for i, d := range days {
				merged[i] = schema.FaithDayStats{
					Date:                   d.Date,
					AnkiMinutes:            d.Minutes,
					AnkiMaturedPassages:    d.MaturedPassages,
					AnkiLostPassages:       d.LostPassages,
					AnkiCumulativePassages: d.CumulativePassages,
				}
			}
			return parquet.Write(w, parquet.ConvertDays(merged))
		},
	}
}

type ankiWeeklyPayload struct {
	Weeks   []schema.WeekStats   `json:"weeks"`
	Summary schema.WeeklySummary `json:"summary"`
}

// AnkiWeeklyReport lists study time and progress per week.
func AnkiWeeklyReport(weeks []schema.WeekStats, cfg *contract.Config) Report {
	fmtFloat, fmtInt := createFormatters(cfg.Precision)
	summary := anki.SummarizeWeeks(weeks)

	rows := make([][]string, len(weeks))
	for i, w := range weeks {
		rows[i] = []string{w.WeekStart, fmtFloat(w.Minutes), fmtInt(w.MaturedPassages), fmtInt(w.LostPassages), fmtInt(w.CumulativePassages)}
	}

	return Report{
		Title:       fmt.Sprintf("Anki Weekly (last %d weeks)", len(weeks)),
		Emoji:       "📆",
		Header:      []string{"Week", "Minutes", "Matured", "Lost", "Cumulative"},
		Rows:        rows,
		LabelColumn: -1,
		Footer: []string{
			fmt.Sprintf("Studied %d of %d weeks, %s minutes (%s hours), %s minutes per week on average",
				summary.WeeksStudied, summary.TotalWeeks, fmtFloat(summary.TotalMinutes), fmtFloat(summary.TotalHours), fmtFloat(summary.AverageMinutesPerWeek)),
			fmt.Sprintf("Matured %s, lost %s, net %s passages",
				fmtInt(summary.TotalMatured), fmtInt(summary.TotalLost), fmtInt(summary.NetProgress)),
		},
		Data: ankiWeeklyPayload{Weeks: weeks, Summary: summary},
		Parquet: func(w io.Writer) error {
			merged := make([]schema.FaithWeekStats, len(weeks))
			for i, wk := range weeks {
				merged[i] = schema.FaithWeekStats{
					WeekStart:              wk.WeekStart,
					AnkiMinutes:            wk.Minutes,
					AnkiMaturedPassages:    wk.MaturedPassages,
					AnkiLostPassages:       wk.LostPassages,
					AnkiCumulativePassages: wk.CumulativePassages,
				}
			}
			return parquet.Write(w, parquet.ConvertWeeks(merged))
		},
	}
}

// ReferencesReport lists the distinct references of the deck.
func ReferencesReport(refs []string) Report {
	rows := make([][]string, len(refs))
	for i, ref := range refs {
		rows[i] = []string{ref}
	}
	return Report{
		Title:       fmt.Sprintf("References (%d)", len(refs)),
		Emoji:       "🔖",
		Header:      []string{"Reference"},
		Rows:        rows,
		LabelColumn: 0,
		Data:        refs,
	}
}
