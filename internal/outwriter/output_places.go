package outwriter

import (
	"fmt"
	"io"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/dashboard"
	"github.com/faithboard/faithboard/internal/parquet"
	"github.com/faithboard/faithboard/schema"
)

// PlacesReport ranks the places by hours.
func PlacesReport(places []schema.PlaceStats, cfg *contract.Config) Report {
	fmtFloat, _ := createFormatters(cfg.Precision)

	rows := make([][]string, len(places))
	var total float64
	for i, p := range places {
		rows[i] = []string{fmt.Sprint(i + 1), p.PlaceName, fmtFloat(p.Hours)}
		total += p.Hours
	}

	chart := dashboard.PlacesChart(places)
	return Report{
		Title:       fmt.Sprintf("Top Places (last %d days)", cfg.PlacesDays),
		Emoji:       "📍",
		Header:      []string{"Rank", "Place", "Hours"},
		Rows:        rows,
		LabelColumn: 1,
		Footer:      []string{fmt.Sprintf("Showing %d places, %s hours in total", len(places), fmtFloat(total))},
		Data:        places,
		Parquet: func(w io.Writer) error {
			return parquet.Write(w, parquet.ConvertPlaces(places))
		},
		Chart: &chart,
	}
}

// ChurchReport lists church attendance per week with the weekday breakdown.
func ChurchReport(weeks []schema.ChurchWeekStats, cfg *contract.Config) Report {
	fmtFloat, _ := createFormatters(cfg.Precision)

	header := []string{"Week"}
	header = append(header, dashboard.WeekdayNames[:]...)
	header = append(header, "Total")

	rows := make([][]string, len(weeks))
	var total float64
	for i, wk := range weeks {
		row := []string{wk.WeekStart}
		for _, m := range wk.DailyMinutes {
			row = append(row, fmtFloat(m))
		}
		rows[i] = append(row, fmtFloat(wk.Minutes))
		total += wk.Minutes
	}

	chart := dashboard.ChurchChart(weeks, dashboardOptions(cfg))
	return Report{
		Title:       fmt.Sprintf("Church (last %d weeks)", len(weeks)),
		Emoji:       "⛪",
		Header:      header,
		Rows:        rows,
		LabelColumn: -1,
		Footer:      []string{fmt.Sprintf("Total: %s minutes (%s hours)", fmtFloat(total), fmtFloat(total/60))},
		Data:        weeks,
		Parquet: func(w io.Writer) error {
			merged := make([]schema.FaithWeekStats, len(weeks))
			for i, wk := range weeks {
				merged[i] = schema.FaithWeekStats{
					WeekStart:            wk.WeekStart,
					AtChurchMinutes:      wk.Minutes,
					AtChurchDailyMinutes: wk.DailyMinutes,
				}
			}
			return parquet.Write(w, parquet.ConvertWeeks(merged))
		},
		Chart: &chart,
	}
}
