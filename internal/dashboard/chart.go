package dashboard

import (
	"strings"

	"github.com/faithboard/faithboard/schema"
)

// Chart is a derived chart with everything a renderer needs.
type Chart struct {
	Name  schema.ChartName
	Title string
	Set   SeriesSet

	// AxisTitle names the value axis ("Verses", "Minutes", ...).
	AxisTitle string

	// Divider is the first New Testament bar, or NoDivider.
	Divider int

	// DateLabels marks labels as YYYY-MM-DD keys.
	DateLabels bool

	// SundayTicks colors Sunday labels in the alert color. Only day axes set
	// it; week keys always fall on a Sunday.
	SundayTicks bool

	// DurationTicks formats value ticks as "Hh Mm".
	DurationTicks bool
}

// Unit returns the lowercase unit used in tooltips.
func (c Chart) Unit() string {
	return strings.ToLower(c.AxisTitle)
}

// XTick formats the label at index i.
func (c Chart) XTick(i int) string {
	if i < 0 || i >= len(c.Set.Labels) {
		return ""
	}
	if c.DateLabels {
		return FormatDateTick(c.Set.Labels[i])
	}
	return c.Set.Labels[i]
}

// XTickColor colors the label at index i.
func (c Chart) XTickColor(i int) string {
	if !c.SundayTicks || i < 0 || i >= len(c.Set.Labels) {
		return LabelColor
	}
	return TickColor(c.Set.Labels[i])
}

// YTick formats a value tick.
func (c Chart) YTick(v float64) string {
	if c.DurationTicks {
		return FormatMinutes(v)
	}
	return FormatValue(v)
}

// Footer is the tooltip footer at index i.
func (c Chart) Footer(i int) string {
	return TooltipFooter(c.Set.Values(i), c.Unit())
}

// BibleChart builds the memorization chart.
func BibleChart(stats schema.BibleStats, opts Options) Chart {
	set := BibleSeries(stats, opts)
	return Chart{
		Name:      schema.BibleChart,
		Title:     "Bible Memorization by Book",
		Set:       set,
		AxisTitle: ViewLabel(opts.view()),
		Divider:   DividerIndex(set.Labels),
	}
}

// DailyChart builds the faith daily chart.
func DailyChart(days []schema.FaithDayStats, opts Options) Chart {
	return Chart{
		Name:          schema.DailyChart,
		Title:         "Daily Activity",
		Set:           FaithDailySeries(days, opts),
		AxisTitle:     UnitLabel(opts.unit()),
		Divider:       NoDivider,
		DateLabels:    true,
		SundayTicks:   true,
		DurationTicks: opts.unit() == schema.MinutesUnit,
	}
}

// WeeklyChart builds the faith weekly chart.
func WeeklyChart(weeks []schema.FaithWeekStats, opts Options) Chart {
	return Chart{
		Name:          schema.WeeklyChart,
		Title:         "Weekly Activity",
		Set:           FaithWeeklySeries(weeks, opts),
		AxisTitle:     UnitLabel(opts.unit()),
		Divider:       NoDivider,
		DateLabels:    true,
		DurationTicks: opts.unit() == schema.MinutesUnit,
	}
}

// ChurchChart builds the church day-of-week chart.
func ChurchChart(weeks []schema.ChurchWeekStats, opts Options) Chart {
	return Chart{
		Name:          schema.ChurchChart,
		Title:         "Time at Church by Week",
		Set:           ChurchSeries(weeks, opts),
		AxisTitle:     UnitLabel(opts.unit()),
		Divider:       NoDivider,
		DateLabels:    true,
		DurationTicks: opts.unit() == schema.MinutesUnit,
	}
}

// PlacesChart builds the top places chart. Places are always in hours.
func PlacesChart(places []schema.PlaceStats) Chart {
	return Chart{
		Name:      schema.PlacesChart,
		Title:     "Top Places",
		Set:       PlacesSeries(places),
		AxisTitle: "Hours",
		Divider:   NoDivider,
	}
}
