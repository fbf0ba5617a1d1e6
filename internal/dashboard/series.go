// Package dashboard shapes statistics into stacked bar series, chart options
// and table totals. Every function is pure and recomputes from its inputs.
package dashboard

import (
	"github.com/faithboard/faithboard/internal/bible"
	"github.com/faithboard/faithboard/internal/period"
	"github.com/faithboard/faithboard/schema"
)

// Stack is the shared stack key of every series of a chart.
const Stack = "total"

// sundayBorderWidth outlines Sunday bars of daily charts.
const sundayBorderWidth = 2

// Series is one stacked layer. Every slice is aligned with the set's labels.
type Series struct {
	Name            string
	Data            []float64
	BackgroundColor []string
	BorderColor     []string
	BorderWidth     []int
	Stack           string
}

// SeriesSet is the chart data: labels plus aligned series.
type SeriesSet struct {
	Labels []string
	Series []Series
}

// Empty reports whether there is nothing to draw.
func (s SeriesSet) Empty() bool {
	return len(s.Labels) == 0
}

// Values returns the value of every series at index i.
func (s SeriesSet) Values(i int) []float64 {
	out := make([]float64, 0, len(s.Series))
	for _, series := range s.Series {
		if i >= 0 && i < len(series.Data) {
			out = append(out, series.Data[i])
		} else {
			out = append(out, 0)
		}
	}
	return out
}

// Options are the view selectors shared by all derivations.
type Options struct {
	View      schema.ViewMode
	Unit      schema.TimeUnit
	HideEmpty bool
}

func (o Options) view() schema.ViewMode {
	if o.View == "" {
		return schema.VersesView
	}
	return o.View
}

func (o Options) unit() schema.TimeUnit {
	if o.Unit == "" {
		return schema.MinutesUnit
	}
	return o.Unit
}

// convert turns minutes into the selected unit.
func (o Options) convert(minutes float64) float64 {
	if o.unit() == schema.HoursUnit {
		return minutes / 60
	}
	return minutes
}

func newSeries(name string, n int) Series {
	return Series{
		Name:            name,
		Data:            make([]float64, 0, n),
		BackgroundColor: make([]string, 0, n),
		BorderColor:     make([]string, 0, n),
		BorderWidth:     make([]int, 0, n),
		Stack:           Stack,
	}
}

func (s *Series) add(v float64, fill string, border string, width int) {
	s.Data = append(s.Data, v)
	s.BackgroundColor = append(s.BackgroundColor, fill)
	s.BorderColor = append(s.BorderColor, border)
	s.BorderWidth = append(s.BorderWidth, width)
}

// BibleBooks returns the books in chart order: Old Testament then New Testament.
func BibleBooks(stats schema.BibleStats) []schema.BookStats {
	books := make([]schema.BookStats, 0, len(stats.OldTestament.Books)+len(stats.NewTestament.Books))
	books = append(books, stats.OldTestament.Books...)
	return append(books, stats.NewTestament.Books...)
}

// bookVisible reports whether any charted tier is non-zero in the view.
func bookVisible(b schema.BookStats, view schema.ViewMode) bool {
	for _, tier := range schema.ChartTiers {
		if b.Tier(tier, view) != 0 {
			return true
		}
	}
	return false
}

// BibleSeries derives one series per charted tier over the books that have
// any progress in the selected view. Bars are colored by their book's testament.
func BibleSeries(stats schema.BibleStats, opts Options) SeriesSet {
	view := opts.view()
	books := BibleBooks(stats)

	set := SeriesSet{Labels: []string{}}
	series := make([]Series, len(schema.ChartTiers))
	for i, tier := range schema.ChartTiers {
		series[i] = newSeries(tier.Label(), len(books))
	}
	for _, b := range books {
		if !bookVisible(b, view) {
			continue
		}
		testament := bible.OldTestament
		if bible.IsNewTestament(b.Book) {
			testament = bible.NewTestament
		}
		set.Labels = append(set.Labels, b.Book)
		for i, tier := range schema.ChartTiers {
			c := TierColor(testament, tier)
			series[i].add(float64(b.Tier(tier, view)), c, c, 0)
		}
	}
	set.Series = series
	return set
}

// bucket is one labelled time bucket with minutes per category.
type bucket struct {
	key     string
	minutes func(schema.Category) float64
}

// timeSeries derives one series per category. Daily buckets that fall on a
// Sunday get the alert border.
func timeSeries(buckets []bucket, categories []schema.Category, opts Options, daily bool) SeriesSet {
	set := SeriesSet{Labels: []string{}}
	series := make([]Series, len(categories))
	for i, c := range categories {
		series[i] = newSeries(c.Label(), len(buckets))
	}

	for _, b := range buckets {
		if opts.HideEmpty {
			empty := true
			for _, c := range categories {
				if b.minutes(c) != 0 {
					empty = false
					break
				}
			}
			if empty {
				continue
			}
		}

		sunday := daily && period.IsSunday(b.key)
		set.Labels = append(set.Labels, b.key)
		for i, c := range categories {
			fill := CategoryColor(c)
			border, width := fill, 0
			if sunday {
				border, width = AlertColor, sundayBorderWidth
			}
			series[i].add(opts.convert(b.minutes(c)), fill, border, width)
		}
	}
	set.Series = series
	return set
}

// FaithDailySeries derives the Anki, reading and prayer series per day.
func FaithDailySeries(days []schema.FaithDayStats, opts Options) SeriesSet {
	buckets := make([]bucket, len(days))
	for i, d := range days {
		buckets[i] = bucket{key: d.Date, minutes: d.Minutes}
	}
	return timeSeries(buckets, schema.DailyCategories, opts, true)
}

// FaithWeeklySeries derives the Anki, reading, church and prayer series per week.
func FaithWeeklySeries(weeks []schema.FaithWeekStats, opts Options) SeriesSet {
	buckets := make([]bucket, len(weeks))
	for i, w := range weeks {
		buckets[i] = bucket{key: w.WeekStart, minutes: w.Minutes}
	}
	return timeSeries(buckets, schema.WeeklyCategories, opts, false)
}

// ChurchSeries derives seven day-of-week series per week, Sunday first.
func ChurchSeries(weeks []schema.ChurchWeekStats, opts Options) SeriesSet {
	set := SeriesSet{Labels: []string{}}
	series := make([]Series, 7)
	for day := range 7 {
		series[day] = newSeries(WeekdayNames[day], len(weeks))
	}
	for _, w := range weeks {
		if opts.HideEmpty && w.Minutes == 0 {
			continue
		}
		set.Labels = append(set.Labels, w.WeekStart)
		for day := range 7 {
			c := WeekdayColor(day)
			series[day].add(opts.convert(w.DailyMinutes[day]), c, c, 0)
		}
	}
	set.Series = series
	return set
}

// PlacesSeries derives a single hours series over places with time spent.
func PlacesSeries(places []schema.PlaceStats) SeriesSet {
	set := SeriesSet{Labels: []string{}}
	s := newSeries("Hours", len(places))
	for _, p := range places {
		if p.Hours == 0 {
			continue
		}
		set.Labels = append(set.Labels, p.PlaceName)
		s.add(p.Hours, PlacesColor, PlacesColor, 0)
	}
	set.Series = []Series{s}
	return set
}
