package dashboard

import (
	"encoding/json"
	"testing"

	"github.com/faithboard/faithboard/schema"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBible() schema.BibleStats {
	s := schema.NewBibleStats()
	s.OldTestament.AddBook(schema.BookStats{Book: "Genesis", MatureVerses: 10, YoungVerses: 2, LearningVerses: 1, MaturePassages: 3, YoungPassages: 1, LearningPassages: 1})
	s.OldTestament.AddBook(schema.BookStats{Book: "Exodus"})
	s.OldTestament.AddBook(schema.BookStats{Book: "Psalms", LearningPassages: 3})
	s.NewTestament.AddBook(schema.BookStats{Book: "Matthew", UnseenVerses: 5, UnseenPassages: 1})
	s.NewTestament.AddBook(schema.BookStats{Book: "John", MatureVerses: 4, MaturePassages: 2, SuspendedVerses: 3})
	s.NewTestament.AddBook(schema.BookStats{Book: "Romans", YoungVerses: 6, YoungPassages: 2})
	return s
}

func TestBibleSeriesVisibilityFollowsView(t *testing.T) {
	stats := sampleBible()

	verses := BibleSeries(stats, Options{View: schema.VersesView})
	assert.Equal(t, []string{"Genesis", "John", "Romans"}, verses.Labels)

	passages := BibleSeries(stats, Options{View: schema.PassagesView})
	assert.Equal(t, []string{"Genesis", "Psalms", "John", "Romans"}, passages.Labels)

	require.Len(t, passages.Series, 3)
	assert.Equal(t, "Learning", passages.Series[0].Name)
	assert.Equal(t, []float64{1, 3, 0, 0}, passages.Series[0].Data)
	assert.Equal(t, []float64{3, 0, 2, 0}, passages.Series[2].Data)
}

func TestBibleSeriesAligned(t *testing.T) {
	set := BibleSeries(sampleBible(), Options{})
	for _, s := range set.Series {
		assert.Len(t, s.Data, len(set.Labels))
		assert.Len(t, s.BackgroundColor, len(set.Labels))
		assert.Len(t, s.BorderColor, len(set.Labels))
		assert.Len(t, s.BorderWidth, len(set.Labels))
		assert.Equal(t, Stack, s.Stack)
	}
	mature := set.Series[2]
	assert.Equal(t, "#B45309", mature.BackgroundColor[0])
	assert.Equal(t, "#1D4ED8", mature.BackgroundColor[1])
}

func TestBibleSeriesEmpty(t *testing.T) {
	set := BibleSeries(schema.NewBibleStats(), Options{})
	assert.True(t, set.Empty())
	assert.Empty(t, set.Labels)
	for _, s := range set.Series {
		assert.Empty(t, s.Data)
	}
}

func TestDividerIndex(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		expected int
		enabled  bool
	}{
		{"mixed", []string{"Genesis", "Psalms", "John"}, 2, true},
		{"all old testament", []string{"Genesis", "Psalms"}, NoDivider, false},
		{"all new testament", []string{"John", "Romans"}, 0, false},
		{"empty", nil, NoDivider, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := DividerIndex(tt.labels)
			assert.Equal(t, tt.expected, idx)
			assert.Equal(t, tt.enabled, DividerEnabled(idx, len(tt.labels)))
		})
	}
}

func TestDividerPixel(t *testing.T) {
	mapper := func(i int) float64 { return 40 + 20*float64(i) }

	x, ok := DividerPixel(2, 3, mapper)
	require.True(t, ok)
	assert.Equal(t, 70.0, x)

	for _, idx := range []int{NoDivider, 0, 3, 10} {
		_, ok := DividerPixel(idx, 3, mapper)
		assert.False(t, ok, "index %d", idx)
	}
	_, ok = DividerPixel(1, 3, nil)
	assert.False(t, ok)
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes  float64
		expected string
	}{
		{0, "0m"},
		{59, "59m"},
		{60, "1h 0m"},
		{125, "2h 5m"},
		{90.9, "1h 30m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatMinutes(tt.minutes))
	}
}

func TestFormatDateTick(t *testing.T) {
	assert.Equal(t, "10/19", FormatDateTick("2025-10-19"))
	assert.Equal(t, "1/5", FormatDateTick("2025-01-05"))
	assert.Equal(t, "Genesis", FormatDateTick("Genesis"))
}

func TestTickColor(t *testing.T) {
	assert.Equal(t, AlertColor, TickColor("2025-10-19"))
	assert.Equal(t, LabelColor, TickColor("2025-10-20"))
}

func TestTooltips(t *testing.T) {
	assert.Equal(t, "Total: 7 minutes", TooltipFooter([]float64{2, 0, 5}, "minutes"))
	assert.Equal(t, "Total: 0 verses", TooltipFooter(nil, "verses"))
	assert.Equal(t, "Anki: 12.5 minutes", TooltipLabel("Anki", 12.5, "minutes"))

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{120, "120"},
		{0.1, "0.1"},
		{10.0 / 60, "0.17"},
		{28.0 / 60, "0.47"},
		{1.999, "2"},
		{-0.001, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in), "FormatValue(%v)", tt.in)
	}
}

func TestHoursTooltips(t *testing.T) {
	days := []schema.FaithDayStats{{Date: "2025-10-18", AnkiMinutes: 6, ReadingMinutes: 12, PrayerMinutes: 10}}
	cfg := DailyChart(days, Options{Unit: schema.HoursUnit}).ChartJS()

	want := [][]string{{"Anki: 0.1 hours"}, {"Reading: 0.2 hours"}, {"Prayer: 0.17 hours"}}
	if diff := cmp.Diff(want, cfg.Options.Plugins.Tooltip.Labels); diff != "" {
		t.Errorf("tooltip labels mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Total: 0.47 hours"}, cfg.Options.Plugins.Tooltip.Footers)
	assert.Empty(t, cfg.Options.Scales.Y.Ticks.Format)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Verses", ViewLabel(schema.VersesView))
	assert.Equal(t, "Passages", ViewLabel(schema.PassagesView))
	assert.Equal(t, "Minutes", UnitLabel(schema.MinutesUnit))
	assert.Equal(t, "Hours", UnitLabel(schema.HoursUnit))
}

func sampleDays() []schema.FaithDayStats {
	return []schema.FaithDayStats{
		{Date: "2025-10-18", AnkiMinutes: 10, ReadingMinutes: 20},
		{Date: "2025-10-19", PrayerMinutes: 30},
		{Date: "2025-10-20"},
		{Date: "2025-10-21", AnkiMinutes: 120},
	}
}

func TestFaithDailySeries(t *testing.T) {
	set := FaithDailySeries(sampleDays(), Options{})
	assert.Equal(t, []string{"2025-10-18", "2025-10-19", "2025-10-20", "2025-10-21"}, set.Labels)
	require.Len(t, set.Series, 3)
	assert.Equal(t, []string{"Anki", "Reading", "Prayer"}, []string{set.Series[0].Name, set.Series[1].Name, set.Series[2].Name})

	// Sunday is outlined.
	for _, s := range set.Series {
		assert.Equal(t, []int{0, 2, 0, 0}, s.BorderWidth)
		assert.Equal(t, AlertColor, s.BorderColor[1])
	}

	hidden := FaithDailySeries(sampleDays(), Options{HideEmpty: true})
	assert.Equal(t, []string{"2025-10-18", "2025-10-19", "2025-10-21"}, hidden.Labels)

	hours := FaithDailySeries(sampleDays(), Options{Unit: schema.HoursUnit})
	assert.Equal(t, 2.0, hours.Series[0].Data[3])
}

func TestFaithWeeklySeries(t *testing.T) {
	weeks := []schema.FaithWeekStats{
		{WeekStart: "2025-10-12", AnkiMinutes: 60, AtChurchMinutes: 90},
		{WeekStart: "2025-10-19"},
	}
	set := FaithWeeklySeries(weeks, Options{})
	require.Len(t, set.Series, 4)
	assert.Equal(t, "Church", set.Series[2].Name)
	assert.Equal(t, []float64{90, 0}, set.Series[2].Data)
	// Weekly bars are never outlined.
	assert.Equal(t, []int{0, 0}, set.Series[0].BorderWidth)
}

func TestChurchSeries(t *testing.T) {
	weeks := []schema.ChurchWeekStats{
		{WeekStart: "2025-10-12", Minutes: 120, DailyMinutes: [7]float64{0: 90, 3: 30}},
		{WeekStart: "2025-10-19"},
	}
	set := ChurchSeries(weeks, Options{})
	require.Len(t, set.Series, 7)
	assert.Equal(t, "Sun", set.Series[0].Name)
	assert.Equal(t, []float64{90, 0}, set.Series[0].Data)
	assert.Equal(t, WeekdayColor(0), set.Series[0].BackgroundColor[0])
	assert.NotEqual(t, WeekdayColor(0), WeekdayColor(6))

	assert.Len(t, ChurchSeries(weeks, Options{HideEmpty: true}).Labels, 1)
}

func TestPlacesSeries(t *testing.T) {
	set := PlacesSeries([]schema.PlaceStats{{PlaceName: "Church", Hours: 4}, {PlaceName: "Nowhere"}})
	assert.Equal(t, []string{"Church"}, set.Labels)
	assert.Equal(t, []float64{4}, set.Series[0].Data)
}

func TestBibleTotalsIgnoreVisibility(t *testing.T) {
	stats := sampleBible()
	for _, view := range []schema.ViewMode{schema.VersesView, schema.PassagesView} {
		table := BibleTotals(stats, Options{View: view})
		for _, row := range []TierRow{table.OldTestament, table.NewTestament, table.Grand} {
			assert.Equal(t, row.Learning+row.Young+row.Mature, row.Total, "%s %s", view, row.Label)
		}
		assert.Equal(t, table.OldTestament.Total+table.NewTestament.Total, table.Grand.Total)
	}

	passages := BibleTotals(stats, Options{View: schema.PassagesView})
	// Psalms is hidden in verses but always counted in passages totals.
	assert.Equal(t, int64(4), passages.OldTestament.Learning)
	assert.Equal(t, int64(12), passages.Grand.Total)

	verses := BibleTotals(stats, Options{View: schema.VersesView})
	assert.Equal(t, int64(23), verses.Grand.Total)

	empty := BibleTotals(schema.NewBibleStats(), Options{})
	assert.Zero(t, empty.Grand.Total)
}

func TestCategoryTables(t *testing.T) {
	daily := DailyTable(sampleDays())
	expected := CategoryTable{
		Rows: []CategoryRow{
			{Category: schema.AnkiCategory, Minutes: 130},
			{Category: schema.ReadingCategory, Minutes: 20},
			{Category: schema.PrayerCategory, Minutes: 30},
		},
		Total: 180,
	}
	if diff := cmp.Diff(expected, daily); diff != "" {
		t.Errorf("DailyTable mismatch (-want +got):\n%s", diff)
	}

	weekly := WeeklyTable([]schema.FaithWeekStats{{AtChurchMinutes: 45}, {PrayerMinutes: 15}})
	assert.Len(t, weekly.Rows, 4)
	assert.Equal(t, 60.0, weekly.Total)
}

func TestChartFooterUsesVisibleSeries(t *testing.T) {
	c := BibleChart(sampleBible(), Options{})
	assert.Equal(t, "Total: 13 verses", c.Footer(0))
	assert.Equal(t, "Verses", c.AxisTitle)
	assert.Equal(t, 1, c.Divider)
}

func TestChartJS(t *testing.T) {
	cfg := BibleChart(sampleBible(), Options{View: schema.PassagesView}).ChartJS()
	assert.Equal(t, "bar", cfg.Type)
	require.NotNil(t, cfg.Options.Plugins.TestamentDivider)
	assert.Equal(t, 2, cfg.Options.Plugins.TestamentDivider.Index)
	assert.Equal(t, "Passages", cfg.Options.Scales.Y.Title.Text)
	assert.True(t, cfg.Options.Scales.X.Stacked)
	assert.Equal(t, "Total: 5 passages", cfg.Options.Plugins.Tooltip.Footers[0])
	assert.Equal(t, "Learning: 1 passages", cfg.Options.Plugins.Tooltip.Labels[0][0])

	daily := DailyChart(sampleDays(), Options{}).ChartJS()
	assert.Nil(t, daily.Options.Plugins.TestamentDivider)
	assert.Equal(t, []string{"10/18", "10/19", "10/20", "10/21"}, daily.Options.Scales.X.Ticks.Labels)
	assert.Equal(t, AlertColor, daily.Options.Scales.X.Ticks.Color[1])
	assert.Equal(t, "duration", daily.Options.Scales.Y.Ticks.Format)
	for i, color := range daily.Options.Scales.X.Ticks.Color {
		if i != 1 {
			assert.Equal(t, LabelColor, color, "tick %d", i)
		}
	}

	raw, err := json.Marshal(BibleChart(schema.NewBibleStats(), Options{}).ChartJS())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"labels":[]`)
	assert.NotContains(t, string(raw), "testamentDivider")
}

func TestWeekTicksAreNotHighlighted(t *testing.T) {
	weeks := []schema.FaithWeekStats{
		{WeekStart: "2025-10-05", AnkiMinutes: 30},
		{WeekStart: "2025-10-12", ReadingMinutes: 45},
		{WeekStart: "2025-10-19", AtChurchMinutes: 90},
	}
	church := []schema.ChurchWeekStats{{WeekStart: "2025-10-19", Minutes: 90, DailyMinutes: [7]float64{90}}}

	for name, c := range map[string]Chart{
		"weekly": WeeklyChart(weeks, Options{}),
		"church": ChurchChart(church, Options{}),
	} {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, c.Set.Labels)
			for i := range c.Set.Labels {
				assert.Equal(t, LabelColor, c.XTickColor(i))
			}
			assert.Empty(t, c.ChartJS().Options.Scales.X.Ticks.Color)
		})
	}
}

func TestColorTierLabel(t *testing.T) {
	assert.Equal(t, "Mature", ColorTierLabel(schema.MatureTier, false))
	assert.Contains(t, ColorTierLabel(schema.MatureTier, true), "Mature")
}
