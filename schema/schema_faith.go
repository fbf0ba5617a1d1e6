package schema

// FaithDayStats merges one day of Anki, reading and prayer activity.
type FaithDayStats struct {
	Date                   string  `json:"date"`
	AnkiMinutes            float64 `json:"anki_minutes"`
	AnkiMaturedPassages    int64   `json:"anki_matured_passages"`
	AnkiLostPassages       int64   `json:"anki_lost_passages"`
	AnkiCumulativePassages int64   `json:"anki_cumulative_passages"`
	ReadingMinutes         float64 `json:"reading_minutes"`
	PrayerMinutes          float64 `json:"prayer_minutes"`
}

// TotalMinutes sums the timed categories of the day.
func (d FaithDayStats) TotalMinutes() float64 {
	return d.AnkiMinutes + d.ReadingMinutes + d.PrayerMinutes
}

// Minutes returns the minutes of one category. Categories absent from
// the daily report count as zero.
func (d FaithDayStats) Minutes(c Category) float64 {
	switch c {
	case AnkiCategory:
		return d.AnkiMinutes
	case ReadingCategory:
		return d.ReadingMinutes
	case PrayerCategory:
		return d.PrayerMinutes
	default:
		return 0
	}
}

// FaithWeekStats merges one week of Anki, reading, church and prayer activity.
type FaithWeekStats struct {
	WeekStart              string     `json:"week_start"`
	AnkiMinutes            float64    `json:"anki_minutes"`
	AnkiMaturedPassages    int64      `json:"anki_matured_passages"`
	AnkiLostPassages       int64      `json:"anki_lost_passages"`
	AnkiCumulativePassages int64      `json:"anki_cumulative_passages"`
	ReadingMinutes         float64    `json:"reading_minutes"`
	AtChurchMinutes        float64    `json:"at_church_minutes"`
	AtChurchDailyMinutes   [7]float64 `json:"at_church_daily_minutes"`
	PrayerMinutes          float64    `json:"prayer_minutes"`
}

// TotalMinutes sums the timed categories of the week.
func (w FaithWeekStats) TotalMinutes() float64 {
	return w.AnkiMinutes + w.ReadingMinutes + w.AtChurchMinutes + w.PrayerMinutes
}

// Minutes returns the minutes of one category.
func (w FaithWeekStats) Minutes(c Category) float64 {
	switch c {
	case AnkiCategory:
		return w.AnkiMinutes
	case ReadingCategory:
		return w.ReadingMinutes
	case ChurchCategory:
		return w.AtChurchMinutes
	case PrayerCategory:
		return w.PrayerMinutes
	default:
		return 0
	}
}

// CategorySummary holds the totals of one category over a report.
type CategorySummary struct {
	TotalMinutes   float64 `json:"total_minutes"`
	TotalHours     float64 `json:"total_hours"`
	AverageMinutes float64 `json:"average_minutes"`
	ActiveBuckets  int     `json:"active_buckets"`
}

// FaithDailySummary summarizes a faith daily report.
type FaithDailySummary struct {
	Anki                 CategorySummary `json:"anki"`
	AnkiTotalMatured     int64           `json:"anki_total_matured_passages"`
	AnkiTotalLost        int64           `json:"anki_total_lost_passages"`
	AnkiNetProgress      int64           `json:"anki_net_progress"`
	Reading              CategorySummary `json:"reading"`
	Prayer               CategorySummary `json:"prayer"`
	TotalMinutes         float64         `json:"total_minutes"`
	TotalHours           float64         `json:"total_hours"`
	AverageMinutesPerDay float64         `json:"average_minutes_per_day"`
	TotalDays            int             `json:"total_days"`
	DaysWithAnyActivity  int             `json:"days_with_any_activity"`
}

// FaithDailyStats is the faith daily report.
type FaithDailyStats struct {
	Days    []FaithDayStats   `json:"days"`
	Summary FaithDailySummary `json:"summary"`
}

// FaithWeeklySummary summarizes a faith weekly report.
type FaithWeeklySummary struct {
	Anki                  CategorySummary `json:"anki"`
	AnkiTotalMatured      int64           `json:"anki_total_matured_passages"`
	AnkiTotalLost         int64           `json:"anki_total_lost_passages"`
	AnkiNetProgress       int64           `json:"anki_net_progress"`
	Reading               CategorySummary `json:"reading"`
	Church                CategorySummary `json:"church"`
	Prayer                CategorySummary `json:"prayer"`
	TotalMinutes          float64         `json:"total_minutes"`
	TotalHours            float64         `json:"total_hours"`
	AverageMinutesPerWeek float64         `json:"average_minutes_per_week"`
	TotalWeeks            int             `json:"total_weeks"`
	WeeksWithAnyActivity  int             `json:"weeks_with_any_activity"`
}

// FaithWeeklyStats is the faith weekly report.
type FaithWeeklyStats struct {
	Weeks   []FaithWeekStats   `json:"weeks"`
	Summary FaithWeeklySummary `json:"summary"`
}

// FaithTodayStats is today's combined activity.
type FaithTodayStats struct {
	AnkiMinutes    float64 `json:"anki_minutes"`
	ReadingMinutes float64 `json:"reading_minutes"`
	PrayerMinutes  float64 `json:"prayer_minutes"`
	TotalMinutes   float64 `json:"total_minutes"`
	TotalHours     float64 `json:"total_hours"`
}

// NewFaithTodayStats derives the totals from the three categories.
func NewFaithTodayStats(anki, reading, prayer float64) FaithTodayStats {
	total := anki + reading + prayer
	return FaithTodayStats{
		AnkiMinutes:    anki,
		ReadingMinutes: reading,
		PrayerMinutes:  prayer,
		TotalMinutes:   total,
		TotalHours:     total / 60,
	}
}
