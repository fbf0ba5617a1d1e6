package schema

// DayStats is one day of Anki study time and maturation progress.
type DayStats struct {
	Date               string  `json:"date"`
	Minutes            float64 `json:"minutes"`
	MaturedPassages    int64   `json:"matured_passages"`
	LostPassages       int64   `json:"lost_passages"`
	CumulativePassages int64   `json:"cumulative_passages"`
}

// WeekStats is one Sunday-start week of Anki study time and maturation progress.
type WeekStats struct {
	WeekStart          string  `json:"week_start"`
	Minutes            float64 `json:"minutes"`
	MaturedPassages    int64   `json:"matured_passages"`
	LostPassages       int64   `json:"lost_passages"`
	CumulativePassages int64   `json:"cumulative_passages"`
}

// MinutesStats is a day or week bucket of a single timed activity (reading, prayer).
type MinutesStats struct {
	Key     string  `json:"key"`
	Minutes float64 `json:"minutes"`
}

// ChurchWeekStats is one week of church attendance with a Sunday..Saturday breakdown.
type ChurchWeekStats struct {
	WeekStart    string     `json:"week_start"`
	Minutes      float64    `json:"minutes"`
	DailyMinutes [7]float64 `json:"daily_minutes"`
}

// PlaceStats is the time spent at one place over a window.
type PlaceStats struct {
	PlaceName string  `json:"place_name"`
	Hours     float64 `json:"hours"`
}

// TodayStats is today's study time.
type TodayStats struct {
	Minutes float64 `json:"minutes"`
	Hours   float64 `json:"hours"`
}

// NewTodayStats derives hours from minutes.
func NewTodayStats(minutes float64) TodayStats {
	return TodayStats{Minutes: minutes, Hours: minutes / 60}
}

// DailySummary summarizes Anki days.
type DailySummary struct {
	TotalMinutes         float64 `json:"total_minutes"`
	TotalHours           float64 `json:"total_hours"`
	AverageMinutesPerDay float64 `json:"average_minutes_per_day"`
	AverageHoursPerDay   float64 `json:"average_hours_per_day"`
	DaysStudied          int     `json:"days_studied"`
	TotalDays            int     `json:"total_days"`
	TotalMatured         int64   `json:"total_matured_passages"`
	TotalLost            int64   `json:"total_lost_passages"`
	NetProgress          int64   `json:"net_progress"`
}

// WeeklySummary summarizes Anki weeks.
type WeeklySummary struct {
	TotalMinutes          float64 `json:"total_minutes"`
	TotalHours            float64 `json:"total_hours"`
	AverageMinutesPerWeek float64 `json:"average_minutes_per_week"`
	AverageHoursPerWeek   float64 `json:"average_hours_per_week"`
	WeeksStudied          int     `json:"weeks_studied"`
	TotalWeeks            int     `json:"total_weeks"`
	TotalMatured          int64   `json:"total_matured_passages"`
	TotalLost             int64   `json:"total_lost_passages"`
	NetProgress           int64   `json:"net_progress"`
}
