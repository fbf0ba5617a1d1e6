package dashboard

import (
	"github.com/faithboard/faithboard/internal/bible"
	"github.com/faithboard/faithboard/schema"
	"github.com/fatih/color"
)

// Chart colors as #RRGGBB. Every chart, table and renderer reads them from here.
var (
	testamentTierColors = map[bible.Testament]map[schema.Tier]string{
		bible.OldTestament: {
			schema.LearningTier: "#FCD34D",
			schema.YoungTier:    "#F59E0B",
			schema.MatureTier:   "#B45309",
		},
		bible.NewTestament: {
			schema.LearningTier: "#93C5FD",
			schema.YoungTier:    "#3B82F6",
			schema.MatureTier:   "#1D4ED8",
		},
	}

	categoryColors = map[schema.Category]string{
		schema.AnkiCategory:    "#8B5CF6",
		schema.ReadingCategory: "#10B981",
		schema.PrayerCategory:  "#F59E0B",
		schema.ChurchCategory:  "#3B82F6",
	}

	// weekdayColors runs Sunday..Saturday, darkest first.
	weekdayColors = [7]string{
		"#1E3A8A",
		"#1D4ED8",
		"#2563EB",
		"#3B82F6",
		"#60A5FA",
		"#93C5FD",
		"#BFDBFE",
	}
)

// Neutral tones.
const (
	PlacesColor  = "#14B8A6"
	GridColor    = "#E5E7EB"
	LabelColor   = "#6B7280"
	DividerColor = "#9CA3AF"
	AlertColor   = "#DC2626"
	UnknownColor = "#D1D5DB"
)

// WeekdayNames are the short names of the day-of-week series.
var WeekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// TierColor returns the bar color of a tier in a testament.
func TierColor(t bible.Testament, tier schema.Tier) string {
	if c, ok := testamentTierColors[t][tier]; ok {
		return c
	}
	return UnknownColor
}

// CategoryColor returns the bar color of an activity category.
func CategoryColor(c schema.Category) string {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return UnknownColor
}

// WeekdayColor returns the ramp color of a weekday, 0 being Sunday.
func WeekdayColor(day int) string {
	if day < 0 || day > 6 {
		return UnknownColor
	}
	return weekdayColors[day]
}

var tierANSI = map[schema.Tier]*color.Color{
	schema.MatureTier:    color.New(color.FgGreen, color.Bold),
	schema.YoungTier:     color.New(color.FgCyan),
	schema.LearningTier:  color.New(color.FgYellow),
	schema.UnseenTier:    color.New(color.FgHiBlack),
	schema.SuspendedTier: color.New(color.FgRed),
}

// ColorTierLabel returns the tier's label, colored for terminals when enabled.
func ColorTierLabel(tier schema.Tier, enabled bool) string {
	label := tier.Label()
	c, ok := tierANSI[tier]
	if !enabled || !ok {
		return label
	}
	return c.Sprint(label)
}
