package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// ViewMode selects the unit of Bible charts and tables.
	ViewMode string

	// TimeUnit selects the unit of time charts and tables.
	TimeUnit string

	// Tier is a memorization tier of a card pair.
	Tier string

	// Category is an activity category of the faith reports.
	Category string

	// ChartName identifies one of the dashboard charts.
	ChartName string

	// DatabaseBackend represents the database backend for the history store.
	DatabaseBackend string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
	ChartJSOut OutputMode = "chartjs"
	PNGOut     OutputMode = "png"
)

// All view modes supported.
const (
	VersesView   ViewMode = "verses" // default
	PassagesView ViewMode = "passages"
)

// All time units supported.
const (
	MinutesUnit TimeUnit = "minutes" // default
	HoursUnit   TimeUnit = "hours"
)

// All memorization tiers, from least to most progressed.
const (
	SuspendedTier Tier = "suspended"
	UnseenTier    Tier = "unseen"
	LearningTier  Tier = "learning"
	YoungTier     Tier = "young"
	MatureTier    Tier = "mature"
)

// All activity categories.
const (
	AnkiCategory    Category = "anki"
	ReadingCategory Category = "reading"
	ChurchCategory  Category = "church"
	PrayerCategory  Category = "prayer"
)

// All charts supported.
const (
	BibleChart  ChartName = "bible"
	DailyChart  ChartName = "daily"
	WeeklyChart ChartName = "weekly"
	ChurchChart ChartName = "church"
	PlacesChart ChartName = "places"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ChartTiers are the tiers drawn on Bible charts and summed by Bible tables.
var ChartTiers = []Tier{LearningTier, YoungTier, MatureTier}

// AllTiers lists every tier in table column order.
var AllTiers = []Tier{MatureTier, YoungTier, LearningTier, UnseenTier, SuspendedTier}

// DailyCategories are the categories of the faith daily report.
var DailyCategories = []Category{AnkiCategory, ReadingCategory, PrayerCategory}

// WeeklyCategories are the categories of the faith weekly report.
var WeeklyCategories = []Category{AnkiCategory, ReadingCategory, ChurchCategory, PrayerCategory}

// AllCharts lists every chart in menu order.
var AllCharts = []ChartName{BibleChart, DailyChart, WeeklyChart, ChurchChart, PlacesChart}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
	XLSXOut:    {},
	ChartJSOut: {},
	PNGOut:     {},
}

// ValidViewModes lists all valid view modes.
var ValidViewModes = map[ViewMode]struct{}{
	VersesView:   {},
	PassagesView: {},
}

// ValidTimeUnits lists all valid time units.
var ValidTimeUnits = map[TimeUnit]struct{}{
	MinutesUnit: {},
	HoursUnit:   {},
}

// ValidCharts lists all valid chart names.
var ValidCharts = map[ChartName]struct{}{
	BibleChart:  {},
	DailyChart:  {},
	WeeklyChart: {},
	ChurchChart: {},
	PlacesChart: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Label returns the capitalized display name of a tier.
func (t Tier) Label() string {
	switch t {
	case MatureTier:
		return "Mature"
	case YoungTier:
		return "Young"
	case LearningTier:
		return "Learning"
	case UnseenTier:
		return "Unseen"
	case SuspendedTier:
		return "Suspended"
	default:
		return string(t)
	}
}

// Label returns the capitalized display name of a category.
func (c Category) Label() string {
	switch c {
	case AnkiCategory:
		return "Anki"
	case ReadingCategory:
		return "Reading"
	case ChurchCategory:
		return "Church"
	case PrayerCategory:
		return "Prayer"
	default:
		return string(c)
	}
}
