package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/faithboard/faithboard/internal/period"
	"github.com/faithboard/faithboard/schema"
)

// Default values for configuration.
const (
	DefaultPrecision     = 1
	MaxPrecision         = 4
	DefaultDays          = 30
	DefaultWeeks         = 12
	MaxBuckets           = 366
	DefaultPlacesDays    = 182
	DefaultPlacesLimit   = 10
	MaxPlacesLimit       = 100
	DefaultDeckName      = "Bible\x1fVerses"
	DefaultNoteType      = "Bible Verse"
	DefaultReadingTitle  = "Bible"
	DefaultPrayerTable   = "prayer_sessions"
	DefaultPrayerStart   = "started_at"
	DefaultPrayerSeconds = "duration_seconds"
	DefaultChurchPlace   = "Church"
	DefaultHomePlace     = "Home"
	DefaultAddr          = "127.0.0.1:8080"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Now returns the configured reference instant, or the current time.
func (c *Config) Now() time.Time {
	if c.AsOf.IsZero() {
		return time.Now()
	}
	return c.AsOf
}

// Config holds the runtime configuration.
// This struct remains the "final, validated" config.
type Config struct {
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	View       schema.ViewMode
	Unit       schema.TimeUnit
	HideEmpty  bool

	Clock        period.Clock
	TimeZone     string
	RolloverHour int
	AsOf         time.Time // Reference instant; zero means the current time

	Days        int
	Weeks       int
	PlacesDays  int
	PlacesLimit int

	AnkiPath string
	DeckName string
	NoteType string

	KOReaderPath string
	ReadingTitle string

	PrayerPath           string
	PrayerTable          string
	PrayerStartColumn    string
	PrayerDurationColumn string

	ArcPath     string
	ChurchPlace string
	HomePlace   string

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	Addr string

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	View             string `mapstructure:"view"`
	Unit             string `mapstructure:"unit"`
	HideEmpty        bool   `mapstructure:"hide-empty"`
	TimeZone         string `mapstructure:"time-zone"`
	RolloverHour     int    `mapstructure:"rollover-hour"`
	Days             int    `mapstructure:"days"`
	Weeks            int    `mapstructure:"weeks"`
	AsOf             string `mapstructure:"as-of"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`

	// --- Sources ---
	AnkiPath             string `mapstructure:"anki-path"`
	DeckName             string `mapstructure:"anki-deck"`
	NoteType             string `mapstructure:"anki-note-type"`
	KOReaderPath         string `mapstructure:"koreader-path"`
	ReadingTitle         string `mapstructure:"reading-title"`
	PrayerPath           string `mapstructure:"prayer-path"`
	PrayerTable          string `mapstructure:"prayer-table"`
	PrayerStartColumn    string `mapstructure:"prayer-start-column"`
	PrayerDurationColumn string `mapstructure:"prayer-duration-column"`
	ArcPath              string `mapstructure:"arc-path"`
	ChurchPlace          string `mapstructure:"church-place"`
	HomePlace            string `mapstructure:"home-place"`

	// --- Fields from placesCmd.Flags() ---
	PlacesDays  int `mapstructure:"places-days"`
	PlacesLimit int `mapstructure:"limit"`

	// --- Fields from serveCmd.Flags() ---
	Addr string `mapstructure:"addr"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processCalendar(cfg, input); err != nil {
		return err
	}
	if err := processSources(cfg, input); err != nil {
		return err
	}
	return validateBackendConfig(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfig validates the history backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend == "" {
		cfg.HistoryBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// validateSimpleInputs processes and validates the output and display fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.HideEmpty = input.HideEmpty
	cfg.Addr = input.Addr
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, parquet, xlsx, chartjs, png", input.Output)
	}

	cfg.View = schema.ViewMode(strings.ToLower(input.View))
	if cfg.View == "" {
		cfg.View = schema.VersesView
	}
	if _, ok := schema.ValidViewModes[cfg.View]; !ok {
		return fmt.Errorf("invalid view '%s'. must be verses, passages", input.View)
	}

	cfg.Unit = schema.TimeUnit(strings.ToLower(input.Unit))
	if cfg.Unit == "" {
		cfg.Unit = schema.MinutesUnit
	}
	if _, ok := schema.ValidTimeUnits[cfg.Unit]; !ok {
		return fmt.Errorf("invalid unit '%s'. must be minutes, hours", input.Unit)
	}

	if input.PlacesLimit <= 0 || input.PlacesLimit > MaxPlacesLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxPlacesLimit, input.PlacesLimit)
	}
	cfg.PlacesLimit = input.PlacesLimit

	return nil
}

// processCalendar builds the clock and validates the bucket counts.
func processCalendar(cfg *Config, input *ConfigRawInput) error {
	cfg.TimeZone = input.TimeZone
	if cfg.TimeZone == "" {
		cfg.TimeZone = period.DefaultLocation
	}
	cfg.RolloverHour = input.RolloverHour

	clock, err := period.NewNamed(cfg.TimeZone, cfg.RolloverHour)
	if err != nil {
		return err
	}
	cfg.Clock = clock

	cfg.AsOf = time.Time{}
	if strings.TrimSpace(input.AsOf) != "" {
		asOf, err := period.ParseAsOf(input.AsOf, time.Now(), clock.Location())
		if err != nil {
			return err
		}
		cfg.AsOf = asOf
	}

	if input.Days <= 0 || input.Days > MaxBuckets {
		return fmt.Errorf("days must be greater than 0 and cannot exceed %d (received %d)", MaxBuckets, input.Days)
	}
	cfg.Days = input.Days

	if input.Weeks <= 0 || input.Weeks > MaxBuckets {
		return fmt.Errorf("weeks must be greater than 0 and cannot exceed %d (received %d)", MaxBuckets, input.Weeks)
	}
	cfg.Weeks = input.Weeks

	if input.PlacesDays <= 0 {
		return fmt.Errorf("places-days must be greater than 0 (received %d)", input.PlacesDays)
	}
	cfg.PlacesDays = input.PlacesDays

	return nil
}

// processSources resolves the source paths and names.
func processSources(cfg *Config, input *ConfigRawInput) error {
	cfg.AnkiPath = ExpandPath(strings.TrimSpace(input.AnkiPath))
	cfg.KOReaderPath = ExpandPath(strings.TrimSpace(input.KOReaderPath))
	cfg.PrayerPath = ExpandPath(strings.TrimSpace(input.PrayerPath))
	cfg.ArcPath = ExpandPath(strings.TrimSpace(input.ArcPath))

	// Deck names may be written with "::" as Anki displays them.
	cfg.DeckName = strings.ReplaceAll(orDefault(input.DeckName, DefaultDeckName), "::", "\x1f")
	cfg.NoteType = orDefault(input.NoteType, DefaultNoteType)
	cfg.ReadingTitle = orDefault(input.ReadingTitle, DefaultReadingTitle)
	cfg.ChurchPlace = orDefault(input.ChurchPlace, DefaultChurchPlace)
	cfg.HomePlace = orDefault(input.HomePlace, DefaultHomePlace)

	cfg.PrayerTable = orDefault(input.PrayerTable, DefaultPrayerTable)
	cfg.PrayerStartColumn = orDefault(input.PrayerStartColumn, DefaultPrayerStart)
	cfg.PrayerDurationColumn = orDefault(input.PrayerDurationColumn, DefaultPrayerSeconds)
	for kind, name := range map[string]string{
		"prayer table":           cfg.PrayerTable,
		"prayer start column":    cfg.PrayerStartColumn,
		"prayer duration column": cfg.PrayerDurationColumn,
	} {
		if err := ValidateIdentifier(kind, name); err != nil {
			return err
		}
	}
	return nil
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}
