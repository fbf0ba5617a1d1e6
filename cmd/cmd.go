// Package cmd defines the command-line interface for faithboard.
package cmd

import (
	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/period"
	"github.com/faithboard/faithboard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(refsCmd)
	rootCmd.AddCommand(faithCmd)
	rootCmd.AddCommand(placesCmd)
	rootCmd.AddCommand(churchCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the faith subcommands to the parent faith command
	faithCmd.AddCommand(faithTodayCmd)
	faithCmd.AddCommand(faithDailyCmd)
	faithCmd.AddCommand(faithWeeklyCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyMigrateCmd)
	historyCmd.AddCommand(historyExportCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json or csv or parquet or xlsx or chartjs or png")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("view", string(schema.VersesView), "Bible unit: verses or passages")
	rootCmd.PersistentFlags().String("unit", string(schema.MinutesUnit), "Time unit: minutes or hours")
	rootCmd.PersistentFlags().Bool("hide-empty", false, "Hide days and weeks without any activity in charts")
	rootCmd.PersistentFlags().String("time-zone", period.DefaultLocation, "IANA time zone of the day boundaries")
	rootCmd.PersistentFlags().Int("rollover-hour", 0, "Hour (0-23) at which a new day starts")
	rootCmd.PersistentFlags().Int("days", contract.DefaultDays, "Number of days in daily reports")
	rootCmd.PersistentFlags().Int("weeks", contract.DefaultWeeks, "Number of weeks in weekly reports")
	rootCmd.PersistentFlags().String("as-of", "", "Reference time of the reports (e.g. 2025-10-19, RFC3339, 'last sunday')")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "History backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname?parseTime=true)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	rootCmd.PersistentFlags().String("anki-path", "", "Path to the Anki collection.anki2 file")
	rootCmd.PersistentFlags().String("anki-deck", "", "Anki deck name (e.g. 'Bible::Verses')")
	rootCmd.PersistentFlags().String("anki-note-type", contract.DefaultNoteType, "Anki note type of the verse cards")
	rootCmd.PersistentFlags().String("koreader-path", "", "Path to the KOReader statistics.sqlite3 file")
	rootCmd.PersistentFlags().String("reading-title", contract.DefaultReadingTitle, "Title of the KOReader book counted as Bible reading")
	rootCmd.PersistentFlags().String("prayer-path", "", "Path to the Proseuche prayer database")
	rootCmd.PersistentFlags().String("prayer-table", contract.DefaultPrayerTable, "Table of the prayer sessions")
	rootCmd.PersistentFlags().String("prayer-start-column", contract.DefaultPrayerStart, "Column holding the session start")
	rootCmd.PersistentFlags().String("prayer-duration-column", contract.DefaultPrayerSeconds, "Column holding the session length in seconds")
	rootCmd.PersistentFlags().String("arc-path", "", "Path to the Arc Timeline export directory")
	rootCmd.PersistentFlags().String("church-place", contract.DefaultChurchPlace, "Arc place name of your church")
	rootCmd.PersistentFlags().String("home-place", contract.DefaultHomePlace, "Arc place name left out of top places")
	rootCmd.PersistentFlags().Int("places-days", contract.DefaultPlacesDays, "Number of days considered by top places")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultPlacesLimit, "Number of places to display")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Address the HTTP server listens on")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Flags of the history subcommands are read directly, not through Viper.
	historyListCmd.Flags().Int("runs", defaultHistoryRuns, "Number of runs to list")
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
}
