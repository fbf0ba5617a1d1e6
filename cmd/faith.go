package cmd

import (
	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/faith"
	"github.com/spf13/cobra"
)

// faithCmd groups the combined activity reports.
var faithCmd = &cobra.Command{
	Use:   "faith",
	Short: "Combined Anki, reading, prayer and church activity",
	Long: `Merge Anki study, KOReader Bible reading, Proseuche prayer sessions
and Arc Timeline church visits into one report.

All sources must be configured. Day and week keys of the sources must agree;
a mismatch is reported as an error rather than silently dropped.

Subcommands:
  today  - Minutes per category today
  daily  - Minutes per category over the last --days days
  weekly - Minutes per category over the last --weeks weeks (includes church)`,
}

var faithTodayCmd = &cobra.Command{
	Use:     "today",
	Short:   "Show today's combined activity",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		today, err := newProvider(cfg).FaithToday(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to compute today's activity", err)
		}
		if err := writer.WriteFaithToday(today, cfg); err != nil {
			contract.LogFatal("Failed to write today's activity", err)
		}
		recordFaith("faith today", "today", faith.TodayTotals(today))
	},
}

var faithDailyCmd = &cobra.Command{
	Use:     "daily",
	Short:   "Show combined activity per day",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		stats, err := newProvider(cfg).FaithDaily(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to compute daily activity", err)
		}
		if err := writer.WriteFaithDaily(stats, cfg); err != nil {
			contract.LogFatal("Failed to write daily activity", err)
		}
		recordFaith("faith daily", "daily", faith.DailyTotals(stats.Summary))
	},
}

var faithWeeklyCmd = &cobra.Command{
	Use:     "weekly",
	Short:   "Show combined activity per week",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		stats, err := newProvider(cfg).FaithWeekly(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to compute weekly activity", err)
		}
		if err := writer.WriteFaithWeekly(stats, cfg); err != nil {
			contract.LogFatal("Failed to write weekly activity", err)
		}
		recordFaith("faith weekly", "weekly", faith.WeeklyTotals(stats.Summary))
	},
}
