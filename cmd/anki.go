package cmd

import (
	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/history"
	"github.com/faithboard/faithboard/schema"
	"github.com/spf13/cobra"
)

// booksCmd reports memorization progress per book.
var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Show Bible memorization progress per book",
	Long: `Count the verse cards of the Anki deck by book and memorization tier.

Tiers follow Anki's review intervals:
- Mature    - interval of 21 days or more
- Young     - reviewed, interval under 21 days
- Learning  - in the learning queues
- Unseen    - never studied
- Suspended - suspended or buried

Use --view passages to count cards instead of verses.
Each run records the tier totals in the history store.

Examples:
  # Verses per book
  faithboard books --anki-path ~/Anki2/User\ 1/collection.anki2

  # Passages as JSON
  faithboard books --view passages --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		stats, err := newProvider(cfg).BibleStats(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to compute Bible stats", err)
		}
		if err := writer.WriteBooks(stats, cfg); err != nil {
			contract.LogFatal("Failed to write books", err)
		}
		history.Snapshot(history.Manager.GetStore(), "books", historyParams(), func(runID int64) error {
			return history.Manager.GetStore().RecordBibleTotals(runID, stats)
		})
	},
}

// todayCmd reports today's study time.
var todayCmd = &cobra.Command{
	Use:     "today",
	Short:   "Show today's Anki study time",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		today, err := newProvider(cfg).AnkiToday(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to compute today's study time", err)
		}
		if err := writer.WriteAnkiToday(today, cfg); err != nil {
			contract.LogFatal("Failed to write today", err)
		}
	},
}

// dailyCmd reports study time and progress per day.
var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show Anki study time and progress per day",
	Long: `List the last --days days of Anki study, oldest first.

Each day shows minutes studied, passages that matured and were lost,
and the running total of mature passages over the window.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		days, err := newProvider(cfg).AnkiDaily(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to compute daily stats", err)
		}
		if err := writer.WriteAnkiDaily(days, cfg); err != nil {
			contract.LogFatal("Failed to write daily", err)
		}
	},
}

// weeklyCmd reports study time and progress per week.
var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Show Anki study time and progress per week",
	Long: `List the last --weeks weeks of Anki study, oldest first.

Weeks start on Sunday in the configured time zone.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		weeks, err := newProvider(cfg).AnkiWeekly(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to compute weekly stats", err)
		}
		if err := writer.WriteAnkiWeekly(weeks, cfg); err != nil {
			contract.LogFatal("Failed to write weekly", err)
		}
	},
}

// refsCmd lists the references of the deck.
var refsCmd = &cobra.Command{
	Use:     "refs",
	Short:   "List the verse references of the deck",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		refs, err := newProvider(cfg).References(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to list references", err)
		}
		if err := writer.WriteReferences(refs, cfg); err != nil {
			contract.LogFatal("Failed to write references", err)
		}
	},
}

// recordFaith stores the category totals of a faith report.
func recordFaith(command, periodName string, minutes map[schema.Category]float64) {
	history.Snapshot(history.Manager.GetStore(), command, historyParams(), func(runID int64) error {
		return history.Manager.GetStore().RecordFaithTotals(runID, periodName, minutes)
	})
}
