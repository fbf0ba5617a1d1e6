package cmd

import (
	"github.com/faithboard/faithboard/internal/contract"
	"github.com/spf13/cobra"
)

// placesCmd ranks the places of the Arc Timeline export.
var placesCmd = &cobra.Command{
	Use:   "places",
	Short: "Show the places where you spent the most time",
	Long: `Rank the named places of the Arc Timeline export by hours spent over
the last --places-days days. The --home-place is left out.

Examples:
  # Top 10 places of the last six months
  faithboard places --arc-path ~/Arc\ Export

  # Top 5 places of the last 30 days as CSV
  faithboard places --places-days 30 --limit 5 --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		places, err := newProvider(cfg).TopPlaces(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to compute top places", err)
		}
		if err := writer.WritePlaces(places, cfg); err != nil {
			contract.LogFatal("Failed to write places", err)
		}
	},
}

// churchCmd reports time at church per week.
var churchCmd = &cobra.Command{
	Use:     "church",
	Short:   "Show time at church per week and weekday",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		weeks, err := newProvider(cfg).ChurchWeeks(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to compute church attendance", err)
		}
		if err := writer.WriteChurch(weeks, cfg); err != nil {
			contract.LogFatal("Failed to write church attendance", err)
		}
	},
}
