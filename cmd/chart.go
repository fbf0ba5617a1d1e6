package cmd

import (
	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/dashboard"
	"github.com/faithboard/faithboard/internal/faith"
	"github.com/faithboard/faithboard/schema"
	"github.com/spf13/cobra"
)

// chartCmd renders one dashboard chart.
var chartCmd = &cobra.Command{
	Use:       "chart <bible|daily|weekly|church|places>",
	Short:     "Render a dashboard chart",
	ValidArgs: []string{"bible", "daily", "weekly", "church", "places"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Long: `Render one of the dashboard charts.

Use --output png for an image, --output chartjs for a Chart.js configuration,
or any table format for the underlying numbers. Text output tabulates the bars.

Examples:
  # Bible memorization chart in passages
  faithboard chart bible --view passages --output png --output-file bible.png

  # Weekly activity in hours as Chart.js JSON
  faithboard chart weekly --unit hours --output chartjs`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		name, err := faith.ParseChartName(args[0])
		if err != nil {
			contract.LogFatal("Invalid chart", err)
		}
		c, err := buildChart(name)
		if err != nil {
			contract.LogFatal("Failed to build chart", err)
		}
		if err := writer.WriteChart(c, cfg); err != nil {
			contract.LogFatal("Failed to write chart", err)
		}
	},
}

func buildChart(name schema.ChartName) (dashboard.Chart, error) {
	opts := dashboard.Options{View: cfg.View, Unit: cfg.Unit, HideEmpty: cfg.HideEmpty}
	return faith.BuildChart(rootCtx, newProvider(cfg), name, opts)
}
