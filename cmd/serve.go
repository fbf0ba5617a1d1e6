package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faithboard/faithboard/internal/api"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard statistics over HTTP",
	Long: `Start an HTTP server exposing the statistics as JSON and the charts as
Chart.js configurations or PNG images.

Endpoints:
  GET /health
  GET /api/bible, /api/today, /api/daily, /api/weekly, /api/refs
  GET /api/faith/today, /api/faith/daily, /api/faith/weekly
  GET /api/places, /api/church
  GET /api/charts/{name}      ?view=verses|passages&unit=minutes|hours
  GET /api/charts/{name}.png
  GET /metrics                 Prometheus metrics

Examples:
  faithboard serve --addr :8080`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServer(ctx)
	},
}

func runServer(ctx context.Context) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Stamp,
		Prefix:          "faithboard",
	})
	return api.NewServer(newProvider(cfg), cfg, logger).ListenAndServe(ctx, cfg.Addr)
}
