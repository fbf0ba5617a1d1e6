// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/dashboard"
	"github.com/faithboard/faithboard/schema"
)

// Report is one result, prepared for every output mode.
type Report struct {
	Title string
	Emoji string

	// Header and Rows are plain cells shared by text, csv and xlsx.
	Header []string
	Rows   [][]string

	// TextHeader replaces Header in text mode, e.g. to color tier labels.
	TextHeader []string

	// LabelColumn is truncated to the terminal width in text mode, or -1.
	LabelColumn int

	// Footer lines are printed below the text table.
	Footer []string

	// Data is the JSON payload.
	Data any

	// Parquet writes the report rows. Nil when the report has no Parquet form.
	Parquet func(io.Writer) error

	// Chart is the report's chart. Nil when the report has no chart.
	Chart *dashboard.Chart
}

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the commands.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteBooks prints the per-book memorization report.
func (ow *OutWriter) WriteBooks(stats schema.BibleStats, cfg *contract.Config) error {
	return WriteReport(BooksReport(stats, cfg), cfg)
}

// WriteAnkiToday prints today's study time.
func (ow *OutWriter) WriteAnkiToday(today schema.TodayStats, cfg *contract.Config) error {
	return WriteReport(AnkiTodayReport(today, cfg), cfg)
}

// WriteAnkiDaily prints the study days.
func (ow *OutWriter) WriteAnkiDaily(days []schema.DayStats, cfg *contract.Config) error {
	return WriteReport(AnkiDailyReport(days, cfg), cfg)
}

// WriteAnkiWeekly prints the study weeks.
func (ow *OutWriter) WriteAnkiWeekly(weeks []schema.WeekStats, cfg *contract.Config) error {
	return WriteReport(AnkiWeeklyReport(weeks, cfg), cfg)
}

// WriteReferences prints the deck references.
func (ow *OutWriter) WriteReferences(refs []string, cfg *contract.Config) error {
	return WriteReport(ReferencesReport(refs), cfg)
}

// WriteFaithToday prints today's combined activity.
func (ow *OutWriter) WriteFaithToday(today schema.FaithTodayStats, cfg *contract.Config) error {
	return WriteReport(FaithTodayReport(today, cfg), cfg)
}

// WriteFaithDaily prints the combined daily report.
func (ow *OutWriter) WriteFaithDaily(stats schema.FaithDailyStats, cfg *contract.Config) error {
	return WriteReport(FaithDailyReport(stats, cfg), cfg)
}

// WriteFaithWeekly prints the combined weekly report.
func (ow *OutWriter) WriteFaithWeekly(stats schema.FaithWeeklyStats, cfg *contract.Config) error {
	return WriteReport(FaithWeeklyReport(stats, cfg), cfg)
}

// WritePlaces prints the top places.
func (ow *OutWriter) WritePlaces(places []schema.PlaceStats, cfg *contract.Config) error {
	return WriteReport(PlacesReport(places, cfg), cfg)
}

// WriteChurch prints church attendance by week.
func (ow *OutWriter) WriteChurch(weeks []schema.ChurchWeekStats, cfg *contract.Config) error {
	return WriteReport(ChurchReport(weeks, cfg), cfg)
}

// WriteRuns prints recorded history runs.
func (ow *OutWriter) WriteRuns(runs []schema.RunSummary, cfg *contract.Config) error {
	return WriteReport(RunsReport(runs, cfg), cfg)
}

// WriteReport outputs a report, dispatching based on the output format configured.
func WriteReport(r Report, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, r.Data)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSV(w, r.Header, r.Rows)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if r.Parquet == nil {
			return fmt.Errorf("parquet output is not supported for %s", r.Title)
		}
		if err := writeWithFile(cfg.OutputFile, r.Parquet, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.XLSXOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeXLSX(w, r.Title, r.Header, r.Rows)
		}, "Wrote XLSX"); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
	case schema.ChartJSOut:
		if r.Chart == nil {
			return fmt.Errorf("chartjs output is not supported for %s", r.Title)
		}
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, r.Chart.ChartJS())
		}, "Wrote Chart.js config"); err != nil {
			return fmt.Errorf("error writing Chart.js output: %w", err)
		}
	case schema.PNGOut:
		if r.Chart == nil {
			return fmt.Errorf("png output is not supported for %s", r.Title)
		}
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePNG(w, *r.Chart)
		}, "Wrote PNG"); err != nil {
			return fmt.Errorf("error writing PNG output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTable(w, r, cfg)
		}, "Wrote table")
	}
	return nil
}
