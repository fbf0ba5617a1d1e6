// Package parquet exports faithboard statistics and history to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/faithboard/faithboard/schema"
	"github.com/parquet-go/parquet-go"
)

// BookRow is the tier counts of one book.
type BookRow struct {
	Testament         string `parquet:"testament,snappy"`
	Book              string `parquet:"book,snappy"`
	MaturePassages    int64  `parquet:"mature_passages,snappy"`
	YoungPassages     int64  `parquet:"young_passages,snappy"`
	LearningPassages  int64  `parquet:"learning_passages,snappy"`
	UnseenPassages    int64  `parquet:"unseen_passages,snappy"`
	SuspendedPassages int64  `parquet:"suspended_passages,snappy"`
	MatureVerses      int64  `parquet:"mature_verses,snappy"`
	YoungVerses       int64  `parquet:"young_verses,snappy"`
	LearningVerses    int64  `parquet:"learning_verses,snappy"`
	UnseenVerses      int64  `parquet:"unseen_verses,snappy"`
	SuspendedVerses   int64  `parquet:"suspended_verses,snappy"`
}

// DayRow is one merged day.
type DayRow struct {
	Date                   string  `parquet:"date,snappy"`
	AnkiMinutes            float64 `parquet:"anki_minutes,snappy"`
	AnkiMaturedPassages    int64   `parquet:"anki_matured_passages,snappy"`
	AnkiLostPassages       int64   `parquet:"anki_lost_passages,snappy"`
	AnkiCumulativePassages int64   `parquet:"anki_cumulative_passages,snappy"`
	ReadingMinutes         float64 `parquet:"reading_minutes,snappy"`
	PrayerMinutes          float64 `parquet:"prayer_minutes,snappy"`
}

// WeekRow is one merged week. Church minutes per weekday are kept as a list.
type WeekRow struct {
	WeekStart              string    `parquet:"week_start,snappy"`
	AnkiMinutes            float64   `parquet:"anki_minutes,snappy"`
	AnkiMaturedPassages    int64     `parquet:"anki_matured_passages,snappy"`
	AnkiLostPassages       int64     `parquet:"anki_lost_passages,snappy"`
	AnkiCumulativePassages int64     `parquet:"anki_cumulative_passages,snappy"`
	ReadingMinutes         float64   `parquet:"reading_minutes,snappy"`
	AtChurchMinutes        float64   `parquet:"at_church_minutes,snappy"`
	AtChurchDailyMinutes   []float64 `parquet:"at_church_daily_minutes,list"`
	PrayerMinutes          float64   `parquet:"prayer_minutes,snappy"`
}

// PlaceRow is the hours at one place.
type PlaceRow struct {
	PlaceName string  `parquet:"place_name,snappy"`
	Hours     float64 `parquet:"hours,snappy"`
}

// RunRow maps to the faithboard_runs table.
type RunRow struct {
	RunID         int64      `parquet:"run_id,snappy"`
	StartTime     time.Time  `parquet:"start_time,snappy"`
	EndTime       *time.Time `parquet:"end_time,optional,snappy"`
	RunDurationMs *int32     `parquet:"run_duration_ms,optional,snappy"`
	Command       string     `parquet:"command,snappy"`
	ConfigParams  *string    `parquet:"config_params,optional,snappy"`
}

// TierTotalRow maps to the faithboard_tier_totals table.
type TierTotalRow struct {
	RunID     int64  `parquet:"run_id,snappy"`
	Testament string `parquet:"testament,snappy"`
	Unit      string `parquet:"unit,snappy"`
	Tier      string `parquet:"tier,snappy"`
	Count     int64  `parquet:"count,snappy"`
}

// CategoryTotalRow maps to the faithboard_category_totals table.
type CategoryTotalRow struct {
	RunID    int64   `parquet:"run_id,snappy"`
	Period   string  `parquet:"period,snappy"`
	Category string  `parquet:"category,snappy"`
	Minutes  float64 `parquet:"minutes,snappy"`
}

// Write encodes rows to w using the schema inferred from T.
func Write[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteFile writes rows to a new file at outputPath.
func WriteFile[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Write(file, rows); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// ConvertBooks flattens both testaments into rows, Old Testament first.
func ConvertBooks(stats schema.BibleStats) []BookRow {
	rows := make([]BookRow, 0, len(stats.OldTestament.Books)+len(stats.NewTestament.Books))
	for _, part := range []schema.AggregateStats{stats.OldTestament, stats.NewTestament} {
		for _, b := range part.Books {
			rows = append(rows, BookRow{
				Testament:         part.Label,
				Book:              b.Book,
				MaturePassages:    b.MaturePassages,
				YoungPassages:     b.YoungPassages,
				LearningPassages:  b.LearningPassages,
				UnseenPassages:    b.UnseenPassages,
				SuspendedPassages: b.SuspendedPassages,
				MatureVerses:      b.MatureVerses,
				YoungVerses:       b.YoungVerses,
				LearningVerses:    b.LearningVerses,
				UnseenVerses:      b.UnseenVerses,
				SuspendedVerses:   b.SuspendedVerses,
			})
		}
	}
	return rows
}

// ConvertDays converts merged days.
func ConvertDays(days []schema.FaithDayStats) []DayRow {
	rows := make([]DayRow, len(days))
	for i, d := range days {
		rows[i] = DayRow(d)
	}
	return rows
}

// ConvertWeeks converts merged weeks.
func ConvertWeeks(weeks []schema.FaithWeekStats) []WeekRow {
	rows := make([]WeekRow, len(weeks))
	for i, w := range weeks {
		daily := w.AtChurchDailyMinutes
		rows[i] = WeekRow{
			WeekStart:              w.WeekStart,
			AnkiMinutes:            w.AnkiMinutes,
			AnkiMaturedPassages:    w.AnkiMaturedPassages,
			AnkiLostPassages:       w.AnkiLostPassages,
			AnkiCumulativePassages: w.AnkiCumulativePassages,
			ReadingMinutes:         w.ReadingMinutes,
			AtChurchMinutes:        w.AtChurchMinutes,
			AtChurchDailyMinutes:   daily[:],
			PrayerMinutes:          w.PrayerMinutes,
		}
	}
	return rows
}

// ConvertPlaces converts place hours.
func ConvertPlaces(places []schema.PlaceStats) []PlaceRow {
	rows := make([]PlaceRow, len(places))
	for i, p := range places {
		rows[i] = PlaceRow(p)
	}
	return rows
}

// ConvertRunRecords converts history runs.
func ConvertRunRecords(records []schema.RunRecord) []RunRow {
	rows := make([]RunRow, len(records))
	for i, r := range records {
		rows[i] = RunRow(r)
	}
	return rows
}

// ConvertTierTotalRecords converts history tier totals.
func ConvertTierTotalRecords(records []schema.TierTotalRecord) []TierTotalRow {
	rows := make([]TierTotalRow, len(records))
	for i, r := range records {
		rows[i] = TierTotalRow{
			RunID:     r.RunID,
			Testament: r.Testament,
			Unit:      string(r.Unit),
			Tier:      string(r.Tier),
			Count:     r.Count,
		}
	}
	return rows
}

// ConvertCategoryTotalRecords converts history category totals.
func ConvertCategoryTotalRecords(records []schema.CategoryTotalRecord) []CategoryTotalRow {
	rows := make([]CategoryTotalRow, len(records))
	for i, r := range records {
		rows[i] = CategoryTotalRow{
			RunID:    r.RunID,
			Period:   r.Period,
			Category: string(r.Category),
			Minutes:  r.Minutes,
		}
	}
	return rows
}
