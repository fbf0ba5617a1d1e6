package outwriter

import (
	"fmt"
	"io"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/dashboard"
	"github.com/faithboard/faithboard/internal/parquet"
	"github.com/faithboard/faithboard/schema"
)

// booksPayload is the JSON form of the books report.
type booksPayload struct {
	Stats  schema.BibleStats    `json:"stats"`
	Totals dashboard.BibleTable `json:"totals"`
}

// BooksReport lists every book's tiers in the configured view, with the
// per-testament totals of the charted tiers below.
func BooksReport(stats schema.BibleStats, cfg *contract.Config) Report {
	_, fmtInt := createFormatters(cfg.Precision)
	opts := dashboardOptions(cfg)
	totals := dashboard.BibleTotals(stats, opts)

	header := []string{"Book", "Testament"}
	textHeader := []string{"Book", "Testament"}
	for _, tier := range schema.AllTiers {
		header = append(header, tier.Label())
		textHeader = append(textHeader, dashboard.ColorTierLabel(tier, cfg.UseColors))
	}
	header = append(header, "Total")
	textHeader = append(textHeader, "Total")

	var rows [][]string
	addBooks := func(testament string, agg schema.AggregateStats) {
		for _, b := range agg.Books {
			row := []string{b.Book, testament}
			var total int64
			for _, tier := range schema.AllTiers {
				v := b.Tier(tier, totals.View)
				total += v
				row = append(row, fmtInt(v))
			}
			rows = append(rows, append(row, fmtInt(total)))
		}
	}
	addBooks("OT", stats.OldTestament)
	addBooks("NT", stats.NewTestament)

	footer := []string{fmt.Sprintf("Charted tiers in %s:", totals.View)}
	for _, row := range []dashboard.TierRow{totals.OldTestament, totals.NewTestament, totals.Grand} {
		footer = append(footer, fmt.Sprintf("  %-14s learning %s  young %s  mature %s  total %s",
			row.Label, fmtInt(row.Learning), fmtInt(row.Young), fmtInt(row.Mature), fmtInt(row.Total)))
	}

	chart := dashboard.BibleChart(stats, opts)
	return Report{
		Title:       fmt.Sprintf("Bible Memorization (%s)", totals.View),
		Emoji:       "📖",
		Header:      header,
		TextHeader:  textHeader,
		Rows:        rows,
		LabelColumn: 0,
		Footer:      footer,
		Data:        booksPayload{Stats: stats, Totals: totals},
		Parquet: func(w io.Writer) error {
			return parquet.Write(w, parquet.ConvertBooks(stats))
		},
		Chart: &chart,
	}
}

// dashboardOptions maps the configuration onto chart derivation options.
func dashboardOptions(cfg *contract.Config) dashboard.Options {
	return dashboard.Options{
		View:      cfg.View,
		Unit:      cfg.Unit,
		HideEmpty: cfg.HideEmpty,
	}
}
