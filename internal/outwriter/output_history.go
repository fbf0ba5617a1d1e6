package outwriter

import (
	"fmt"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/schema"
)

// RunsReport lists recorded runs, newest first.
func RunsReport(runs []schema.RunSummary, cfg *contract.Config) Report {
	fmtFloat, fmtInt := createFormatters(cfg.Precision)

	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			fmtInt(r.RunID),
			r.StartTime.Format(contract.DateTimeFormat),
			r.Command,
			fmtInt(r.TotalVerses),
			fmtInt(r.TotalPassages),
			fmtFloat(r.TotalMinutes),
		}
	}
	return Report{
		Title:       fmt.Sprintf("History (%d runs)", len(runs)),
		Emoji:       "🗂️",
		Header:      []string{"Run", "Start", "Command", "Verses", "Passages", "Minutes"},
		Rows:        rows,
		LabelColumn: 2,
		Data:        runs,
	}
}
