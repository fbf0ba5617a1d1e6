package outwriter

import (
	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/dashboard"
	"github.com/faithboard/faithboard/internal/render"
)

// ChartReport tabulates a chart: one row per bar, one column per series.
func ChartReport(c dashboard.Chart, cfg *contract.Config) Report {
	fmtFloat, _ := createFormatters(cfg.Precision)

	header := []string{"Label"}
	for _, s := range c.Set.Series {
		header = append(header, s.Name)
	}
	header = append(header, "Total")

	rows := make([][]string, len(c.Set.Labels))
	for i, label := range c.Set.Labels {
		row := []string{label}
		var total float64
		for _, v := range c.Set.Values(i) {
			row = append(row, fmtFloat(v))
			total += v
		}
		rows[i] = append(row, fmtFloat(total))
	}

	var footer []string
	if c.Set.Empty() {
		footer = []string{render.NoDataMessage}
	}
	return Report{
		Title:       c.Title + " (" + c.AxisTitle + ")",
		Emoji:       "📊",
		Header:      header,
		Rows:        rows,
		LabelColumn: 0,
		Footer:      footer,
		Data:        c.ChartJS(),
		Chart:       &c,
	}
}

// WriteChart prints a chart. Text mode tabulates it.
func (ow *OutWriter) WriteChart(c dashboard.Chart, cfg *contract.Config) error {
	return WriteReport(ChartReport(c, cfg), cfg)
}
