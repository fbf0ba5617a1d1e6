package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/dashboard"
	"github.com/faithboard/faithboard/internal/render"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/xuri/excelize/v2"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		contract.LogInfo("💾 %s to %s", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSV writes a header followed by the data rows.
func writeCSV(w io.Writer, header []string, rows [][]string) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := csvWriter.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, fmtInt func(int64) string) {
	fmtFloat = func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	fmtInt = func(v int64) string {
		return strconv.FormatInt(v, 10)
	}
	return fmtFloat, fmtInt
}

// writeTable generates and writes the human-readable table.
func writeTable(w io.Writer, r Report, cfg *contract.Config) error {
	title := r.Title
	if cfg.UseEmojis && r.Emoji != "" {
		title = r.Emoji + " " + title
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	header := r.Header
	if len(r.TextHeader) == len(r.Header) {
		header = r.TextHeader
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	rows := r.Rows
	if r.LabelColumn >= 0 && len(rows) > 0 {
		width := getMaxLabelWidth(cfg, len(r.Header))
		rows = make([][]string, len(r.Rows))
		for i, row := range r.Rows {
			rows[i] = append([]string(nil), row...)
			if r.LabelColumn < len(row) {
				rows[i][r.LabelColumn] = truncateLabel(row[r.LabelColumn], width)
			}
		}
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	for _, line := range r.Footer {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// writeXLSX writes the header and rows into a single worksheet.
// Cells that parse as numbers are stored as numbers.
func writeXLSX(w io.Writer, title string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if name := truncateLabel(title, maxSheetName); name != "" {
		if err := f.SetSheetName(sheet, name); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
		sheet = name
	}

	setRow := func(rowIdx int, values []any) error {
		axis, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, axis, &values)
	}

	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := setRow(1, headerCells); err != nil {
		return fmt.Errorf("failed to write XLSX header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if len(header) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return err
		}
	}

	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			if n, err := strconv.ParseFloat(v, 64); err == nil {
				cells[j] = n
			} else {
				cells[j] = v
			}
		}
		if err := setRow(i+2, cells); err != nil {
			return fmt.Errorf("failed to write XLSX row %d: %w", i+1, err)
		}
	}

	return f.Write(w)
}

// writePNG renders the chart, or a placeholder image when nothing is visible.
func writePNG(w io.Writer, c dashboard.Chart) error {
	if c.Set.Empty() {
		return render.Placeholder(w, render.NoDataMessage, render.DefaultWidth, render.DefaultHeight)
	}
	return render.PNG(w, c, render.DefaultWidth, render.DefaultHeight)
}
