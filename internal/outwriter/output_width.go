package outwriter

import (
	"os"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Label column bounds, in terminal cells.
const (
	minLabelWidth = 12
	maxLabelWidth = 40
)

// getTerminalWidth returns the configured width, the detected terminal width,
// or a conservative default.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detected
}

// getMaxLabelWidth calculates the maximum width for the label column based on
// the terminal width and the number of columns.
func getMaxLabelWidth(cfg *contract.Config, columns int) int {
	// every other column is a number of up to ~10 cells with borders and padding
	available := getTerminalWidth(cfg) - (columns-1)*11 - 4
	return max(minLabelWidth, min(available, maxLabelWidth))
}

// truncateLabel shortens s to at most width terminal cells, marking the cut.
func truncateLabel(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
