package dashboard

import "github.com/faithboard/faithboard/internal/bible"

// NoDivider marks a chart without a testament boundary.
const NoDivider = -1

// DividerIndex returns the index of the first New Testament label, or
// NoDivider when every label is Old Testament.
func DividerIndex(labels []string) int {
	for i, l := range labels {
		if bible.IsNewTestament(l) {
			return i
		}
	}
	return NoDivider
}

// DividerEnabled reports whether a boundary sits strictly between two bars.
// A boundary at 0 (no Old Testament bars) or past the end draws nothing.
func DividerEnabled(index, n int) bool {
	return index > 0 && index < n
}

// DividerPixel returns the midpoint between bar index-1 and bar index,
// where mapper returns the center pixel of a bar.
func DividerPixel(index, n int, mapper func(i int) float64) (float64, bool) {
	if !DividerEnabled(index, n) || mapper == nil {
		return 0, false
	}
	return (mapper(index-1) + mapper(index)) / 2, true
}
