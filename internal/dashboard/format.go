package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/faithboard/faithboard/internal/period"
	"github.com/faithboard/faithboard/schema"
)

// FormatMinutes renders minutes as "Hh Mm", or "Mm" under an hour.
// Fractions of a minute are dropped.
func FormatMinutes(minutes float64) string {
	total := int(minutes)
	if total < 60 {
		return fmt.Sprintf("%dm", total)
	}
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// FormatDateTick renders a YYYY-MM-DD key as "M/D". Other labels are
// returned unchanged.
func FormatDateTick(key string) string {
	d, err := time.Parse(period.DateFormat, key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%d/%d", int(d.Month()), d.Day())
}

// TickColor marks Sunday labels in the alert color.
func TickColor(key string) string {
	if period.IsSunday(key) {
		return AlertColor
	}
	return LabelColor
}

// valuePrecision bounds the decimals of displayed values. Hour conversions
// rarely divide evenly.
const valuePrecision = 2

// FormatValue renders a number with at most two decimals and no trailing zeros.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', valuePrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// ViewLabel is the axis title of a Bible view.
func ViewLabel(view schema.ViewMode) string {
	if view == schema.PassagesView {
		return "Passages"
	}
	return "Verses"
}

// UnitLabel is the axis title of a time unit.
func UnitLabel(unit schema.TimeUnit) string {
	if unit == schema.HoursUnit {
		return "Hours"
	}
	return "Minutes"
}

// TooltipLabel renders "<series>: <value> <unit>".
func TooltipLabel(series string, value float64, unit string) string {
	return fmt.Sprintf("%s: %s %s", series, FormatValue(value), unit)
}

// TooltipFooter renders "Total: <sum> <unit>" over the given series values.
func TooltipFooter(values []float64, unit string) string {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return fmt.Sprintf("Total: %s %s", FormatValue(sum), unit)
}
