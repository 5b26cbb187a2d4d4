// Package render turns export rows and plan summaries into terminal
// output: plain tabwriter tables for data, and a styled summary box for
// the daily energy budget.
package render

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale gives consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Currency formats a dollar amount as "$X,XXX.XX"; negative amounts as
// "-$X,XXX.XX".
func Currency(amount float64) string {
	if amount < 0 {
		return "-" + Currency(-amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// Energy formats an energy value with one decimal and a unit suffix,
// e.g. Energy(1815.0192, "kJ") returns "1,815.0 kJ".
func Energy(v float64, unit string) string {
	return printer.Sprintf("%.1f %s", v, unit)
}

// Grams formats a mass in grams, whole numbers without a decimal point.
func Grams(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("%.0f g", v)
	}
	return printer.Sprintf("%.1f g", v)
}

// Percent formats a ratio already scaled to percent, e.g. "87.3%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
