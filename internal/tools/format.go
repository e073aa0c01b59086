package tools

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatMoney renders an amount as US dollars with grouping, e.g. -$1,234.50.
func formatMoney(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	if d.IsNegative() {
		return "-" + printer.Sprintf("$%.2f", d.Neg().InexactFloat64())
	}
	return printer.Sprintf("$%.2f", d.InexactFloat64())
}

// plural returns "1 account", "2 accounts". many overrides the default
// plural form when set.
func plural(n int, noun string, many ...string) string {
	if n == 1 {
		return printer.Sprintf("%d %s", n, noun)
	}
	if len(many) > 0 {
		return printer.Sprintf("%d %s", n, many[0])
	}
	return printer.Sprintf("%d %ss", n, noun)
}
