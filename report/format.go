// Package report renders analytics results for people: fixed format
// numbers, a plain text summary and an Org-mode document.
package report

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is used when no account currency is configured.
const DefaultCurrency = "USD"

var printer = message.NewPrinter(language.English)

// Round2 rounds half away from zero to two decimal places.
func Round2(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// CurrencySymbol returns the English symbol for an ISO 4217 code, or
// the code itself when it is not a known currency.
func CurrencySymbol(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}
	return printer.Sprint(currency.Symbol(unit))
}

// FormatCurrency renders an amount with two decimals, grouping and the
// currency symbol, e.g. "$1,234.50" or "-$12.00".
func FormatCurrency(amount float64, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	amount = Round2(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + CurrencySymbol(code) + printer.Sprintf("%.2f", math.Abs(amount))
}

// FormatPips renders a signed pip count, e.g. "+12.5 pips".
func FormatPips(pips float64) string {
	return fmt.Sprintf("%+.1f pips", noNegZero(math.Round(pips*10)/10))
}

// FormatPercent renders a signed percentage, e.g. "-3.25%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%+.2f%%", noNegZero(Round2(pct)))
}

// FormatRatio renders a ratio with two decimals and "∞" for infinity.
func FormatRatio(x float64) string {
	if math.IsInf(x, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", Round2(x))
}

func noNegZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}
