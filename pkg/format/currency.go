// Package format renders monetary amounts and rates for display.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency returns a whole-dollar currency string with thousands separators
// (e.g., "$22,500"). Amounts are rounded half away from zero on their decimal
// representation.
func Currency(amount float64) string {
	return withSymbol(amount, 0)
}

// CurrencyDecimal returns a currency string with cents and thousands
// separators (e.g., "$1,234.56").
func CurrencyDecimal(amount float64) string {
	return withSymbol(amount, 2)
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount)
	formatted := formatPositive(d.Abs(), 2)
	if d.IsNegative() && formatted != "0.00" {
		return "-" + formatted
	}
	return formatted
}

// Number renders a rate or percentage the shortest way that round-trips,
// e.g. 8.9 -> "8.9", 2 -> "2", 0.5 -> "0.5".
func Number(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Percent renders a value followed by a percent sign (e.g., "17.9%").
func Percent(value float64) string {
	return Number(value) + "%"
}

func withSymbol(amount float64, places int32) string {
	d := decimal.NewFromFloat(amount)
	formatted := formatPositive(d.Abs(), places)
	if d.IsNegative() && strings.Trim(formatted, "0.,") != "" {
		return "-$" + formatted
	}
	return "$" + formatted
}

func formatPositive(value decimal.Decimal, places int32) string {
	formatted := value.StringFixed(places)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	if len(parts) == 2 {
		return intPart + "." + parts[1]
	}
	return intPart
}
