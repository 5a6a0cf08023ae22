// Package money formats amounts and dates for the shop's locale (fr, franc CFA).
package money

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const currencySuffix = " CFA"

// FormatPrice renders an amount as an integer franc CFA string with French
// thousands grouping: 1234.9 -> "1 235 CFA". Rounds to the nearest franc.
func FormatPrice(amount decimal.Decimal) string {
	return group(amount.Round(0).String()) + currencySuffix
}

// FormatPriceString parses and formats an amount received as a string.
// Unparseable input renders as "0 CFA" rather than failing: prices reach the
// client from JSON fields that are sometimes numbers and sometimes strings.
func FormatPriceString(raw string) string {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "0" + currencySuffix
	}
	return FormatPrice(amount)
}

// FormatFloat renders a float amount, for callers that never touch decimals.
func FormatFloat(amount float64) string {
	return FormatPrice(decimal.NewFromFloat(amount))
}

// group inserts the French thousands separator into an integer literal.
func group(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateTime renders a date with time as dd/mm/yyyy hh:mm.
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
