// Package money renders minor-unit amounts for display.
package money

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrency = "USD"

// Format renders cents in the creator's currency, e.g. "USD 12.50".
// Unknown currency codes fall back to DefaultCurrency.
func Format(cents int64, code string, tag language.Tag) string {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		unit = currency.USD
	}
	p := message.NewPrinter(tag)
	return p.Sprint(unit.Amount(float64(cents) / 100))
}

// NormalizeCode returns a valid upper-case ISO 4217 code or an error.
func NormalizeCode(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return DefaultCurrency, nil
	}
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", err
	}
	return unit.String(), nil
}
