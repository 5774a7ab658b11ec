// Package money formats decimal amounts for display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a formatter for a BCP 47 locale such as "id" or "en-US".
// Unknown locales fall back to the root locale grouping.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// Format renders amount with two fraction digits and locale grouping, e.g. "Rp 1.250.000,00".
func (f *Formatter) Format(amount decimal.Decimal) string {
	value, _ := amount.Round(2).Float64()
	formatted := f.printer.Sprintf("%.2f", value)
	if f.symbol == "" {
		return formatted
	}
	return f.symbol + " " + formatted
}

// Scale is the number of fraction digits stored for every amount.
const Scale = 2

// IsValidAmount reports whether amount is non-negative and has at most Scale fraction digits.
func IsValidAmount(amount decimal.Decimal) bool {
	return !amount.IsNegative() && amount.Equal(amount.Round(Scale))
}
