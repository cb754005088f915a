// Package decimal provides Money, a display-oriented wrapper around
// shopspring/decimal used by reports and formatters.
package decimal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is the label appended by Format when none is given.
const DefaultCurrency = "lei"

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Whole drops the fractional part toward zero. Reports show balances as whole
// currency units, so 1999.99 displays as 1999.
func (m Money) Whole() Money {
	return Money{m.Decimal.Truncate(0)}
}

// String returns the amount with two decimals and no grouping.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Grouped renders the whole-unit amount with comma thousand separators,
// e.g. 1234567.89 -> "1,234,567".
func (m Money) Grouped() string {
	p := message.NewPrinter(language.English)
	whole := m.Whole().Decimal
	if n := whole.BigInt(); n.IsInt64() {
		return p.Sprintf("%d", n.Int64())
	}
	// Past int64 only the float's leading digits are meaningful anyway.
	return p.Sprintf("%.0f", whole.InexactFloat64())
}

// Format renders the grouped whole-unit amount followed by a currency label.
// An empty label falls back to DefaultCurrency.
func (m Money) Format(currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return m.Grouped() + " " + currency
}
