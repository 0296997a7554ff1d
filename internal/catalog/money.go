package catalog

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch is returned when two amounts with differing currency
// codes would be combined. Amounts are never summed or compared across
// currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money pairs a decimal amount with its ISO 4217 currency code. The upstream
// API transmits amounts as strings; they are parsed exactly, never through
// floating point.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// ParseMoney parses an upstream amount string into Money.
func ParseMoney(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errors.Wrapf(err, "parse amount %q", amount)
	}
	return Money{Amount: d, Currency: currency}, nil
}

// MustMoney is ParseMoney for trusted literals; it panics on a malformed
// amount. Intended for configuration defaults and tests.
func MustMoney(amount, currency string) Money {
	return Money{Amount: decimal.RequireFromString(amount), Currency: currency}
}

// Add returns m + other. A zero-value Money (no currency, zero amount) acts
// as the additive identity for either operand.
func (m Money) Add(other Money) (Money, error) {
	switch {
	case m.IsZero():
		return other, nil
	case other.IsZero():
		return m, nil
	case m.Currency != other.Currency:
		return Money{}, errors.Wrapf(ErrCurrencyMismatch, "%s + %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// MulInt returns m scaled by a non-negative integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

// Equal reports whether two amounts share a currency and represent the same
// value, regardless of decimal scale.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// IsZero reports whether m is the zero value: no currency and a zero amount.
func (m Money) IsZero() bool {
	return m.Currency == "" && m.Amount.IsZero()
}

// String renders the amount followed by its currency code, e.g. "250 PKR".
func (m Money) String() string {
	if m.Currency == "" {
		return m.Amount.String()
	}
	return m.Amount.String() + " " + m.Currency
}
