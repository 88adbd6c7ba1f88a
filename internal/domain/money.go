package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// minRevertPrecision is the number of fractional digits kept when a revert
// does not divide evenly.
const minRevertPrecision int32 = 16

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Money is an immutable amount in a specific currency. It optionally records
// the last percentage rate applied to it so the rate can be reverted.
// Source, tags and timestamp are informational and never affect arithmetic
// or equality.
type Money struct {
	amount    decimal.Decimal
	currency  CurrencyCode
	rate      decimal.Decimal
	hasRate   bool
	source    string
	tags      []string
	timestamp time.Time
}

// NewMoney creates a base value with no applied rate.
func NewMoney(amount decimal.Decimal, currency CurrencyCode) Money {
	return Money{amount: amount, currency: currency}
}

// ParseMoney parses amountText as an exact decimal literal such as "200",
// "-3.5" or ".25". Surrounding whitespace is ignored.
func ParseMoney(amountText string, currency CurrencyCode) (Money, error) {
	amount, err := parseDecimal(amountText)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidDecimalFormat, amountText)
	}
	return NewMoney(amount, currency), nil
}

func parseDecimal(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if !decimalLiteral.MatchString(text) {
		return decimal.Zero, fmt.Errorf("not a decimal literal: %q", text)
	}
	return decimal.NewFromString(strings.TrimPrefix(text, "+"))
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() CurrencyCode {
	return m.currency
}

// AppliedRate returns the rate recorded by the last ApplyRate, if any.
func (m Money) AppliedRate() (decimal.Decimal, bool) {
	return m.rate, m.hasRate
}

func (m Money) Source() string {
	return m.source
}

func (m Money) Tags() []string {
	return slices.Clone(m.tags)
}

func (m Money) Timestamp() time.Time {
	return m.timestamp
}

// WithSource returns a copy of m tagged with the origin of its amount.
func (m Money) WithSource(source string) Money {
	m.source = source
	return m
}

// WithTags returns a copy of m carrying tags in place of any existing ones.
func (m Money) WithTags(tags ...string) Money {
	m.tags = slices.Clone(tags)
	return m
}

func (m Money) WithTimestamp(ts time.Time) Money {
	m.timestamp = ts
	return m
}

// withRate marks m as already carrying rate, as if produced by ApplyRate.
func (m Money) withRate(rate decimal.Decimal) Money {
	m.rate = rate
	m.hasRate = true
	return m
}

// rateFactor returns 1 + rate/100. The division is a decimal shift and
// therefore exact.
func rateFactor(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate.Shift(-2))
}

// ApplyRate returns amount * (1 + rate/100) as a new Money recording rate.
// A negative rate is a discount; zero leaves the amount unchanged.
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	out := m.withRate(rate)
	out.amount = m.amount.Mul(rateFactor(rate))
	out.tags = slices.Clone(m.tags)
	return out
}

// RevertRate undoes the last applied rate, returning the pre-rate amount with
// no rate recorded. A value with no rate, or a rate of zero, is not
// revertible. A rate of -100 collapsed the amount to zero and cannot be
// undone either.
func (m Money) RevertRate() (Money, error) {
	if !m.hasRate || m.rate.IsZero() {
		return Money{}, ErrNonRevertibleState
	}
	factor := rateFactor(m.rate)
	if factor.IsZero() {
		return Money{}, fmt.Errorf("%w: rate %s leaves nothing to recover", ErrNonRevertibleState, m.rate)
	}

	// The pre-rate amount never has more fractional digits than the current
	// one, so dividing at this precision is exact for ApplyRate output.
	precision := -m.amount.Exponent()
	if precision < minRevertPrecision {
		precision = minRevertPrecision
	}

	out := m
	out.amount = m.amount.DivRound(factor, precision)
	out.rate = decimal.Zero
	out.hasRate = false
	out.tags = slices.Clone(m.tags)
	return out, nil
}

// Equal compares amount (numerically) and currency. Rate and metadata are
// ignored.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// StringFixed renders the amount rounded to places fractional digits followed
// by the currency code, e.g. "230.00 EUR".
func (m Money) StringFixed(places int32) string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(places), m.currency.Code())
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency.Code())
}
