package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ApplyPercentage parses the three raw inputs and applies rateText percent to
// baseText. Inputs are validated in a fixed order (currency, base, rate) so
// the reported failure is deterministic when several are invalid. Errors are
// *PercentageError.
func ApplyPercentage(baseText, rateText, currencyText string) (decimal.Decimal, string, error) {
	money, rate, err := parsePercentageRequest(baseText, rateText, currencyText)
	if err != nil {
		return decimal.Zero, "", err
	}
	result := money.ApplyRate(rate)
	return result.Amount(), result.Currency().Code(), nil
}

// RevertPercentage recovers the amount that rateText percent was applied to in
// order to produce amountText. A zero rate yields a NonRevertible error.
func RevertPercentage(amountText, rateText, currencyText string) (decimal.Decimal, string, error) {
	money, rate, err := parsePercentageRequest(amountText, rateText, currencyText)
	if err != nil {
		return decimal.Zero, "", err
	}
	original, err := money.withRate(rate).RevertRate()
	if err != nil {
		return decimal.Zero, "", &PercentageError{Kind: NonRevertible, Input: rateText, Err: err}
	}
	return original.Amount(), original.Currency().Code(), nil
}

func parsePercentageRequest(amountText, rateText, currencyText string) (Money, decimal.Decimal, error) {
	currency, err := ParseCurrencyCode(currencyText)
	if err != nil {
		return Money{}, decimal.Zero, &PercentageError{Kind: InvalidCurrency, Input: currencyText, Err: err}
	}
	money, err := ParseMoney(amountText, currency)
	if err != nil {
		return Money{}, decimal.Zero, &PercentageError{Kind: InvalidBaseAmount, Input: amountText, Err: err}
	}
	rate, err := ParseRate(rateText)
	if err != nil {
		return Money{}, decimal.Zero, &PercentageError{Kind: InvalidRate, Input: rateText, Err: err}
	}
	return money, rate, nil
}

// ParseRate parses a percentage rate using the same literal rules as amounts.
func ParseRate(text string) (decimal.Decimal, error) {
	rate, err := parseDecimal(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidRate, text)
	}
	return rate, nil
}
