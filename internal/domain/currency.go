package domain

import (
	"fmt"
	"strings"
)

// CurrencyCode is a validated ISO 4217 alpha-3 code. The zero value is not a
// valid currency; obtain one through ParseCurrencyCode.
type CurrencyCode struct {
	code string
}

// ParseCurrencyCode accepts a code in any letter case and returns its
// canonical form.
func ParseCurrencyCode(text string) (CurrencyCode, error) {
	code := strings.ToUpper(strings.TrimSpace(text))
	if _, ok := lookupCurrency(code); !ok {
		return CurrencyCode{}, fmt.Errorf("%w: %q", ErrInvalidCurrencyCode, text)
	}
	return CurrencyCode{code: code}, nil
}

// MustParseCurrencyCode is like ParseCurrencyCode but panics on error.
// Intended for package-level variables.
func MustParseCurrencyCode(text string) CurrencyCode {
	c, err := ParseCurrencyCode(text)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the canonical 3-letter code.
func (c CurrencyCode) Code() string {
	return c.code
}

func (c CurrencyCode) String() string {
	return c.code
}

func (c CurrencyCode) IsZero() bool {
	return c.code == ""
}

// Name returns the registry name, e.g. "Pound Sterling".
func (c CurrencyCode) Name() string {
	info, _ := lookupCurrency(c.code)
	return info.Name
}

// MinorUnits returns the number of decimal places of the minor unit, or -1
// when the registry defines none.
func (c CurrencyCode) MinorUnits() int {
	info, ok := lookupCurrency(c.code)
	if !ok {
		return -1
	}
	return info.MinorUnits
}
