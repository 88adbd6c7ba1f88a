package domain

import (
	"fmt"
	"slices"
	"strings"
)

// CurrencyGroup is a fixed classification of ISO 4217 currencies.
type CurrencyGroup int

const (
	// G3 holds the three most globally influential currencies.
	G3 CurrencyGroup = iota
	// G10 holds ten of the most heavily traded currencies, ordered by
	// trade volume convention.
	G10
	// All holds every registry code in registry order.
	All
)

var (
	g3Codes  = []string{"USD", "EUR", "JPY"}
	g10Codes = []string{"USD", "EUR", "JPY", "GBP", "CHF", "CAD", "AUD", "NZD", "SEK", "NOK"}
	allCodes = func() []string {
		codes := make([]string, len(iso4217))
		for i, c := range iso4217 {
			codes[i] = c.Code
		}
		return codes
	}()
)

// ParseCurrencyGroup resolves "g3", "g10" or "all" in any letter case.
func ParseCurrencyGroup(name string) (CurrencyGroup, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "g3":
		return G3, nil
	case "g10":
		return G10, nil
	case "all":
		return All, nil
	default:
		return 0, fmt.Errorf("unknown currency group %q", name)
	}
}

func (g CurrencyGroup) String() string {
	switch g {
	case G3:
		return "G3"
	case G10:
		return "G10"
	case All:
		return "All"
	default:
		return fmt.Sprintf("CurrencyGroup(%d)", int(g))
	}
}

func (g CurrencyGroup) codes() []string {
	switch g {
	case G3:
		return g3Codes
	case G10:
		return g10Codes
	case All:
		return allCodes
	default:
		return nil
	}
}

// List returns the member codes in the group's fixed order. The slice is a
// copy and may be modified by the caller.
func (g CurrencyGroup) List() []string {
	return slices.Clone(g.codes())
}

// Contains reports whether currency is a member of the group.
func (g CurrencyGroup) Contains(currency CurrencyCode) bool {
	if currency.IsZero() {
		return false
	}
	if g == All {
		_, ok := lookupCurrency(currency.Code())
		return ok
	}
	return slices.Contains(g.codes(), currency.Code())
}

// IsG3 reports whether code is one of the G3 currencies. The match is exact:
// code must already be canonical.
func IsG3(code string) bool {
	return slices.Contains(g3Codes, code)
}

// IsG10 reports whether code is one of the G10 currencies.
func IsG10(code string) bool {
	return slices.Contains(g10Codes, code)
}
