package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		rate     string
		currency string
		want     string
		wantCode string
	}{
		{"increase", "200.00", "15", "EUR", "230.00", "EUR"},
		{"discount", "100", "-20", "GBP", "80.00", "GBP"},
		{"lowercase currency", "10", "10", "jpy", "11", "JPY"},
		{"zero rate", "55.5", "0", "USD", "55.5", "USD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, code, err := ApplyPercentage(tt.base, tt.rate, tt.currency)
			require.NoError(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(tt.want)), amount.String())
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestApplyPercentage_Errors(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		rate     string
		currency string
		kind     PercentageErrorKind
		sentinel error
	}{
		{"invalid base", "abc", "15", "EUR", InvalidBaseAmount, ErrInvalidDecimalFormat},
		{"invalid currency", "200", "15", "ZZZ", InvalidCurrency, ErrInvalidCurrencyCode},
		{"invalid rate", "200", "fifteen", "EUR", InvalidRate, ErrInvalidRate},
		{"empty rate", "200", "", "EUR", InvalidRate, ErrInvalidRate},
		{"currency checked first", "abc", "x", "ZZZ", InvalidCurrency, ErrInvalidCurrencyCode},
		{"base checked before rate", "1.2.3", "x", "USD", InvalidBaseAmount, ErrInvalidDecimalFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ApplyPercentage(tt.base, tt.rate, tt.currency)
			require.Error(t, err)

			var pe *PercentageError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.ErrorIs(t, err, tt.sentinel)

			kind, ok := PercentageErrorKindOf(err)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestRevertPercentage(t *testing.T) {
	amount, code, err := RevertPercentage("230.00", "15", "eur")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(200)), amount.String())
	assert.Equal(t, "EUR", code)

	amount, _, err = RevertPercentage("80", "-20", "GBP")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(100)), amount.String())
}

func TestRevertPercentage_ZeroRate(t *testing.T) {
	_, _, err := RevertPercentage("100", "0", "USD")
	require.Error(t, err)

	kind, ok := PercentageErrorKindOf(err)
	require.True(t, ok)
	assert.Equal(t, NonRevertible, kind)
	assert.ErrorIs(t, err, ErrNonRevertibleState)
}

func TestPercentageErrorKindOf_OtherError(t *testing.T) {
	_, ok := PercentageErrorKindOf(ErrInvalidRate)
	assert.False(t, ok)
}

func TestPercentageError_Message(t *testing.T) {
	_, _, err := ApplyPercentage("abc", "15", "EUR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base amount")
	assert.Contains(t, err.Error(), `"abc"`)
}
