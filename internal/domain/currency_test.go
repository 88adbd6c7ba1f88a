package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrencyCode_CaseInsensitive(t *testing.T) {
	lower, err := ParseCurrencyCode("eur")
	require.NoError(t, err)
	upper, err := ParseCurrencyCode("EUR")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	assert.True(t, lower == upper)
	assert.Equal(t, "EUR", lower.Code())
	assert.Equal(t, "EUR", lower.String())
}

func TestParseCurrencyCode_TrimsWhitespace(t *testing.T) {
	c, err := ParseCurrencyCode("  gbp ")
	require.NoError(t, err)
	assert.Equal(t, "GBP", c.Code())
}

func TestParseCurrencyCode_Invalid(t *testing.T) {
	for _, code := range []string{"", "ZZZ", "invalid", "US", "USDT", "123", "€"} {
		t.Run(code, func(t *testing.T) {
			c, err := ParseCurrencyCode(code)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCurrencyCode)
			assert.True(t, c.IsZero())
		})
	}
}

func TestCurrencyCode_RegistryDetails(t *testing.T) {
	gbp := MustParseCurrencyCode("GBP")
	assert.Equal(t, "Pound Sterling", gbp.Name())
	assert.Equal(t, 2, gbp.MinorUnits())

	assert.Equal(t, 0, MustParseCurrencyCode("JPY").MinorUnits())
	assert.Equal(t, 3, MustParseCurrencyCode("KWD").MinorUnits())
	assert.Equal(t, -1, MustParseCurrencyCode("XAU").MinorUnits())
}

func TestCurrencyCode_UsableAsMapKey(t *testing.T) {
	seen := map[CurrencyCode]int{}
	seen[MustParseCurrencyCode("usd")]++
	seen[MustParseCurrencyCode("USD")]++
	assert.Len(t, seen, 1)
	assert.Equal(t, 2, seen[MustParseCurrencyCode("Usd")])
}

func TestMustParseCurrencyCode_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseCurrencyCode("ZZZ") })
}

func TestRegistry_CodesAreUniqueAndCanonical(t *testing.T) {
	seen := make(map[string]bool, len(iso4217))
	for _, c := range iso4217 {
		assert.Len(t, c.Code, 3, c.Code)
		assert.Regexp(t, `^[A-Z]{3}$`, c.Code)
		assert.False(t, seen[c.Code], "duplicate %s", c.Code)
		seen[c.Code] = true
	}
}
