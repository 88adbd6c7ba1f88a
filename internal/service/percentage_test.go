package service

import (
	"testing"

	"github.com/ratefy/ratefy/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPercentageService_Apply(t *testing.T) {
	svc := NewPercentageService(zap.NewNop(), domain.All, 2)

	calc, err := svc.Apply("200.00", "15", "eur")
	require.NoError(t, err)

	assert.True(t, calc.Amount.Equal(decimal.NewFromInt(230)), calc.Amount.String())
	assert.Equal(t, "EUR", calc.Currency)
	assert.Equal(t, "230.00 EUR", calc.Display)
	assert.True(t, calc.Rate.Equal(decimal.NewFromInt(15)))
}

func TestPercentageService_ApplyDisplayPlaces(t *testing.T) {
	svc := NewPercentageService(nil, domain.All, 0)

	calc, err := svc.Apply("19.99", "7.5", "USD")
	require.NoError(t, err)
	assert.Equal(t, "21 USD", calc.Display)
	assert.Equal(t, "21.48925", calc.Amount.String())
}

func TestPercentageService_Revert(t *testing.T) {
	svc := NewPercentageService(zap.NewNop(), domain.G10, 2)

	calc, err := svc.Revert("80", "-20", "GBP")
	require.NoError(t, err)
	assert.True(t, calc.Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "100.00 GBP", calc.Display)

	_, err = svc.Revert("100", "0", "GBP")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNonRevertibleState)
}

func TestPercentageService_GroupRestriction(t *testing.T) {
	svc := NewPercentageService(zap.NewNop(), domain.G3, 2)

	_, err := svc.Apply("100", "10", "GBP")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCurrencyNotInGroup)

	_, err = svc.Apply("100", "10", "JPY")
	assert.NoError(t, err)
}

func TestPercentageService_InvalidCurrencyReportedBeforeGroup(t *testing.T) {
	svc := NewPercentageService(zap.NewNop(), domain.G3, 2)

	_, err := svc.Apply("100", "10", "ZZZ")
	require.Error(t, err)

	kind, ok := domain.PercentageErrorKindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.InvalidCurrency, kind)
}

func TestOutcome(t *testing.T) {
	_, _, invalidBase := domain.ApplyPercentage("abc", "1", "USD")
	_, _, invalidRate := domain.ApplyPercentage("1", "abc", "USD")
	_, _, nonRevertible := domain.RevertPercentage("1", "0", "USD")

	assert.Equal(t, "ok", outcome(nil))
	assert.Equal(t, "invalid_base_amount", outcome(invalidBase))
	assert.Equal(t, "invalid_rate", outcome(invalidRate))
	assert.Equal(t, "non_revertible", outcome(nonRevertible))
	assert.Equal(t, "not_selectable", outcome(domain.ErrCurrencyNotInGroup))
	assert.Equal(t, "error", outcome(assert.AnError))
}
