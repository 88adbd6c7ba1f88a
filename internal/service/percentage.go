package service

import (
	"errors"
	"fmt"

	"github.com/ratefy/ratefy/internal/domain"
	"github.com/ratefy/ratefy/internal/observability"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	OperationApply  = "apply"
	OperationRevert = "revert"
)

// Calculation is the outcome of a successful apply or revert.
type Calculation struct {
	Amount   decimal.Decimal
	Currency string
	// Display is Amount rounded to the configured number of places.
	Display string
	// Rate is the percentage that was applied or reverted.
	Rate decimal.Decimal
}

// PercentageService runs percentage requests against the currencies the
// deployment allows.
type PercentageService struct {
	logger        *zap.Logger
	group         domain.CurrencyGroup
	displayPlaces int32
}

func NewPercentageService(logger *zap.Logger, group domain.CurrencyGroup, displayPlaces int32) *PercentageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PercentageService{
		logger:        logger,
		group:         group,
		displayPlaces: displayPlaces,
	}
}

// Group returns the currency group requests are restricted to.
func (s *PercentageService) Group() domain.CurrencyGroup {
	return s.group
}

// Apply applies rate percent to base.
func (s *PercentageService) Apply(base, rate, currency string) (*Calculation, error) {
	calc, err := s.run(OperationApply, base, rate, currency, domain.ApplyPercentage)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("percentage applied",
		zap.String("base", base),
		zap.String("rate", rate),
		zap.String("currency", calc.Currency),
		zap.String("amount", calc.Amount.String()),
	)
	return calc, nil
}

// Revert recovers the amount that rate percent was applied to in order to
// produce amount.
func (s *PercentageService) Revert(amount, rate, currency string) (*Calculation, error) {
	calc, err := s.run(OperationRevert, amount, rate, currency, domain.RevertPercentage)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("percentage reverted",
		zap.String("amount", amount),
		zap.String("rate", rate),
		zap.String("currency", calc.Currency),
		zap.String("original", calc.Amount.String()),
	)
	return calc, nil
}

type percentageFunc func(amountText, rateText, currencyText string) (decimal.Decimal, string, error)

func (s *PercentageService) run(operation, amountText, rateText, currencyText string, fn percentageFunc) (*Calculation, error) {
	// Unparseable currencies fall through so the domain reports them in its
	// usual validation order.
	if code, err := domain.ParseCurrencyCode(currencyText); err == nil && !s.group.Contains(code) {
		err = fmt.Errorf("%w: %s is not in %s", domain.ErrCurrencyNotInGroup, code, s.group)
		observability.IncrementCalculation(operation, outcome(err))
		return nil, err
	}

	amount, code, err := fn(amountText, rateText, currencyText)
	observability.IncrementCalculation(operation, outcome(err))
	if err != nil {
		s.logger.Debug("percentage request rejected", zap.String("operation", operation), zap.Error(err))
		return nil, err
	}

	currency := domain.MustParseCurrencyCode(code)
	rate, _ := domain.ParseRate(rateText)
	return &Calculation{
		Amount:   amount,
		Currency: code,
		Display:  domain.NewMoney(amount, currency).StringFixed(s.displayPlaces),
		Rate:     rate,
	}, nil
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if errors.Is(err, domain.ErrCurrencyNotInGroup) {
		return "not_selectable"
	}
	kind, ok := domain.PercentageErrorKindOf(err)
	if !ok {
		return "error"
	}
	switch kind {
	case domain.InvalidCurrency:
		return "invalid_currency"
	case domain.InvalidBaseAmount:
		return "invalid_base_amount"
	case domain.InvalidRate:
		return "invalid_rate"
	case domain.NonRevertible:
		return "non_revertible"
	default:
		return "error"
	}
}
