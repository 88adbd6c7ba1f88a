package service

import (
	"github.com/ratefy/ratefy/internal/domain"
)

// CurrencyDetails describes one ISO 4217 currency for presentation.
type CurrencyDetails struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	MinorUnits int    `json:"minor_units"`
	G3         bool   `json:"g3"`
	G10        bool   `json:"g10"`
	Selectable bool   `json:"selectable"`
}

type CurrencyService struct {
	selectable domain.CurrencyGroup
}

func NewCurrencyService(selectable domain.CurrencyGroup) *CurrencyService {
	return &CurrencyService{selectable: selectable}
}

// List returns the codes of group in its fixed order.
func (s *CurrencyService) List(group domain.CurrencyGroup) []string {
	return group.List()
}

// Lookup validates code and describes it.
func (s *CurrencyService) Lookup(code string) (*CurrencyDetails, error) {
	currency, err := domain.ParseCurrencyCode(code)
	if err != nil {
		return nil, err
	}
	return &CurrencyDetails{
		Code:       currency.Code(),
		Name:       currency.Name(),
		MinorUnits: currency.MinorUnits(),
		G3:         domain.IsG3(currency.Code()),
		G10:        domain.IsG10(currency.Code()),
		Selectable: s.selectable.Contains(currency),
	}, nil
}
