package handler

import (
	"net/http"

	"github.com/ratefy/ratefy/internal/service"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PercentageHandler struct {
	svc *service.PercentageService
}

func NewPercentageHandler(svc *service.PercentageService) *PercentageHandler {
	return &PercentageHandler{svc: svc}
}

type calculationResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	Display     string          `json:"display"`
	Currency    string          `json:"currency"`
	AppliedRate decimal.Decimal `json:"applied_rate"`
}

// Apply handles POST /v1/percentage/apply.
func (h *PercentageHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Base     string `json:"base"`
		Rate     string `json:"rate"`
		Currency string `json:"currency"`
	}
	if err := decodeJSON(r, &req); err != nil {
		RespondError(w, r, http.StatusBadRequest, "request/invalid-body", "Invalid request body")
		return
	}

	calc, err := h.svc.Apply(req.Base, req.Rate, req.Currency)
	if err != nil {
		h.respondCalculationError(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, calculationResponse{
		Amount:      calc.Amount,
		Display:     calc.Display,
		Currency:    calc.Currency,
		AppliedRate: calc.Rate,
	})
}

// Revert handles POST /v1/percentage/revert.
func (h *PercentageHandler) Revert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount   string `json:"amount"`
		Rate     string `json:"rate"`
		Currency string `json:"currency"`
	}
	if err := decodeJSON(r, &req); err != nil {
		RespondError(w, r, http.StatusBadRequest, "request/invalid-body", "Invalid request body")
		return
	}

	calc, err := h.svc.Revert(req.Amount, req.Rate, req.Currency)
	if err != nil {
		h.respondCalculationError(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"amount":   calc.Amount,
		"display":  calc.Display,
		"currency": calc.Currency,
	})
}

func (h *PercentageHandler) respondCalculationError(w http.ResponseWriter, r *http.Request, err error) {
	status, problemType, message := mapPercentageError(err)
	if status >= http.StatusInternalServerError {
		zap.L().Error("percentage calculation failed", zap.Error(err))
	}
	RespondError(w, r, status, problemType, message)
}
