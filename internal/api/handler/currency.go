package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ratefy/ratefy/internal/domain"
	"github.com/ratefy/ratefy/internal/service"
)

type CurrencyHandler struct {
	svc *service.CurrencyService
}

func NewCurrencyHandler(svc *service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{svc: svc}
}

// ListGroup handles GET /v1/currency-groups/{group}.
func (h *CurrencyHandler) ListGroup(w http.ResponseWriter, r *http.Request) {
	group, err := domain.ParseCurrencyGroup(chi.URLParam(r, "group"))
	if err != nil {
		RespondError(w, r, http.StatusNotFound, "currency/unknown-group", "group must be one of g3, g10, all")
		return
	}

	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"group":      group.String(),
		"currencies": h.svc.List(group),
	})
}

// Get handles GET /v1/currencies/{code}.
func (h *CurrencyHandler) Get(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.Lookup(chi.URLParam(r, "code"))
	if err != nil {
		RespondError(w, r, http.StatusBadRequest, "currency/invalid-code", "currency must be an ISO 4217 alpha-3 code")
		return
	}
	RespondJSON(w, http.StatusOK, details)
}
