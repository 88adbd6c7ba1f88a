package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ratefy/ratefy/internal/api/problem"
	"github.com/ratefy/ratefy/internal/domain"
)

// RespondJSON writes a JSON response.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError writes an error response.
func RespondError(w http.ResponseWriter, r *http.Request, status int, problemType, message string) {
	if problemType != "" && problemType != "about:blank" && !strings.HasPrefix(problemType, "http") {
		problemType = problem.Type(problemType)
	}
	problem.Write(w, r, status, problemType, http.StatusText(status), message)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func mapPercentageError(err error) (status int, problemType, message string) {
	if errors.Is(err, domain.ErrCurrencyNotInGroup) {
		return http.StatusUnprocessableEntity, "percentage/currency-not-selectable", err.Error()
	}

	kind, ok := domain.PercentageErrorKindOf(err)
	if !ok {
		return http.StatusInternalServerError, "percentage/calculation-failed", "calculation failed"
	}
	switch kind {
	case domain.InvalidCurrency:
		return http.StatusBadRequest, "percentage/invalid-currency", "currency must be an ISO 4217 alpha-3 code"
	case domain.InvalidBaseAmount:
		return http.StatusBadRequest, "percentage/invalid-base-amount", "amount must be a decimal number"
	case domain.InvalidRate:
		return http.StatusBadRequest, "percentage/invalid-rate", "rate must be a decimal number"
	case domain.NonRevertible:
		return http.StatusUnprocessableEntity, "percentage/non-revertible", "a zero rate has nothing to revert"
	default:
		return http.StatusInternalServerError, "percentage/calculation-failed", "calculation failed"
	}
}
