package handler

import (
	"net/http"

	"github.com/ratefy/ratefy/internal/domain"
)

// HealthHandler exposes Kubernetes-style liveness and readiness endpoints.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Live reports OK whenever the process can serve requests.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports whether the currency registry is usable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := domain.ParseCurrencyCode("USD"); err != nil {
		RespondError(w, r, http.StatusServiceUnavailable, "health/registry-unavailable", "currency registry unavailable")
		return
	}
	RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
