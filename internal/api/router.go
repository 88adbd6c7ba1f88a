package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ratefy/ratefy/internal/api/handler"
	"github.com/ratefy/ratefy/internal/api/middleware"
	"github.com/ratefy/ratefy/internal/api/openapi"
	"github.com/ratefy/ratefy/internal/config"
	"github.com/ratefy/ratefy/internal/service"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	cfg           *config.Config
	logger        *zap.Logger
	percentageSvc *service.PercentageService
	currencySvc   *service.CurrencyService
}

func NewRouter(cfg *config.Config, logger *zap.Logger, percentageSvc *service.PercentageService, currencySvc *service.CurrencyService) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		cfg:           cfg,
		logger:        logger,
		percentageSvc: percentageSvc,
		currencySvc:   currencySvc,
	}
}

func (api *Router) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)
	r.Use(middleware.RecoverMiddleware(api.logger))
	r.Use(middleware.LoggingMiddleware(api.logger))
	r.Use(middleware.MetricsMiddleware)

	// Handlers
	healthHandler := handler.NewHealthHandler()
	currencyHandler := handler.NewCurrencyHandler(api.currencySvc)
	percentageHandler := handler.NewPercentageHandler(api.percentageSvc)

	// Operational routes
	r.Get("/healthz/live", healthHandler.Live)
	r.Get("/healthz/ready", healthHandler.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/openapi.yaml", openapi.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/openapi.yaml")))

	// Public API
	r.Group(func(r chi.Router) {
		r.Use(middleware.PublicRateLimiter(api.cfg.PublicRateLimitRPS))

		r.Get("/v1/currency-groups/{group}", currencyHandler.ListGroup)
		r.Get("/v1/currencies/{code}", currencyHandler.Get)

		r.Post("/v1/percentage/apply", percentageHandler.Apply)
		r.Post("/v1/percentage/revert", percentageHandler.Revert)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handler.RespondError(w, r, http.StatusNotFound, "request/not-found", "route not found")
	})

	return r
}
