package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	httpDurationHistogram *prometheus.HistogramVec
	calculationCounter    *prometheus.CounterVec
	rateLimitedCounter    prometheus.Counter
)

// Init registers all Prometheus collectors.
func Init() {
	registerOnce.Do(func() {
		httpDurationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"})

		calculationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ratefy_calculations_total",
			Help: "Percentage calculations by operation and outcome",
		}, []string{"operation", "outcome"})

		rateLimitedCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ratefy_rate_limited_requests_total",
			Help: "Requests rejected by the public rate limiter",
		})

		prometheus.MustRegister(
			httpDurationHistogram,
			calculationCounter,
			rateLimitedCounter,
		)
	})
}

func ObserveHTTP(method, path string, status int, duration time.Duration) {
	if httpDurationHistogram == nil {
		return
	}
	httpDurationHistogram.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

// IncrementCalculation counts one apply or revert with its outcome, e.g.
// "ok" or "invalid_rate".
func IncrementCalculation(operation, outcome string) {
	if calculationCounter == nil {
		return
	}
	calculationCounter.WithLabelValues(operation, outcome).Inc()
}

func IncrementRateLimited() {
	if rateLimitedCounter == nil {
		return
	}
	rateLimitedCounter.Inc()
}
