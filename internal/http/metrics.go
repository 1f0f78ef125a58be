package http

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "racha_http_requests_total",
		Help: "HTTP requests processed, by method, route and status code.",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "racha_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "racha_ledger_mutations_total",
		Help: "Ledger mutations applied, by entity and operation.",
	}, []string{"entity", "op"})

	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "racha_http_rate_limited_total",
		Help: "Requests rejected by the per-client rate limiter.",
	})
)

func observeRequest(method, route string, status int, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// CountMutation records a successful ledger mutation.
func CountMutation(entity, op string) {
	mutationsTotal.WithLabelValues(entity, op).Inc()
}
