// Package monitoring provides Prometheus metrics collection.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/equilibra/v1/internal/ports/outbound"
)

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	logger *zap.Logger

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Engine metrics
	foodsScoredTotal    *prometheus.CounterVec
	foodsExcludedTotal  *prometheus.CounterVec
	planShortfallsTotal *prometheus.CounterVec
	plansBuiltTotal     *prometheus.CounterVec
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger *zap.Logger) *MetricsCollector {
	return &MetricsCollector{
		logger: logger,

		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),

		foodsScoredTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "engine_foods_scored_total",
				Help: "Total number of foods scored, by framework",
			},
			[]string{"framework"},
		),
		foodsExcludedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "engine_foods_excluded_total",
				Help: "Total number of foods excluded from scoring, by framework",
			},
			[]string{"framework"},
		),
		planShortfallsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "engine_plan_shortfalls_total",
				Help: "Total number of unfilled plan slots, by framework",
			},
			[]string{"framework"},
		),
		plansBuiltTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "engine_plans_built_total",
				Help: "Total number of weekly plans built, by framework",
			},
			[]string{"framework"},
		),
	}
}

var _ outbound.EngineMetrics = (*MetricsCollector)(nil)

// ObserveScoring records a catalog scoring pass.
func (m *MetricsCollector) ObserveScoring(framework string, scored, excluded int) {
	m.foodsScoredTotal.WithLabelValues(framework).Add(float64(scored))
	m.foodsExcludedTotal.WithLabelValues(framework).Add(float64(excluded))
}

// ObserveShortfalls records the shortfall count of a built plan.
func (m *MetricsCollector) ObserveShortfalls(framework string, count int) {
	m.plansBuiltTotal.WithLabelValues(framework).Inc()
	m.planShortfallsTotal.WithLabelValues(framework).Add(float64(count))
}

// RecordHTTPRequest records an HTTP request observation.
func (m *MetricsCollector) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	code := strconv.Itoa(statusCode)
	m.httpRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// Handler returns the Prometheus scrape handler.
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.Handler()
}
