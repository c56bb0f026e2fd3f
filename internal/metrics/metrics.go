// Package metrics exposes Prometheus instrumentation for the HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors of one registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	walletsGenerated    *prometheus.CounterVec
	languageSwitches    *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "endpoint", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "endpoint", "status"},
		),
		walletsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paper_wallets_generated_total",
				Help: "Total number of wallets generated",
			},
			[]string{"network"},
		),
		languageSwitches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "language_switches_total",
				Help: "Total number of explicit language selections",
			},
			[]string{"language"},
		),
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// WalletGenerated counts one generated wallet.
func (m *Metrics) WalletGenerated(network string) {
	m.walletsGenerated.WithLabelValues(network).Inc()
}

// LanguageSelected counts one explicit language selection.
func (m *Metrics) LanguageSelected(lang string) {
	m.languageSwitches.WithLabelValues(lang).Inc()
}

// Middleware records request count and latency per route pattern.
func (m *Metrics) Middleware(serviceName string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rec.status)
		endpoint := r.Pattern
		if endpoint == "" {
			endpoint = "not_found"
		}

		m.httpRequestsTotal.WithLabelValues(serviceName, r.Method, endpoint, status).Inc()
		m.httpRequestDuration.WithLabelValues(serviceName, r.Method, endpoint, status).Observe(duration)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
