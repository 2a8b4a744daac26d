package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the registry
type Metrics struct {
	registry *prometheus.Registry

	CertificatesIssued *prometheus.CounterVec
	LoginAttempts      *prometheus.CounterVec
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
}

// New creates the collectors on a private registry together with the Go and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		CertificatesIssued: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "maritime_certificates_issued_total",
			Help: "Certificates issued through the request workflow, by certificate type",
		}, []string{"type"}),
		LoginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "maritime_login_attempts_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "maritime_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "maritime_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) IncrementCertificatesIssued(certificateType string) {
	m.CertificatesIssued.WithLabelValues(certificateType).Inc()
}

// Login outcomes
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
	LoginInvalid = "invalid"
)

func (m *Metrics) IncrementLoginAttempts(outcome string) {
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
