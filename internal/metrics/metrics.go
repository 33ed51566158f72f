package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsNamespace          = "translator"
	metricsSubSystemAPI       = "api"
	metricsSubSystemModerator = "moderation"
	metricsSubSystemProvider  = "provider"
)

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	outcomes        *prometheus.CounterVec
	blocked         *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec
}

func New() *Metrics {
	var m Metrics
	m.registry = prometheus.NewRegistry()

	m.outcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubSystemAPI,
		Name:      "requests_total",
		Help:      "Translate requests by outcome.",
	}, []string{"outcome"})
	m.registry.MustRegister(m.outcomes)

	m.blocked = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubSystemModerator,
		Name:      "blocked_categories_total",
		Help:      "Blocklisted categories that caused a request to be refused.",
	}, []string{"category"})
	m.registry.MustRegister(m.blocked)

	m.providerLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubSystemProvider,
		Name:      "request_seconds",
		Help:      "Latency of provider calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "status_code"})
	m.registry.MustRegister(m.providerLatency)

	return &m
}

// ObserveOutcome counts one finished request. Outcome is "ok" or the
// error category.
func (m *Metrics) ObserveOutcome(outcome string) {
	m.outcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveBlocked(categories []string) {
	for _, c := range categories {
		m.blocked.WithLabelValues(c).Inc()
	}
}

// ObserveProviderCall records one outbound call. A zero status means the
// call failed before a response arrived.
func (m *Metrics) ObserveProviderCall(endpoint string, status int, elapsed time.Duration) {
	m.providerLatency.WithLabelValues(endpoint, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
