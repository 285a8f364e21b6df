// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nutriplan"

// Plan sources.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Payment confirmation sources.
const (
	SourceStatus  = "status"
	SourceWebhook = "webhook"
)

type Metrics struct {
	registry          *prometheus.Registry
	plansGenerated    *prometheus.CounterVec
	paymentsConfirmed *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		plansGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_generated_total",
			Help:      "Meal plans generated, by plan type and source.",
		}, []string{"plan_type", "source"}),
		paymentsConfirmed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_confirmed_total",
			Help:      "Payments moved to paid, by confirmation path.",
		}, []string{"source"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.plansGenerated,
		m.paymentsConfirmed,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) PlanGenerated(planType, source string) {
	m.plansGenerated.WithLabelValues(planType, source).Inc()
}

func (m *Metrics) PaymentConfirmed(source string) {
	m.paymentsConfirmed.WithLabelValues(source).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the registry in the text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
