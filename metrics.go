package fintrex

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the site's Prometheus collectors on a private registry, so
// several Apps can live in one process.
type Metrics struct {
	Registry *prometheus.Registry

	requests    *prometheus.HistogramVec
	resolutions *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

// NewMetrics registers the site collectors plus the Go and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fintrex",
			Name:      "http_request_duration_seconds",
			Help:      "Request latency by route pattern and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fintrex",
			Name:      "resolutions_total",
			Help:      "Detail route resolutions by collection and outcome.",
		}, []string{"collection", "outcome"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fintrex",
			Name:      "form_submissions_total",
			Help:      "Waitlist and contact submissions by outcome.",
		}, []string{"form", "outcome"}),
	}
	m.Registry.MustRegister(
		m.requests,
		m.resolutions,
		m.submissions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route string, status int, latency time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Observe(latency.Seconds())
}

// Resolved counts a detail lookup as "rendered" or "redirected".
func (m *Metrics) Resolved(collection string, found bool) {
	outcome := "redirected"
	if found {
		outcome = "rendered"
	}
	m.resolutions.WithLabelValues(collection, outcome).Inc()
}

// Submitted counts a form submission outcome.
func (m *Metrics) Submitted(form, outcome string) {
	m.submissions.WithLabelValues(form, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
