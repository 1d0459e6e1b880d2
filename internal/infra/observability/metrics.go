package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the dashboard.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	apiRequestDuration *prometheus.HistogramVec
	apiErrors          *prometheus.CounterVec
	refetches          *prometheus.CounterVec
	pageRenders        *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		apiRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_api_request_duration_seconds",
				Help:    "Duration of fund platform API calls by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		apiErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_api_errors_total",
				Help: "Total errors from the fund platform API.",
			},
			[]string{"operation"},
		),
		refetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_view_refetches_total",
				Help: "Total refetches triggered per view.",
			},
			[]string{"view"},
		),
		pageRenders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_page_renders_total",
				Help: "Total dashboard page renders by tab.",
			},
			[]string{"tab"},
		),
	}
}

// RecordAPIRequestDuration records the duration of an API operation.
func (m *Metrics) RecordAPIRequestDuration(operation string, d time.Duration) {
	m.apiRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrAPIError increments the API error counter for an operation.
func (m *Metrics) IncrAPIError(operation string) {
	m.apiErrors.WithLabelValues(operation).Inc()
}

// IncrRefetch increments the refetch counter for a view.
func (m *Metrics) IncrRefetch(view string) {
	m.refetches.WithLabelValues(view).Inc()
}

// IncrPageRender increments the page render counter for a tab.
func (m *Metrics) IncrPageRender(tab string) {
	m.pageRenders.WithLabelValues(tab).Inc()
}

// APIErrorCount returns the current error count for an operation.
// Used by the health endpoint to report degradation.
func (m *Metrics) APIErrorCount(operation string) float64 {
	return getCounterValue(m.apiErrors, operation)
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
