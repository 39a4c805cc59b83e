package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the report module.
type Metrics struct {
	// Reports built, by outcome ("ok", "not_found", "invalid", "error")
	ReportsBuilt *prometheus.CounterVec

	// Secondary fetches that degraded to a null field, by fact
	SourceErrors *prometheus.CounterVec

	// Full build latency including source fetches
	BuildLatency prometheus.Histogram
}

// New creates a Metrics instance with all report module metrics registered.
func New() *Metrics {
	return &Metrics{
		ReportsBuilt: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fundus_reports_built_total",
			Help: "Total report builds by outcome",
		}, []string{"outcome"}),

		SourceErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fundus_report_source_errors_total",
			Help: "Secondary fact fetches degraded to null fields, by fact",
		}, []string{"fact"}),

		BuildLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fundus_report_build_duration_seconds",
			Help:    "Duration of full report builds including source fetches",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementBuilt records a build outcome.
func (m *Metrics) IncrementBuilt(outcome string) {
	if m != nil {
		m.ReportsBuilt.WithLabelValues(outcome).Inc()
	}
}

// IncrementSourceError records a secondary fetch degraded to null.
func (m *Metrics) IncrementSourceError(fact string) {
	if m != nil {
		m.SourceErrors.WithLabelValues(fact).Inc()
	}
}

// ObserveBuildLatency records the total build duration.
func (m *Metrics) ObserveBuildLatency(d time.Duration) {
	if m != nil {
		m.BuildLatency.Observe(d.Seconds())
	}
}
