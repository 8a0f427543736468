package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the detection engine.
type Metrics struct {
	Passes        *prometheus.CounterVec // labels: outcome={completed,failed,skipped}
	PassDuration  prometheus.Histogram
	Detections    *prometheus.CounterVec // labels: reason
	Rejected      prometheus.Counter
	Incidents     prometheus.Counter
	Reports       prometheus.Counter
	StageFailures *prometheus.CounterVec // labels: stage={dedup,incident,report,reconcile}
	ZonesDegraded prometheus.Gauge
}

// NewMetrics creates and registers all engine metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Passes,
		m.PassDuration,
		m.Detections,
		m.Rejected,
		m.Incidents,
		m.Reports,
		m.StageFailures,
		m.ZonesDegraded,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "efir_engine",
			Name:      "passes_total",
			Help:      "Evaluation passes by outcome.",
		}, []string{"outcome"}),
		PassDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "efir_engine",
			Name:      "pass_duration_seconds",
			Help:      "Duration of a complete evaluation pass.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		Detections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "efir_engine",
			Name:      "detections_total",
			Help:      "Tourists flagged by a hazard rule, by reason.",
		}, []string{"reason"}),
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "efir_engine",
			Name:      "dedup_rejections_total",
			Help:      "Candidates rejected because an open report already exists.",
		}),
		Incidents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "efir_engine",
			Name:      "incidents_created_total",
			Help:      "Incidents recorded by automatic detection.",
		}),
		Reports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "efir_engine",
			Name:      "reports_created_total",
			Help:      "E-FIR reports generated automatically.",
		}),
		StageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "efir_engine",
			Name:      "stage_failures_total",
			Help:      "Per-tourist pipeline failures by stage.",
		}, []string{"stage"}),
		ZonesDegraded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "efir_engine",
			Name:      "zones_degraded",
			Help:      "1 when the last pass used cached zone data, 0 otherwise.",
		}),
	}
}
