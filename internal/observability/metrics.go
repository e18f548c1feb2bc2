package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// impact computation engine.
type Metrics struct {
	Recomputes      prometheus.Counter
	RecomputeErrors prometheus.Counter
	InvalidInputs   prometheus.Counter

	RecomputeDuration prometheus.Histogram

	// Reference-data metrics, set once at startup.
	UniverseSize           prometheus.Gauge
	CountiesMissingFactors prometheus.Gauge

	// Per-recompute classification breakdown. labels: category={low,medium,high,no_data}
	RowsClassified *prometheus.CounterVec
}

// NewMetrics creates and registers all engine metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Recomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "county_footprint",
			Name:      "recomputes_total",
			Help:      "Total full-table recomputations performed.",
		}),
		RecomputeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "county_footprint",
			Name:      "recompute_errors_total",
			Help:      "Total recomputations rejected before producing a table.",
		}),
		InvalidInputs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "county_footprint",
			Name:      "invalid_inputs_total",
			Help:      "Total requests rejected for invalid units, metrics, or values.",
		}),
		RecomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "county_footprint",
			Name:      "recompute_duration_seconds",
			Help:      "Duration of a complete compute-then-classify pass over all counties.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5},
		}),
		UniverseSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "county_footprint",
			Name:      "universe_size",
			Help:      "Number of county ids in the rendering universe.",
		}),
		CountiesMissingFactors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "county_footprint",
			Name:      "counties_missing_factors",
			Help:      "Universe counties with no factor table coverage at all.",
		}),
		RowsClassified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "county_footprint",
			Name:      "rows_classified_total",
			Help:      "Output rows by impact category across all recomputations.",
		}, []string{"category"}),
	}

	prometheus.MustRegister(
		m.Recomputes,
		m.RecomputeErrors,
		m.InvalidInputs,
		m.RecomputeDuration,
		m.UniverseSize,
		m.CountiesMissingFactors,
		m.RowsClassified,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Recomputes:             prometheus.NewCounter(prometheus.CounterOpts{Namespace: "county_footprint", Name: "recomputes_total"}),
		RecomputeErrors:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "county_footprint", Name: "recompute_errors_total"}),
		InvalidInputs:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "county_footprint", Name: "invalid_inputs_total"}),
		RecomputeDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "county_footprint", Name: "recompute_duration_seconds"}),
		UniverseSize:           prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "county_footprint", Name: "universe_size"}),
		CountiesMissingFactors: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "county_footprint", Name: "counties_missing_factors"}),
		RowsClassified:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "county_footprint", Name: "rows_classified_total"}, []string{"category"}),
	}
}
