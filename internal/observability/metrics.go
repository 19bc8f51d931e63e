package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the dashboard.
type Metrics struct {
	Requests            *prometheus.CounterVec // labels: endpoint={dashboard,charts,chart}
	LoadErrors          prometheus.Counter
	DatasetRows         prometheus.Histogram
	AggregationDuration prometheus.Histogram
	ViewPlaceholders    *prometheus.CounterVec // labels: view
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Requests,
		m.LoadErrors,
		m.DatasetRows,
		m.AggregationDuration,
		m.ViewPlaceholders,
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
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "air_quality",
			Name:      "dashboard_requests_total",
			Help:      "Dashboard and chart API requests by endpoint.",
		}, []string{"endpoint"}),
		LoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "air_quality",
			Name:      "dataset_load_errors_total",
			Help:      "Total failures to load or parse the dataset.",
		}),
		DatasetRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "air_quality",
			Name:      "dataset_rows",
			Help:      "Number of records loaded per request.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
		}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "air_quality",
			Name:      "aggregation_duration_seconds",
			Help:      "Duration of a complete load and view computation.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		ViewPlaceholders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "air_quality",
			Name:      "view_placeholders_total",
			Help:      "Views rendered as placeholders because of missing columns or data.",
		}, []string{"view"}),
	}
}
