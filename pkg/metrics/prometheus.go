package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	LoadsTotal        prometheus.Counter
	LoadFailures      prometheus.Counter
	FlightsSelected   prometheus.Counter
	BookingsPromoted  prometheus.Counter
	BookingsDemoted   prometheus.Counter
	RecomputeDuration prometheus.Histogram
	ErrorsCount       *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		LoadsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reference_loads_total",
			Help:      "The total number of reference data loads attempted",
		}),
		LoadFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reference_load_failures_total",
			Help:      "The total number of failed reference data loads",
		}),
		FlightsSelected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_selected_total",
			Help:      "The total number of flight selections",
		}),
		BookingsPromoted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_promoted_total",
			Help:      "The total number of bookings promoted to the confirmed list",
		}),
		BookingsDemoted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_demoted_total",
			Help:      "The total number of bookings demoted to the standby list",
		}),
		RecomputeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recompute_duration_seconds",
			Help:      "Time taken to recompute utilization and totals",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
