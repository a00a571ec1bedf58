// Package telemetry holds the Prometheus collectors for GA4 lookups.
// Collectors register with the default registry on import and are served
// by the /metrics route.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "pageviews"
	subsystem = "ga4"

	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
)

var (
	// FetchTotal counts runReport lookups by outcome.
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "fetch_total",
			Help:      "Total number of GA4 page view lookups by outcome",
		},
		[]string{"outcome"}, // success, empty, error
	)

	FetchDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of GA4 page view lookups in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// RecordFetch records one lookup.
func RecordFetch(outcome string, elapsed time.Duration) {
	FetchTotal.WithLabelValues(outcome).Inc()
	FetchDurationSeconds.Observe(elapsed.Seconds())
}
