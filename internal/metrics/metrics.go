package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsIngested counts ingestion attempts per entity and outcome.
	// Outcomes: created, invalid, conflict, error.
	EventsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insighthub_events_ingested_total",
			Help: "Total number of event ingestion attempts",
		},
		[]string{"entity", "outcome"},
	)

	// RequestDuration observes HTTP request latency per route.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "insighthub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
