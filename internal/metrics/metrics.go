package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SessionsGenerated counts sessions produced by the segmenter
	SessionsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "donation_sessions_generated_total",
		Help: "The total number of sessions produced by the segmenter",
	})

	// RowsWritten counts session rows accepted by the sink
	RowsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "donation_session_rows_written_total",
		Help: "The total number of session rows written",
	})

	// EmptySessions counts sessions with no visible campaigns
	EmptySessions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "donation_sessions_empty_total",
		Help: "The total number of sessions that had no active campaigns",
	})

	// GenerationDuration observes the wall time of whole generation runs
	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "donation_session_generation_duration_seconds",
		Help:    "The generation run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	// JobsProcessed counts queued generation jobs by outcome
	JobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "donation_session_jobs_processed_total",
		Help: "The total number of generation jobs processed by status",
	}, []string{"status"})
)
