// Package metrics provides Prometheus metrics for the attribution service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal tracks attribution runs by model and status
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "attribution",
			Subsystem: "runs",
			Name:      "total",
			Help:      "Total number of attribution runs by model and status",
		},
		[]string{"model", "status"},
	)

	// RunDuration tracks full pipeline run duration in seconds
	RunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "attribution",
			Subsystem: "runs",
			Name:      "duration_seconds",
			Help:      "Duration of attribution pipeline runs in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"model"},
	)

	// JourneysProcessed tracks journeys processed per run by outcome
	JourneysProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "attribution",
			Subsystem: "runs",
			Name:      "journeys_processed_total",
			Help:      "Total number of customer journeys processed by outcome",
		},
		[]string{"outcome"},
	)

	// ResultsWritten tracks output rows written to ClickHouse
	ResultsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "attribution",
			Subsystem: "storage",
			Name:      "rows_written_total",
			Help:      "Total number of output rows written by table",
		},
		[]string{"table"},
	)

	// RunsTriggered tracks run requests accepted by the API
	RunsTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "attribution",
			Subsystem: "api",
			Name:      "runs_triggered_total",
			Help:      "Total number of run requests accepted by the API",
		},
		[]string{"model"},
	)
)

// RecordRun records a completed attribution run
func RecordRun(model, status string, durationSeconds float64) {
	RunsTotal.WithLabelValues(model, status).Inc()
	RunDuration.WithLabelValues(model).Observe(durationSeconds)
}

// RecordJourneys records journey outcomes for a run
func RecordJourneys(outcome string, count int) {
	JourneysProcessed.WithLabelValues(outcome).Add(float64(count))
}

// RecordRowsWritten records output rows written to a table
func RecordRowsWritten(table string, count int) {
	ResultsWritten.WithLabelValues(table).Add(float64(count))
}
