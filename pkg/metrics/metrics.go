// Package metrics provides Prometheus metrics for the Clover service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MatchRequestsTotal tracks match operations by outcome
	MatchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clover",
			Subsystem: "matching",
			Name:      "requests_total",
			Help:      "Total number of match operations by outcome",
		},
		[]string{"outcome"},
	)

	// MatchDuration tracks match pipeline duration in seconds
	MatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "clover",
			Subsystem: "matching",
			Name:      "duration_seconds",
			Help:      "Duration of match operations in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// MatchCandidates tracks the size of returned candidate lists
	MatchCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "clover",
			Subsystem: "matching",
			Name:      "candidates",
			Help:      "Number of candidates returned per match operation",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	// EnrichmentFailures tracks absorbed per-provider enrichment failures
	EnrichmentFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clover",
			Subsystem: "matching",
			Name:      "enrichment_failures_total",
			Help:      "Total number of absorbed per-provider enrichment failures",
		},
		[]string{"collaborator"},
	)

	// DiagnosticsEmitted tracks how often an empty match set needed explaining
	DiagnosticsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clover",
			Subsystem: "matching",
			Name:      "diagnostics_total",
			Help:      "Total number of diagnostics attached to match responses",
		},
		[]string{"reason"},
	)
)
