// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors for scoring calls.
//
// Collectors are registered on the default registry through promauto, so a
// host process that already exposes /metrics picks them up automatically.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for the status label.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// StrategyUnknown replaces strategy names that resolve to nothing, so
// caller-supplied strings cannot grow the label set.
const StrategyUnknown = "unknown"

var (
	// ScoresTotal counts scoring calls by family, strategy and outcome.
	ScoresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkpred_scores_total",
			Help: "Total number of scoring calls",
		},
		[]string{"family", "strategy", "status"},
	)

	// PairsScored counts node pairs scored successfully.
	PairsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkpred_pairs_scored_total",
			Help: "Total number of node pairs scored",
		},
		[]string{"family", "strategy"},
	)

	// ScoreDuration measures wall time per scoring call.
	// Buckets span sub-millisecond neighbour lookups to multi-second
	// path products on large graphs.
	ScoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "linkpred_score_duration_seconds",
			Help:    "Duration of scoring calls in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"family", "strategy"},
	)

	// DegreeCacheLookups counts degree-vector cache hits and misses.
	DegreeCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkpred_degree_cache_lookups_total",
			Help: "Degree vector cache lookups by result",
		},
		[]string{"result"},
	)
)

// Observe records one scoring call that started at start and scored pairs
// node pairs. err decides the status label; pairs are only counted on
// success.
func Observe(family, strategy string, start time.Time, pairs int, err error) {
	ScoreDuration.WithLabelValues(family, strategy).Observe(time.Since(start).Seconds())
	if err != nil {
		ScoresTotal.WithLabelValues(family, strategy, StatusError).Inc()
		return
	}
	ScoresTotal.WithLabelValues(family, strategy, StatusOK).Inc()
	PairsScored.WithLabelValues(family, strategy).Add(float64(pairs))
}
