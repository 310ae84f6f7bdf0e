package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric of the service.
const Namespace = "catalog_manager"

var (
	ReconcileRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "reconcile_runs_total",
			Namespace: Namespace,
			Help:      "The total number of catalog merges by result.",
		},
		[]string{"result"},
	)

	ReconcileStreamsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "reconcile_streams_total",
			Namespace: Namespace,
			Help:      "The total number of merged streams by outcome.",
		},
		[]string{"outcome"},
	)

	ReconcileDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:      "reconcile_duration_seconds",
		Namespace: Namespace,
		Buckets:   prometheus.DefBuckets,
		Help:      "The latency of catalog merges in seconds.",
	})

	SnapshotCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name:        "snapshot_cache_hits_total",
		Namespace:   Namespace,
		ConstLabels: prometheus.Labels{"cache": "memory"},
		Help:        "The total number of snapshot cache hits since the application started.",
	})

	SnapshotCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name:        "snapshot_cache_misses_total",
		Namespace:   Namespace,
		ConstLabels: prometheus.Labels{"cache": "memory"},
		Help:        "The total number of snapshot cache misses since the application started.",
	})
)

// Result labels for ReconcileRunsTotal.
const (
	ResultSuccess   = "success"
	ResultMalformed = "malformed"
	ResultError     = "error"
)
