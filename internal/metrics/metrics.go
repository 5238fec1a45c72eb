package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScoresComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shillscore_scores_total",
		Help: "Total risk scores computed, labelled by severity.",
	}, []string{"label"})

	ScoreDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "shillscore_score_duration_seconds",
		Help:    "End-to-end scoring latency including upstream fetches.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	FetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shillscore_upstream_fetch_failures_total",
		Help: "Upstream fetches that failed and were treated as empty, labelled by provider and operation.",
	}, []string{"provider", "op"})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shillscore_cache_hits_total",
		Help: "Score results served from the Redis cache.",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shillscore_cache_misses_total",
		Help: "Score requests that missed the Redis cache.",
	})
)
