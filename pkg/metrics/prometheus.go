package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	cacheHits    *prometheus.CounterVec
	cacheMisses  *prometheus.CounterVec
	fetchTotal   *prometheus.CounterVec
	fetchLatency *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stonkwatch_cache_hits_total",
				Help: "Cache hits per data category",
			},
			[]string{"category"},
		),
		cacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stonkwatch_cache_misses_total",
				Help: "Cache misses per data category, by reason",
			},
			[]string{"category", "reason"},
		),
		fetchTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stonkwatch_provider_fetches_total",
				Help: "Upstream provider fetches, by outcome",
			},
			[]string{"provider", "outcome"},
		),
		fetchLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stonkwatch_provider_fetch_duration_seconds",
				Help:    "Upstream provider fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
	}
}

// RecordCacheHit records a valid cache read for a category.
func (r *Recorder) RecordCacheHit(category string) {
	r.cacheHits.WithLabelValues(category).Inc()
}

// RecordCacheMiss records a cache miss and why (missing, stale, read_error, invalid).
func (r *Recorder) RecordCacheMiss(category, reason string) {
	r.cacheMisses.WithLabelValues(category, reason).Inc()
}

// RecordFetch records a provider fetch outcome (ok or error).
func (r *Recorder) RecordFetch(provider, outcome string) {
	r.fetchTotal.WithLabelValues(provider, outcome).Inc()
}

// RecordFetchLatency records provider fetch duration in seconds.
func (r *Recorder) RecordFetchLatency(provider string, seconds float64) {
	r.fetchLatency.WithLabelValues(provider).Observe(seconds)
}
