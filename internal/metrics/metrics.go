package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Materializer metrics
var (
	MaterializerCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sitekit_materializer_cache_hits_total",
			Help: "Total number of site materializations served from cache",
		},
	)

	MaterializerCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sitekit_materializer_cache_misses_total",
			Help: "Total number of site materializations that required a merge",
		},
	)

	MaterializerCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sitekit_materializer_cache_evictions_total",
			Help: "Total number of cache entries removed after their raw record was collected",
		},
	)

	MaterializerCacheClears = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sitekit_materializer_cache_clears_total",
			Help: "Total number of whole-cache clears",
		},
	)

	MaterializerCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sitekit_materializer_cache_size",
			Help: "Current number of entries in the materialization cache",
		},
	)
)

// Media helper metrics
var (
	MediaURLResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitekit_media_url_resolutions_total",
			Help: "Total number of media URL resolutions by winning source",
		},
		[]string{"source"}, // "thumbnail", "max_width", "resize", "raw", "none"
	)

	PreviewGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitekit_preview_generations_total",
			Help: "Total number of media preview generations",
		},
		[]string{"status"}, // "success", "error"
	)

	PreviewGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sitekit_preview_generation_duration_seconds",
			Help:    "Media preview generation duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
)
