// Package metrics defines the Prometheus collectors shared across the
// application. Collectors are registered on the default registry and exposed
// by the HTTP server's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// fetchBuckets covers outbound page fetches, which regularly take seconds.
var fetchBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// DiscoveryRuns counts finished discovery runs by final status.
	DiscoveryRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mailscout",
		Name:      "discovery_runs_total",
		Help:      "Finished discovery runs partitioned by final status.",
	}, []string{"status"})

	// DiscoveryDuration observes end-to-end duration of discovery runs.
	DiscoveryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mailscout",
		Name:      "discovery_run_duration_seconds",
		Help:      "End-to-end duration of discovery runs.",
		Buckets:   []float64{1, 2.5, 5, 10, 20, 30, 60, 120, 300},
	})

	// PagesFetched counts fetched pages by source connector and outcome.
	PagesFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mailscout",
		Name:      "pages_fetched_total",
		Help:      "Fetched pages partitioned by source connector and outcome.",
	}, []string{"source", "outcome"})

	// FetchDuration observes outbound page fetch latency per source connector.
	FetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mailscout",
		Name:      "page_fetch_duration_seconds",
		Help:      "Outbound page fetch latency per source connector.",
		Buckets:   fetchBuckets,
	}, []string{"source"})

	// CandidatesExtracted counts extracted candidate emails by extraction method.
	CandidatesExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mailscout",
		Name:      "candidates_extracted_total",
		Help:      "Extracted candidate emails partitioned by extraction method.",
	}, []string{"method"})

	// Validations counts validation passes by terminal reason.
	Validations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mailscout",
		Name:      "validations_total",
		Help:      "Validation passes partitioned by terminal reason.",
	}, []string{"reason"})

	// ValidationCacheHits counts validation cache hits and misses.
	ValidationCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mailscout",
		Name:      "validation_cache_total",
		Help:      "Validation cache lookups partitioned by hit/miss.",
	}, []string{"result"})

	// SearchRequests counts meta-search requests by backend and outcome.
	SearchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mailscout",
		Name:      "search_requests_total",
		Help:      "Meta-search requests partitioned by backend and outcome.",
	}, []string{"backend", "outcome"})
)
