// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Article store queries (DuckDB)
// - API endpoint latency and throughput
// - Mention aggregation
// - Boundary resolution (cache, outbound fetches, fallbacks, circuit breaker)
// - World topology loading and map rendering

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Aggregation Metrics
	AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aggregation_duration_seconds",
			Help:    "Time spent extracting and counting country mentions for one window",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	AggregationArticles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aggregation_articles_scanned_total",
			Help: "Total number of articles scanned for country mentions",
		},
	)

	AggregationMentions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aggregation_country_mentions_total",
			Help: "Total number of (article, country) mentions counted",
		},
	)

	// Boundary Resolver Metrics
	BoundaryCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boundary_cache_hits_total",
			Help: "Total number of boundary cache hits",
		},
	)

	BoundaryCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boundary_cache_misses_total",
			Help: "Total number of boundary cache misses",
		},
	)

	BoundaryCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "boundary_cache_entries",
			Help: "Current number of cached boundaries",
		},
	)

	BoundaryCacheSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boundary_cache_skipped_total",
			Help: "Boundaries not cached because the cache reached its entry bound",
		},
	)

	BoundaryFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "boundary_fetch_duration_seconds",
			Help:    "Duration of outbound boundary service requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 25},
		},
	)

	BoundaryFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boundary_fetch_total",
			Help: "Outbound boundary fetches by result",
		},
		[]string{"result"}, // success, not_found, error, timeout, rate_limited, circuit_open
	)

	BoundaryFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boundary_fallbacks_total",
			Help: "Total number of synthesized fallback rectangles",
		},
	)

	BoundaryCoalesced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boundary_coalesced_total",
			Help: "Resolutions that shared an in-flight fetch for the same key",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Topology and Map Metrics
	TopologyLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "topology_load_duration_seconds",
			Help:    "Time to load and decode the world topology dataset",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	TopologyLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "topology_load_errors_total",
			Help: "Total number of failed world topology loads",
		},
	)

	MapRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "map_renders_total",
			Help: "Render payloads built, by mode and result",
		},
		[]string{"mode", "result"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordAggregation records one aggregation pass.
func RecordAggregation(duration time.Duration, articles, mentions int) {
	AggregationDuration.Observe(duration.Seconds())
	AggregationArticles.Add(float64(articles))
	AggregationMentions.Add(float64(mentions))
}

// RecordBoundaryFetch records an outbound boundary request and its result label.
func RecordBoundaryFetch(result string, duration time.Duration) {
	BoundaryFetchTotal.WithLabelValues(result).Inc()
	if duration > 0 {
		BoundaryFetchDuration.Observe(duration.Seconds())
	}
}

// RecordTopologyLoad records a topology load attempt.
func RecordTopologyLoad(duration time.Duration, err error) {
	TopologyLoadDuration.Observe(duration.Seconds())
	if err != nil {
		TopologyLoadErrors.Inc()
	}
}

// RecordMapRender records a render payload build.
func RecordMapRender(mode string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	MapRendersTotal.WithLabelValues(mode, result).Inc()
}
