// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

/*
Package metrics provides Prometheus metrics for the Geographic Impact Engine.

All collectors are registered with the default registry through promauto and
exposed at /metrics by promhttp:

	curl http://localhost:3858/metrics

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Article store:
  - duckdb_query_duration_seconds{operation, table}
  - duckdb_query_errors_total{operation, table, error_type}

Aggregation:
  - aggregation_duration_seconds
  - aggregation_articles_scanned_total
  - aggregation_country_mentions_total

Boundary resolution:
  - boundary_cache_hits_total, boundary_cache_misses_total, boundary_cache_entries
  - boundary_cache_skipped_total (entry bound reached)
  - boundary_fetch_total{result}, boundary_fetch_duration_seconds
  - boundary_fallbacks_total, boundary_coalesced_total
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name, result},
    circuit_breaker_state_transitions_total{name, from_state, to_state}

Rendering:
  - topology_load_duration_seconds, topology_load_errors_total
  - map_renders_total{mode, result}

# Usage

	start := time.Now()
	rows, err := db.QueryContext(ctx, query, since)
	metrics.RecordDBQuery("select", "articles", time.Since(start), err)

Label values must come from small fixed sets. Never use location names or
request ids as labels.
*/
package metrics
