// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

/*
Package config provides centralized configuration management for Geoimpact.

Configuration is layered with Koanf v2, each layer overriding the previous:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, or the first of DefaultConfigPaths
 3. Environment variables

Only environment variables listed in the envMappings table are read, so
unrelated variables in the process environment never leak into the
configuration.

# Configuration Structure

  - ServerConfig: HTTP listener (HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT)
  - LoggingConfig: zerolog level, format and caller annotation
  - DatabaseConfig: DuckDB article store
  - BoundaryConfig: Nominatim provider, boundary cache and circuit breaker
  - TopologyConfig: world topology source and excluded countries
  - AggregateConfig: mention counting worker pool
  - SecurityConfig: rate limiting, CORS and trusted proxies

# Environment Variables

Boundary resolution:
  - BOUNDARY_PROVIDER_URL: Nominatim base URL (default: https://nominatim.openstreetmap.org)
  - BOUNDARY_USER_AGENT: User-Agent sent to the provider (required by the OSM usage policy)
  - BOUNDARY_EMAIL: Optional contact address appended to provider requests
  - BOUNDARY_TIMEOUT: Per-lookup deadline (default: 15s)
  - BOUNDARY_FALLBACK_RADIUS_KM: Half-width of the fallback rectangle (default: 4)
  - BOUNDARY_REQUESTS_PER_SECOND: Outbound request budget, 0 disables (default: 1)
  - BOUNDARY_CACHE_MAX_ENTRIES: Cache bound, 0 means unbounded (default: 0)

World topology:
  - TOPOLOGY_SOURCE: URL or file path of a TopoJSON document
  - TOPOLOGY_EXCLUDED_IDS: Comma-separated extra countries to drop from the world view

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	resolver := boundary.New(provider, nil, cfg.Boundary.ResolverConfig())

# Thread Safety

Config values are read-only after Load returns and may be shared freely.
*/
package config
