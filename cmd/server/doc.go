// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

/*
Package main is the entry point for the Geoimpact server.

Geoimpact turns the articles of a news site into map data: which countries
were mentioned in the last hours and how often, which countries and regions
are involved in an event and how strongly, and the outline of a single place.
A frontend draws the payloads; the server never renders images.

# Application Architecture

	RootSupervisor ("geoimpact")
	├── StoreSupervisor ("store-layer")
	│   ├── uptime gauge
	│   └── DuckDB checkpoint (unless read-only)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB article store, optionally seeded with mock articles
 4. Engine: boundary resolver (Nominatim + cache + breaker), topology
    loader, map builder and mention aggregator
 5. Supervisor Tree: Suture v4 process supervision
 6. HTTP Server: Chi router with middleware stack

# Configuration

Priority: Environment variables > Config file > Defaults

	HTTP_PORT=3857
	LOG_LEVEL=info                      # trace, debug, info, warn, error
	LOG_FORMAT=json                     # json or console
	DUCKDB_PATH=/data/geoimpact.duckdb
	DUCKDB_READ_ONLY=false
	DUCKDB_CHECKPOINT_INTERVAL=5m       # 0 disables
	BOUNDARY_USER_AGENT="geoimpact/1.0 (+https://example.org)"
	BOUNDARY_REQUESTS_PER_SECOND=1
	TOPOLOGY_SOURCE=/data/countries-110m.json
	CORS_ORIGINS=https://news.example
	TRUSTED_PROXIES=10.0.0.0/8

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to 10 seconds, the supervisor reports services
that did not stop, then the database is closed.

# Usage Examples

Development with generated articles:

	export SEED_MOCK_DATA=true DUCKDB_PATH=:memory: LOG_FORMAT=console
	go run ./cmd/server

Docker:

	docker run -d \
	  -e ENVIRONMENT=production \
	  -e CORS_ORIGINS=https://news.example \
	  -v geoimpact-data:/data \
	  -p 3857:3857 \
	  ghcr.io/tomtom215/geoimpact

# Port 3857

The default port 3857 references EPSG:3857 (Web Mercator projection),
the projection the frontend draws the world map in.

# API Documentation

Swagger documentation is served at /swagger/index.html and Prometheus
metrics at /metrics.

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
*/
package main
