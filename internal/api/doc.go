// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

/*
Package api provides the HTTP surface of the geographic impact engine.

Routes are served by a chi router (see Router.Setup). Every JSON response
except /geo/activity uses the models.APIResponse envelope; /geo/activity
returns its raw object because the news frontend consumes it directly.

Endpoints:

	GET  /geo/activity?hours=N          mention counts for the last N hours (1-24, default 24)
	GET  /geo/map?hours=N               world map colored by mention frequency
	POST /geo/map/event                 world map colored by explicit involvement levels
	GET  /geo/boundary?name=&lat=&lon=  single-location map with a resolved outline
	GET  /geo/countries                 gazetteer listing
	GET  /geo/resolve?id=               canonical country for any identifier
	GET  /health/live                   liveness probe
	GET  /health/ready                  readiness probe (article store ping)
	GET  /metrics                       Prometheus metrics
	GET  /swagger/*                     Swagger UI

Error Codes:

	BAD_REQUEST       malformed parameters or body
	VALIDATION_ERROR  request failed struct validation
	NOT_FOUND         identifier could not be resolved
	DATABASE_ERROR    article store query failed
	DATA_UNAVAILABLE  world topology could not be loaded
	RATE_LIMITED      too many requests from one client
	INTERNAL_ERROR    anything else

Middleware Stack:

Global middleware runs in this order: request id, real IP, panic recovery,
CORS, security headers, Prometheus metrics. The /geo routes add IP rate
limiting (go-chi/httprate) and gzip compression.
*/
package api
