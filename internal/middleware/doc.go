// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

/*
Package middleware provides HTTP middleware components for the geo API.

All middleware has the chi signature func(http.Handler) http.Handler and is
mounted by the router in internal/api.

Key Components:

  - RequestID: request and correlation ids for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - Compression: gzip for clients that send Accept-Encoding: gzip

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

PrometheusMetrics labels requests by chi route pattern, so it must run inside
a chi router for the endpoint label to be meaningful. Requests that match no
route are labelled "unmatched".

Thread Safety:

All middleware is safe for concurrent use. Gzip writers come from a sync.Pool
and are never shared between requests.
*/
package middleware
