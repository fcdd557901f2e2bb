// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

/*
Package services provides suture.Service adapters for the engine.

Each adapter implements

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so suture can name it in its events.

# Available Services

HTTPServerService:
  - Wraps *http.Server (ListenAndServe / Shutdown)
  - Drains in-flight requests on cancellation
  - A listener failure is returned for restart

PeriodicService:
  - Runs a Task on a ticker (DuckDB checkpoint, uptime gauge)
  - Logs single failures, returns after three in a row

# Example

	tree.AddStoreService(services.NewPeriodicService("duckdb-checkpoint", cfg.Database.CheckpointInterval, db.Checkpoint))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
*/
package services
