// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

/*
Package supervisor runs the engine's long-lived services under suture v4.

# Overview

	RootSupervisor ("geoimpact")
	├── StoreSupervisor ("store-layer")
	│   ├── PeriodicService "duckdb-checkpoint" (unless read-only or in-memory)
	│   └── PeriodicService "uptime"
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff. Supervisor events are
logged through sutureslog, bridged to zerolog by logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	if err != nil {
		return err
	}
	tree.AddStoreService(services.NewPeriodicService("duckdb-checkpoint", 5*time.Minute, db.Checkpoint))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)

# Shutdown

Cancelling the context stops every layer. Services that do not return
within ShutdownTimeout are listed by UnstoppedServiceReport.

See also:
  - internal/supervisor/services: suture.Service adapters
  - github.com/thejerf/suture/v4
*/
package supervisor
