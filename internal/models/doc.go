// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

/*
Package models defines the data structures shared across Geoimpact packages.

Key Components:

  - Article: a row from the read-only article store, the input to extraction
  - APIResponse, Metadata, APIError: the standard response envelope
  - ActivityResponse: the /geo/activity payload
  - EventMapRequest: the body of POST /geo/map/event
  - BoundaryQuery, ResolveQuery: validated query parameters

Models carry JSON tags for the API and validate tags for
go-playground/validator. They hold no behavior beyond trivial helpers.
*/
package models
