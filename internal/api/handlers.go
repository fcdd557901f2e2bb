// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package api

import (
	"context"
	"time"

	"github.com/tomtom215/geoimpact/internal/aggregate"
	"github.com/tomtom215/geoimpact/internal/boundary"
	"github.com/tomtom215/geoimpact/internal/mapdata"
	"github.com/tomtom215/geoimpact/internal/topology"
)

// ArticleStore is the read-only article store the handlers query.
// *database.DB satisfies it.
type ArticleStore interface {
	aggregate.ArticleSource
	Ping(ctx context.Context) error
}

// BoundaryResolver resolves location outlines. *boundary.Resolver satisfies it.
type BoundaryResolver interface {
	Resolve(ctx context.Context, name string, lat, lon float64) boundary.Boundary
}

// TopologyLoader loads the world topology. *topology.Loader satisfies it.
type TopologyLoader interface {
	Load(ctx context.Context) (*topology.Dataset, error)
}

// Handler holds the engine components behind the HTTP endpoints.
type Handler struct {
	store      ArticleStore
	aggregator *aggregate.Aggregator
	resolver   BoundaryResolver
	topology   TopologyLoader
	builder    *mapdata.Builder
	startTime  time.Time
}

// NewHandler creates a Handler. A nil aggregator or builder gets a default one.
func NewHandler(store ArticleStore, aggregator *aggregate.Aggregator, resolver BoundaryResolver, loader TopologyLoader, builder *mapdata.Builder) *Handler {
	if aggregator == nil {
		aggregator = aggregate.New(nil, aggregate.Config{})
	}
	if builder == nil {
		builder = mapdata.NewBuilder(nil)
	}
	return &Handler{
		store:      store,
		aggregator: aggregator,
		resolver:   resolver,
		topology:   loader,
		builder:    builder,
		startTime:  time.Now(),
	}
}
