// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package boundary

import (
	"strconv"

	"github.com/tomtom215/geoimpact/internal/cache"
	"github.com/tomtom215/geoimpact/internal/logging"
	"github.com/tomtom215/geoimpact/internal/metrics"
)

// Key identifies a cached boundary. Name and coordinates are compared
// exactly; no normalization is applied.
type Key struct {
	Name string
	Lat  float64
	Lon  float64
}

// String returns the cache key form "name|lat|lon".
func (k Key) String() string {
	return k.Name + "|" +
		strconv.FormatFloat(k.Lat, 'g', -1, 64) + "|" +
		strconv.FormatFloat(k.Lon, 'g', -1, 64)
}

// Cache holds successfully fetched boundaries for the process lifetime.
// It is safe for concurrent use. Create one per Resolver, or share one.
type Cache struct {
	store *cache.Store[Boundary]
}

// NewCache creates an empty cache. maxEntries <= 0 means unbounded; when
// bounded, inserts past the bound are dropped and counted.
func NewCache(maxEntries int) *Cache {
	return &Cache{store: cache.NewStore[Boundary](maxEntries)}
}

// Get returns the cached boundary for k.
func (c *Cache) Get(k Key) (Boundary, bool) {
	b, ok := c.store.Get(k.String())
	if ok {
		metrics.BoundaryCacheHits.Inc()
	} else {
		metrics.BoundaryCacheMisses.Inc()
	}
	return b, ok
}

// Put caches b under k. Fallback boundaries are refused.
func (c *Cache) Put(k Key, b Boundary) bool {
	if b.Fallback {
		return false
	}
	if !c.store.Set(k.String(), b) {
		metrics.BoundaryCacheSkipped.Inc()
		logging.Debug().Str("key", k.String()).Msg("Boundary cache full, not caching")
		return false
	}
	metrics.BoundaryCacheEntries.Set(float64(c.store.Len()))
	return true
}

// Len returns the number of cached boundaries.
func (c *Cache) Len() int {
	return c.store.Len()
}

// Stats returns the cache counters.
func (c *Cache) Stats() cache.Stats {
	return c.store.Stats()
}
