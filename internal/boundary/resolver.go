// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package boundary

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/tomtom215/geoimpact/internal/logging"
	"github.com/tomtom215/geoimpact/internal/metrics"
)

// Defaults applied by New for zero Config fields.
const (
	DefaultTimeout          = 15 * time.Second
	DefaultFallbackRadiusKm = 4.0
)

// Config configures a Resolver.
type Config struct {
	// Timeout bounds one provider lookup. A shorter caller deadline wins.
	Timeout time.Duration

	// FallbackRadiusKm is the half-width of the fallback rectangle.
	FallbackRadiusKm float64

	// RequestsPerSecond limits outbound lookups. <= 0 disables the limiter.
	RequestsPerSecond float64
	Burst             int

	// Coalesce shares one in-flight lookup among concurrent callers for the
	// same key.
	Coalesce bool

	Breaker BreakerConfig
}

// DefaultConfig follows the public Nominatim usage policy.
func DefaultConfig() Config {
	return Config{
		Timeout:           DefaultTimeout,
		FallbackRadiusKm:  DefaultFallbackRadiusKm,
		RequestsPerSecond: 1,
		Burst:             1,
		Coalesce:          true,
		Breaker:           DefaultBreakerConfig(),
	}
}

// Resolver turns (name, lat, lon) into a Boundary. It is safe for
// concurrent use.
type Resolver struct {
	provider *breakerProvider
	cache    *Cache
	limiter  *rate.Limiter
	group    singleflight.Group
	cfg      Config
	now      func() time.Time
}

// New creates a Resolver. A nil cache gets a fresh unbounded one.
func New(provider Provider, c *Cache, cfg Config) *Resolver {
	if c == nil {
		c = NewCache(0)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.FallbackRadiusKm <= 0 {
		cfg.FallbackRadiusKm = DefaultFallbackRadiusKm
	}
	if cfg.Breaker == (BreakerConfig{}) {
		cfg.Breaker = DefaultBreakerConfig()
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		if cfg.Burst < 1 {
			cfg.Burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}

	return &Resolver{
		provider: newBreakerProvider(provider, cfg.Breaker),
		cache:    c,
		limiter:  limiter,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Cache returns the resolver's cache.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// BreakerState returns the provider circuit breaker state.
func (r *Resolver) BreakerState() string {
	return r.provider.State()
}

// Resolve returns the boundary for name around (lat, lon). It never fails:
// any provider error yields the fallback rectangle, which is not cached.
func (r *Resolver) Resolve(ctx context.Context, name string, lat, lon float64) Boundary {
	key := Key{Name: name, Lat: lat, Lon: lon}

	if b, ok := r.cache.Get(key); ok {
		return b
	}

	if !r.cfg.Coalesce {
		return r.fetch(ctx, key)
	}

	// The shared lookup outlives any single caller; each caller waits only
	// as long as its own deadline allows.
	ch := r.group.DoChan(key.String(), func() (interface{}, error) {
		return r.fetch(context.WithoutCancel(ctx), key), nil
	})
	select {
	case res := <-ch:
		if res.Shared {
			metrics.BoundaryCoalesced.Inc()
		}
		return res.Val.(Boundary)
	case <-ctx.Done():
		logging.Ctx(ctx).Warn().
			Err(ctx.Err()).
			Str("name", key.Name).
			Msg("Boundary lookup outlasted caller deadline, using fallback rectangle")
		metrics.BoundaryFallbacks.Inc()
		return Fallback(key.Name, key.Lat, key.Lon, r.cfg.FallbackRadiusKm, r.now())
	}
}

func (r *Resolver) fetch(ctx context.Context, key Key) Boundary {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	start := time.Now()
	b, err := r.lookup(ctx, key.Name)
	result := fetchResult(err)
	metrics.RecordBoundaryFetch(result, time.Since(start))

	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("name", key.Name).
			Float64("lat", key.Lat).
			Float64("lon", key.Lon).
			Str("result", result).
			Msg("Boundary lookup failed, using fallback rectangle")
		metrics.BoundaryFallbacks.Inc()
		return Fallback(key.Name, key.Lat, key.Lon, r.cfg.FallbackRadiusKm, r.now())
	}

	b.Name = key.Name
	b.Fallback = false
	b.Source = r.provider.Name()
	b.FetchedAt = r.now()
	r.cache.Put(key, b)
	return b
}

func (r *Resolver) lookup(ctx context.Context, name string) (Boundary, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return Boundary{}, fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
	}
	return r.provider.Lookup(ctx, name)
}

// fetchResult maps a lookup error to the boundary_fetch_total result label.
func fetchResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
