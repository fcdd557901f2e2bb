// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package config

import (
	"time"

	"github.com/tomtom215/geoimpact/internal/aggregate"
	"github.com/tomtom215/geoimpact/internal/boundary"
	"github.com/tomtom215/geoimpact/internal/logging"
	"github.com/tomtom215/geoimpact/internal/topology"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Database  DatabaseConfig  `koanf:"database"`
	Boundary  BoundaryConfig  `koanf:"boundary"`
	Topology  TopologyConfig  `koanf:"topology"`
	Aggregate AggregateConfig `koanf:"aggregate"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`

	// Environment is "development" or "production". Production refuses
	// an empty boundary user agent.
	Environment string `koanf:"environment"`
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// LoggingConfig holds zerolog settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DatabaseConfig holds DuckDB configuration for the article store
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"` // 0 = runtime.NumCPU()
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"`

	// ReadOnly opens the store read_only and skips schema creation. Use it
	// when another process owns the article table.
	ReadOnly     bool `koanf:"read_only"`
	SeedMockData bool `koanf:"seed_mock_data"`

	// CheckpointInterval is how often the WAL is folded into the database
	// file. Zero disables periodic checkpoints.
	CheckpointInterval time.Duration `koanf:"checkpoint_interval"`
}

// BoundaryConfig holds boundary resolution settings: the geocoding provider,
// the resolver's limits and the provider circuit breaker.
type BoundaryConfig struct {
	ProviderURL string `koanf:"provider_url"`
	UserAgent   string `koanf:"user_agent"`
	Email       string `koanf:"email"`

	Timeout           time.Duration `koanf:"timeout"`
	FallbackRadiusKm  float64       `koanf:"fallback_radius_km"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	Coalesce          bool          `koanf:"coalesce"`
	CacheMaxEntries   int           `koanf:"cache_max_entries"` // 0 = unbounded

	BreakerMaxRequests  uint32        `koanf:"breaker_max_requests"`
	BreakerInterval     time.Duration `koanf:"breaker_interval"`
	BreakerTimeout      time.Duration `koanf:"breaker_timeout"`
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
}

// ResolverConfig converts the settings for boundary.New.
func (b BoundaryConfig) ResolverConfig() boundary.Config {
	return boundary.Config{
		Timeout:           b.Timeout,
		FallbackRadiusKm:  b.FallbackRadiusKm,
		RequestsPerSecond: b.RequestsPerSecond,
		Burst:             b.Burst,
		Coalesce:          b.Coalesce,
		Breaker: boundary.BreakerConfig{
			MaxRequests:  b.BreakerMaxRequests,
			Interval:     b.BreakerInterval,
			Timeout:      b.BreakerTimeout,
			MinRequests:  b.BreakerMinRequests,
			FailureRatio: b.BreakerFailureRatio,
		},
	}
}

// TopologyConfig holds the world topology source
type TopologyConfig struct {
	Source   string        `koanf:"source"`
	Object   string        `koanf:"object"`
	Timeout  time.Duration `koanf:"timeout"`
	MaxBytes int64         `koanf:"max_bytes"`

	// ExcludedIDs are dropped from the world view in addition to Antarctica
	// and Greenland. Numeric ids, ISO3 and ISO2 codes are accepted.
	ExcludedIDs []string `koanf:"excluded_ids"`
}

// LoaderConfig converts the settings for topology.NewLoader.
func (t TopologyConfig) LoaderConfig() topology.Config {
	return topology.Config{
		Source:   t.Source,
		Object:   t.Object,
		Timeout:  t.Timeout,
		MaxBytes: t.MaxBytes,
	}
}

// AggregateConfig tunes mention counting
type AggregateConfig struct {
	Workers int `koanf:"workers"` // 0 = GOMAXPROCS
}

// AggregatorConfig converts the settings for aggregate.New.
func (a AggregateConfig) AggregatorConfig() aggregate.Config {
	return aggregate.Config{Workers: a.Workers}
}

// SecurityConfig holds HTTP hardening settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggerConfig converts the settings for logging.Init.
func (l LoggingConfig) LoggerConfig() logging.Config {
	return logging.Config{
		Level:  l.Level,
		Format: l.Format,
		Caller: l.Caller,
	}
}

// Load reads configuration from defaults, an optional config file and the
// environment. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
