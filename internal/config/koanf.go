// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/geoimpact/internal/boundary"
	"github.com/tomtom215/geoimpact/internal/topology"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/geoimpact/config.yaml",
	"/etc/geoimpact/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultUserAgent identifies the engine to the geocoding provider.
const DefaultUserAgent = "geoimpact/1.0 (+https://github.com/tomtom215/geoimpact)"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	breaker := boundary.DefaultBreakerConfig()
	return &Config{
		Server: ServerConfig{
			Port:        3857,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Database: DatabaseConfig{
			Path:                   "/data/geoimpact.duckdb",
			MaxMemory:              "1GB",
			Threads:                0,
			PreserveInsertionOrder: true,
			ReadOnly:               false,
			SeedMockData:           false,
			CheckpointInterval:     5 * time.Minute,
		},
		Boundary: BoundaryConfig{
			ProviderURL:         boundary.DefaultNominatimURL,
			UserAgent:           DefaultUserAgent,
			Email:               "",
			Timeout:             boundary.DefaultTimeout,
			FallbackRadiusKm:    boundary.DefaultFallbackRadiusKm,
			RequestsPerSecond:   1, // OSM usage policy: at most one request per second
			Burst:               1,
			Coalesce:            true,
			CacheMaxEntries:     0,
			BreakerMaxRequests:  breaker.MaxRequests,
			BreakerInterval:     breaker.Interval,
			BreakerTimeout:      breaker.Timeout,
			BreakerMinRequests:  breaker.MinRequests,
			BreakerFailureRatio: breaker.FailureRatio,
		},
		Topology: TopologyConfig{
			Source:      topology.DefaultSource,
			Object:      topology.DefaultObject,
			Timeout:     topology.DefaultTimeout,
			MaxBytes:    topology.DefaultMaxBytes,
			ExcludedIDs: []string{},
		},
		Aggregate: AggregateConfig{
			Workers: 0,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			TrustedProxies:    []string{},
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// BOUNDARY_TIMEOUT -> boundary.timeout
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
	"topology.excluded_ids",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Database mappings
	"duckdb_path":                     "database.path",
	"duckdb_max_memory":               "database.max_memory",
	"duckdb_threads":                  "database.threads",
	"duckdb_preserve_insertion_order": "database.preserve_insertion_order",
	"duckdb_read_only":                "database.read_only",
	"seed_mock_data":                  "database.seed_mock_data",
	"duckdb_checkpoint_interval":      "database.checkpoint_interval",

	// Boundary mappings
	"boundary_provider_url":          "boundary.provider_url",
	"boundary_user_agent":            "boundary.user_agent",
	"boundary_email":                 "boundary.email",
	"boundary_timeout":               "boundary.timeout",
	"boundary_fallback_radius_km":    "boundary.fallback_radius_km",
	"boundary_requests_per_second":   "boundary.requests_per_second",
	"boundary_burst":                 "boundary.burst",
	"boundary_coalesce":              "boundary.coalesce",
	"boundary_cache_max_entries":     "boundary.cache_max_entries",
	"boundary_breaker_max_requests":  "boundary.breaker_max_requests",
	"boundary_breaker_interval":      "boundary.breaker_interval",
	"boundary_breaker_timeout":       "boundary.breaker_timeout",
	"boundary_breaker_min_requests":  "boundary.breaker_min_requests",
	"boundary_breaker_failure_ratio": "boundary.breaker_failure_ratio",

	// Topology mappings
	"topology_source":       "topology.source",
	"topology_object":       "topology.object",
	"topology_timeout":      "topology.timeout",
	"topology_max_bytes":    "topology.max_bytes",
	"topology_excluded_ids": "topology.excluded_ids",

	// Aggregate mappings
	"aggregate_workers": "aggregate.workers",

	// Security mappings
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"trusted_proxies":     "security.trusted_proxies",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DUCKDB_PATH -> database.path
//   - BOUNDARY_USER_AGENT -> boundary.user_agent
//   - DISABLE_RATE_LIMIT -> security.rate_limit_disabled
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	return ""
}
