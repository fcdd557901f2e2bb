// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package config

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateBoundary(); err != nil {
		return err
	}

	if err := c.validateTopology(); err != nil {
		return err
	}

	if c.Aggregate.Workers < 0 {
		return fmt.Errorf("AGGREGATE_WORKERS must be >= 0, got %d", c.Aggregate.Workers)
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0, got %d", c.Database.Threads)
	}
	if c.Database.ReadOnly && c.Database.SeedMockData {
		return fmt.Errorf("SEED_MOCK_DATA cannot be used with DUCKDB_READ_ONLY=true")
	}
	if c.Database.CheckpointInterval < 0 {
		return fmt.Errorf("DUCKDB_CHECKPOINT_INTERVAL must be >= 0, got %v", c.Database.CheckpointInterval)
	}
	return nil
}

const (
	minFallbackRadiusKm = 0.1
	maxFallbackRadiusKm = 500.0
)

func (c *Config) validateBoundary() error {
	b := c.Boundary
	if err := validateHTTPURL(b.ProviderURL, "BOUNDARY_PROVIDER_URL"); err != nil {
		return err
	}
	if c.Server.IsProduction() && strings.TrimSpace(b.UserAgent) == "" {
		return fmt.Errorf("BOUNDARY_USER_AGENT is required in production")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("BOUNDARY_TIMEOUT must be positive, got %v", b.Timeout)
	}
	if b.FallbackRadiusKm < minFallbackRadiusKm || b.FallbackRadiusKm > maxFallbackRadiusKm {
		return fmt.Errorf("BOUNDARY_FALLBACK_RADIUS_KM must be between %v and %v", minFallbackRadiusKm, maxFallbackRadiusKm)
	}
	if b.RequestsPerSecond < 0 {
		return fmt.Errorf("BOUNDARY_REQUESTS_PER_SECOND must be >= 0 (0 disables the limiter)")
	}
	if b.Burst < 0 {
		return fmt.Errorf("BOUNDARY_BURST must be >= 0, got %d", b.Burst)
	}
	if b.CacheMaxEntries < 0 {
		return fmt.Errorf("BOUNDARY_CACHE_MAX_ENTRIES must be >= 0 (0 means unbounded)")
	}
	if b.BreakerFailureRatio < 0 || b.BreakerFailureRatio > 1 {
		return fmt.Errorf("BOUNDARY_BREAKER_FAILURE_RATIO must be between 0 and 1")
	}
	if b.BreakerTimeout < 0 || b.BreakerInterval < 0 {
		return fmt.Errorf("BOUNDARY_BREAKER_TIMEOUT and BOUNDARY_BREAKER_INTERVAL must not be negative")
	}
	return nil
}

func (c *Config) validateTopology() error {
	t := c.Topology
	if strings.TrimSpace(t.Source) == "" {
		return fmt.Errorf("TOPOLOGY_SOURCE is required")
	}
	if isRemote(t.Source) {
		if _, err := url.Parse(t.Source); err != nil {
			return fmt.Errorf("TOPOLOGY_SOURCE failed to parse URL: %w", err)
		}
	}
	if strings.TrimSpace(t.Object) == "" {
		return fmt.Errorf("TOPOLOGY_OBJECT is required")
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("TOPOLOGY_TIMEOUT must be positive, got %v", t.Timeout)
	}
	if t.MaxBytes <= 0 {
		return fmt.Errorf("TOPOLOGY_MAX_BYTES must be positive, got %d", t.MaxBytes)
	}
	return nil
}

func isRemote(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Rate limiting bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = 1 * time.Second
	maxRateLimitWindow   = 1 * time.Hour
)

func (c *Config) validateSecurity() error {
	if err := c.validateTrustedProxies(); err != nil {
		return err
	}
	if c.Security.RateLimitDisabled {
		return c.validateCORS()
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return c.validateCORS()
}

// validateTrustedProxies requires each entry to be an IP or a CIDR.
func (c *Config) validateTrustedProxies() error {
	for _, entry := range c.Security.TrustedProxies {
		entry = strings.TrimSpace(entry)
		if _, err := netip.ParsePrefix(entry); err == nil {
			continue
		}
		if _, err := netip.ParseAddr(entry); err != nil {
			return fmt.Errorf("TRUSTED_PROXIES entry %q is neither an IP nor a CIDR", entry)
		}
	}
	return nil
}

// validateCORS rejects the wildcard origin in production.
func (c *Config) validateCORS() error {
	if !c.Server.IsProduction() {
		return nil
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must list explicit origins in production, not *")
		}
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateHTTPURL validates that a URL is properly formatted for HTTP/HTTPS services.
// Validates: scheme (http/https), host present, no query params.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}
