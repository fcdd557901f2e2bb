// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/geoimpact/internal/boundary"
	"github.com/tomtom215/geoimpact/internal/models"
)

// readyPingTimeout bounds the store ping of the readiness probe.
const readyPingTimeout = 2 * time.Second

// breakerStater is implemented by *boundary.Resolver.
type breakerStater interface {
	BreakerState() string
}

// cacheHolder is implemented by *boundary.Resolver.
type cacheHolder interface {
	Cache() *boundary.Cache
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Description Returns 200 OK if the process is alive, regardless of external dependencies.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the article store answers a ping. The boundary
// service is not part of readiness: its failures degrade to fallbacks.
//
// @Summary Readiness probe
// @Description Returns 200 OK when the article store is reachable, 503 otherwise. Includes the boundary circuit breaker state and cache counters for information.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
	defer cancel()

	dbConnected := h.store != nil && h.store.Ping(ctx) == nil

	data := map[string]interface{}{
		"database_connected": dbConnected,
		"ready_to_serve":     dbConnected,
		"uptime":             time.Since(h.startTime).Seconds(),
	}
	if bs, ok := h.resolver.(breakerStater); ok {
		data["boundary_breaker"] = bs.BreakerState()
	}
	if ch, ok := h.resolver.(cacheHolder); ok {
		stats := ch.Cache().Stats()
		data["boundary_cache"] = map[string]interface{}{
			"entries":  stats.Entries,
			"hits":     stats.Hits,
			"misses":   stats.Misses,
			"skipped":  stats.Skipped,
			"hit_rate": stats.HitRate(),
		}
	}

	statusCode := http.StatusOK
	status := "ready"
	if !dbConnected {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}
