// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/geoimpact/docs" // Import generated swagger docs
	"github.com/tomtom215/geoimpact/internal/aggregate"
	"github.com/tomtom215/geoimpact/internal/api"
	"github.com/tomtom215/geoimpact/internal/boundary"
	"github.com/tomtom215/geoimpact/internal/config"
	"github.com/tomtom215/geoimpact/internal/database"
	"github.com/tomtom215/geoimpact/internal/logging"
	"github.com/tomtom215/geoimpact/internal/mapdata"
	"github.com/tomtom215/geoimpact/internal/metrics"
	"github.com/tomtom215/geoimpact/internal/supervisor"
	"github.com/tomtom215/geoimpact/internal/supervisor/services"
	"github.com/tomtom215/geoimpact/internal/topology"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	shutdownTimeout = 10 * time.Second
	uptimeInterval  = 15 * time.Second
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.LoggerConfig())

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Bool("db_read_only", cfg.Database.ReadOnly).
		Str("topology_source", cfg.Topology.Source).
		Str("boundary_provider", cfg.Boundary.ProviderURL).
		Msg("Starting Geoimpact")

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	logging.Info().Str("path", db.Path()).Msg("Article store opened")
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedMockData {
		logging.Info().Msg("Mock data seeding enabled (SEED_MOCK_DATA=true)")
		if err := db.SeedMockData(context.Background()); err != nil {
			// Close before the fatal exit; deferred calls do not run.
			if closeErr := db.Close(); closeErr != nil {
				logging.Error().Err(closeErr).Msg("Error closing database")
			}
			logging.Fatal().Err(err).Msg("Failed to seed mock data")
		}
	}

	handler := newHandler(cfg, db)
	chiMw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security))
	router := api.NewRouter(handler, chiMw)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	addStoreServices(tree, cfg, db)
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newHandler wires the engine components behind the HTTP handlers.
func newHandler(cfg *config.Config, db *database.DB) *api.Handler {
	provider := boundary.NewNominatimProvider(cfg.Boundary.ProviderURL, cfg.Boundary.UserAgent, cfg.Boundary.Email)
	resolver := boundary.New(provider, boundary.NewCache(cfg.Boundary.CacheMaxEntries), cfg.Boundary.ResolverConfig())

	loader := topology.NewLoader(cfg.Topology.LoaderConfig())
	builder := mapdata.NewBuilder(cfg.Topology.ExcludedIDs)
	aggregator := aggregate.New(nil, cfg.Aggregate.AggregatorConfig())

	logging.Info().
		Str("provider", provider.Name()).
		Float64("requests_per_second", cfg.Boundary.RequestsPerSecond).
		Bool("coalesce", cfg.Boundary.Coalesce).
		Int("cache_max_entries", cfg.Boundary.CacheMaxEntries).
		Msg("Boundary resolver configured")
	logging.Info().Str("source", loader.Source()).Msg("World topology loader configured")

	return api.NewHandler(db, aggregator, resolver, loader, builder)
}

// addStoreServices registers the periodic store maintenance.
func addStoreServices(tree *supervisor.SupervisorTree, cfg *config.Config, db *database.DB) {
	start := time.Now()
	tree.AddStoreService(services.NewPeriodicService("uptime", uptimeInterval, func(context.Context) error {
		metrics.AppUptime.Set(time.Since(start).Seconds())
		return nil
	}))

	switch {
	case cfg.Database.ReadOnly:
		logging.Info().Msg("Periodic checkpoints disabled (read-only store)")
	case cfg.Database.CheckpointInterval == 0:
		logging.Info().Msg("Periodic checkpoints disabled (DUCKDB_CHECKPOINT_INTERVAL=0)")
	default:
		tree.AddStoreService(services.NewPeriodicService("duckdb-checkpoint", cfg.Database.CheckpointInterval, db.Checkpoint))
		logging.Info().Dur("interval", cfg.Database.CheckpointInterval).Msg("Periodic checkpoints enabled")
	}
}
