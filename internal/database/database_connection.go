// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package database

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/tomtom215/geoimpact/internal/config"
)

// connectionString builds the DuckDB DSN with tuning options.
// Auto-install and auto-load of extensions stay off: the article store uses
// none, and they hang in restricted network environments.
func connectionString(cfg *config.DatabaseConfig) string {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	preserveOrder := "true"
	if !cfg.PreserveInsertionOrder {
		preserveOrder = "false"
	}

	accessMode := "read_write"
	if cfg.ReadOnly {
		accessMode = "read_only"
	}

	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}

	return fmt.Sprintf("%s?access_mode=%s&threads=%d&max_memory=%s&preserve_insertion_order=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, accessMode, numThreads, maxMemory, preserveOrder)
}

// configureConnectionPool sets connection pool parameters:
//   - max_open: NumCPU() for parallelism
//   - max_idle: 2 for connection reuse
//   - max_lifetime: 1h to prevent stale connections
//   - max_idle_time: 5m for idle connection cleanup
func (db *DB) configureConnectionPool() error {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
	return nil
}

// isConnectionError checks if an error indicates database connection loss
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := err.Error()
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"bad connection",
		"database is closed",
	} {
		if strings.Contains(errMsg, marker) {
			return true
		}
	}
	return false
}
