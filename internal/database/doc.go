// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

// Package database is the DuckDB-backed article store the activity
// aggregation reads from.
//
// # Overview
//
// The engine never edits articles. It reads the recent window through
// ArticlesSince, which satisfies aggregate.ArticleSource. InsertArticles and
// SeedMockData exist for development and tests; in production the table is
// usually filled by a separate ingestion process and the store is opened
// with DUCKDB_READ_ONLY=true.
//
// # Files
//
//   - database.go: lifecycle (New, Ping, Close)
//   - database_schema.go: articles table and indexes
//   - database_connection.go: connection string and pool settings
//   - database_utils.go: context defaults and checkpointing
//   - articles.go: reads and writes of articles
//   - seed.go: demo headlines
//
// # Thread Safety
//
// DB is safe for concurrent use; database/sql pools the connections.
package database
