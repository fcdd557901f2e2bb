// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/geoimpact/internal/logging"
	"github.com/tomtom215/geoimpact/internal/metrics"
	"github.com/tomtom215/geoimpact/internal/models"
)

const selectArticlesSince = `
	SELECT id, title, COALESCE(alt_title, ''), COALESCE(description, ''),
	       COALESCE(category, ''), created_at
	FROM articles
	WHERE created_at >= ?
	ORDER BY created_at DESC, id`

// ArticlesSince returns the articles created at or after since, newest first.
func (db *DB) ArticlesSince(ctx context.Context, since time.Time) (articles []models.Article, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("select", "articles", time.Since(start), err)
		if err != nil && isConnectionError(err) {
			logging.Ctx(ctx).Error().Err(err).Msg("Article store connection lost")
		}
	}()

	rows, err := db.conn.QueryContext(ctx, selectArticlesSince, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer closeWithLog(rows, logging.Ctx(ctx), "article rows")

	articles = make([]models.Article, 0, 64)
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.AltTitle, &a.Description, &a.Category, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return articles, nil
}

// InsertArticles stores articles, skipping ids that already exist. It returns
// the number of rows written.
func (db *DB) InsertArticles(ctx context.Context, articles []models.Article) (inserted int, err error) {
	if len(articles) == 0 {
		return 0, nil
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("insert", "articles", time.Since(start), err)
	}()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO articles (id, title, alt_title, description, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeWithLog(stmt, logging.Ctx(ctx), "insert statement")

	for i := range articles {
		a := &articles[i]
		if strings.TrimSpace(a.ID) == "" {
			return 0, fmt.Errorf("article %d has no id", i)
		}
		res, err := stmt.ExecContext(ctx, a.ID, a.Title, nullString(a.AltTitle), nullString(a.Description),
			nullString(a.Category), a.CreatedAt.UTC())
		if err != nil {
			return 0, fmt.Errorf("failed to insert article %s: %w", a.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit articles: %w", err)
	}
	return inserted, nil
}

// CountArticles returns the number of stored articles.
func (db *DB) CountArticles(ctx context.Context) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var n int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return n, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
