// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

// Package aggregate counts country mentions over a time window of articles.
//
// Each article contributes at most one mention per country, however many
// times the country appears in its text. Articles are split into chunks and
// scanned by a bounded errgroup; every worker fills its own map and the maps
// are merged once all workers finish, so no lock is taken on the hot path.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/geoimpact/internal/extract"
	"github.com/tomtom215/geoimpact/internal/gazetteer"
	"github.com/tomtom215/geoimpact/internal/logging"
	"github.com/tomtom215/geoimpact/internal/metrics"
	"github.com/tomtom215/geoimpact/internal/models"
)

// Window bounds, in hours.
const (
	MinHours     = 1
	MaxHours     = 24
	DefaultHours = 24
)

// minChunk keeps tiny batches on a single goroutine.
const minChunk = 64

// ClampHours forces h into [MinHours, MaxHours].
func ClampHours(h int) int {
	switch {
	case h < MinHours:
		return MinHours
	case h > MaxHours:
		return MaxHours
	default:
		return h
	}
}

// ClampWindow forces d into [MinHours, MaxHours] hours.
func ClampWindow(d time.Duration) time.Duration {
	switch {
	case d < MinHours*time.Hour:
		return MinHours * time.Hour
	case d > MaxHours*time.Hour:
		return MaxHours * time.Hour
	default:
		return d
	}
}

// ParseHours reads a raw query value. Empty or non-numeric input gives
// DefaultHours; numeric input is clamped, never rejected.
func ParseHours(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultHours
	}
	h, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(raw, "-") {
			return MinHours
		}
		return MaxHours
	}
	if err != nil {
		return DefaultHours
	}
	return ClampHours(h)
}

// Result is the outcome of one aggregation.
type Result struct {
	// Counts maps title-cased country display names to the number of
	// distinct articles mentioning them.
	Counts map[string]int

	// RegionCounts maps region names to the number of distinct articles
	// naming the region itself. Member countries do not count toward it.
	RegionCounts map[string]int

	// TotalArticles is the number of articles inside the window.
	TotalArticles int

	Since time.Time
}

// ArticleSource is the read-only article store.
type ArticleSource interface {
	ArticlesSince(ctx context.Context, since time.Time) ([]models.Article, error)
}

// Config tunes an Aggregator.
type Config struct {
	// Workers caps concurrent scanning goroutines. 0 means GOMAXPROCS.
	Workers int
}

// Aggregator applies the extractor across article batches.
type Aggregator struct {
	extractor *extract.Extractor
	workers   int
	now       func() time.Time
}

// New creates an Aggregator. A nil extractor uses extract.Default().
func New(extractor *extract.Extractor, cfg Config) *Aggregator {
	if extractor == nil {
		extractor = extract.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Aggregator{
		extractor: extractor,
		workers:   workers,
		now:       time.Now,
	}
}

// Aggregate counts mentions in the articles created within window of now.
// window is clamped to [MinHours, MaxHours] hours first.
// Malformed or empty text contributes nothing. The only error is ctx
// cancellation.
func (a *Aggregator) Aggregate(ctx context.Context, articles []models.Article, window time.Duration) (Result, error) {
	start := time.Now()
	since := a.now().Add(-ClampWindow(window))

	inWindow := make([]*models.Article, 0, len(articles))
	for i := range articles {
		if !articles[i].CreatedAt.Before(since) {
			inWindow = append(inWindow, &articles[i])
		}
	}

	found, err := a.count(ctx, inWindow)
	if err != nil {
		return Result{}, err
	}

	display := make(map[string]int, len(found.countries))
	mentions := 0
	for name, n := range found.countries {
		display[gazetteer.DisplayName(name)] += n
		mentions += n
	}

	metrics.RecordAggregation(time.Since(start), len(inWindow), mentions)

	return Result{
		Counts:        display,
		RegionCounts:  found.regions,
		TotalArticles: len(inWindow),
		Since:         since,
	}, nil
}

type tally struct {
	countries map[string]int
	regions   map[string]int
}

func newTally() tally {
	return tally{countries: make(map[string]int), regions: make(map[string]int)}
}

func (a *Aggregator) count(ctx context.Context, articles []*models.Article) (tally, error) {
	chunks := split(articles, a.workers)
	partials := make([]tally, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, chunk := range chunks {
		g.Go(func() error {
			local := newTally()
			for _, art := range chunk {
				if err := gctx.Err(); err != nil {
					return err
				}
				text := art.Text()
				for name := range a.extractor.Extract(text) {
					local.countries[name]++
				}
				for _, region := range a.extractor.ExtractRegions(text) {
					local.regions[region]++
				}
			}
			partials[i] = local
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return tally{}, fmt.Errorf("aggregate mentions: %w", err)
	}

	merged := newTally()
	for _, p := range partials {
		for name, n := range p.countries {
			merged.countries[name] += n
		}
		for name, n := range p.regions {
			merged.regions[name] += n
		}
	}
	return merged, nil
}

// split divides items into at most n contiguous chunks of at least minChunk.
func split[T any](items []T, n int) [][]T {
	if len(items) == 0 {
		return nil
	}
	size := (len(items) + n - 1) / n
	if size < minChunk {
		size = minChunk
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// Activity loads the last hours of articles from source and aggregates them.
// hours is clamped first.
func (a *Aggregator) Activity(ctx context.Context, source ArticleSource, hours int) (Result, error) {
	hours = ClampHours(hours)
	window := time.Duration(hours) * time.Hour

	articles, err := source.ArticlesSince(ctx, a.now().Add(-window))
	if err != nil {
		return Result{}, fmt.Errorf("load articles for %dh window: %w", hours, err)
	}

	result, err := a.Aggregate(ctx, articles, window)
	if err != nil {
		return Result{}, err
	}

	logging.Ctx(ctx).Debug().
		Int("hours", hours).
		Int("articles", result.TotalArticles).
		Int("countries", len(result.Counts)).
		Int("regions", len(result.RegionCounts)).
		Msg("Activity aggregated")

	return result, nil
}
