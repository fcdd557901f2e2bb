// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/geoimpact/internal/aggregate"
	"github.com/tomtom215/geoimpact/internal/gazetteer"
	"github.com/tomtom215/geoimpact/internal/involvement"
	"github.com/tomtom215/geoimpact/internal/logging"
	"github.com/tomtom215/geoimpact/internal/mapdata"
	"github.com/tomtom215/geoimpact/internal/models"
	"github.com/tomtom215/geoimpact/internal/topology"
)

var (
	errStoreNotConfigured    = errors.New("article store not configured")
	errTopologyNotConfigured = errors.New("topology loader not configured")
)

// GeoActivity returns country mention counts for a time window.
//
// @Summary Country mention counts
// @Description Counts, per country, the articles of the last N hours that mention it. hours is clamped to 1-24; a missing or non-numeric value means 24.
// @Tags Geo
// @Produce json
// @Param hours query int false "Window in hours (1-24)" default(24)
// @Success 200 {object} models.ActivityResponse "Raw activity object (no envelope)"
// @Failure 500 {object} models.APIResponse "Article store query failed"
// @Router /geo/activity [get]
func (h *Handler) GeoActivity(w http.ResponseWriter, r *http.Request) {
	hours := aggregate.ParseHours(r.URL.Query().Get("hours"))

	result, err := h.activity(r.Context(), hours)
	if err != nil {
		respondEngineError(w, r, err, ErrCodeDatabase)
		return
	}

	writeJSON(w, http.StatusOK, models.ActivityResponse{
		Hours:         hours,
		TotalArticles: result.TotalArticles,
		CountryCounts: result.Counts,
		RegionCounts:  result.RegionCounts,
		GeneratedAt:   time.Now().UTC(),
	})
}

// GeoMap returns the world map colored by mention frequency.
//
// @Summary World map by mention frequency
// @Description Render payload for the world overview in counts mode: each country is colored on a green to red gradient by how often it was mentioned in the window.
// @Tags Geo
// @Produce json
// @Param hours query int false "Window in hours (1-24)" default(24)
// @Success 200 {object} models.APIResponse{data=mapdata.RenderPayload} "Render payload"
// @Failure 500 {object} models.APIResponse "Article store query failed"
// @Failure 503 {object} models.APIResponse "World topology unavailable"
// @Router /geo/map [get]
func (h *Handler) GeoMap(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	hours := aggregate.ParseHours(r.URL.Query().Get("hours"))

	var (
		result  aggregate.Result
		dataset *topology.Dataset
	)

	// The store query and the topology load are independent.
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		result, err = h.activity(gctx, hours)
		return err
	})
	g.Go(func() error {
		var err error
		dataset, err = h.loadTopology(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		respondEngineError(w, r, err, ErrCodeDatabase)
		return
	}

	colors := involvement.Classify(involvement.Input{Counts: result.Counts})
	payload, err := h.builder.Build(dataset, colors, nil)
	if err != nil {
		respondEngineError(w, r, err, ErrCodeInternal)
		return
	}

	respondData(w, r, payload, start)
}

// GeoEventMap returns the world map colored by explicit involvement levels.
//
// @Summary World map by involvement level
// @Description Render payload for one event. Countries listed explicitly get their level's strong color; members of listed regions get the region level's light color; everything else is uncolored.
// @Tags Geo
// @Accept json
// @Produce json
// @Param request body models.EventMapRequest true "Involvement levels by country and region"
// @Success 200 {object} models.APIResponse{data=mapdata.RenderPayload} "Render payload"
// @Failure 400 {object} models.APIResponse "Malformed body, invalid level or unknown region"
// @Failure 503 {object} models.APIResponse "World topology unavailable"
// @Router /geo/map/event [post]
func (h *Handler) GeoEventMap(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.EventMapRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}
	if len(req.Countries) == 0 && len(req.Regions) == 0 {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "At least one country or region level is required", nil)
		return
	}

	explicit, err := parseLevels(req.Countries)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	regionExplicit, err := parseLevels(req.Regions)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}

	dataset, err := h.loadTopology(r.Context())
	if err != nil {
		respondEngineError(w, r, err, ErrCodeInternal)
		return
	}

	colors := involvement.Classify(involvement.Input{
		Explicit:       explicit,
		RegionExplicit: regionExplicit,
	})
	payload, err := h.builder.Build(dataset, colors, nil)
	if err != nil {
		respondEngineError(w, r, err, ErrCodeInternal)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Int("countries", len(explicit)).
		Int("regions", len(regionExplicit)).
		Int("colored", len(colors.Entries)).
		Msg("Event map built")

	respondData(w, r, payload, start)
}

// GeoBoundary returns the single-location map for a named place.
//
// @Summary Single-location map
// @Description Resolves the outline of a named place. When the boundary service fails or finds nothing, a rectangle around the coordinates is returned with fallback=true. This endpoint never fails because of the boundary service.
// @Tags Geo
// @Produce json
// @Param name query string true "Place name"
// @Param lat query number true "Latitude of the place (-90 to 90)"
// @Param lon query number true "Longitude of the place (-180 to 180)"
// @Success 200 {object} models.APIResponse{data=mapdata.RenderPayload} "Render payload with singleLocation"
// @Failure 400 {object} models.APIResponse "Missing or invalid parameters"
// @Router /geo/boundary [get]
func (h *Handler) GeoBoundary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	lat, err := parseFloatParam(r, "lat")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	lon, err := parseFloatParam(r, "lon")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}

	q := models.BoundaryQuery{
		Name: strings.TrimSpace(r.URL.Query().Get("name")),
		Lat:  lat,
		Lon:  lon,
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	if h.resolver == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeDataUnavailable, "Boundary resolution is not configured", nil)
		return
	}

	// A coalesced lookup is shared with other callers; don't let this
	// client's disconnect cancel it.
	ctx, cancel := detach(r.Context())
	defer cancel()

	b := h.resolver.Resolve(ctx, q.Name, q.Lat, q.Lon)

	payload, err := h.builder.Build(nil, involvement.ColorMap{}, &mapdata.Location{
		Lat:      q.Lat,
		Lon:      q.Lon,
		Boundary: b,
	})
	if err != nil {
		respondEngineError(w, r, err, ErrCodeInternal)
		return
	}

	respondData(w, r, payload, start)
}

// GeoCountries lists the gazetteer.
//
// @Summary Gazetteer listing
// @Description Every canonical country with its ISO codes and region, every region with its members, and all aliases.
// @Tags Geo
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CountriesResponse} "Gazetteer"
// @Router /geo/countries [get]
func (h *Handler) GeoCountries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondData(w, r, models.CountriesResponse{
		Countries:     gazetteer.Countries(),
		Regions:       gazetteer.Regions(),
		Aliases:       gazetteer.Aliases(),
		RegionAliases: gazetteer.RegionAliases(),
	}, start)
}

// GeoResolve resolves any identifier to a canonical country or region.
//
// @Summary Resolve an identifier
// @Description Resolves a country name, alias, ISO2, ISO3 or numeric code, or a region name, to its canonical form.
// @Tags Geo
// @Produce json
// @Param id query string true "Identifier, e.g. UKR, 804, Ivory Coast, Baltic States"
// @Success 200 {object} models.APIResponse{data=models.ResolveResponse} "Resolved identifier"
// @Failure 400 {object} models.APIResponse "Missing id"
// @Failure 404 {object} models.APIResponse "Unknown identifier"
// @Router /geo/resolve [get]
func (h *Handler) GeoResolve(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := models.ResolveQuery{ID: strings.TrimSpace(r.URL.Query().Get("id"))}
	if apiErr := validateRequest(&q); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	if c, ok := gazetteer.Resolve(q.ID); ok {
		respondData(w, r, models.ResolveResponse{
			Query:       q.ID,
			Kind:        "country",
			DisplayName: c.Name,
			Country:     c,
			MemberOf:    gazetteer.RegionsOf(c.ISO3),
		}, start)
		return
	}

	if region, ok := gazetteer.GetRegion(q.ID); ok {
		respondData(w, r, models.ResolveResponse{
			Query:       q.ID,
			Kind:        "region",
			DisplayName: region.Name,
			Region:      region,
		}, start)
		return
	}

	respondError(w, http.StatusNotFound, ErrCodeNotFound, "No country or region matches "+sanitizeLogValue(q.ID), nil)
}

func (h *Handler) activity(ctx context.Context, hours int) (aggregate.Result, error) {
	if h.store == nil {
		return aggregate.Result{}, errStoreNotConfigured
	}
	result, err := h.aggregator.Activity(ctx, h.store, hours)
	if err != nil {
		return aggregate.Result{}, err
	}
	if result.Counts == nil {
		result.Counts = map[string]int{}
	}
	return result, nil
}

func (h *Handler) loadTopology(ctx context.Context) (*topology.Dataset, error) {
	if h.topology == nil {
		return nil, errors.Join(topology.ErrUnavailable, errTopologyNotConfigured)
	}
	return h.topology.Load(ctx)
}

// parseLevels converts level names to involvement levels. Keys are passed
// through untouched; the classifier resolves and skips unknown ones.
func parseLevels(in map[string]string) (map[string]involvement.Level, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[string]involvement.Level, len(in))
	for key, raw := range in {
		level, err := involvement.ParseLevel(raw)
		if err != nil {
			return nil, err
		}
		out[key] = level
	}
	return out, nil
}
