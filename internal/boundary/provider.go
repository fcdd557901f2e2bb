// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package boundary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Provider looks up a location outline by free-text name.
type Provider interface {
	// Lookup returns the boundary for name, or an error wrapping
	// ErrNotFound when the service has no polygon for it.
	Lookup(ctx context.Context, name string) (Boundary, error)

	// Name returns the provider name for logging and Boundary.Source.
	Name() string
}

// DefaultNominatimURL is the public OpenStreetMap Nominatim instance.
const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

// maxResponseBytes caps a search response. Country polygons run to a few MB.
const maxResponseBytes = 32 << 20

// NominatimProvider implements Provider against a Nominatim-compatible
// /search endpoint. The public instance requires an identifying User-Agent
// and allows one request per second.
type NominatimProvider struct {
	client    *http.Client
	baseURL   string
	userAgent string
	email     string
}

// nominatimPlace is one element of a jsonv2 search response.
type nominatimPlace struct {
	DisplayName string    `json:"display_name"`
	BoundingBox []string  `json:"boundingbox"`
	GeoJSON     *Geometry `json:"geojson"`
}

// NewNominatimProvider creates a provider. An empty baseURL selects the
// public instance.
func NewNominatimProvider(baseURL, userAgent, email string) *NominatimProvider {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	return &NominatimProvider{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		email:     email,
	}
}

// Name returns the provider name.
func (p *NominatimProvider) Name() string {
	return "nominatim"
}

// Lookup queries /search for the best polygon match of name.
func (p *NominatimProvider) Lookup(ctx context.Context, name string) (Boundary, error) {
	if strings.TrimSpace(name) == "" {
		return Boundary{}, fmt.Errorf("%w: empty name", ErrNotFound)
	}

	places, err := p.search(ctx, name)
	if err != nil {
		return Boundary{}, err
	}
	if len(places) == 0 {
		return Boundary{}, fmt.Errorf("%w: no results for %q", ErrNotFound, name)
	}

	return convertPlace(name, &places[0])
}

func (p *NominatimProvider) searchURL(name string) string {
	q := url.Values{}
	q.Set("q", name)
	q.Set("format", "jsonv2")
	q.Set("polygon_geojson", "1")
	q.Set("limit", "1")
	if p.email != "" {
		q.Set("email", p.email)
	}
	return p.baseURL + "/search?" + q.Encode()
}

func (p *NominatimProvider) search(ctx context.Context, name string) ([]nominatimPlace, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.searchURL(name), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query nominatim: %w", err)
	}
	defer resp.Body.Close()

	if err := checkNominatimResponse(resp); err != nil {
		return nil, err
	}

	var places []nominatimPlace
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}
	return places, nil
}

func checkNominatimResponse(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: nominatim returned status %d", ErrRateLimited, resp.StatusCode)
	default:
		return fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}
}

func convertPlace(name string, place *nominatimPlace) (Boundary, error) {
	if place.GeoJSON == nil || !place.GeoJSON.IsArea() {
		return Boundary{}, fmt.Errorf("%w: no polygon for %q", ErrNotFound, name)
	}

	bbox, err := parseBoundingBox(place.BoundingBox)
	if err != nil {
		return Boundary{}, err
	}

	return Boundary{
		Name:        name,
		Geometry:    *place.GeoJSON,
		BoundingBox: bbox,
	}, nil
}

// parseBoundingBox reads Nominatim's ["south", "north", "west", "east"].
func parseBoundingBox(raw []string) (BoundingBox, error) {
	var bbox BoundingBox
	if len(raw) != 4 {
		return bbox, fmt.Errorf("malformed bounding box: %d values", len(raw))
	}
	for i, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return bbox, fmt.Errorf("malformed bounding box value %q: %w", s, err)
		}
		bbox[i] = v
	}
	return bbox, nil
}
