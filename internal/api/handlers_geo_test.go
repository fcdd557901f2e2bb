// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/geoimpact/internal/boundary"
	"github.com/tomtom215/geoimpact/internal/involvement"
	"github.com/tomtom215/geoimpact/internal/mapdata"
	"github.com/tomtom215/geoimpact/internal/models"
	"github.com/tomtom215/geoimpact/internal/topology"
)

func decodeActivity(t *testing.T, body []byte) models.ActivityResponse {
	t.Helper()
	var resp models.ActivityResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode activity: %v\nbody: %s", err, body)
	}
	return resp
}

func decodePayload(t *testing.T, env envelope) mapdata.RenderPayload {
	t.Helper()
	var p mapdata.RenderPayload
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatalf("decode payload: %v\ndata: %s", err, env.Data)
	}
	return p
}

func fillByID(p mapdata.RenderPayload) map[string]string {
	out := make(map[string]string, len(p.Features))
	for _, f := range p.Features {
		out[f.ID] = f.FillColor
	}
	return out
}

func TestGeoActivity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query      string
		wantHours  int
		wantTotal  int
		wantCounts map[string]int
	}{
		{"", 24, 2, map[string]int{"Russia": 1, "Ukraine": 2}},
		{"?hours=48", 24, 2, map[string]int{"Russia": 1, "Ukraine": 2}},
		{"?hours=abc", 24, 2, map[string]int{"Russia": 1, "Ukraine": 2}},
		{"?hours=0", 1, 1, map[string]int{"Russia": 1, "Ukraine": 1}},
		{"?hours=1", 1, 1, map[string]int{"Russia": 1, "Ukraine": 1}},
	}

	router := newTestRouter(t, defaultDeps())
	for _, tt := range tests {
		t.Run("hours"+tt.query, func(t *testing.T) {
			t.Parallel()

			rec := do(t, router, http.MethodGet, "/geo/activity"+tt.query, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
			}

			resp := decodeActivity(t, rec.Body.Bytes())
			if resp.Hours != tt.wantHours {
				t.Errorf("hours = %d, want %d", resp.Hours, tt.wantHours)
			}
			if resp.TotalArticles != tt.wantTotal {
				t.Errorf("totalArticles = %d, want %d", resp.TotalArticles, tt.wantTotal)
			}
			if len(resp.CountryCounts) != len(tt.wantCounts) {
				t.Errorf("countryCounts = %v, want %v", resp.CountryCounts, tt.wantCounts)
			}
			for name, want := range tt.wantCounts {
				if resp.CountryCounts[name] != want {
					t.Errorf("countryCounts[%s] = %d, want %d", name, resp.CountryCounts[name], want)
				}
			}
			if resp.GeneratedAt.IsZero() {
				t.Error("generatedAt not set")
			}
		})
	}
}

func TestGeoActivityRawShape(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.store = &fakeStore{}
	rec := do(t, newTestRouter(t, deps), http.MethodGet, "/geo/activity", nil)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"hours", "totalArticles", "countryCounts", "regionCounts", "generatedAt"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in %s", key, rec.Body.String())
		}
	}
	if _, ok := raw["status"]; ok {
		t.Error("activity response must not be enveloped")
	}
	if string(raw["countryCounts"]) != "{}" {
		t.Errorf("countryCounts = %s, want {}", raw["countryCounts"])
	}
}

func TestGeoActivityStoreError(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.store = &fakeStore{err: errors.New("IO Error: database is locked")}
	rec := do(t, newTestRouter(t, deps), http.MethodGet, "/geo/activity", nil)
	expectError(t, rec, http.StatusInternalServerError, ErrCodeDatabase)
}

func TestGeoActivityWithoutStore(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.store = nil
	rec := do(t, newTestRouter(t, deps), http.MethodGet, "/geo/activity", nil)
	expectError(t, rec, http.StatusInternalServerError, ErrCodeDatabase)
}

func TestGeoMapCountsMode(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestRouter(t, defaultDeps()), http.MethodGet, "/geo/map", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	env := decodeEnvelope(t, rec)
	if env.Status != "success" {
		t.Fatalf("status = %q", env.Status)
	}
	p := decodePayload(t, env)

	if p.Mode != mapdata.ModeWorld || p.ColorMode != involvement.ModeCounts {
		t.Errorf("mode = %q/%q, want world/counts", p.Mode, p.ColorMode)
	}

	fills := fillByID(p)
	if _, ok := fills["010"]; ok {
		t.Error("Antarctica must be excluded")
	}
	if len(fills) != 4 {
		t.Errorf("features = %d, want 4", len(fills))
	}
	// Ukraine has the most mentions (2), Russia half of that.
	if want := involvement.GradientColor(1); fills["804"] != want {
		t.Errorf("Ukraine fill = %s, want %s", fills["804"], want)
	}
	if want := involvement.GradientColor(0.5); fills["643"] != want {
		t.Errorf("Russia fill = %s, want %s", fills["643"], want)
	}
	if fills["404"] != involvement.NoneColor {
		t.Errorf("Kenya fill = %s, want none color (outside window)", fills["404"])
	}
	if len(p.Legend) == 0 {
		t.Error("legend should not be empty")
	}
}

func TestGeoMapTopologyUnavailable(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.loader = &fakeLoader{err: fmt.Errorf("%w: fetch: connection refused", topology.ErrUnavailable)}
	rec := do(t, newTestRouter(t, deps), http.MethodGet, "/geo/map", nil)
	expectError(t, rec, http.StatusServiceUnavailable, ErrCodeDataUnavailable)
}

func TestGeoMapEmptyTopology(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.loader = &fakeLoader{dataset: &topology.Dataset{}}
	rec := do(t, newTestRouter(t, deps), http.MethodGet, "/geo/map", nil)
	expectError(t, rec, http.StatusServiceUnavailable, ErrCodeDataUnavailable)
}

func TestGeoMapWithoutLoader(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.loader = nil
	rec := do(t, newTestRouter(t, deps), http.MethodGet, "/geo/map", nil)
	expectError(t, rec, http.StatusServiceUnavailable, ErrCodeDataUnavailable)
}

func TestGeoMapStoreError(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.store = &fakeStore{err: errors.New("connection refused")}
	rec := do(t, newTestRouter(t, deps), http.MethodGet, "/geo/map", nil)
	expectError(t, rec, http.StatusInternalServerError, ErrCodeDatabase)
}

func TestGeoEventMap(t *testing.T) {
	t.Parallel()

	body := []byte(`{"countries":{"Russia":"primary","UKR":"Major","Atlantis":"minor"},"regions":{"Baltic States":"minor"}}`)
	rec := do(t, newTestRouter(t, defaultDeps()), http.MethodPost, "/geo/map/event", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	p := decodePayload(t, decodeEnvelope(t, rec))
	if p.ColorMode != involvement.ModeEvent {
		t.Errorf("colorMode = %q, want event", p.ColorMode)
	}

	fills := fillByID(p)
	tests := map[string]string{
		"643": involvement.LevelPrimary.StrongColor(),
		"804": involvement.LevelMajor.StrongColor(),
		"233": involvement.LevelMinor.LightColor(),
		"404": involvement.NoneColor,
	}
	for id, want := range tests {
		if fills[id] != want {
			t.Errorf("feature %s fill = %s, want %s", id, fills[id], want)
		}
	}
	if len(p.Legend) != len(involvement.Levels) {
		t.Errorf("legend = %d items, want %d", len(p.Legend), len(involvement.Levels))
	}
}

func TestGeoEventMapRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		code string
	}{
		{"invalid level", `{"countries":{"Ukraine":"critical"}}`, ErrCodeValidation},
		{"invalid region level", `{"regions":{"Balkans":"high"}}`, ErrCodeValidation},
		{"unknown region", `{"regions":{"NATO":"minor"}}`, ErrCodeValidation},
		{"empty key", `{"countries":{"":"major"}}`, ErrCodeValidation},
		{"malformed json", `{"countries":`, ErrCodeBadRequest},
		{"empty body", ``, ErrCodeBadRequest},
		{"unknown field", `{"countries":{"Ukraine":"major"},"colors":{}}`, ErrCodeBadRequest},
		{"trailing data", `{"countries":{"Ukraine":"major"}} {}`, ErrCodeBadRequest},
		{"nothing listed", `{"countries":{},"regions":{}}`, ErrCodeBadRequest},
		{"wrong value type", `{"countries":{"Ukraine":3}}`, ErrCodeBadRequest},
	}

	router := newTestRouter(t, defaultDeps())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, router, http.MethodPost, "/geo/map/event", []byte(tt.body))
			expectError(t, rec, http.StatusBadRequest, tt.code)
		})
	}
}

func TestGeoEventMapInvalidLevelNamesField(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestRouter(t, defaultDeps()), http.MethodPost, "/geo/map/event",
		[]byte(`{"countries":{"Ukraine":"critical"}}`))
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Details["field"] != "countries[Ukraine]" {
		t.Errorf("error = %+v, want field countries[Ukraine]", env.Error)
	}
}

func TestGeoEventMapTopologyUnavailable(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.loader = &fakeLoader{err: fmt.Errorf("%w: decode", topology.ErrUnavailable)}
	rec := do(t, newTestRouter(t, deps), http.MethodPost, "/geo/map/event",
		[]byte(`{"countries":{"Ukraine":"primary"}}`))
	expectError(t, rec, http.StatusServiceUnavailable, ErrCodeDataUnavailable)
}

func TestGeoBoundary(t *testing.T) {
	t.Parallel()

	resolver := &fakeResolver{}
	deps := defaultDeps()
	deps.resolver = resolver

	rec := do(t, newTestRouter(t, deps), http.MethodGet, "/geo/boundary?name=Kharkiv&lat=49.99&lon=36.23", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	p := decodePayload(t, decodeEnvelope(t, rec))
	if p.Mode != mapdata.ModeSingle || p.SingleLocation == nil {
		t.Fatalf("payload = %+v, want single location", p)
	}
	loc := p.SingleLocation
	if loc.Name != "Kharkiv" || loc.Fallback || loc.Source != "fake" {
		t.Errorf("singleLocation = %+v", loc)
	}
	if loc.Marker.Lat != 49.99 || loc.Marker.Lon != 36.23 {
		t.Errorf("marker = %+v", loc.Marker)
	}
	if len(p.Features) != 0 {
		t.Errorf("single-location mode should carry no features, got %d", len(p.Features))
	}
	if resolver.calls.Load() != 1 {
		t.Errorf("resolver calls = %d, want 1", resolver.calls.Load())
	}
}

func TestGeoBoundaryFallback(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.resolver = boundary.New(notFoundProvider{}, nil, boundary.Config{Timeout: time.Second})

	rec := do(t, newTestRouter(t, deps), http.MethodGet, "/geo/boundary?name=Nowhere&lat=10&lon=20", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	loc := decodePayload(t, decodeEnvelope(t, rec)).SingleLocation
	if loc == nil || !loc.Fallback {
		t.Fatalf("expected fallback location, got %+v", loc)
	}
	if loc.Geometry.Type != "Polygon" {
		t.Errorf("fallback geometry type = %q", loc.Geometry.Type)
	}
	if loc.BoundingBox.South() >= 10 || loc.BoundingBox.North() <= 10 {
		t.Errorf("bounding box %v does not contain the marker", loc.BoundingBox)
	}
}

func TestGeoBoundaryRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"missing lat", "name=Kyiv&lon=30.5", ErrCodeBadRequest},
		{"missing lon", "name=Kyiv&lat=50.4", ErrCodeBadRequest},
		{"non-numeric lat", "name=Kyiv&lat=north&lon=30.5", ErrCodeBadRequest},
		{"lat out of range", "name=Kyiv&lat=95&lon=30.5", ErrCodeValidation},
		{"lon out of range", "name=Kyiv&lat=50&lon=-200", ErrCodeValidation},
		{"missing name", "lat=50.4&lon=30.5", ErrCodeValidation},
		{"blank name", "name=%20%20&lat=50.4&lon=30.5", ErrCodeValidation},
	}

	resolver := &fakeResolver{}
	deps := defaultDeps()
	deps.resolver = resolver
	router := newTestRouter(t, deps)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, router, http.MethodGet, "/geo/boundary?"+tt.query, nil)
			expectError(t, rec, http.StatusBadRequest, tt.code)
		})
	}
	t.Cleanup(func() {
		if n := resolver.calls.Load(); n != 0 {
			t.Errorf("resolver called %d times for invalid requests", n)
		}
	})
}

func TestGeoBoundaryWithoutResolver(t *testing.T) {
	t.Parallel()

	deps := defaultDeps()
	deps.resolver = nil
	rec := do(t, newTestRouter(t, deps), http.MethodGet, "/geo/boundary?name=Kyiv&lat=50.4&lon=30.5", nil)
	expectError(t, rec, http.StatusServiceUnavailable, ErrCodeDataUnavailable)
}

func TestGeoCountries(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestRouter(t, defaultDeps()), http.MethodGet, "/geo/countries", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var data struct {
		Countries []struct {
			Name string `json:"name"`
			ISO3 string `json:"iso3"`
		} `json:"countries"`
		Regions []struct {
			Name    string   `json:"name"`
			Members []string `json:"members"`
		} `json:"regions"`
		Aliases       []json.RawMessage `json:"aliases"`
		RegionAliases []json.RawMessage `json:"regionAliases"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &data); err != nil {
		t.Fatal(err)
	}

	if len(data.Countries) < 150 {
		t.Errorf("countries = %d, want a full gazetteer", len(data.Countries))
	}
	if len(data.Regions) == 0 || len(data.Aliases) == 0 || len(data.RegionAliases) == 0 {
		t.Errorf("regions=%d aliases=%d regionAliases=%d", len(data.Regions), len(data.Aliases), len(data.RegionAliases))
	}
	found := false
	for _, c := range data.Countries {
		if c.ISO3 == "UKR" && c.Name == "Ukraine" {
			found = true
		}
	}
	if !found {
		t.Error("Ukraine missing from listing")
	}
}

func TestGeoResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       string
		wantKind string
		wantName string
	}{
		{"804", "country", "Ukraine"},
		{"UKR", "country", "Ukraine"},
		{"ua", "country", "Ukraine"},
		{"ukrainian", "country", "Ukraine"},
		{"Baltic%20States", "region", "Baltic States"},
	}

	router := newTestRouter(t, defaultDeps())
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()

			rec := do(t, router, http.MethodGet, "/geo/resolve?id="+tt.id, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
			}
			var resp models.ResolveResponse
			if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Kind != tt.wantKind || resp.DisplayName != tt.wantName {
				t.Errorf("resolve %s = %s %q, want %s %q", tt.id, resp.Kind, resp.DisplayName, tt.wantKind, tt.wantName)
			}
		})
	}
}

func TestGeoResolveCountryRegions(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestRouter(t, defaultDeps()), http.MethodGet, "/geo/resolve?id=EST", nil)
	var resp models.ResolveResponse
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &resp); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, r := range resp.MemberOf {
		if r == "Baltic States" {
			found = true
		}
	}
	if !found {
		t.Errorf("memberOf = %v, want Baltic States included", resp.MemberOf)
	}
}

func TestGeoResolveErrors(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, defaultDeps())
	expectError(t, do(t, router, http.MethodGet, "/geo/resolve?id=Atlantis", nil), http.StatusNotFound, ErrCodeNotFound)
	expectError(t, do(t, router, http.MethodGet, "/geo/resolve", nil), http.StatusBadRequest, ErrCodeValidation)
}

func TestParseLevels(t *testing.T) {
	t.Parallel()

	got, err := parseLevels(map[string]string{"Russia": "PRIMARY", "Kenya": " none "})
	if err != nil {
		t.Fatal(err)
	}
	if got["Russia"] != involvement.LevelPrimary || got["Kenya"] != involvement.LevelNone {
		t.Errorf("parseLevels() = %v", got)
	}

	if got, err := parseLevels(nil); got != nil || err != nil {
		t.Errorf("parseLevels(nil) = %v, %v", got, err)
	}

	if _, err := parseLevels(map[string]string{"Russia": "severe"}); !errors.Is(err, involvement.ErrInvalidLevel) {
		t.Errorf("err = %v, want ErrInvalidLevel", err)
	}
}
