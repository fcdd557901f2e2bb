// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

// Package mapdata joins the world topology with a ColorMap into the payload
// the map client renders.
//
// Two distinct modes:
//
//   - world: one entry per topology feature with its fill color
//   - single: one highlighted location (polygon or fallback rectangle) and
//     its marker, with no per-country pass
package mapdata

import (
	"errors"
	"strings"

	"github.com/tomtom215/geoimpact/internal/boundary"
	"github.com/tomtom215/geoimpact/internal/gazetteer"
	"github.com/tomtom215/geoimpact/internal/involvement"
	"github.com/tomtom215/geoimpact/internal/logging"
	"github.com/tomtom215/geoimpact/internal/metrics"
	"github.com/tomtom215/geoimpact/internal/topology"
)

// ErrDataUnavailable is returned for a world render without topology.
var ErrDataUnavailable = errors.New("map data unavailable")

// Render modes.
const (
	ModeWorld  = "world"
	ModeSingle = "single"
)

// DefaultExcludedIDs are always dropped from the world view: Antarctica and
// Greenland.
var DefaultExcludedIDs = []string{"010", "304"}

// Feature is one colored country of the world view.
type Feature struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	ISOCode   string `json:"isoCode,omitempty"`
	FillColor string `json:"fillColor"`
}

// Marker is the pin of the single-location view.
type Marker struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// SingleLocation is the highlighted geometry of the single-location view.
type SingleLocation struct {
	Name        string               `json:"name"`
	Geometry    boundary.Geometry    `json:"geometry"`
	BoundingBox boundary.BoundingBox `json:"boundingBox"`
	Marker      Marker               `json:"marker"`
	Fallback    bool                 `json:"fallback"`
	Source      string               `json:"source"`
}

// RenderPayload is the outbound map payload.
type RenderPayload struct {
	Mode           string                   `json:"mode"`
	ColorMode      involvement.Mode         `json:"colorMode,omitempty"`
	Features       []Feature                `json:"features"`
	Legend         []involvement.LegendItem `json:"legend"`
	SingleLocation *SingleLocation          `json:"singleLocation,omitempty"`
}

// Location selects the single-location mode: a resolved boundary and the
// point it was resolved around.
type Location struct {
	Lat      float64
	Lon      float64
	Boundary boundary.Boundary
}

// Builder builds render payloads. It is safe for concurrent use.
type Builder struct {
	excluded map[string]bool
}

// NewBuilder creates a Builder that drops DefaultExcludedIDs plus extra,
// which may be topology ids, ISO3 or ISO2 codes.
func NewBuilder(extra []string) *Builder {
	excluded := make(map[string]bool, len(DefaultExcludedIDs)+len(extra))
	for _, id := range append(append([]string(nil), DefaultExcludedIDs...), extra...) {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		excluded[topology.NormalizeID(id)] = true
		if c, ok := gazetteer.Resolve(id); ok {
			excluded[c.ISO3] = true
			if c.Numeric != "" {
				excluded[c.Numeric] = true
			}
		}
	}
	return &Builder{excluded: excluded}
}

// Build produces the payload. A non-nil loc selects single-location mode and
// ignores dataset and colors. Otherwise dataset must hold features or
// ErrDataUnavailable is returned.
func (b *Builder) Build(dataset *topology.Dataset, colors involvement.ColorMap, loc *Location) (*RenderPayload, error) {
	if loc != nil {
		metrics.RecordMapRender(ModeSingle, nil)
		return buildSingle(loc), nil
	}

	if dataset.Len() == 0 {
		metrics.RecordMapRender(ModeWorld, ErrDataUnavailable)
		return nil, ErrDataUnavailable
	}

	features := make([]Feature, 0, dataset.Len())
	unmatched := 0
	for _, f := range dataset.Features {
		iso3 := resolveFeature(f)
		if b.isExcluded(f.ID, iso3) {
			continue
		}
		if iso3 == "" {
			unmatched++
		}
		features = append(features, Feature{
			ID:        f.ID,
			Name:      f.Name,
			ISOCode:   iso3,
			FillColor: colors.Color(iso3),
		})
	}

	if unmatched > 0 {
		logging.Debug().Int("unmatched", unmatched).Msg("Topology features without a country match, using none color")
	}

	metrics.RecordMapRender(ModeWorld, nil)
	return &RenderPayload{
		Mode:      ModeWorld,
		ColorMode: colors.Mode,
		Features:  features,
		Legend:    involvement.Legend(colors.Mode),
	}, nil
}

func (b *Builder) isExcluded(id, iso3 string) bool {
	if id != "" && b.excluded[id] {
		return true
	}
	return iso3 != "" && b.excluded[iso3]
}

// resolveFeature maps a feature to ISO3: numeric or ISO id first, the
// feature name as a last resort. "" when nothing matches.
func resolveFeature(f topology.Feature) string {
	if f.ID != "" {
		if c, ok := gazetteer.Resolve(f.ID); ok {
			return c.ISO3
		}
	}
	if f.Name != "" {
		if c, ok := gazetteer.Resolve(f.Name); ok {
			return c.ISO3
		}
	}
	return ""
}

func buildSingle(loc *Location) *RenderPayload {
	return &RenderPayload{
		Mode:     ModeSingle,
		Features: []Feature{},
		Legend:   []involvement.LegendItem{},
		SingleLocation: &SingleLocation{
			Name:        loc.Boundary.Name,
			Geometry:    loc.Boundary.Geometry,
			BoundingBox: loc.Boundary.BoundingBox,
			Marker:      Marker{Lat: loc.Lat, Lon: loc.Lon},
			Fallback:    loc.Boundary.Fallback,
			Source:      loc.Boundary.Source,
		},
	}
}
