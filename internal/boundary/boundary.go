// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

// Package boundary resolves a free-text location name to a polygon for the
// single-location map view.
//
// Resolution order:
//
//  1. Process-lifetime cache keyed by the exact (name, lat, lon) triple
//  2. One outbound request to a Provider (Nominatim-compatible search API),
//     behind a rate limiter and a circuit breaker
//  3. On any failure, a synthesized rectangle around (lat, lon)
//
// Failures never reach the caller and are never cached, so a later request
// for the same key retries the provider.
package boundary

import (
	"errors"
	"math"
	"time"

	"github.com/goccy/go-json"
)

// Sentinel errors returned by providers.
var (
	// ErrNotFound means the provider answered but had no polygon for the name.
	ErrNotFound = errors.New("boundary not found")

	// ErrRateLimited means the request was refused by the local limiter or
	// the provider answered 429.
	ErrRateLimited = errors.New("boundary provider rate limited")
)

// SourceFallback is the Boundary.Source of a synthesized rectangle.
const SourceFallback = "fallback"

// kmPerDegree is the length of one degree of latitude.
const kmPerDegree = 111.0

// Geometry is a GeoJSON geometry object. Coordinates are kept raw so
// Polygon and MultiPolygon pass through to the renderer untouched.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// IsArea reports whether g is a polygonal geometry with coordinates.
func (g Geometry) IsArea() bool {
	if g.Type != "Polygon" && g.Type != "MultiPolygon" {
		return false
	}
	return len(g.Coordinates) > 0 && string(g.Coordinates) != "null" && string(g.Coordinates) != "[]"
}

// BoundingBox is [south, north, west, east] in degrees.
type BoundingBox [4]float64

func (b BoundingBox) South() float64 { return b[0] }
func (b BoundingBox) North() float64 { return b[1] }
func (b BoundingBox) West() float64  { return b[2] }
func (b BoundingBox) East() float64  { return b[3] }

// Boundary is a resolved location outline.
type Boundary struct {
	Name        string      `json:"name"`
	Geometry    Geometry    `json:"geometry"`
	BoundingBox BoundingBox `json:"boundingBox"`
	Fallback    bool        `json:"fallback"`
	Source      string      `json:"source"`
	FetchedAt   time.Time   `json:"fetchedAt"`
}

// FallbackRing returns a closed 5-point ring of [lon, lat] pairs centered on
// (lat, lon), radiusKm from the center along each axis, and its bounding box.
// The ring runs counter-clockwise (SW, SE, NE, NW, SW). Latitudes are clamped
// to [-90, 90].
func FallbackRing(lat, lon, radiusKm float64) ([][2]float64, BoundingBox) {
	dLat := radiusKm / kmPerDegree

	// Longitude degrees shrink with cos(lat); floor it so the poles stay finite.
	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	dLon := radiusKm / (kmPerDegree * cosLat)

	b := BoundingBox{math.Max(lat-dLat, -90), math.Min(lat+dLat, 90), lon - dLon, lon + dLon}
	ring := [][2]float64{
		{b.West(), b.South()},
		{b.East(), b.South()},
		{b.East(), b.North()},
		{b.West(), b.North()},
		{b.West(), b.South()},
	}
	return ring, b
}

// Fallback builds the rectangle Boundary used when the provider fails.
func Fallback(name string, lat, lon, radiusKm float64, now time.Time) Boundary {
	ring, bbox := FallbackRing(lat, lon, radiusKm)

	// A [][][2]float64 of finite floats always marshals.
	coords, _ := json.Marshal([][][2]float64{ring})

	return Boundary{
		Name:        name,
		Geometry:    Geometry{Type: "Polygon", Coordinates: coords},
		BoundingBox: bbox,
		Fallback:    true,
		Source:      SourceFallback,
		FetchedAt:   now,
	}
}
