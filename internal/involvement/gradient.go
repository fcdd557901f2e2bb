// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package involvement

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

type stop struct {
	at    float64
	hex   string
	color colorful.Color
}

// gradientStops run green, yellow, orange, red. The green channel falls
// strictly from stop to stop, so higher intensity is never a cooler color.
var gradientStops = mustStops([]stop{
	{at: 0.00, hex: "#2ecc71"},
	{at: 0.33, hex: "#f1c40f"},
	{at: 0.66, hex: "#e67e22"},
	{at: 1.00, hex: "#e74c3c"},
})

// bucket is an intensity range [min, max] sharing one level. Legend rows
// and BucketLevel both read countBuckets.
type bucket struct {
	level    Level
	min, max float64
	label    string
}

// countBuckets run strongest first.
var countBuckets = []bucket{
	{level: LevelPrimary, min: 0.75, max: 1.00, label: "Highest coverage (75-100% of peak)"},
	{level: LevelMajor, min: 0.50, max: 0.75, label: "High coverage (50-75% of peak)"},
	{level: LevelModerate, min: 0.25, max: 0.50, label: "Moderate coverage (25-50% of peak)"},
	{level: LevelMinor, min: 0.00, max: 0.25, label: "Low coverage (under 25% of peak)"},
}

func mustStops(stops []stop) []stop {
	for i := range stops {
		c, err := colorful.Hex(stops[i].hex)
		if err != nil {
			panic("involvement: bad gradient color " + stops[i].hex)
		}
		stops[i].color = c
	}
	return stops
}

// Intensity normalizes count against the largest count, guarding max < 1.
func Intensity(count, maxCount int) float64 {
	if maxCount < 1 {
		maxCount = 1
	}
	v := float64(count) / float64(maxCount)
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// GradientColor interpolates per RGB channel between the two stops that
// bracket intensity. Input is clamped to [0, 1].
func GradientColor(intensity float64) string {
	if intensity <= gradientStops[0].at {
		return gradientStops[0].color.Hex()
	}
	for i := 1; i < len(gradientStops); i++ {
		lo, hi := gradientStops[i-1], gradientStops[i]
		if intensity <= hi.at {
			t := (intensity - lo.at) / (hi.at - lo.at)
			return lo.color.BlendRgb(hi.color, t).Clamped().Hex()
		}
	}
	return gradientStops[len(gradientStops)-1].color.Hex()
}

// BucketLevel maps an intensity to a level: >=0.75 primary, >=0.5 major,
// >=0.25 moderate, >0 minor, otherwise none.
func BucketLevel(intensity float64) Level {
	if intensity <= 0 {
		return LevelNone
	}
	for _, b := range countBuckets {
		if intensity >= b.min {
			return b.level
		}
	}
	return LevelNone
}
