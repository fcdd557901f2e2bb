// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

// Package involvement assigns an involvement level and fill color to every
// country, keyed by ISO3.
//
// Event mode (authored data) uses a strict override order:
//
//	explicit country level  ->  strong color of that level
//	member of listed region ->  light color of the region's level
//	otherwise               ->  NoneColor
//
// Counts mode (generic activity map) normalizes each count against the
// largest one and colors it on a green-yellow-orange-red gradient.
package involvement

import (
	"github.com/tomtom215/geoimpact/internal/gazetteer"
	"github.com/tomtom215/geoimpact/internal/logging"
)

// Mode says which input drove a ColorMap.
type Mode string

const (
	ModeEvent  Mode = "event"
	ModeCounts Mode = "counts"
)

// Source says how a country got its entry.
type Source string

const (
	SourceExplicit Source = "explicit"
	SourceRegion   Source = "region"
	SourceCounts   Source = "counts"
)

// Input is the classifier input. Map keys may be canonical names, aliases
// or ISO codes (Explicit, Counts) and region names (RegionExplicit).
// Any field may be nil.
type Input struct {
	Explicit       map[string]Level
	RegionExplicit map[string]Level
	Counts         map[string]int
}

// Entry is the classification of one country.
type Entry struct {
	Level     Level   `json:"level"`
	Color     string  `json:"color"`
	Source    Source  `json:"source"`
	Region    string  `json:"region,omitempty"`
	Count     int     `json:"count,omitempty"`
	Intensity float64 `json:"intensity,omitempty"`
}

// ColorMap holds entries keyed by ISO3.
type ColorMap struct {
	Mode    Mode
	Entries map[string]Entry
}

// Color returns the fill for iso3, NoneColor when the country has no entry.
func (m ColorMap) Color(iso3 string) string {
	if e, ok := m.Entries[iso3]; ok {
		return e.Color
	}
	return NoneColor
}

// Level returns the level for iso3, LevelNone when the country has no entry.
func (m ColorMap) Level(iso3 string) Level {
	if e, ok := m.Entries[iso3]; ok {
		return e.Level
	}
	return LevelNone
}

// Classify builds the ColorMap. Any explicit or region data selects event
// mode and Counts is ignored. It never fails: unresolvable keys are logged
// at debug and skipped.
func Classify(in Input) ColorMap {
	if len(in.Explicit) > 0 || len(in.RegionExplicit) > 0 {
		return classifyEvent(in.Explicit, in.RegionExplicit)
	}
	return classifyCounts(in.Counts)
}

func classifyEvent(explicit, regionExplicit map[string]Level) ColorMap {
	entries := make(map[string]Entry)

	// Region roll-up first; when regions overlap the strongest level wins.
	for name, level := range regionExplicit {
		region, ok := gazetteer.GetRegion(name)
		if !ok {
			logging.Debug().Str("region", name).Msg("Unknown region in involvement data, skipping")
			continue
		}
		for _, iso3 := range region.Members {
			prev, seen := entries[iso3]
			if seen && (prev.Level > level || (prev.Level == level && prev.Region < region.Name)) {
				continue
			}
			entries[iso3] = Entry{
				Level:  level,
				Color:  level.LightColor(),
				Source: SourceRegion,
				Region: region.Name,
			}
		}
	}

	// Explicit entries always replace a roll-up.
	for key, level := range explicit {
		c, ok := gazetteer.Resolve(key)
		if !ok {
			logging.Debug().Str("country", key).Msg("Unresolvable country in involvement data, skipping")
			continue
		}
		if prev, seen := entries[c.ISO3]; seen && prev.Source == SourceExplicit && prev.Level >= level {
			continue
		}
		entries[c.ISO3] = Entry{
			Level:  level,
			Color:  level.StrongColor(),
			Source: SourceExplicit,
		}
	}

	return ColorMap{Mode: ModeEvent, Entries: entries}
}

func classifyCounts(counts map[string]int) ColorMap {
	byISO3 := make(map[string]int, len(counts))
	for key, n := range counts {
		c, ok := gazetteer.Resolve(key)
		if !ok {
			logging.Debug().Str("country", key).Msg("Unresolvable country in mention counts, skipping")
			continue
		}
		byISO3[c.ISO3] += n
	}

	maxCount := 0
	for _, n := range byISO3 {
		if n > maxCount {
			maxCount = n
		}
	}

	entries := make(map[string]Entry, len(byISO3))
	for iso3, n := range byISO3 {
		if n <= 0 {
			continue
		}
		intensity := Intensity(n, maxCount)
		entries[iso3] = Entry{
			Level:     BucketLevel(intensity),
			Color:     GradientColor(intensity),
			Source:    SourceCounts,
			Count:     n,
			Intensity: intensity,
		}
	}

	return ColorMap{Mode: ModeCounts, Entries: entries}
}

// LegendItem is one row of the map legend.
type LegendItem struct {
	Level string `json:"level"`
	Color string `json:"color"`
	Label string `json:"label"`
}

// Legend returns the legend rows for mode, strongest first.
func Legend(mode Mode) []LegendItem {
	if mode == ModeCounts {
		// Each row shows the warmest color its bucket reaches.
		items := make([]LegendItem, 0, len(countBuckets)+1)
		for _, b := range countBuckets {
			items = append(items, LegendItem{Level: b.level.String(), Color: GradientColor(b.max), Label: b.label})
		}
		return append(items, LegendItem{Level: LevelNone.String(), Color: NoneColor, Label: "No coverage"})
	}

	items := make([]LegendItem, 0, len(Levels))
	for _, l := range Levels {
		items = append(items, LegendItem{Level: l.String(), Color: l.StrongColor(), Label: l.Label()})
	}
	return items
}
