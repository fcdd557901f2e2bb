// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package involvement

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("invalid involvement level")

// Level is a country's involvement in an event. Higher is stronger.
type Level int

// Levels, weakest first.
const (
	LevelNone Level = iota
	LevelMinor
	LevelModerate
	LevelMajor
	LevelPrimary
)

var levelNames = [...]string{"none", "minor", "moderate", "major", "primary"}

// Levels lists every level from strongest to weakest, the legend order.
var Levels = []Level{LevelPrimary, LevelMajor, LevelModerate, LevelMinor, LevelNone}

// String returns the lower-case level name.
func (l Level) String() string {
	if l < LevelNone || l > LevelPrimary {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(b []byte) error {
	parsed, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelNone, fmt.Errorf("%w: %q (want primary, major, moderate, minor or none)", ErrInvalidLevel, s)
}

// swatch is the pair of display colors for a level.
type swatch struct {
	strong string // explicit country involvement
	light  string // region roll-up
}

var swatches = map[Level]swatch{
	LevelPrimary:  {strong: "#c0392b", light: "#f2b8b1"},
	LevelMajor:    {strong: "#e67e22", light: "#f8d3ae"},
	LevelModerate: {strong: "#f1c40f", light: "#faeaa6"},
	LevelMinor:    {strong: "#3498db", light: "#bcdcf2"},
	LevelNone:     {strong: NoneColor, light: NoneColor},
}

// NoneColor is the neutral fill for countries with no involvement.
const NoneColor = "#d5d8dc"

// StrongColor returns the fill for an explicit country entry.
func (l Level) StrongColor() string {
	if s, ok := swatches[l]; ok {
		return s.strong
	}
	return NoneColor
}

// LightColor returns the fill for a region roll-up.
func (l Level) LightColor() string {
	if s, ok := swatches[l]; ok {
		return s.light
	}
	return NoneColor
}

// Label returns a legend label such as "Primary involvement".
func (l Level) Label() string {
	switch l {
	case LevelPrimary:
		return "Primary involvement"
	case LevelMajor:
		return "Major involvement"
	case LevelModerate:
		return "Moderate involvement"
	case LevelMinor:
		return "Minor involvement"
	default:
		return "Not involved"
	}
}
