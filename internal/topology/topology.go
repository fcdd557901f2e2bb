// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

// Package topology loads the world topology dataset: the per-country
// features of a TopoJSON document such as world-atlas countries-110m.
//
// Only feature ids and names are extracted; the client renders the arcs
// itself. A dataset lives for one render pass and is not cached here.
package topology

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/geoimpact/internal/logging"
	"github.com/tomtom215/geoimpact/internal/metrics"
)

// ErrUnavailable wraps every load failure.
var ErrUnavailable = errors.New("world topology unavailable")

// Defaults for zero Config fields.
const (
	DefaultSource   = "https://cdn.jsdelivr.net/npm/world-atlas@2/countries-110m.json"
	DefaultObject   = "countries"
	DefaultTimeout  = 15 * time.Second
	DefaultMaxBytes = 16 << 20
)

// Config configures a Loader.
type Config struct {
	// Source is an http(s) URL or a local file path.
	Source   string
	Object   string
	Timeout  time.Duration
	MaxBytes int64
}

// Feature is one geometry of the topology object.
type Feature struct {
	// ID is the geometry id. Numeric ids are zero-padded to three digits.
	ID   string
	Name string
}

// Dataset is a loaded topology.
type Dataset struct {
	Source   string
	Object   string
	Features []Feature
	LoadedAt time.Time
}

// Len returns the number of features.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Features)
}

// Loader reads topology documents.
type Loader struct {
	cfg    Config
	client *http.Client
}

// NewLoader creates a Loader, filling defaults.
func NewLoader(cfg Config) *Loader {
	if cfg.Source == "" {
		cfg.Source = DefaultSource
	}
	if cfg.Object == "" {
		cfg.Object = DefaultObject
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	return &Loader{
		cfg:    cfg,
		client: &http.Client{},
	}
}

// Source returns the configured source.
func (l *Loader) Source() string {
	return l.cfg.Source
}

// Load reads and decodes the topology. Every failure, including a document
// with no features, wraps ErrUnavailable, except cancellation of ctx by the
// caller, which is returned as context.Canceled.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	parent := ctx
	ctx, cancel := context.WithTimeout(ctx, l.cfg.Timeout)
	defer cancel()

	start := time.Now()
	ds, err := l.load(ctx)
	if err != nil && errors.Is(parent.Err(), context.Canceled) {
		logging.Ctx(ctx).Debug().Err(err).Str("source", l.cfg.Source).Msg("World topology load canceled")
		return nil, fmt.Errorf("load world topology: %w", context.Canceled)
	}
	metrics.RecordTopologyLoad(time.Since(start), err)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("source", l.cfg.Source).Msg("Failed to load world topology")
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	logging.Ctx(ctx).Debug().
		Str("source", l.cfg.Source).
		Int("features", ds.Len()).
		Dur("duration", time.Since(start)).
		Msg("Loaded world topology")
	return ds, nil
}

func (l *Loader) load(ctx context.Context) (*Dataset, error) {
	data, err := l.read(ctx)
	if err != nil {
		return nil, err
	}

	features, err := Parse(data, l.cfg.Object)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Source:   l.cfg.Source,
		Object:   l.cfg.Object,
		Features: features,
		LoadedAt: time.Now(),
	}, nil
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if isURL(l.cfg.Source) {
		return l.fetch(ctx)
	}

	f, err := os.Open(l.cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("open topology file: %w", err)
	}
	defer f.Close()
	return readLimited(f, l.cfg.MaxBytes)
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.Source, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch topology: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("topology source returned status %d", resp.StatusCode)
	}
	return readLimited(resp.Body, l.cfg.MaxBytes)
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read topology: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("topology exceeds %d bytes", maxBytes)
	}
	return data, nil
}

func isURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

type document struct {
	Type    string                     `json:"type"`
	Objects map[string]json.RawMessage `json:"objects"`
}

type geometryCollection struct {
	Geometries []struct {
		ID         featureID `json:"id"`
		Properties struct {
			Name string `json:"name"`
		} `json:"properties"`
	} `json:"geometries"`
}

// featureID accepts string and numeric TopoJSON ids.
type featureID string

func (f *featureID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "" || raw == "null":
		*f = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = featureID(normalizeID(s))
	default:
		*f = featureID(normalizeID(raw))
	}
	return nil
}

// normalizeID zero-pads short numeric ids ("4" -> "004") and trims the rest.
func normalizeID(id string) string {
	id = strings.TrimSpace(id)
	n, err := strconv.Atoi(id)
	if err != nil || n < 0 || n > 999 {
		return id
	}
	return fmt.Sprintf("%03d", n)
}

// NormalizeID is the id form used by Feature.ID, for comparing configured
// ids against features.
func NormalizeID(id string) string {
	return normalizeID(id)
}

// Parse extracts the features of object from a TopoJSON document.
func Parse(data []byte, object string) ([]Feature, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode topology: %w", err)
	}
	if doc.Type != "Topology" {
		return nil, fmt.Errorf("not a TopoJSON document (type %q)", doc.Type)
	}

	raw, ok := doc.Objects[object]
	if !ok {
		return nil, fmt.Errorf("topology has no object %q", object)
	}

	var gc geometryCollection
	if err := json.Unmarshal(raw, &gc); err != nil {
		return nil, fmt.Errorf("decode object %q: %w", object, err)
	}
	if len(gc.Geometries) == 0 {
		return nil, fmt.Errorf("object %q has no geometries", object)
	}

	features := make([]Feature, 0, len(gc.Geometries))
	for _, g := range gc.Geometries {
		features = append(features, Feature{
			ID:   string(g.ID),
			Name: strings.TrimSpace(g.Properties.Name),
		})
	}
	return features, nil
}
