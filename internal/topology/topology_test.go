// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package topology

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/geoimpact/internal/metrics"
)

const sampleTopology = `{
	"type": "Topology",
	"objects": {
		"countries": {
			"type": "GeometryCollection",
			"geometries": [
				{"type": "Polygon", "arcs": [[0]], "id": "250", "properties": {"name": "France"}},
				{"type": "Polygon", "arcs": [[1]], "id": 4, "properties": {"name": "Afghanistan"}},
				{"type": "Polygon", "arcs": [[2]], "id": "010", "properties": {"name": "Antarctica"}},
				{"type": "Polygon", "arcs": [[3]], "properties": {"name": "Kosovo"}}
			]
		},
		"land": {"type": "GeometryCollection", "geometries": []}
	},
	"arcs": [[[0,0],[1,1]],[[1,1],[2,2]],[[2,2],[3,3]],[[3,3],[4,4]]]
}`

func TestParse(t *testing.T) {
	t.Parallel()

	features, err := Parse([]byte(sampleTopology), "countries")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []Feature{
		{ID: "250", Name: "France"},
		{ID: "004", Name: "Afghanistan"},
		{ID: "010", Name: "Antarctica"},
		{ID: "", Name: "Kosovo"},
	}
	if len(features) != len(want) {
		t.Fatalf("features = %+v", features)
	}
	for i := range want {
		if features[i] != want[i] {
			t.Errorf("feature %d = %+v, want %+v", i, features[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		doc    string
		object string
	}{
		{"not json", `{`, "countries"},
		{"not topology", `{"type":"FeatureCollection","features":[]}`, "countries"},
		{"missing object", sampleTopology, "provinces"},
		{"empty object", sampleTopology, "land"},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.doc), tt.object); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestNormalizeID(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"4":    "004",
		"004":  "004",
		" 76 ": "076",
		"840":  "840",
		"FRA":  "FRA",
		"1000": "1000",
		"":     "",
	}
	for in, want := range tests {
		if got := NormalizeID(in); got != want {
			t.Errorf("NormalizeID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadFromURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleTopology))
	}))
	defer server.Close()

	ds, err := NewLoader(Config{Source: server.URL}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 4 || ds.Object != DefaultObject || ds.Source != server.URL {
		t.Errorf("dataset = %+v", ds)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "countries.json")
	if err := os.WriteFile(path, []byte(sampleTopology), 0o600); err != nil {
		t.Fatal(err)
	}

	ds, err := NewLoader(Config{Source: path}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 4 {
		t.Errorf("features = %d, want 4", ds.Len())
	}
}

func TestLoadFailuresWrapErrUnavailable(t *testing.T) {
	t.Parallel()

	notFound := httptest.NewServer(http.NotFoundHandler())
	defer notFound.Close()

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	bigPath := filepath.Join(t.TempDir(), "big.json")
	if err := os.WriteFile(bigPath, []byte(sampleTopology), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"http 404", Config{Source: notFound.URL}},
		{"timeout", Config{Source: slow.URL, Timeout: 50 * time.Millisecond}},
		{"missing file", Config{Source: filepath.Join(t.TempDir(), "nope.json")}},
		{"too large", Config{Source: bigPath, MaxBytes: 64}},
		{"wrong object", Config{Source: bigPath, Object: "states"}},
	}
	for _, tt := range tests {
		ds, err := NewLoader(tt.cfg).Load(context.Background())
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("%s: err = %v, want ErrUnavailable", tt.name, err)
		}
		if ds != nil {
			t.Errorf("%s: dataset should be nil on failure", tt.name)
		}
	}
}

func TestLoadCanceledByCaller(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	failures := testutil.ToFloat64(metrics.TopologyLoadErrors)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	ds, err := NewLoader(Config{Source: slow.URL, Timeout: 5 * time.Second}).Load(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if errors.Is(err, ErrUnavailable) {
		t.Errorf("caller cancellation reported as unavailable: %v", err)
	}
	if ds != nil {
		t.Error("dataset should be nil on cancellation")
	}
	if d := testutil.ToFloat64(metrics.TopologyLoadErrors) - failures; d != 0 {
		t.Errorf("load errors delta = %v, want 0", d)
	}
}

func TestNilDatasetLen(t *testing.T) {
	t.Parallel()

	var ds *Dataset
	if ds.Len() != 0 {
		t.Error("nil dataset should have no features")
	}
}
