// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package boundary

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/geoimpact/internal/metrics"
)

var berlinPolygon = Geometry{
	Type:        "Polygon",
	Coordinates: json.RawMessage(`[[[13.08,52.33],[13.76,52.33],[13.76,52.67],[13.08,52.67],[13.08,52.33]]]`),
}

type fakeProvider struct {
	calls atomic.Int32
	fn    func(ctx context.Context, name string) (Boundary, error)
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Lookup(ctx context.Context, name string) (Boundary, error) {
	f.calls.Add(1)
	return f.fn(ctx, name)
}

func succeeding() *fakeProvider {
	return &fakeProvider{fn: func(context.Context, string) (Boundary, error) {
		return Boundary{Geometry: berlinPolygon, BoundingBox: BoundingBox{52.33, 52.67, 13.08, 13.76}}, nil
	}}
}

func failing(err error) *fakeProvider {
	return &fakeProvider{fn: func(context.Context, string) (Boundary, error) {
		return Boundary{}, err
	}}
}

func testConfig() Config {
	return Config{Timeout: time.Second, FallbackRadiusKm: 4}
}

func TestResolveCachesSuccess(t *testing.T) {
	t.Parallel()

	p := succeeding()
	r := New(p, nil, testConfig())

	first := r.Resolve(context.Background(), "Berlin", 52.52, 13.405)
	second := r.Resolve(context.Background(), "Berlin", 52.52, 13.405)

	if got := p.calls.Load(); got != 1 {
		t.Fatalf("provider calls = %d, want 1", got)
	}
	if first.Fallback || first.Source != "fake" || first.Name != "Berlin" {
		t.Errorf("first = %+v", first)
	}
	if second.BoundingBox != first.BoundingBox || !second.FetchedAt.Equal(first.FetchedAt) {
		t.Errorf("second call did not return the cached boundary")
	}
	if r.Cache().Len() != 1 {
		t.Errorf("cache len = %d, want 1", r.Cache().Len())
	}
}

func TestResolveKeyIsExactTriple(t *testing.T) {
	t.Parallel()

	p := succeeding()
	r := New(p, nil, testConfig())

	r.Resolve(context.Background(), "Berlin", 52.52, 13.405)
	r.Resolve(context.Background(), "Berlin", 52.5201, 13.405)
	r.Resolve(context.Background(), "berlin", 52.52, 13.405)

	if got := p.calls.Load(); got != 3 {
		t.Errorf("provider calls = %d, want 3 (one per distinct triple)", got)
	}
}

func TestResolveSharedCache(t *testing.T) {
	t.Parallel()

	c := NewCache(0)
	p1, p2 := succeeding(), succeeding()
	New(p1, c, testConfig()).Resolve(context.Background(), "Lagos", 6.45, 3.39)
	New(p2, c, testConfig()).Resolve(context.Background(), "Lagos", 6.45, 3.39)

	if p2.calls.Load() != 0 {
		t.Error("second resolver should have hit the injected cache")
	}
}

func TestResolveFailureNotCached(t *testing.T) {
	t.Parallel()

	p := failing(errors.New("connection refused"))
	r := New(p, nil, testConfig())

	for i := 0; i < 2; i++ {
		b := r.Resolve(context.Background(), "Gaza", 31.5, 34.47)
		if !b.Fallback || b.Source != SourceFallback {
			t.Fatalf("call %d: want fallback, got %+v", i, b)
		}
	}
	if got := p.calls.Load(); got != 2 {
		t.Errorf("provider calls = %d, want 2 (failures are not cached)", got)
	}
	if r.Cache().Len() != 0 {
		t.Errorf("cache len = %d, want 0", r.Cache().Len())
	}
}

func TestFallbackRingProperties(t *testing.T) {
	t.Parallel()

	const tol = 1e-9
	points := [][2]float64{{0, 0}, {52.52, 13.405}, {-33.87, 151.21}, {64.15, -21.94}, {-54.8, -68.3}}
	for _, radius := range []float64{1, 4, 25} {
		for _, pt := range points {
			lat, lon := pt[0], pt[1]
			ring, bbox := FallbackRing(lat, lon, radius)

			if len(ring) != 5 {
				t.Fatalf("ring has %d points, want 5", len(ring))
			}
			if ring[0] != ring[4] {
				t.Errorf("ring not closed: %v != %v", ring[0], ring[4])
			}

			kmPerLonDegree := kmPerDegree * math.Cos(lat*math.Pi/180)
			for i, corner := range ring[:4] {
				dy := math.Abs(corner[1]-lat) * kmPerDegree
				dx := math.Abs(corner[0]-lon) * kmPerLonDegree
				if math.Abs(dy-radius) > tol || math.Abs(dx-radius) > tol {
					t.Errorf("(%v,%v) r=%v corner %d at dx=%v dy=%v km", lat, lon, radius, i, dx, dy)
				}
			}

			if bbox.South() >= lat || bbox.North() <= lat || bbox.West() >= lon || bbox.East() <= lon {
				t.Errorf("bbox %v does not contain (%v,%v)", bbox, lat, lon)
			}
		}
	}
}

func TestFallbackNearPole(t *testing.T) {
	t.Parallel()

	ring, bbox := FallbackRing(89.99, 0, 4)
	if bbox.North() > 90 {
		t.Errorf("north = %v, want clamped to 90", bbox.North())
	}
	for _, c := range ring {
		if math.IsInf(c[0], 0) || math.IsNaN(c[0]) {
			t.Fatalf("non-finite longitude %v", c[0])
		}
	}
}

func TestFallbackGeometryDecodes(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	b := Fallback("Kyiv", 50.45, 30.52, 4, now)

	if b.Geometry.Type != "Polygon" || !b.Geometry.IsArea() {
		t.Fatalf("geometry = %+v", b.Geometry)
	}
	var rings [][][2]float64
	if err := json.Unmarshal(b.Geometry.Coordinates, &rings); err != nil {
		t.Fatalf("coordinates: %v", err)
	}
	if len(rings) != 1 || len(rings[0]) != 5 {
		t.Fatalf("rings = %v", rings)
	}
	if rings[0][0][1] != b.BoundingBox.South() || rings[0][2][1] != b.BoundingBox.North() {
		t.Errorf("ring %v disagrees with bbox %v", rings[0], b.BoundingBox)
	}
	if !b.FetchedAt.Equal(now) {
		t.Errorf("FetchedAt = %v", b.FetchedAt)
	}
}

func TestResolveTimeoutFallsBack(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{fn: func(ctx context.Context, _ string) (Boundary, error) {
		<-ctx.Done()
		return Boundary{}, ctx.Err()
	}}
	cfg := testConfig()
	cfg.Timeout = 20 * time.Millisecond
	r := New(p, nil, cfg)

	start := time.Now()
	b := r.Resolve(context.Background(), "Khartoum", 15.5, 32.56)
	if !b.Fallback {
		t.Errorf("want fallback on timeout, got %+v", b)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("resolve took %v, timeout not applied", elapsed)
	}
}

func TestResolveHonorsCallerDeadline(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{fn: func(ctx context.Context, _ string) (Boundary, error) {
		<-ctx.Done()
		return Boundary{}, ctx.Err()
	}}
	cfg := testConfig()
	cfg.Timeout = time.Minute
	r := New(p, nil, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	if b := r.Resolve(ctx, "Caracas", 10.48, -66.9); !b.Fallback {
		t.Errorf("want fallback, got %+v", b)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("resolve took %v, caller deadline ignored", elapsed)
	}
}

func TestResolveCoalescesInFlight(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	p := &fakeProvider{fn: func(context.Context, string) (Boundary, error) {
		once.Do(func() { close(started) })
		<-release
		return Boundary{Geometry: berlinPolygon}, nil
	}}
	cfg := testConfig()
	cfg.Coalesce = true
	r := New(p, nil, cfg)

	const callers = 8
	results := make([]Boundary, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Resolve(context.Background(), "Taipei", 25.03, 121.56)
		}(i)
	}

	<-started
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := p.calls.Load(); got != 1 {
		t.Errorf("provider calls = %d, want 1", got)
	}
	for i, b := range results {
		if b.Fallback {
			t.Errorf("caller %d got fallback", i)
		}
	}
}

func TestResolveCoalescedCallersKeepOwnDeadlines(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	var once sync.Once
	p := &fakeProvider{fn: func(ctx context.Context, _ string) (Boundary, error) {
		once.Do(func() { close(started) })
		select {
		case <-time.After(200 * time.Millisecond):
			return Boundary{Geometry: berlinPolygon}, nil
		case <-ctx.Done():
			return Boundary{}, ctx.Err()
		}
	}}
	cfg := testConfig()
	cfg.Coalesce = true
	r := New(p, nil, cfg)

	short, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var shortResult, patientResult Boundary
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		shortResult = r.Resolve(short, "Nairobi", -1.29, 36.82)
	}()
	<-started
	go func() {
		defer wg.Done()
		patientResult = r.Resolve(context.Background(), "Nairobi", -1.29, 36.82)
	}()
	wg.Wait()

	if !shortResult.Fallback {
		t.Errorf("short caller: want fallback, got %+v", shortResult)
	}
	if patientResult.Fallback {
		t.Error("patient caller got fallback, want the provider polygon")
	}
	if got := p.calls.Load(); got != 1 {
		t.Errorf("provider calls = %d, want 1", got)
	}
	if _, ok := r.cache.Get(Key{Name: "Nairobi", Lat: -1.29, Lon: 36.82}); !ok {
		t.Error("shared lookup result not cached")
	}
}

func TestResolveWithoutCoalescingCallsPerCaller(t *testing.T) {
	t.Parallel()

	var inFlight sync.WaitGroup
	inFlight.Add(2)
	p := &fakeProvider{fn: func(context.Context, string) (Boundary, error) {
		inFlight.Done()
		inFlight.Wait()
		return Boundary{Geometry: berlinPolygon}, nil
	}}
	r := New(p, nil, testConfig())

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Resolve(context.Background(), "Manila", 14.6, 120.98)
		}()
	}
	wg.Wait()

	if got := p.calls.Load(); got != 2 {
		t.Errorf("provider calls = %d, want 2", got)
	}
}

func TestResolveRateLimited(t *testing.T) {
	t.Parallel()

	p := succeeding()
	cfg := testConfig()
	cfg.Timeout = 200 * time.Millisecond
	cfg.RequestsPerSecond = 0.001
	cfg.Burst = 1
	r := New(p, nil, cfg)

	if b := r.Resolve(context.Background(), "Dakar", 14.7, -17.47); b.Fallback {
		t.Fatalf("first call should use the burst token, got fallback")
	}
	if b := r.Resolve(context.Background(), "Bamako", 12.64, -8.0); !b.Fallback {
		t.Errorf("second call should be rate limited into fallback")
	}
	if got := p.calls.Load(); got != 1 {
		t.Errorf("provider calls = %d, want 1", got)
	}
}

func TestCircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	p := failing(errors.New("503 from upstream"))
	cfg := testConfig()
	cfg.Breaker = BreakerConfig{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, MinRequests: 1, FailureRatio: 0.5}
	r := New(p, nil, cfg)

	r.Resolve(context.Background(), "Sanaa", 15.37, 44.19)
	if r.BreakerState() != "open" {
		t.Fatalf("breaker state = %s, want open", r.BreakerState())
	}

	if b := r.Resolve(context.Background(), "Aden", 12.79, 45.03); !b.Fallback {
		t.Errorf("want fallback while open")
	}
	if got := p.calls.Load(); got != 1 {
		t.Errorf("provider calls = %d, want 1 (open breaker rejects)", got)
	}
}

func TestNotFoundDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	p := failing(fmt.Errorf("%w: nothing", ErrNotFound))
	cfg := testConfig()
	cfg.Breaker = BreakerConfig{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, MinRequests: 1, FailureRatio: 0.5}
	r := New(p, nil, cfg)

	for i := 0; i < 3; i++ {
		if b := r.Resolve(context.Background(), "Nowhere", 0, 0); !b.Fallback {
			t.Fatalf("want fallback for not found")
		}
	}
	if r.BreakerState() != "closed" {
		t.Errorf("breaker state = %s, want closed", r.BreakerState())
	}
	if got := p.calls.Load(); got != 3 {
		t.Errorf("provider calls = %d, want 3", got)
	}
}

func TestFetchResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{nil, "success"},
		{fmt.Errorf("x: %w", ErrNotFound), "not_found"},
		{fmt.Errorf("%w: %w", ErrRateLimited, context.DeadlineExceeded), "rate_limited"},
		{gobreaker.ErrOpenState, "circuit_open"},
		{gobreaker.ErrTooManyRequests, "circuit_open"},
		{fmt.Errorf("query: %w", context.DeadlineExceeded), "timeout"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		if got := fetchResult(tt.err); got != tt.want {
			t.Errorf("fetchResult(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestCacheBounded(t *testing.T) {
	t.Parallel()

	c := NewCache(1)
	b := Boundary{Geometry: berlinPolygon}

	if !c.Put(Key{Name: "a"}, b) {
		t.Fatal("first put should be stored")
	}
	if c.Put(Key{Name: "b"}, b) {
		t.Error("put past the bound should be skipped")
	}
	if c.Put(Key{Name: "c"}, Boundary{Fallback: true}) {
		t.Error("fallback boundaries must not be cached")
	}
	if s := c.Stats(); s.Entries != 1 || s.Skipped != 1 {
		t.Errorf("stats = %+v", s)
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	k := Key{Name: "Berlin", Lat: 52.52, Lon: -13.405}
	if got := k.String(); got != "Berlin|52.52|-13.405" {
		t.Errorf("Key.String() = %q", got)
	}
}

// Not parallel: asserts exact deltas on process-wide counters.
func TestResolveMetrics(t *testing.T) {
	hits := testutil.ToFloat64(metrics.BoundaryCacheHits)
	misses := testutil.ToFloat64(metrics.BoundaryCacheMisses)
	fallbacks := testutil.ToFloat64(metrics.BoundaryFallbacks)
	notFound := testutil.ToFloat64(metrics.BoundaryFetchTotal.WithLabelValues("not_found"))

	ok := New(succeeding(), nil, testConfig())
	ok.Resolve(context.Background(), "Quito", -0.18, -78.47)
	ok.Resolve(context.Background(), "Quito", -0.18, -78.47)

	missing := New(failing(ErrNotFound), nil, testConfig())
	missing.Resolve(context.Background(), "Atlantis", 0, 0)

	if d := testutil.ToFloat64(metrics.BoundaryCacheHits) - hits; d != 1 {
		t.Errorf("cache hits delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(metrics.BoundaryCacheMisses) - misses; d != 2 {
		t.Errorf("cache misses delta = %v, want 2", d)
	}
	if d := testutil.ToFloat64(metrics.BoundaryFallbacks) - fallbacks; d != 1 {
		t.Errorf("fallbacks delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(metrics.BoundaryFetchTotal.WithLabelValues("not_found")) - notFound; d != 1 {
		t.Errorf("not_found delta = %v, want 1", d)
	}
}
