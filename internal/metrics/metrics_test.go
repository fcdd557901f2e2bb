// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package metrics

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// sampleCount reads the observation count of a histogram.
func sampleCount(t *testing.T, m prometheus.Metric) uint64 {
	t.Helper()
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if out.GetHistogram() == nil {
		t.Fatal("metric is not a histogram")
	}
	return out.GetHistogram().GetSampleCount()
}

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name     string
		table    string
		err      error
		wantErrs float64
	}{
		{"successful select", "articles_ok", nil, 0},
		{"failed select", "articles_err", errors.New("connection refused"), 1},
		{
			"long error truncated",
			"articles_long",
			errors.New(strings.Repeat("x", 120)),
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordDBQuery("select", tt.table, 5*time.Millisecond, tt.err)

			if tt.err == nil {
				return
			}
			errType := tt.err.Error()
			if len(errType) > 50 {
				errType = errType[:50]
			}
			got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", tt.table, errType))
			if got != tt.wantErrs {
				t.Errorf("errors = %v, want %v", got, tt.wantErrs)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/geo/test", "200"))
	RecordAPIRequest("GET", "/geo/test", "200", 20*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/geo/test", "200"))

	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	var wg sync.WaitGroup
	before := testutil.ToFloat64(APIActiveRequests)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordAggregation(t *testing.T) {
	articles := testutil.ToFloat64(AggregationArticles)
	mentions := testutil.ToFloat64(AggregationMentions)

	RecordAggregation(3*time.Millisecond, 10, 4)

	if d := testutil.ToFloat64(AggregationArticles) - articles; d != 10 {
		t.Errorf("articles delta = %v, want 10", d)
	}
	if d := testutil.ToFloat64(AggregationMentions) - mentions; d != 4 {
		t.Errorf("mentions delta = %v, want 4", d)
	}
}

func TestRecordBoundaryFetch(t *testing.T) {
	before := testutil.ToFloat64(BoundaryFetchTotal.WithLabelValues("timeout"))
	RecordBoundaryFetch("timeout", 0)
	RecordBoundaryFetch("timeout", time.Second)

	if d := testutil.ToFloat64(BoundaryFetchTotal.WithLabelValues("timeout")) - before; d != 2 {
		t.Errorf("timeout delta = %v, want 2", d)
	}
}

func TestRecordTopologyLoadAndRender(t *testing.T) {
	errsBefore := testutil.ToFloat64(TopologyLoadErrors)
	RecordTopologyLoad(10*time.Millisecond, nil)
	RecordTopologyLoad(10*time.Millisecond, errors.New("boom"))
	if d := testutil.ToFloat64(TopologyLoadErrors) - errsBefore; d != 1 {
		t.Errorf("topology errors delta = %v, want 1", d)
	}

	okBefore := testutil.ToFloat64(MapRendersTotal.WithLabelValues("world", "success"))
	errBefore := testutil.ToFloat64(MapRendersTotal.WithLabelValues("world", "error"))
	RecordMapRender("world", nil)
	RecordMapRender("world", errors.New("no data"))
	if d := testutil.ToFloat64(MapRendersTotal.WithLabelValues("world", "success")) - okBefore; d != 1 {
		t.Errorf("success delta = %v", d)
	}
	if d := testutil.ToFloat64(MapRendersTotal.WithLabelValues("world", "error")) - errBefore; d != 1 {
		t.Errorf("error delta = %v", d)
	}
}

func TestHistogramsObserve(t *testing.T) {
	apiHist := APIRequestDuration.WithLabelValues("POST", "/geo/map/event").(prometheus.Metric)
	apiBefore := sampleCount(t, apiHist)
	RecordAPIRequest("POST", "/geo/map/event", "200", 15*time.Millisecond)
	if d := sampleCount(t, apiHist) - apiBefore; d != 1 {
		t.Errorf("api_request_duration_seconds samples delta = %d, want 1", d)
	}

	aggBefore := sampleCount(t, AggregationDuration)
	RecordAggregation(time.Millisecond, 0, 0)
	if d := sampleCount(t, AggregationDuration) - aggBefore; d != 1 {
		t.Errorf("aggregation_duration_seconds samples delta = %d, want 1", d)
	}

	// Zero-duration fetches (cache hits, breaker rejections) are counted
	// but not timed.
	fetchBefore := sampleCount(t, BoundaryFetchDuration)
	RecordBoundaryFetch("breaker_open", 0)
	if d := sampleCount(t, BoundaryFetchDuration) - fetchBefore; d != 0 {
		t.Errorf("boundary_fetch_duration_seconds samples delta = %d, want 0", d)
	}
}
