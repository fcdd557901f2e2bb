// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestArticleText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		article Article
		want    string
	}{
		{
			name:    "all fields",
			article: Article{Title: "Kenya votes", AltTitle: "Election", Description: "Turnout high", Category: "Politics"},
			want:    "Kenya votes Election Turnout high Politics",
		},
		{
			name:    "optional fields missing",
			article: Article{Title: "Kenya votes", Category: "Politics"},
			want:    "Kenya votes Politics",
		},
		{
			name:    "whitespace only fields skipped",
			article: Article{Title: "  Peru  ", Description: "   "},
			want:    "Peru",
		},
		{
			name:    "empty",
			article: Article{},
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.article.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActivityResponseJSONShape(t *testing.T) {
	t.Parallel()

	resp := ActivityResponse{
		Hours:         24,
		TotalArticles: 2,
		CountryCounts: map[string]int{"Russia": 2},
		GeneratedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"hours", "totalArticles", "countryCounts", "generatedAt"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
}
