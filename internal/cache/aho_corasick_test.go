// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package cache

import (
	"sync"
	"testing"
)

func found(ac *AhoCorasick, text string) bool {
	return len(ac.Search(text)) > 0
}

func TestAhoCorasick_OverlappingPatterns(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	ac.AddPattern("he", nil)
	ac.AddPattern("she", nil)
	ac.AddPattern("his", nil)
	ac.AddPattern("hers", nil)
	ac.Build()

	matches := ac.Search("ushers")

	want := map[string][2]int{
		"she":  {1, 4},
		"he":   {2, 4},
		"hers": {2, 6},
	}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d: %+v", len(matches), len(want), matches)
	}
	for _, m := range matches {
		span, ok := want[m.Pattern]
		if !ok {
			t.Errorf("unexpected match %q", m.Pattern)
			continue
		}
		if m.Start != span[0] || m.End != span[1] {
			t.Errorf("%q at [%d,%d), want [%d,%d)", m.Pattern, m.Start, m.End, span[0], span[1])
		}
	}
}

func TestAhoCorasick_CaseInsensitive(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	ac.AddPattern("Russia", "RUS")
	ac.Build()

	for _, text := range []string{"russia", "RUSSIA", "RuSsIa"} {
		matches := ac.Search(text)
		if len(matches) != 1 {
			t.Errorf("Search(%q) = %d matches, want 1", text, len(matches))
			continue
		}
		if matches[0].Data != "RUS" {
			t.Errorf("Data = %v, want RUS", matches[0].Data)
		}
	}
}

func TestAhoCorasick_CaseSensitive(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasickCaseSensitive()
	ac.AddPattern("US", nil)
	ac.Build()

	if !found(ac, "the US said") {
		t.Error("expected match on upper-case US")
	}
	if found(ac, "tell us more") {
		t.Error("lower-case us must not match")
	}
}

func TestAhoCorasick_MultiByteOffsets(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasickCaseSensitive()
	ac.AddPattern("côte", nil)
	ac.Build()

	text := "la côte"
	matches := ac.Search(text)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if got := text[matches[0].Start:matches[0].End]; got != "côte" {
		t.Errorf("span = %q, want côte", got)
	}
}

func TestAhoCorasick_LiteralMetacharacters(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	ac.AddPattern("u.s.", nil)
	ac.Build()

	if found(ac, "uxsx") {
		t.Error("dot must not act as a wildcard")
	}
	if !found(ac, "the u.s. said") {
		t.Error("expected literal match")
	}
}

func TestAhoCorasick_EmptyAndUnbuilt(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	ac.AddPattern("", nil)
	ac.Build()
	if found(ac, "anything") {
		t.Error("empty pattern should be ignored")
	}

	ac.AddPattern("peru", nil)
	if ac.Search("peru") != nil {
		t.Error("unbuilt automaton should return nil")
	}

	ac.Build()
	if len(ac.Search("")) != 0 {
		t.Error("empty text should have no matches")
	}

	ac.AddPattern("chile", nil)
	ac.Build()
	if !found(ac, "chile and peru") {
		t.Error("rebuilt automaton should include new pattern")
	}
}

func TestAhoCorasick_ConcurrentSearch(t *testing.T) {
	t.Parallel()

	ac := NewAhoCorasick()
	for _, p := range []string{"kenya", "uganda", "tanzania"} {
		ac.AddPattern(p, "east africa")
	}
	ac.Build()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if n := len(ac.Search("kenya, uganda and tanzania")); n != 3 {
				t.Errorf("got %d matches, want 3", n)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkAhoCorasick_Search(b *testing.B) {
	ac := NewAhoCorasick()
	for _, p := range []string{"russia", "ukraine", "united states", "china", "india", "brazil"} {
		ac.AddPattern(p, nil)
	}
	ac.Build()
	text := "officials in the united states and china discussed sanctions on russia after talks in brazil"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ac.Search(text)
	}
}
