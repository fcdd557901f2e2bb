// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestStoreBasicOperations(t *testing.T) {
	t.Parallel()

	s := NewStore[string](0)
	if _, ok := s.Get("k"); ok {
		t.Fatal("empty store should miss")
	}

	if !s.Set("k", "v1") {
		t.Fatal("Set should succeed on unbounded store")
	}
	v, ok := s.Get("k")
	if !ok || v != "v1" {
		t.Fatalf("Get = %q, %v", v, ok)
	}

	stats := s.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Entries != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.HitRate() != 50.0 {
		t.Errorf("HitRate = %v, want 50", stats.HitRate())
	}
}

func TestStoreNeverMutates(t *testing.T) {
	t.Parallel()

	s := NewStore[int](0)
	s.Set("k", 1)
	s.Set("k", 2)

	if v, _ := s.Get("k"); v != 1 {
		t.Errorf("value = %d, want first write 1", v)
	}
}

func TestStoreMaxEntries(t *testing.T) {
	t.Parallel()

	s := NewStore[int](2)
	s.Set("a", 1)
	s.Set("b", 2)
	if s.Set("c", 3) {
		t.Error("insert past bound should be skipped")
	}
	if _, ok := s.Get("c"); ok {
		t.Error("skipped key should not be stored")
	}
	if !s.Set("a", 9) {
		t.Error("existing key should report stored")
	}
	if got := s.Stats().Skipped; got != 1 {
		t.Errorf("Skipped = %d, want 1", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestStoreHitRateZero(t *testing.T) {
	t.Parallel()

	if NewStore[int](-5).Stats().HitRate() != 0 {
		t.Error("hit rate with no operations should be 0")
	}
}

func TestStoreConcurrency(t *testing.T) {
	t.Parallel()

	s := NewStore[int](0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%10)
			s.Set(key, n)
			s.Get(key)
		}(i)
	}
	wg.Wait()

	if s.Len() != 10 {
		t.Errorf("Len = %d, want 10", s.Len())
	}
}
