// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

// Package cache provides the in-memory data structures shared by the engine:
// a process-lifetime key/value Store and an Aho-Corasick pattern automaton.
package cache

import (
	"sync"
	"sync/atomic"
)

// Store is a thread-safe, write-once map that lives for the process lifetime.
//
// Entries are never expired or evicted. When MaxEntries is positive the store
// stops accepting new keys once full; those inserts are dropped and counted
// in Stats.Skipped so callers can alert on a saturated cache.
//
// Example:
//
//	s := cache.NewStore[Boundary](0)
//	s.Set("berlin|52.52|13.405", b)
//	if b, ok := s.Get("berlin|52.52|13.405"); ok {
//	    // use cached boundary
//	}
type Store[V any] struct {
	mu         sync.RWMutex
	entries    map[string]V
	maxEntries int

	hits    atomic.Int64
	misses  atomic.Int64
	skipped atomic.Int64
}

// Stats is a snapshot of store counters.
type Stats struct {
	Hits    int64
	Misses  int64
	Skipped int64
	Entries int
}

// NewStore creates an empty store. maxEntries <= 0 means unbounded.
func NewStore[V any](maxEntries int) *Store[V] {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &Store[V]{
		entries:    make(map[string]V),
		maxEntries: maxEntries,
	}
}

// Get returns the value stored under key.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()

	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return v, ok
}

// Set stores value under key and reports whether it was stored.
// An existing key keeps its first value: entries are never mutated.
func (s *Store[V]) Set(key string, value V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; exists {
		return true
	}
	if s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.skipped.Add(1)
		return false
	}
	s.entries[key] = value
	return true
}

// Len returns the number of stored entries.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stats returns a snapshot of the hit, miss and skipped counters.
func (s *Store[V]) Stats() Stats {
	return Stats{
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Skipped: s.skipped.Load(),
		Entries: s.Len(),
	}
}

// HitRate returns the hit rate as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}
	return float64(s.Hits) / float64(total) * 100.0
}
