// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package cache

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// AhoCorasick finds every occurrence of a set of literal patterns in a text
// in O(n + m + z) time (text length, total pattern length, match count),
// instead of O(n * patterns) for one scan per pattern.
//
// Patterns are literals: no character has special meaning. The extractor
// loads every country name and alias into one automaton and scans each
// article once.
//
// Example:
//
//	ac := NewAhoCorasick()
//	ac.AddPattern("russia", "Russia")
//	ac.AddPattern("ukraine", "Ukraine")
//	ac.Build()
//
//	matches := ac.Search("nato warns russia over ukraine")
//	// Match{Pattern: "russia", Data: "Russia", Start: 11, End: 17}, ...
type AhoCorasick struct {
	mu            sync.RWMutex
	root          *acNode
	patterns      []Pattern
	built         bool
	caseSensitive bool
}

type acNode struct {
	children map[rune]*acNode
	failure  *acNode
	output   []int // pattern indices ending here, including via failure links
}

// Pattern is a literal with associated data.
type Pattern struct {
	Text string
	Data any
}

// Match is one occurrence of a pattern. Start and End are byte offsets into
// the searched text (End exclusive), so text[Start:End] is the matched span.
type Match struct {
	Pattern string
	Data    any
	Start   int
	End     int
}

// NewAhoCorasick creates a case-insensitive automaton.
func NewAhoCorasick() *AhoCorasick {
	return &AhoCorasick{root: newACNode()}
}

// NewAhoCorasickCaseSensitive creates a case-sensitive automaton.
func NewAhoCorasickCaseSensitive() *AhoCorasick {
	return &AhoCorasick{root: newACNode(), caseSensitive: true}
}

func newACNode() *acNode {
	return &acNode{children: make(map[rune]*acNode)}
}

// AddPattern adds a literal. Empty patterns are ignored.
// Adding after Build marks the automaton for rebuild.
func (ac *AhoCorasick) AddPattern(pattern string, data any) {
	if pattern == "" {
		return
	}

	ac.mu.Lock()
	defer ac.mu.Unlock()

	ac.built = false
	ac.patterns = append(ac.patterns, Pattern{Text: pattern, Data: data})
}

// Build constructs the trie and failure links. Must run before Search.
func (ac *AhoCorasick) Build() {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	if ac.built {
		return
	}

	ac.root = newACNode()
	for i, p := range ac.patterns {
		ac.insert(i, ac.fold(p.Text))
	}
	ac.buildFailureLinks()
	ac.built = true
}

func (ac *AhoCorasick) fold(s string) string {
	if ac.caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

func (ac *AhoCorasick) insert(index int, key string) {
	node := ac.root
	for _, ch := range key {
		next := node.children[ch]
		if next == nil {
			next = newACNode()
			node.children[ch] = next
		}
		node = next
	}
	node.output = append(node.output, index)
}

// buildFailureLinks walks the trie breadth-first, pointing each node at the
// longest proper suffix that is also a trie path.
func (ac *AhoCorasick) buildFailureLinks() {
	queue := make([]*acNode, 0, len(ac.root.children))
	for _, child := range ac.root.children {
		child.failure = ac.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = ac.root
				continue
			}
			child.failure = fail.children[ch]
			child.output = append(child.output, child.failure.output...)
		}
	}
}

// Search returns every match in text, ordered by End offset.
//
// In case-insensitive mode offsets refer to strings.ToLower(text). Callers
// that need offsets into their own string should fold it first and use a
// case-sensitive automaton, as the extractor does.
func (ac *AhoCorasick) Search(text string) []Match {
	ac.mu.RLock()
	defer ac.mu.RUnlock()

	if !ac.built || len(ac.patterns) == 0 {
		return nil
	}

	searchText := ac.fold(text)

	var matches []Match
	node := ac.root

	for i, ch := range searchText {
		for node != ac.root && node.children[ch] == nil {
			node = node.failure
		}
		next := node.children[ch]
		if next == nil {
			continue
		}
		node = next

		end := i + utf8.RuneLen(ch)
		for _, idx := range node.output {
			p := ac.patterns[idx]
			matches = append(matches, Match{
				Pattern: p.Text,
				Data:    p.Data,
				Start:   end - len(ac.fold(p.Text)),
				End:     end,
			})
		}
	}

	return matches
}
