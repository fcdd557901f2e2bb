// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

// Package extract finds country and region mentions in free text.
//
// Every canonical country name and alias from the gazetteer is a literal
// pattern. Patterns are loaded into two Aho-Corasick automata built once:
//
//   - folded: lower-cased, accent-free patterns matched against
//     gazetteer.Normalize(text)
//   - exact: upper-case acronyms (US, UK, UAE, ...) matched against
//     gazetteer.Clean(text), which keeps the original case
//
// A hit only counts when it sits on word boundaries: the rune before and
// the rune after the span must not be a letter or digit. "US" inside
// "BUSiness" or "versUS" is rejected by that check.
//
// Acronym hits are also dropped when every neighbouring word is itself
// upper-case and not an acronym, as in "JOIN US TODAY": shouted text carries
// no case signal. A shouted headline such as "US TROOPS LEAVE" therefore
// loses its acronym mention; spelled-out names still match.
//
// An Extractor is immutable after New and safe for concurrent use.
package extract

import (
	"sort"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/tomtom215/geoimpact/internal/cache"
	"github.com/tomtom215/geoimpact/internal/gazetteer"
)

type kind uint8

const (
	kindCountry kind = iota
	kindRegion
)

// target is the Data attached to every pattern.
type target struct {
	name string
	kind kind
}

// Extractor holds the compiled automata.
type Extractor struct {
	folded   *cache.AhoCorasick
	exact    *cache.AhoCorasick
	acronyms map[string]struct{}
}

// New builds an Extractor from the gazetteer tables.
func New() *Extractor {
	folded := cache.NewAhoCorasickCaseSensitive()
	exact := cache.NewAhoCorasickCaseSensitive()
	acronyms := make(map[string]struct{})

	for _, c := range gazetteer.Countries() {
		folded.AddPattern(gazetteer.Normalize(c.Name), target{name: c.Name, kind: kindCountry})
	}
	for _, a := range gazetteer.Aliases() {
		if !a.CaseSensitive {
			folded.AddPattern(gazetteer.Normalize(a.Alias), target{name: a.CanonicalName, kind: kindCountry})
		}
	}
	for _, a := range gazetteer.Acronyms() {
		exact.AddPattern(gazetteer.Clean(a.Alias), target{name: a.CanonicalName, kind: kindCountry})
		acronyms[gazetteer.Clean(a.Alias)] = struct{}{}
	}
	for _, r := range gazetteer.Regions() {
		folded.AddPattern(gazetteer.Normalize(r.Name), target{name: r.Name, kind: kindRegion})
	}
	for _, a := range gazetteer.RegionAliases() {
		t := target{name: a.CanonicalName, kind: kindRegion}
		if a.CaseSensitive {
			exact.AddPattern(gazetteer.Clean(a.Alias), t)
			acronyms[gazetteer.Clean(a.Alias)] = struct{}{}
			continue
		}
		folded.AddPattern(gazetteer.Normalize(a.Alias), t)
	}

	folded.Build()
	exact.Build()

	return &Extractor{folded: folded, exact: exact, acronyms: acronyms}
}

var (
	defaultOnce      sync.Once
	defaultExtractor *Extractor
)

// Default returns a process-wide Extractor, built on first use.
func Default() *Extractor {
	defaultOnce.Do(func() {
		defaultExtractor = New()
	})
	return defaultExtractor
}

// Extract returns the set of canonical country names mentioned in text.
// Empty text yields an empty, non-nil set.
func (e *Extractor) Extract(text string) map[string]struct{} {
	return e.scan(text, kindCountry)
}

// ExtractNames returns Extract's result as a sorted slice.
func (e *Extractor) ExtractNames(text string) []string {
	return sortedKeys(e.Extract(text))
}

// ExtractRegions returns the sorted names of regions mentioned in text.
// Regions are reported separately and never appear in Extract.
func (e *Extractor) ExtractRegions(text string) []string {
	return sortedKeys(e.scan(text, kindRegion))
}

func (e *Extractor) scan(text string, want kind) map[string]struct{} {
	found := make(map[string]struct{})
	if text == "" {
		return found
	}

	collect(found, e.folded, gazetteer.Normalize(text), want, onWordBoundary)
	collect(found, e.exact, gazetteer.Clean(text), want, func(text string, start, end int) bool {
		return onWordBoundary(text, start, end) && !e.shouted(text, start, end)
	})
	return found
}

func collect(found map[string]struct{}, ac *cache.AhoCorasick, text string, want kind, accept func(string, int, int) bool) {
	if text == "" {
		return
	}
	for _, m := range ac.Search(text) {
		t, ok := m.Data.(target)
		if !ok || t.kind != want {
			continue
		}
		if _, seen := found[t.name]; seen {
			continue
		}
		if accept(text, m.Start, m.End) {
			found[t.name] = struct{}{}
		}
	}
}

// onWordBoundary reports whether text[start:end] is not glued to a letter
// or digit on either side.
func onWordBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

// shouted reports whether the words around text[start:end] are all
// upper-case non-acronyms. A hit with no neighbours is never shouted.
func (e *Extractor) shouted(text string, start, end int) bool {
	neighbours := 0
	for _, w := range []string{wordBefore(text, start), wordAfter(text, end)} {
		if w == "" {
			continue
		}
		neighbours++
		if _, ok := e.acronyms[w]; ok || !isUpperWord(w) {
			return false
		}
	}
	return neighbours > 0
}

// wordBefore returns the nearest whole word ending before offset i.
func wordBefore(text string, i int) string {
	end := i
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:end])
		if isWordRune(r) {
			break
		}
		end -= size
	}
	start := end
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if !isWordRune(r) {
			break
		}
		start -= size
	}
	return text[start:end]
}

// wordAfter returns the nearest whole word starting at or after offset i.
func wordAfter(text string, i int) string {
	start := i
	for start < len(text) {
		r, size := utf8.DecodeRuneInString(text[start:])
		if isWordRune(r) {
			break
		}
		start += size
	}
	end := start
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !isWordRune(r) {
			break
		}
		end += size
	}
	return text[start:end]
}

// isUpperWord reports whether w has at least two letters and none of them
// lower-case.
func isUpperWord(w string) bool {
	letters := 0
	for _, r := range w {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= 2
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Extract runs the Default extractor.
func Extract(text string) map[string]struct{} {
	return Default().Extract(text)
}

// ExtractNames runs the Default extractor and returns sorted names.
func ExtractNames(text string) []string {
	return Default().ExtractNames(text)
}
