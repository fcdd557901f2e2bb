// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

// Package gazetteer holds the static place dictionary: canonical countries
// with their ISO 3166-1 codes, aliases, acronyms and regions.
//
// All tables are built once at package init and never mutated, so every
// function here is safe for concurrent use without locking.
//
// Lookups are case-insensitive and diacritic-tolerant:
//
//	gazetteer.ByName("SOUTH  africa")  // South Africa
//	gazetteer.Resolve("Côte d’Ivoire") // Ivory Coast, via alias
//	gazetteer.Resolve("4")             // Afghanistan, numeric "004"
package gazetteer

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Country is one canonical country. Numeric is empty when ISO assigns none.
type Country struct {
	Name    string `json:"name"`
	ISO2    string `json:"iso2"`
	ISO3    string `json:"iso3"`
	Numeric string `json:"numeric,omitempty"`
	Region  string `json:"region"`
}

// Region is a named group of countries. Members are ISO3 codes in a stable order.
type Region struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// Alias maps an alternative name to a canonical one. CaseSensitive aliases
// are upper-case acronyms that only match in that exact case.
type Alias struct {
	Alias         string `json:"alias"`
	CanonicalName string `json:"canonicalName"`
	CaseSensitive bool   `json:"caseSensitive,omitempty"`
}

var (
	byName    map[string]Country // Normalize(name) -> country
	byISO2    map[string]Country
	byISO3    map[string]Country
	byNumeric map[string]Country // zero-padded "004"
	byAlias   map[string]Country // Normalize(alias) -> country, acronyms included

	regions         map[string]Region // Normalize(name or alias) -> region
	regionsByMember map[string][]string

	aliases       []Alias
	regionAliases []Alias
)

//nolint:gochecknoinits // static tables are indexed once
func init() {
	byName = make(map[string]Country, len(countryTable))
	byISO2 = make(map[string]Country, len(countryTable))
	byISO3 = make(map[string]Country, len(countryTable))
	byNumeric = make(map[string]Country, len(countryTable))

	for _, c := range countryTable {
		byName[Normalize(c.Name)] = c
		byISO2[c.ISO2] = c
		byISO3[c.ISO3] = c
		if c.Numeric != "" {
			byNumeric[c.Numeric] = c
		}
	}

	byAlias = make(map[string]Country, len(aliasTable)+len(acronymTable))
	for alias, canonical := range aliasTable {
		addAlias(alias, canonical, false)
	}
	for acronym, canonical := range acronymTable {
		addAlias(acronym, canonical, true)
	}
	sortAliases(aliases)

	built := buildRegions()
	regions = make(map[string]Region, len(built))
	regionsByMember = make(map[string][]string)
	for name, members := range built {
		r := Region{Name: name, Members: members}
		regions[Normalize(name)] = r
		for _, iso3 := range members {
			regionsByMember[iso3] = append(regionsByMember[iso3], name)
		}
	}
	for _, names := range regionsByMember {
		sort.Strings(names)
	}

	for alias, name := range regionAliasTable {
		addRegionAlias(alias, name, false)
	}
	for acronym, name := range regionAcronymTable {
		addRegionAlias(acronym, name, true)
	}
	sortAliases(regionAliases)
}

// addAlias registers an alias unless it collides with a canonical name,
// in which case the country-name match wins and the alias is dropped.
func addAlias(alias, canonical string, caseSensitive bool) {
	key := Normalize(alias)
	if _, isName := byName[key]; isName {
		return
	}
	c, ok := byName[Normalize(canonical)]
	if !ok {
		return
	}
	if _, dup := byAlias[key]; !dup {
		byAlias[key] = c
	}
	aliases = append(aliases, Alias{Alias: alias, CanonicalName: c.Name, CaseSensitive: caseSensitive})
}

func addRegionAlias(alias, name string, caseSensitive bool) {
	key := Normalize(alias)
	if _, exists := regions[key]; exists {
		return
	}
	r, ok := regions[Normalize(name)]
	if !ok {
		return
	}
	regions[key] = r
	regionAliases = append(regionAliases, Alias{Alias: alias, CanonicalName: r.Name, CaseSensitive: caseSensitive})
}

func sortAliases(list []Alias) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CanonicalName != list[j].CanonicalName {
			return list[i].CanonicalName < list[j].CanonicalName
		}
		return list[i].Alias < list[j].Alias
	})
}

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// Clean strips diacritics, unifies apostrophes and collapses runs of
// whitespace to a single space. Case is preserved.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(apostrophes.Replace(stripped)), " ")
}

// Normalize returns the lookup key for s: Clean plus lower-casing.
// "  Côte  D’Ivoire " becomes "cote d'ivoire".
func Normalize(s string) string {
	return strings.ToLower(Clean(s))
}

// minorWords stay lower-case in display names unless they start the name.
var minorWords = map[string]bool{"and": true, "of": true, "the": true}

// DisplayName title-cases each word of name ("united states" becomes
// "United States"). Hyphenated parts are capitalized separately and the
// joining words "and", "of" and "the" stay lower-case after the first word.
func DisplayName(name string) string {
	words := strings.Fields(Normalize(name))
	for i, w := range words {
		if i > 0 && minorWords[w] {
			continue
		}
		parts := strings.Split(w, "-")
		for j, p := range parts {
			parts[j] = upperFirst(p)
		}
		words[i] = strings.Join(parts, "-")
	}
	return strings.Join(words, " ")
}

func upperFirst(s string) string {
	for i, r := range s {
		if i == 0 {
			return string(unicode.ToUpper(r)) + s[len(string(r)):]
		}
	}
	return s
}

// ByName looks up a country by canonical name.
func ByName(name string) (Country, bool) {
	c, ok := byName[Normalize(name)]
	return c, ok
}

// ByISO2 looks up a country by alpha-2 code, case-insensitively.
func ByISO2(code string) (Country, bool) {
	c, ok := byISO2[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// ByISO3 looks up a country by alpha-3 code, case-insensitively.
func ByISO3(code string) (Country, bool) {
	c, ok := byISO3[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// ByNumeric looks up a country by ISO numeric code. Zero padding is
// optional: "4", "04" and "004" all find Afghanistan.
func ByNumeric(code string) (Country, bool) {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > 3 {
		return Country{}, false
	}
	n, err := strconv.Atoi(code)
	if err != nil || n < 0 {
		return Country{}, false
	}
	key := strconv.Itoa(n)
	for len(key) < 3 {
		key = "0" + key
	}
	c, ok := byNumeric[key]
	return c, ok
}

// ByAlias looks up a country by alias or acronym, case-insensitively.
func ByAlias(alias string) (Country, bool) {
	c, ok := byAlias[Normalize(alias)]
	return c, ok
}

// Resolve maps any identifier to a canonical country. Order: canonical
// name, ISO3, ISO2, numeric code, alias. The first hit wins.
func Resolve(identifier string) (Country, bool) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return Country{}, false
	}
	if c, ok := ByName(id); ok {
		return c, true
	}
	if len(id) == 3 {
		if c, ok := ByISO3(id); ok {
			return c, true
		}
	}
	if len(id) == 2 {
		if c, ok := ByISO2(id); ok {
			return c, true
		}
	}
	if c, ok := ByNumeric(id); ok {
		return c, true
	}
	return ByAlias(id)
}

// ISO2ToISO3 converts an alpha-2 code. It returns "" when unknown.
func ISO2ToISO3(code string) string {
	if c, ok := ByISO2(code); ok {
		return c.ISO3
	}
	return ""
}

// GetRegion looks up a region by name or region alias.
func GetRegion(name string) (Region, bool) {
	r, ok := regions[Normalize(name)]
	if !ok {
		return Region{}, false
	}
	return Region{Name: r.Name, Members: append([]string(nil), r.Members...)}, true
}

// RegionsOf returns the sorted names of every region containing iso3.
func RegionsOf(iso3 string) []string {
	names := regionsByMember[strings.ToUpper(strings.TrimSpace(iso3))]
	return append([]string(nil), names...)
}

// Countries returns every canonical country sorted by name.
func Countries() []Country {
	out := make([]Country, len(countryTable))
	copy(out, countryTable)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Regions returns every region sorted by name.
func Regions() []Region {
	seen := make(map[string]bool, len(regions))
	out := make([]Region, 0, len(regions))
	for _, r := range regions {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		out = append(out, Region{Name: r.Name, Members: append([]string(nil), r.Members...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Aliases returns the country aliases, acronyms included, in a stable order.
func Aliases() []Alias {
	return append([]Alias(nil), aliases...)
}

// RegionAliases returns the region aliases in a stable order.
func RegionAliases() []Alias {
	return append([]Alias(nil), regionAliases...)
}

// Acronyms returns only the case-sensitive country aliases.
func Acronyms() []Alias {
	var out []Alias
	for _, a := range aliases {
		if a.CaseSensitive {
			out = append(out, a)
		}
	}
	return out
}
