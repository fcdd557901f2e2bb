// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package gazetteer

// Sub-region names. Continents are listed in countries.go.
const (
	WesternEurope    = "Western Europe"
	EasternEurope    = "Eastern Europe"
	Balkans          = "Balkans"
	BalticStates     = "Baltic States"
	NordicCountries  = "Nordic Countries"
	EuropeanUnion    = "European Union"
	MiddleEast       = "Middle East"
	GulfStates       = "Gulf States"
	NorthAfrica      = "North Africa"
	SubSaharanAfrica = "Sub-Saharan Africa"
	Sahel            = "Sahel"
	HornOfAfrica     = "Horn of Africa"
	SouthAsia        = "South Asia"
	SoutheastAsia    = "Southeast Asia"
	EastAsia         = "East Asia"
	CentralAsia      = "Central Asia"
	CentralAmerica   = "Central America"
	Caribbean        = "Caribbean"
	LatinAmerica     = "Latin America"
)

// subRegionTable lists explicit members. Continents and the two derived
// regions (Sub-Saharan Africa, Latin America) are computed in buildRegions.
var subRegionTable = map[string][]string{
	WesternEurope:   {"GBR", "IRL", "FRA", "BEL", "NLD", "LUX", "DEU", "AUT", "CHE", "LIE", "MCO", "AND", "ESP", "PRT", "ITA"},
	EasternEurope:   {"POL", "CZE", "SVK", "HUN", "ROU", "BGR", "MDA", "UKR", "BLR", "RUS"},
	Balkans:         {"SVN", "HRV", "BIH", "SRB", "MNE", "XKX", "MKD", "ALB", "BGR", "GRC"},
	BalticStates:    {"EST", "LVA", "LTU"},
	NordicCountries: {"DNK", "FIN", "ISL", "NOR", "SWE"},
	EuropeanUnion: {
		"AUT", "BEL", "BGR", "HRV", "CYP", "CZE", "DNK", "EST", "FIN",
		"FRA", "DEU", "GRC", "HUN", "IRL", "ITA", "LVA", "LTU", "LUX",
		"MLT", "NLD", "POL", "PRT", "ROU", "SVK", "SVN", "ESP", "SWE",
	},
	MiddleEast: {
		"BHR", "CYP", "EGY", "IRN", "IRQ", "ISR", "JOR", "KWT", "LBN",
		"OMN", "PSE", "QAT", "SAU", "SYR", "TUR", "ARE", "YEM",
	},
	GulfStates:     {"BHR", "KWT", "OMN", "QAT", "SAU", "ARE"},
	NorthAfrica:    {"DZA", "EGY", "LBY", "MAR", "SDN", "TUN", "ESH"},
	Sahel:          {"MRT", "SEN", "MLI", "BFA", "NER", "TCD", "SDN"},
	HornOfAfrica:   {"DJI", "ERI", "ETH", "SOM"},
	SouthAsia:      {"AFG", "BGD", "BTN", "IND", "MDV", "NPL", "PAK", "LKA"},
	SoutheastAsia:  {"BRN", "KHM", "IDN", "LAO", "MYS", "MMR", "PHL", "SGP", "THA", "TLS", "VNM"},
	EastAsia:       {"CHN", "JPN", "MNG", "PRK", "KOR", "TWN"},
	CentralAsia:    {"KAZ", "KGZ", "TJK", "TKM", "UZB"},
	CentralAmerica: {"BLZ", "CRI", "SLV", "GTM", "HND", "NIC", "PAN"},
	Caribbean:      {"ATG", "BHS", "BRB", "CUB", "DMA", "DOM", "GRD", "HTI", "JAM", "KNA", "LCA", "VCT", "TTO", "PRI"},
}

// regionAliasTable maps alternative region names, matched after Normalize.
var regionAliasTable = map[string]string{
	"mideast":           "Middle East",
	"mid-east":          "Middle East",
	"persian gulf":      "Gulf States",
	"scandinavia":       "Nordic Countries",
	"the baltics":       "Baltic States",
	"south-east asia":   "Southeast Asia",
	"southeast asian":   "Southeast Asia",
	"sub-saharan":       "Sub-Saharan Africa",
	"subsaharan africa": "Sub-Saharan Africa",
	"latam":             "Latin America",
}

// regionAcronymTable is matched case-sensitively, like acronymTable.
var regionAcronymTable = map[string]string{
	"EU": EuropeanUnion,
}

// buildRegions assembles continents and derived regions from the country
// table and copies the explicit sub-regions. Member order follows the
// source list, so output is deterministic.
func buildRegions() map[string][]string {
	out := make(map[string][]string, len(subRegionTable)+9)

	for _, c := range countryTable {
		out[c.Region] = append(out[c.Region], c.ISO3)
	}

	for name, members := range subRegionTable {
		out[name] = append([]string(nil), members...)
	}

	north := make(map[string]bool, len(subRegionTable[NorthAfrica]))
	for _, iso3 := range subRegionTable[NorthAfrica] {
		north[iso3] = true
	}
	for _, iso3 := range out[Africa] {
		if !north[iso3] {
			out[SubSaharanAfrica] = append(out[SubSaharanAfrica], iso3)
		}
	}

	latin := []string{"MEX"}
	latin = append(latin, subRegionTable[CentralAmerica]...)
	latin = append(latin, "CUB", "DOM", "HTI", "PRI")
	for _, iso3 := range out[SouthAmerica] {
		if iso3 != "FLK" {
			latin = append(latin, iso3)
		}
	}
	out[LatinAmerica] = latin

	return out
}
