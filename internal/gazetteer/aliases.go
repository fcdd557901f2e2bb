// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package gazetteer

// aliasTable maps alternative spellings, demonyms, short forms and former
// names to a canonical country name. Keys are matched after Normalize, so
// case and accents do not matter here.
//
// Words that are ordinary English or name something else ("us", "polish",
// "american", "indian") are left out.
var aliasTable = map[string]string{
	// Americas
	"united states of america": "United States",
	"u.s.":                     "United States",
	"u.s.a.":                   "United States",
	"mexican":                  "Mexico",
	"canadian":                 "Canada",
	"cuban":                    "Cuba",
	"haitian":                  "Haiti",
	"brazilian":                "Brazil",
	"brasil":                   "Brazil",
	"argentine":                "Argentina",
	"argentinian":              "Argentina",
	"venezuelan":               "Venezuela",
	"colombian":                "Colombia",
	"chilean":                  "Chile",
	"peruvian":                 "Peru",
	"bolivian":                 "Bolivia",
	"ecuadorian":               "Ecuador",
	"guatemalan":               "Guatemala",
	"nicaraguan":               "Nicaragua",
	"salvadoran":               "El Salvador",
	"honduran":                 "Honduras",
	"panamanian":               "Panama",
	"jamaican":                 "Jamaica",
	"malvinas":                 "Falkland Islands",
	"falklands":                "Falkland Islands",

	// Europe
	"britain":            "United Kingdom",
	"great britain":      "United Kingdom",
	"u.k.":               "United Kingdom",
	"british":            "United Kingdom",
	"england":            "United Kingdom",
	"scotland":           "United Kingdom",
	"wales":              "United Kingdom",
	"northern ireland":   "United Kingdom",
	"russian federation": "Russia",
	"russian":            "Russia",
	"russians":           "Russia",
	"ukrainian":          "Ukraine",
	"ukrainians":         "Ukraine",
	"german":             "Germany",
	"germans":            "Germany",
	"deutschland":        "Germany",
	"french":             "France",
	"italian":            "Italy",
	"spanish":            "Spain",
	"portuguese":         "Portugal",
	"irish":              "Ireland",
	"dutch":              "Netherlands",
	"holland":            "Netherlands",
	"belgian":            "Belgium",
	"swiss":              "Switzerland",
	"austrian":           "Austria",
	"swedish":            "Sweden",
	"norwegian":          "Norway",
	"danish":             "Denmark",
	"finnish":            "Finland",
	"icelandic":          "Iceland",
	"greek":              "Greece",
	"hellenic republic":  "Greece",
	"hungarian":          "Hungary",
	"romanian":           "Romania",
	"bulgarian":          "Bulgaria",
	"serbian":            "Serbia",
	"croatian":           "Croatia",
	"bosnia":             "Bosnia and Herzegovina",
	"bosnian":            "Bosnia and Herzegovina",
	"albanian":           "Albania",
	"kosovar":            "Kosovo",
	"czechia":            "Czech Republic",
	"czech":              "Czech Republic",
	"slovak":             "Slovakia",
	"slovenian":          "Slovenia",
	"estonian":           "Estonia",
	"latvian":            "Latvia",
	"lithuanian":         "Lithuania",
	"belarusian":         "Belarus",
	"byelorussia":        "Belarus",
	"moldovan":           "Moldova",
	"macedonia":          "North Macedonia",
	"macedonian":         "North Macedonia",
	"holy see":           "Vatican City",
	"vatican":            "Vatican City",

	// Middle East, Caucasus and Central Asia
	"turkiye":                  "Turkey",
	"turkish":                  "Turkey",
	"iranian":                  "Iran",
	"persia":                   "Iran",
	"islamic republic of iran": "Iran",
	"iraqi":                    "Iraq",
	"syrian":                   "Syria",
	"syrian arab republic":     "Syria",
	"israeli":                  "Israel",
	"israelis":                 "Israel",
	"palestinian":              "Palestine",
	"palestinians":             "Palestine",
	"state of palestine":       "Palestine",
	"gaza":                     "Palestine",
	"west bank":                "Palestine",
	"lebanese":                 "Lebanon",
	"jordanian":                "Jordan",
	"saudi":                    "Saudi Arabia",
	"yemeni":                   "Yemen",
	"qatari":                   "Qatar",
	"kuwaiti":                  "Kuwait",
	"omani":                    "Oman",
	"emirati":                  "United Arab Emirates",
	"emirates":                 "United Arab Emirates",
	"bahraini":                 "Bahrain",
	"georgian":                 "Georgia",
	"armenian":                 "Armenia",
	"azerbaijani":              "Azerbaijan",
	"azeri":                    "Azerbaijan",
	"kazakh":                   "Kazakhstan",
	"uzbek":                    "Uzbekistan",
	"kyrgyz":                   "Kyrgyzstan",
	"tajik":                    "Tajikistan",
	"turkmen":                  "Turkmenistan",
	"afghan":                   "Afghanistan",
	"cypriot":                  "Cyprus",

	// Asia and Oceania
	"chinese":                               "China",
	"people's republic of china":            "China",
	"mainland china":                        "China",
	"taiwanese":                             "Taiwan",
	"japanese":                              "Japan",
	"north korean":                          "North Korea",
	"democratic people's republic of korea": "North Korea",
	"south korean":                          "South Korea",
	"mongolian":                             "Mongolia",
	"pakistani":                             "Pakistan",
	"bangladeshi":                           "Bangladesh",
	"nepali":                                "Nepal",
	"nepalese":                              "Nepal",
	"sri lankan":                            "Sri Lanka",
	"ceylon":                                "Sri Lanka",
	"bhutanese":                             "Bhutan",
	"maldivian":                             "Maldives",
	"burma":                                 "Myanmar",
	"burmese":                               "Myanmar",
	"thai":                                  "Thailand",
	"siam":                                  "Thailand",
	"vietnamese":                            "Vietnam",
	"viet nam":                              "Vietnam",
	"cambodian":                             "Cambodia",
	"laotian":                               "Laos",
	"malaysian":                             "Malaysia",
	"singaporean":                           "Singapore",
	"indonesian":                            "Indonesia",
	"filipino":                              "Philippines",
	"philippine":                            "Philippines",
	"east timor":                            "Timor-Leste",
	"australian":                            "Australia",
	"new zealander":                         "New Zealand",
	"aotearoa":                              "New Zealand",
	"fijian":                                "Fiji",

	// Africa
	"egyptian":          "Egypt",
	"libyan":            "Libya",
	"tunisian":          "Tunisia",
	"algerian":          "Algeria",
	"moroccan":          "Morocco",
	"sudanese":          "Sudan",
	"south sudanese":    "South Sudan",
	"ethiopian":         "Ethiopia",
	"eritrean":          "Eritrea",
	"somali":            "Somalia",
	"kenyan":            "Kenya",
	"ugandan":           "Uganda",
	"tanzanian":         "Tanzania",
	"rwandan":           "Rwanda",
	"burundian":         "Burundi",
	"nigerian":          "Nigeria",
	"nigerien":          "Niger",
	"ghanaian":          "Ghana",
	"malian":            "Mali",
	"senegalese":        "Senegal",
	"cameroonian":       "Cameroon",
	"chadian":           "Chad",
	"angolan":           "Angola",
	"mozambican":        "Mozambique",
	"zimbabwean":        "Zimbabwe",
	"zambian":           "Zambia",
	"malawian":          "Malawi",
	"namibian":          "Namibia",
	"south african":     "South Africa",
	"congolese":         "Democratic Republic of the Congo",
	"congo-kinshasa":    "Democratic Republic of the Congo",
	"zaire":             "Democratic Republic of the Congo",
	"congo-brazzaville": "Republic of the Congo",
	"cote d'ivoire":     "Ivory Coast",
	"ivorian":           "Ivory Coast",
	"cape verde":        "Cabo Verde",
	"swaziland":         "Eswatini",
	"sahrawi":           "Western Sahara",
	"malagasy":          "Madagascar",
	"liberian":          "Liberia",
	"sierra leonean":    "Sierra Leone",
	"burkinabe":         "Burkina Faso",
	"mauritanian":       "Mauritania",
}

// acronymTable holds upper-case abbreviations. They are matched
// case-sensitively so the pronoun "us" or the "uk" in a URL never counts.
var acronymTable = map[string]string{
	"US":   "United States",
	"USA":  "United States",
	"UK":   "United Kingdom",
	"UAE":  "United Arab Emirates",
	"DRC":  "Democratic Republic of the Congo",
	"PRC":  "China",
	"ROK":  "South Korea",
	"DPRK": "North Korea",
}
