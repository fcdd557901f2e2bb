// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package gazetteer

// Continent names used as Country.Region and as top-level regions.
const (
	Africa       = "Africa"
	Asia         = "Asia"
	Europe       = "Europe"
	NorthAmerica = "North America"
	SouthAmerica = "South America"
	Oceania      = "Oceania"
	Antarctica   = "Antarctica"
)

// countryTable is the canonical country list. Numeric is the ISO 3166-1
// numeric code, which is also the feature id used by the world-atlas
// TopoJSON files. Kosovo has no numeric code.
var countryTable = []Country{
	// Africa
	{"Algeria", "DZ", "DZA", "012", Africa},
	{"Angola", "AO", "AGO", "024", Africa},
	{"Benin", "BJ", "BEN", "204", Africa},
	{"Botswana", "BW", "BWA", "072", Africa},
	{"Burkina Faso", "BF", "BFA", "854", Africa},
	{"Burundi", "BI", "BDI", "108", Africa},
	{"Cabo Verde", "CV", "CPV", "132", Africa},
	{"Cameroon", "CM", "CMR", "120", Africa},
	{"Central African Republic", "CF", "CAF", "140", Africa},
	{"Chad", "TD", "TCD", "148", Africa},
	{"Comoros", "KM", "COM", "174", Africa},
	{"Republic of the Congo", "CG", "COG", "178", Africa},
	{"Democratic Republic of the Congo", "CD", "COD", "180", Africa},
	{"Djibouti", "DJ", "DJI", "262", Africa},
	{"Egypt", "EG", "EGY", "818", Africa},
	{"Equatorial Guinea", "GQ", "GNQ", "226", Africa},
	{"Eritrea", "ER", "ERI", "232", Africa},
	{"Eswatini", "SZ", "SWZ", "748", Africa},
	{"Ethiopia", "ET", "ETH", "231", Africa},
	{"Gabon", "GA", "GAB", "266", Africa},
	{"Gambia", "GM", "GMB", "270", Africa},
	{"Ghana", "GH", "GHA", "288", Africa},
	{"Guinea", "GN", "GIN", "324", Africa},
	{"Guinea-Bissau", "GW", "GNB", "624", Africa},
	{"Ivory Coast", "CI", "CIV", "384", Africa},
	{"Kenya", "KE", "KEN", "404", Africa},
	{"Lesotho", "LS", "LSO", "426", Africa},
	{"Liberia", "LR", "LBR", "430", Africa},
	{"Libya", "LY", "LBY", "434", Africa},
	{"Madagascar", "MG", "MDG", "450", Africa},
	{"Malawi", "MW", "MWI", "454", Africa},
	{"Mali", "ML", "MLI", "466", Africa},
	{"Mauritania", "MR", "MRT", "478", Africa},
	{"Mauritius", "MU", "MUS", "480", Africa},
	{"Morocco", "MA", "MAR", "504", Africa},
	{"Mozambique", "MZ", "MOZ", "508", Africa},
	{"Namibia", "NA", "NAM", "516", Africa},
	{"Niger", "NE", "NER", "562", Africa},
	{"Nigeria", "NG", "NGA", "566", Africa},
	{"Rwanda", "RW", "RWA", "646", Africa},
	{"Sao Tome and Principe", "ST", "STP", "678", Africa},
	{"Senegal", "SN", "SEN", "686", Africa},
	{"Seychelles", "SC", "SYC", "690", Africa},
	{"Sierra Leone", "SL", "SLE", "694", Africa},
	{"Somalia", "SO", "SOM", "706", Africa},
	{"South Africa", "ZA", "ZAF", "710", Africa},
	{"South Sudan", "SS", "SSD", "728", Africa},
	{"Sudan", "SD", "SDN", "729", Africa},
	{"Tanzania", "TZ", "TZA", "834", Africa},
	{"Togo", "TG", "TGO", "768", Africa},
	{"Tunisia", "TN", "TUN", "788", Africa},
	{"Uganda", "UG", "UGA", "800", Africa},
	{"Western Sahara", "EH", "ESH", "732", Africa},
	{"Zambia", "ZM", "ZMB", "894", Africa},
	{"Zimbabwe", "ZW", "ZWE", "716", Africa},

	// Asia
	{"Afghanistan", "AF", "AFG", "004", Asia},
	{"Armenia", "AM", "ARM", "051", Asia},
	{"Azerbaijan", "AZ", "AZE", "031", Asia},
	{"Bahrain", "BH", "BHR", "048", Asia},
	{"Bangladesh", "BD", "BGD", "050", Asia},
	{"Bhutan", "BT", "BTN", "064", Asia},
	{"Brunei", "BN", "BRN", "096", Asia},
	{"Cambodia", "KH", "KHM", "116", Asia},
	{"China", "CN", "CHN", "156", Asia},
	{"Cyprus", "CY", "CYP", "196", Asia},
	{"Georgia", "GE", "GEO", "268", Asia},
	{"India", "IN", "IND", "356", Asia},
	{"Indonesia", "ID", "IDN", "360", Asia},
	{"Iran", "IR", "IRN", "364", Asia},
	{"Iraq", "IQ", "IRQ", "368", Asia},
	{"Israel", "IL", "ISR", "376", Asia},
	{"Japan", "JP", "JPN", "392", Asia},
	{"Jordan", "JO", "JOR", "400", Asia},
	{"Kazakhstan", "KZ", "KAZ", "398", Asia},
	{"Kuwait", "KW", "KWT", "414", Asia},
	{"Kyrgyzstan", "KG", "KGZ", "417", Asia},
	{"Laos", "LA", "LAO", "418", Asia},
	{"Lebanon", "LB", "LBN", "422", Asia},
	{"Malaysia", "MY", "MYS", "458", Asia},
	{"Maldives", "MV", "MDV", "462", Asia},
	{"Mongolia", "MN", "MNG", "496", Asia},
	{"Myanmar", "MM", "MMR", "104", Asia},
	{"Nepal", "NP", "NPL", "524", Asia},
	{"North Korea", "KP", "PRK", "408", Asia},
	{"Oman", "OM", "OMN", "512", Asia},
	{"Pakistan", "PK", "PAK", "586", Asia},
	{"Palestine", "PS", "PSE", "275", Asia},
	{"Philippines", "PH", "PHL", "608", Asia},
	{"Qatar", "QA", "QAT", "634", Asia},
	{"Saudi Arabia", "SA", "SAU", "682", Asia},
	{"Singapore", "SG", "SGP", "702", Asia},
	{"South Korea", "KR", "KOR", "410", Asia},
	{"Sri Lanka", "LK", "LKA", "144", Asia},
	{"Syria", "SY", "SYR", "760", Asia},
	{"Taiwan", "TW", "TWN", "158", Asia},
	{"Tajikistan", "TJ", "TJK", "762", Asia},
	{"Thailand", "TH", "THA", "764", Asia},
	{"Timor-Leste", "TL", "TLS", "626", Asia},
	{"Turkey", "TR", "TUR", "792", Asia},
	{"Turkmenistan", "TM", "TKM", "795", Asia},
	{"United Arab Emirates", "AE", "ARE", "784", Asia},
	{"Uzbekistan", "UZ", "UZB", "860", Asia},
	{"Vietnam", "VN", "VNM", "704", Asia},
	{"Yemen", "YE", "YEM", "887", Asia},

	// Europe
	{"Albania", "AL", "ALB", "008", Europe},
	{"Andorra", "AD", "AND", "020", Europe},
	{"Austria", "AT", "AUT", "040", Europe},
	{"Belarus", "BY", "BLR", "112", Europe},
	{"Belgium", "BE", "BEL", "056", Europe},
	{"Bosnia and Herzegovina", "BA", "BIH", "070", Europe},
	{"Bulgaria", "BG", "BGR", "100", Europe},
	{"Croatia", "HR", "HRV", "191", Europe},
	{"Czech Republic", "CZ", "CZE", "203", Europe},
	{"Denmark", "DK", "DNK", "208", Europe},
	{"Estonia", "EE", "EST", "233", Europe},
	{"Finland", "FI", "FIN", "246", Europe},
	{"France", "FR", "FRA", "250", Europe},
	{"Germany", "DE", "DEU", "276", Europe},
	{"Greece", "GR", "GRC", "300", Europe},
	{"Hungary", "HU", "HUN", "348", Europe},
	{"Iceland", "IS", "ISL", "352", Europe},
	{"Ireland", "IE", "IRL", "372", Europe},
	{"Italy", "IT", "ITA", "380", Europe},
	{"Kosovo", "XK", "XKX", "", Europe},
	{"Latvia", "LV", "LVA", "428", Europe},
	{"Liechtenstein", "LI", "LIE", "438", Europe},
	{"Lithuania", "LT", "LTU", "440", Europe},
	{"Luxembourg", "LU", "LUX", "442", Europe},
	{"Malta", "MT", "MLT", "470", Europe},
	{"Moldova", "MD", "MDA", "498", Europe},
	{"Monaco", "MC", "MCO", "492", Europe},
	{"Montenegro", "ME", "MNE", "499", Europe},
	{"Netherlands", "NL", "NLD", "528", Europe},
	{"North Macedonia", "MK", "MKD", "807", Europe},
	{"Norway", "NO", "NOR", "578", Europe},
	{"Poland", "PL", "POL", "616", Europe},
	{"Portugal", "PT", "PRT", "620", Europe},
	{"Romania", "RO", "ROU", "642", Europe},
	{"Russia", "RU", "RUS", "643", Europe},
	{"San Marino", "SM", "SMR", "674", Europe},
	{"Serbia", "RS", "SRB", "688", Europe},
	{"Slovakia", "SK", "SVK", "703", Europe},
	{"Slovenia", "SI", "SVN", "705", Europe},
	{"Spain", "ES", "ESP", "724", Europe},
	{"Sweden", "SE", "SWE", "752", Europe},
	{"Switzerland", "CH", "CHE", "756", Europe},
	{"Ukraine", "UA", "UKR", "804", Europe},
	{"United Kingdom", "GB", "GBR", "826", Europe},
	{"Vatican City", "VA", "VAT", "336", Europe},

	// North America, Central America and the Caribbean
	{"Antigua and Barbuda", "AG", "ATG", "028", NorthAmerica},
	{"Bahamas", "BS", "BHS", "044", NorthAmerica},
	{"Barbados", "BB", "BRB", "052", NorthAmerica},
	{"Belize", "BZ", "BLZ", "084", NorthAmerica},
	{"Canada", "CA", "CAN", "124", NorthAmerica},
	{"Costa Rica", "CR", "CRI", "188", NorthAmerica},
	{"Cuba", "CU", "CUB", "192", NorthAmerica},
	{"Dominica", "DM", "DMA", "212", NorthAmerica},
	{"Dominican Republic", "DO", "DOM", "214", NorthAmerica},
	{"El Salvador", "SV", "SLV", "222", NorthAmerica},
	{"Greenland", "GL", "GRL", "304", NorthAmerica},
	{"Grenada", "GD", "GRD", "308", NorthAmerica},
	{"Guatemala", "GT", "GTM", "320", NorthAmerica},
	{"Haiti", "HT", "HTI", "332", NorthAmerica},
	{"Honduras", "HN", "HND", "340", NorthAmerica},
	{"Jamaica", "JM", "JAM", "388", NorthAmerica},
	{"Mexico", "MX", "MEX", "484", NorthAmerica},
	{"Nicaragua", "NI", "NIC", "558", NorthAmerica},
	{"Panama", "PA", "PAN", "591", NorthAmerica},
	{"Puerto Rico", "PR", "PRI", "630", NorthAmerica},
	{"Saint Kitts and Nevis", "KN", "KNA", "659", NorthAmerica},
	{"Saint Lucia", "LC", "LCA", "662", NorthAmerica},
	{"Saint Vincent and the Grenadines", "VC", "VCT", "670", NorthAmerica},
	{"Trinidad and Tobago", "TT", "TTO", "780", NorthAmerica},
	{"United States", "US", "USA", "840", NorthAmerica},

	// South America
	{"Argentina", "AR", "ARG", "032", SouthAmerica},
	{"Bolivia", "BO", "BOL", "068", SouthAmerica},
	{"Brazil", "BR", "BRA", "076", SouthAmerica},
	{"Chile", "CL", "CHL", "152", SouthAmerica},
	{"Colombia", "CO", "COL", "170", SouthAmerica},
	{"Ecuador", "EC", "ECU", "218", SouthAmerica},
	{"Falkland Islands", "FK", "FLK", "238", SouthAmerica},
	{"Guyana", "GY", "GUY", "328", SouthAmerica},
	{"Paraguay", "PY", "PRY", "600", SouthAmerica},
	{"Peru", "PE", "PER", "604", SouthAmerica},
	{"Suriname", "SR", "SUR", "740", SouthAmerica},
	{"Uruguay", "UY", "URY", "858", SouthAmerica},
	{"Venezuela", "VE", "VEN", "862", SouthAmerica},

	// Oceania
	{"Australia", "AU", "AUS", "036", Oceania},
	{"Fiji", "FJ", "FJI", "242", Oceania},
	{"Kiribati", "KI", "KIR", "296", Oceania},
	{"Marshall Islands", "MH", "MHL", "584", Oceania},
	{"Micronesia", "FM", "FSM", "583", Oceania},
	{"Nauru", "NR", "NRU", "520", Oceania},
	{"New Caledonia", "NC", "NCL", "540", Oceania},
	{"New Zealand", "NZ", "NZL", "554", Oceania},
	{"Palau", "PW", "PLW", "585", Oceania},
	{"Papua New Guinea", "PG", "PNG", "598", Oceania},
	{"Samoa", "WS", "WSM", "882", Oceania},
	{"Solomon Islands", "SB", "SLB", "090", Oceania},
	{"Tonga", "TO", "TON", "776", Oceania},
	{"Tuvalu", "TV", "TUV", "798", Oceania},
	{"Vanuatu", "VU", "VUT", "548", Oceania},

	// Antarctica
	{"Antarctica", "AQ", "ATA", "010", Antarctica},
	{"French Southern Territories", "TF", "ATF", "260", Antarctica},
}
