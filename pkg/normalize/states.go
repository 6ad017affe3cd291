// pkg/normalize/states.go
package normalize

// fullStateToCode maps every lowercase US state name (plus DC variants) to its
// two-letter postal code.
var fullStateToCode = map[string]string{
	"alabama":              "AL",
	"alaska":               "AK",
	"arizona":              "AZ",
	"arkansas":             "AR",
	"california":           "CA",
	"colorado":             "CO",
	"connecticut":          "CT",
	"delaware":             "DE",
	"florida":              "FL",
	"georgia":              "GA",
	"hawaii":               "HI",
	"idaho":                "ID",
	"illinois":             "IL",
	"indiana":              "IN",
	"iowa":                 "IA",
	"kansas":               "KS",
	"kentucky":             "KY",
	"louisiana":            "LA",
	"maine":                "ME",
	"maryland":             "MD",
	"massachusetts":        "MA",
	"michigan":             "MI",
	"minnesota":            "MN",
	"mississippi":          "MS",
	"missouri":             "MO",
	"montana":              "MT",
	"nebraska":             "NE",
	"nevada":               "NV",
	"new hampshire":        "NH",
	"new jersey":           "NJ",
	"new mexico":           "NM",
	"new york":             "NY",
	"north carolina":       "NC",
	"north dakota":         "ND",
	"ohio":                 "OH",
	"oklahoma":             "OK",
	"oregon":               "OR",
	"pennsylvania":         "PA",
	"rhode island":         "RI",
	"south carolina":       "SC",
	"south dakota":         "SD",
	"tennessee":            "TN",
	"texas":                "TX",
	"utah":                 "UT",
	"vermont":              "VT",
	"virginia":             "VA",
	"washington":           "WA",
	"west virginia":        "WV",
	"wisconsin":            "WI",
	"wyoming":              "WY",
	"district of columbia": "DC",
	"washington dc":        "DC",
	"dc":                   "DC",
}

// nicknameToCode maps common informal state spellings to postal codes.
// Lookup happens after punctuation stripping, so "d.c." arrives as "dc" and
// "north car." as "north car".
var nicknameToCode = map[string]string{
	"cali":       "CA",
	"calif":      "CA",
	"tex":        "TX",
	"mass":       "MA",
	"jersey":     "NJ",
	"okla":       "OK",
	"penna":      "PA",
	"north car":  "NC",
	"south car":  "SC",
	"n carolina": "NC",
	"s carolina": "SC",
	"n dakota":   "ND",
	"s dakota":   "SD",
	"wash dc":    "DC",
}

// knownStateCodes is the closed set of valid two-letter codes.
var knownStateCodes = func() map[string]struct{} {
	m := make(map[string]struct{}, len(fullStateToCode))
	for _, code := range fullStateToCode {
		m[code] = struct{}{}
	}
	return m
}()

// KnownStateCode reports whether v, uppercased, is a valid state code.
func KnownStateCode(v string) bool {
	_, ok := knownStateCodes[upper(v)]
	return ok
}
