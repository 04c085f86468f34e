package gpx

import "strings"

const (
	SymbolBuoyRedYellow   = "Buoy, Red/Yellow"
	SymbolBuoyGreenYellow = "Buoy, Green/Yellow"
	SymbolBuoyYellow      = "Buoy, Yellow"
	SymbolBuoyRed         = "Buoy, Red"
	SymbolBuoyGreen       = "Buoy, Green"
	SymbolPost            = "Post"
	SymbolWaypoint        = "Waypoint"
)

type symbolRule struct {
	pattern string
	symbol  string
}

// Order matters: the two-colour patterns must be tested before the single colours.
var symbolRules = []symbolRule{
	{"yellow_red", SymbolBuoyRedYellow},
	{"yellow_green", SymbolBuoyGreenYellow},
	{"buoy_yellow", SymbolBuoyYellow},
	{"buoy_red", SymbolBuoyRed},
	{"buoy_green", SymbolBuoyGreen},
	{"post", SymbolPost},
}

// ClassifySymbol maps an icon URL or identifier to a waypoint symbol.
// Matching is case-sensitive substring containment; the first matching rule wins.
func ClassifySymbol(iconURL string) string {
	for _, r := range symbolRules {
		if strings.Contains(iconURL, r.pattern) {
			return r.symbol
		}
	}
	return SymbolWaypoint
}
