package display

import "strings"

// DefaultIcon is used when no rule matches
const DefaultIcon = "sports"

type iconRule struct {
	keyword string
	icon    string
}

// Checked in order against the lowercased category text; first hit wins.
// "field hockey" and "basketball" come before the shorter names they contain.
var iconRules = []iconRule{
	{"field hockey", "sports_hockey"},
	{"basketball", "sports_basketball"},
	{"volleyball", "sports_volleyball"},
	{"softball", "sports_baseball"},
	{"baseball", "sports_baseball"},
	{"football", "sports_football"},
	{"soccer", "sports_soccer"},
	{"hockey", "sports_hockey"},
	{"lacrosse", "sports_hockey"},
	{"tennis", "sports_tennis"},
	{"golf", "sports_golf"},
	{"cross country", "directions_run"},
	{"track", "directions_run"},
	{"swim", "pool"},
	{"rugby", "sports_rugby"},
	{"wrestling", "sports_kabaddi"},
}

// Icon maps category text to a Material icon name
func Icon(category string) string {
	lower := strings.ToLower(category)
	if lower == "" {
		return DefaultIcon
	}
	for _, rule := range iconRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.icon
		}
	}
	return DefaultIcon
}
