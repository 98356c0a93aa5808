package display

import (
	"regexp"
	"strings"
)

var parenthesized = regexp.MustCompile(`\s*\([^)]*\)`)

// Opponent returns the part of summary after "vs." with parenthesized notes removed,
// e.g. "Team A vs. Team B (Soccer)" becomes "Team B".
func Opponent(summary string) string {
	opponent := summary
	if i := strings.Index(strings.ToLower(summary), "vs."); i != -1 {
		opponent = strings.TrimSpace(summary[i+len("vs."):])
	}

	return strings.TrimSpace(parenthesized.ReplaceAllString(opponent, ""))
}
