package display

import (
	"strings"

	"github.com/borgmon/games-board/pkg/models"
)

// UnknownSport is shown when a category-driven event has no category
const UnknownSport = "Unknown"

// SourceKind tags where a sport label is read from
type SourceKind int

const (
	FreeTextSummary    SourceKind = iota // keyword match on SUMMARY
	StructuredCategory                   // CATEGORIES field
)

func (k SourceKind) String() string {
	switch k {
	case FreeTextSummary:
		return "summary"
	case StructuredCategory:
		return "category"
	default:
		return "unknown"
	}
}

// SportSource is the input a sport label is derived from
type SportSource struct {
	Kind SourceKind
	Text string
}

// Longer names first so "Field Hockey" wins over "Hockey"
var knownSports = []string{
	"Field Hockey",
	"Football",
	"Soccer",
	"Basketball",
	"Volleyball",
	"Hockey",
	"Lacrosse",
	"Baseball",
	"Softball",
	"Track",
	"Cross Country",
	"Golf",
	"Tennis",
}

// SourceFor picks the sport source for an event according to strategy
func SourceFor(event models.CalendarEvent, strategy models.SportStrategy) SportSource {
	switch strategy {
	case models.SportStrategySummary:
		return SportSource{Kind: FreeTextSummary, Text: event.Summary}
	case models.SportStrategyCategory:
		return SportSource{Kind: StructuredCategory, Text: firstCategory(event)}
	}

	if event.HasCategories() {
		return SportSource{Kind: StructuredCategory, Text: firstCategory(event)}
	}
	return SportSource{Kind: FreeTextSummary, Text: event.Summary}
}

// Sport derives the sport label from src
func Sport(src SportSource) string {
	switch src.Kind {
	case StructuredCategory:
		if text := strings.TrimSpace(src.Text); text != "" {
			return text
		}
		return UnknownSport
	default:
		return sportFromSummary(src.Text)
	}
}

func sportFromSummary(summary string) string {
	lowerSummary := strings.ToLower(summary)

	for _, sport := range knownSports {
		if strings.Contains(lowerSummary, strings.ToLower(sport)) {
			return sport
		}
	}

	// fallback: first word of the summary
	first, _, _ := strings.Cut(summary, " ")
	return first
}

func firstCategory(event models.CalendarEvent) string {
	for _, c := range event.Categories {
		if c != "" {
			return c
		}
	}
	return ""
}
