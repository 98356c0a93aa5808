package calendar

import (
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/borgmon/games-board/pkg/models"
)

// SelectOptions controls which parsed entries make it onto the board
type SelectOptions struct {
	Limit         int
	SkipCancelled bool
}

// Select keeps upcoming events, orders them by start time and truncates to opts.Limit
// (zero means no limit).
// now is expected to be captured once at run start.
func Select(entries []models.CalendarEvent, now time.Time, opts SelectOptions) []models.CalendarEvent {
	stats := &filterStats{}
	upcoming := []models.CalendarEvent{}

	for _, entry := range entries {
		stats.total++
		if shouldIncludeEvent(entry, now, opts, stats) {
			upcoming = append(upcoming, entry)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Start.Before(upcoming[j].Start)
	})

	if opts.Limit > 0 && len(upcoming) > opts.Limit {
		stats.truncated = len(upcoming) - opts.Limit
		upcoming = upcoming[:opts.Limit]
	}

	stats.logSummary(len(upcoming))

	return upcoming
}

func shouldIncludeEvent(entry models.CalendarEvent, now time.Time, opts SelectOptions, stats *filterStats) bool {
	if !entry.IsEvent() {
		stats.filteredNonEvent++
		return false
	}

	if entry.Start.IsZero() {
		stats.filteredMissingTime++
		log.Printf("  [FILTERED] Missing time - Event: \"%s\"", entry.Summary)
		return false
	}

	if opts.SkipCancelled && entry.Status == "CANCELLED" {
		stats.filteredCancelled++
		log.Printf("  [FILTERED] [Cancelled] - Event: \"%s\" (Start: %s, Status: %s)",
			entry.Summary, entry.Start.Format("2006-01-02 15:04"), entry.Status)
		return false
	}

	if entry.Start.Before(now) {
		stats.filteredPast++
		return false
	}

	log.Printf("  [INCLUDED] Event: \"%s\" (Start: %s)",
		entry.Summary, entry.Start.Format("2006-01-02 15:04"))
	return true
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func isCancelledTitle(title string) bool {
	cleanTitle := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "")
	return strings.HasPrefix(cleanTitle, "canceled") || strings.HasPrefix(cleanTitle, "cancelled")
}

type filterStats struct {
	total               int
	filteredNonEvent    int
	filteredMissingTime int
	filteredCancelled   int
	filteredPast        int
	truncated           int
}

func (s *filterStats) logSummary(selectedCount int) {
	totalFiltered := s.filteredNonEvent + s.filteredMissingTime + s.filteredCancelled + s.filteredPast + s.truncated
	log.Printf("  [SUMMARY] Total entries: %d, Selected: %d, Filtered: %d",
		s.total, selectedCount, totalFiltered)
	if totalFiltered > 0 {
		log.Printf("  Filtered breakdown: %d non-event, %d past, %d cancelled, %d missing time, %d over limit",
			s.filteredNonEvent, s.filteredPast, s.filteredCancelled, s.filteredMissingTime, s.truncated)
	}
}
