package calendar

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/borgmon/games-board/pkg/logger"
	"github.com/borgmon/games-board/pkg/models"
	"github.com/emersion/go-ical"
)

// ParseOptions controls how raw feed text becomes CalendarEvents
type ParseOptions struct {
	// Location is used for floating and date-only values
	Location *time.Location
	// Now is the run start; recurring series are expanded from here
	Now time.Time
	// MaxOccurrences caps the instances generated per recurring series
	MaxOccurrences int
}

// Parse decodes every component of every VCALENDAR in body.
// Non-event components are returned with their Kind set so callers can skip them.
func Parse(body string, opts ParseOptions) ([]models.CalendarEvent, error) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.MaxOccurrences <= 0 {
		opts.MaxOccurrences = models.DefaultLimit
	}

	decoder := ical.NewDecoder(strings.NewReader(body))
	entries := []models.CalendarEvent{}
	seen := newSeenSet()
	stats := &parseStats{}

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		logger.Debugf("  [DEBUG] Calendar decoded with %d children", len(cal.Children))

		overrides := collectOverrides(cal.Children, opts.Location)

		for _, comp := range cal.Children {
			stats.totalComponents++
			normalizeComponentTimezones(comp)

			if comp.Name != ical.CompEvent {
				logger.Debugf("  [DEBUG] Keeping non-event component: %s", comp.Name)
				entries = append(entries, models.CalendarEvent{
					Kind: comp.Name,
					UID:  propText(comp, ical.PropUID),
				})
				continue
			}
			stats.totalEvents++

			event := parseEvent(comp, opts.Location)
			if event.Start.IsZero() {
				stats.missingStart++
				log.Printf("  [SKIPPED] Missing or unreadable DTSTART - Event: %q", event.Summary)
				continue
			}

			if comp.Props.Get(ical.PropRecurrenceRule) != nil {
				instances, err := expandRecurringEvent(comp, event, overrides[event.UID], opts)
				if err != nil {
					log.Printf("  [RECURRING] Cannot expand \"%s\", using first instance: %v", event.Summary, err)
				} else {
					stats.recurring++
					for _, inst := range instances {
						if !seen.isDuplicate(inst, stats) {
							entries = append(entries, inst)
						}
					}
					continue
				}
			}

			if !seen.isDuplicate(event, stats) {
				entries = append(entries, event)
			}
		}
	}

	stats.logSummary(len(entries))

	return entries, nil
}

func parseEvent(comp *ical.Component, loc *time.Location) models.CalendarEvent {
	event := models.CalendarEvent{
		Kind:       comp.Name,
		UID:        propText(comp, ical.PropUID),
		Summary:    propText(comp, ical.PropSummary),
		Status:     strings.ToUpper(propText(comp, ical.PropStatus)),
		Location:   propText(comp, ical.PropLocation),
		Categories: parseCategories(comp),
		DateType:   models.DateTypeDateTime,
	}

	if startProp := comp.Props.Get(ical.PropDateTimeStart); startProp != nil {
		event.DateType = dateTypeOf(startProp)
		if t, err := parseDateTimeProperty(startProp, loc); err == nil {
			event.Start = t
		} else {
			logger.Debugf("  [DEBUG] %v", err)
		}
	}

	if endProp := comp.Props.Get(ical.PropDateTimeEnd); endProp != nil {
		if t, err := parseDateTimeProperty(endProp, loc); err == nil {
			event.End = t
		}
	}

	// Polyfill: If status is not CANCELLED but title indicates cancellation, set status to CANCELLED
	if event.Status != "CANCELLED" && isCancelledTitle(event.Summary) {
		event.Status = "CANCELLED"
	}

	return event
}

func parseDateTimeProperty(prop *ical.Prop, loc *time.Location) (time.Time, error) {
	propLoc := locationForProp(prop, loc)

	// First try the standard DateTime method
	if t, err := prop.DateTime(propLoc); err == nil {
		return t, nil
	}

	// If that fails, try parsing the raw value directly
	value := strings.TrimSpace(prop.Value)

	formats := []string{
		"20060102T150405Z",    // UTC format
		"20060102T150405",     // Basic format: YYYYMMDDTHHMMSS
		"20060102",            // Date only
		time.RFC3339,          // Standard RFC3339
		"2006-01-02T15:04:05", // ISO 8601 without timezone
		"2006-01-02",          // ISO 8601 date
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, value, propLoc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime value: %s", value)
}

func dateTypeOf(prop *ical.Prop) models.DateType {
	if prop.ValueType() == ical.ValueDate {
		return models.DateTypeDate
	}
	value := strings.TrimSpace(prop.Value)
	if len(value) == len("20060102") && !strings.Contains(value, "T") {
		return models.DateTypeDate
	}
	return models.DateTypeDateTime
}

func parseCategories(comp *ical.Component) []string {
	var categories []string
	for _, prop := range comp.Props.Values(ical.PropCategories) {
		list, err := prop.TextList()
		if err != nil {
			logger.Debugf("  [DEBUG] Ignoring CATEGORIES %q: %v", prop.Value, err)
			continue
		}
		for _, c := range list {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
	}
	return categories
}

// propText decodes a TEXT property onto a single line. Unescaped commas are
// common in feed summaries, so the list parts are joined back together, and
// the raw value is kept when the escaping is malformed.
func propText(comp *ical.Component, name string) string {
	prop := comp.Props.Get(name)
	if prop == nil {
		return ""
	}
	text := prop.Value
	if list, err := prop.TextList(); err == nil {
		text = strings.Join(list, ",")
	}
	return strings.Join(strings.Fields(text), " ")
}

type seenSet struct {
	ids  map[string]bool // key: UID + start time
	keys map[string]bool // key: summary + start time
}

func newSeenSet() *seenSet {
	return &seenSet{ids: map[string]bool{}, keys: map[string]bool{}}
}

func (s *seenSet) isDuplicate(event models.CalendarEvent, stats *parseStats) bool {
	start := event.Start.Format(time.RFC3339)

	idKey := event.UID + "|" + start
	if event.UID != "" && s.ids[idKey] {
		stats.duplicates++
		log.Printf("  [FILTERED] Duplicate (UID) - Event: \"%s\" (UID: %s)", event.Summary, event.UID)
		return true
	}

	eventKey := event.Summary + "|" + start
	if s.keys[eventKey] {
		stats.duplicates++
		log.Printf("  [FILTERED] Duplicate (Title+Time) - Event: \"%s\" (Start: %s)",
			event.Summary, event.Start.Format("2006-01-02 15:04"))
		return true
	}

	if event.UID != "" {
		s.ids[idKey] = true
	}
	s.keys[eventKey] = true
	return false
}

type parseStats struct {
	totalComponents int
	totalEvents     int
	recurring       int
	missingStart    int
	duplicates      int
}

func (s *parseStats) logSummary(entryCount int) {
	log.Printf("  [SUMMARY] Parsed components: %d, Events: %d, Recurring series: %d, Entries: %d",
		s.totalComponents, s.totalEvents, s.recurring, entryCount)
	if s.missingStart > 0 || s.duplicates > 0 {
		log.Printf("  Parse breakdown: %d missing start, %d duplicates", s.missingStart, s.duplicates)
	}
}
