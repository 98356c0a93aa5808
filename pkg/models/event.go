package models

import "time"

// DateType tells whether an event start carries a clock time
type DateType string

const (
	DateTypeDateTime DateType = "date-time" // DTSTART with a time component
	DateTypeDate     DateType = "date"      // DTSTART;VALUE=DATE
)

// ComponentEvent is the component name of a schedulable calendar entry
const ComponentEvent = "VEVENT"

// CalendarEvent represents one parsed calendar entry
type CalendarEvent struct {
	UID        string    // iCal UID
	Kind       string    // Component name (VEVENT, VTODO, ...)
	Summary    string    // Free-text title
	Start      time.Time // Event start time
	End        time.Time // Event end time, zero when absent
	Categories []string  // CATEGORIES values, in feed order
	DateType   DateType  // Whether Start has a time component
	Status     string    // Event status (CONFIRMED, CANCELLED, TENTATIVE)
	Location   string    // Free-text location
	Recurring  bool      // Expanded from a recurrence rule
}

// IsEvent returns true if the entry is a schedulable event
func (e CalendarEvent) IsEvent() bool {
	return e.Kind == ComponentEvent
}

// HasCategories returns true if the feed supplied a non-empty category
func (e CalendarEvent) HasCategories() bool {
	for _, c := range e.Categories {
		if c != "" {
			return true
		}
	}
	return false
}
