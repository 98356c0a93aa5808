package display

import (
	"time"

	"github.com/borgmon/games-board/pkg/models"
)

// AllDayLabel replaces the clock time of all-day events
const AllDayLabel = "All Day"

// IsAllDay reports whether an event has no meaningful clock time: either the
// start is a DATE value, or it sits exactly on midnight UTC.
func IsAllDay(event models.CalendarEvent) bool {
	if event.DateType == models.DateTypeDate {
		return true
	}
	utc := event.Start.UTC()
	return utc.Hour() == 0 && utc.Minute() == 0 && utc.Second() == 0 && utc.Nanosecond() == 0
}

// Formatter renders dates and times in a fixed zone, ignoring the host locale
type Formatter struct {
	loc        *time.Location
	dateLayout string
	timeLayout string
}

// NewFormatter creates a Formatter; empty layouts fall back to the defaults
func NewFormatter(loc *time.Location, dateLayout, timeLayout string) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	if dateLayout == "" {
		dateLayout = models.DefaultDateLayout
	}
	if timeLayout == "" {
		timeLayout = models.DefaultTimeLayout
	}
	return &Formatter{loc: loc, dateLayout: dateLayout, timeLayout: timeLayout}
}

// Date formats the calendar day of an event. All-day events keep the day they
// were declared on instead of shifting into the display zone.
func (f *Formatter) Date(event models.CalendarEvent, allDay bool) string {
	switch {
	case event.DateType == models.DateTypeDate:
		return event.Start.Format(f.dateLayout)
	case allDay:
		return event.Start.UTC().Format(f.dateLayout)
	default:
		return event.Start.In(f.loc).Format(f.dateLayout)
	}
}

// Time formats the clock time of t, or AllDayLabel
func (f *Formatter) Time(t time.Time, allDay bool) string {
	if allDay {
		return AllDayLabel
	}
	return t.In(f.loc).Format(f.timeLayout)
}
