package calendar

import (
	"fmt"
	"log"
	"time"

	"github.com/borgmon/games-board/pkg/logger"
	"github.com/borgmon/games-board/pkg/models"
	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
)

// collectOverrides maps UID to the RECURRENCE-ID times that have their own component
func collectOverrides(children []*ical.Component, loc *time.Location) map[string][]time.Time {
	overrides := map[string][]time.Time{}
	for _, comp := range children {
		if comp.Name != ical.CompEvent {
			continue
		}
		prop := comp.Props.Get(ical.PropRecurrenceID)
		if prop == nil {
			continue
		}
		uid := propText(comp, ical.PropUID)
		normalizeComponentTimezones(comp)
		t, err := parseDateTimeProperty(prop, loc)
		if err != nil {
			continue
		}
		overrides[uid] = append(overrides[uid], t)
	}
	return overrides
}

// expandRecurringEvent turns a series into its next instances starting at opts.Now.
// Instances replaced by an override component are left out.
func expandRecurringEvent(comp *ical.Component, base models.CalendarEvent, overridden []time.Time, opts ParseOptions) ([]models.CalendarEvent, error) {
	set, err := comp.RecurrenceSet(locationForProp(comp.Props.Get(ical.PropDateTimeStart), opts.Location))
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence: %w", err)
	}
	if set == nil {
		return nil, fmt.Errorf("no recurrence rule")
	}

	for _, t := range overridden {
		set.ExDate(t)
	}

	var duration time.Duration
	if !base.End.IsZero() {
		duration = base.End.Sub(base.Start)
	}

	log.Printf("  [RECURRING] Expanding \"%s\" from %s", base.Summary, opts.Now.Format("2006-01-02 15:04"))

	events := []models.CalendarEvent{}
	for _, start := range upcomingOccurrences(set, opts.Now, opts.MaxOccurrences) {
		instance := base
		instance.Start = start.In(base.Start.Location())
		if duration > 0 {
			instance.End = instance.Start.Add(duration)
		}
		instance.Recurring = true
		events = append(events, instance)
		logger.Debugf("  [RECURRING] Generated instance at %s", instance.Start.Format("2006-01-02 15:04"))
	}

	return events, nil
}

// upcomingOccurrences returns at most n occurrences of set at or after from
func upcomingOccurrences(set *rrule.Set, from time.Time, n int) []time.Time {
	var out []time.Time
	next := set.After(from, true)
	for !next.IsZero() && len(out) < n {
		out = append(out, next)
		next = set.After(next, false)
	}
	return out
}
