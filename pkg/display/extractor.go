// Package display turns parsed calendar events into the strings shown on the board.
package display

import (
	"github.com/borgmon/games-board/pkg/logger"
	"github.com/borgmon/games-board/pkg/models"
)

// Extractor derives DisplayRows from CalendarEvents
type Extractor struct {
	strategy  models.SportStrategy
	formatter *Formatter
}

// NewExtractor creates an Extractor using strategy for sport labels
func NewExtractor(strategy models.SportStrategy, formatter *Formatter) *Extractor {
	if strategy == "" {
		strategy = models.SportStrategyAuto
	}
	return &Extractor{strategy: strategy, formatter: formatter}
}

// Row builds the display fields of a single event
func (x *Extractor) Row(event models.CalendarEvent) models.DisplayRow {
	src := SourceFor(event, x.strategy)
	allDay := IsAllDay(event)

	row := models.DisplayRow{
		Sport:    Sport(src),
		Date:     x.formatter.Date(event, allDay),
		Time:     x.formatter.Time(event.Start, allDay),
		Opponent: Opponent(event.Summary),
		Icon:     Icon(firstCategory(event)),
		AllDay:   allDay,
		Start:    event.Start,
	}

	logger.Debugf("  [ROW] %q -> sport=%q (%s) opponent=%q icon=%s",
		event.Summary, row.Sport, src.Kind, row.Opponent, row.Icon)
	return row
}

// Rows maps events to rows, preserving order
func (x *Extractor) Rows(events []models.CalendarEvent) []models.DisplayRow {
	rows := make([]models.DisplayRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, x.Row(e))
	}
	return rows
}
