package models

import "time"

// DisplayRow is the rendered form of a single upcoming event
type DisplayRow struct {
	Sport    string
	Date     string
	Time     string // "All Day" for all-day events
	Opponent string
	Icon     string // Material icon name
	AllDay   bool
	Start    time.Time
}
