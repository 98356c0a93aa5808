package calendar

import (
	"strings"
	"time"
)

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

// icsFeed wraps components in a VCALENDAR and converts to CRLF line endings
func icsFeed(components ...string) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//games-board//test//EN\n")
	for _, c := range components {
		b.WriteString(strings.TrimSpace(c))
		b.WriteString("\n")
	}
	b.WriteString("END:VCALENDAR\n")
	return strings.ReplaceAll(b.String(), "\n", "\r\n")
}

func vevent(uid, summary, dtstart string, extra ...string) string {
	lines := []string{
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:20250901T000000Z",
		"SUMMARY:" + summary,
		"DTSTART" + dtstart,
	}
	lines = append(lines, extra...)
	lines = append(lines, "END:VEVENT")
	return strings.Join(lines, "\n")
}
