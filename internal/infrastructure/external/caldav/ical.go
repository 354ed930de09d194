package caldav

import (
	"strings"
	"time"
)

// icalEvent holds the VEVENT properties the importer cares about.
type icalEvent struct {
	UID         string
	Summary     string
	Start       string
	End         string
	Description string
	Organizer   string
	Recurring   bool
}

// parseICalEvent extracts a single VEVENT from raw iCalendar data.
// Folded lines (continuation lines starting with a space) are unfolded
// first; property parameters like DTSTART;TZID=... are stripped.
func parseICalEvent(icalData string) icalEvent {
	var event icalEvent

	unfolded := strings.ReplaceAll(icalData, "\r\n ", "")
	unfolded = strings.ReplaceAll(unfolded, "\n ", "")
	for _, line := range strings.Split(unfolded, "\n") {
		line = strings.TrimSuffix(line, "\r")
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key, _, _ = strings.Cut(key, ";")

		switch key {
		case "SUMMARY":
			event.Summary = value
		case "DTSTART":
			event.Start = value
		case "DTEND":
			event.End = value
		case "DESCRIPTION":
			event.Description = value
		case "UID":
			event.UID = value
		case "ORGANIZER":
			event.Organizer = strings.ReplaceAll(value, "mailto:", "")
		case "RRULE":
			event.Recurring = true
		}
	}

	return event
}

// parseICalTime parses an iCalendar date or date-time value. Unparseable
// values fall back to the current time, matching lenient provider data.
func parseICalTime(value string, now func() time.Time) time.Time {
	value = strings.ReplaceAll(value, "Z", "")

	if strings.Contains(value, "T") {
		if len(value) >= 15 {
			if t, err := time.Parse("20060102T150405", value[:15]); err == nil {
				return t
			}
		}
	} else if len(value) >= 8 {
		if t, err := time.Parse("20060102", value[:8]); err == nil {
			return t
		}
	}

	return now()
}
