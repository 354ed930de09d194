package calendar

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

// requiredColumns is the header set a calendar export must carry.
var requiredColumns = []string{
	"id", "title", "date", "start_time", "end_time", "duration_minutes",
	"organizer", "attendees", "meeting_type", "description", "recurring",
}

// ParseCSV reads a calendar export into normalized meetings. The header
// row names columns, so column order does not matter. Every field is
// validated and a bad value fails the whole import with the row number
// attached.
func ParseCSV(r io.Reader) ([]entities.Meeting, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("csv missing required column %q", col)
		}
	}

	var meetings []entities.Meeting
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		field := func(name string) string { return record[index[name]] }

		meeting, err := parseRow(field)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		meetings = append(meetings, meeting)
	}

	return meetings, nil
}

func parseRow(field func(string) string) (entities.Meeting, error) {
	id, err := strconv.Atoi(field("id"))
	if err != nil {
		return entities.Meeting{}, fmt.Errorf("invalid id %q: %w", field("id"), err)
	}

	date := field("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return entities.Meeting{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	startTime := field("start_time")
	if _, err := time.Parse("15:04", startTime); err != nil {
		return entities.Meeting{}, fmt.Errorf("invalid start_time %q: %w", startTime, err)
	}

	endTime := field("end_time")
	if _, err := time.Parse("15:04", endTime); err != nil {
		return entities.Meeting{}, fmt.Errorf("invalid end_time %q: %w", endTime, err)
	}

	duration, err := strconv.Atoi(field("duration_minutes"))
	if err != nil {
		return entities.Meeting{}, fmt.Errorf("invalid duration_minutes %q: %w", field("duration_minutes"), err)
	}

	attendees := []string{}
	for _, a := range strings.Split(field("attendees"), ";") {
		attendees = append(attendees, strings.TrimSpace(a))
	}

	return entities.Meeting{
		ID:              id,
		Title:           field("title"),
		Date:            date,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: duration,
		Organizer:       field("organizer"),
		Attendees:       attendees,
		MeetingType:     entities.MeetingType(field("meeting_type")),
		Description:     field("description"),
		Recurring:       strings.EqualFold(field("recurring"), "true"),
		Source:          entities.MeetingSourceCSV,
	}, nil
}
