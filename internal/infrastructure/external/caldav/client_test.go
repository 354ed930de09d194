package caldav

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
}

const sampleVEvent = "BEGIN:VCALENDAR\nBEGIN:VEVENT\nUID:apple-evt-1\nSUMMARY:Board dinner with\n  investors\nDTSTART;TZID=America/New_York:20250304T180000\nDTEND;TZID=America/New_York:20250304T200000\nDESCRIPTION:Quarterly update\nORGANIZER:mailto:founder@corp.example\nRRULE:FREQ=MONTHLY\nEND:VEVENT\nEND:VCALENDAR"

func multistatusBody(ical string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<D:multistatus xmlns:D="DAV:" xmlns:C="urn:ietf:params:xml:ns:caldav">
  <D:response>
    <D:href>/calendars/user/calendar/evt1.ics</D:href>
    <D:propstat>
      <D:prop>
        <C:calendar-data>%s</C:calendar-data>
      </D:prop>
    </D:propstat>
  </D:response>
</D:multistatus>`, ical)
}

func TestFetchUpcomingEvents(t *testing.T) {
	var gotMethod, gotDepth, gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotDepth = r.Header.Get("Depth")
		gotUser, gotPass, _ = r.BasicAuth()

		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusMultiStatus)
		w.Write([]byte(multistatusBody(sampleVEvent)))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL), WithClock(fixedClock))

	meetings, err := client.FetchUpcomingEvents(context.Background(), "user@icloud.example", "app-pass")
	require.NoError(t, err)
	require.Len(t, meetings, 1)

	assert.Equal(t, "REPORT", gotMethod)
	assert.Equal(t, "1", gotDepth)
	assert.Equal(t, "user@icloud.example", gotUser)
	assert.Equal(t, "app-pass", gotPass)

	m := meetings[0]
	assert.Equal(t, "Board dinner with investors", m.Title)
	assert.Equal(t, "2025-03-04", m.Date)
	assert.Equal(t, "18:00", m.StartTime)
	assert.Equal(t, "20:00", m.EndTime)
	assert.Equal(t, 120, m.DurationMinutes)
	assert.Equal(t, "founder@corp.example", m.Organizer)
	assert.True(t, m.Recurring)
	assert.Equal(t, entities.MeetingTypeExternal, m.MeetingType)
	assert.Equal(t, entities.MeetingSourceApple, m.Source)
}

func TestFetchUpcomingEventsInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL), WithClock(fixedClock))

	_, err := client.FetchUpcomingEvents(context.Background(), "user@icloud.example", "wrong")
	assert.ErrorIs(t, err, entities.ErrCalendarCredentials)
}

func TestFetchUpcomingEventsMissingCredentials(t *testing.T) {
	client := NewClient(nil, WithClock(fixedClock))

	_, err := client.FetchUpcomingEvents(context.Background(), "", "")
	assert.ErrorIs(t, err, entities.ErrCalendarCredentials)
}

func TestFetchUpcomingEventsSkipsNonEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMultiStatus)
		w.Write([]byte(multistatusBody("BEGIN:VCALENDAR\nBEGIN:VTODO\nSUMMARY:Buy milk\nEND:VTODO\nEND:VCALENDAR")))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL), WithClock(fixedClock))

	meetings, err := client.FetchUpcomingEvents(context.Background(), "user@icloud.example", "app-pass")
	require.NoError(t, err)
	assert.Empty(t, meetings)
}

func TestParseICalEvent(t *testing.T) {
	event := parseICalEvent(sampleVEvent)

	assert.Equal(t, "apple-evt-1", event.UID)
	assert.Equal(t, "Board dinner with investors", event.Summary)
	assert.Equal(t, "20250304T180000", event.Start)
	assert.Equal(t, "20250304T200000", event.End)
	assert.Equal(t, "Quarterly update", event.Description)
	assert.Equal(t, "founder@corp.example", event.Organizer)
	assert.True(t, event.Recurring)
}

func TestParseICalTime(t *testing.T) {
	dt := parseICalTime("20250304T180000Z", fixedClock)
	assert.Equal(t, time.Date(2025, 3, 4, 18, 0, 0, 0, time.UTC), dt)

	dateOnly := parseICalTime("20250304", fixedClock)
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), dateOnly)

	fallback := parseICalTime("garbage", fixedClock)
	assert.Equal(t, fixedClock(), fallback)
}
