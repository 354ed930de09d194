package googlecal

import (
	"context"
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

func TestFetchUpcomingEvents(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"timeMin":      r.URL.Query().Get("timeMin"),
			"timeMax":      r.URL.Query().Get("timeMax"),
			"singleEvents": r.URL.Query().Get("singleEvents"),
			"orderBy":      r.URL.Query().Get("orderBy"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{
					"id": "evt-1",
					"summary": "Q2 planning session",
					"start": {"dateTime": "2025-03-03T14:00:00Z"},
					"end": {"dateTime": "2025-03-03T15:30:00Z"},
					"organizer": {"email": "ceo@corp.example"},
					"attendees": [{"email": "ceo@corp.example"}, {"email": "cto@corp.example"}],
					"description": "Revenue targets for next quarter",
					"recurringEventId": "evt-1-parent"
				},
				{
					"id": "evt-2",
					"summary": "Company offsite",
					"start": {"date": "2025-03-05"},
					"end": {"date": "2025-03-06"}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL), WithClock(fixedClock))

	meetings, err := client.FetchUpcomingEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, meetings, 2)

	assert.Equal(t, "2025-03-03T08:00:00Z", gotQuery["timeMin"])
	assert.Equal(t, "2025-03-10T08:00:00Z", gotQuery["timeMax"])
	assert.Equal(t, "true", gotQuery["singleEvents"])
	assert.Equal(t, "startTime", gotQuery["orderBy"])

	timed := meetings[0]
	assert.Equal(t, "Q2 planning session", timed.Title)
	assert.Equal(t, "2025-03-03", timed.Date)
	assert.Equal(t, "14:00", timed.StartTime)
	assert.Equal(t, "15:30", timed.EndTime)
	assert.Equal(t, 90, timed.DurationMinutes)
	assert.Equal(t, "ceo@corp.example", timed.Organizer)
	assert.Equal(t, []string{"ceo@corp.example", "cto@corp.example"}, timed.Attendees)
	assert.Equal(t, entities.MeetingTypeExternal, timed.MeetingType)
	assert.True(t, timed.Recurring)
	assert.Equal(t, entities.MeetingSourceGoogle, timed.Source)

	allDay := meetings[1]
	assert.Equal(t, "Company offsite", allDay.Title)
	assert.Equal(t, "2025-03-05", allDay.Date)
	assert.Equal(t, "00:00", allDay.StartTime)
	assert.Equal(t, "23:59", allDay.EndTime)
	assert.Equal(t, 1440, allDay.DurationMinutes)
	assert.False(t, allDay.Recurring)
}

func TestFetchUpcomingEventsMissingTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [{"id": "evt-3", "start": {"date": "2025-03-04"}, "end": {"date": "2025-03-05"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL), WithClock(fixedClock))

	meetings, err := client.FetchUpcomingEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, "No Title", meetings[0].Title)
}

func TestFetchUpcomingEventsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL), WithClock(fixedClock))

	_, err := client.FetchUpcomingEvents(context.Background())
	assert.ErrorIs(t, err, entities.ErrCalendarCredentials)
}

func TestFetchUpcomingEventsRetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL), WithClock(fixedClock))

	meetings, err := client.FetchUpcomingEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, meetings)
	assert.Equal(t, 3, calls)
}
