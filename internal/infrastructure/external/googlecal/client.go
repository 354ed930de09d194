package googlecal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

const defaultBaseURL = "https://www.googleapis.com/calendar/v3"

// lookaheadWindow is how far into the future events are fetched.
const lookaheadWindow = 7 * 24 * time.Hour

// Client fetches upcoming events from the Google Calendar API and
// normalizes them into calendar entries the audit pipeline understands.
type Client struct {
	httpClient *http.Client
	baseURL    string
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a calendar client. The HTTP client is expected to
// carry OAuth credentials (see oauth.GoogleProvider.NewClient).
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// eventList mirrors the fields we read from the events list response.
type eventList struct {
	Items []event `json:"items"`
}

type event struct {
	ID        string    `json:"id"`
	Summary   string    `json:"summary"`
	Start     eventTime `json:"start"`
	End       eventTime `json:"end"`
	Organizer struct {
		Email string `json:"email"`
	} `json:"organizer"`
	Attendees []struct {
		Email string `json:"email"`
	} `json:"attendees"`
	Description      string `json:"description"`
	RecurringEventID string `json:"recurringEventId"`
}

type eventTime struct {
	DateTime string `json:"dateTime"`
	Date     string `json:"date"`
}

// FetchUpcomingEvents returns the primary calendar's events for the next
// seven days, ordered by start time.
func (c *Client) FetchUpcomingEvents(ctx context.Context) ([]entities.Meeting, error) {
	now := c.now().UTC()

	query := url.Values{}
	query.Set("timeMin", now.Format(time.RFC3339))
	query.Set("timeMax", now.Add(lookaheadWindow).Format(time.RFC3339))
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")

	endpoint := fmt.Sprintf("%s/calendars/primary/events?%s", c.baseURL, query.Encode())

	var list eventList
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			// fall through to decode
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return backoff.Permanent(entities.ErrCalendarCredentials)
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("google calendar returned status %d", resp.StatusCode)
		default:
			body, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("google calendar returned status %d: %s", resp.StatusCode, string(body)))
		}

		if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode events response: %w", err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	meetings := make([]entities.Meeting, 0, len(list.Items))
	for _, item := range list.Items {
		meeting, err := normalizeEvent(item)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", item.ID, err)
		}
		meetings = append(meetings, meeting)
	}
	return meetings, nil
}

// normalizeEvent maps a Google event into a calendar entry. Timed events
// keep their clock times; all-day events span 00:00 to 23:59 and count as
// 1440 minutes.
func normalizeEvent(item event) (entities.Meeting, error) {
	var (
		date, startClock, endClock string
		duration                   int
	)

	if item.Start.DateTime != "" {
		startDT, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return entities.Meeting{}, fmt.Errorf("invalid start time %q: %w", item.Start.DateTime, err)
		}
		endDT, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return entities.Meeting{}, fmt.Errorf("invalid end time %q: %w", item.End.DateTime, err)
		}
		date = startDT.Format("2006-01-02")
		startClock = startDT.Format("15:04")
		endClock = endDT.Format("15:04")
		duration = int(endDT.Sub(startDT).Minutes())
	} else {
		date = item.Start.Date
		startClock = "00:00"
		endClock = "23:59"
		duration = 1440
	}

	title := item.Summary
	if title == "" {
		title = "No Title"
	}

	attendees := make([]string, 0, len(item.Attendees))
	for _, a := range item.Attendees {
		attendees = append(attendees, a.Email)
	}

	return entities.Meeting{
		Title:           title,
		Date:            date,
		StartTime:       startClock,
		EndTime:         endClock,
		DurationMinutes: duration,
		Organizer:       item.Organizer.Email,
		Attendees:       attendees,
		MeetingType:     entities.MeetingTypeExternal,
		Description:     item.Description,
		Recurring:       item.RecurringEventID != "",
		Source:          entities.MeetingSourceGoogle,
	}, nil
}
