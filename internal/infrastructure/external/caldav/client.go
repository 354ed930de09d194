package caldav

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

const defaultBaseURL = "https://caldav.icloud.com"

// lookaheadWindow is how far into the future events are fetched.
const lookaheadWindow = 7 * 24 * time.Hour

// calendarQuery is the REPORT body for a VEVENT time-range query.
const calendarQuery = `<?xml version="1.0" encoding="utf-8" ?>
<C:calendar-query xmlns:D="DAV:" xmlns:C="urn:ietf:params:xml:ns:caldav">
  <D:prop>
    <D:getetag/>
    <C:calendar-data/>
  </D:prop>
  <C:filter>
    <C:comp-filter name="VCALENDAR">
      <C:comp-filter name="VEVENT">
        <C:time-range start="%s" end="%s"/>
      </C:comp-filter>
    </C:comp-filter>
  </C:filter>
</C:calendar-query>`

// Client speaks CalDAV against iCloud using an Apple ID and an
// app-specific password. It only reads the user's default calendar.
type Client struct {
	httpClient *http.Client
	baseURL    string
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the CalDAV base URL. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a CalDAV client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
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

// multistatus mirrors the DAV:multistatus response envelope.
type multistatus struct {
	XMLName   xml.Name   `xml:"DAV: multistatus"`
	Responses []response `xml:"response"`
}

type response struct {
	Href      string     `xml:"href"`
	Propstats []propstat `xml:"propstat"`
}

type propstat struct {
	Prop prop `xml:"prop"`
}

type prop struct {
	CalendarData string `xml:"urn:ietf:params:xml:ns:caldav calendar-data"`
}

// FetchUpcomingEvents queries the default calendar for VEVENTs in the
// next seven days and normalizes them into calendar entries.
func (c *Client) FetchUpcomingEvents(ctx context.Context, appleID, appPassword string) ([]entities.Meeting, error) {
	if appleID == "" || appPassword == "" {
		return nil, entities.ErrCalendarCredentials
	}

	now := c.now().UTC()
	body := fmt.Sprintf(calendarQuery,
		now.Format("20060102T000000Z"),
		now.Add(lookaheadWindow).Format("20060102T235959Z"),
	)

	calendarURL := fmt.Sprintf("%s/calendars/%s/calendar/", c.baseURL, appleID)

	var payload []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, "REPORT", calendarURL, bytes.NewBufferString(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.SetBasicAuth(appleID, appPassword)
		req.Header.Set("Content-Type", "application/xml")
		req.Header.Set("Depth", "1")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			return backoff.Permanent(entities.ErrCalendarCredentials)
		case resp.StatusCode >= 500:
			return fmt.Errorf("caldav returned status %d", resp.StatusCode)
		case resp.StatusCode >= 400:
			return backoff.Permanent(fmt.Errorf("caldav returned status %d", resp.StatusCode))
		}

		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(resp.Body); err != nil {
			return fmt.Errorf("failed to read caldav response: %w", err)
		}
		payload = buf.Bytes()
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return c.parseMultistatus(payload)
}

// parseMultistatus extracts VEVENTs from a multistatus body.
func (c *Client) parseMultistatus(payload []byte) ([]entities.Meeting, error) {
	var ms multistatus
	if err := xml.Unmarshal(payload, &ms); err != nil {
		return nil, fmt.Errorf("failed to parse caldav response: %w", err)
	}

	var meetings []entities.Meeting
	for _, resp := range ms.Responses {
		for _, ps := range resp.Propstats {
			ical := ps.Prop.CalendarData
			if ical == "" || !strings.Contains(ical, "VEVENT") {
				continue
			}

			event := parseICalEvent(ical)
			if event.Start == "" {
				continue
			}

			startDT := parseICalTime(event.Start, c.now)
			endValue := event.End
			if endValue == "" {
				endValue = event.Start
			}
			endDT := parseICalTime(endValue, c.now)

			title := event.Summary
			if title == "" {
				title = "No Title"
			}

			meetings = append(meetings, entities.Meeting{
				Title:           title,
				Date:            startDT.Format("2006-01-02"),
				StartTime:       startDT.Format("15:04"),
				EndTime:         endDT.Format("15:04"),
				DurationMinutes: int(endDT.Sub(startDT).Minutes()),
				Organizer:       event.Organizer,
				Attendees:       []string{},
				MeetingType:     entities.MeetingTypeExternal,
				Description:     event.Description,
				Recurring:       event.Recurring,
				Source:          entities.MeetingSourceApple,
			})
		}
	}

	return meetings, nil
}
