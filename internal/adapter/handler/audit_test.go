package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
	"github.com/johnquangdev/chief-of-staff/internal/infrastructure/cache"
	"github.com/johnquangdev/chief-of-staff/internal/usecase/audit"
)

type fakeLoader struct {
	meetings []entities.Meeting
	err      error
}

func (f *fakeLoader) LoadLocalCSV() ([]entities.Meeting, error) {
	return f.meetings, f.err
}

func testMeetings() []entities.Meeting {
	return []entities.Meeting{
		{
			ID: 1, Title: "Daily standup", Date: "2025-03-03",
			StartTime: "09:00", EndTime: "09:15", DurationMinutes: 15,
			Organizer: "sarah@corp.example", Attendees: []string{"sarah@corp.example"},
			MeetingType: entities.MeetingTypeStandup, Recurring: true,
		},
		{
			ID: 2, Title: "Platform architecture review", Date: "2025-03-04",
			StartTime: "14:00", EndTime: "15:30", DurationMinutes: 90,
			Organizer: "cto@corp.example", Attendees: []string{"cto@corp.example"},
			MeetingType: entities.MeetingTypeArchitecture,
			Description: "Multi-region platform migration plan",
		},
	}
}

func newAuditHandler(loader MeetingLoader, store cache.Store) *Audit {
	return NewAudit(audit.NewService(zap.NewNop()), loader, store, time.Minute, zap.NewNop())
}

func TestAuditRun(t *testing.T) {
	e := echo.New()
	h := newAuditHandler(&fakeLoader{meetings: testMeetings()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/audit", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Run(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Summary  entities.AuditSummary  `json:"summary"`
			Meetings []entities.AuditResult `json:"meetings"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Data.Summary.TotalMeetings)
	require.Len(t, body.Data.Meetings, 2)
	// Lowest score first so problems surface at the top.
	assert.LessOrEqual(t, body.Data.Meetings[0].AlignmentScore, body.Data.Meetings[1].AlignmentScore)
}

func TestAuditRunMissingCSV(t *testing.T) {
	e := echo.New()
	h := newAuditHandler(&fakeLoader{err: os.ErrNotExist}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/audit", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Run(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuditBriefing(t *testing.T) {
	e := echo.New()
	h := newAuditHandler(&fakeLoader{meetings: testMeetings()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/audit/briefing?date=2025-03-04", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Briefing(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data entities.DailyBriefing `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "2025-03-04", body.Data.Date)
	assert.Equal(t, 1, body.Data.TotalMeetings)
	assert.InDelta(t, 1.5, body.Data.TotalHours, 0.001)
}

func TestAuditBriefingBadDate(t *testing.T) {
	e := echo.New()
	h := newAuditHandler(&fakeLoader{meetings: testMeetings()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/audit/briefing?date=03-04-2025", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Briefing(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuditBriefingUsesCache(t *testing.T) {
	e := echo.New()
	loader := &fakeLoader{meetings: testMeetings()}
	store := cache.NewMemoryStore()
	h := newAuditHandler(loader, store)

	req := httptest.NewRequest(http.MethodGet, "/v1/audit/briefing?date=2025-03-04", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Briefing(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Second request is served from the cache even when the loader breaks.
	loader.err = os.ErrNotExist
	rec = httptest.NewRecorder()
	require.NoError(t, h.Briefing(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuditDates(t *testing.T) {
	e := echo.New()
	h := newAuditHandler(&fakeLoader{meetings: testMeetings()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/audit/dates", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Dates(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Dates []string `json:"dates"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"2025-03-03", "2025-03-04"}, body.Data.Dates)
}
