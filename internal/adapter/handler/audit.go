package handler

import (
	"encoding/json"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/chief-of-staff/errors"
	auditdto "github.com/johnquangdev/chief-of-staff/internal/adapter/dto/audit"
	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
	"github.com/johnquangdev/chief-of-staff/internal/infrastructure/cache"
	"github.com/johnquangdev/chief-of-staff/internal/usecase/audit"
)

// MeetingLoader supplies the calendar entries the audit runs over.
type MeetingLoader interface {
	LoadLocalCSV() ([]entities.Meeting, error)
}

// Audit handles calendar audit HTTP requests
type Audit struct {
	auditService *audit.Service
	meetings     MeetingLoader
	cache        cache.Store
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewAudit creates a new audit handler. cache may be nil to disable
// briefing caching.
func NewAudit(auditService *audit.Service, meetings MeetingLoader, store cache.Store, cacheTTL time.Duration, logger *zap.Logger) *Audit {
	return &Audit{
		auditService: auditService,
		meetings:     meetings,
		cache:        store,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// Run performs the full calendar audit
// GET /v1/audit
func (h *Audit) Run(c echo.Context) error {
	meetings, err := h.loadMeetings()
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	results, summary := h.auditService.Audit(meetings)

	return HandleSuccess(h.logger, c, auditdto.AuditResponse{
		Summary:  summary,
		Meetings: results,
	})
}

// Briefing returns the audit filtered to one date
// GET /v1/audit/briefing?date=YYYY-MM-DD
func (h *Audit) Briefing(c echo.Context) error {
	date := c.QueryParam("date")

	if h.cache != nil && date != "" {
		if cached, ok := h.cache.Get(briefingCacheKey(date)); ok {
			var briefing entities.DailyBriefing
			if err := json.Unmarshal([]byte(cached), &briefing); err == nil {
				return HandleSuccess(h.logger, c, &briefing)
			}
		}
	}

	meetings, err := h.loadMeetings()
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	briefing, err := h.auditService.DailyBriefing(meetings, date)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if h.cache != nil && date != "" {
		if payload, err := json.Marshal(briefing); err == nil {
			h.cache.Set(briefingCacheKey(date), string(payload), h.cacheTTL)
		}
	}

	return HandleSuccess(h.logger, c, briefing)
}

// Dates lists the distinct dates present in the calendar
// GET /v1/audit/dates
func (h *Audit) Dates(c echo.Context) error {
	meetings, err := h.loadMeetings()
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, auditdto.DatesResponse{
		Dates: h.auditService.AvailableDates(meetings),
	})
}

func (h *Audit) loadMeetings() ([]entities.Meeting, error) {
	meetings, err := h.meetings.LoadLocalCSV()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrNotFound("Calendar CSV")
		}
		return nil, err
	}
	return meetings, nil
}

func briefingCacheKey(date string) string {
	return "briefing:" + date
}
