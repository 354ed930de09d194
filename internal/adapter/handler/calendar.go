package handler

import (
	"io"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/chief-of-staff/errors"
	calendardto "github.com/johnquangdev/chief-of-staff/internal/adapter/dto/calendar"
	"github.com/johnquangdev/chief-of-staff/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/chief-of-staff/internal/usecase/calendar"
	"github.com/johnquangdev/chief-of-staff/pkg/validator"
)

// Calendar handles calendar source HTTP requests
type Calendar struct {
	service   *calendar.Service
	validator *validator.CustomValidator
	logger    *zap.Logger
}

// NewCalendar creates a new calendar handler
func NewCalendar(service *calendar.Service, v *validator.CustomValidator, logger *zap.Logger) *Calendar {
	return &Calendar{
		service:   service,
		validator: v,
		logger:    logger,
	}
}

// Import parses an uploaded CSV calendar export
// POST /v1/calendar/import
func (h *Calendar) Import(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("multipart field \"file\" is required"))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	meetings, err := h.service.ImportCSV(c.Request().Context(), userID, string(content))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrCalendarParseFailed("csv", err))
	}

	return HandleSuccess(h.logger, c, calendardto.ImportResponse{
		Imported: len(meetings),
		Meetings: meetings,
	})
}

// GoogleEvents fetches upcoming events from the connected Google calendar
// GET /v1/calendar/google/events
func (h *Calendar) GoogleEvents(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meetings, err := h.service.GoogleEvents(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, calendardto.EventsResponse{
		Events: meetings,
		Source: "google",
	})
}

// AppleConnect verifies CalDAV credentials and stores the connection
// POST /v1/calendar/apple/connect
func (h *Calendar) AppleConnect(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req calendardto.AppleConnectRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	if err := h.validator.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Apple ID and app-specific password required"))
	}

	meetings, err := h.service.ConnectApple(c.Request().Context(), userID, req.AppleID, req.AppPassword)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, calendardto.ConnectResponse{
		Events:    meetings,
		Source:    "apple",
		Connected: true,
	})
}

// Sync merges events from every connected source
// GET /v1/calendar/sync
func (h *Calendar) Sync(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meetings, err := h.service.Sync(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, calendardto.SyncResponse{
		Meetings: meetings,
		Total:    len(meetings),
	})
}
