package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/chief-of-staff/errors"
	feedbackdto "github.com/johnquangdev/chief-of-staff/internal/adapter/dto/feedback"
	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
	"github.com/johnquangdev/chief-of-staff/internal/usecase/feedback"
	"github.com/johnquangdev/chief-of-staff/pkg/validator"
)

// Feedback handles meeting decision HTTP requests
type Feedback struct {
	service   *feedback.Service
	validator *validator.CustomValidator
	logger    *zap.Logger
}

// NewFeedback creates a new feedback handler
func NewFeedback(service *feedback.Service, v *validator.CustomValidator, logger *zap.Logger) *Feedback {
	return &Feedback{
		service:   service,
		validator: v,
		logger:    logger,
	}
}

// Create records a keep/delegate/decline decision
// POST /v1/feedback
func (h *Feedback) Create(c echo.Context) error {
	var req feedbackdto.CreateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	if err := h.validator.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting_id and a valid action are required"))
	}

	fb, err := h.service.Record(c.Request().Context(), req.MeetingID, entities.FeedbackAction(req.Action), req.Notes)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, fb)
}

// List returns recorded decisions, optionally scoped to one meeting
// GET /v1/feedback?meeting_id=N
func (h *Feedback) List(c echo.Context) error {
	if raw := c.QueryParam("meeting_id"); raw != "" {
		meetingID, err := strconv.Atoi(raw)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting_id must be an integer"))
		}

		entries, err := h.service.ListByMeeting(c.Request().Context(), meetingID)
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		return HandleSuccess(h.logger, c, entries)
	}

	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, entries)
}
