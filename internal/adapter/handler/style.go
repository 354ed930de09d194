package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/chief-of-staff/errors"
	styledto "github.com/johnquangdev/chief-of-staff/internal/adapter/dto/style"
	"github.com/johnquangdev/chief-of-staff/internal/usecase/style"
	"github.com/johnquangdev/chief-of-staff/pkg/validator"
)

// Style handles communication style HTTP requests
type Style struct {
	checker   *style.Checker
	validator *validator.CustomValidator
	logger    *zap.Logger
}

// NewStyle creates a new style handler
func NewStyle(checker *style.Checker, v *validator.CustomValidator, logger *zap.Logger) *Style {
	return &Style{
		checker:   checker,
		validator: v,
		logger:    logger,
	}
}

// Check runs the style rulebook over a piece of text
// POST /v1/style/check
func (h *Style) Check(c echo.Context) error {
	var req styledto.CheckRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	if err := h.validator.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("text is required"))
	}
	if strings.TrimSpace(req.Text) == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("text is required"))
	}

	report := h.checker.Check(req.Text)
	return HandleSuccess(h.logger, c, report)
}
