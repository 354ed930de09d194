package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/chief-of-staff/errors"
	"github.com/johnquangdev/chief-of-staff/internal/domain/entities"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps domain sentinel errors onto transport errors. Anything
// unrecognized becomes an internal server error.
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, entities.ErrUserNotFound):
		return errors.ErrUserNotFound()
	case stdErrors.Is(err, entities.ErrInvalidToken),
		stdErrors.Is(err, entities.ErrSessionExpired),
		stdErrors.Is(err, entities.ErrSessionNotFound),
		stdErrors.Is(err, entities.ErrUnauthorized):
		return errors.ErrUnauthenticated()
	case stdErrors.Is(err, entities.ErrOAuthStateMismatch),
		stdErrors.Is(err, entities.ErrOAuthCodeInvalid):
		return errors.ErrOAuthFailed("google", err)
	case stdErrors.Is(err, entities.ErrCalendarAccountNotFound):
		return errors.ErrCalendarSourceNotFound("")
	case stdErrors.Is(err, entities.ErrCalendarNotConnected):
		return errors.ErrCalendarNotConnected("requested provider")
	case stdErrors.Is(err, entities.ErrCalendarCredentials):
		return errors.ErrCalendarInvalidCredentials("calendar provider")
	case stdErrors.Is(err, entities.ErrCalendarUnavailable):
		return errors.ErrCalendarUpstreamFailed("calendar provider", err)
	case stdErrors.Is(err, entities.ErrInvalidFeedbackAction):
		return errors.ErrInvalidArgument("action must be keep, delegate or decline")
	default:
		return errors.ErrInternal(err)
	}
}
