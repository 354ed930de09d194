package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/chief-of-staff/errors"
	authdto "github.com/johnquangdev/chief-of-staff/internal/adapter/dto/auth"
	"github.com/johnquangdev/chief-of-staff/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/chief-of-staff/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	oauthService *auth.OAuthService
	logger       *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(oauthService *auth.OAuthService, logger *zap.Logger) *Auth {
	return &Auth{
		oauthService: oauthService,
		logger:       logger,
	}
}

// GoogleLogin starts the Google OAuth flow
// GET /v1/auth/google/login
func (h *Auth) GoogleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	authURL, err := h.oauthService.GetGoogleAuthURL(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, authdto.LoginURLResponse{
		URL:   authURL.URL,
		State: authURL.State,
	})
}

// GoogleCallback handles the OAuth callback from Google
// GET /v1/auth/google/callback
func (h *Auth) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing code or state parameter"))
	}

	response, err := h.oauthService.HandleGoogleCallback(ctx, &auth.GoogleCallbackRequest{
		Code:  code,
		State: state,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, authdto.AuthResponse{
		AccessToken:  response.AccessToken,
		RefreshToken: response.RefreshToken,
		ExpiresIn:    response.ExpiresIn,
		TokenType:    "Bearer",
		User:         response.User.ToPublic(),
	})
}

// RefreshToken refreshes the access token
// POST /v1/auth/refresh
func (h *Auth) RefreshToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req authdto.RefreshTokenRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing refresh token"))
	}

	response, err := h.oauthService.RefreshAccessToken(ctx, req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, authdto.RefreshTokenResponse{
		AccessToken: response.AccessToken,
		ExpiresIn:   response.ExpiresIn,
		TokenType:   "Bearer",
	})
}

// Logout revokes the current session
// POST /v1/auth/logout
func (h *Auth) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	var req authdto.LogoutRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing refresh token"))
	}

	if err := h.oauthService.Logout(ctx, req.RefreshToken); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, map[string]string{
		"message": "Logged out successfully",
	})
}

// Me returns the current user information
// GET /v1/auth/me
func (h *Auth) Me(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	return HandleSuccess(h.logger, c, user.ToPublic())
}
