package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/chief-of-staff/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/chief-of-staff/internal/usecase/auth"
	"github.com/johnquangdev/chief-of-staff/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	auditHandler    *Audit
	styleHandler    *Style
	feedbackHandler *Feedback
	calendarHandler *Calendar
	authHandler     *Auth
	oauthService    *auth.OAuthService
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	auditHandler *Audit,
	styleHandler *Style,
	feedbackHandler *Feedback,
	calendarHandler *Calendar,
	authHandler *Auth,
	oauthService *auth.OAuthService,
) *Router {
	return &Router{
		cfg:             cfg,
		auditHandler:    auditHandler,
		styleHandler:    styleHandler,
		feedbackHandler: feedbackHandler,
		calendarHandler: calendarHandler,
		authHandler:     authHandler,
		oauthService:    oauthService,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuditRoutes(v1)
	rt.setupStyleRoutes(v1)
	rt.setupFeedbackRoutes(v1)
	rt.setupCalendarRoutes(v1)
	rt.setupAuthRoutes(v1)
}

// setupAuditRoutes configures calendar audit routes
func (rt *Router) setupAuditRoutes(g *echo.Group) {
	auditGroup := g.Group("/audit")
	auditGroup.GET("", rt.auditHandler.Run)
	auditGroup.GET("/briefing", rt.auditHandler.Briefing)
	auditGroup.GET("/dates", rt.auditHandler.Dates)
}

// setupStyleRoutes configures style checker routes
func (rt *Router) setupStyleRoutes(g *echo.Group) {
	g.POST("/style/check", rt.styleHandler.Check)
}

// setupFeedbackRoutes configures feedback routes
func (rt *Router) setupFeedbackRoutes(g *echo.Group) {
	g.POST("/feedback", rt.feedbackHandler.Create)
	g.GET("/feedback", rt.feedbackHandler.List)
}

// setupCalendarRoutes configures calendar source routes. All of them
// operate on the authenticated user's connections.
func (rt *Router) setupCalendarRoutes(g *echo.Group) {
	calGroup := g.Group("/calendar", middleware.EchoAuth(rt.oauthService))
	calGroup.POST("/import", rt.calendarHandler.Import)
	calGroup.GET("/google/events", rt.calendarHandler.GoogleEvents)
	calGroup.POST("/apple/connect", rt.calendarHandler.AppleConnect)
	calGroup.GET("/sync", rt.calendarHandler.Sync)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.GET("/google/login", rt.authHandler.GoogleLogin)
	authGroup.GET("/google/callback", rt.authHandler.GoogleCallback)
	authGroup.POST("/refresh", rt.authHandler.RefreshToken)
	authGroup.POST("/logout", rt.authHandler.Logout)
	authGroup.GET("/me", rt.authHandler.Me, middleware.EchoAuth(rt.oauthService))
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"service":   "chief-of-staff",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
