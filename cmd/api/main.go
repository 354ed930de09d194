package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/chief-of-staff/pkg/validator"

	"github.com/johnquangdev/chief-of-staff/internal/adapter/handler"
	"github.com/johnquangdev/chief-of-staff/internal/adapter/repository"
	"github.com/johnquangdev/chief-of-staff/internal/infrastructure/cache"
	"github.com/johnquangdev/chief-of-staff/internal/infrastructure/database"
	"github.com/johnquangdev/chief-of-staff/internal/infrastructure/external/caldav"
	"github.com/johnquangdev/chief-of-staff/internal/infrastructure/external/googlecal"
	"github.com/johnquangdev/chief-of-staff/internal/infrastructure/external/oauth"
	"github.com/johnquangdev/chief-of-staff/internal/infrastructure/storage"
	"github.com/johnquangdev/chief-of-staff/internal/usecase/audit"
	"github.com/johnquangdev/chief-of-staff/internal/usecase/auth"
	"github.com/johnquangdev/chief-of-staff/internal/usecase/calendar"
	"github.com/johnquangdev/chief-of-staff/internal/usecase/feedback"
	"github.com/johnquangdev/chief-of-staff/internal/usecase/style"
	"github.com/johnquangdev/chief-of-staff/pkg/config"
	"github.com/johnquangdev/chief-of-staff/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	v := pkgvalidator.New()
	e.Validator = v

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("🔄 Running schema migrations...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize cache store. Redis is preferred; fall back to the
	// in-memory store so a missing Redis never blocks local development.
	log.Println("📦 Connecting to Redis...")
	var store cache.Store
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable, falling back to in-memory store: %v", err)
		store = cache.NewMemoryStore()
	} else {
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient)
	}

	// Initialize object storage for import snapshots (optional)
	log.Println("🗄️  Initializing snapshot storage...")
	var archiver calendar.SnapshotArchiver
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Printf("⚠️  Object storage unavailable, import snapshots disabled: %v", err)
	} else {
		archiver = minioClient
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	calendarAccountRepo := repository.NewCalendarAccountRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Initialize OAuth provider
	log.Println("🔐 Initializing OAuth provider...")
	googleProvider := oauth.NewGoogleProvider(
		cfg.OAuth.Google.ClientID,
		cfg.OAuth.Google.ClientSecret,
		cfg.OAuth.Google.RedirectURL,
	)

	// Initialize state manager for CSRF protection
	log.Println("🔒 Initializing state manager...")
	stateManager := oauth.NewStateManager(store)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize OAuth service
	log.Println("✨ Initializing OAuth service...")
	oauthService := auth.NewOAuthService(
		userRepo,
		sessionRepo,
		calendarAccountRepo,
		googleProvider,
		stateManager,
		jwtManager,
		logger,
	)

	// Initialize calendar connectors
	log.Println("📅 Initializing calendar connectors...")
	googleMaker := func(ctx context.Context, token *oauth2.Token) calendar.GoogleFetcher {
		return googlecal.NewClient(googleProvider.NewClient(ctx, token))
	}
	appleClient := caldav.NewClient(
		&http.Client{Timeout: cfg.Calendar.RequestTimeout},
		caldav.WithBaseURL(cfg.Calendar.CalDAVBaseURL),
	)
	calendarService := calendar.NewService(
		calendarAccountRepo,
		googleMaker,
		appleClient,
		archiver,
		cfg.Calendar.CSVPath,
		logger,
	)

	// Initialize audit pipeline
	log.Println("📊 Initializing audit service...")
	auditService := audit.NewService(logger)

	// Initialize style checker
	log.Println("✍️  Initializing style checker...")
	styleChecker := style.NewChecker()
	if cfg.Style.ExtendedChecks {
		styleChecker = style.NewExtendedChecker()
	}

	// Initialize feedback service
	log.Println("📝 Initializing feedback service...")
	feedbackService := feedback.NewService(feedbackRepo, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	auditHandler := handler.NewAudit(auditService, calendarService, store, cfg.Calendar.BriefingCache, logger)
	styleHandler := handler.NewStyle(styleChecker, v, logger)
	feedbackHandler := handler.NewFeedback(feedbackService, v, logger)
	calendarHandler := handler.NewCalendar(calendarService, v, logger)
	authHandler := handler.NewAuth(oauthService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, auditHandler, styleHandler, feedbackHandler, calendarHandler, authHandler, oauthService)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
