// Package main is the entrypoint for the BizMatchKE API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bizmatchke/bizmatchke/internal/auth"
	"github.com/bizmatchke/bizmatchke/internal/cache"
	"github.com/bizmatchke/bizmatchke/internal/config"
	"github.com/bizmatchke/bizmatchke/internal/handler"
	"github.com/bizmatchke/bizmatchke/internal/ideagen"
	"github.com/bizmatchke/bizmatchke/internal/metrics"
	"github.com/bizmatchke/bizmatchke/internal/middleware"
	"github.com/bizmatchke/bizmatchke/internal/ratelimit"
	"github.com/bizmatchke/bizmatchke/internal/repository"
	"github.com/bizmatchke/bizmatchke/internal/server"
	"github.com/bizmatchke/bizmatchke/internal/service"
)

func main() {
	// Initialize context
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Initialize the rate limit store. Redis shares counters across
	// instances; without it counters live in process memory.
	var (
		limitStore   ratelimit.Store
		cacheChecker handler.HealthChecker
	)
	if cfg.RedisURL != "" {
		cacheClient, err := cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			os.Exit(1)
		}
		defer cacheClient.Close()
		logger.Info("connected to Redis")

		limitStore = cacheClient
		cacheChecker = cacheClient
	} else {
		limitStore = ratelimit.NewMemoryStore()
		logger.Info("no REDIS_URL configured, using in-memory rate limiting")
	}

	// Initialize the idea generator. Without an API key the generator
	// serves curated fallback ideas only.
	recorder := metrics.NewInMemory()

	var textGen ideagen.TextGenerator
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := ideagen.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("failed to initialize Gemini client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer geminiClient.Close()
		logger.Info("Gemini client initialized", slog.String("model", cfg.GeminiModel))

		textGen = geminiClient
	} else {
		logger.Info("no GEMINI_API_KEY configured, idea generation uses fallback catalog")
	}
	generator := ideagen.NewGenerator(textGen, logger, recorder, cfg.GenerateTimeout)

	// Session cookie codec
	sessions := auth.NewSessionCodec(cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())

	// Initialize services
	authService := service.NewAuthService(repo, recorder)
	ideaService := service.NewIdeaService(repo, recorder)
	projectionService := service.NewProjectionService(repo, recorder)
	statsService := service.NewStatsService(repo)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheChecker)
	authHandler := handler.NewAuthHandler(authService, sessions, logger)
	ideaHandler := handler.NewIdeaHandler(ideaService, logger)
	projectionHandler := handler.NewProjectionHandler(projectionService, logger)
	generateHandler := handler.NewGenerateHandler(generator, logger)
	statsHandler := handler.NewStatsHandler(statsService, logger)

	// Setup router
	r := setupRouter(routerDeps{
		h:                 h,
		healthHandler:     healthHandler,
		authHandler:       authHandler,
		ideaHandler:       ideaHandler,
		projectionHandler: projectionHandler,
		generateHandler:   generateHandler,
		statsHandler:      statsHandler,
		sessions:          sessions,
		limitStore:        limitStore,
		recorder:          recorder,
		cfg:               cfg,
		logger:            logger,
	})

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"site_url", cfg.SiteURL,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type routerDeps struct {
	h                 *handler.Handler
	healthHandler     *handler.HealthHandler
	authHandler       *handler.AuthHandler
	ideaHandler       *handler.IdeaHandler
	projectionHandler *handler.ProjectionHandler
	generateHandler   *handler.GenerateHandler
	statsHandler      *handler.StatsHandler
	sessions          *auth.SessionCodec
	limitStore        ratelimit.Store
	recorder          metrics.Recorder
	cfg               *config.Config
	logger            *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(d routerDeps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.logger))
	r.Use(middleware.Recoverer(d.logger))
	r.Use(chimiddleware.RequestSize(d.cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = d.cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health endpoints (no auth required)
	r.Get("/healthz", d.healthHandler.Healthz)
	r.Get("/readyz", d.healthHandler.Readyz)

	// Root info endpoint
	r.Get("/", d.h.Hello)

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:   d.logger,
		Store:    d.limitStore,
		Metrics:  d.recorder,
		Enabled:  d.cfg.RateLimitEnabled,
		Requests: d.cfg.RateLimitRequests,
		Window:   d.cfg.RateLimitWindow,
	}

	r.Route("/api", func(r chi.Router) {
		// Rate limit everything under /api
		r.Use(middleware.RateLimit(rateLimitCfg))

		// Auth endpoints reachable without a session
		r.Post("/auth/register", d.authHandler.Register)
		r.Post("/auth/login", d.authHandler.Login)
		r.Post("/auth/logout", d.authHandler.Logout)
		r.Post("/auth/signout", d.authHandler.Signout)

		// Everything else requires a valid session cookie
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(d.sessions, d.logger))

			r.Get("/auth/me", d.authHandler.Me)
			r.Post("/auth/update-profile", d.authHandler.UpdateProfile)
			r.Post("/auth/update-password", d.authHandler.UpdatePassword)

			r.Get("/business-ideas", d.ideaHandler.List)
			r.Post("/business-ideas", d.ideaHandler.Create)
			r.Delete("/business-ideas/{id}", d.ideaHandler.Delete)

			r.Get("/financial-projections", d.projectionHandler.List)
			r.Post("/financial-projections", d.projectionHandler.Create)
			r.Get("/financial-projections/{id}", d.projectionHandler.Get)
			r.Delete("/financial-projections/{id}", d.projectionHandler.Delete)

			r.Post("/generate-ideas", d.generateHandler.Generate)
			r.Get("/stats", d.statsHandler.Get)
		})
	})

	// 404 and 405 handlers
	r.NotFound(d.h.NotFound)
	r.MethodNotAllowed(d.h.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
