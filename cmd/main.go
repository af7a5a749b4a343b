package main

import (
	"context"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/gustavosilvabr/portfolio-service/config"
	database "github.com/gustavosilvabr/portfolio-service/internal/core"
	"github.com/gustavosilvabr/portfolio-service/internal/core/domain"
	"github.com/gustavosilvabr/portfolio-service/internal/core/repository"
	"github.com/gustavosilvabr/portfolio-service/internal/logger"
	logicv1 "github.com/gustavosilvabr/portfolio-service/internal/logic/v1"
	"github.com/gustavosilvabr/portfolio-service/internal/web/templates"
	webv1 "github.com/gustavosilvabr/portfolio-service/internal/web/v1"
	"github.com/gustavosilvabr/portfolio-service/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		panic("Configuration validation failed: " + err.Error())
	}

	logger.Setup(cfg.Logging.Level)

	log.Info().
		Str("service", cfg.Service.Name).
		Str("version", cfg.Service.Version).
		Str("env", cfg.Service.Env).
		Str("port", cfg.Service.Port).
		Msg("Service starting")

	// Initialize OpenTelemetry tracing
	var tp interface{ Shutdown(context.Context) error }
	var err error
	if cfg.Tracing.Enabled {
		tp, err = middleware.InitTracing(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize tracing")
		} else {
			log.Info().
				Str("endpoint", cfg.Tracing.Endpoint).
				Float64("sample_rate", cfg.Tracing.SampleRate).
				Msg("Tracing initialized")
		}
	} else {
		log.Info().Msg("Tracing disabled (TRACING_ENABLED=false)")
	}

	// Initialize Pyroscope profiling
	if cfg.Profiling.Enabled {
		if err := middleware.InitProfiling(cfg); err != nil {
			log.Warn().Err(err).Msg("Failed to initialize profiling")
		} else {
			log.Info().
				Str("endpoint", cfg.Profiling.Endpoint).
				Msg("Profiling initialized")
			defer middleware.StopProfiling()
		}
	} else {
		log.Info().Msg("Profiling disabled (PROFILING_ENABLED=false)")
	}

	// Session store (embedded, survives restarts)
	sessions, err := repository.NewSessionStore(cfg.Auth.SessionStorePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open session store")
	}
	defer sessions.Close()
	log.Info().Str("path", cfg.Auth.SessionStorePath).Msg("Session store opened")

	// Contact-message storage: pgx pool when a database is configured,
	// in-memory otherwise.
	var messages domain.MessageRepository
	if cfg.Database.URL != "" {
		pool, err := database.Connect(context.Background(), cfg.Database.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer pool.Close()
		if err := database.EnsureSchema(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure database schema")
		}
		messages = repository.NewMessageRepository(pool)
		log.Info().Msg("Database connection pool established")
	} else {
		messages = repository.NewMemoryMessageRepository()
		log.Warn().Msg("DATABASE_URL not set, contact messages are kept in memory")
	}

	// Wire the logic layer
	notifier := logicv1.LogNotifier{}
	verifier, err := logicv1.NewFixedPairVerifier(
		cfg.Auth.AdminUsername,
		cfg.Auth.AdminPassword,
		cfg.Auth.AdminPasswordHash,
		cfg.Auth.LoginDelay,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build credential verifier")
	}
	gate := logicv1.NewSessionGate(sessions, verifier, notifier)

	// Restore the persisted session before serving traffic, so the route
	// guard never sees a half-initialized gate.
	gate.Restore(context.Background())

	projects := logicv1.NewProjectService(
		repository.NewProjectSource(cfg.GitHub.Token),
		cfg.GitHub.Username,
		cfg.GitHub.CacheTTL,
	)
	contact := logicv1.NewContactService(messages, notifier)
	dashboard := logicv1.NewDashboardService(projects, contact)

	if cfg.Service.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	var isShuttingDown atomic.Bool

	// Tracing middleware
	r.Use(middleware.TracingMiddleware(cfg.Service.Name))

	// Logging middleware
	r.Use(middleware.LoggingMiddleware())

	// Prometheus middleware
	r.Use(middleware.PrometheusMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness check
	// Returns 503 once shutdown has started, to drain traffic before HTTP shutdown.
	r.GET("/ready", func(c *gin.Context) {
		if isShuttingDown.Load() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "shutting_down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Site routes
	r.SetHTMLTemplate(templates.Parse())
	handler := webv1.NewHandler(gate, projects, contact, dashboard)
	handler.RegisterRoutes(r)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Service.Port,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Service.Port).Msg("Starting portfolio service")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received")

	// Fail readiness first and wait for propagation, so load balancers stop
	// routing new requests before the server refuses connections.
	isShuttingDown.Store(true)
	drainDelay := cfg.GetReadinessDrainDelayDuration()
	if drainDelay > 0 {
		log.Info().Dur("delay", drainDelay).Msg("Readiness drain delay started")
		time.Sleep(drainDelay)
		log.Info().Dur("delay", drainDelay).Msg("Readiness drain delay completed")
	}

	shutdownTimeout := cfg.GetShutdownTimeoutDuration()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info().Dur("timeout", shutdownTimeout).Msg("Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	} else {
		log.Info().Msg("HTTP server shutdown complete")
	}

	if tp != nil {
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Tracer shutdown error")
		} else {
			log.Info().Msg("Tracer shutdown complete")
		}
	}

	log.Info().Msg("Graceful shutdown complete")
}
