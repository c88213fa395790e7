package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harir2002/cyber-resilience-Quiz/internal/config"
	"github.com/harir2002/cyber-resilience-Quiz/internal/database"
	"github.com/harir2002/cyber-resilience-Quiz/internal/handler"
	"github.com/harir2002/cyber-resilience-Quiz/internal/logger"
	"github.com/harir2002/cyber-resilience-Quiz/internal/questionnaire"
	"github.com/harir2002/cyber-resilience-Quiz/internal/repository"
	"github.com/harir2002/cyber-resilience-Quiz/internal/router"
	"github.com/harir2002/cyber-resilience-Quiz/internal/service"
	"github.com/harir2002/cyber-resilience-Quiz/internal/validator"
	"github.com/harir2002/cyber-resilience-Quiz/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Cyber Resilience Assessment Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Load Questionnaire Schema ─────────────────────────────────────
	schema := questionnaire.Default()
	log.Info().
		Int("questions", schema.QuestionCount()).
		Int("max_score", schema.MaxScore()).
		Msg("Questionnaire schema loaded")

	// ─── Initialize Repositories ───────────────────────────────────────
	companyRepo := repository.NewCompanyRepository(pool)
	assessmentRepo := repository.NewAssessmentRepository(pool)
	responseRepo := repository.NewResponseRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb, adminRepo)
	notifier := service.NewRedisNotifier(rdb, logger.Component(log, "notifier"))
	schemaService := service.NewSchemaService(schema, rdb, logger.Component(log, "schema_service"))
	assessmentService := service.NewAssessmentService(
		schema, companyRepo, assessmentRepo, responseRepo, notifier,
		logger.Component(log, "assessment_service"),
	)
	statsService := service.NewStatsService(companyRepo, assessmentRepo, rdb, logger.Component(log, "stats_service"))
	reportService := service.NewReportService(assessmentRepo, logger.Component(log, "report_service"))

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Schema:     handler.NewSchemaHandler(schemaService),
		Config:     handler.NewConfigHandler(),
		Assessment: handler.NewAssessmentHandler(assessmentService, statsService),
		Admin:      handler.NewAdminHandler(assessmentService, reportService),
		WS:         handler.NewWSHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	emailWorker := worker.NewEmailWorker(pool, rdb, cfg, log)
	go emailWorker.Start(workerCtx)

	// ─── Prewarm Redis Caches ─────────────────────────────────────────
	// Render the schema payload into Redis before accepting traffic.
	schemaService.Payload(ctx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and wait for queues to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
