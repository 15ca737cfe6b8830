package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/careloop/caregiver-api/internal/config"
	"github.com/careloop/caregiver-api/internal/handler"
	auditHandler "github.com/careloop/caregiver-api/internal/handler/audit"
	caretakerHandler "github.com/careloop/caregiver-api/internal/handler/caretaker"
	partnerHandler "github.com/careloop/caregiver-api/internal/handler/partner"
	"github.com/careloop/caregiver-api/internal/kvstore"
	"github.com/careloop/caregiver-api/internal/middleware"
	"github.com/careloop/caregiver-api/internal/repository/postgres"
	"github.com/careloop/caregiver-api/internal/router"
	auditService "github.com/careloop/caregiver-api/internal/service/audit"
	caretakerService "github.com/careloop/caregiver-api/internal/service/caretaker"
	partnerService "github.com/careloop/caregiver-api/internal/service/partner"
	"github.com/careloop/caregiver-api/pkg/logger"
	"github.com/careloop/caregiver-api/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)
	appMetrics := metrics.NewMetrics("careloop", "caregiver_api")

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize repositories
	caretakerRepo := postgres.NewCaretakerRepository(db)
	userRepo := postgres.NewUserRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	// Partner code store: Redis when configured, process memory otherwise
	var codeStore kvstore.Store
	if cfg.Redis.URL != "" {
		codeStore, err = kvstore.NewRedisStore(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
	} else {
		codeStore = kvstore.NewMemoryStore()
	}
	defer codeStore.Close()

	// Initialize services
	auditSvc := auditService.NewService(auditRepo, userRepo)
	auditor := auditService.NewRecorder(auditSvc, appLogger, appMetrics)
	caretakerSvc := caretakerService.NewService(caretakerRepo, userRepo, auditor)
	partnerSvc := partnerService.NewService(codeStore, cfg.Partner.CodeTTL, appMetrics)

	// Initialize handlers
	h := handler.NewHandler(db)
	caretakerH := caretakerHandler.NewHandler(caretakerSvc)
	partnerH := partnerHandler.NewHandler(partnerSvc)
	auditH := auditHandler.NewHandler(auditSvc)

	// Setup router
	r := router.NewRouter(caretakerH, partnerH, auditH, h, router.RouterConfig{
		RateLimit: middleware.RateLimiterConfig{
			Rate:  rate.Limit(100),
			Burst: 200,
		},
		CORSConfig:    middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigin),
		MetricsPrefix: "caregiver_api",
	})
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	// Start server
	go func() {
		appLogger.Info("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
