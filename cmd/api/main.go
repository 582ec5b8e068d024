package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/config"
	httpHandler "github.com/abel4moyo/zimnat-api-sub002/internal/adapter/http/handler"
	pgStorage "github.com/abel4moyo/zimnat-api-sub002/internal/adapter/storage/postgres"
	redisStorage "github.com/abel4moyo/zimnat-api-sub002/internal/adapter/storage/redis"
	"github.com/abel4moyo/zimnat-api-sub002/internal/core/ports"
	"github.com/abel4moyo/zimnat-api-sub002/internal/service"
	"github.com/abel4moyo/zimnat-api-sub002/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Zimnat payment integration API")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Initialize repositories
	payRepo := pgStorage.NewPaymentRepo(pool)
	receiptRepo := pgStorage.NewReceiptRepo(pool)
	reversalRepo := pgStorage.NewReversalRepo(pool)
	policyRepo := pgStorage.NewPolicyRepo(pool)
	notifLogRepo := pgStorage.NewNotificationRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	refCache := redisStorage.NewReferenceCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize services
	tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	notifier := service.NewWebhookNotifier(
		&http.Client{Timeout: cfg.Notifier.Timeout},
		receiptRepo,
		notifLogRepo,
		logger.Component(log, "notifier"),
	)
	receiptIssuer := service.NewReceiptIssuer(receiptRepo, logger.Component(log, "receipts"))
	paymentSvc := service.NewPaymentService(
		payRepo,
		receiptRepo,
		policyRepo,
		receiptIssuer,
		refCache,
		transactor,
		notifier,
		logger.Component(log, "payments"),
	)
	reversalSvc := service.NewReversalService(
		reversalRepo,
		payRepo,
		receiptRepo,
		receiptIssuer,
		transactor,
		notifier,
		logger.Component(log, "reversals"),
	)
	reconSvc := service.NewReconciliationService(payRepo, logger.Component(log, "reconciliation"))

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		ReversalSvc:    reversalSvc,
		ReconSvc:       reconSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
