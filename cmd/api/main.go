package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticket-store-ledger/config"
	httpHandler "ticket-store-ledger/internal/adapter/http/handler"
	"ticket-store-ledger/internal/adapter/storage/memory"
	pgStorage "ticket-store-ledger/internal/adapter/storage/postgres"
	redisStorage "ticket-store-ledger/internal/adapter/storage/redis"
	"ticket-store-ledger/internal/core/domain"
	"ticket-store-ledger/internal/core/ports"
	"ticket-store-ledger/internal/service"
	"ticket-store-ledger/pkg/logger"
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
		Str("owner", cfg.Store.OwnerAddress).
		Msg("Starting Ticket Store Ledger")

	ctx := context.Background()

	// Ledger state lives in memory; the journal optionally persists to
	// PostgreSQL so consumers survive a restart with their cursor intact.
	var journal ports.NotificationJournal = memory.NewJournal()
	var healthCheckers []ports.HealthChecker

	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		pgJournal := pgStorage.NewJournal(pool)
		if err := pgJournal.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize notification journal")
		}
		journal = pgJournal
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("Durable notification journal enabled")
	}

	// Redis provides idempotency replay and rate limiting; both degrade to
	// disabled when Redis is not configured.
	var rateLimitStore *redisStorage.RateLimitStore
	var idempotencyCache ports.IdempotencyCache

	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		idempotencyCache = redisStorage.NewIdempotencyCache(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize the ledger core; the notification sequence resumes from the
	// journal so a restart over a durable journal keeps the feed collision-free.
	ledger, err := service.NewLedgerService(
		ctx,
		domain.Address(cfg.Store.LedgerAddress),
		domain.Address(cfg.Store.OwnerAddress),
		memory.NewEventRepo(),
		memory.NewPurchaseRepo(),
		journal,
		memory.NewTreasury(),
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize ledger")
	}
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:           ledger,
		TokenSvc:         tokenSvc,
		RateLimitStore:   rateLimitStore,
		IdempotencyCache: idempotencyCache,
		HealthCheckers:   healthCheckers,
		Logger:           log,
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
