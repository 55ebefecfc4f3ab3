package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/kiraazuma/jijiken-potato-pos/internal/adapter/http"
	"github.com/kiraazuma/jijiken-potato-pos/internal/adapter/http/handler"
	postgresRepo "github.com/kiraazuma/jijiken-potato-pos/internal/adapter/repository/postgres"
	redisRepo "github.com/kiraazuma/jijiken-potato-pos/internal/adapter/repository/redis"
	"github.com/kiraazuma/jijiken-potato-pos/internal/infrastructure/config"
	"github.com/kiraazuma/jijiken-potato-pos/internal/infrastructure/logger"
	"github.com/kiraazuma/jijiken-potato-pos/internal/infrastructure/metrics"
	"github.com/kiraazuma/jijiken-potato-pos/internal/infrastructure/postgres"
	"github.com/kiraazuma/jijiken-potato-pos/internal/infrastructure/redis"
	"github.com/kiraazuma/jijiken-potato-pos/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Apply sales store schema
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.ConnectTimeout,
	})
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	// Initialize repositories
	ledgerStore := postgresRepo.NewLedgerStore(pool)
	basketStore := redisRepo.NewBasketStore(redisClient, cfg.BasketTTL)
	idGen := postgresRepo.NewULIDGenerator()
	appMetrics := metrics.New()

	// Initialize use cases
	registerUC := usecase.NewRegisterUseCase(ledgerStore, basketStore, idGen, usecase.SystemClock{}, usecase.RegisterConfig{
		BasePrice:        cfg.BasePrice,
		SeminarPrice:     cfg.SeminarPrice,
		MaxItemPrice:     cfg.MaxItemPrice,
		DiscountPassword: cfg.DiscountPassword,
	}, appMetrics)
	statsUC := usecase.NewStatsUseCase(ledgerStore, usecase.SystemClock{}, appMetrics, appLogger)

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(registerUC)
	saleHandler := handler.NewSaleHandler(registerUC)
	statsHandler := handler.NewStatsHandler(statsUC, cfg.PeriodDays)
	configHandler := handler.NewConfigHandler(cfg.BasePrice, cfg.SeminarPrice, cfg.DefaultSalePrice, cfg.MaxItemPrice)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		SessionHandler: sessionHandler,
		SaleHandler:    saleHandler,
		StatsHandler:   statsHandler,
		ConfigHandler:  configHandler,
		HealthHandler:  healthHandler,
		Logger:         appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
