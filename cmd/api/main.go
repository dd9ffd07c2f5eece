package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mercura/storefront-analytics/api/routes"
	"github.com/mercura/storefront-analytics/internal/analytics"
	"github.com/mercura/storefront-analytics/internal/customers"
	"github.com/mercura/storefront-analytics/internal/exchange"
	"github.com/mercura/storefront-analytics/internal/orders"
	"github.com/mercura/storefront-analytics/internal/products"
	"github.com/mercura/storefront-analytics/pkg/config"
	"github.com/mercura/storefront-analytics/pkg/db"
	"github.com/mercura/storefront-analytics/pkg/logger"
	"github.com/mercura/storefront-analytics/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "analytics-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "analytics-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	rateClient := exchange.NewClient(cfg.Exchange.APIKey, exchange.WithBaseURL(cfg.Exchange.BaseURL))
	rateSource := exchange.NewCachedSource(rateClient, redisClient, cfg.Exchange.CacheTTL, logg)

	analyticsService := analytics.NewService(
		orders.NewRepository(dbClient.DB()),
		products.NewRepository(dbClient.DB()),
		customers.NewRepository(dbClient.DB()),
		rateSource,
		analytics.Settings{
			ReportingCurrency: cfg.Analytics.ReportingCurrency,
			LowStockThreshold: cfg.Analytics.LowStockThreshold,
		},
		logg,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting analytics api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, analyticsService),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "analytics api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
		logg.Info(ctx, "server stopped")
	}
}
