package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jdvalencia/fondos-dashboard-go/internal/config"
	"github.com/jdvalencia/fondos-dashboard-go/internal/handler"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/fundsapi"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/observability"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/resilience"
	"github.com/jdvalencia/fondos-dashboard-go/internal/view"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("funds_api_url", cfg.FundsAPIURL),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Int("transactions_limit", cfg.TransactionsLimit),
		zap.Int("max_concurrency", cfg.MaxConcurrency),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "fondos-dashboard")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Resilience ---
	cb := resilience.NewCircuitBreaker("funds-api")
	bulkhead := resilience.NewBulkhead(cfg.MaxConcurrency)

	// --- Funds platform client ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	api := fundsapi.NewClient(httpClient, cfg.FundsAPIURL, cb, bulkhead, metrics, logger)

	// --- Views ---
	session := view.NewSession(api, cfg.TransactionsLimit, metrics, logger)

	// Warm every view so the first page render has data instead of a
	// skeleton for each table.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout*2)
		defer cancel()
		session.RefetchAll(ctx)
		logger.Info("initial view load complete")
	}()

	// --- Router ---
	router := handler.NewRouter(session, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
