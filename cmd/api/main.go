package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vendascope/backend/api/routes"
	"github.com/vendascope/backend/internal/feed"
	"github.com/vendascope/backend/internal/roi"
	"github.com/vendascope/backend/internal/sales"
	"github.com/vendascope/backend/pkg/config"
	"github.com/vendascope/backend/pkg/logger"
	"github.com/vendascope/backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	feedMetrics := metrics.NewFeedMetrics(registry)

	feedClient, err := feed.NewClient(feed.ClientParams{
		URL:          cfg.Feed.URL,
		FetchTimeout: cfg.Feed.FetchTimeout,
		MaxAttempts:  cfg.Feed.MaxAttempts,
		Logger:       logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create feed client", err)
		os.Exit(1)
	}

	store, err := sales.NewStore(sales.StoreParams{
		Fetcher:         feedClient,
		Normalizer:      sales.NewNormalizer(sales.DefaultNormalizerConfig()),
		Logger:          logg,
		Metrics:         feedMetrics,
		RefreshInterval: cfg.Feed.RefreshInterval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create sales store", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// First load happens before the server starts accepting traffic; a
	// failure here is survivable because the refresh loop keeps retrying.
	if err := store.Refresh(ctx); err != nil {
		logg.Error(ctx, "initial snapshot load failed", err)
	}
	go store.Run(ctx)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	startCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(startCtx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, store, roi.NewProportionalAdvisor(), registry),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(startCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(startCtx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(startCtx, "graceful shutdown failed", err)
		}
	}
}
