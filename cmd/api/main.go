package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/user/section-detector/internal/adapter/chromedplayout"
	"github.com/user/section-detector/internal/adapter/postgres"
	redis_adapter "github.com/user/section-detector/internal/adapter/redis"
	"github.com/user/section-detector/internal/delivery/http/handler"
	"github.com/user/section-detector/internal/delivery/http/router"
	"github.com/user/section-detector/internal/detector"
	"github.com/user/section-detector/internal/repository"
	"github.com/user/section-detector/internal/usecase"
	"github.com/user/section-detector/pkg/config"
	"github.com/user/section-detector/pkg/logger"
	"github.com/user/section-detector/pkg/metrics"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Unable to load configuration", "error", err)
		os.Exit(1)
	}

	// --- Logger ---
	logLevel := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	logger.Init(os.Stdout, logLevel)
	slog.Info("Logger initialized", "level", logLevel.String())

	// --- Metrics ---
	metrics.Init()
	slog.Info("Metrics initialized")

	// --- Database Connections ---
	ctx := context.Background()

	// PostgreSQL
	dbpool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		slog.Error("Unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbpool.Close()
	slog.Info("PostgreSQL connection pool established")

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		slog.Error("Unable to connect to Redis", "error", err)
		os.Exit(1)
	}
	slog.Info("Redis connection established")

	// --- Layout Provider ---
	provider, err := chromedplayout.NewChromedpProvider(cfg.MaxConcurrency)
	if err != nil {
		slog.Error("Unable to initialize browser pool", "error", err)
		os.Exit(1)
	}
	slog.Info("Browser pool initialized", "max_concurrency", cfg.MaxConcurrency)

	// --- Repositories ---
	resultRepo := postgres.NewDetectionResultRepo(dbpool)
	cacheRepo := redis_adapter.NewResultCacheRepo(rdb)

	// --- Use Cases ---
	analyzer := usecase.NewAnalyzer(
		provider,
		resultRepo,
		cacheRepo,
		detector.Options{
			GapThresholdPx: cfg.GapThresholdPx,
			MinWidthPx:     cfg.MinWidthPx,
			MinHeightPx:    cfg.MinHeightPx,
		},
		repository.RenderConfig{
			ViewportWidth:  cfg.ViewportWidth,
			ViewportHeight: cfg.ViewportHeight,
			Timeout:        cfg.PageLoadTimeout(),
		},
		cfg.CacheTTL(),
	)

	// --- HTTP Server ---
	apiHandler := handler.NewHandler(analyzer)
	httpRouter := router.New(apiHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      httpRouter,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 2 * cfg.PageLoadTimeout(),
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Could not listen on port", "port", cfg.ServerPort, "error", err)
		os.Exit(1)
	}
}
