package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hooplab/scoring-api/internal/config"
	"github.com/hooplab/scoring-api/internal/handlers"
	"github.com/hooplab/scoring-api/internal/logic"
	"github.com/hooplab/scoring-api/internal/provider"
	"github.com/hooplab/scoring-api/internal/render"
	"github.com/hooplab/scoring-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sugar.Fatalw("Invalid REDIS_URL", "error", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		sugar.Warnw("Redis not reachable at startup, continuing without warm cache", "error", err)
	}
	cancel()

	client := provider.NewClient(cfg.ProviderBaseURL, cfg.FetchConcurrency, logger)
	source := provider.NewCachedSource(client, rdb, cfg.CacheTTL, logger)
	reportSvc := logic.NewReportService(source, logger)

	refresher := worker.NewRefresher(source, cfg.DefaultSeason, cfg.RefreshInterval, logger)
	refresher.Start(context.Background())
	defer refresher.Stop()

	h := handlers.New(handlers.Config{
		Redis:         rdb,
		Logger:        logger,
		Report:        reportSvc,
		DefaultSeason: cfg.DefaultSeason,
		DefaultTopN:   cfg.DefaultTopN,
		Theme:         render.DefaultTheme(),
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/report/{season}", h.GetSeasonReport)
		r.Get("/report/{season}/charts/points.svg", h.GetPointsChart)
		r.Get("/report/{season}/charts/shares.svg", h.GetSharesChart)
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sugar.Infow("Server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
	}
}
