package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Emannuh254/server-jobs/internal/app"
	"github.com/Emannuh254/server-jobs/internal/config"
	"github.com/Emannuh254/server-jobs/internal/database"
	apphttp "github.com/Emannuh254/server-jobs/internal/http"
	"github.com/Emannuh254/server-jobs/internal/http/handlers"
	"github.com/Emannuh254/server-jobs/internal/http/metrics"
	httpmw "github.com/Emannuh254/server-jobs/internal/http/middleware"
	"github.com/Emannuh254/server-jobs/internal/http/response"
	"github.com/Emannuh254/server-jobs/internal/observability"
	"github.com/Emannuh254/server-jobs/internal/repository/postgres"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(observability.Options{File: cfg.LogFile, Tee: cfg.LogTee})
	defer func() { _ = logger.Sync() }()

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	referenceRepo := postgres.NewReferenceRepository(db)
	jobRepo := postgres.NewJobRepository(db, referenceRepo)
	statsRepo := postgres.NewStatsRepository(db)

	jobService := app.NewJobService(jobRepo)
	statsService := app.NewStatsService(statsRepo)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		JobHandler:     handlers.NewJobHandler(jobService),
		StatsHandler:   handlers.NewStatsHandler(statsService),
		HealthHandler:  handlers.NewHealthHandler(db),
		MetricsHandler: metrics.NewHandler(collector),
		Metrics:        collector,
		Limiter:        limiter,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
