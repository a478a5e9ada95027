package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	redisv9 "github.com/redis/go-redis/v9"

	"employee_service/internal/app/di"
	"employee_service/internal/app/router"
	"employee_service/internal/platform/config"
	"employee_service/internal/platform/db"
	"employee_service/internal/platform/http/handler"
	"employee_service/internal/platform/logger"
	"employee_service/internal/platform/metrics"
	infraredis "employee_service/internal/platform/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config.LoadDotEnv(".env")
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env)
	slog.SetDefault(log)

	// db
	gdb, err := db.Open(cfg.DB)
	if err != nil {
		log.Error("failed to open database", logger.Err(err))
		os.Exit(1)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Error("failed to get sql.DB", logger.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Error("failed to close database", logger.Err(err))
		}
	}()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
		log.Warn("Redis unavailable. Running without cache.", logger.Err(err))
	} else if tmp != nil {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error("failed to close Redis client", logger.Err(err))
			}
		}()
	}

	// metrics registry with runtime collectors
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	employeeH := di.NewEmployeeHandler(gdb, rdb, cfg.CacheTTL, appMetrics)
	healthH := handler.NewHealthHandler(sqlDB)

	r := router.NewRouter(log, employeeH, healthH, appMetrics)

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", cfg.HTTP.Addr, "env", cfg.Env, "db_driver", cfg.DB.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server failed", logger.Err(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", logger.Err(err))
	}
	log.Info("server stopped gracefully")
}
