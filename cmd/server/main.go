package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gimnasiojp/gym-dashboard/internal/api"
	"github.com/gimnasiojp/gym-dashboard/internal/infrastructure/config"
	mongodb "github.com/gimnasiojp/gym-dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/gimnasiojp/gym-dashboard/internal/infrastructure/db/redis"
	"github.com/gimnasiojp/gym-dashboard/internal/infrastructure/upstream"
	"github.com/gimnasiojp/gym-dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Gym Dashboard API
// @version      1.0
// @description  Backend for the gym management dashboard. Sessions, role-based
// @description  menus and proxied access to the gym API gateway.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.Env)

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	gymAPI := upstream.NewClient(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
	}, log)

	e, dispatcher := api.NewRouter(api.Dependencies{
		Redis:     rdb,
		Mongo:     db,
		Upstream:  gymAPI,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})
	dispatcher.Start(ctx)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("gym_api", cfg.Upstream.BaseURL).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
