// @title        Users API
// @version      1.0
// @description  User registration, authentication, and account management.
// @BasePath     /api/v1
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/userhub/users-api/internal/api"
	"github.com/userhub/users-api/internal/infrastructure/config"
	"github.com/userhub/users-api/internal/infrastructure/db/postgres"
	"github.com/userhub/users-api/internal/infrastructure/db/redis"
	"github.com/userhub/users-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatal().Err(err).Msg("migrations")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis")
	}
	defer rdb.Close()

	e := api.NewRouter(pool, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
		os.Exit(1)
	}
	log.Info().Msg("server shut down cleanly")
}
