package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/authlab/secure-api/internal/api"
	"github.com/authlab/secure-api/internal/core/service"
	"github.com/authlab/secure-api/internal/infrastructure/config"
	redisdb "github.com/authlab/secure-api/internal/infrastructure/db/redis"
	"github.com/authlab/secure-api/internal/infrastructure/store"
	"github.com/authlab/secure-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Seed the credential store: hash the configured passwords once,
	// discard the plaintext, then the store is read-only.
	credStore, err := store.Seed(cfg.SeedUsers, service.NewBcryptHasher())
	if err != nil {
		log.Fatal().Err(err).Msg("seed credential store")
	}

	// Optional external revocation list.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer client.Close()
		rdb = client
	}

	e, err := api.NewRouter(cfg, credStore, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
