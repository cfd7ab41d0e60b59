package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/api"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/service"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/infrastructure/bls"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/infrastructure/config"
	mongodb "github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/infrastructure/db/mongo"
	redisdb "github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/infrastructure/db/redis"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/infrastructure/queue"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	skillRepo := mongodb.NewSkillRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("creating user indexes")
	}
	if err := jobRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("creating job indexes")
	}
	if err := skillRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("creating skill indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to redis")
	}
	defer func() { _ = rdb.Close() }()

	// --- Background analytics pipeline ---
	market := bls.NewClient(bls.Config{
		APIKey:  cfg.BLS.APIKey,
		BaseURL: cfg.BLS.URL,
	}, log)
	analytics := service.NewAnalyticsService(skillRepo, market, log)
	dispatcher := queue.NewDispatcher(cfg.Workers, analytics, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
