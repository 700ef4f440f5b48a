package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/reelvault/reelvault-go/internal/cache"
	"github.com/reelvault/reelvault-go/internal/config"
	"github.com/reelvault/reelvault-go/internal/db"
	workerHandler "github.com/reelvault/reelvault-go/internal/handler/worker"
	"github.com/reelvault/reelvault-go/internal/logger"
	"github.com/reelvault/reelvault-go/internal/provider/cloudmedia"
	"github.com/reelvault/reelvault-go/internal/repository/postgres"
	"github.com/reelvault/reelvault-go/internal/task"
	videoSvc "github.com/reelvault/reelvault-go/internal/usecase/video"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(cfg)

	processor := cloudmedia.NewClient(cfg.CloudName, cfg.CloudAPIKey, cfg.CloudAPISecret, cfg.UploadTimeout)
	videoRepo := postgres.NewVideoRepository(database.DB)
	ca := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
	syncEagerSvc := videoSvc.NewEagerSyncer(videoRepo, processor, ca)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeSyncEagerVideo, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseSyncEagerVideoPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.SyncEagerVideoHandler(ctx, p, syncEagerSvc)
	})

	runWorker(ctx, mux, cfg, database)
}

func initDb(cfg *config.Settings) *db.Database {
	ctx := context.Background()
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.PostgresDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	// Close DB
	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
