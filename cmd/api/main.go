package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/reelvault/reelvault-go/internal/cache"
	"github.com/reelvault/reelvault-go/internal/config"
	"github.com/reelvault/reelvault-go/internal/db"
	"github.com/reelvault/reelvault-go/internal/handler/api"
	"github.com/reelvault/reelvault-go/internal/logger"
	rvMiddleware "github.com/reelvault/reelvault-go/internal/middleware"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/preprocess"
	"github.com/reelvault/reelvault-go/internal/provider/cloudmedia"
	"github.com/reelvault/reelvault-go/internal/repository/postgres"
	"github.com/reelvault/reelvault-go/internal/task"
	identitySvc "github.com/reelvault/reelvault-go/internal/usecase/identity"
	imageSvc "github.com/reelvault/reelvault-go/internal/usecase/image"
	videoSvc "github.com/reelvault/reelvault-go/internal/usecase/video"
	rvuuid "github.com/reelvault/reelvault-go/internal/uuid"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	processor := cloudmedia.NewClient(cfg.CloudName, cfg.CloudAPIKey, cfg.CloudAPISecret, cfg.UploadTimeout)

	userRepo := postgres.NewUserRepository(database.DB)
	videoRepo := postgres.NewVideoRepository(database.DB)
	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoOp()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured, caching is disabled")
	}

	resolver := identitySvc.NewResolver(userRepo, rvuuid.NewUUID)
	pre := preprocess.NewPreprocessor(preprocess.NewWebPEncoder())

	r := initRouter(ctx)

	// provider callbacks authenticate by signature, not by user token
	webhookProcessorSvc := videoSvc.NewWebhookProcessor(videoRepo, dispatcher)
	r.Post("/api/webhook", api.WebhookHandler(webhookProcessorSvc))

	r.Group(func(r chi.Router) {
		r.Use(rvMiddleware.WithAuth(cfg.AuthJWTPublicKey))

		listVideosSvc := videoSvc.NewLister(userRepo, videoRepo, ca)
		r.Get("/api/videos", api.ListVideosHandler(listVideosSvc))

		uploadVideoSvc := videoSvc.NewUploader(resolver, videoRepo, processor, ca, dispatcher, rvuuid.NewUUID)
		r.Post("/api/video-upload", api.UploadVideoHandler(uploadVideoSvc))

		deleteVideoSvc := videoSvc.NewDeleter(userRepo, videoRepo, processor, ca)
		r.With(rvMiddleware.WithVideoID()).
			Delete("/api/deletevideos/{id}", api.DeleteVideoHandler(deleteVideoSvc))

		uploadImageSvc := imageSvc.NewUploader(resolver, processor, pre, rvuuid.NewUUID)
		r.Post("/api/image-upload", api.UploadImageHandler(uploadImageSvc))

		getImageSvc := imageSvc.NewGetter(processor)
		r.Get("/api/image-upload", api.GetImageHandler(getImageSvc))
	})

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.PostgresDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
