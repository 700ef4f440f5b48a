package main

import (
	"context"
	"os"

	"github.com/reelvault/reelvault-go/internal/config"
	"github.com/reelvault/reelvault-go/internal/db"
	"github.com/reelvault/reelvault-go/internal/logger"
	"github.com/reelvault/reelvault-go/internal/migration"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	database, err := db.New(cfg.PostgresDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func(database *db.Database) {
		err := database.Close()
		if err != nil {
			return
		}
	}(database)

	sqlDB, err := database.DB.DB()
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to unwrap db handle: %v", err)
		os.Exit(1)
	}

	if err := migration.MigrateUp(sqlDB); err != nil {
		logger.Errorf(ctx, "❌  Migration up failed: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "✅  Migrations applied successfully")
}
