// Command seed creates the stock system picklists and field definitions.
// It is idempotent and safe to run on every deploy.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"portal-metadata-api/internal/config"
	"portal-metadata-api/internal/database"
	"portal-metadata-api/internal/repository"
	"portal-metadata-api/internal/service"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.New(database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	picklistRepo := repository.NewPicklistRepository(db)
	fieldDefRepo := repository.NewFieldDefinitionRepository(db)

	picklistService := service.NewPicklistService(picklistRepo, nil, logger, nil)
	fieldDefService := service.NewFieldDefinitionService(fieldDefRepo, picklistRepo, logger, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Picklists first; stock field definitions reference them by name
	picklistResult, err := picklistService.SeedDefaults(ctx)
	if err != nil {
		logger.Fatal("Failed to seed picklists", zap.Error(err))
	}
	logger.Info("Picklist seeding completed",
		zap.Int("created", picklistResult.Created),
		zap.Int("existing", picklistResult.Existing),
	)

	fieldResult, err := fieldDefService.SeedDefaults(ctx, "")
	if err != nil {
		logger.Fatal("Failed to seed field definitions", zap.Error(err))
	}
	logger.Info("Field definition seeding completed",
		zap.Int("created", fieldResult.Created),
		zap.Int("existing", fieldResult.Existing),
	)
}
