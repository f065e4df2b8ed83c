package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Go-Storefront/cmd/config"
	migration "Go-Storefront/cmd/database/migrate"
	"Go-Storefront/internal/utils"
	"Go-Storefront/internal/utils/logger"

	"go.uber.org/zap"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migration and seed before serving")
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and seed, then exit")
	flag.Parse()

	utils.LoadConfig()
	logger.Init(utils.GetConfig("LOG_MODE"), utils.GetConfigDefault("LOG_FILE", "./logs/app.log"))

	db, err := config.ConnectDB()
	if err != nil {
		zap.S().Fatalf("failed to connect database: %v", err)
	}

	if *migrate || *migrateOnly {
		if err := migration.Migrate(db); err != nil {
			zap.S().Fatalf("migration failed: %v", err)
		}
		if *migrateOnly {
			return
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		zap.S().Fatalf("failed to build app: %v", err)
	}

	go func() {
		port := utils.GetConfigDefault("APP_PORT", "8080")
		if err := app.Listen(":" + port); err != nil {
			zap.S().Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		zap.S().Errorf("graceful shutdown failed: %v", err)
	}
	_ = zap.L().Sync()
}
