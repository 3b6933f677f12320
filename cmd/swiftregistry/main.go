package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"swiftregistry/internal/api/handler"
	"swiftregistry/internal/api/router"
	"swiftregistry/internal/config"
	"swiftregistry/internal/database"
	"swiftregistry/internal/loader"
	"swiftregistry/internal/logging"
	"swiftregistry/internal/repository"
	"swiftregistry/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("failed to run: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to configuration file")
	loadFile := flag.String("load", "", "Path to SWIFT codes spreadsheet to load")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer logger.Sync()

	// Override config with command line flags if provided
	if *loadFile != "" {
		cfg.Data.SwiftCodesFile = *loadFile
		cfg.Data.AutoLoad = true
	}

	logger.Info("starting swift-registry",
		zap.String("database", cfg.Database.Type),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := database.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer db.Close()

	repo := repository.NewSQLSwiftRepository(db)
	swiftService := service.NewSwiftService(repo)

	// Populate the store at boot, only when the table is empty
	if cfg.Data.AutoLoad && cfg.Data.SwiftCodesFile != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		count, err := loader.New(repo, logger).LoadIfEmpty(ctx, cfg.Data.SwiftCodesFile)
		cancel()
		if err != nil {
			logger.Warn("failed to load SWIFT codes", zap.String("file", cfg.Data.SwiftCodesFile), zap.Error(err))
		} else if count > 0 {
			logger.Info("SWIFT codes loaded", zap.Int("count", count))
		}
	}

	swiftHandler := handler.NewSwiftHandler(swiftService, logger)
	app := router.SetupRoutes(swiftHandler, logger)

	// Start server in a goroutine so we can handle graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Info("starting server", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exiting")
	return nil
}
