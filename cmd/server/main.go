package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gfranca/finbot/internal/classifier"
	"github.com/gfranca/finbot/internal/extractor"
	"github.com/gfranca/finbot/internal/gateway"
	"github.com/gfranca/finbot/internal/server"
	"github.com/gfranca/finbot/internal/storage"
	"github.com/gfranca/finbot/internal/workflow"
	"github.com/gfranca/finbot/pkg/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL storage")
		dbConfig := storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		}
		store, err = storage.NewPostgresStorage(dbConfig)
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Initialize the language-model gateway and the pipeline stages
	gw := gateway.NewOpenAIClient(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
		time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second,
		logger,
	)
	clf := classifier.NewLLMClassifier(gw, logger)
	ext := extractor.NewLLMExtractor(gw, logger)

	wf := workflow.New(clf, ext, store, logger).
		WithLimits(cfg.Workflow.ContextTurns, cfg.Workflow.ReportLimit)

	// Serve until interrupted
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := server.New(addr, wf, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
