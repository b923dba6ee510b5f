package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gpillon/ai-fraud-serverless-function/internal/config"
	"github.com/gpillon/ai-fraud-serverless-function/internal/prediction"
	"github.com/gpillon/ai-fraud-serverless-function/internal/scaler"
	"github.com/gpillon/ai-fraud-serverless-function/pkg/adapters/inference"
	"github.com/gpillon/ai-fraud-serverless-function/pkg/adapters/metrics/prometheus"
	"github.com/gpillon/ai-fraud-serverless-function/pkg/api/http"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting fraud prediction API",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	// Load the scaler artifact; the service must not start without it
	params, err := scaler.Load(cfg.ScalerPath)
	if err != nil {
		logger.Fatal("failed to load scaler", zap.Error(err))
	}
	logger.Info("loaded scaler", zap.String("path", cfg.ScalerPath))

	if cfg.Model.URL == "" {
		logger.Warn("FRAUD_MODEL_URL is not set, predictions will fail until it is configured")
	}

	// Initialize adapters
	metricsCollector := prometheus.NewCollector()

	modelClient := inference.NewClient(&inference.Config{
		URL:            cfg.Model.URL,
		RequestTimeout: cfg.Model.RequestTimeout,
		InsecureTLS:    cfg.Model.InsecureTLS,
		Metrics:        metricsCollector,
		Logger:         logger,
	})

	// Initialize the prediction pipeline
	service := prediction.NewService(
		params,
		modelClient,
		metricsCollector,
		logger,
		cfg.Threshold,
	)

	// Initialize the API server
	httpServer := http.NewServer(&http.Config{
		Port:    cfg.HTTPPort,
		Service: service,
		Logger:  logger,
	})

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("fraud prediction API started",
		zap.Int("http_port", cfg.HTTPPort),
		zap.Float64("threshold", cfg.Threshold))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("fraud prediction API shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
