package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"memeboard-api/internal/client"
	"memeboard-api/internal/config"
	"memeboard-api/internal/database"
	"memeboard-api/internal/job"
	"memeboard-api/internal/metrics"
	"memeboard-api/internal/repository"
	"memeboard-api/internal/router"
)

func main() {
	// Load .env for local development; missing file is fine
	_ = godotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// SOL amounts serialize as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	logger.Info("Starting memeboard API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

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
	logger.Info("Database migrations completed")

	m := metrics.NewWithLogger(logger)
	database.RegisterMetricsCallbacks(db, m)
	dbStatsStop := database.StartDBStatsCollector(db, m)
	defer close(dbStatsStop)

	businessCollector := metrics.NewBusinessMetricsCollector(db, m, logger)
	businessCollector.Start()
	defer businessCollector.Stop()

	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Failed to connect to redis, stats caching disabled", zap.Error(err))
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var s3Client client.S3ClientInterface
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		real, err := client.NewS3Client(&cfg.S3)
		if err != nil {
			logger.Fatal("Failed to initialize S3 client", zap.Error(err))
		}
		s3Client = real
		logger.Info("S3 client initialized",
			zap.String("bucket", cfg.S3.Bucket),
			zap.String("region", cfg.S3.Region),
		)
	} else {
		s3Client = client.NewMockS3Client()
		logger.Warn("S3 configuration incomplete, using mock storage client")
	}

	// Nightly cleanup of draft media that never got attached
	cronRunner := cron.New()
	cleanupJob := job.NewCleanupJob(repository.NewMediaRepository(db), s3Client, cfg.Cleanup.DraftRetention, logger)
	if _, err := cronRunner.AddJob(cfg.Cleanup.Schedule, cleanupJob); err != nil {
		logger.Fatal("Invalid cleanup schedule", zap.String("schedule", cfg.Cleanup.Schedule), zap.Error(err))
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	r := router.Setup(&router.Config{
		DB:             db,
		Redis:          redisClient,
		S3Client:       s3Client,
		Logger:         logger,
		Metrics:        m,
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("memeboard API started", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
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

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapConfig.Build()
}
