// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/ammerola/shopstock-be/internal/adapters/db"
	"github.com/ammerola/shopstock-be/internal/adapters/storage"
	"github.com/ammerola/shopstock-be/internal/core/services"
	"github.com/ammerola/shopstock-be/internal/pkg/config"
	"github.com/ammerola/shopstock-be/internal/pkg/logger"
	"github.com/ammerola/shopstock-be/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")
	slogger.Info("starting shopstock worker")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)

	ctx := context.Background()

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:              cfg.Database.Host,
		Port:              cfg.Database.Port,
		User:              cfg.Database.User,
		Password:          cfg.Database.Password,
		Database:          cfg.Database.Name,
		SSLMode:           cfg.Database.SSLMode,
		MaxConnections:    cfg.Database.MaxConnections,
		MinConnections:    cfg.Database.MinConnections,
		MaxConnLifetime:   cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:   cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod: cfg.Database.HealthCheckPeriod,
		ConnectTimeout:    cfg.Database.ConnectTimeout,
	}, slogger)
	if err != nil {
		slogger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	fileStore, err := storage.NewLocalStore(cfg.Storage.DataDir, slogger)
	if err != nil {
		slogger.Error("failed to initialize file store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	catalogRepo := db.NewCatalogRepository(database, slogger)
	ledgerRepo := db.NewLedgerRepository(database, slogger)
	inventoryService := services.NewInventoryService(ledgerRepo, catalogRepo, nil, slogger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:     cfg.Asynq.Concurrency,
		Queues:          cfg.Asynq.Queues,
		ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
		Logger:          newAsynqLogger(slogger),
	})

	mux := asynq.NewServeMux()
	mux.Handle(workers.TypeBarcodeCleanup, workers.NewCleanupProcessor(fileStore, slogger))
	mux.Handle(workers.TypeLowStockScan, workers.NewLowStockProcessor(inventoryService, cfg.Inventory.LowStockThreshold, slogger))

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{Logger: newAsynqLogger(slogger)})
	scanTask, err := workers.NewLowStockScanTask(cfg.Inventory.LowStockThreshold)
	if err != nil {
		slogger.Error("failed to build scan task", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if _, err := scheduler.Register(cfg.Inventory.LowStockScanCron, scanTask); err != nil {
		slogger.Error("failed to register low stock scan", slog.String("error", err.Error()))
		os.Exit(1)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			slogger.Error("scheduler stopped", slog.String("error", err.Error()))
		}
	}()

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("worker server stopped", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

// asynqLogger adapts slog for asynq's logger interface
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{logger: logger.With(slog.String("component", "asynq"))}
}

func (l *asynqLogger) Debug(args ...interface{}) { l.logger.Debug(fmt.Sprint(args...)) }
func (l *asynqLogger) Info(args ...interface{})  { l.logger.Info(fmt.Sprint(args...)) }
func (l *asynqLogger) Warn(args ...interface{})  { l.logger.Warn(fmt.Sprint(args...)) }
func (l *asynqLogger) Error(args ...interface{}) { l.logger.Error(fmt.Sprint(args...)) }
func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}
