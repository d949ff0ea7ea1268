// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	barcode_a "github.com/ammerola/shopstock-be/internal/adapters/barcode"
	"github.com/ammerola/shopstock-be/internal/adapters/db"
	redis_a "github.com/ammerola/shopstock-be/internal/adapters/redis_adapter"
	"github.com/ammerola/shopstock-be/internal/adapters/storage"
	"github.com/ammerola/shopstock-be/internal/core/services"
	"github.com/ammerola/shopstock-be/internal/handlers"
	"github.com/ammerola/shopstock-be/internal/handlers/middleware"
	"github.com/ammerola/shopstock-be/internal/pkg/config"
	"github.com/ammerola/shopstock-be/internal/pkg/logger"
	"github.com/ammerola/shopstock-be/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting shopstock inventory service",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	if err := runMigrations(ctx, cfg, slogger); err != nil {
		slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server", slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database         *db.Database
	redisClient      *redis.Client
	asynqClient      *asynq.Client
	catalogService   *services.CatalogService
	inventoryService *services.InventoryService
	catalogHandler   *handlers.CatalogHandler
	movementHandler  *handlers.MovementHandler
	stockHandler     *handlers.StockHandler
	exportHandler    *handlers.ExportHandler
	healthHandler    *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis", slog.String("addr", cfg.GetRedisAddress()))

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	cache := redis_a.NewCache(redisClient, logger)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	})
	deps.asynqClient = asynqClient
	taskQueue := workers.NewQueue(asynqClient, logger)

	fileStore, err := storage.NewLocalStore(cfg.Storage.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}
	barcodeGen := barcode_a.NewGenerator(fileStore, logger)

	catalogRepo := db.NewCatalogRepository(database, logger)
	ledgerRepo := db.NewLedgerRepository(database, logger)

	deps.catalogService = services.NewCatalogService(catalogRepo, ledgerRepo, barcodeGen, taskQueue, logger)
	deps.inventoryService = services.NewInventoryService(ledgerRepo, catalogRepo, cache, logger)

	deps.catalogHandler = handlers.NewCatalogHandler(deps.catalogService, logger)
	deps.movementHandler = handlers.NewMovementHandler(deps.inventoryService, logger)
	deps.stockHandler = handlers.NewStockHandler(deps.inventoryService, cfg.Inventory.LowStockThreshold, logger)
	deps.exportHandler = handlers.NewExportHandler(deps.inventoryService, logger)
	deps.healthHandler = handlers.NewHealthHandler(database, cache, cfg.App.Version, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	registerRoutes(mux, deps)

	// Middleware applied in reverse order (innermost first)
	var handler http.Handler = mux
	handler = middleware.Logger(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.RequestID(handler)
	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies) {
	apiV1 := "/api/v1"

	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Ready)

	// Categories
	mux.HandleFunc("POST "+apiV1+"/categories", deps.catalogHandler.CreateCategory)
	mux.HandleFunc("GET "+apiV1+"/categories", deps.catalogHandler.ListCategories)
	mux.HandleFunc("GET "+apiV1+"/categories/{id}", deps.catalogHandler.GetCategory)
	mux.HandleFunc("PUT "+apiV1+"/categories/{id}", deps.catalogHandler.UpdateCategory)
	mux.HandleFunc("DELETE "+apiV1+"/categories/{id}", deps.catalogHandler.DeleteCategory)

	// Products and variants
	mux.HandleFunc("POST "+apiV1+"/products", deps.catalogHandler.CreateProduct)
	mux.HandleFunc("GET "+apiV1+"/products", deps.catalogHandler.ListProducts)
	mux.HandleFunc("GET "+apiV1+"/products/{id}", deps.catalogHandler.GetProduct)
	mux.HandleFunc("GET "+apiV1+"/products/{id}/stock", deps.catalogHandler.GetProductWithStock)
	mux.HandleFunc("PUT "+apiV1+"/products/{id}", deps.catalogHandler.UpdateProduct)
	mux.HandleFunc("DELETE "+apiV1+"/products/{id}", deps.catalogHandler.DeleteProduct)
	mux.HandleFunc("POST "+apiV1+"/products/{id}/variants", deps.catalogHandler.CreateVariant)
	mux.HandleFunc("GET "+apiV1+"/products/{id}/variants", deps.catalogHandler.ListVariants)
	mux.HandleFunc("GET "+apiV1+"/variants/{id}", deps.catalogHandler.GetVariant)
	mux.HandleFunc("GET "+apiV1+"/variants/{id}/history", deps.catalogHandler.GetVariantHistory)
	mux.HandleFunc("PUT "+apiV1+"/variants/{id}", deps.catalogHandler.UpdateVariant)
	mux.HandleFunc("DELETE "+apiV1+"/variants/{id}", deps.catalogHandler.DeleteVariant)
	mux.HandleFunc("GET "+apiV1+"/barcodes/{code}", deps.catalogHandler.LookupBarcode)

	// Movement ledger
	mux.HandleFunc("POST "+apiV1+"/movements", deps.movementHandler.PostMovement)
	mux.HandleFunc("POST "+apiV1+"/movements/purchase", deps.movementHandler.RecordPurchase)
	mux.HandleFunc("POST "+apiV1+"/movements/sale", deps.movementHandler.RecordSale)
	mux.HandleFunc("POST "+apiV1+"/movements/return", deps.movementHandler.RecordReturn)
	mux.HandleFunc("GET "+apiV1+"/movements", deps.movementHandler.ListMovements)
	mux.HandleFunc("GET "+apiV1+"/movements/{id}", deps.movementHandler.GetMovement)
	mux.HandleFunc("GET "+apiV1+"/movements/{id}/items", deps.movementHandler.GetMovementItems)

	// Stock and reports
	mux.HandleFunc("GET "+apiV1+"/stock", deps.stockHandler.ListStockLevels)
	mux.HandleFunc("GET "+apiV1+"/stock/low", deps.stockHandler.ListLowStock)
	mux.HandleFunc("GET "+apiV1+"/stock/{id}", deps.stockHandler.GetStockLevel)
	mux.HandleFunc("PUT "+apiV1+"/stock/{id}", deps.stockHandler.SetStockLevel)
	mux.HandleFunc("POST "+apiV1+"/stock/availability", deps.stockHandler.CheckAvailability)
	mux.HandleFunc("GET "+apiV1+"/reports/valuation", deps.stockHandler.GetValuation)
	mux.HandleFunc("GET "+apiV1+"/reports/valuation/export", deps.exportHandler.ExportValuation)
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
