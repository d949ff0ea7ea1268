// cmd/seeder/main.go
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	barcode_a "github.com/ammerola/shopstock-be/internal/adapters/barcode"
	"github.com/ammerola/shopstock-be/internal/adapters/db"
	"github.com/ammerola/shopstock-be/internal/adapters/storage"
	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/core/services"
	"github.com/ammerola/shopstock-be/internal/pkg/config"
	"github.com/ammerola/shopstock-be/internal/pkg/logger"
)

// Seeds a demo catalog with opening stock for local development.
func main() {
	slogger := logger.SetupLogger("info", "text")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	if err := db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
	}, slogger, 3); err != nil {
		slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
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
	barcodeGen := barcode_a.NewGenerator(fileStore, slogger)
	catalog := services.NewCatalogService(catalogRepo, ledgerRepo, barcodeGen, nil, slogger)
	inventory := services.NewInventoryService(ledgerRepo, catalogRepo, nil, slogger)

	if err := seed(ctx, catalog, inventory, slogger); err != nil {
		slogger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger.Info("seeding complete")
}

func seed(ctx context.Context, catalog *services.CatalogService, inventory *services.InventoryService, logger *slog.Logger) error {
	apparel, err := catalog.CreateCategory(ctx, &domain.Category{Name: "Apparel"})
	if err != nil {
		return err
	}
	homeware, err := catalog.CreateCategory(ctx, &domain.Category{Name: "Homeware"})
	if err != nil {
		return err
	}

	type seedProduct struct {
		name     string
		category *int64
		price    string
		variants []string
	}

	products := []seedProduct{
		{"Classic Tee", &apparel.ID, "19.99", []string{"S-black", "M-black", "L-black"}},
		{"Wool Scarf", &apparel.ID, "34.50", []string{"grey", "navy"}},
		{"Ceramic Mug", &homeware.ID, "12.00", []string{"white", "blue"}},
	}

	var openingStock []domain.MovementItem

	for _, sp := range products {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return err
		}

		product, err := catalog.CreateProduct(ctx, &domain.Product{
			Name:         sp.name,
			CategoryID:   sp.category,
			SellingPrice: price,
		})
		if err != nil {
			return err
		}

		for _, handle := range sp.variants {
			variant, err := catalog.CreateVariant(ctx, &domain.ProductVariant{
				ProductID: product.ID,
				Handle:    handle,
			})
			if err != nil {
				return err
			}

			openingStock = append(openingStock, domain.MovementItem{
				ProductVariantID: variant.ID,
				Quantity:         10,
				PricePerUnit:     price.Mul(decimal.NewFromFloat(0.4)),
			})
		}

		logger.Info("seeded product",
			slog.String("name", sp.name),
			slog.Int("variants", len(sp.variants)))
	}

	notes := "Opening stock"
	movementID, err := inventory.RecordPurchase(ctx, openingStock, &notes)
	if err != nil {
		return err
	}

	logger.Info("posted opening stock", slog.Int64("movement_id", movementID))
	return nil
}
