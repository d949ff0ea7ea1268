// internal/core/services/catalog.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/core/ports"
)

// CatalogService handles catalog business logic, including barcode
// generation for variants and cleanup of generated files.
type CatalogService struct {
	repo     ports.CatalogRepository
	ledger   ports.LedgerRepository
	barcodes ports.BarcodeGenerator
	tasks    ports.TaskQueue
	logger   *slog.Logger
}

// Statically assert that *CatalogService implements the CatalogService interface.
var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(repo ports.CatalogRepository, ledger ports.LedgerRepository, barcodes ports.BarcodeGenerator, tasks ports.TaskQueue, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		ledger:   ledger,
		barcodes: barcodes,
		tasks:    tasks,
		logger:   logger.With(slog.String("service", "catalog")),
	}
}

// CreateCategory validates and persists a category
func (s *CatalogService) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory retrieves a category by id
func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	return category, nil
}

// ListCategories lists all categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

// UpdateCategory validates and updates a category
func (s *CatalogService) UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return s.GetCategory(ctx, category.ID)
}

// DeleteCategory removes a category. Its products survive with a NULL
// category reference.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.DeleteCategory(ctx, id)
}

// CreateProduct validates and persists a product
func (s *CatalogService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, product.CategoryID); err != nil {
		return nil, err
	}
	if _, err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by id
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return product, nil
}

// GetProductWithStock retrieves a product with its variants and their
// current quantities.
func (s *CatalogService) GetProductWithStock(ctx context.Context, id int64) (*domain.ProductWithStock, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	variants, err := s.repo.ListVariants(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &domain.ProductWithStock{
		Product:  *product,
		Variants: make([]domain.VariantWithStock, 0, len(variants)),
	}
	for _, variant := range variants {
		quantity := 0
		stock, err := s.ledger.GetStockLevel(ctx, variant.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get stock for variant %d: %w", variant.ID, err)
		}
		if stock != nil {
			quantity = stock.Quantity
		}
		result.Variants = append(result.Variants, domain.VariantWithStock{
			ProductVariant: variant,
			Stock:          quantity,
		})
	}

	return result, nil
}

// ListProducts lists all products
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

// UpdateProduct validates and updates a product
func (s *CatalogService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, product.CategoryID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, product.ID)
}

// DeleteProduct removes a product and its variants, then enqueues
// best-effort cleanup of the variants' barcode files. The delete never
// fails because cleanup could not be scheduled.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	variants, err := s.repo.ListVariants(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	var paths []string
	for _, v := range variants {
		if v.BarcodePath != nil {
			paths = append(paths, *v.BarcodePath)
		}
	}
	s.enqueueCleanup(ctx, paths)

	return nil
}

// CreateVariant validates a variant, generates its barcode and
// persists both.
func (s *CatalogService) CreateVariant(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error) {
	if err := variant.Validate(); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, variant.ProductID)
	if err != nil {
		return nil, err
	}

	if err := s.attachBarcode(ctx, variant, product.Name); err != nil {
		return nil, err
	}

	if _, err := s.repo.CreateVariant(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// GetVariant retrieves a variant by id
func (s *CatalogService) GetVariant(ctx context.Context, id int64) (*domain.ProductVariant, error) {
	variant, err := s.repo.GetVariant(ctx, id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, fmt.Errorf("variant %d: %w", id, domain.ErrNotFound)
	}
	return variant, nil
}

// GetVariantWithHistory retrieves a variant with its current stock and
// full movement history.
func (s *CatalogService) GetVariantWithHistory(ctx context.Context, id int64) (*domain.VariantWithHistory, error) {
	variant, err := s.GetVariant(ctx, id)
	if err != nil {
		return nil, err
	}

	quantity := 0
	stock, err := s.ledger.GetStockLevel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock: %w", err)
	}
	if stock != nil {
		quantity = stock.Quantity
	}

	history, err := s.ledger.GetMovementHistory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return &domain.VariantWithHistory{
		Variant: *variant,
		Stock:   quantity,
		History: history,
	}, nil
}

// ListVariants lists a product's variants
func (s *CatalogService) ListVariants(ctx context.Context, productID int64) ([]domain.ProductVariant, error) {
	return s.repo.ListVariants(ctx, productID)
}

// UpdateVariant updates a variant. A handle change regenerates the
// barcode and schedules removal of the old image.
func (s *CatalogService) UpdateVariant(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error) {
	existing, err := s.GetVariant(ctx, variant.ID)
	if err != nil {
		return nil, err
	}

	variant.ProductID = existing.ProductID
	if err := variant.Validate(); err != nil {
		return nil, err
	}

	if existing.Handle != variant.Handle {
		product, err := s.GetProduct(ctx, existing.ProductID)
		if err != nil {
			return nil, err
		}
		if err := s.attachBarcode(ctx, variant, product.Name); err != nil {
			return nil, err
		}
		if existing.BarcodePath != nil {
			s.enqueueCleanup(ctx, []string{*existing.BarcodePath})
		}
	} else {
		variant.BarcodeCode = existing.BarcodeCode
		variant.Barcode = existing.Barcode
		variant.BarcodePath = existing.BarcodePath
	}

	if err := s.repo.UpdateVariant(ctx, variant); err != nil {
		return nil, err
	}
	return s.GetVariant(ctx, variant.ID)
}

// DeleteVariant removes a variant and schedules cleanup of its barcode
// image.
func (s *CatalogService) DeleteVariant(ctx context.Context, id int64) error {
	variant, err := s.GetVariant(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteVariant(ctx, id); err != nil {
		return err
	}

	if variant.BarcodePath != nil {
		s.enqueueCleanup(ctx, []string{*variant.BarcodePath})
	}
	return nil
}

// FindVariantByBarcode resolves a scanned barcode to a variant
func (s *CatalogService) FindVariantByBarcode(ctx context.Context, code string) (*domain.ProductVariant, error) {
	if code == "" {
		return nil, domain.NewValidationError("code", "is required")
	}

	variant, err := s.repo.FindVariantByBarcode(ctx, code)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, fmt.Errorf("barcode %q: %w", code, domain.ErrNotFound)
	}
	return variant, nil
}

func (s *CatalogService) attachBarcode(ctx context.Context, variant *domain.ProductVariant, productName string) error {
	generated, err := s.barcodes.Generate(ctx, productName, variant.Handle)
	if err != nil {
		return fmt.Errorf("failed to generate barcode: %w", err)
	}

	variant.BarcodeCode = &generated.Code
	variant.Barcode = &generated.Payload
	variant.BarcodePath = &generated.FilePath
	return nil
}

func (s *CatalogService) enqueueCleanup(ctx context.Context, paths []string) {
	if len(paths) == 0 || s.tasks == nil {
		return
	}
	if err := s.tasks.EnqueueBarcodeCleanup(ctx, paths); err != nil {
		s.logger.WarnContext(ctx, "failed to enqueue barcode cleanup",
			"err", err,
			slog.Int("paths", len(paths)))
	}
}

func (s *CatalogService) checkCategory(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.repo.GetCategory(ctx, *categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("category %d: %w", *categoryID, domain.ErrNotFound)
	}
	return nil
}
