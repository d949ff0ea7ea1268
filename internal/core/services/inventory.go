// internal/core/services/inventory.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/core/ports"
)

// Default notes applied when the caller supplies none.
const (
	notePurchase = "Stock purchase"
	noteSale     = "Sale"
	noteReturn   = "Product return"
)

// Cache keys for derived reads. Invalidated after every post.
const (
	cacheKeyStockAll  = "stock:all"
	cacheKeyValuation = "valuation"
	stockKeyPattern   = "stock:*"
	cacheTTL          = 5 * time.Minute
)

// InventoryService orchestrates ledger writes and derived stock reads.
type InventoryService struct {
	ledger  ports.LedgerRepository
	catalog ports.CatalogRepository
	cache   ports.CacheRepository
	logger  *slog.Logger
}

// Statically assert that *InventoryService implements the InventoryService interface.
var _ ports.InventoryService = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service
func NewInventoryService(ledger ports.LedgerRepository, catalog ports.CatalogRepository, cache ports.CacheRepository, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		ledger:  ledger,
		catalog: catalog,
		cache:   cache,
		logger:  logger.With(slog.String("service", "inventory")),
	}
}

// PostMovement validates and posts a movement with its items, then
// invalidates cached stock reads.
func (s *InventoryService) PostMovement(ctx context.Context, movement *domain.Movement, items []domain.MovementItem) (int64, error) {
	if err := movement.Validate(); err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, domain.NewValidationError("items", "must not be empty")
	}
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return 0, fmt.Errorf("item %d: %w", i, err)
		}
	}

	id, err := s.ledger.PostMovement(ctx, movement, items)
	if err != nil {
		return 0, fmt.Errorf("failed to post movement: %w", err)
	}

	s.invalidateStockCache(ctx)
	return id, nil
}

// RecordPurchase posts an IN movement at cost prices
func (s *InventoryService) RecordPurchase(ctx context.Context, items []domain.MovementItem, notes *string) (int64, error) {
	return s.PostMovement(ctx, &domain.Movement{
		MovementType: domain.MovementIn,
		Notes:        defaultNotes(notes, notePurchase),
	}, items)
}

// RecordSale posts an OUT movement at selling prices. Availability is
// checked by the caller before posting; the ledger itself accepts any
// quantity.
func (s *InventoryService) RecordSale(ctx context.Context, items []domain.MovementItem, notes *string) (int64, error) {
	return s.PostMovement(ctx, &domain.Movement{
		MovementType: domain.MovementOut,
		Notes:        defaultNotes(notes, noteSale),
	}, items)
}

// RecordReturn posts a RETURN movement at refund prices
func (s *InventoryService) RecordReturn(ctx context.Context, items []domain.MovementItem, notes *string) (int64, error) {
	return s.PostMovement(ctx, &domain.Movement{
		MovementType: domain.MovementReturn,
		Notes:        defaultNotes(notes, noteReturn),
	}, items)
}

// CheckAvailability returns the subset of requests that current stock
// cannot cover, annotated with what is actually available. An empty
// result means everything is coverable.
func (s *InventoryService) CheckAvailability(ctx context.Context, requests []domain.AvailabilityRequest) ([]domain.InsufficientStock, error) {
	var insufficient []domain.InsufficientStock

	for _, req := range requests {
		if req.Quantity <= 0 {
			return nil, domain.NewValidationError("quantity", "must be greater than zero")
		}

		stock, err := s.ledger.GetStockLevel(ctx, req.ProductVariantID)
		if err != nil {
			return nil, fmt.Errorf("failed to check stock for variant %d: %w", req.ProductVariantID, err)
		}

		available := 0
		shortfall := domain.InsufficientStock{
			ProductVariantID: req.ProductVariantID,
			Requested:        req.Quantity,
		}

		if stock != nil {
			available = stock.Quantity
			shortfall.ProductName = stock.ProductName
			shortfall.VariantHandle = stock.VariantHandle
		} else if err := s.fillVariantDisplay(ctx, &shortfall); err != nil {
			return nil, err
		}

		if available < req.Quantity {
			shortfall.Available = available
			insufficient = append(insufficient, shortfall)
		}
	}

	return insufficient, nil
}

// fillVariantDisplay resolves product name and handle for a variant
// that has no stock row yet.
func (s *InventoryService) fillVariantDisplay(ctx context.Context, shortfall *domain.InsufficientStock) error {
	variant, err := s.catalog.GetVariant(ctx, shortfall.ProductVariantID)
	if err != nil {
		return fmt.Errorf("failed to resolve variant %d: %w", shortfall.ProductVariantID, err)
	}
	if variant == nil {
		return fmt.Errorf("variant %d: %w", shortfall.ProductVariantID, domain.ErrNotFound)
	}
	shortfall.VariantHandle = variant.Handle

	product, err := s.catalog.GetProduct(ctx, variant.ProductID)
	if err != nil {
		return fmt.Errorf("failed to resolve product %d: %w", variant.ProductID, err)
	}
	if product != nil {
		shortfall.ProductName = product.Name
	}
	return nil
}

// GetMovement retrieves a movement header
func (s *InventoryService) GetMovement(ctx context.Context, id int64) (*domain.Movement, error) {
	movement, err := s.ledger.GetMovement(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get movement: %w", err)
	}
	if movement == nil {
		return nil, fmt.Errorf("movement %d: %w", id, domain.ErrNotFound)
	}
	return movement, nil
}

// ListMovements lists movement headers matching the filter
func (s *InventoryService) ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.Movement, error) {
	if filter.MovementType != nil && !filter.MovementType.IsValid() {
		return nil, domain.NewValidationError("movement_type", "must be IN, OUT or RETURN")
	}
	return s.ledger.ListMovements(ctx, filter)
}

// GetMovementItems lists a movement's lines with display fields
func (s *InventoryService) GetMovementItems(ctx context.Context, movementID int64) ([]domain.MovementItemDetail, error) {
	movement, err := s.ledger.GetMovement(ctx, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movement: %w", err)
	}
	if movement == nil {
		return nil, fmt.Errorf("movement %d: %w", movementID, domain.ErrNotFound)
	}
	return s.ledger.GetMovementItems(ctx, movementID)
}

// GetMovementHistory lists a variant's ledger history, newest first
func (s *InventoryService) GetMovementHistory(ctx context.Context, variantID int64) ([]domain.MovementHistoryEntry, error) {
	return s.ledger.GetMovementHistory(ctx, variantID)
}

// GetStockLevel returns the derived stock for a variant. A variant
// with no ledger activity reports zero quantity.
func (s *InventoryService) GetStockLevel(ctx context.Context, variantID int64) (*domain.StockLevel, error) {
	stock, err := s.ledger.GetStockLevel(ctx, variantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock level: %w", err)
	}
	if stock != nil {
		return stock, nil
	}

	variant, err := s.catalog.GetVariant(ctx, variantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve variant: %w", err)
	}
	if variant == nil {
		return nil, fmt.Errorf("variant %d: %w", variantID, domain.ErrNotFound)
	}

	level := &domain.StockLevel{
		ProductVariantID: variantID,
		Quantity:         0,
		ProductID:        variant.ProductID,
		VariantHandle:    variant.Handle,
	}
	if product, err := s.catalog.GetProduct(ctx, variant.ProductID); err == nil && product != nil {
		level.ProductName = product.Name
	}
	return level, nil
}

// ListStockLevels returns all stock rows, cached briefly
func (s *InventoryService) ListStockLevels(ctx context.Context) ([]domain.StockLevel, error) {
	if s.cache != nil {
		var cached []domain.StockLevel
		if err := s.cache.Get(ctx, cacheKeyStockAll, &cached); err == nil {
			return cached, nil
		}
	}

	levels, err := s.ledger.ListStockLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock levels: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyStockAll, levels, cacheTTL); err != nil {
			s.logger.WarnContext(ctx, "failed to cache stock levels", "err", err)
		}
	}

	return levels, nil
}

// ListLowStock returns stock rows at or below the threshold
func (s *InventoryService) ListLowStock(ctx context.Context, threshold int) ([]domain.StockLevel, error) {
	if threshold < 0 {
		return nil, domain.NewValidationError("threshold", "cannot be negative")
	}
	return s.ledger.ListLowStock(ctx, threshold)
}

// SetStockLevel applies a manual correction outside the ledger
func (s *InventoryService) SetStockLevel(ctx context.Context, variantID int64, quantity int) error {
	variant, err := s.catalog.GetVariant(ctx, variantID)
	if err != nil {
		return fmt.Errorf("failed to resolve variant: %w", err)
	}
	if variant == nil {
		return fmt.Errorf("variant %d: %w", variantID, domain.ErrNotFound)
	}

	if err := s.ledger.SetStockLevel(ctx, variantID, quantity); err != nil {
		return err
	}

	s.invalidateStockCache(ctx)
	return nil
}

// GetValuation values in-stock variants at current selling prices
func (s *InventoryService) GetValuation(ctx context.Context) (*domain.ValuationReport, error) {
	if s.cache != nil {
		var cached domain.ValuationReport
		if err := s.cache.Get(ctx, cacheKeyValuation, &cached); err == nil {
			return &cached, nil
		}
	}

	lines, err := s.ledger.GetValuation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get valuation: %w", err)
	}

	report := domain.NewValuationReport(lines)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyValuation, report, cacheTTL); err != nil {
			s.logger.WarnContext(ctx, "failed to cache valuation", "err", err)
		}
	}

	return report, nil
}

func (s *InventoryService) invalidateStockCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, stockKeyPattern); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate stock cache", "err", err)
	}
	if err := s.cache.Delete(ctx, cacheKeyValuation); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate valuation cache", "err", err)
	}
}

func defaultNotes(notes *string, fallback string) *string {
	if notes != nil && *notes != "" {
		return notes
	}
	return &fallback
}
