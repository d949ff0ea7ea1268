// internal/core/ports/inventory.go
package ports

import (
	"context"

	"github.com/ammerola/shopstock-be/internal/core/domain"
)

// InventoryService orchestrates ledger writes and stock reads.
type InventoryService interface {
	PostMovement(ctx context.Context, movement *domain.Movement, items []domain.MovementItem) (int64, error)
	RecordPurchase(ctx context.Context, items []domain.MovementItem, notes *string) (int64, error)
	RecordSale(ctx context.Context, items []domain.MovementItem, notes *string) (int64, error)
	RecordReturn(ctx context.Context, items []domain.MovementItem, notes *string) (int64, error)

	CheckAvailability(ctx context.Context, requests []domain.AvailabilityRequest) ([]domain.InsufficientStock, error)

	GetMovement(ctx context.Context, id int64) (*domain.Movement, error)
	ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.Movement, error)
	GetMovementItems(ctx context.Context, movementID int64) ([]domain.MovementItemDetail, error)
	GetMovementHistory(ctx context.Context, variantID int64) ([]domain.MovementHistoryEntry, error)

	GetStockLevel(ctx context.Context, variantID int64) (*domain.StockLevel, error)
	ListStockLevels(ctx context.Context) ([]domain.StockLevel, error)
	ListLowStock(ctx context.Context, threshold int) ([]domain.StockLevel, error)
	SetStockLevel(ctx context.Context, variantID int64, quantity int) error

	GetValuation(ctx context.Context) (*domain.ValuationReport, error)
}
