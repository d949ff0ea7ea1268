// internal/core/ports/ledger.go
package ports

import (
	"context"

	"github.com/ammerola/shopstock-be/internal/core/domain"
)

// LedgerRepository persists the append-only movement ledger and the
// derived stock table. PostMovement is atomic: the header, all items
// and all stock updates commit together or not at all.
type LedgerRepository interface {
	PostMovement(ctx context.Context, movement *domain.Movement, items []domain.MovementItem) (int64, error)

	GetMovement(ctx context.Context, id int64) (*domain.Movement, error)
	ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.Movement, error)
	GetMovementItems(ctx context.Context, movementID int64) ([]domain.MovementItemDetail, error)
	GetMovementHistory(ctx context.Context, variantID int64) ([]domain.MovementHistoryEntry, error)

	GetStockLevel(ctx context.Context, variantID int64) (*domain.StockLevel, error)
	ListStockLevels(ctx context.Context) ([]domain.StockLevel, error)
	ListLowStock(ctx context.Context, threshold int) ([]domain.StockLevel, error)
	SetStockLevel(ctx context.Context, variantID int64, quantity int) error

	GetValuation(ctx context.Context) ([]domain.ValuationLine, error)
}
