// internal/adapters/db/ledger_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/core/ports"
)

// LedgerRepository implements ports.LedgerRepository on PostgreSQL.
// Movements are append-only; stock is a derived table maintained in the
// same transaction as the ledger write.
type LedgerRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(database *Database, logger *slog.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:     database,
		logger: logger.With(slog.String("repository", "ledger")),
	}
}

var _ ports.LedgerRepository = (*LedgerRepository)(nil)

// PostMovement writes a movement header, its items and the derived
// stock updates in a single transaction. Validation failures are
// rejected before any write. Item totals are always recomputed here;
// caller-supplied totals are ignored.
func (r *LedgerRepository) PostMovement(ctx context.Context, movement *domain.Movement, items []domain.MovementItem) (int64, error) {
	if err := movement.Validate(); err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, domain.NewValidationError("items", "must not be empty")
	}
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return 0, err
		}
	}

	delta := movement.MovementType.StockDelta()

	var movementID int64
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO inventory_movements (movement_type, movement_date, notes)
			VALUES ($1, COALESCE($2, NOW()), $3)
			RETURNING id`,
			movement.MovementType, nullableTime(movement.MovementDate), movement.Notes,
		).Scan(&movementID)
		if err != nil {
			return fmt.Errorf("failed to insert movement: %w", err)
		}

		for i := range items {
			item := &items[i]
			item.ComputeTotal()

			_, err := tx.Exec(ctx, `
				INSERT INTO inventory_movement_items
					(movement_id, product_variant_id, quantity, price_per_unit, total_price)
				VALUES ($1, $2, $3, $4, $5)`,
				movementID, item.ProductVariantID, item.Quantity, item.PricePerUnit, item.TotalPrice,
			)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23503" {
					return fmt.Errorf("variant %d: %w", item.ProductVariantID, domain.ErrNotFound)
				}
				return fmt.Errorf("failed to insert movement item: %w", err)
			}

			_, err = tx.Exec(ctx, `
				INSERT INTO inventory_stock (product_variant_id, quantity, updated_at)
				VALUES ($1, $2, NOW())
				ON CONFLICT (product_variant_id)
				DO UPDATE SET quantity = inventory_stock.quantity + EXCLUDED.quantity,
				              updated_at = NOW()`,
				item.ProductVariantID, delta*item.Quantity,
			)
			if err != nil {
				return fmt.Errorf("failed to update stock: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	r.logger.InfoContext(ctx, "movement posted",
		slog.Int64("movement_id", movementID),
		slog.String("type", string(movement.MovementType)),
		slog.Int("items", len(items)))

	movement.ID = movementID
	return movementID, nil
}

// GetMovement fetches a movement header, (nil, nil) when absent
func (r *LedgerRepository) GetMovement(ctx context.Context, id int64) (*domain.Movement, error) {
	query := `
		SELECT id, movement_type, movement_date, notes, created_at
		FROM inventory_movements
		WHERE id = $1`

	var m domain.Movement
	err := r.db.QueryRow(ctx, query, id).
		Scan(&m.ID, &m.MovementType, &m.MovementDate, &m.Notes, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get movement: %w", err)
	}

	return &m, nil
}

// ListMovements returns headers filtered by type and date range,
// newest first.
func (r *LedgerRepository) ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.Movement, error) {
	builder := sq.Select("id", "movement_type", "movement_date", "notes", "created_at").
		From("inventory_movements").
		OrderBy("movement_date DESC", "id DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.MovementType != nil {
		builder = builder.Where(sq.Eq{"movement_type": *filter.MovementType})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"movement_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"movement_date": *filter.DateTo})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build movements query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.Movement, error) {
		var m domain.Movement
		if err := rows.Scan(&m.ID, &m.MovementType, &m.MovementDate, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		return &m, nil
	})
}

// GetMovementItems returns a movement's lines with catalog display fields
func (r *LedgerRepository) GetMovementItems(ctx context.Context, movementID int64) ([]domain.MovementItemDetail, error) {
	query := `
		SELECT i.id, i.movement_id, i.product_variant_id, i.quantity,
		       i.price_per_unit, i.total_price, i.created_at, p.name, v.handle
		FROM inventory_movement_items i
		JOIN product_variants v ON v.id = i.product_variant_id
		JOIN products p ON p.id = v.product_id
		WHERE i.movement_id = $1
		ORDER BY i.id`

	rows, err := r.db.Query(ctx, query, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movement items: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.MovementItemDetail, error) {
		var d domain.MovementItemDetail
		if err := rows.Scan(
			&d.ID, &d.MovementID, &d.ProductVariantID, &d.Quantity,
			&d.PricePerUnit, &d.TotalPrice, &d.CreatedAt, &d.ProductName, &d.VariantHandle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan movement item: %w", err)
		}
		return &d, nil
	})
}

// GetMovementHistory returns a variant's ledger lines joined to their
// headers, newest first.
func (r *LedgerRepository) GetMovementHistory(ctx context.Context, variantID int64) ([]domain.MovementHistoryEntry, error) {
	query := `
		SELECT i.id, m.id, m.movement_type, m.movement_date,
		       i.quantity, i.price_per_unit, i.total_price, m.notes
		FROM inventory_movement_items i
		JOIN inventory_movements m ON m.id = i.movement_id
		WHERE i.product_variant_id = $1
		ORDER BY m.movement_date DESC, i.id DESC`

	rows, err := r.db.Query(ctx, query, variantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movement history: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.MovementHistoryEntry, error) {
		var e domain.MovementHistoryEntry
		if err := rows.Scan(
			&e.ItemID, &e.MovementID, &e.MovementType, &e.MovementDate,
			&e.Quantity, &e.PricePerUnit, &e.TotalPrice, &e.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		return &e, nil
	})
}

// GetStockLevel fetches the derived stock row for a variant,
// (nil, nil) when the variant has no ledger activity yet.
func (r *LedgerRepository) GetStockLevel(ctx context.Context, variantID int64) (*domain.StockLevel, error) {
	query := stockSelect + ` WHERE s.product_variant_id = $1`

	var s domain.StockLevel
	err := r.db.QueryRow(ctx, query, variantID).Scan(
		&s.ProductVariantID, &s.Quantity, &s.ProductID, &s.ProductName,
		&s.VariantHandle, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stock level: %w", err)
	}

	return &s, nil
}

// ListStockLevels returns all stock rows ordered by product then handle
func (r *LedgerRepository) ListStockLevels(ctx context.Context) ([]domain.StockLevel, error) {
	query := stockSelect + ` ORDER BY p.name, v.handle`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock levels: %w", err)
	}

	return ScanMany(rows, scanStockRow)
}

// ListLowStock returns stock rows at or below the threshold, most
// depleted first.
func (r *LedgerRepository) ListLowStock(ctx context.Context, threshold int) ([]domain.StockLevel, error) {
	query := stockSelect + `
		WHERE s.quantity <= $1
		ORDER BY s.quantity, p.name`

	rows, err := r.db.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock: %w", err)
	}

	return ScanMany(rows, scanStockRow)
}

// SetStockLevel overwrites a variant's derived quantity. This is a
// manual correction outside the ledger; routine changes go through
// PostMovement.
func (r *LedgerRepository) SetStockLevel(ctx context.Context, variantID int64, quantity int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO inventory_stock (product_variant_id, quantity, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (product_variant_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = NOW()`,
		variantID, quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to set stock level: %w", err)
	}

	r.logger.WarnContext(ctx, "stock level manually corrected",
		slog.Int64("variant_id", variantID),
		slog.Int("quantity", quantity))
	return nil
}

// GetValuation values every in-stock variant at the product's current
// selling price.
func (r *LedgerRepository) GetValuation(ctx context.Context) ([]domain.ValuationLine, error) {
	query := `
		SELECT s.product_variant_id, p.name, v.handle, s.quantity,
		       p.selling_price, p.selling_price * s.quantity AS total_value
		FROM inventory_stock s
		JOIN product_variants v ON v.id = s.product_variant_id
		JOIN products p ON p.id = v.product_id
		WHERE s.quantity > 0
		ORDER BY p.name, v.handle`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get valuation: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.ValuationLine, error) {
		var l domain.ValuationLine
		if err := rows.Scan(
			&l.ProductVariantID, &l.ProductName, &l.VariantHandle,
			&l.Quantity, &l.SellingPrice, &l.TotalValue,
		); err != nil {
			return nil, fmt.Errorf("failed to scan valuation line: %w", err)
		}
		return &l, nil
	})
}

const stockSelect = `
	SELECT s.product_variant_id, s.quantity, p.id, p.name, v.handle, s.updated_at
	FROM inventory_stock s
	JOIN product_variants v ON v.id = s.product_variant_id
	JOIN products p ON p.id = v.product_id`

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func scanStockRow(rows pgx.Rows) (*domain.StockLevel, error) {
	var s domain.StockLevel
	if err := rows.Scan(
		&s.ProductVariantID, &s.Quantity, &s.ProductID, &s.ProductName,
		&s.VariantHandle, &s.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan stock level: %w", err)
	}
	return &s, nil
}
