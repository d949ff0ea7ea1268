// internal/workers/lowstock_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/shopstock-be/internal/core/ports"
)

// LowStockProcessor periodically sweeps the stock table and logs
// variants at or below the configured threshold.
type LowStockProcessor struct {
	inventory ports.InventoryService
	threshold int
	logger    *slog.Logger
}

// NewLowStockProcessor creates a new low stock processor
func NewLowStockProcessor(inventory ports.InventoryService, threshold int, logger *slog.Logger) *LowStockProcessor {
	return &LowStockProcessor{
		inventory: inventory,
		threshold: threshold,
		logger:    logger.With(slog.String("processor", "low_stock")),
	}
}

// ProcessTask handles a low stock scan task
func (p *LowStockProcessor) ProcessTask(ctx context.Context, task *asynq.Task) error {
	threshold := p.threshold
	var payload LowStockScanPayload
	if err := json.Unmarshal(task.Payload(), &payload); err == nil && payload.Threshold > 0 {
		threshold = payload.Threshold
	}

	levels, err := p.inventory.ListLowStock(ctx, threshold)
	if err != nil {
		return fmt.Errorf("low stock scan failed: %w", err)
	}

	if len(levels) == 0 {
		p.logger.InfoContext(ctx, "low stock scan completed, nothing below threshold",
			slog.Int("threshold", threshold))
		return nil
	}

	for _, level := range levels {
		p.logger.WarnContext(ctx, "variant low on stock",
			slog.Int64("variant_id", level.ProductVariantID),
			slog.String("product", level.ProductName),
			slog.String("handle", level.VariantHandle),
			slog.Int("quantity", level.Quantity),
			slog.Int("threshold", threshold))
	}

	p.logger.InfoContext(ctx, "low stock scan completed",
		slog.Int("threshold", threshold),
		slog.Int("below_threshold", len(levels)))
	return nil
}
