// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/shopstock-be/internal/core/ports"
)

// CleanupProcessor removes barcode image files left behind by deleted
// variants. File removal is best effort; a path that cannot be removed
// is logged and skipped rather than retried forever.
type CleanupProcessor struct {
	store  ports.FileStore
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(store ports.FileStore, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		store:  store,
		logger: logger.With(slog.String("processor", "barcode_cleanup")),
	}
}

// ProcessTask handles a barcode cleanup task
func (p *CleanupProcessor) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload BarcodeCleanupPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal cleanup payload: %v: %w", err, asynq.SkipRetry)
	}

	deleted := 0
	for _, path := range payload.Paths {
		if p.store.DeleteFile(ctx, path) {
			deleted++
		}
	}

	p.logger.InfoContext(ctx, "barcode cleanup completed",
		slog.Int("requested", len(payload.Paths)),
		slog.Int("deleted", deleted))
	return nil
}
