// internal/workers/queue.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/shopstock-be/internal/core/ports"
)

// Queue enqueues background tasks through asynq
type Queue struct {
	client *asynq.Client
	logger *slog.Logger
}

// Statically assert that *Queue implements the TaskQueue interface.
var _ ports.TaskQueue = (*Queue)(nil)

// NewQueue creates a task queue backed by the given asynq client
func NewQueue(client *asynq.Client, logger *slog.Logger) *Queue {
	return &Queue{
		client: client,
		logger: logger.With(slog.String("component", "task_queue")),
	}
}

// EnqueueBarcodeCleanup schedules deletion of barcode image files
func (q *Queue) EnqueueBarcodeCleanup(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	task, err := NewBarcodeCleanupTask(paths)
	if err != nil {
		return err
	}

	info, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue barcode cleanup: %w", err)
	}

	q.logger.DebugContext(ctx, "barcode cleanup enqueued",
		slog.String("task_id", info.ID),
		slog.Int("paths", len(paths)))
	return nil
}

// Close releases the underlying client
func (q *Queue) Close() error {
	return q.client.Close()
}
