// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task type names registered with the asynq mux.
const (
	TypeBarcodeCleanup = "barcode:cleanup"
	TypeLowStockScan   = "stock:low_scan"
)

// Queue names, highest priority first.
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// BarcodeCleanupPayload lists barcode image files to remove after
// their owning variants were deleted.
type BarcodeCleanupPayload struct {
	Paths []string `json:"paths"`
}

// LowStockScanPayload configures a low stock sweep
type LowStockScanPayload struct {
	Threshold int `json:"threshold"`
}

// NewBarcodeCleanupTask creates a barcode cleanup task
func NewBarcodeCleanupTask(paths []string) (*asynq.Task, error) {
	payload, err := json.Marshal(BarcodeCleanupPayload{Paths: paths})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cleanup payload: %w", err)
	}
	return asynq.NewTask(TypeBarcodeCleanup, payload, asynq.Queue(QueueLow), asynq.MaxRetry(3)), nil
}

// NewLowStockScanTask creates a low stock scan task
func NewLowStockScanTask(threshold int) (*asynq.Task, error) {
	payload, err := json.Marshal(LowStockScanPayload{Threshold: threshold})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scan payload: %w", err)
	}
	return asynq.NewTask(TypeLowStockScan, payload, asynq.Queue(QueueLow)), nil
}
