// internal/core/ports/collaborators.go
package ports

import (
	"context"

	"github.com/ammerola/shopstock-be/internal/core/domain"
)

// GeneratedBarcode is the result of encoding a variant's barcode.
type GeneratedBarcode struct {
	Code     string
	Payload  domain.BarcodePayload
	FilePath string
}

// BarcodeGenerator encodes a product/variant pair into a barcode and
// writes its image to the file store.
type BarcodeGenerator interface {
	Generate(ctx context.Context, productName, variantHandle string) (*GeneratedBarcode, error)
}

// FileStore abstracts the local data directory for generated assets.
// DeleteFile is best effort: it reports success but never returns an
// error to the caller.
type FileStore interface {
	SavePNG(ctx context.Context, relPath string, data []byte) (string, error)
	DeleteFile(ctx context.Context, path string) bool
	ResolveDisplayURL(path string) string
}

// TaskQueue enqueues background work.
type TaskQueue interface {
	EnqueueBarcodeCleanup(ctx context.Context, paths []string) error
}
