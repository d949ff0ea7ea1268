// internal/adapters/storage/local.go
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ammerola/shopstock-be/internal/core/ports"
)

// LocalStore keeps generated assets under a data directory on the
// local filesystem.
type LocalStore struct {
	baseDir string
	logger  *slog.Logger
}

// Statically assert that *LocalStore implements the FileStore interface.
var _ ports.FileStore = (*LocalStore)(nil)

// NewLocalStore creates a file store rooted at baseDir
func NewLocalStore(baseDir string, logger *slog.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &LocalStore{
		baseDir: baseDir,
		logger:  logger.With(slog.String("component", "storage")),
	}, nil
}

// SavePNG writes image data under the data directory, creating parent
// directories as needed, and returns the absolute path.
func (s *LocalStore) SavePNG(ctx context.Context, relPath string, data []byte) (string, error) {
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", relPath, err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", relPath, err)
	}

	s.logger.DebugContext(ctx, "file saved", slog.String("path", fullPath))
	return fullPath, nil
}

// DeleteFile removes a file, reporting success. A missing file counts
// as deleted; any other failure is logged and swallowed so callers
// never fail on cleanup.
func (s *LocalStore) DeleteFile(ctx context.Context, path string) bool {
	err := os.Remove(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true
		}
		s.logger.WarnContext(ctx, "failed to delete file",
			"err", err,
			slog.String("path", path))
		return false
	}

	s.logger.DebugContext(ctx, "file deleted", slog.String("path", path))
	return true
}

// ResolveDisplayURL converts a stored path to a file URL for clients
func (s *LocalStore) ResolveDisplayURL(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + filepath.ToSlash(abs)
}
