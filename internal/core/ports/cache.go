// internal/core/ports/cache.go
package ports

import (
	"context"
	"time"
)

// CacheRepository is a read-through cache for derived stock and report
// data. Get returns ErrCacheMiss from the adapter when the key is
// absent; callers treat any cache error as a miss.
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
}
