// internal/handlers/health.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger reports reachability of a dependency
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports detailed dependency health
type HealthChecker interface {
	Pinger
	Health(ctx context.Context) map[string]interface{}
}

// HealthHandler serves liveness and readiness endpoints
type HealthHandler struct {
	db      HealthChecker
	cache   Pinger
	version string
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db HealthChecker, cache Pinger, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		cache:   cache,
		version: version,
		logger:  logger.With(slog.String("handler", "health")),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
		"time":    time.Now().UTC(),
	})
}

// Ready handles GET /ready, checking all dependencies
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := map[string]interface{}{
		"database": h.db.Health(ctx),
	}

	if err := h.db.Ping(ctx); err != nil {
		status = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		cacheStatus := "healthy"
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "unhealthy: " + err.Error()
			status = http.StatusServiceUnavailable
		}
		checks["cache"] = cacheStatus
	}

	respondJSON(w, status, map[string]interface{}{
		"status": http.StatusText(status),
		"checks": checks,
	})
}
