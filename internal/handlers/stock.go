// internal/handlers/stock.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/core/ports"
)

// StockHandler serves derived stock and report endpoints
type StockHandler struct {
	inventory ports.InventoryService
	threshold int
	logger    *slog.Logger
}

// NewStockHandler creates a new stock handler. threshold is the
// default low stock cutoff when the query omits one.
func NewStockHandler(inventory ports.InventoryService, threshold int, logger *slog.Logger) *StockHandler {
	return &StockHandler{
		inventory: inventory,
		threshold: threshold,
		logger:    logger.With(slog.String("handler", "stock")),
	}
}

// ListStockLevels handles GET /api/v1/stock
func (h *StockHandler) ListStockLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.inventory.ListStockLevels(r.Context())
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, levels)
}

// GetStockLevel handles GET /api/v1/stock/{id}
func (h *StockHandler) GetStockLevel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	level, err := h.inventory.GetStockLevel(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, level)
}

type setStockRequest struct {
	Quantity int `json:"quantity"`
}

// SetStockLevel handles PUT /api/v1/stock/{id}. This is a manual
// correction that bypasses the ledger.
func (h *StockHandler) SetStockLevel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	var req setStockRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	if err := h.inventory.SetStockLevel(r.Context(), id, req.Quantity); err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	level, err := h.inventory.GetStockLevel(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, level)
}

// ListLowStock handles GET /api/v1/stock/low with an optional
// threshold query parameter.
func (h *StockHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	threshold := h.threshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		n, err := parsePositiveInt(raw)
		if err != nil {
			respondError(w, h.logger, r, domain.NewValidationError("threshold", "must be a positive integer"))
			return
		}
		threshold = n
	}

	levels, err := h.inventory.ListLowStock(r.Context(), threshold)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, levels)
}

type availabilityRequest struct {
	Items []domain.AvailabilityRequest `json:"items"`
}

type availabilityResponse struct {
	Available    bool                       `json:"available"`
	Insufficient []domain.InsufficientStock `json:"insufficient,omitempty"`
}

// CheckAvailability handles POST /api/v1/stock/availability
func (h *StockHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	if len(req.Items) == 0 {
		respondError(w, h.logger, r, domain.NewValidationError("items", "must not be empty"))
		return
	}

	insufficient, err := h.inventory.CheckAvailability(r.Context(), req.Items)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	respondJSON(w, http.StatusOK, availabilityResponse{
		Available:    len(insufficient) == 0,
		Insufficient: insufficient,
	})
}

// GetValuation handles GET /api/v1/reports/valuation
func (h *StockHandler) GetValuation(w http.ResponseWriter, r *http.Request) {
	report, err := h.inventory.GetValuation(r.Context())
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
