// internal/handlers/movements.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/core/ports"
)

// MovementHandler serves ledger endpoints
type MovementHandler struct {
	inventory ports.InventoryService
	logger    *slog.Logger
}

// NewMovementHandler creates a new movement handler
func NewMovementHandler(inventory ports.InventoryService, logger *slog.Logger) *MovementHandler {
	return &MovementHandler{
		inventory: inventory,
		logger:    logger.With(slog.String("handler", "movements")),
	}
}

type movementItemRequest struct {
	ProductVariantID int64           `json:"product_variant_id"`
	Quantity         int             `json:"quantity"`
	PricePerUnit     decimal.Decimal `json:"price_per_unit"`
}

type movementRequest struct {
	MovementType domain.MovementType   `json:"movement_type"`
	MovementDate *time.Time            `json:"movement_date"`
	Notes        *string               `json:"notes"`
	Items        []movementItemRequest `json:"items"`
}

type postedResponse struct {
	MovementID int64 `json:"movement_id"`
}

func toItems(reqs []movementItemRequest) []domain.MovementItem {
	items := make([]domain.MovementItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, domain.MovementItem{
			ProductVariantID: r.ProductVariantID,
			Quantity:         r.Quantity,
			PricePerUnit:     r.PricePerUnit,
		})
	}
	return items
}

// PostMovement handles POST /api/v1/movements
func (h *MovementHandler) PostMovement(w http.ResponseWriter, r *http.Request) {
	var req movementRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	movement := &domain.Movement{
		MovementType: req.MovementType,
		Notes:        req.Notes,
	}
	if req.MovementDate != nil {
		movement.MovementDate = *req.MovementDate
	}

	id, err := h.inventory.PostMovement(r.Context(), movement, toItems(req.Items))
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, postedResponse{MovementID: id})
}

type shorthandRequest struct {
	Notes *string               `json:"notes"`
	Items []movementItemRequest `json:"items"`
}

// RecordPurchase handles POST /api/v1/movements/purchase
func (h *MovementHandler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req shorthandRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	id, err := h.inventory.RecordPurchase(r.Context(), toItems(req.Items), req.Notes)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, postedResponse{MovementID: id})
}

// RecordSale handles POST /api/v1/movements/sale. The sale is refused
// with 409 when current stock cannot cover the requested quantities.
func (h *MovementHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req shorthandRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	items := toItems(req.Items)

	requests := make([]domain.AvailabilityRequest, 0, len(items))
	for _, item := range items {
		requests = append(requests, domain.AvailabilityRequest{
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
		})
	}

	insufficient, err := h.inventory.CheckAvailability(r.Context(), requests)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	if len(insufficient) > 0 {
		respondJSON(w, http.StatusConflict, errorResponse{
			Error:   "insufficient stock",
			Details: insufficient,
		})
		return
	}

	id, err := h.inventory.RecordSale(r.Context(), items, req.Notes)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, postedResponse{MovementID: id})
}

// RecordReturn handles POST /api/v1/movements/return
func (h *MovementHandler) RecordReturn(w http.ResponseWriter, r *http.Request) {
	var req shorthandRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	id, err := h.inventory.RecordReturn(r.Context(), toItems(req.Items), req.Notes)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, postedResponse{MovementID: id})
}

// ListMovements handles GET /api/v1/movements with optional type,
// date_from, date_to, limit and offset query parameters.
func (h *MovementHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	filter, err := parseMovementFilter(r)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	movements, err := h.inventory.ListMovements(r.Context(), filter)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, movements)
}

// GetMovement handles GET /api/v1/movements/{id}
func (h *MovementHandler) GetMovement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	movement, err := h.inventory.GetMovement(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, movement)
}

// GetMovementItems handles GET /api/v1/movements/{id}/items
func (h *MovementHandler) GetMovementItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	items, err := h.inventory.GetMovementItems(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func parseMovementFilter(r *http.Request) (domain.MovementFilter, error) {
	var filter domain.MovementFilter
	q := r.URL.Query()

	if raw := q.Get("type"); raw != "" {
		mt := domain.MovementType(raw)
		if !mt.IsValid() {
			return filter, domain.NewValidationError("type", "must be IN, OUT or RETURN")
		}
		filter.MovementType = &mt
	}
	if raw := q.Get("date_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, domain.NewValidationError("date_from", "must be RFC 3339")
		}
		filter.DateFrom = &t
	}
	if raw := q.Get("date_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, domain.NewValidationError("date_to", "must be RFC 3339")
		}
		filter.DateTo = &t
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := parsePositiveInt(raw)
		if err != nil {
			return filter, domain.NewValidationError("limit", "must be a positive integer")
		}
		filter.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := parsePositiveInt(raw)
		if err != nil {
			return filter, domain.NewValidationError("offset", "must be a positive integer")
		}
		filter.Offset = n
	}

	return filter, nil
}
