// internal/handlers/movements_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/handlers"
	"github.com/ammerola/shopstock-be/test/helpers"
	"github.com/ammerola/shopstock-be/test/mocks"
)

func newMovementHandler(t *testing.T) (*handlers.MovementHandler, *mocks.MockInventoryService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	inventory := mocks.NewMockInventoryService(ctrl)
	return handlers.NewMovementHandler(inventory, helpers.TestLogger()), inventory
}

func saleBody(t *testing.T, variantID int64, quantity int) *bytes.Buffer {
	t.Helper()

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"product_variant_id": variantID,
				"quantity":           quantity,
				"price_per_unit":     "19.99",
			},
		},
	}
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func TestMovementHandler_RecordSale(t *testing.T) {
	t.Run("available_stock_posts_the_sale", func(t *testing.T) {
		handler, inventory := newMovementHandler(t)

		inventory.EXPECT().
			CheckAvailability(gomock.Any(), gomock.Any()).
			Return(nil, nil)
		inventory.EXPECT().
			RecordSale(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(12), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/movements/sale", saleBody(t, 1, 2))
		rec := httptest.NewRecorder()

		handler.RecordSale(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]int64
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(12), resp["movement_id"])
	})

	t.Run("insufficient_stock_is_refused_with_conflict", func(t *testing.T) {
		handler, inventory := newMovementHandler(t)

		inventory.EXPECT().
			CheckAvailability(gomock.Any(), gomock.Any()).
			Return([]domain.InsufficientStock{
				{
					ProductVariantID: 1,
					Requested:        25,
					Available:        10,
					ProductName:      "Classic Tee",
					VariantHandle:    "M-black",
				},
			}, nil)
		// RecordSale must not be called when the check fails

		req := httptest.NewRequest(http.MethodPost, "/api/v1/movements/sale", saleBody(t, 1, 25))
		rec := httptest.NewRecorder()

		handler.RecordSale(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp struct {
			Error   string                     `json:"error"`
			Details []domain.InsufficientStock `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "insufficient stock", resp.Error)
		require.Len(t, resp.Details, 1)
		assert.Equal(t, 10, resp.Details[0].Available)
	})

	t.Run("unknown_variant_maps_to_not_found", func(t *testing.T) {
		handler, inventory := newMovementHandler(t)

		inventory.EXPECT().
			CheckAvailability(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("variant 99: %w", domain.ErrNotFound))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/movements/sale", saleBody(t, 99, 1))
		rec := httptest.NewRecorder()

		handler.RecordSale(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed_body_is_a_bad_request", func(t *testing.T) {
		handler, _ := newMovementHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/movements/sale",
			bytes.NewBufferString(`{"items": [`))
		rec := httptest.NewRecorder()

		handler.RecordSale(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMovementHandler_RecordPurchase(t *testing.T) {
	t.Run("unknown_variant_maps_to_not_found", func(t *testing.T) {
		handler, inventory := newMovementHandler(t)

		inventory.EXPECT().
			RecordPurchase(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), fmt.Errorf("failed to post movement: variant 999: %w", domain.ErrNotFound))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/movements/purchase", saleBody(t, 999, 5))
		rec := httptest.NewRecorder()

		handler.RecordPurchase(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMovementHandler_PostMovement(t *testing.T) {
	t.Run("valid_movement_is_created", func(t *testing.T) {
		handler, inventory := newMovementHandler(t)

		var capturedType domain.MovementType
		inventory.EXPECT().
			PostMovement(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, movement *domain.Movement, items []domain.MovementItem) (int64, error) {
				capturedType = movement.MovementType
				return int64(3), nil
			})

		body := `{"movement_type":"RETURN","items":[{"product_variant_id":1,"quantity":1,"price_per_unit":"19.99"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		handler.PostMovement(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, domain.MovementReturn, capturedType)
	})

	t.Run("validation_error_is_a_bad_request", func(t *testing.T) {
		handler, inventory := newMovementHandler(t)

		inventory.EXPECT().
			PostMovement(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), domain.NewValidationError("movement_type", "must be IN, OUT or RETURN"))

		body := `{"movement_type":"TRANSFER","items":[{"product_variant_id":1,"quantity":1,"price_per_unit":"1.00"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		handler.PostMovement(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown_fields_are_rejected", func(t *testing.T) {
		handler, _ := newMovementHandler(t)

		body := `{"movement_type":"IN","total_price":"99.99","items":[]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		handler.PostMovement(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMovementHandler_ListMovements(t *testing.T) {
	t.Run("query_parameters_build_the_filter", func(t *testing.T) {
		handler, inventory := newMovementHandler(t)

		var captured domain.MovementFilter
		inventory.EXPECT().
			ListMovements(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, filter domain.MovementFilter) ([]domain.Movement, error) {
				captured = filter
				return []domain.Movement{}, nil
			})

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/movements?type=OUT&date_from=2026-01-01T00:00:00Z&limit=20&offset=40", nil)
		rec := httptest.NewRecorder()

		handler.ListMovements(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured.MovementType)
		assert.Equal(t, domain.MovementOut, *captured.MovementType)
		require.NotNil(t, captured.DateFrom)
		assert.Equal(t, 20, captured.Limit)
		assert.Equal(t, 40, captured.Offset)
	})

	t.Run("unknown_type_is_a_bad_request", func(t *testing.T) {
		handler, _ := newMovementHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/movements?type=TRANSFER", nil)
		rec := httptest.NewRecorder()

		handler.ListMovements(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad_date_is_a_bad_request", func(t *testing.T) {
		handler, _ := newMovementHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/movements?date_from=yesterday", nil)
		rec := httptest.NewRecorder()

		handler.ListMovements(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMovementHandler_GetMovement(t *testing.T) {
	handler, inventory := newMovementHandler(t)

	inventory.EXPECT().
		GetMovement(gomock.Any(), int64(99)).
		Return(nil, fmt.Errorf("movement 99: %w", domain.ErrNotFound))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movements/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()

	handler.GetMovement(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
