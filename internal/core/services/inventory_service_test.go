// internal/core/services/inventory_service_test.go
package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/core/services"
	"github.com/ammerola/shopstock-be/test/helpers"
	"github.com/ammerola/shopstock-be/test/mocks"
)

func TestInventoryService_PostMovement(t *testing.T) {
	tests := []struct {
		name          string
		movement      *domain.Movement
		items         []domain.MovementItem
		setupMocks    func(*mocks.MockLedgerRepository)
		expectedError bool
		errorContains string
	}{
		{
			name:     "successful_post_with_valid_movement",
			movement: &domain.Movement{MovementType: domain.MovementIn},
			items:    []domain.MovementItem{helpers.CreateTestMovementItem()},
			setupMocks: func(m *mocks.MockLedgerRepository) {
				m.EXPECT().
					PostMovement(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(42), nil)
			},
			expectedError: false,
		},
		{
			name:          "validation_fails_for_unknown_movement_type",
			movement:      &domain.Movement{MovementType: "TRANSFER"},
			items:         []domain.MovementItem{helpers.CreateTestMovementItem()},
			setupMocks:    func(m *mocks.MockLedgerRepository) {},
			expectedError: true,
			errorContains: "movement_type",
		},
		{
			name:          "validation_fails_for_empty_items",
			movement:      &domain.Movement{MovementType: domain.MovementIn},
			items:         nil,
			setupMocks:    func(m *mocks.MockLedgerRepository) {},
			expectedError: true,
			errorContains: "items",
		},
		{
			name:     "validation_fails_for_zero_quantity_item",
			movement: &domain.Movement{MovementType: domain.MovementIn},
			items: []domain.MovementItem{helpers.CreateTestMovementItem(func(i *domain.MovementItem) {
				i.Quantity = 0
			})},
			setupMocks:    func(m *mocks.MockLedgerRepository) {},
			expectedError: true,
			errorContains: "quantity",
		},
		{
			name:     "validation_fails_for_negative_price_item",
			movement: &domain.Movement{MovementType: domain.MovementOut},
			items: []domain.MovementItem{helpers.CreateTestMovementItem(func(i *domain.MovementItem) {
				i.PricePerUnit = decimal.NewFromFloat(-1.00)
			})},
			setupMocks:    func(m *mocks.MockLedgerRepository) {},
			expectedError: true,
			errorContains: "price_per_unit",
		},
		{
			name:     "repository_error_is_propagated",
			movement: &domain.Movement{MovementType: domain.MovementIn},
			items:    []domain.MovementItem{helpers.CreateTestMovementItem()},
			setupMocks: func(m *mocks.MockLedgerRepository) {
				m.EXPECT().
					PostMovement(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("connection refused"))
			},
			expectedError: true,
			errorContains: "failed to post movement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := mocks.NewMockLedgerRepository(ctrl)
			catalog := mocks.NewMockCatalogRepository(ctrl)
			tt.setupMocks(ledger)

			service := services.NewInventoryService(ledger, catalog, nil, helpers.TestLogger())
			id, err := service.PostMovement(context.Background(), tt.movement, tt.items)

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(42), id)
			}
		})
	}
}

func TestInventoryService_PostMovement_UnknownVariant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerRepository(ctrl)
	catalog := mocks.NewMockCatalogRepository(ctrl)

	ledger.EXPECT().
		PostMovement(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), fmt.Errorf("variant 999: %w", domain.ErrNotFound))

	service := services.NewInventoryService(ledger, catalog, nil, helpers.TestLogger())
	_, err := service.PostMovement(context.Background(),
		&domain.Movement{MovementType: domain.MovementIn},
		[]domain.MovementItem{helpers.CreateTestMovementItem(func(i *domain.MovementItem) {
			i.ProductVariantID = 999
		})})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryService_RecordShorthands(t *testing.T) {
	customNote := "Saturday market"

	tests := []struct {
		name         string
		record       func(*services.InventoryService, context.Context, []domain.MovementItem, *string) (int64, error)
		notes        *string
		expectedType domain.MovementType
		expectedNote string
	}{
		{
			name: "purchase_defaults_note",
			record: func(s *services.InventoryService, ctx context.Context, items []domain.MovementItem, notes *string) (int64, error) {
				return s.RecordPurchase(ctx, items, notes)
			},
			notes:        nil,
			expectedType: domain.MovementIn,
			expectedNote: "Stock purchase",
		},
		{
			name: "sale_defaults_note",
			record: func(s *services.InventoryService, ctx context.Context, items []domain.MovementItem, notes *string) (int64, error) {
				return s.RecordSale(ctx, items, notes)
			},
			notes:        nil,
			expectedType: domain.MovementOut,
			expectedNote: "Sale",
		},
		{
			name: "return_defaults_note",
			record: func(s *services.InventoryService, ctx context.Context, items []domain.MovementItem, notes *string) (int64, error) {
				return s.RecordReturn(ctx, items, notes)
			},
			notes:        nil,
			expectedType: domain.MovementReturn,
			expectedNote: "Product return",
		},
		{
			name: "caller_note_is_preserved",
			record: func(s *services.InventoryService, ctx context.Context, items []domain.MovementItem, notes *string) (int64, error) {
				return s.RecordSale(ctx, items, notes)
			},
			notes:        &customNote,
			expectedType: domain.MovementOut,
			expectedNote: customNote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := mocks.NewMockLedgerRepository(ctrl)
			catalog := mocks.NewMockCatalogRepository(ctrl)

			var posted *domain.Movement
			ledger.EXPECT().
				PostMovement(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, movement *domain.Movement, _ []domain.MovementItem) (int64, error) {
					posted = movement
					return int64(1), nil
				})

			service := services.NewInventoryService(ledger, catalog, nil, helpers.TestLogger())
			items := []domain.MovementItem{helpers.CreateTestMovementItem()}

			_, err := tt.record(service, context.Background(), items, tt.notes)
			require.NoError(t, err)

			require.NotNil(t, posted)
			assert.Equal(t, tt.expectedType, posted.MovementType)
			require.NotNil(t, posted.Notes)
			assert.Equal(t, tt.expectedNote, *posted.Notes)
		})
	}
}

func TestInventoryService_CheckAvailability(t *testing.T) {
	tests := []struct {
		name          string
		requests      []domain.AvailabilityRequest
		setupMocks    func(*mocks.MockLedgerRepository, *mocks.MockCatalogRepository)
		expectedError bool
		errorContains string
		expectedShort int
		checkResult   func(*testing.T, []domain.InsufficientStock)
	}{
		{
			name:     "fully_available",
			requests: []domain.AvailabilityRequest{{ProductVariantID: 1, Quantity: 5}},
			setupMocks: func(ledger *mocks.MockLedgerRepository, catalog *mocks.MockCatalogRepository) {
				ledger.EXPECT().
					GetStockLevel(gomock.Any(), int64(1)).
					Return(helpers.CreateTestStockLevel(), nil)
			},
			expectedShort: 0,
		},
		{
			name:     "shortfall_reports_available_quantity",
			requests: []domain.AvailabilityRequest{{ProductVariantID: 1, Quantity: 25}},
			setupMocks: func(ledger *mocks.MockLedgerRepository, catalog *mocks.MockCatalogRepository) {
				ledger.EXPECT().
					GetStockLevel(gomock.Any(), int64(1)).
					Return(helpers.CreateTestStockLevel(), nil)
			},
			expectedShort: 1,
			checkResult: func(t *testing.T, short []domain.InsufficientStock) {
				assert.Equal(t, 25, short[0].Requested)
				assert.Equal(t, 10, short[0].Available)
				assert.Equal(t, "Classic Tee", short[0].ProductName)
			},
		},
		{
			name:     "missing_stock_row_counts_as_zero",
			requests: []domain.AvailabilityRequest{{ProductVariantID: 7, Quantity: 1}},
			setupMocks: func(ledger *mocks.MockLedgerRepository, catalog *mocks.MockCatalogRepository) {
				ledger.EXPECT().
					GetStockLevel(gomock.Any(), int64(7)).
					Return(nil, nil)
				catalog.EXPECT().
					GetVariant(gomock.Any(), int64(7)).
					Return(helpers.CreateTestVariant(func(v *domain.ProductVariant) {
						v.ID = 7
					}), nil)
				catalog.EXPECT().
					GetProduct(gomock.Any(), int64(1)).
					Return(helpers.CreateTestProduct(), nil)
			},
			expectedShort: 1,
			checkResult: func(t *testing.T, short []domain.InsufficientStock) {
				assert.Equal(t, 0, short[0].Available)
				assert.Equal(t, "M-black", short[0].VariantHandle)
			},
		},
		{
			name:     "unknown_variant_is_not_found",
			requests: []domain.AvailabilityRequest{{ProductVariantID: 99, Quantity: 1}},
			setupMocks: func(ledger *mocks.MockLedgerRepository, catalog *mocks.MockCatalogRepository) {
				ledger.EXPECT().
					GetStockLevel(gomock.Any(), int64(99)).
					Return(nil, nil)
				catalog.EXPECT().
					GetVariant(gomock.Any(), int64(99)).
					Return(nil, nil)
			},
			expectedError: true,
		},
		{
			name:          "invalid_quantity_is_rejected",
			requests:      []domain.AvailabilityRequest{{ProductVariantID: 1, Quantity: 0}},
			setupMocks:    func(ledger *mocks.MockLedgerRepository, catalog *mocks.MockCatalogRepository) {},
			expectedError: true,
			errorContains: "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := mocks.NewMockLedgerRepository(ctrl)
			catalog := mocks.NewMockCatalogRepository(ctrl)
			tt.setupMocks(ledger, catalog)

			service := services.NewInventoryService(ledger, catalog, nil, helpers.TestLogger())
			short, err := service.CheckAvailability(context.Background(), tt.requests)

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}

			require.NoError(t, err)
			assert.Len(t, short, tt.expectedShort)
			if tt.checkResult != nil {
				tt.checkResult(t, short)
			}
		})
	}
}

func TestInventoryService_GetStockLevel(t *testing.T) {
	t.Run("existing_row_is_returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := mocks.NewMockLedgerRepository(ctrl)
		catalog := mocks.NewMockCatalogRepository(ctrl)

		ledger.EXPECT().
			GetStockLevel(gomock.Any(), int64(1)).
			Return(helpers.CreateTestStockLevel(), nil)

		service := services.NewInventoryService(ledger, catalog, nil, helpers.TestLogger())
		level, err := service.GetStockLevel(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, 10, level.Quantity)
	})

	t.Run("known_variant_without_row_reports_zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := mocks.NewMockLedgerRepository(ctrl)
		catalog := mocks.NewMockCatalogRepository(ctrl)

		ledger.EXPECT().
			GetStockLevel(gomock.Any(), int64(5)).
			Return(nil, nil)
		catalog.EXPECT().
			GetVariant(gomock.Any(), int64(5)).
			Return(helpers.CreateTestVariant(func(v *domain.ProductVariant) {
				v.ID = 5
			}), nil)
		catalog.EXPECT().
			GetProduct(gomock.Any(), int64(1)).
			Return(helpers.CreateTestProduct(), nil)

		service := services.NewInventoryService(ledger, catalog, nil, helpers.TestLogger())
		level, err := service.GetStockLevel(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, 0, level.Quantity)
		assert.Equal(t, "Classic Tee", level.ProductName)
	})

	t.Run("unknown_variant_is_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := mocks.NewMockLedgerRepository(ctrl)
		catalog := mocks.NewMockCatalogRepository(ctrl)

		ledger.EXPECT().
			GetStockLevel(gomock.Any(), int64(99)).
			Return(nil, nil)
		catalog.EXPECT().
			GetVariant(gomock.Any(), int64(99)).
			Return(nil, nil)

		service := services.NewInventoryService(ledger, catalog, nil, helpers.TestLogger())
		_, err := service.GetStockLevel(context.Background(), 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestInventoryService_SetStockLevel(t *testing.T) {
	t.Run("unknown_variant_is_rejected_before_write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := mocks.NewMockLedgerRepository(ctrl)
		catalog := mocks.NewMockCatalogRepository(ctrl)

		catalog.EXPECT().
			GetVariant(gomock.Any(), int64(99)).
			Return(nil, nil)

		service := services.NewInventoryService(ledger, catalog, nil, helpers.TestLogger())
		err := service.SetStockLevel(context.Background(), 99, 7)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("correction_invalidates_cached_reads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := mocks.NewMockLedgerRepository(ctrl)
		catalog := mocks.NewMockCatalogRepository(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)

		catalog.EXPECT().
			GetVariant(gomock.Any(), int64(1)).
			Return(helpers.CreateTestVariant(), nil)
		ledger.EXPECT().
			SetStockLevel(gomock.Any(), int64(1), 7).
			Return(nil)
		cache.EXPECT().
			DeletePattern(gomock.Any(), "stock:*").
			Return(nil)
		cache.EXPECT().
			Delete(gomock.Any(), "valuation").
			Return(nil)

		service := services.NewInventoryService(ledger, catalog, cache, helpers.TestLogger())
		err := service.SetStockLevel(context.Background(), 1, 7)

		require.NoError(t, err)
	})
}

func TestInventoryService_GetValuation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerRepository(ctrl)
	catalog := mocks.NewMockCatalogRepository(ctrl)

	lines := []domain.ValuationLine{
		{
			ProductVariantID: 1,
			ProductName:      "Classic Tee",
			VariantHandle:    "M-black",
			Quantity:         10,
			SellingPrice:     decimal.NewFromFloat(19.99),
			TotalValue:       decimal.NewFromFloat(199.90),
		},
		{
			ProductVariantID: 2,
			ProductName:      "Ceramic Mug",
			VariantHandle:    "white",
			Quantity:         4,
			SellingPrice:     decimal.NewFromFloat(12.00),
			TotalValue:       decimal.NewFromFloat(48.00),
		},
	}

	ledger.EXPECT().
		GetValuation(gomock.Any()).
		Return(lines, nil)

	service := services.NewInventoryService(ledger, catalog, nil, helpers.TestLogger())
	report, err := service.GetValuation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.VariantCount)
	assert.Equal(t, 14, report.TotalUnits)
	assert.True(t, report.TotalValue.Equal(decimal.NewFromFloat(247.90)),
		"expected 247.90, got %s", report.TotalValue)
	assert.Len(t, report.Lines, 2)
}

func TestInventoryService_ListMovements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerRepository(ctrl)
	catalog := mocks.NewMockCatalogRepository(ctrl)

	service := services.NewInventoryService(ledger, catalog, nil, helpers.TestLogger())

	bogus := domain.MovementType("TRANSFER")
	_, err := service.ListMovements(context.Background(), domain.MovementFilter{MovementType: &bogus})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
