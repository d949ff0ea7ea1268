// internal/core/services/catalog_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/core/ports"
	"github.com/ammerola/shopstock-be/internal/core/services"
	"github.com/ammerola/shopstock-be/test/helpers"
	"github.com/ammerola/shopstock-be/test/mocks"
)

type catalogMocks struct {
	repo     *mocks.MockCatalogRepository
	ledger   *mocks.MockLedgerRepository
	barcodes *mocks.MockBarcodeGenerator
	tasks    *mocks.MockTaskQueue
}

func newCatalogService(t *testing.T) (*services.CatalogService, catalogMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := catalogMocks{
		repo:     mocks.NewMockCatalogRepository(ctrl),
		ledger:   mocks.NewMockLedgerRepository(ctrl),
		barcodes: mocks.NewMockBarcodeGenerator(ctrl),
		tasks:    mocks.NewMockTaskQueue(ctrl),
	}

	service := services.NewCatalogService(m.repo, m.ledger, m.barcodes, m.tasks, helpers.TestLogger())
	return service, m
}

func TestCatalogService_CreateVariant(t *testing.T) {
	t.Run("barcode_is_attached_before_persisting", func(t *testing.T) {
		service, m := newCatalogService(t)

		m.repo.EXPECT().
			GetProduct(gomock.Any(), int64(1)).
			Return(helpers.CreateTestProduct(), nil)
		m.barcodes.EXPECT().
			Generate(gomock.Any(), "Classic Tee", "M-black").
			Return(&ports.GeneratedBarcode{
				Code:     "CLASSICTEE-M-BLACK",
				Payload:  domain.BarcodePayload{Height: 80, XDim: 2},
				FilePath: "barcodes/CLASSIC_TEE/M-BLACK/barcode.png",
			}, nil)
		m.repo.EXPECT().
			CreateVariant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *domain.ProductVariant) (int64, error) {
				require.NotNil(t, v.BarcodeCode)
				assert.Equal(t, "CLASSICTEE-M-BLACK", *v.BarcodeCode)
				require.NotNil(t, v.BarcodePath)
				return int64(10), nil
			})

		variant, err := service.CreateVariant(context.Background(), &domain.ProductVariant{
			ProductID: 1,
			Handle:    "M-black",
		})

		require.NoError(t, err)
		require.NotNil(t, variant.Barcode)
		assert.Equal(t, 80, variant.Barcode.Height)
	})

	t.Run("handle_with_whitespace_is_rejected", func(t *testing.T) {
		service, _ := newCatalogService(t)

		_, err := service.CreateVariant(context.Background(), &domain.ProductVariant{
			ProductID: 1,
			Handle:    "M black",
		})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("unknown_product_is_not_found", func(t *testing.T) {
		service, m := newCatalogService(t)

		m.repo.EXPECT().
			GetProduct(gomock.Any(), int64(99)).
			Return(nil, nil)

		_, err := service.CreateVariant(context.Background(), &domain.ProductVariant{
			ProductID: 99,
			Handle:    "M-black",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("generator_failure_aborts_create", func(t *testing.T) {
		service, m := newCatalogService(t)

		m.repo.EXPECT().
			GetProduct(gomock.Any(), int64(1)).
			Return(helpers.CreateTestProduct(), nil)
		m.barcodes.EXPECT().
			Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("encode failed"))

		_, err := service.CreateVariant(context.Background(), &domain.ProductVariant{
			ProductID: 1,
			Handle:    "M-black",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to generate barcode")
	})
}

func TestCatalogService_UpdateVariant(t *testing.T) {
	t.Run("handle_change_regenerates_barcode_and_cleans_up", func(t *testing.T) {
		service, m := newCatalogService(t)

		existing := helpers.CreateTestVariant()

		m.repo.EXPECT().
			GetVariant(gomock.Any(), int64(1)).
			Return(existing, nil)
		m.repo.EXPECT().
			GetProduct(gomock.Any(), int64(1)).
			Return(helpers.CreateTestProduct(), nil)
		m.barcodes.EXPECT().
			Generate(gomock.Any(), "Classic Tee", "L-black").
			Return(&ports.GeneratedBarcode{
				Code:     "CLASSICTEE-L-BLACK",
				FilePath: "barcodes/CLASSIC_TEE/L-BLACK/barcode.png",
			}, nil)
		m.tasks.EXPECT().
			EnqueueBarcodeCleanup(gomock.Any(), []string{*existing.BarcodePath}).
			Return(nil)
		m.repo.EXPECT().
			UpdateVariant(gomock.Any(), gomock.Any()).
			Return(nil)
		m.repo.EXPECT().
			GetVariant(gomock.Any(), int64(1)).
			Return(helpers.CreateTestVariant(func(v *domain.ProductVariant) {
				v.Handle = "L-black"
			}), nil)

		updated, err := service.UpdateVariant(context.Background(), &domain.ProductVariant{
			ID:     1,
			Handle: "L-black",
		})

		require.NoError(t, err)
		assert.Equal(t, "L-black", updated.Handle)
	})

	t.Run("unchanged_handle_keeps_existing_barcode", func(t *testing.T) {
		service, m := newCatalogService(t)

		existing := helpers.CreateTestVariant()

		m.repo.EXPECT().
			GetVariant(gomock.Any(), int64(1)).
			Return(existing, nil)
		m.repo.EXPECT().
			UpdateVariant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *domain.ProductVariant) error {
				assert.Equal(t, existing.BarcodeCode, v.BarcodeCode)
				assert.Equal(t, existing.BarcodePath, v.BarcodePath)
				return nil
			})
		m.repo.EXPECT().
			GetVariant(gomock.Any(), int64(1)).
			Return(existing, nil)

		_, err := service.UpdateVariant(context.Background(), &domain.ProductVariant{
			ID:     1,
			Handle: existing.Handle,
		})

		require.NoError(t, err)
	})
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	service, m := newCatalogService(t)

	pathA := "barcodes/CLASSIC_TEE/M-BLACK/barcode.png"
	pathB := "barcodes/CLASSIC_TEE/L-BLACK/barcode.png"
	variants := []domain.ProductVariant{
		*helpers.CreateTestVariant(func(v *domain.ProductVariant) { v.BarcodePath = &pathA }),
		*helpers.CreateTestVariant(func(v *domain.ProductVariant) {
			v.ID = 2
			v.Handle = "L-black"
			v.BarcodePath = &pathB
		}),
	}

	m.repo.EXPECT().
		ListVariants(gomock.Any(), int64(1)).
		Return(variants, nil)
	m.repo.EXPECT().
		DeleteProduct(gomock.Any(), int64(1)).
		Return(nil)
	m.tasks.EXPECT().
		EnqueueBarcodeCleanup(gomock.Any(), []string{pathA, pathB}).
		Return(nil)

	err := service.DeleteProduct(context.Background(), 1)
	require.NoError(t, err)
}

func TestCatalogService_DeleteVariant_EnqueueFailureIsNotFatal(t *testing.T) {
	service, m := newCatalogService(t)

	m.repo.EXPECT().
		GetVariant(gomock.Any(), int64(1)).
		Return(helpers.CreateTestVariant(), nil)
	m.repo.EXPECT().
		DeleteVariant(gomock.Any(), int64(1)).
		Return(nil)
	m.tasks.EXPECT().
		EnqueueBarcodeCleanup(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	err := service.DeleteVariant(context.Background(), 1)
	require.NoError(t, err)
}

func TestCatalogService_FindVariantByBarcode(t *testing.T) {
	tests := []struct {
		name          string
		code          string
		setupMocks    func(*mocks.MockCatalogRepository)
		expectedError bool
		checkError    func(*testing.T, error)
	}{
		{
			name: "known_code_resolves_variant",
			code: "CLASSICTEE-M-BLACK",
			setupMocks: func(m *mocks.MockCatalogRepository) {
				m.EXPECT().
					FindVariantByBarcode(gomock.Any(), "CLASSICTEE-M-BLACK").
					Return(helpers.CreateTestVariant(), nil)
			},
		},
		{
			name:       "empty_code_is_rejected",
			code:       "",
			setupMocks: func(m *mocks.MockCatalogRepository) {},
			checkError: func(t *testing.T, err error) {
				assert.True(t, domain.IsValidation(err))
			},
			expectedError: true,
		},
		{
			name: "unknown_code_is_not_found",
			code: "NOPE-NOPE",
			setupMocks: func(m *mocks.MockCatalogRepository) {
				m.EXPECT().
					FindVariantByBarcode(gomock.Any(), "NOPE-NOPE").
					Return(nil, nil)
			},
			checkError: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrNotFound)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newCatalogService(t)
			tt.setupMocks(m.repo)

			variant, err := service.FindVariantByBarcode(context.Background(), tt.code)

			if tt.expectedError {
				require.Error(t, err)
				if tt.checkError != nil {
					tt.checkError(t, err)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "M-black", variant.Handle)
		})
	}
}

func TestCatalogService_GetProductWithStock(t *testing.T) {
	service, m := newCatalogService(t)

	variants := []domain.ProductVariant{
		*helpers.CreateTestVariant(),
		*helpers.CreateTestVariant(func(v *domain.ProductVariant) {
			v.ID = 2
			v.Handle = "L-black"
		}),
	}

	m.repo.EXPECT().
		GetProduct(gomock.Any(), int64(1)).
		Return(helpers.CreateTestProduct(), nil)
	m.repo.EXPECT().
		ListVariants(gomock.Any(), int64(1)).
		Return(variants, nil)
	m.ledger.EXPECT().
		GetStockLevel(gomock.Any(), int64(1)).
		Return(helpers.CreateTestStockLevel(), nil)
	m.ledger.EXPECT().
		GetStockLevel(gomock.Any(), int64(2)).
		Return(nil, nil)

	result, err := service.GetProductWithStock(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, result.Variants, 2)
	assert.Equal(t, 10, result.Variants[0].Stock)
	assert.Equal(t, 0, result.Variants[1].Stock)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	t.Run("unknown_category_is_rejected", func(t *testing.T) {
		service, m := newCatalogService(t)

		categoryID := int64(42)
		m.repo.EXPECT().
			GetCategory(gomock.Any(), int64(42)).
			Return(nil, nil)

		_, err := service.CreateProduct(context.Background(), helpers.CreateTestProduct(func(p *domain.Product) {
			p.CategoryID = &categoryID
		}))

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("uncategorized_product_is_allowed", func(t *testing.T) {
		service, m := newCatalogService(t)

		m.repo.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			Return(int64(5), nil)

		product, err := service.CreateProduct(context.Background(), helpers.CreateTestProduct(func(p *domain.Product) {
			p.CategoryID = nil
		}))

		require.NoError(t, err)
		assert.Equal(t, "Classic Tee", product.Name)
	})
}
