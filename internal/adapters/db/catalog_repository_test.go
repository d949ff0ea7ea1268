// internal/adapters/db/catalog_repository_test.go
package db_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/shopstock-be/internal/adapters/db"
	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/test/helpers"
)

func setupCatalogRepo(t *testing.T) (*db.CatalogRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	database := db.NewDatabaseWithPool(mock, helpers.TestLogger())
	return db.NewCatalogRepository(database, helpers.TestLogger()), mock
}

func TestCatalogRepository_CreateVariant(t *testing.T) {
	t.Run("duplicate_barcode_code_is_a_validation_error", func(t *testing.T) {
		repo, mock := setupCatalogRepo(t)

		mock.ExpectQuery("INSERT INTO product_variants").
			WithArgs(int64(2), "M-BLACK", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{
				Code:           "23505",
				ConstraintName: "idx_variants_barcode_code",
			})

		code := "CLASSICTEE-M-BLACK"
		_, err := repo.CreateVariant(context.Background(), &domain.ProductVariant{
			ProductID:   2,
			Handle:      "M-BLACK",
			BarcodeCode: &code,
		})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Contains(t, err.Error(), "barcode_code")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate_handle_is_a_validation_error", func(t *testing.T) {
		repo, mock := setupCatalogRepo(t)

		mock.ExpectQuery("INSERT INTO product_variants").
			WithArgs(int64(2), "M-black", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{
				Code:           "23505",
				ConstraintName: "product_variants_product_id_handle_key",
			})

		_, err := repo.CreateVariant(context.Background(), &domain.ProductVariant{
			ProductID: 2,
			Handle:    "M-black",
		})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Contains(t, err.Error(), "handle")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_UpdateVariant(t *testing.T) {
	t.Run("duplicate_barcode_code_is_a_validation_error", func(t *testing.T) {
		repo, mock := setupCatalogRepo(t)

		mock.ExpectExec("UPDATE product_variants").
			WithArgs(int64(1), "L-black", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{
				Code:           "23505",
				ConstraintName: "idx_variants_barcode_code",
			})

		variant := helpers.CreateTestVariant(func(v *domain.ProductVariant) {
			v.Handle = "L-black"
		})
		err := repo.UpdateVariant(context.Background(), variant)

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
