// internal/adapters/db/catalog_repository.go
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/core/ports"
)

// CatalogRepository implements ports.CatalogRepository on PostgreSQL.
type CatalogRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(database *Database, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:     database,
		logger: logger.With(slog.String("repository", "catalog")),
	}
}

var _ ports.CatalogRepository = (*CatalogRepository)(nil)

// CreateCategory inserts a category and returns its id
func (r *CatalogRepository) CreateCategory(ctx context.Context, category *domain.Category) (int64, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, category.Name).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.InfoContext(ctx, "category created", slog.Int64("id", category.ID))
	return category.ID, nil
}

// GetCategory fetches a category by id, returning (nil, nil) when absent
func (r *CatalogRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE id = $1`

	var category domain.Category
	err := r.db.QueryRow(ctx, query, id).
		Scan(&category.ID, &category.Name, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}

// ListCategories returns all categories ordered by name
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM categories
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.Category, error) {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		return &c, nil
	})
}

// UpdateCategory updates a category name
func (r *CatalogRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories
		SET name = $2, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, category.ID, category.Name)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", category.ID, domain.ErrNotFound)
	}

	return nil
}

// DeleteCategory removes a category. Products keep a NULL reference.
func (r *CatalogRepository) DeleteCategory(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}

	r.logger.InfoContext(ctx, "category deleted", slog.Int64("id", id))
	return nil
}

// CreateProduct inserts a product and returns its id
func (r *CatalogRepository) CreateProduct(ctx context.Context, product *domain.Product) (int64, error) {
	query := `
		INSERT INTO products (name, category_id, image_path, selling_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		product.Name, product.CategoryID, product.ImagePath, product.SellingPrice,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.InfoContext(ctx, "product created",
		slog.Int64("id", product.ID),
		slog.String("name", product.Name))
	return product.ID, nil
}

// GetProduct fetches a product with its category name, (nil, nil) when absent
func (r *CatalogRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT p.id, p.name, p.category_id, c.name, p.image_path, p.selling_price,
		       p.created_at, p.updated_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	var product domain.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.CategoryID, &product.CategoryName,
		&product.ImagePath, &product.SellingPrice, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

// ListProducts returns all products with category names, ordered by name
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT p.id, p.name, p.category_id, c.name, p.image_path, p.selling_price,
		       p.created_at, p.updated_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.Product, error) {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.CategoryID, &p.CategoryName,
			&p.ImagePath, &p.SellingPrice, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		return &p, nil
	})
}

// UpdateProduct updates product fields
func (r *CatalogRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, category_id = $3, image_path = $4, selling_price = $5,
		    updated_at = NOW()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		product.ID, product.Name, product.CategoryID, product.ImagePath, product.SellingPrice)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", product.ID, domain.ErrNotFound)
	}

	return nil
}

// DeleteProduct removes a product. Variants cascade at the schema level.
func (r *CatalogRepository) DeleteProduct(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}

	r.logger.InfoContext(ctx, "product deleted", slog.Int64("id", id))
	return nil
}

// CreateVariant inserts a variant with its barcode data
func (r *CatalogRepository) CreateVariant(ctx context.Context, variant *domain.ProductVariant) (int64, error) {
	payload, err := marshalBarcode(variant.Barcode)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO product_variants (product_id, handle, barcode_code, barcode, barcode_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err = r.db.QueryRow(ctx, query,
		variant.ProductID, variant.Handle, variant.BarcodeCode, payload, variant.BarcodePath,
	).Scan(&variant.ID, &variant.CreatedAt, &variant.UpdatedAt)
	if err != nil {
		if conflict := variantConflict(err); conflict != nil {
			return 0, conflict
		}
		return 0, fmt.Errorf("failed to create variant: %w", err)
	}

	r.logger.InfoContext(ctx, "variant created",
		slog.Int64("id", variant.ID),
		slog.String("handle", variant.Handle))
	return variant.ID, nil
}

// GetVariant fetches a variant by id, (nil, nil) when absent
func (r *CatalogRepository) GetVariant(ctx context.Context, id int64) (*domain.ProductVariant, error) {
	query := variantSelect + ` WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	variant, err := scanVariantRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get variant: %w", err)
	}

	return variant, nil
}

// ListVariants returns a product's variants ordered by handle
func (r *CatalogRepository) ListVariants(ctx context.Context, productID int64) ([]domain.ProductVariant, error) {
	query := variantSelect + ` WHERE product_id = $1 ORDER BY handle`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}

	return ScanMany(rows, scanVariantRows)
}

// UpdateVariant updates a variant's handle and barcode data
func (r *CatalogRepository) UpdateVariant(ctx context.Context, variant *domain.ProductVariant) error {
	payload, err := marshalBarcode(variant.Barcode)
	if err != nil {
		return err
	}

	query := `
		UPDATE product_variants
		SET handle = $2, barcode_code = $3, barcode = $4, barcode_path = $5,
		    updated_at = NOW()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		variant.ID, variant.Handle, variant.BarcodeCode, payload, variant.BarcodePath)
	if err != nil {
		if conflict := variantConflict(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to update variant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("variant %d: %w", variant.ID, domain.ErrNotFound)
	}

	return nil
}

// DeleteVariant removes a variant
func (r *CatalogRepository) DeleteVariant(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM product_variants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete variant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("variant %d: %w", id, domain.ErrNotFound)
	}

	r.logger.InfoContext(ctx, "variant deleted", slog.Int64("id", id))
	return nil
}

// FindVariantByBarcode resolves a scanned value against barcode_code
// first, falling back to the stored image path for older records.
func (r *CatalogRepository) FindVariantByBarcode(ctx context.Context, code string) (*domain.ProductVariant, error) {
	row := r.db.QueryRow(ctx, variantSelect+` WHERE barcode_code = $1`, code)
	variant, err := scanVariantRow(row)
	if err == nil {
		return variant, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to find variant by barcode: %w", err)
	}

	row = r.db.QueryRow(ctx, variantSelect+` WHERE barcode_path = $1`, code)
	variant, err = scanVariantRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find variant by barcode path: %w", err)
	}

	return variant, nil
}

const variantSelect = `
	SELECT id, product_id, handle, barcode_code, barcode, barcode_path,
	       created_at, updated_at
	FROM product_variants`

func marshalBarcode(payload *domain.BarcodePayload) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal barcode payload: %w", err)
	}
	return data, nil
}

// variantConflict maps unique violations on variant writes to domain
// validation errors. barcode_code and (product_id, handle) each carry a
// unique index; anything else stays a storage error.
func variantConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	if pgErr.ConstraintName == "idx_variants_barcode_code" {
		return domain.NewValidationError("barcode_code", "already in use by another variant")
	}
	return domain.NewValidationError("handle", "already exists for this product")
}

func scanVariantFields(scan func(dest ...interface{}) error) (*domain.ProductVariant, error) {
	var (
		v       domain.ProductVariant
		payload []byte
	)
	if err := scan(
		&v.ID, &v.ProductID, &v.Handle, &v.BarcodeCode, &payload, &v.BarcodePath,
		&v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(payload) > 0 {
		var barcode domain.BarcodePayload
		if err := json.Unmarshal(payload, &barcode); err != nil {
			return nil, fmt.Errorf("failed to unmarshal barcode payload: %w", err)
		}
		v.Barcode = &barcode
	}
	return &v, nil
}

func scanVariantRow(row pgx.Row) (*domain.ProductVariant, error) {
	return scanVariantFields(row.Scan)
}

func scanVariantRows(rows pgx.Rows) (*domain.ProductVariant, error) {
	v, err := scanVariantFields(rows.Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to scan variant: %w", err)
	}
	return v, nil
}
