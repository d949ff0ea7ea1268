// internal/core/ports/catalog.go
package ports

import (
	"context"

	"github.com/ammerola/shopstock-be/internal/core/domain"
)

// CatalogRepository persists categories, products and variants.
// Lookups return (nil, nil) when the row does not exist.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *domain.Category) (int64, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, product *domain.Product) (int64, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error

	CreateVariant(ctx context.Context, variant *domain.ProductVariant) (int64, error)
	GetVariant(ctx context.Context, id int64) (*domain.ProductVariant, error)
	ListVariants(ctx context.Context, productID int64) ([]domain.ProductVariant, error)
	UpdateVariant(ctx context.Context, variant *domain.ProductVariant) error
	DeleteVariant(ctx context.Context, id int64) error

	FindVariantByBarcode(ctx context.Context, code string) (*domain.ProductVariant, error)
}

// CatalogService exposes catalog operations to the presentation layer.
type CatalogService interface {
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetProductWithStock(ctx context.Context, id int64) (*domain.ProductWithStock, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreateVariant(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error)
	GetVariant(ctx context.Context, id int64) (*domain.ProductVariant, error)
	GetVariantWithHistory(ctx context.Context, id int64) (*domain.VariantWithHistory, error)
	ListVariants(ctx context.Context, productID int64) ([]domain.ProductVariant, error)
	UpdateVariant(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error)
	DeleteVariant(ctx context.Context, id int64) error

	FindVariantByBarcode(ctx context.Context, code string) (*domain.ProductVariant, error)
}
