// internal/core/domain/catalog.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products. Deleting a category never deletes its
// products; they keep a nullable reference.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs domain validation on the category.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "is required")
	}
	return nil
}

// Product is catalog master data. SellingPrice is the default display
// price; movement lines record their own price per transaction.
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	CategoryName *string         `json:"category_name,omitempty"`
	ImagePath    *string         `json:"image_path,omitempty"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// unsafePathChars are rejected in names that end up in barcode file paths.
const unsafePathChars = `/\?%*:|"<>.,;=`

func containsUnsafePath(s string) bool {
	return strings.ContainsAny(s, unsafePathChars)
}

// Validate performs domain validation on the product.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "is required")
	}
	if containsUnsafePath(p.Name) {
		return NewValidationError("name", "contains characters not allowed in file paths")
	}
	if p.SellingPrice.IsNegative() {
		return NewValidationError("selling_price", "cannot be negative")
	}
	return nil
}

// BarcodePayload is the raw encodable barcode data stored alongside a
// variant: bar heights, module width and the encoded bit sequence.
type BarcodePayload struct {
	Height   int   `json:"height"`
	XDim     int   `json:"xdim"`
	Encoding []int `json:"encoding"`
}

// ProductVariant is the actual stock-keeping unit. All movements
// reference a variant, never a bare product.
type ProductVariant struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	Handle      string          `json:"handle"`
	BarcodeCode *string         `json:"barcode_code,omitempty"`
	Barcode     *BarcodePayload `json:"barcode,omitempty"`
	BarcodePath *string         `json:"barcode_path,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the variant. The handle must be
// a single token because it becomes both a barcode component and a
// directory name.
func (v *ProductVariant) Validate() error {
	if v.ProductID <= 0 {
		return NewValidationError("product_id", "is required")
	}
	if strings.TrimSpace(v.Handle) == "" {
		return NewValidationError("handle", "is required")
	}
	if strings.ContainsAny(v.Handle, " \t\n") {
		return NewValidationError("handle", "must not contain whitespace")
	}
	if containsUnsafePath(v.Handle) {
		return NewValidationError("handle", "contains characters not allowed in file paths")
	}
	return nil
}

// ProductWithStock pairs a product with its variants and their on-hand
// quantities for the detail view.
type ProductWithStock struct {
	Product  Product            `json:"product"`
	Variants []VariantWithStock `json:"variants"`
}

// VariantWithStock annotates a variant with its current stock quantity.
// Quantity is zero when the variant has no stock row yet.
type VariantWithStock struct {
	ProductVariant
	Stock int `json:"stock"`
}
