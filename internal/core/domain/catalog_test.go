// internal/core/domain/catalog_test.go
package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategory_Validate(t *testing.T) {
	valid := Category{Name: "Electronics"}
	assert.NoError(t, valid.Validate())

	empty := Category{Name: "   "}
	assert.Error(t, empty.Validate())
}

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		wantErr string
	}{
		{
			name:    "valid product",
			product: Product{Name: "Vintage Lamp", SellingPrice: decimal.NewFromFloat(45.00)},
		},
		{
			name:    "empty name",
			product: Product{Name: "", SellingPrice: decimal.NewFromInt(1)},
			wantErr: "name",
		},
		{
			name:    "unsafe path characters",
			product: Product{Name: "Lamp/Shade", SellingPrice: decimal.NewFromInt(1)},
			wantErr: "name",
		},
		{
			name:    "negative price",
			product: Product{Name: "Lamp", SellingPrice: decimal.NewFromInt(-1)},
			wantErr: "selling_price",
		},
		{
			name:    "zero price allowed",
			product: Product{Name: "Freebie", SellingPrice: decimal.Zero},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductVariant_Validate(t *testing.T) {
	tests := []struct {
		name    string
		variant ProductVariant
		wantErr bool
	}{
		{
			name:    "valid variant",
			variant: ProductVariant{ProductID: 1, Handle: "red-large"},
		},
		{
			name:    "missing product",
			variant: ProductVariant{Handle: "red-large"},
			wantErr: true,
		},
		{
			name:    "empty handle",
			variant: ProductVariant{ProductID: 1, Handle: ""},
			wantErr: true,
		},
		{
			name:    "whitespace in handle",
			variant: ProductVariant{ProductID: 1, Handle: "red large"},
			wantErr: true,
		},
		{
			name:    "unsafe character in handle",
			variant: ProductVariant{ProductID: 1, Handle: "red:large"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.variant.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
