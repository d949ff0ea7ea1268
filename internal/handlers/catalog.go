// internal/handlers/catalog.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ammerola/shopstock-be/internal/core/domain"
	"github.com/ammerola/shopstock-be/internal/core/ports"
)

// CatalogHandler serves category, product and variant endpoints
type CatalogHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service ports.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "catalog")),
	}
}

type categoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory handles POST /api/v1/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &domain.Category{Name: req.Name})
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, category)
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// GetCategory handles GET /api/v1/categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// UpdateCategory handles PUT /api/v1/categories/{id}
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), &domain.Category{ID: id, Name: req.Name})
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type productRequest struct {
	Name         string          `json:"name"`
	CategoryID   *int64          `json:"category_id"`
	ImagePath    *string         `json:"image_path"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

func (req *productRequest) toDomain(id int64) *domain.Product {
	return &domain.Product{
		ID:           id,
		Name:         req.Name,
		CategoryID:   req.CategoryID,
		ImagePath:    req.ImagePath,
		SellingPrice: req.SellingPrice,
	}
}

// CreateProduct handles POST /api/v1/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), req.toDomain(0))
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// GetProductWithStock handles GET /api/v1/products/{id}/stock
func (h *CatalogHandler) GetProductWithStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	result, err := h.service.GetProductWithStock(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// UpdateProduct handles PUT /api/v1/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), req.toDomain(id))
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type variantRequest struct {
	Handle string `json:"handle"`
}

// CreateVariant handles POST /api/v1/products/{id}/variants
func (h *CatalogHandler) CreateVariant(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	var req variantRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	variant, err := h.service.CreateVariant(r.Context(), &domain.ProductVariant{
		ProductID: productID,
		Handle:    req.Handle,
	})
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, variant)
}

// ListVariants handles GET /api/v1/products/{id}/variants
func (h *CatalogHandler) ListVariants(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	variants, err := h.service.ListVariants(r.Context(), productID)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, variants)
}

// GetVariant handles GET /api/v1/variants/{id}
func (h *CatalogHandler) GetVariant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	variant, err := h.service.GetVariant(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, variant)
}

// GetVariantHistory handles GET /api/v1/variants/{id}/history
func (h *CatalogHandler) GetVariantHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	result, err := h.service.GetVariantWithHistory(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// UpdateVariant handles PUT /api/v1/variants/{id}
func (h *CatalogHandler) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	var req variantRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	variant, err := h.service.UpdateVariant(r.Context(), &domain.ProductVariant{
		ID:     id,
		Handle: req.Handle,
	})
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, variant)
}

// DeleteVariant handles DELETE /api/v1/variants/{id}
func (h *CatalogHandler) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}

	if err := h.service.DeleteVariant(r.Context(), id); err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// LookupBarcode handles GET /api/v1/barcodes/{code}
func (h *CatalogHandler) LookupBarcode(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	variant, err := h.service.FindVariantByBarcode(r.Context(), code)
	if err != nil {
		respondError(w, h.logger, r, err)
		return
	}
	respondJSON(w, http.StatusOK, variant)
}
