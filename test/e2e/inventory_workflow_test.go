//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	barcode_a "github.com/ammerola/shopstock-be/internal/adapters/barcode"
	"github.com/ammerola/shopstock-be/internal/adapters/db"
	redis_a "github.com/ammerola/shopstock-be/internal/adapters/redis_adapter"
	"github.com/ammerola/shopstock-be/internal/adapters/storage"
	"github.com/ammerola/shopstock-be/internal/core/services"
	"github.com/ammerola/shopstock-be/internal/handlers"
	"github.com/ammerola/shopstock-be/test/helpers"
)

type InventoryE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *InventoryE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *InventoryE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *InventoryE2ESuite) startTestServer() *httptest.Server {
	t := s.T()
	logger := helpers.TestLogger()

	fileStore, err := storage.NewLocalStore(t.TempDir(), logger)
	s.Require().NoError(err)

	cache := redis_a.NewCache(s.testRedis.Client, logger)
	catalogRepo := db.NewCatalogRepository(s.testDB.Database, logger)
	ledgerRepo := db.NewLedgerRepository(s.testDB.Database, logger)
	barcodeGen := barcode_a.NewGenerator(fileStore, logger)

	catalogService := services.NewCatalogService(catalogRepo, ledgerRepo, barcodeGen, nil, logger)
	inventoryService := services.NewInventoryService(ledgerRepo, catalogRepo, cache, logger)

	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	movementHandler := handlers.NewMovementHandler(inventoryService, logger)
	stockHandler := handlers.NewStockHandler(inventoryService, 3, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/categories", catalogHandler.CreateCategory)
	mux.HandleFunc("POST /api/v1/products", catalogHandler.CreateProduct)
	mux.HandleFunc("POST /api/v1/products/{id}/variants", catalogHandler.CreateVariant)
	mux.HandleFunc("GET /api/v1/variants/{id}/history", catalogHandler.GetVariantHistory)
	mux.HandleFunc("GET /api/v1/barcodes/{code}", catalogHandler.LookupBarcode)
	mux.HandleFunc("POST /api/v1/movements/purchase", movementHandler.RecordPurchase)
	mux.HandleFunc("POST /api/v1/movements/sale", movementHandler.RecordSale)
	mux.HandleFunc("POST /api/v1/movements/return", movementHandler.RecordReturn)
	mux.HandleFunc("GET /api/v1/stock/{id}", stockHandler.GetStockLevel)
	mux.HandleFunc("PUT /api/v1/stock/{id}", stockHandler.SetStockLevel)
	mux.HandleFunc("GET /api/v1/reports/valuation", stockHandler.GetValuation)

	return httptest.NewServer(mux)
}

func (s *InventoryE2ESuite) postJSON(path string, body map[string]interface{}) *http.Response {
	data, err := json.Marshal(body)
	s.Require().NoError(err)

	resp, err := s.client.Post(s.baseURL+path, "application/json", bytes.NewBuffer(data))
	s.Require().NoError(err)
	return resp
}

func (s *InventoryE2ESuite) decode(resp *http.Response, dest interface{}) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(dest))
}

func (s *InventoryE2ESuite) stockQuantity(variantID int64) int {
	resp, err := s.client.Get(fmt.Sprintf("%s/stock/%d", s.baseURL, variantID))
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var level struct {
		Quantity int `json:"quantity"`
	}
	s.decode(resp, &level)
	return level.Quantity
}

func (s *InventoryE2ESuite) TestCompleteInventoryWorkflow() {
	// 1. Build the catalog: category, product, variant
	resp := s.postJSON("/categories", map[string]interface{}{"name": "Apparel"})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var category struct {
		ID int64 `json:"id"`
	}
	s.decode(resp, &category)

	resp = s.postJSON("/products", map[string]interface{}{
		"name":          "Classic Tee",
		"category_id":   category.ID,
		"selling_price": "19.99",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var product struct {
		ID int64 `json:"id"`
	}
	s.decode(resp, &product)

	resp = s.postJSON(fmt.Sprintf("/products/%d/variants", product.ID), map[string]interface{}{
		"handle": "M-black",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var variant struct {
		ID          int64   `json:"id"`
		BarcodeCode *string `json:"barcode_code"`
	}
	s.decode(resp, &variant)
	s.Require().NotNil(variant.BarcodeCode)
	s.Equal("CLASSICTEE-M-BLACK", *variant.BarcodeCode)

	item := func(quantity int, price string) map[string]interface{} {
		return map[string]interface{}{
			"product_variant_id": variant.ID,
			"quantity":           quantity,
			"price_per_unit":     price,
		}
	}

	// 2. Purchase 10 units
	resp = s.postJSON("/movements/purchase", map[string]interface{}{
		"items": []map[string]interface{}{item(10, "8.00")},
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	s.Equal(10, s.stockQuantity(variant.ID))

	// 3. Sell 3
	resp = s.postJSON("/movements/sale", map[string]interface{}{
		"items": []map[string]interface{}{item(3, "19.99")},
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	s.Equal(7, s.stockQuantity(variant.ID))

	// 4. Overselling is refused and leaves stock untouched
	resp = s.postJSON("/movements/sale", map[string]interface{}{
		"items": []map[string]interface{}{item(100, "19.99")},
	})
	s.Require().Equal(http.StatusConflict, resp.StatusCode)

	var conflict struct {
		Error   string `json:"error"`
		Details []struct {
			Available int `json:"available"`
		} `json:"details"`
	}
	s.decode(resp, &conflict)
	s.Equal("insufficient stock", conflict.Error)
	s.Require().Len(conflict.Details, 1)
	s.Equal(7, conflict.Details[0].Available)
	s.Equal(7, s.stockQuantity(variant.ID))

	// 5. One unit comes back
	resp = s.postJSON("/movements/return", map[string]interface{}{
		"items": []map[string]interface{}{item(1, "19.99")},
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	s.Equal(8, s.stockQuantity(variant.ID))

	// 6. The full history is on the ledger, newest first
	histResp, err := s.client.Get(fmt.Sprintf("%s/variants/%d/history", s.baseURL, variant.ID))
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, histResp.StatusCode)

	var withHistory struct {
		Stock   int `json:"stock"`
		History []struct {
			MovementType string `json:"movement_type"`
			Quantity     int    `json:"quantity"`
		} `json:"history"`
	}
	s.decode(histResp, &withHistory)
	s.Equal(8, withHistory.Stock)
	s.Require().Len(withHistory.History, 3)
	s.Equal("RETURN", withHistory.History[0].MovementType)

	// 7. Valuation prices the 8 on-hand units at the current selling price
	valResp, err := s.client.Get(s.baseURL + "/reports/valuation")
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, valResp.StatusCode)

	var report struct {
		VariantCount int    `json:"variant_count"`
		TotalUnits   int    `json:"total_units"`
		TotalValue   string `json:"total_value"`
	}
	s.decode(valResp, &report)
	s.Equal(1, report.VariantCount)
	s.Equal(8, report.TotalUnits)
	s.Equal("159.92", report.TotalValue)

	// 8. A scanned barcode resolves back to the variant
	scanResp, err := s.client.Get(s.baseURL + "/barcodes/CLASSICTEE-M-BLACK")
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, scanResp.StatusCode)

	var scanned struct {
		ID int64 `json:"id"`
	}
	s.decode(scanResp, &scanned)
	s.Equal(variant.ID, scanned.ID)

	// 9. Manual stock correction overwrites the derived quantity
	correction, err := json.Marshal(map[string]interface{}{"quantity": 5})
	s.Require().NoError(err)
	putReq, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/stock/%d", s.baseURL, variant.ID), bytes.NewBuffer(correction))
	s.Require().NoError(err)
	putReq.Header.Set("Content-Type", "application/json")

	putResp, err := s.client.Do(putReq)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, putResp.StatusCode)
	putResp.Body.Close()

	s.Equal(5, s.stockQuantity(variant.ID))
}

func TestInventoryE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e tests in short mode")
	}
	suite.Run(t, new(InventoryE2ESuite))
}
