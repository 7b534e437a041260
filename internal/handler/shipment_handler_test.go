package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hifi-imports/import-cost-api/internal/database"
	"github.com/hifi-imports/import-cost-api/internal/landedcost"
	"github.com/hifi-imports/import-cost-api/internal/middleware"
	"github.com/hifi-imports/import-cost-api/internal/model"
	"github.com/hifi-imports/import-cost-api/internal/repository"
	"github.com/hifi-imports/import-cost-api/internal/service"
)

func setupShipmentRouter(t *testing.T) *gin.Engine {
	t.Helper()
	pool := getTestPool(t)
	if pool == nil {
		t.Skip("no database available")
	}

	dbURL := getTestDBURL()
	database.MigrationsDir = "file://../../migrations"
	t.Cleanup(func() { database.MigrationsDir = "file://migrations" })
	_ = database.RollbackMigrations(dbURL)
	require.NoError(t, database.RunMigrations(dbURL))

	supplierRepo := repository.NewSupplierRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	shipmentRepo := repository.NewShipmentRepository(pool)

	catalogService := service.NewCatalogService(supplierRepo, productRepo)
	shipmentService := service.NewShipmentService(shipmentRepo, supplierRepo, productRepo)
	costingService := service.NewCostingService(shipmentService, shipmentRepo)

	supplierHandler := NewSupplierHandler(catalogService)
	productHandler := NewProductHandler(catalogService)
	shipmentHandler := NewShipmentHandler(shipmentService)
	costingHandler := NewCostingHandler(costingService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	api := router.Group("/api/v1")
	api.POST("/suppliers", supplierHandler.Create)
	api.POST("/products", productHandler.Create)
	api.POST("/shipments", shipmentHandler.Create)
	api.GET("/shipments/:id", shipmentHandler.Get)
	api.POST("/shipments/:id/items", shipmentHandler.AddItem)
	api.POST("/shipments/:id/items/import", shipmentHandler.ImportItems)
	api.POST("/shipments/:id/cost-lines", shipmentHandler.AddCostLine)
	api.PUT("/shipments/:id/rates", shipmentHandler.UpdateRates)
	api.PUT("/shipments/:id/certificate", shipmentHandler.UpdateCertificate)
	api.GET("/shipments/:id/costing", costingHandler.GetCosting)
	api.POST("/shipments/:id/costing/save", costingHandler.SaveCosting)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestShipmentHandler_FullFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	router := setupShipmentRouter(t)

	// Supplier
	w := doJSON(t, router, "POST", "/api/v1/suppliers",
		`{"name": "Flow Audio Ltd", "country": "China", "currency": "USD"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var supplier model.Supplier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &supplier))

	// Product
	w = doJSON(t, router, "POST", "/api/v1/products", fmt.Sprintf(
		`{"sku": "FLOW-AMP", "name": "Flow Amplifier", "supplier_id": "%s", "price_fob": 100, "currency": "USD"}`,
		supplier.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var product model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))

	// Shipment
	w = doJSON(t, router, "POST", "/api/v1/shipments", fmt.Sprintf(
		`{"supplier_id": "%s", "reference": "FLOW-001", "transport_method": "MARITIME"}`,
		supplier.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var shipment model.Shipment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shipment))
	assert.Equal(t, "DRAFT", shipment.Status)

	t.Run("bad: duplicate reference", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/shipments", fmt.Sprintf(
			`{"supplier_id": "%s", "reference": "FLOW-001", "transport_method": "AIR"}`,
			supplier.ID))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: unknown supplier", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/shipments",
			`{"supplier_id": "00000000-0000-0000-0000-000000000000", "reference": "FLOW-002", "transport_method": "AIR"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	// Item, price taken from the request
	w = doJSON(t, router, "POST", "/api/v1/shipments/"+shipment.ID+"/items", fmt.Sprintf(
		`{"product_id": "%s", "quantity": 10, "unit_price_fob": 100}`, product.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Freight line and the customs rate
	w = doJSON(t, router, "POST", "/api/v1/shipments/"+shipment.ID+"/cost-lines",
		`{"description": "Flete marítimo", "amount": 100, "currency": "USD"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, "PUT", "/api/v1/shipments/"+shipment.ID+"/rates",
		`{"customs_rate_usd": 900}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	t.Run("happy: costing matches the worked example", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/shipments/"+shipment.ID+"/costing", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result landedcost.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

		assert.InDelta(t, 1100.0, result.Summary.TotalCIFUSD, 1e-6)
		assert.InDelta(t, 990000.0, result.Summary.TotalCIFCLP, 1e-6)
		assert.InDelta(t, 59400.0, result.Summary.TotalAdValorem, 1e-6)
		assert.InDelta(t, 258786.0, result.Summary.TotalTaxes, 1e-6)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "FLOW-AMP", result.Items[0].SKU)
	})

	t.Run("happy: certificate recomputes without duty", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/api/v1/shipments/"+shipment.ID+"/certificate",
			`{"has_certificate_of_origin": true}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(t, router, "GET", "/api/v1/shipments/"+shipment.ID+"/costing", "")
		require.Equal(t, http.StatusOK, w.Code)

		var result landedcost.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Zero(t, result.Summary.TotalAdValorem)
		assert.InDelta(t, 188100.0, result.Summary.TotalVAT, 1e-6)
	})

	t.Run("happy: save writes unit costs back to the product", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/shipments/"+shipment.ID+"/costing/save", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Updated int `json:"updated"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Updated)

		w = doJSON(t, router, "GET", "/api/v1/shipments/"+shipment.ID, "")
		require.Equal(t, http.StatusOK, w.Code)

		var agg model.ShipmentAggregate
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &agg))
		require.Len(t, agg.Items, 1)
		require.NotNil(t, agg.Items[0].UnitCostCLP)
		assert.Greater(t, *agg.Items[0].UnitCostCLP, 0.0)
	})

	t.Run("happy: bulk import creates unknown products", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/shipments/"+shipment.ID+"/items/import",
			`{"items": [
				{"sku": "FLOW-AMP", "quantity": 5, "price": 95},
				{"sku": "FLOW-NEW", "name": "Flow Tweeter", "quantity": 20, "price": 12.5}
			]}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			Added  int      `json:"added"`
			Errors []string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Added)
		assert.Empty(t, resp.Errors)

		w = doJSON(t, router, "GET", "/api/v1/shipments/"+shipment.ID, "")
		require.Equal(t, http.StatusOK, w.Code)

		var agg model.ShipmentAggregate
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &agg))
		require.Len(t, agg.Items, 3)

		bySKU := make(map[string]model.ShipmentItem, len(agg.Items))
		for _, item := range agg.Items {
			bySKU[item.SKU] = item
		}
		require.Contains(t, bySKU, "FLOW-NEW")
		assert.Equal(t, "Flow Tweeter", bySKU["FLOW-NEW"].ProductName)
		assert.Equal(t, 20, bySKU["FLOW-NEW"].Quantity)
		assert.Equal(t, 12.5, bySKU["FLOW-NEW"].UnitPriceFOB)
		assert.NotEmpty(t, bySKU["FLOW-NEW"].ID)
	})

	t.Run("bad: costing for unknown shipment", func(t *testing.T) {
		w := doJSON(t, router, "GET",
			"/api/v1/shipments/00000000-0000-0000-0000-000000000000/costing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
