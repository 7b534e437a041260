package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hifi-imports/import-cost-api/internal/landedcost"
	"github.com/hifi-imports/import-cost-api/internal/middleware"
	"github.com/hifi-imports/import-cost-api/internal/service"
)

// Simulations never touch the database, so these run without one.
func setupSimulationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	h := NewSimulationHandler(service.NewSimulationService())
	router.POST("/api/v1/simulations", h.Run)
	return router
}

func postSimulation(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/api/v1/simulations", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSimulationHandler_Run(t *testing.T) {
	router := setupSimulationRouter()

	t.Run("happy: single USD item", func(t *testing.T) {
		body := `{
			"items": [{"sku": "AMP-100", "quantity": 10, "unit_price_fob": 100}],
			"cost_lines": [{"description": "Flete", "amount": 100, "currency": "USD"}],
			"rates": {"usd": 900}
		}`

		w := postSimulation(t, router, body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result landedcost.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

		assert.InDelta(t, 1100.0, result.Summary.TotalCIFUSD, 1e-6)
		assert.InDelta(t, 990000.0, result.Summary.TotalCIFCLP, 1e-6)
		assert.InDelta(t, 59400.0, result.Summary.TotalAdValorem, 1e-6)
		assert.InDelta(t, 1049400.0, result.Summary.TotalCustomsValue, 1e-6)
		assert.InDelta(t, 199386.0, result.Summary.TotalVAT, 1e-6)
		assert.InDelta(t, 258786.0, result.Summary.TotalTaxes, 1e-6)
		require.Len(t, result.Items, 1)
	})

	t.Run("happy: certificate zeroes the duty", func(t *testing.T) {
		body := `{
			"items": [{"sku": "AMP-100", "quantity": 10, "unit_price_fob": 100}],
			"cost_lines": [{"description": "Flete", "amount": 100, "currency": "USD"}],
			"rates": {"usd": 900},
			"has_certificate_of_origin": true
		}`

		w := postSimulation(t, router, body)
		require.Equal(t, http.StatusOK, w.Code)

		var result landedcost.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

		assert.Zero(t, result.Summary.TotalAdValorem)
		assert.InDelta(t, 188100.0, result.Summary.TotalVAT, 1e-6)
		assert.Zero(t, result.Summary.SavingsWithTLC)
	})

	t.Run("happy: empty simulation returns zeroed summary", func(t *testing.T) {
		w := postSimulation(t, router, `{"rates": {"usd": 900}}`)
		require.Equal(t, http.StatusOK, w.Code)

		var result landedcost.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Empty(t, result.Items)
		assert.Zero(t, result.Summary.TotalCostCLP)
	})

	t.Run("happy: missing rates flagged", func(t *testing.T) {
		body := `{
			"items": [{"sku": "X", "quantity": 1, "unit_price_fob": 50}],
			"rates": {}
		}`

		w := postSimulation(t, router, body)
		require.Equal(t, http.StatusOK, w.Code)

		var result landedcost.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Summary.RatesIncomplete)
	})

	t.Run("bad: negative quantity rejected by binding", func(t *testing.T) {
		body := `{
			"items": [{"sku": "X", "quantity": -3, "unit_price_fob": 50}],
			"rates": {"usd": 900}
		}`

		w := postSimulation(t, router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: unknown currency rejected by binding", func(t *testing.T) {
		body := `{
			"items": [{"sku": "X", "quantity": 1, "unit_price_fob": 50}],
			"cost_lines": [{"description": "Flete", "amount": 10, "currency": "JPY"}],
			"rates": {"usd": 900}
		}`

		w := postSimulation(t, router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: malformed JSON", func(t *testing.T) {
		w := postSimulation(t, router, `{"items": [`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
