package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hifi-imports/import-cost-api/internal/landedcost"
	"github.com/hifi-imports/import-cost-api/internal/model"
)

func fptr(v float64) *float64 { return &v }

func TestEngineInput_Mapping(t *testing.T) {
	agg := &model.ShipmentAggregate{
		Shipment: model.Shipment{
			ID:              "sh-1",
			Reference:       "IMP-2024-900",
			SourceCurrency:  "EUR",
			HasOriginCert:   true,
			CustomsRateUSD:  fptr(950),
			CustomsRateEUR:  fptr(1000),
			PurchaseRateEUR: fptr(1010),
			CrossEURToUSD:   fptr(1.05),
			CreatedAt:       time.Now(),
		},
		Items: []model.ShipmentItem{
			{ID: "it-1", SKU: "TT-200", ProductName: "Turntable", Quantity: 4, UnitPriceFOB: 210},
			{ID: "it-2", SKU: "CART-OM10", ProductName: "Cartridge", Quantity: 10, UnitPriceFOB: 38},
		},
		CostLines: []model.CostLine{
			{ID: "cl-1", Description: "Flete aéreo", Amount: 950, Currency: "EUR", Category: "Freight"},
			{ID: "cl-2", Description: "Bodegaje", Amount: 120000, Currency: "CLP", Role: "LOCAL"},
		},
	}

	in := engineInput(agg)

	require.Len(t, in.Items, 2)
	assert.Equal(t, "it-1", in.Items[0].ID)
	assert.Equal(t, "TT-200", in.Items[0].SKU)
	assert.Equal(t, 4, in.Items[0].Quantity)
	assert.Equal(t, 210.0, in.Items[0].UnitPriceFOB)

	require.Len(t, in.CostLines, 2)
	assert.Equal(t, landedcost.EUR, in.CostLines[0].Currency)
	assert.Equal(t, landedcost.RoleAuto, in.CostLines[0].Role)
	assert.Equal(t, landedcost.RoleLocal, in.CostLines[1].Role)

	assert.Equal(t, landedcost.EUR, in.SourceCurrency)
	assert.True(t, in.HasCertificateOfOrigin)
	require.NotNil(t, in.Rates.CustomsEUR)
	assert.Equal(t, 1000.0, *in.Rates.CustomsEUR)
	require.NotNil(t, in.Rates.CrossEURToUSD)
	assert.Equal(t, 1.05, *in.Rates.CrossEURToUSD)
	assert.Nil(t, in.Rates.PurchaseUSD)

	// Mapped input must run through the engine cleanly.
	result, err := landedcost.Calculate(in)
	require.NoError(t, err)
	assert.Zero(t, result.Summary.TotalAdValorem)
	assert.Len(t, result.Items, 2)
}

func TestEngineInput_EmptyAggregate(t *testing.T) {
	in := engineInput(&model.ShipmentAggregate{
		Shipment: model.Shipment{SourceCurrency: "USD"},
	})

	assert.Empty(t, in.Items)
	assert.Empty(t, in.CostLines)

	result, err := landedcost.Calculate(in)
	require.NoError(t, err)
	assert.Zero(t, result.Summary.TotalCostCLP)
	assert.False(t, result.Summary.RatesIncomplete)
}
