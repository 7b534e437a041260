package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hifi-imports/import-cost-api/internal/dto"
	"github.com/hifi-imports/import-cost-api/internal/landedcost"
)

func TestSimulationService_Run(t *testing.T) {
	svc := NewSimulationService()

	t.Run("happy: worked example", func(t *testing.T) {
		req := &dto.SimulationRequest{
			Items: []dto.SimulationItem{
				{SKU: "AMP-100", Quantity: 10, UnitPriceFOB: 100},
			},
			CostLines: []dto.SimulationCostLine{
				{Description: "Flete", Amount: 100, Currency: "USD"},
			},
			Rates: dto.SimulationRates{USD: 900},
		}

		result, err := svc.Run(req)
		require.NoError(t, err)

		assert.InDelta(t, 1100.0, result.Summary.TotalCIFUSD, 1e-6)
		assert.InDelta(t, 258786.0, result.Summary.TotalTaxes, 1e-6)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "AMP-100", result.Items[0].SKU)
	})

	t.Run("happy: lane rates override legacy triple", func(t *testing.T) {
		req := &dto.SimulationRequest{
			Items: []dto.SimulationItem{{SKU: "X", Quantity: 2, UnitPriceFOB: 50}},
			Rates: dto.SimulationRates{
				USD:         800,
				CustomsUSD:  fptr(900),
				PurchaseUSD: fptr(925),
			},
		}

		result, err := svc.Run(req)
		require.NoError(t, err)
		// 100 USD FOB at the 900 customs lane.
		assert.InDelta(t, 90000.0, result.Summary.TotalCIFCLP, 1e-6)
	})

	t.Run("bad: validation surfaces as typed error", func(t *testing.T) {
		req := &dto.SimulationRequest{
			Items:          []dto.SimulationItem{{SKU: "X", Quantity: 1, UnitPriceFOB: 10}},
			Rates:          dto.SimulationRates{USD: 900},
			SourceCurrency: "JPY",
		}

		_, err := svc.Run(req)
		var calcErr *landedcost.ValidationError
		require.ErrorAs(t, err, &calcErr)
		assert.Equal(t, "source_currency", calcErr.Field)
	})
}
