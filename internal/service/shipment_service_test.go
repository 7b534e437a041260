package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hifi-imports/import-cost-api/internal/model"
)

func TestNewItem(t *testing.T) {
	product := &model.Product{
		ID:       "prod-1",
		SKU:      "AMP-200",
		Name:     "Stereo Amplifier",
		PriceFOB: 120,
		Currency: "USD",
	}

	t.Run("happy: carries product fields onto the item", func(t *testing.T) {
		item := newItem("ship-1", product, 10, 95)

		assert.Equal(t, "ship-1", item.ShipmentID)
		assert.Equal(t, "prod-1", item.ProductID)
		assert.Equal(t, "AMP-200", item.SKU)
		assert.Equal(t, "Stereo Amplifier", item.ProductName)
		assert.Equal(t, 10, item.Quantity)
		assert.Equal(t, 95.0, item.UnitPriceFOB)
	})

	t.Run("happy: zero price falls back to catalog FOB", func(t *testing.T) {
		item := newItem("ship-1", product, 3, 0)

		assert.Equal(t, 120.0, item.UnitPriceFOB)
	})
}
