package landedcost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRates(t *testing.T) {
	t.Run("lane beats legacy", func(t *testing.T) {
		r := resolveRates(RateSet{USD: 900, CustomsUSD: f(920)})
		assert.Equal(t, 920.0, r.customsUSD)
		assert.False(t, r.customsDefaulted[USD])
	})

	t.Run("legacy fills both lanes", func(t *testing.T) {
		r := resolveRates(RateSet{USD: 900, EUR: 1000})
		assert.Equal(t, 900.0, r.customsUSD)
		assert.Equal(t, 900.0, r.purchaseUSD)
		assert.Equal(t, 1000.0, r.customsEUR)
	})

	t.Run("missing lane defaults to identity", func(t *testing.T) {
		r := resolveRates(RateSet{})
		assert.Equal(t, 1.0, r.customsUSD)
		assert.True(t, r.customsDefaulted[USD])
	})

	t.Run("explicit zero lane treated as unusable", func(t *testing.T) {
		r := resolveRates(RateSet{CustomsUSD: f(0)})
		assert.Equal(t, 1.0, r.customsUSD)
		assert.True(t, r.customsDefaulted[USD])
	})

	t.Run("purchase falls back to customs", func(t *testing.T) {
		r := resolveRates(RateSet{CustomsEUR: f(1020)})
		assert.Equal(t, 1020.0, r.purchaseEUR)
		assert.False(t, r.purchaseDefaulted[EUR])
	})

	t.Run("cross derived from customs lanes", func(t *testing.T) {
		r := resolveRates(RateSet{CustomsEUR: f(1000), CustomsUSD: f(950)})
		assert.InDelta(t, 1000.0/950.0, r.crossEURToUSD, 1e-12)
		assert.False(t, r.crossDefaulted[EUR])
	})

	t.Run("explicit cross wins", func(t *testing.T) {
		r := resolveRates(RateSet{CustomsEUR: f(1000), CustomsUSD: f(950), CrossEURToUSD: f(1.08)})
		assert.Equal(t, 1.08, r.crossEURToUSD)
	})

	t.Run("derived cross from defaulted lane remembered", func(t *testing.T) {
		r := resolveRates(RateSet{CustomsUSD: f(950)})
		assert.True(t, r.crossDefaulted[EUR])
		assert.True(t, r.crossDefaulted[GBP])
	})
}

func TestConversionRoundTrip(t *testing.T) {
	rs := RateSet{
		CustomsUSD: f(930), CustomsEUR: f(1010), CustomsGBP: f(1180),
		PurchaseUSD: f(945), PurchaseEUR: f(1025), PurchaseGBP: f(1195),
	}

	for _, c := range []Currency{USD, EUR, GBP, CLP} {
		t.Run(string(c), func(t *testing.T) {
			r := resolveRates(rs)
			amount := 1234.56

			usd := r.toUSDForCustoms(amount, c)

			var back float64
			switch c {
			case USD:
				back = usd
			case EUR:
				back = usd / r.crossEURToUSD
			case GBP:
				back = usd / r.crossGBPToUSD
			case CLP:
				back = usd * r.customsUSD
			}

			assert.InDelta(t, amount, back, 1e-6*amount)
		})
	}
}

func TestConversionUnknownCurrencyIsZero(t *testing.T) {
	r := resolveRates(RateSet{USD: 900})
	assert.Zero(t, r.toUSDForCustoms(100, "JPY"))
	assert.Zero(t, r.toCLPReal(100, "JPY"))
}
