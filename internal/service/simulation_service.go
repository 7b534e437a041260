package service

import (
	"github.com/hifi-imports/import-cost-api/internal/dto"
	"github.com/hifi-imports/import-cost-api/internal/landedcost"
)

// SimulationService runs the engine over an inline payload, the what-if
// path: no shipment record needed, nothing stored.
type SimulationService struct{}

func NewSimulationService() *SimulationService {
	return &SimulationService{}
}

func (s *SimulationService) Run(req *dto.SimulationRequest) (*landedcost.Result, error) {
	items := make([]landedcost.Item, len(req.Items))
	for i, it := range req.Items {
		items[i] = landedcost.Item{
			SKU:          it.SKU,
			ProductName:  it.Name,
			Quantity:     it.Quantity,
			UnitPriceFOB: it.UnitPriceFOB,
		}
	}

	lines := make([]landedcost.CostLine, len(req.CostLines))
	for i, cl := range req.CostLines {
		lines[i] = landedcost.CostLine{
			Description: cl.Description,
			Amount:      cl.Amount,
			Currency:    landedcost.Currency(cl.Currency),
			Category:    cl.Category,
			Role:        landedcost.CostLineRole(cl.Role),
		}
	}

	return landedcost.Calculate(landedcost.Input{
		Items:     items,
		CostLines: lines,
		Rates: landedcost.RateSet{
			USD:           req.Rates.USD,
			EUR:           req.Rates.EUR,
			GBP:           req.Rates.GBP,
			CustomsUSD:    req.Rates.CustomsUSD,
			CustomsEUR:    req.Rates.CustomsEUR,
			CustomsGBP:    req.Rates.CustomsGBP,
			PurchaseUSD:   req.Rates.PurchaseUSD,
			PurchaseEUR:   req.Rates.PurchaseEUR,
			PurchaseGBP:   req.Rates.PurchaseGBP,
			CrossEURToUSD: req.Rates.CrossEURToUSD,
			CrossGBPToUSD: req.Rates.CrossGBPToUSD,
		},
		HasCertificateOfOrigin: req.HasCertificateOfOrigin,
		SourceCurrency:         landedcost.Currency(req.SourceCurrency),
	})
}
