package service

import (
	"context"

	"github.com/hifi-imports/import-cost-api/internal/dto"
	"github.com/hifi-imports/import-cost-api/internal/landedcost"
	"github.com/hifi-imports/import-cost-api/internal/model"
	"github.com/hifi-imports/import-cost-api/internal/repository"
)

// CostingService runs the landed-cost engine over stored shipments.
type CostingService struct {
	shipments *ShipmentService
	repo      *repository.ShipmentRepository
}

func NewCostingService(shipments *ShipmentService, repo *repository.ShipmentRepository) *CostingService {
	return &CostingService{shipments: shipments, repo: repo}
}

// engineInput maps a stored shipment aggregate onto the engine contract.
func engineInput(agg *model.ShipmentAggregate) landedcost.Input {
	items := make([]landedcost.Item, len(agg.Items))
	for i, it := range agg.Items {
		items[i] = landedcost.Item{
			ID:           it.ID,
			SKU:          it.SKU,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			UnitPriceFOB: it.UnitPriceFOB,
		}
	}

	lines := make([]landedcost.CostLine, len(agg.CostLines))
	for i, cl := range agg.CostLines {
		lines[i] = landedcost.CostLine{
			ID:          cl.ID,
			Description: cl.Description,
			Amount:      cl.Amount,
			Currency:    landedcost.Currency(cl.Currency),
			Category:    cl.Category,
			Role:        landedcost.CostLineRole(cl.Role),
		}
	}

	sh := agg.Shipment
	return landedcost.Input{
		Items:     items,
		CostLines: lines,
		Rates: landedcost.RateSet{
			CustomsUSD:    sh.CustomsRateUSD,
			CustomsEUR:    sh.CustomsRateEUR,
			CustomsGBP:    sh.CustomsRateGBP,
			PurchaseUSD:   sh.PurchaseRateUSD,
			PurchaseEUR:   sh.PurchaseRateEUR,
			PurchaseGBP:   sh.PurchaseRateGBP,
			CrossEURToUSD: sh.CrossEURToUSD,
			CrossGBPToUSD: sh.CrossGBPToUSD,
		},
		HasCertificateOfOrigin: sh.HasOriginCert,
		SourceCurrency:         landedcost.Currency(sh.SourceCurrency),
	}
}

// Calculate loads the shipment and produces the full landed-cost
// breakdown without persisting anything.
func (s *CostingService) Calculate(ctx context.Context, shipmentID string) (*landedcost.Result, error) {
	agg, err := s.shipments.Get(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	return landedcost.Calculate(engineInput(agg))
}

// CalculateAndSave computes the breakdown and writes the resulting unit
// costs back to the shipment items and the product catalog.
func (s *CostingService) CalculateAndSave(ctx context.Context, shipmentID string) (*landedcost.Result, *dto.SaveCostsResponse, error) {
	result, err := s.Calculate(ctx, shipmentID)
	if err != nil {
		return nil, nil, err
	}

	costs := make(map[string]float64, len(result.Items))
	for _, item := range result.Items {
		costs[item.ID] = item.UnitCostCLP
	}

	updated, err := s.repo.SaveItemUnitCosts(ctx, shipmentID, costs)
	if err != nil {
		return nil, nil, err
	}

	return result, &dto.SaveCostsResponse{Updated: updated}, nil
}
