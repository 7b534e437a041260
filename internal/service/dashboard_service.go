package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hifi-imports/import-cost-api/internal/landedcost"
	"github.com/hifi-imports/import-cost-api/internal/repository"
)

type DashboardService struct {
	shipmentRepo *repository.ShipmentRepository
	supplierRepo *repository.SupplierRepository
	costing      *CostingService
}

func NewDashboardService(shipmentRepo *repository.ShipmentRepository, supplierRepo *repository.SupplierRepository, costing *CostingService) *DashboardService {
	return &DashboardService{shipmentRepo: shipmentRepo, supplierRepo: supplierRepo, costing: costing}
}

type RecentShipment struct {
	ID           string  `json:"id"`
	Reference    string  `json:"reference"`
	SupplierName string  `json:"supplier_name"`
	TotalFOB     float64 `json:"total_fob"`
	Status       string  `json:"status"`
}

type DashboardStats struct {
	TotalShipments  int              `json:"total_shipments"`
	InTransitCount  int              `json:"in_transit_count"`
	TotalCIFUSD     float64          `json:"total_cif_usd"`
	TotalCIFCLP     float64          `json:"total_cif_clp"`
	RecentShipments []RecentShipment `json:"recent_shipments"`
}

const recentShipmentCount = 5

// GetStats folds one engine run per shipment into portfolio-level
// figures. Shipments are independent, so the runs fan out.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	shipments, err := s.shipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	supplierNames := make(map[string]string, len(suppliers))
	for _, sup := range suppliers {
		supplierNames[sup.ID] = sup.Name
	}

	results := make([]*landedcost.Result, len(shipments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, sh := range shipments {
		i, sh := i, sh
		g.Go(func() error {
			res, err := s.costing.Calculate(gctx, sh.ID)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalShipments: len(shipments), RecentShipments: []RecentShipment{}}
	for i, sh := range shipments {
		if sh.Status == "IN_TRANSIT" {
			stats.InTransitCount++
		}
		stats.TotalCIFUSD += results[i].Summary.TotalCIFUSD
		stats.TotalCIFCLP += results[i].Summary.TotalCIFCLP

		// List comes back most recently updated first.
		if i < recentShipmentCount {
			stats.RecentShipments = append(stats.RecentShipments, RecentShipment{
				ID:           sh.ID,
				Reference:    sh.Reference,
				SupplierName: supplierNames[sh.SupplierID],
				TotalFOB:     results[i].Summary.TotalFOBSource,
				Status:       sh.Status,
			})
		}
	}

	return stats, nil
}
