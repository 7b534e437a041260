package service

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hifi-imports/import-cost-api/internal/landedcost"
	"github.com/hifi-imports/import-cost-api/internal/repository"
)

type ReportService struct {
	shipmentRepo *repository.ShipmentRepository
	supplierRepo *repository.SupplierRepository
	costing      *CostingService
}

func NewReportService(shipmentRepo *repository.ShipmentRepository, supplierRepo *repository.SupplierRepository, costing *CostingService) *ReportService {
	return &ReportService{shipmentRepo: shipmentRepo, supplierRepo: supplierRepo, costing: costing}
}

type ShipmentReportRow struct {
	ID              string  `json:"id"`
	Reference       string  `json:"reference"`
	Supplier        string  `json:"supplier"`
	Month           string  `json:"month"`
	Status          string  `json:"status"`
	ItemCount       int     `json:"item_count"`
	TotalFOBSource  float64 `json:"total_fob_source"`
	TotalCIFUSD     float64 `json:"total_cif_usd"`
	TotalCostCLP    float64 `json:"total_cost_clp"`
	RatesIncomplete bool    `json:"rates_incomplete"`
}

type MonthlyReportRow struct {
	Month        string  `json:"month"`
	TotalFOB     float64 `json:"total_fob"`
	TotalCIFUSD  float64 `json:"total_cif_usd"`
	TotalCostCLP float64 `json:"total_cost_clp"`
	Count        int     `json:"count"`
}

type SupplierReportRow struct {
	Name         string  `json:"name"`
	TotalCIFUSD  float64 `json:"total_cif_usd"`
	TotalCostCLP float64 `json:"total_cost_clp"`
	Count        int     `json:"count"`
}

type ReportTotals struct {
	TotalShipments int     `json:"total_shipments"`
	TotalFOB       float64 `json:"total_fob"`
	TotalCIFUSD    float64 `json:"total_cif_usd"`
	TotalCostCLP   float64 `json:"total_cost_clp"`
}

type ReportData struct {
	Shipments  []ShipmentReportRow `json:"shipments"`
	Monthly    []MonthlyReportRow  `json:"monthly"`
	BySupplier []SupplierReportRow `json:"by_supplier"`
	Totals     ReportTotals        `json:"totals"`
}

// Generate runs the engine per shipment and folds the results by month
// and by supplier. Per-shipment figures come straight from the engine so
// the report can never disagree with the shipment detail view.
func (s *ReportService) Generate(ctx context.Context) (*ReportData, error) {
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

	type shipmentResult struct {
		result    *landedcost.Result
		itemCount int
	}

	results := make([]shipmentResult, len(shipments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, sh := range shipments {
		i, sh := i, sh
		g.Go(func() error {
			res, err := s.costing.Calculate(gctx, sh.ID)
			if err != nil {
				return err
			}
			results[i] = shipmentResult{result: res, itemCount: len(res.Items)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data := &ReportData{
		Shipments:  make([]ShipmentReportRow, len(shipments)),
		Monthly:    []MonthlyReportRow{},
		BySupplier: []SupplierReportRow{},
	}

	monthly := make(map[string]*MonthlyReportRow)
	bySupplier := make(map[string]*SupplierReportRow)

	for i, sh := range shipments {
		summary := results[i].result.Summary
		month := sh.CreatedAt.Format("2006-01")

		row := ShipmentReportRow{
			ID:              sh.ID,
			Reference:       sh.Reference,
			Supplier:        supplierNames[sh.SupplierID],
			Month:           month,
			Status:          sh.Status,
			ItemCount:       results[i].itemCount,
			TotalFOBSource:  summary.TotalFOBSource,
			TotalCIFUSD:     summary.TotalCIFUSD,
			TotalCostCLP:    summary.TotalCostCLP,
			RatesIncomplete: summary.RatesIncomplete,
		}
		data.Shipments[i] = row

		m, ok := monthly[month]
		if !ok {
			m = &MonthlyReportRow{Month: month}
			monthly[month] = m
		}
		m.TotalFOB += row.TotalFOBSource
		m.TotalCIFUSD += row.TotalCIFUSD
		m.TotalCostCLP += row.TotalCostCLP
		m.Count++

		sup, ok := bySupplier[row.Supplier]
		if !ok {
			sup = &SupplierReportRow{Name: row.Supplier}
			bySupplier[row.Supplier] = sup
		}
		sup.TotalCIFUSD += row.TotalCIFUSD
		sup.TotalCostCLP += row.TotalCostCLP
		sup.Count++

		data.Totals.TotalFOB += row.TotalFOBSource
		data.Totals.TotalCIFUSD += row.TotalCIFUSD
		data.Totals.TotalCostCLP += row.TotalCostCLP
	}
	data.Totals.TotalShipments = len(shipments)

	for _, m := range monthly {
		data.Monthly = append(data.Monthly, *m)
	}
	sort.Slice(data.Monthly, func(i, j int) bool {
		return data.Monthly[i].Month < data.Monthly[j].Month
	})

	for _, sup := range bySupplier {
		data.BySupplier = append(data.BySupplier, *sup)
	}
	sort.Slice(data.BySupplier, func(i, j int) bool {
		return data.BySupplier[i].TotalCIFUSD > data.BySupplier[j].TotalCIFUSD
	})

	return data, nil
}
