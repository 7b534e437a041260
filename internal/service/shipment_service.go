package service

import (
	"context"
	"fmt"

	"github.com/hifi-imports/import-cost-api/internal/dto"
	"github.com/hifi-imports/import-cost-api/internal/model"
	"github.com/hifi-imports/import-cost-api/internal/repository"
)

type ShipmentService struct {
	shipmentRepo *repository.ShipmentRepository
	supplierRepo *repository.SupplierRepository
	productRepo  *repository.ProductRepository
}

func NewShipmentService(shipmentRepo *repository.ShipmentRepository, supplierRepo *repository.SupplierRepository, productRepo *repository.ProductRepository) *ShipmentService {
	return &ShipmentService{shipmentRepo: shipmentRepo, supplierRepo: supplierRepo, productRepo: productRepo}
}

type validationErr struct {
	field   string
	message string
}

func (e *validationErr) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

// AsFieldError converts a service validation failure into its DTO form.
// Returns false for infrastructure errors that should map to 500.
func AsFieldError(err error) (dto.ValidationError, bool) {
	if ve, ok := err.(*validationErr); ok {
		return dto.ValidationError{Field: ve.field, Message: ve.message}, true
	}
	return dto.ValidationError{}, false
}

func (s *ShipmentService) Create(ctx context.Context, req *dto.CreateShipmentRequest) (*model.Shipment, error) {
	exists, err := s.supplierRepo.Exists(ctx, req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("check supplier: %w", err)
	}
	if !exists {
		return nil, &validationErr{field: "supplier_id", message: fmt.Sprintf("supplier '%s' not found", req.SupplierID)}
	}

	taken, err := s.shipmentRepo.ReferenceExists(ctx, req.Reference)
	if err != nil {
		return nil, fmt.Errorf("check reference: %w", err)
	}
	if taken {
		return nil, &validationErr{field: "reference", message: fmt.Sprintf("reference '%s' already exists", req.Reference)}
	}

	sourceCurrency := req.SourceCurrency
	if sourceCurrency == "" {
		sourceCurrency = "USD"
	}

	shipment := &model.Shipment{
		Reference:       req.Reference,
		SupplierID:      req.SupplierID,
		TransportMethod: req.TransportMethod,
		Origin:          req.Origin,
		Destination:     req.Destination,
		ETD:             req.ETD,
		ETA:             req.ETA,
		BLOrAWB:         req.BLOrAWB,
		Carrier:         req.Carrier,
		SourceCurrency:  sourceCurrency,
	}

	if err := s.shipmentRepo.Insert(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (s *ShipmentService) Get(ctx context.Context, id string) (*model.ShipmentAggregate, error) {
	shipment, err := s.shipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier, err := s.supplierRepo.GetByID(ctx, shipment.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("load supplier: %w", err)
	}

	items, err := s.shipmentRepo.ListItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	lines, err := s.shipmentRepo.ListCostLines(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load cost lines: %w", err)
	}

	return &model.ShipmentAggregate{
		Shipment:  *shipment,
		Supplier:  *supplier,
		Items:     items,
		CostLines: lines,
	}, nil
}

func (s *ShipmentService) List(ctx context.Context) ([]model.Shipment, error) {
	return s.shipmentRepo.List(ctx)
}

func (s *ShipmentService) Delete(ctx context.Context, id string) (bool, error) {
	return s.shipmentRepo.Delete(ctx, id)
}

func (s *ShipmentService) AddItem(ctx context.Context, shipmentID string, req *dto.AddItemRequest) (*model.ShipmentItem, error) {
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, &validationErr{field: "product_id", message: fmt.Sprintf("product '%s' not found", req.ProductID)}
	}

	item := newItem(shipmentID, product, req.Quantity, req.UnitPriceFOB)
	if err := s.shipmentRepo.InsertItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ShipmentService) RemoveItem(ctx context.Context, shipmentID, itemID string) (bool, error) {
	return s.shipmentRepo.DeleteItem(ctx, shipmentID, itemID)
}

func (s *ShipmentService) AddCostLine(ctx context.Context, shipmentID string, req *dto.AddCostLineRequest) (*model.CostLine, error) {
	line := &model.CostLine{
		ShipmentID:  shipmentID,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Category:    req.Category,
		Role:        req.Role,
	}
	if err := s.shipmentRepo.InsertCostLine(ctx, line); err != nil {
		return nil, err
	}
	return line, nil
}

func (s *ShipmentService) RemoveCostLine(ctx context.Context, shipmentID, lineID string) (bool, error) {
	return s.shipmentRepo.DeleteCostLine(ctx, shipmentID, lineID)
}

func (s *ShipmentService) UpdateRates(ctx context.Context, shipmentID string, req *dto.UpdateRatesRequest) (*model.Shipment, error) {
	rates := &model.Shipment{
		CustomsRateUSD:  req.CustomsUSD,
		CustomsRateEUR:  req.CustomsEUR,
		CustomsRateGBP:  req.CustomsGBP,
		PurchaseRateUSD: req.PurchaseUSD,
		PurchaseRateEUR: req.PurchaseEUR,
		PurchaseRateGBP: req.PurchaseGBP,
		CrossEURToUSD:   req.CrossEUR,
		CrossGBPToUSD:   req.CrossGBP,
	}

	found, err := s.shipmentRepo.UpdateRates(ctx, shipmentID, rates)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &validationErr{field: "id", message: "shipment not found"}
	}
	return s.shipmentRepo.GetByID(ctx, shipmentID)
}

func (s *ShipmentService) UpdateCertificate(ctx context.Context, shipmentID string, hasCert bool) (*model.Shipment, error) {
	found, err := s.shipmentRepo.UpdateCertificate(ctx, shipmentID, hasCert)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &validationErr{field: "id", message: "shipment not found"}
	}
	return s.shipmentRepo.GetByID(ctx, shipmentID)
}

func (s *ShipmentService) UpdateStatus(ctx context.Context, shipmentID, status string) (*model.Shipment, error) {
	found, err := s.shipmentRepo.UpdateStatus(ctx, shipmentID, status)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &validationErr{field: "id", message: "shipment not found"}
	}
	return s.shipmentRepo.GetByID(ctx, shipmentID)
}

func (s *ShipmentService) UpdateLogistics(ctx context.Context, shipmentID string, req *dto.UpdateLogisticsRequest) (*model.Shipment, error) {
	shipment := &model.Shipment{
		ID:              shipmentID,
		TransportMethod: req.TransportMethod,
		Origin:          req.Origin,
		Destination:     req.Destination,
		ETD:             req.ETD,
		ETA:             req.ETA,
		BLOrAWB:         req.BLOrAWB,
		Carrier:         req.Carrier,
	}

	found, err := s.shipmentRepo.UpdateLogistics(ctx, shipment)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &validationErr{field: "id", message: "shipment not found"}
	}
	return s.shipmentRepo.GetByID(ctx, shipmentID)
}

// newItem builds a shipment item from a resolved product, falling back
// to the catalog FOB price when the caller did not give one.
func newItem(shipmentID string, product *model.Product, quantity int, unitPriceFOB float64) *model.ShipmentItem {
	if unitPriceFOB == 0 {
		unitPriceFOB = product.PriceFOB
	}
	return &model.ShipmentItem{
		ShipmentID:   shipmentID,
		ProductID:    product.ID,
		SKU:          product.SKU,
		ProductName:  product.Name,
		Quantity:     quantity,
		UnitPriceFOB: unitPriceFOB,
	}
}

// ImportItems bulk-loads items from a supplier packing list, creating
// unknown products on the fly under the shipment's supplier. Rows that
// fail product resolution are reported individually; the rest land in a
// single batch insert.
func (s *ShipmentService) ImportItems(ctx context.Context, shipmentID string, req *dto.ImportItemsRequest) (*dto.ImportItemsResponse, error) {
	shipment, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.GetByID(ctx, shipment.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("load supplier: %w", err)
	}

	resp := &dto.ImportItemsResponse{}
	var items []*model.ShipmentItem
	for _, row := range req.Items {
		name := row.Name
		if name == "" {
			name = "Unknown Product"
		}

		product, err := s.productRepo.FindOrCreate(ctx, row.SKU, name, supplier.ID, supplier.Currency, row.Price)
		if err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("SKU %s: %v", row.SKU, err))
			continue
		}

		items = append(items, newItem(shipmentID, product, row.Quantity, row.Price))
	}

	if len(items) > 0 {
		if err := s.shipmentRepo.InsertItems(ctx, items); err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("insert batch: %v", err))
		} else {
			resp.Added = len(items)
		}
	}

	return resp, nil
}
