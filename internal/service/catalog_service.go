package service

import (
	"context"

	"github.com/hifi-imports/import-cost-api/internal/dto"
	"github.com/hifi-imports/import-cost-api/internal/model"
	"github.com/hifi-imports/import-cost-api/internal/repository"
)

// CatalogService covers suppliers and the products bought from them.
type CatalogService struct {
	supplierRepo *repository.SupplierRepository
	productRepo  *repository.ProductRepository
}

func NewCatalogService(supplierRepo *repository.SupplierRepository, productRepo *repository.ProductRepository) *CatalogService {
	return &CatalogService{supplierRepo: supplierRepo, productRepo: productRepo}
}

func (s *CatalogService) CreateSupplier(ctx context.Context, req *dto.CreateSupplierRequest) (*model.Supplier, error) {
	supplier := &model.Supplier{
		Name:     req.Name,
		Country:  req.Country,
		Currency: req.Currency,
		Contact:  req.Contact,
		Email:    req.Email,
	}
	if err := s.supplierRepo.Insert(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *CatalogService) GetSupplier(ctx context.Context, id string) (*model.Supplier, error) {
	return s.supplierRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return s.supplierRepo.List(ctx)
}

func (s *CatalogService) UpdateSupplier(ctx context.Context, id string, req *dto.CreateSupplierRequest) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	supplier.Name = req.Name
	supplier.Country = req.Country
	supplier.Currency = req.Currency
	supplier.Contact = req.Contact
	supplier.Email = req.Email
	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *CatalogService) DeleteSupplier(ctx context.Context, id string) (bool, error) {
	return s.supplierRepo.Delete(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error) {
	exists, err := s.supplierRepo.Exists(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &validationErr{field: "supplier_id", message: "supplier does not exist"}
	}

	product := &model.Product{
		SKU:        req.SKU,
		Name:       req.Name,
		SupplierID: req.SupplierID,
		PriceFOB:   req.PriceFOB,
		Currency:   req.Currency,
	}
	if err := s.productRepo.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, supplierID string) ([]model.Product, error) {
	return s.productRepo.List(ctx, supplierID)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req *dto.UpdateProductRequest) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.SKU = req.SKU
	product.Name = req.Name
	product.PriceFOB = req.PriceFOB
	product.Currency = req.Currency
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) (bool, error) {
	return s.productRepo.Delete(ctx, id)
}
