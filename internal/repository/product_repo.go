package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hifi-imports/import-cost-api/internal/model"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Insert(ctx context.Context, p *model.Product) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO products (sku, name, supplier_id, price_fob, currency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		p.SKU, p.Name, p.SupplierID, p.PriceFOB, p.Currency,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return r.getBy(ctx, `id = $1`, id)
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	return r.getBy(ctx, `sku = $1`, sku)
}

func (r *ProductRepository) getBy(ctx context.Context, where, arg string) (*model.Product, error) {
	var p model.Product
	err := r.pool.QueryRow(ctx,
		`SELECT id, sku, name, supplier_id, price_fob, currency, last_landed_cost_clp, created_at
		FROM products WHERE `+where, arg,
	).Scan(&p.ID, &p.SKU, &p.Name, &p.SupplierID, &p.PriceFOB, &p.Currency, &p.LastLandedCostCLP, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, supplierID string) ([]model.Product, error) {
	query := `SELECT id, sku, name, supplier_id, price_fob, currency, last_landed_cost_clp, created_at
		FROM products`
	args := []any{}
	if supplierID != "" {
		query += ` WHERE supplier_id = $1`
		args = append(args, supplierID)
	}
	query += ` ORDER BY sku`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.SupplierID, &p.PriceFOB, &p.Currency, &p.LastLandedCostCLP, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE products SET sku = $2, name = $3, price_fob = $4, currency = $5
		WHERE id = $1`,
		p.ID, p.SKU, p.Name, p.PriceFOB, p.Currency)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FindOrCreate returns the product with the given SKU, creating it under
// the supplier when it does not exist yet. Used by bulk item import.
func (r *ProductRepository) FindOrCreate(ctx context.Context, sku, name, supplierID, currency string, priceFOB float64) (*model.Product, error) {
	p, err := r.GetBySKU(ctx, sku)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	created := &model.Product{
		SKU:        sku,
		Name:       name,
		SupplierID: supplierID,
		PriceFOB:   priceFOB,
		Currency:   currency,
	}
	if err := r.Insert(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
