package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hifi-imports/import-cost-api/internal/model"
)

type SupplierRepository struct {
	pool *pgxpool.Pool
}

func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{pool: pool}
}

func (r *SupplierRepository) Insert(ctx context.Context, s *model.Supplier) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO suppliers (name, country, currency, contact, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		s.Name, s.Country, s.Currency, s.Contact, s.Email,
	).Scan(&s.ID, &s.CreatedAt)
}

func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*model.Supplier, error) {
	var s model.Supplier
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, country, currency, contact, email, created_at
		FROM suppliers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Country, &s.Currency, &s.Contact, &s.Email, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]model.Supplier, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, country, currency, contact, email, created_at
		FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []model.Supplier
	for rows.Next() {
		var s model.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Country, &s.Currency, &s.Contact, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *SupplierRepository) Update(ctx context.Context, s *model.Supplier) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE suppliers SET name = $2, country = $3, currency = $4, contact = $5, email = $6
		WHERE id = $1`,
		s.ID, s.Name, s.Country, s.Currency, s.Contact, s.Email)
	return err
}

func (r *SupplierRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SupplierRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM suppliers WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
