package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hifi-imports/import-cost-api/internal/model"
)

type ShipmentRepository struct {
	pool *pgxpool.Pool
}

func NewShipmentRepository(pool *pgxpool.Pool) *ShipmentRepository {
	return &ShipmentRepository{pool: pool}
}

const shipmentColumns = `id, reference, supplier_id, transport_method, origin, destination,
	etd, eta, bl_or_awb, carrier, status, source_currency, has_origin_cert,
	customs_rate_usd, customs_rate_eur, customs_rate_gbp,
	purchase_rate_usd, purchase_rate_eur, purchase_rate_gbp,
	cross_eur_to_usd, cross_gbp_to_usd, created_at, updated_at`

func scanShipment(row pgx.Row) (*model.Shipment, error) {
	var s model.Shipment
	err := row.Scan(
		&s.ID, &s.Reference, &s.SupplierID, &s.TransportMethod, &s.Origin, &s.Destination,
		&s.ETD, &s.ETA, &s.BLOrAWB, &s.Carrier, &s.Status, &s.SourceCurrency, &s.HasOriginCert,
		&s.CustomsRateUSD, &s.CustomsRateEUR, &s.CustomsRateGBP,
		&s.PurchaseRateUSD, &s.PurchaseRateEUR, &s.PurchaseRateGBP,
		&s.CrossEURToUSD, &s.CrossGBPToUSD, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShipmentRepository) Insert(ctx context.Context, s *model.Shipment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO shipments (reference, supplier_id, transport_method, origin, destination,
			etd, eta, bl_or_awb, carrier, source_currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, status, created_at, updated_at`,
		s.Reference, s.SupplierID, s.TransportMethod, s.Origin, s.Destination,
		s.ETD, s.ETA, s.BLOrAWB, s.Carrier, s.SourceCurrency,
	).Scan(&s.ID, &s.Status, &s.CreatedAt, &s.UpdatedAt)
}

func (r *ShipmentRepository) GetByID(ctx context.Context, id string) (*model.Shipment, error) {
	return scanShipment(r.pool.QueryRow(ctx,
		`SELECT `+shipmentColumns+` FROM shipments WHERE id = $1`, id))
}

func (r *ShipmentRepository) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM shipments WHERE reference = $1)`, reference).Scan(&exists)
	return exists, err
}

func (r *ShipmentRepository) List(ctx context.Context) ([]model.Shipment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+shipmentColumns+` FROM shipments ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shipments []model.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, *s)
	}
	return shipments, rows.Err()
}

func (r *ShipmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ShipmentRepository) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE shipments SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ShipmentRepository) UpdateCertificate(ctx context.Context, id string, hasCert bool) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE shipments SET has_origin_cert = $2, updated_at = now() WHERE id = $1`, id, hasCert)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateRates overwrites only the lanes the caller supplies; nil inputs
// leave the stored value untouched.
func (r *ShipmentRepository) UpdateRates(ctx context.Context, id string, rates *model.Shipment) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE shipments SET
			customs_rate_usd = COALESCE($2, customs_rate_usd),
			customs_rate_eur = COALESCE($3, customs_rate_eur),
			customs_rate_gbp = COALESCE($4, customs_rate_gbp),
			purchase_rate_usd = COALESCE($5, purchase_rate_usd),
			purchase_rate_eur = COALESCE($6, purchase_rate_eur),
			purchase_rate_gbp = COALESCE($7, purchase_rate_gbp),
			cross_eur_to_usd = COALESCE($8, cross_eur_to_usd),
			cross_gbp_to_usd = COALESCE($9, cross_gbp_to_usd),
			updated_at = now()
		WHERE id = $1`,
		id,
		rates.CustomsRateUSD, rates.CustomsRateEUR, rates.CustomsRateGBP,
		rates.PurchaseRateUSD, rates.PurchaseRateEUR, rates.PurchaseRateGBP,
		rates.CrossEURToUSD, rates.CrossGBPToUSD,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ShipmentRepository) UpdateLogistics(ctx context.Context, s *model.Shipment) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE shipments SET transport_method = $2, origin = $3, destination = $4,
			etd = $5, eta = $6, bl_or_awb = $7, carrier = $8, updated_at = now()
		WHERE id = $1`,
		s.ID, s.TransportMethod, s.Origin, s.Destination, s.ETD, s.ETA, s.BLOrAWB, s.Carrier)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Items

func (r *ShipmentRepository) InsertItem(ctx context.Context, item *model.ShipmentItem) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO shipment_items (shipment_id, product_id, quantity, unit_price_fob)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		item.ShipmentID, item.ProductID, item.Quantity, item.UnitPriceFOB,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *ShipmentRepository) InsertItems(ctx context.Context, items []*model.ShipmentItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin item batch: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(
			`INSERT INTO shipment_items (shipment_id, product_id, quantity, unit_price_fob)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`,
			item.ShipmentID, item.ProductID, item.Quantity, item.UnitPriceFOB,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range items {
		if err := br.QueryRow().Scan(&items[i].ID, &items[i].CreatedAt); err != nil {
			br.Close()
			return fmt.Errorf("insert item %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close item batch: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *ShipmentRepository) DeleteItem(ctx context.Context, shipmentID, itemID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM shipment_items WHERE id = $1 AND shipment_id = $2`, itemID, shipmentID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ShipmentRepository) ListItems(ctx context.Context, shipmentID string) ([]model.ShipmentItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT i.id, i.shipment_id, i.product_id, p.sku, p.name, i.quantity,
			i.unit_price_fob, i.unit_cost_clp, i.created_at
		FROM shipment_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.shipment_id = $1
		ORDER BY i.created_at`, shipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.ShipmentItem
	for rows.Next() {
		var item model.ShipmentItem
		if err := rows.Scan(&item.ID, &item.ShipmentID, &item.ProductID, &item.SKU, &item.ProductName,
			&item.Quantity, &item.UnitPriceFOB, &item.UnitCostCLP, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Cost lines

func (r *ShipmentRepository) InsertCostLine(ctx context.Context, line *model.CostLine) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO cost_lines (shipment_id, description, amount, currency, category, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		line.ShipmentID, line.Description, line.Amount, line.Currency, line.Category, line.Role,
	).Scan(&line.ID, &line.CreatedAt)
}

func (r *ShipmentRepository) DeleteCostLine(ctx context.Context, shipmentID, lineID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM cost_lines WHERE id = $1 AND shipment_id = $2`, lineID, shipmentID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ShipmentRepository) ListCostLines(ctx context.Context, shipmentID string) ([]model.CostLine, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, shipment_id, description, amount, currency, category, role, created_at
		FROM cost_lines WHERE shipment_id = $1 ORDER BY created_at`, shipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []model.CostLine
	for rows.Next() {
		var line model.CostLine
		if err := rows.Scan(&line.ID, &line.ShipmentID, &line.Description, &line.Amount,
			&line.Currency, &line.Category, &line.Role, &line.CreatedAt); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// SaveItemUnitCosts writes computed unit landed costs back to the
// shipment items and pushes the latest figure onto the product catalog,
// atomically: reports either see all updated costs or none.
func (r *ShipmentRepository) SaveItemUnitCosts(ctx context.Context, shipmentID string, costs map[string]float64) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin cost save: %w", err)
	}
	defer tx.Rollback(ctx)

	updated := 0
	for itemID, unitCost := range costs {
		var productID string
		err := tx.QueryRow(ctx,
			`UPDATE shipment_items SET unit_cost_clp = $3
			WHERE id = $1 AND shipment_id = $2
			RETURNING product_id`,
			itemID, shipmentID, unitCost,
		).Scan(&productID)
		if err != nil {
			return 0, fmt.Errorf("save cost for item %s: %w", itemID, err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE products SET last_landed_cost_clp = $2 WHERE id = $1`,
			productID, unitCost); err != nil {
			return 0, fmt.Errorf("update product cost: %w", err)
		}
		updated++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return updated, nil
}
