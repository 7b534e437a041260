package database

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type supplierSeed struct {
	Name     string
	Country  string
	Currency string
	Contact  string
	Email    string
	Products []productSeed
}

type productSeed struct {
	SKU      string
	Name     string
	PriceFOB float64
}

type shipmentSeed struct {
	Reference       string
	SupplierName    string
	TransportMethod string
	Status          string
	SourceCurrency  string
	HasOriginCert   bool
	CustomsUSD      float64
	CustomsEUR      float64
	PurchaseUSD     float64
	CostLines       []costLineSeed
}

type costLineSeed struct {
	Description string
	Amount      float64
	Currency    string
	Category    string
}

var supplierSeeds = []supplierSeed{
	{
		Name: "Shenzhen Audio Co", Country: "China", Currency: "USD",
		Contact: "Li Wei", Email: "sales@szaudio.example",
		Products: []productSeed{
			{SKU: "AMP-100", Name: "Stereo Amplifier 100W", PriceFOB: 85},
			{SKU: "SPK-BS5", Name: "Bookshelf Speaker 5in", PriceFOB: 42.5},
			{SKU: "DAC-24", Name: "USB DAC 24bit", PriceFOB: 31},
		},
	},
	{
		Name: "Hamburg Hifi GmbH", Country: "Germany", Currency: "EUR",
		Contact: "Anna Koch", Email: "export@hhifi.example",
		Products: []productSeed{
			{SKU: "TT-200", Name: "Belt Drive Turntable", PriceFOB: 210},
			{SKU: "CART-OM10", Name: "Phono Cartridge OM10", PriceFOB: 38},
		},
	},
	{
		Name: "Importadora Andina", Country: "Chile", Currency: "CLP",
		Contact: "Pedro Rojas", Email: "ventas@andina.example",
		Products: []productSeed{
			{SKU: "CBL-RCA2", Name: "RCA Cable 2m", PriceFOB: 2500},
		},
	},
}

var shipmentSeeds = []shipmentSeed{
	{
		Reference: "IMP-2024-001", SupplierName: "Shenzhen Audio Co",
		TransportMethod: "MARITIME", Status: "DELIVERED", SourceCurrency: "USD",
		CustomsUSD: 900, PurchaseUSD: 925,
		CostLines: []costLineSeed{
			{Description: "Flete marítimo Shanghai-Valparaíso", Amount: 1800, Currency: "USD", Category: "Freight"},
			{Description: "Seguro de carga", Amount: 120, Currency: "USD", Category: "Insurance"},
			{Description: "Gastos agencia de aduana", Amount: 350000, Currency: "CLP"},
		},
	},
	{
		Reference: "IMP-2024-002", SupplierName: "Hamburg Hifi GmbH",
		TransportMethod: "AIR", Status: "IN_CUSTOMS", SourceCurrency: "EUR",
		HasOriginCert: true,
		CustomsUSD:    905, CustomsEUR: 985, PurchaseUSD: 918,
		CostLines: []costLineSeed{
			{Description: "Flete aéreo FRA-SCL", Amount: 950, Currency: "EUR", Category: "Freight"},
			{Description: "Seguro", Amount: 80, Currency: "EUR", Category: "Insurance"},
		},
	},
	{
		Reference: "IMP-2024-003", SupplierName: "Shenzhen Audio Co",
		TransportMethod: "MARITIME", Status: "IN_TRANSIT", SourceCurrency: "USD",
		CustomsUSD: 910,
		CostLines: []costLineSeed{
			{Description: "Flete marítimo", Amount: 2100, Currency: "USD", Category: "Freight"},
		},
	},
}

// SeedData loads a small demo dataset: three suppliers with products and
// three shipments in different stages. Idempotent via reference/sku
// conflict skips.
func SeedData(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(20240501))

	supplierIDs := make(map[string]string)
	productIDs := make(map[string][]string)

	for _, s := range supplierSeeds {
		var id string
		err := pool.QueryRow(ctx,
			`INSERT INTO suppliers (name, country, currency, contact, email)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT DO NOTHING
			RETURNING id`,
			s.Name, s.Country, s.Currency, s.Contact, s.Email,
		).Scan(&id)
		if err != nil {
			// Conflict path: supplier already present.
			if err := pool.QueryRow(ctx,
				`SELECT id FROM suppliers WHERE name = $1`, s.Name).Scan(&id); err != nil {
				return fmt.Errorf("seed supplier %s: %w", s.Name, err)
			}
		}
		supplierIDs[s.Name] = id

		for _, p := range s.Products {
			var pid string
			err := pool.QueryRow(ctx,
				`INSERT INTO products (sku, name, supplier_id, price_fob, currency)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (sku) DO UPDATE SET name = EXCLUDED.name
				RETURNING id`,
				p.SKU, p.Name, id, p.PriceFOB, s.Currency,
			).Scan(&pid)
			if err != nil {
				return fmt.Errorf("seed product %s: %w", p.SKU, err)
			}
			productIDs[s.Name] = append(productIDs[s.Name], pid)
		}
	}

	for _, sh := range shipmentSeeds {
		supplierID := supplierIDs[sh.SupplierName]

		var shipmentID string
		err := pool.QueryRow(ctx,
			`INSERT INTO shipments (reference, supplier_id, transport_method, status,
				source_currency, has_origin_cert, customs_rate_usd, customs_rate_eur, purchase_rate_usd)
			VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, 0), NULLIF($8, 0), NULLIF($9, 0))
			ON CONFLICT (reference) DO NOTHING
			RETURNING id`,
			sh.Reference, supplierID, sh.TransportMethod, sh.Status,
			sh.SourceCurrency, sh.HasOriginCert, sh.CustomsUSD, sh.CustomsEUR, sh.PurchaseUSD,
		).Scan(&shipmentID)
		if err != nil {
			// Already seeded; leave the existing shipment alone.
			continue
		}

		for _, productID := range productIDs[sh.SupplierName] {
			qty := 10 + rng.Intn(90)
			var price float64
			if err := pool.QueryRow(ctx,
				`SELECT price_fob FROM products WHERE id = $1`, productID).Scan(&price); err != nil {
				return fmt.Errorf("seed item price: %w", err)
			}
			if _, err := pool.Exec(ctx,
				`INSERT INTO shipment_items (shipment_id, product_id, quantity, unit_price_fob)
				VALUES ($1, $2, $3, $4)`,
				shipmentID, productID, qty, price,
			); err != nil {
				return fmt.Errorf("seed shipment item: %w", err)
			}
		}

		for _, line := range sh.CostLines {
			if _, err := pool.Exec(ctx,
				`INSERT INTO cost_lines (shipment_id, description, amount, currency, category)
				VALUES ($1, $2, $3, $4, $5)`,
				shipmentID, line.Description, line.Amount, line.Currency, line.Category,
			); err != nil {
				return fmt.Errorf("seed cost line: %w", err)
			}
		}
	}

	log.Info().
		Int("suppliers", len(supplierSeeds)).
		Int("shipments", len(shipmentSeeds)).
		Msg("demo data seeded")

	return nil
}
