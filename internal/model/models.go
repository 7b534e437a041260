package model

import (
	"time"
)

type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country,omitempty"`
	Currency  string    `json:"currency"`
	Contact   string    `json:"contact,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID                string    `json:"id"`
	SKU               string    `json:"sku"`
	Name              string    `json:"name"`
	SupplierID        string    `json:"supplier_id"`
	PriceFOB          float64   `json:"price_fob"`
	Currency          string    `json:"currency"`
	LastLandedCostCLP *float64  `json:"last_landed_cost_clp,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type Shipment struct {
	ID              string     `json:"id"`
	Reference       string     `json:"reference"`
	SupplierID      string     `json:"supplier_id"`
	TransportMethod string     `json:"transport_method"`
	Origin          string     `json:"origin,omitempty"`
	Destination     string     `json:"destination,omitempty"`
	ETD             *time.Time `json:"etd,omitempty"`
	ETA             *time.Time `json:"eta,omitempty"`
	BLOrAWB         string     `json:"bl_or_awb,omitempty"`
	Carrier         string     `json:"carrier,omitempty"`
	Status          string     `json:"status"`
	SourceCurrency  string     `json:"source_currency"`
	HasOriginCert   bool       `json:"has_certificate_of_origin"`

	// Exchange-rate lanes, all CLP per unit of foreign currency except
	// the two cross rates. Nil means never entered for this shipment.
	CustomsRateUSD  *float64 `json:"customs_rate_usd,omitempty"`
	CustomsRateEUR  *float64 `json:"customs_rate_eur,omitempty"`
	CustomsRateGBP  *float64 `json:"customs_rate_gbp,omitempty"`
	PurchaseRateUSD *float64 `json:"purchase_rate_usd,omitempty"`
	PurchaseRateEUR *float64 `json:"purchase_rate_eur,omitempty"`
	PurchaseRateGBP *float64 `json:"purchase_rate_gbp,omitempty"`
	CrossEURToUSD   *float64 `json:"cross_eur_to_usd,omitempty"`
	CrossGBPToUSD   *float64 `json:"cross_gbp_to_usd,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ShipmentItem struct {
	ID           string    `json:"id"`
	ShipmentID   string    `json:"shipment_id"`
	ProductID    string    `json:"product_id"`
	SKU          string    `json:"sku"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	UnitPriceFOB float64   `json:"unit_price_fob"`
	UnitCostCLP  *float64  `json:"unit_cost_clp,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type CostLine struct {
	ID          string    `json:"id"`
	ShipmentID  string    `json:"shipment_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Category    string    `json:"category,omitempty"`
	Role        string    `json:"role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShipmentAggregate is a shipment with everything the landed-cost
// calculation needs loaded.
type ShipmentAggregate struct {
	Shipment  Shipment       `json:"shipment"`
	Supplier  Supplier       `json:"supplier"`
	Items     []ShipmentItem `json:"items"`
	CostLines []CostLine     `json:"cost_lines"`
}
