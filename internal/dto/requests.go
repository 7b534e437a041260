package dto

import "time"

type CreateSupplierRequest struct {
	Name     string `json:"name" binding:"required"`
	Country  string `json:"country"`
	Currency string `json:"currency" binding:"required,oneof=USD EUR GBP CLP"`
	Contact  string `json:"contact"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type CreateProductRequest struct {
	SKU        string  `json:"sku" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	SupplierID string  `json:"supplier_id" binding:"required,uuid"`
	PriceFOB   float64 `json:"price_fob" binding:"gte=0"`
	Currency   string  `json:"currency" binding:"required,oneof=USD EUR GBP CLP"`
}

type UpdateProductRequest struct {
	SKU      string  `json:"sku" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	PriceFOB float64 `json:"price_fob" binding:"gte=0"`
	Currency string  `json:"currency" binding:"required,oneof=USD EUR GBP CLP"`
}

type CreateShipmentRequest struct {
	SupplierID      string     `json:"supplier_id" binding:"required,uuid"`
	Reference       string     `json:"reference" binding:"required"`
	TransportMethod string     `json:"transport_method" binding:"required,oneof=MARITIME AIR"`
	Origin          string     `json:"origin"`
	Destination     string     `json:"destination"`
	ETD             *time.Time `json:"etd"`
	ETA             *time.Time `json:"eta"`
	BLOrAWB         string     `json:"bl_or_awb"`
	Carrier         string     `json:"carrier"`
	SourceCurrency  string     `json:"source_currency" binding:"omitempty,oneof=USD EUR GBP CLP"`
}

type AddItemRequest struct {
	ProductID    string  `json:"product_id" binding:"required,uuid"`
	Quantity     int     `json:"quantity" binding:"required,gt=0"`
	UnitPriceFOB float64 `json:"unit_price_fob" binding:"gte=0"`
}

type AddCostLineRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Currency    string  `json:"currency" binding:"required,oneof=USD EUR GBP CLP"`
	Category    string  `json:"category"`
	Role        string  `json:"role" binding:"omitempty,oneof=FREIGHT INSURANCE OTHER_IMPORT LOCAL"`
}

type UpdateRatesRequest struct {
	CustomsUSD  *float64 `json:"customs_rate_usd" binding:"omitempty,gt=0"`
	CustomsEUR  *float64 `json:"customs_rate_eur" binding:"omitempty,gt=0"`
	CustomsGBP  *float64 `json:"customs_rate_gbp" binding:"omitempty,gt=0"`
	PurchaseUSD *float64 `json:"purchase_rate_usd" binding:"omitempty,gt=0"`
	PurchaseEUR *float64 `json:"purchase_rate_eur" binding:"omitempty,gt=0"`
	PurchaseGBP *float64 `json:"purchase_rate_gbp" binding:"omitempty,gt=0"`
	CrossEUR    *float64 `json:"cross_eur_to_usd" binding:"omitempty,gt=0"`
	CrossGBP    *float64 `json:"cross_gbp_to_usd" binding:"omitempty,gt=0"`
}

type UpdateCertificateRequest struct {
	HasCertificateOfOrigin *bool `json:"has_certificate_of_origin" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT IN_TRANSIT IN_CUSTOMS RELEASED DELIVERED"`
}

type UpdateLogisticsRequest struct {
	TransportMethod string     `json:"transport_method" binding:"required,oneof=MARITIME AIR"`
	Origin          string     `json:"origin"`
	Destination     string     `json:"destination"`
	ETD             *time.Time `json:"etd"`
	ETA             *time.Time `json:"eta"`
	BLOrAWB         string     `json:"bl_or_awb"`
	Carrier         string     `json:"carrier"`
}

type ImportItemRow struct {
	SKU      string  `json:"sku" binding:"required"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"gte=0"`
}

type ImportItemsRequest struct {
	Items []ImportItemRow `json:"items" binding:"required,min=1,max=500,dive"`
}

// Simulation inputs mirror the calculation engine contract so what-if
// runs need no stored shipment.

type SimulationItem struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity" binding:"gte=0"`
	UnitPriceFOB float64 `json:"unit_price_fob" binding:"gte=0"`
}

type SimulationCostLine struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Currency    string  `json:"currency" binding:"required,oneof=USD EUR GBP CLP"`
	Category    string  `json:"category"`
	Role        string  `json:"role" binding:"omitempty,oneof=FREIGHT INSURANCE OTHER_IMPORT LOCAL"`
}

type SimulationRates struct {
	USD float64 `json:"usd" binding:"gte=0"`
	EUR float64 `json:"eur" binding:"gte=0"`
	GBP float64 `json:"gbp" binding:"gte=0"`

	CustomsUSD  *float64 `json:"customs_usd" binding:"omitempty,gt=0"`
	CustomsEUR  *float64 `json:"customs_eur" binding:"omitempty,gt=0"`
	CustomsGBP  *float64 `json:"customs_gbp" binding:"omitempty,gt=0"`
	PurchaseUSD *float64 `json:"purchase_usd" binding:"omitempty,gt=0"`
	PurchaseEUR *float64 `json:"purchase_eur" binding:"omitempty,gt=0"`
	PurchaseGBP *float64 `json:"purchase_gbp" binding:"omitempty,gt=0"`

	CrossEURToUSD *float64 `json:"cross_eur_to_usd" binding:"omitempty,gt=0"`
	CrossGBPToUSD *float64 `json:"cross_gbp_to_usd" binding:"omitempty,gt=0"`
}

type SimulationRequest struct {
	Items                  []SimulationItem     `json:"items" binding:"dive"`
	CostLines              []SimulationCostLine `json:"cost_lines" binding:"dive"`
	Rates                  SimulationRates      `json:"rates"`
	HasCertificateOfOrigin bool                 `json:"has_certificate_of_origin"`
	SourceCurrency         string               `json:"source_currency" binding:"omitempty,oneof=USD EUR GBP CLP"`
}
