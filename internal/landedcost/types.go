// Package landedcost computes the landed cost of an import shipment.
//
// It produces two views of the same shipment: the official customs
// valuation (CIF, Ad Valorem, VAT, all at published customs rates) and the
// real economic cost to the business (at the rates actually paid to buy
// foreign currency), prorated down to a per-unit cost in CLP.
//
// The package is pure: no I/O, no state across calls. Callers load the
// shipment however they like and hand everything in as plain values.
package landedcost

// Currency is one of the four currencies the engine understands.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CLP Currency = "CLP"
)

// Valid reports whether c is a supported currency code.
func (c Currency) Valid() bool {
	switch c {
	case USD, EUR, GBP, CLP:
		return true
	}
	return false
}

// CostLineRole tags which pool a cost line belongs to in the proration
// math. RoleAuto defers to the keyword classifier.
type CostLineRole string

const (
	RoleAuto        CostLineRole = ""
	RoleFreight     CostLineRole = "FREIGHT"
	RoleInsurance   CostLineRole = "INSURANCE"
	RoleOtherImport CostLineRole = "OTHER_IMPORT"
	RoleLocal       CostLineRole = "LOCAL"
)

// Item is one shipment line item. Product fields are carried through for
// display only.
type Item struct {
	ID           string
	SKU          string
	ProductName  string
	Quantity     int
	UnitPriceFOB float64
}

// CostLine is a shipment-level expense (freight, insurance, customs
// agent, local haulage...). Role may be set explicitly at data entry;
// when left as RoleAuto the description/category keywords decide.
type CostLine struct {
	ID          string
	Description string
	Amount      float64
	Currency    Currency
	Category    string
	Role        CostLineRole
}

// RateSet carries the exchange rates for a shipment, all expressed as CLP
// per unit of foreign currency (cross rates excepted).
//
// USD/EUR/GBP are the legacy flattened rates; the lane-specific pointers
// override them when set. A nil pointer means "not provided" and falls
// back down the resolution chain; see ResolveRates.
type RateSet struct {
	USD float64
	EUR float64
	GBP float64

	CustomsUSD *float64
	CustomsEUR *float64
	CustomsGBP *float64

	PurchaseUSD *float64
	PurchaseEUR *float64
	PurchaseGBP *float64

	// Cross rates convert a foreign currency directly to USD.
	CrossEURToUSD *float64
	CrossGBPToUSD *float64
}

// TaxPolicy holds the duty percentages applied during customs valuation.
type TaxPolicy struct {
	AdValoremRate float64
	VATRate       float64
}

// DefaultTaxPolicy returns the rates in force for Chilean imports.
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{AdValoremRate: 0.06, VATRate: 0.19}
}

// Input is everything Calculate needs for one shipment.
type Input struct {
	Items     []Item
	CostLines []CostLine
	Rates     RateSet
	Policy    TaxPolicy

	// HasCertificateOfOrigin exempts the shipment from Ad Valorem duty.
	HasCertificateOfOrigin bool

	// SourceCurrency is the currency of the FOB unit prices. Defaults
	// to USD when empty.
	SourceCurrency Currency
}

// ItemCost is the per-item calculation result.
type ItemCost struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`

	FOBTotalSource  float64 `json:"fob_total_source"`
	FOBTotalUSD     float64 `json:"fob_total_usd"`
	FOBTotalCLPReal float64 `json:"fob_total_clp_real"`

	FreightProrated     float64 `json:"freight_prorated_clp"`
	InsuranceProrated   float64 `json:"insurance_prorated_clp"`
	OtherImportProrated float64 `json:"other_import_prorated_clp"`

	CIFTotalUSD float64 `json:"cif_total_usd"`
	CIFTotalCLP float64 `json:"cif_total_clp"`

	AdValorem  float64 `json:"ad_valorem_clp"`
	VAT        float64 `json:"vat_clp"`
	TotalTaxes float64 `json:"total_taxes_clp"`

	LocalExpensesProrated float64 `json:"local_expenses_prorated_clp"`

	TotalCostCLP float64 `json:"total_cost_clp"`
	UnitCostCLP  float64 `json:"unit_cost_clp"`
}

// Summary is the shipment-level calculation result.
type Summary struct {
	TotalFOBSource float64 `json:"total_fob_source"`
	TotalFOBUSD    float64 `json:"total_fob_usd"`

	TotalFreightUSD   float64 `json:"total_freight_usd"`
	TotalInsuranceUSD float64 `json:"total_insurance_usd"`

	TotalCIFUSD float64 `json:"total_cif_usd"`
	TotalCIFCLP float64 `json:"total_cif_clp"`

	TotalAdValorem    float64 `json:"total_ad_valorem_clp"`
	TotalAdValoremUSD float64 `json:"total_ad_valorem_usd"`

	// TotalCustomsValue is CIF + Ad Valorem (valor aduanero), the base
	// on which import VAT is charged.
	TotalCustomsValue float64 `json:"total_customs_value_clp"`

	VATOnCustomsValue  float64 `json:"vat_on_customs_value_clp"`
	VATOnLocalExpenses float64 `json:"vat_on_local_expenses_clp"`
	TotalVAT           float64 `json:"total_vat_clp"`

	TotalTaxes float64 `json:"total_taxes_clp"`

	TotalLocalExpensesCLP float64 `json:"total_local_expenses_clp"`

	// TotalCostCLP is the sum of the per-item totals, never recomputed
	// independently, so itemized and global figures cannot drift.
	TotalCostCLP float64 `json:"total_cost_clp"`

	SavingsWithTLC         float64 `json:"savings_with_tlc_clp"`
	HasCertificateOfOrigin bool    `json:"has_certificate_of_origin"`

	// RatesIncomplete is set when a rate the computation actually used
	// had to fall back to the identity default.
	RatesIncomplete bool `json:"rates_incomplete"`
}

// Result bundles the per-item breakdowns with the shipment summary.
type Result struct {
	Items   []ItemCost `json:"items"`
	Summary Summary    `json:"summary"`
}
