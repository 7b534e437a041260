package landedcost

// Calculate runs the full landed-cost computation for one shipment.
//
// The official view (CIF, Ad Valorem, VAT) is computed in USD at customs
// and cross rates, then valued in CLP at the customs USD rate. The real
// view converts FOB and expenses at purchase rates. Freight, insurance,
// other import costs and local expenses prorate across items by FOB value
// share; duty and VAT prorate by quantity share, a policy kept for
// compatibility with the reports built on top of it.
func Calculate(in Input) (*Result, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	src := in.SourceCurrency
	if src == "" {
		src = USD
	}
	policy := in.Policy
	if policy == (TaxPolicy{}) {
		policy = DefaultTaxPolicy()
	}

	r := resolveRates(in.Rates)

	// Cost line pools, in customs-USD and real-CLP terms.
	var (
		totalFreightUSD   float64
		totalInsuranceUSD float64
		totalOtherUSD     float64
		totalLocalCLP     float64
		totalFreightCLP   float64
		totalInsuranceCLP float64
		totalOtherCLP     float64
	)

	for _, line := range in.CostLines {
		switch classify(line) {
		case RoleFreight:
			totalFreightUSD += r.toUSDForCustoms(line.Amount, line.Currency)
			totalFreightCLP += r.toCLPReal(line.Amount, line.Currency)
		case RoleInsurance:
			totalInsuranceUSD += r.toUSDForCustoms(line.Amount, line.Currency)
			totalInsuranceCLP += r.toCLPReal(line.Amount, line.Currency)
		case RoleOtherImport:
			totalOtherUSD += r.toUSDForCustoms(line.Amount, line.Currency)
			totalOtherCLP += r.toCLPReal(line.Amount, line.Currency)
		case RoleLocal:
			totalLocalCLP += r.toCLPReal(line.Amount, line.Currency)
		}
	}

	// Item FOB bases.
	type itemBase struct {
		Item
		fobSource  float64
		fobUSD     float64
		fobCLPReal float64
	}

	var (
		totalFOBSource  float64
		totalFOBUSD     float64
		totalFOBCLPReal float64
		totalUnits      int
	)

	bases := make([]itemBase, len(in.Items))
	for i, item := range in.Items {
		fobSource := float64(item.Quantity) * item.UnitPriceFOB
		fobUSD := r.toUSDForCustoms(fobSource, src)
		fobCLPReal := r.toCLPReal(fobSource, src)

		totalFOBSource += fobSource
		totalFOBUSD += fobUSD
		totalFOBCLPReal += fobCLPReal
		totalUnits += item.Quantity

		bases[i] = itemBase{Item: item, fobSource: fobSource, fobUSD: fobUSD, fobCLPReal: fobCLPReal}
	}

	// Official customs valuation.
	totalCIFUSD := totalFOBUSD + totalFreightUSD + totalInsuranceUSD + totalOtherUSD
	totalCIFCLP := r.usdToCLPCustoms(totalCIFUSD)

	adValoremRate := policy.AdValoremRate
	if in.HasCertificateOfOrigin {
		adValoremRate = 0
	}
	totalAdValorem := totalCIFCLP * adValoremRate
	totalAdValoremUSD := totalCIFUSD * adValoremRate
	totalCustomsValue := totalCIFCLP + totalAdValorem
	vatOnCustomsValue := totalCustomsValue * policy.VATRate
	vatOnLocalExpenses := totalLocalCLP * policy.VATRate
	totalVAT := vatOnCustomsValue + vatOnLocalExpenses
	totalTaxes := totalAdValorem + vatOnCustomsValue

	// What the certificate would be worth: taxes as charged now minus
	// the VAT that would remain with the exemption in force. Once the
	// exemption applies the savings are already banked, so it reads 0.
	savings := 0.0
	if !in.HasCertificateOfOrigin {
		vatWithCertificate := totalCIFCLP * policy.VATRate
		savings = totalTaxes - vatWithCertificate
	}

	// Proration. VAT stays out of the landed cost: it is a recoverable
	// input-tax credit, not a cost of goods.
	items := make([]ItemCost, len(bases))
	var totalCostCLP float64
	for i, b := range bases {
		valueFactor := 0.0
		if totalFOBUSD > 0 {
			valueFactor = b.fobUSD / totalFOBUSD
		}
		qtyFactor := 0.0
		if totalUnits > 0 {
			qtyFactor = float64(b.Quantity) / float64(totalUnits)
		}

		freightReal := totalFreightCLP * valueFactor
		insuranceReal := totalInsuranceCLP * valueFactor
		otherReal := totalOtherCLP * valueFactor
		localPart := totalLocalCLP * valueFactor

		itemAdValorem := totalAdValorem * qtyFactor
		itemVAT := totalVAT * qtyFactor

		cifUSD := b.fobUSD + (totalFreightUSD+totalInsuranceUSD+totalOtherUSD)*valueFactor
		cifCLP := r.usdToCLPCustoms(cifUSD)

		costCLP := b.fobCLPReal + freightReal + insuranceReal + otherReal + itemAdValorem + localPart
		unitCost := 0.0
		if b.Quantity > 0 {
			unitCost = costCLP / float64(b.Quantity)
		}

		items[i] = ItemCost{
			ID:          b.ID,
			SKU:         b.SKU,
			ProductName: b.ProductName,
			Quantity:    b.Quantity,

			FOBTotalSource:  b.fobSource,
			FOBTotalUSD:     b.fobUSD,
			FOBTotalCLPReal: b.fobCLPReal,

			FreightProrated:     freightReal,
			InsuranceProrated:   insuranceReal,
			OtherImportProrated: otherReal,

			CIFTotalUSD: cifUSD,
			CIFTotalCLP: cifCLP,

			AdValorem:  itemAdValorem,
			VAT:        itemVAT,
			TotalTaxes: itemAdValorem + itemVAT,

			LocalExpensesProrated: localPart,

			TotalCostCLP: costCLP,
			UnitCostCLP:  unitCost,
		}
		totalCostCLP += costCLP
	}

	return &Result{
		Items: items,
		Summary: Summary{
			TotalFOBSource: totalFOBSource,
			TotalFOBUSD:    totalFOBUSD,

			TotalFreightUSD:   totalFreightUSD,
			TotalInsuranceUSD: totalInsuranceUSD,

			TotalCIFUSD: totalCIFUSD,
			TotalCIFCLP: totalCIFCLP,

			TotalAdValorem:    totalAdValorem,
			TotalAdValoremUSD: totalAdValoremUSD,

			TotalCustomsValue: totalCustomsValue,

			VATOnCustomsValue:  vatOnCustomsValue,
			VATOnLocalExpenses: vatOnLocalExpenses,
			TotalVAT:           totalVAT,

			TotalTaxes: totalTaxes,

			TotalLocalExpensesCLP: totalLocalCLP,

			TotalCostCLP: totalCostCLP,

			SavingsWithTLC:         savings,
			HasCertificateOfOrigin: in.HasCertificateOfOrigin,

			RatesIncomplete: r.incomplete,
		},
	}, nil
}
