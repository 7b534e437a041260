package landedcost

// rates is the RateSet normalized into concrete customs, purchase and
// cross lanes. Resolution never fails: a lane with no usable value
// defaults to 1 and is remembered as defaulted, so the engine can flag
// the result as computed from incomplete rates when that lane actually
// gets used.
type rates struct {
	customsUSD float64
	customsEUR float64
	customsGBP float64

	purchaseUSD float64
	purchaseEUR float64
	purchaseGBP float64

	crossEURToUSD float64
	crossGBPToUSD float64

	customsDefaulted  map[Currency]bool
	purchaseDefaulted map[Currency]bool
	crossDefaulted    map[Currency]bool

	incomplete bool
}

// resolveLane picks the lane-specific value when usable, then the legacy
// flattened rate, then the identity default. Non-positive values are
// never usable: a zero rate would turn into a zero divisor downstream.
func resolveLane(lane *float64, legacy float64) (float64, bool) {
	if lane != nil && *lane > 0 {
		return *lane, false
	}
	if legacy > 0 {
		return legacy, false
	}
	return 1, true
}

func resolveRates(rs RateSet) *rates {
	r := &rates{
		customsDefaulted:  make(map[Currency]bool),
		purchaseDefaulted: make(map[Currency]bool),
		crossDefaulted:    make(map[Currency]bool),
	}

	r.customsUSD, r.customsDefaulted[USD] = resolveLane(rs.CustomsUSD, rs.USD)
	r.customsEUR, r.customsDefaulted[EUR] = resolveLane(rs.CustomsEUR, rs.EUR)
	r.customsGBP, r.customsDefaulted[GBP] = resolveLane(rs.CustomsGBP, rs.GBP)

	// Purchase lanes fall back to customs, which keeps shipments created
	// before the dual-rate split calculating as they always did.
	r.purchaseUSD, r.purchaseDefaulted[USD] = resolvePurchase(rs.PurchaseUSD, r.customsUSD, r.customsDefaulted[USD])
	r.purchaseEUR, r.purchaseDefaulted[EUR] = resolvePurchase(rs.PurchaseEUR, r.customsEUR, r.customsDefaulted[EUR])
	r.purchaseGBP, r.purchaseDefaulted[GBP] = resolvePurchase(rs.PurchaseGBP, r.customsGBP, r.customsDefaulted[GBP])

	// Cross rates derive from the customs lanes when not given. The
	// derived factor is an approximation of the real FX cross, good
	// enough for CIF-equivalent valuation.
	den := r.customsUSD
	if den == 0 {
		den = 1
	}
	if rs.CrossEURToUSD != nil && *rs.CrossEURToUSD > 0 {
		r.crossEURToUSD = *rs.CrossEURToUSD
	} else {
		r.crossEURToUSD = r.customsEUR / den
		r.crossDefaulted[EUR] = r.customsDefaulted[EUR] || r.customsDefaulted[USD]
	}
	if rs.CrossGBPToUSD != nil && *rs.CrossGBPToUSD > 0 {
		r.crossGBPToUSD = *rs.CrossGBPToUSD
	} else {
		r.crossGBPToUSD = r.customsGBP / den
		r.crossDefaulted[GBP] = r.customsDefaulted[GBP] || r.customsDefaulted[USD]
	}

	return r
}

func resolvePurchase(lane *float64, customs float64, customsDefaulted bool) (float64, bool) {
	if lane != nil && *lane > 0 {
		return *lane, false
	}
	return customs, customsDefaulted
}

func (r *rates) customs(c Currency) float64 {
	if r.customsDefaulted[c] {
		r.incomplete = true
	}
	switch c {
	case USD:
		return r.customsUSD
	case EUR:
		return r.customsEUR
	case GBP:
		return r.customsGBP
	}
	return 1
}

func (r *rates) purchase(c Currency) float64 {
	if r.purchaseDefaulted[c] {
		r.incomplete = true
	}
	switch c {
	case USD:
		return r.purchaseUSD
	case EUR:
		return r.purchaseEUR
	case GBP:
		return r.purchaseGBP
	}
	return 1
}

func (r *rates) crossToUSD(c Currency) float64 {
	if r.crossDefaulted[c] {
		r.incomplete = true
	}
	switch c {
	case EUR:
		return r.crossEURToUSD
	case GBP:
		return r.crossGBPToUSD
	}
	return 1
}

// toUSDForCustoms converts an amount to USD using the official lanes.
// All duty and CIF math goes through here. Converting zero exercises no
// rate, so it cannot mark the rate set incomplete.
func (r *rates) toUSDForCustoms(amount float64, c Currency) float64 {
	if amount == 0 {
		return 0
	}
	switch c {
	case USD:
		return amount
	case EUR, GBP:
		return amount * r.crossToUSD(c)
	case CLP:
		return amount / r.customs(USD)
	}
	return 0
}

// toCLPReal converts an amount to CLP at the rates the importer actually
// paid for foreign currency.
func (r *rates) toCLPReal(amount float64, c Currency) float64 {
	if amount == 0 {
		return 0
	}
	switch c {
	case CLP:
		return amount
	case USD, EUR, GBP:
		return amount * r.purchase(c)
	}
	return 0
}

// usdToCLPCustoms values a customs-USD amount in CLP at the official USD
// rate.
func (r *rates) usdToCLPCustoms(amount float64) float64 {
	if amount == 0 {
		return 0
	}
	return amount * r.customs(USD)
}
