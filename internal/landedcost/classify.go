package landedcost

import "strings"

// classify decides which proration pool a cost line feeds. An explicit
// role set at data entry always wins; the keyword matcher is the
// best-effort default for legacy rows that only carry free text.
//
// Keyword matching is case-insensitive substring search, first match
// wins, freight checked before insurance ("Seguro de Flete" is freight).
func classify(line CostLine) CostLineRole {
	if line.Role != RoleAuto {
		return line.Role
	}

	desc := strings.ToLower(line.Description)
	cat := strings.ToLower(line.Category)

	switch {
	case strings.Contains(desc, "flete"),
		strings.Contains(desc, "freight"),
		strings.Contains(cat, "freight"):
		return RoleFreight
	case strings.Contains(desc, "seguro"),
		strings.Contains(desc, "insurance"),
		strings.Contains(cat, "insurance"):
		return RoleInsurance
	case line.Currency == CLP:
		return RoleLocal
	default:
		// Any unmatched foreign-currency expense joins the CIF pool.
		return RoleOtherImport
	}
}
