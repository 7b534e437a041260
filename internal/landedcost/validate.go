package landedcost

import "fmt"

// ValidationError names the input field that makes a calculation
// meaningless. The engine rejects before computing rather than letting
// negative or unknown values corrupt the aggregates.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validate(in Input) error {
	src := in.SourceCurrency
	if src == "" {
		src = USD
	}
	if !src.Valid() {
		return &ValidationError{
			Field:   "source_currency",
			Message: fmt.Sprintf("unknown currency '%s'", in.SourceCurrency),
		}
	}

	for i, item := range in.Items {
		if item.Quantity < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: fmt.Sprintf("must not be negative, got %d", item.Quantity),
			}
		}
		if item.UnitPriceFOB < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("items[%d].unit_price_fob", i),
				Message: fmt.Sprintf("must not be negative, got %v", item.UnitPriceFOB),
			}
		}
	}

	for i, line := range in.CostLines {
		if line.Description == "" && line.Role == RoleAuto {
			return &ValidationError{
				Field:   fmt.Sprintf("cost_lines[%d].description", i),
				Message: "must not be empty when no explicit role is set",
			}
		}
		if !line.Currency.Valid() {
			return &ValidationError{
				Field:   fmt.Sprintf("cost_lines[%d].currency", i),
				Message: fmt.Sprintf("unknown currency '%s'", line.Currency),
			}
		}
		if line.Amount < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("cost_lines[%d].amount", i),
				Message: fmt.Sprintf("must not be negative, got %v", line.Amount),
			}
		}
		switch line.Role {
		case RoleAuto, RoleFreight, RoleInsurance, RoleOtherImport, RoleLocal:
		default:
			return &ValidationError{
				Field:   fmt.Sprintf("cost_lines[%d].role", i),
				Message: fmt.Sprintf("unknown role '%s'", line.Role),
			}
		}
	}

	return nil
}
