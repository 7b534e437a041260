package landedcost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		line CostLine
		want CostLineRole
	}{
		{"flete keyword", CostLine{Description: "Flete marítimo Shanghai", Currency: USD}, RoleFreight},
		{"freight keyword", CostLine{Description: "Ocean freight", Currency: USD}, RoleFreight},
		{"freight category", CostLine{Description: "BL charges", Category: "Freight", Currency: USD}, RoleFreight},
		{"seguro keyword", CostLine{Description: "Seguro de carga", Currency: USD}, RoleInsurance},
		{"insurance keyword", CostLine{Description: "Cargo insurance", Currency: USD}, RoleInsurance},
		{"insurance category", CostLine{Description: "Poliza", Category: "insurance", Currency: EUR}, RoleInsurance},
		{"freight beats insurance", CostLine{Description: "Seguro de Flete", Currency: USD}, RoleFreight},
		{"usd other import", CostLine{Description: "Gastos agencia", Currency: USD}, RoleOtherImport},
		{"eur other import", CostLine{Description: "Certificación", Currency: EUR}, RoleOtherImport},
		{"gbp other import", CostLine{Description: "Inspección", Currency: GBP}, RoleOtherImport},
		{"clp local", CostLine{Description: "Bodegaje puerto", Currency: CLP}, RoleLocal},
		{"case insensitive", CostLine{Description: "FLETE AEREO", Currency: USD}, RoleFreight},
		{"explicit role wins", CostLine{Description: "Flete", Currency: USD, Role: RoleLocal}, RoleLocal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classify(tc.line))
		})
	}
}
