package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// InventoryValue returns the monetary value of all product stock,
// computed in decimal arithmetic so unit costs like 0.1 do not drift.
func (s *Store) InventoryValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.snap.Products {
		unit := decimal.NewFromFloat(p.UnitCost)
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(p.StockLevel))))
	}
	return total.Round(2)
}

// FormatCurrency renders a decimal amount as a dollar string with
// thousands separators, e.g. 1234567.5 -> "$1,234,567.50".
func FormatCurrency(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s", sign, b.String(), fracPart)
}
