package response

import "github.com/shopspring/decimal"

// money renders amounts with two decimals ("1100.00").
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
