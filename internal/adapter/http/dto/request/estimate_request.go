package request

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingDiscount = errors.New("discount is required")
)

// CreateEstimateRequest is optional: an empty body calculates the estimate without discount.
type CreateEstimateRequest struct {
	Discount *decimal.Decimal `json:"discount"`
}

func (r CreateEstimateRequest) ResolveDiscount() decimal.Decimal {
	if r.Discount == nil {
		return decimal.Zero
	}
	return *r.Discount
}

type DiscountRequest struct {
	Discount *decimal.Decimal `json:"discount"`
}

func (r DiscountRequest) ResolveDiscount() (decimal.Decimal, error) {
	if r.Discount == nil {
		return decimal.Zero, ErrMissingDiscount
	}
	return *r.Discount, nil
}
