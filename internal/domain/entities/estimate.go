package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of an estimate.
type EstimateStatus string

const (
	EstimateStatusPending   EstimateStatus = "pending"
	EstimateStatusApproved  EstimateStatus = "approved"
	EstimateStatusRejected  EstimateStatus = "rejected"
	EstimateStatusCancelled EstimateStatus = "cancelled"
)

// Estimate is the customer-facing quote of a job. Its totals are the source of truth the invoice mirrors.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: job_id (one estimate per job)
//   - GSI (id-index): id
type Estimate struct {
	ID             string          `json:"id"`
	TenantID       string          `json:"tenant_id"`
	JobID          string          `json:"job_id"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         EstimateStatus  `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// EstimateTotals is the subtotal/tax/discount/total quadruple shared by estimates and invoices.
type EstimateTotals struct {
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
}

// SumTasks aggregates the billable tasks. Labor and parts both count towards the subtotal; only parts are taxed.
// The discount is capped so the total never goes negative.
func SumTasks(tasks []Task, discount decimal.Decimal) EstimateTotals {
	subtotal, tax := decimal.Zero, decimal.Zero
	for _, t := range tasks {
		if !t.Billable() {
			continue
		}
		tt := t.Totals()
		subtotal = subtotal.Add(tt.PartsSubtotal).Add(tt.Labor)
		tax = tax.Add(tt.PartsTax)
	}

	gross := subtotal.Add(tax)
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(gross) {
		discount = gross
	}

	return EstimateTotals{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		DiscountAmount: discount,
		TotalAmount:    gross.Sub(discount),
	}
}

// Closed reports whether the estimate was rejected or cancelled; closed estimates are neither refreshed nor billed.
func (e Estimate) Closed() bool {
	return e.Status == EstimateStatusRejected || e.Status == EstimateStatusCancelled
}

func (e Estimate) Totals() EstimateTotals {
	return EstimateTotals{
		Subtotal:       e.Subtotal,
		TaxAmount:      e.TaxAmount,
		DiscountAmount: e.DiscountAmount,
		TotalAmount:    e.TotalAmount,
	}
}

// Equal compares amounts numerically (1100 == 1100.00).
func (t EstimateTotals) Equal(o EstimateTotals) bool {
	return t.Subtotal.Equal(o.Subtotal) &&
		t.TaxAmount.Equal(o.TaxAmount) &&
		t.DiscountAmount.Equal(o.DiscountAmount) &&
		t.TotalAmount.Equal(o.TotalAmount)
}
