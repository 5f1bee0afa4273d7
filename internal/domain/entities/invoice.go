package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "pending"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

// Invoice mirrors the estimate of a job and tracks payment progress.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: job_id (at most one invoice per job)
//   - GSI (id-index): id
//
// Balance is always TotalAmount - PaidAmount. PaidAmount changes only through RecordPayment.
// Version guards every conditional write.
type Invoice struct {
	ID             string          `json:"id"`
	TenantID       string          `json:"tenant_id"`
	JobID          string          `json:"job_id"`
	EstimateID     string          `json:"estimate_id"`
	InvoiceNumber  string          `json:"invoice_number"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	Balance        decimal.Decimal `json:"balance"`
	Status         InvoiceStatus   `json:"status"`
	IssueDate      time.Time       `json:"issue_date"`
	DueDate        time.Time       `json:"due_date"`
	Version        int64           `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Settled reports the effective "fully paid" state used by the completion guardrail.
func (i Invoice) Settled() bool {
	return i.Status == InvoiceStatusPaid || !i.Balance.IsPositive()
}

// Payable reports whether a payment may be applied to the invoice.
func (i Invoice) Payable() bool {
	return i.Status != InvoiceStatusPaid && i.Status != InvoiceStatusCancelled
}

// DeriveStatus computes the status implied by the amounts at now.
func (i Invoice) DeriveStatus(now time.Time) InvoiceStatus {
	switch {
	case i.Status == InvoiceStatusCancelled:
		return InvoiceStatusCancelled
	case !i.Balance.IsPositive():
		return InvoiceStatusPaid
	case !i.DueDate.IsZero() && now.After(i.DueDate):
		return InvoiceStatusOverdue
	case i.PaidAmount.IsPositive():
		return InvoiceStatusPartiallyPaid
	default:
		return InvoiceStatusPending
	}
}

// AsOf returns i with an open status re-derived at now. The stored status only changes on writes, so an unpaid
// invoice past its due date reads as overdue here before any write marks it.
func (i Invoice) AsOf(now time.Time) Invoice {
	switch i.Status {
	case InvoiceStatusPending, InvoiceStatusPartiallyPaid, InvoiceStatusOverdue:
		i.Status = i.DeriveStatus(now)
	}
	return i
}

// MirrorTotals returns a copy of i carrying the estimate totals, with the balance recomputed from the existing
// paid amount. A non-positive balance forces paid. A formerly paid invoice whose balance became positive again is
// re-derived; any other status is kept.
func (i Invoice) MirrorTotals(t EstimateTotals, now time.Time) Invoice {
	i.Subtotal = t.Subtotal
	i.TaxAmount = t.TaxAmount
	i.DiscountAmount = t.DiscountAmount
	i.TotalAmount = t.TotalAmount
	i.Balance = i.TotalAmount.Sub(i.PaidAmount)

	switch {
	case !i.Balance.IsPositive():
		i.Status = InvoiceStatusPaid
	case i.Status == InvoiceStatusPaid:
		i.Status = i.DeriveStatus(now)
	}
	return i
}

// ApplyPayment returns a copy of i with amount added to the paid amount and status re-derived.
// Callers validate 0 < amount <= balance beforehand.
func (i Invoice) ApplyPayment(amount decimal.Decimal, now time.Time) Invoice {
	i.PaidAmount = i.PaidAmount.Add(amount)
	i.Balance = i.TotalAmount.Sub(i.PaidAmount)
	i.Status = i.DeriveStatus(now)
	i.UpdatedAt = now
	return i
}

// SameAmounts reports whether two invoices carry identical amounts and status.
func (i Invoice) SameAmounts(o Invoice) bool {
	return i.Subtotal.Equal(o.Subtotal) &&
		i.TaxAmount.Equal(o.TaxAmount) &&
		i.DiscountAmount.Equal(o.DiscountAmount) &&
		i.TotalAmount.Equal(o.TotalAmount) &&
		i.PaidAmount.Equal(o.PaidAmount) &&
		i.Balance.Equal(o.Balance) &&
		i.Status == o.Status
}
