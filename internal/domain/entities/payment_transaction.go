package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the outcome of a payment attempt.
type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodCard        PaymentMethod = "card"
	PaymentMethodBank        PaymentMethod = "bank_transfer"
	PaymentMethodUPI         PaymentMethod = "upi"
	PaymentMethodMercadoPago PaymentMethod = "mercadopago"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBank, PaymentMethodUPI, PaymentMethodMercadoPago:
		return true
	}
	return false
}

// PaymentTransaction is an append-only record against an invoice.
// The sum of succeeded transactions equals the invoice paid amount.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: id
//   - GSI (invoice_id-index): invoice_id
//
// ProviderPayloadRaw keeps the payment provider response for traceability.
type PaymentTransaction struct {
	ID                 string          `json:"id"`
	TenantID           string          `json:"tenant_id"`
	InvoiceID          string          `json:"invoice_id"`
	Amount             decimal.Decimal `json:"amount"`
	Method             PaymentMethod   `json:"method"`
	Reference          string          `json:"reference,omitempty"`
	Status             PaymentStatus   `json:"status"`
	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	RecordedBy         string          `json:"recorded_by"`
	RecordedAt         time.Time       `json:"recorded_at"`
}
