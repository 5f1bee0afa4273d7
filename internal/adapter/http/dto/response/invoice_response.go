package response

import (
	"encoding/json"
	"time"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase"
)

type InvoiceResponse struct {
	ID             string    `json:"id"`
	InvoiceNumber  string    `json:"invoice_number"`
	JobID          string    `json:"job_id"`
	EstimateID     string    `json:"estimate_id"`
	Subtotal       string    `json:"subtotal"`
	TaxAmount      string    `json:"tax_amount"`
	DiscountAmount string    `json:"discount_amount"`
	TotalAmount    string    `json:"total_amount"`
	PaidAmount     string    `json:"paid_amount"`
	Balance        string    `json:"balance"`
	Status         string    `json:"status"`
	IssueDate      time.Time `json:"issue_date"`
	DueDate        time.Time `json:"due_date"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             i.ID,
		InvoiceNumber:  i.InvoiceNumber,
		JobID:          i.JobID,
		EstimateID:     i.EstimateID,
		Subtotal:       money(i.Subtotal),
		TaxAmount:      money(i.TaxAmount),
		DiscountAmount: money(i.DiscountAmount),
		TotalAmount:    money(i.TotalAmount),
		PaidAmount:     money(i.PaidAmount),
		Balance:        money(i.Balance),
		Status:         string(i.Status),
		IssueDate:      i.IssueDate,
		DueDate:        i.DueDate,
		UpdatedAt:      i.UpdatedAt,
	}
}

type PaymentTransactionResponse struct {
	ID                string          `json:"id"`
	InvoiceID         string          `json:"invoice_id"`
	Amount            string          `json:"amount"`
	Method            string          `json:"method"`
	Reference         string          `json:"reference,omitempty"`
	Status            string          `json:"status"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload,omitempty"`
	RecordedBy        string          `json:"recorded_by"`
	RecordedAt        time.Time       `json:"recorded_at"`
}

func FromPaymentTransaction(p entities.PaymentTransaction) PaymentTransactionResponse {
	return PaymentTransactionResponse{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		Amount:            money(p.Amount),
		Method:            string(p.Method),
		Reference:         p.Reference,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderPayload:   p.ProviderPayloadRaw,
		RecordedBy:        p.RecordedBy,
		RecordedAt:        p.RecordedAt,
	}
}

func FromPaymentTransactions(ps []entities.PaymentTransaction) []PaymentTransactionResponse {
	out := make([]PaymentTransactionResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPaymentTransaction(p))
	}
	return out
}

type PaymentReceiptResponse struct {
	Invoice     InvoiceResponse            `json:"invoice"`
	Transaction PaymentTransactionResponse `json:"transaction"`
}

func FromPaymentReceipt(r usecase.PaymentReceipt) PaymentReceiptResponse {
	return PaymentReceiptResponse{
		Invoice:     FromInvoice(r.Invoice),
		Transaction: FromPaymentTransaction(r.Transaction),
	}
}
