package interfaces

import (
	"context"
	"garage_workflow/internal/domain/entities"
)

// IPaymentTransactionRepository is the append-only payment log.
// Succeeded transactions are written by IInvoiceRepository.ApplyPayment; Create only records failed attempts.

type IPaymentTransactionRepository interface {
	Create(ctx context.Context, p entities.PaymentTransaction) (entities.PaymentTransaction, error)
	ListByInvoiceID(ctx context.Context, tenantID, invoiceID string) ([]entities.PaymentTransaction, error)
}
