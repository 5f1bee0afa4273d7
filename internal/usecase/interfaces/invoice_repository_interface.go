package interfaces

import (
	"context"
	"garage_workflow/internal/domain/entities"
)

// IInvoiceRepository abstracts persistence for Invoice.
//
// Update and ApplyPayment are guarded by the invoice version read by the caller.
// ApplyPayment writes the invoice and appends the transaction as one atomic unit.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Invoice, error)
	GetByJobID(ctx context.Context, tenantID, jobID string) (entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice, expectedVersion int64) (entities.Invoice, error)
	ApplyPayment(ctx context.Context, inv entities.Invoice, expectedVersion int64, txn entities.PaymentTransaction) (entities.Invoice, error)
}
