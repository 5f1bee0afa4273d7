package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/infrastructure/metrics"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrInvalidInvoiceID         = errors.New("invalid invoice id")
	ErrEstimateNotInvoiceable   = errors.New("estimate cannot be invoiced")
	ErrInvoiceNumberUnavailable = errors.New("invoice number unavailable")
)

// DefaultInvoiceGracePeriod is the due date offset applied when none is configured.
const DefaultInvoiceGracePeriod = 7 * 24 * time.Hour

const invoiceSequenceKind = "invoice"

// IInvoiceSynchronizer keeps exactly one invoice per job in step with the job estimate.
//
// EnsureInvoiceMirrorsEstimate is idempotent: with an unchanged estimate the second call writes nothing.
// The paid amount is never touched here; it belongs to payment recording.

type IInvoiceSynchronizer interface {
	EnsureInvoiceMirrorsEstimate(ctx context.Context, tenantID, estimateID string) (entities.Invoice, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Invoice, error)
	GetByJobID(ctx context.Context, tenantID, jobID string) (entities.Invoice, error)
}

type InvoiceSyncUseCase struct {
	repo         interfaces.IInvoiceRepository
	estimateRepo interfaces.IEstimateRepository
	sequence     interfaces.INumberSequence
	gracePeriod  time.Duration
	now          func() time.Time
}

var _ IInvoiceSynchronizer = (*InvoiceSyncUseCase)(nil)

func NewInvoiceSyncUseCase(repo interfaces.IInvoiceRepository, estimateRepo interfaces.IEstimateRepository, sequence interfaces.INumberSequence, gracePeriod time.Duration) *InvoiceSyncUseCase {
	if gracePeriod <= 0 {
		gracePeriod = DefaultInvoiceGracePeriod
	}
	return &InvoiceSyncUseCase{
		repo:         repo,
		estimateRepo: estimateRepo,
		sequence:     sequence,
		gracePeriod:  gracePeriod,
		now:          utcNow,
	}
}

func (u *InvoiceSyncUseCase) EnsureInvoiceMirrorsEstimate(ctx context.Context, tenantID, estimateID string) (entities.Invoice, error) {
	trimAll(&tenantID, &estimateID)
	if tenantID == "" {
		return entities.Invoice{}, ErrInvalidTenantID
	}
	if estimateID == "" {
		return entities.Invoice{}, ErrInvalidEstimateID
	}

	est, err := u.estimateRepo.GetByID(ctx, tenantID, estimateID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if est.ID == "" {
		return entities.Invoice{}, ErrEstimateNotFound
	}
	if est.Closed() {
		return entities.Invoice{}, fmt.Errorf("%w: estimate %s is %s", ErrEstimateNotInvoiceable, est.ID, est.Status)
	}

	for attempt := 1; attempt <= maxCASAttempts; attempt++ {
		existing, err := u.repo.GetByJobID(ctx, tenantID, est.JobID)
		if err != nil {
			return entities.Invoice{}, err
		}

		if existing.ID == "" {
			created, err := u.create(ctx, est)
			if errors.Is(err, interfaces.ErrAlreadyExists) {
				log.Printf("[invoice][usecase] concurrent create tenant=%s job_id=%s attempt=%d", tenantID, est.JobID, attempt)
				metrics.CASRetriesTotal.WithLabelValues("invoice").Inc()
				continue
			}
			return created, err
		}

		// A cancelled invoice is closed; it is not re-mirrored.
		if existing.Status == entities.InvoiceStatusCancelled {
			return existing, nil
		}

		now := u.now()
		mirrored := existing.MirrorTotals(est.Totals(), now)
		mirrored.EstimateID = est.ID
		if mirrored.SameAmounts(existing) && existing.EstimateID == est.ID {
			return existing, nil
		}
		mirrored.UpdatedAt = now

		updated, err := u.repo.Update(ctx, mirrored, existing.Version)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[invoice][usecase] mirror lost race tenant=%s invoice_id=%s attempt=%d", tenantID, existing.ID, attempt)
			metrics.CASRetriesTotal.WithLabelValues("invoice").Inc()
			continue
		}
		if err != nil {
			return entities.Invoice{}, err
		}
		log.Printf("[invoice][usecase] mirrored tenant=%s invoice_id=%s total=%s balance=%s status=%s", tenantID, updated.ID, updated.TotalAmount, updated.Balance, updated.Status)
		return updated, nil
	}

	return entities.Invoice{}, ErrConcurrentModification
}

func (u *InvoiceSyncUseCase) create(ctx context.Context, est entities.Estimate) (entities.Invoice, error) {
	n, err := u.sequence.Next(ctx, est.TenantID, invoiceSequenceKind)
	if err != nil {
		log.Printf("[invoice][usecase] sequence failed tenant=%s err=%v", est.TenantID, err)
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrInvoiceNumberUnavailable, err)
	}

	now := u.now()
	inv := entities.Invoice{
		ID:            uuid.NewString(),
		TenantID:      est.TenantID,
		JobID:         est.JobID,
		EstimateID:    est.ID,
		InvoiceNumber: fmt.Sprintf("INV-%06d", n),
		PaidAmount:    decimal.Zero,
		Status:        entities.InvoiceStatusPending,
		IssueDate:     now,
		DueDate:       now.Add(u.gracePeriod),
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	inv = inv.MirrorTotals(est.Totals(), now)

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] created tenant=%s job_id=%s invoice_id=%s number=%s total=%s", created.TenantID, created.JobID, created.ID, created.InvoiceNumber, created.TotalAmount)
	return created, nil
}

func (u *InvoiceSyncUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Invoice, error) {
	trimAll(&tenantID, &id)
	if tenantID == "" {
		return entities.Invoice{}, ErrInvalidTenantID
	}
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv.AsOf(u.now()), nil
}

func (u *InvoiceSyncUseCase) GetByJobID(ctx context.Context, tenantID, jobID string) (entities.Invoice, error) {
	trimAll(&tenantID, &jobID)
	if tenantID == "" {
		return entities.Invoice{}, ErrInvalidTenantID
	}
	if jobID == "" {
		return entities.Invoice{}, ErrInvalidJobID
	}

	inv, err := u.repo.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv.AsOf(u.now()), nil
}
