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

	"github.com/shopspring/decimal"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidJobID      = errors.New("invalid job id")
	ErrInvalidJobStatus  = errors.New("invalid job status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrJobLocked         = errors.New("job is locked")
)

const notifyTimeout = 10 * time.Second

type TransitionOutcome string

const (
	OutcomeApplied         TransitionOutcome = "applied"
	OutcomePaymentRequired TransitionOutcome = "payment_required"
)

// PaymentRequired is returned instead of completing a job whose invoice still carries a balance.
type PaymentRequired struct {
	InvoiceID     string
	InvoiceNumber string
	JobNumber     string
	Balance       decimal.Decimal
}

// TransitionResult is the non-error outcome of TransitionStatus.
// OutcomeApplied carries the (possibly unchanged) job; OutcomePaymentRequired carries PaymentRequired and the job
// as it was read.
type TransitionResult struct {
	Outcome         TransitionOutcome
	Job             entities.Job
	PaymentRequired *PaymentRequired
}

// IJobLifecycleEngine moves jobs through the workflow.
//
//	received  -> received, working, cancelled
//	working   -> received, working, ready, cancelled
//	ready     -> working, ready, completed, cancelled
//	completed -> (locked)
//	cancelled -> (locked)
//
// Completing requires a settled invoice mirroring the job estimate. After a committed change the engine settles
// stock (consume on completed, release on cancelled) and emits a customer notification for ready/completed
// without waiting for it.

type IJobLifecycleEngine interface {
	TransitionStatus(ctx context.Context, tenantID, jobID string, target entities.JobStatus, actor string) (TransitionResult, error)
}

type JobLifecycleEngine struct {
	jobRepo   interfaces.IJobRepository
	estimates IEstimateUseCase
	invoices  IInvoiceSynchronizer
	tasks     ITaskLedger
	notifier  interfaces.INotificationPort
	settings  interfaces.INotificationSettingsProvider
	dispatch  func(func())
	now       func() time.Time
}

var _ IJobLifecycleEngine = (*JobLifecycleEngine)(nil)

func NewJobLifecycleEngine(
	jobRepo interfaces.IJobRepository,
	estimates IEstimateUseCase,
	invoices IInvoiceSynchronizer,
	tasks ITaskLedger,
	notifier interfaces.INotificationPort,
	settings interfaces.INotificationSettingsProvider,
) *JobLifecycleEngine {
	return &JobLifecycleEngine{
		jobRepo:   jobRepo,
		estimates: estimates,
		invoices:  invoices,
		tasks:     tasks,
		notifier:  notifier,
		settings:  settings,
		dispatch:  func(f func()) { go f() },
		now:       utcNow,
	}
}

func (e *JobLifecycleEngine) TransitionStatus(ctx context.Context, tenantID, jobID string, target entities.JobStatus, actor string) (TransitionResult, error) {
	trimAll(&tenantID, &jobID, &actor)
	log.Printf("[job][usecase] transition start tenant=%s job_id=%s target=%s actor=%s", tenantID, jobID, target, actor)
	if tenantID == "" {
		return TransitionResult{}, ErrInvalidTenantID
	}
	if jobID == "" {
		return TransitionResult{}, ErrInvalidJobID
	}
	if !target.Valid() {
		return TransitionResult{}, ErrInvalidJobStatus
	}

	for attempt := 1; attempt <= maxCASAttempts; attempt++ {
		job, err := e.jobRepo.GetByID(ctx, tenantID, jobID)
		if err != nil {
			return TransitionResult{}, err
		}
		if job.ID == "" {
			return TransitionResult{}, ErrJobNotFound
		}

		from := job.Status
		if from.Locked() {
			metrics.JobTransitionsTotal.WithLabelValues(string(from), string(target), "rejected").Inc()
			return TransitionResult{}, fmt.Errorf("%w: job %s is %s", ErrJobLocked, job.ID, from)
		}
		if !from.CanTransitionTo(target) {
			metrics.JobTransitionsTotal.WithLabelValues(string(from), string(target), "rejected").Inc()
			return TransitionResult{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, target)
		}
		if from == target {
			metrics.JobTransitionsTotal.WithLabelValues(string(from), string(target), "noop").Inc()
			return TransitionResult{Outcome: OutcomeApplied, Job: job}, nil
		}

		var invoice *entities.Invoice
		if target == entities.JobStatusCompleted {
			inv, err := e.mirroredInvoice(ctx, job)
			if err != nil {
				return TransitionResult{}, err
			}
			if !inv.Settled() {
				log.Printf("[job][usecase] payment required tenant=%s job_id=%s invoice_id=%s balance=%s", tenantID, job.ID, inv.ID, inv.Balance)
				metrics.JobTransitionsTotal.WithLabelValues(string(from), string(target), string(OutcomePaymentRequired)).Inc()
				return TransitionResult{
					Outcome: OutcomePaymentRequired,
					Job:     job,
					PaymentRequired: &PaymentRequired{
						InvoiceID:     inv.ID,
						InvoiceNumber: inv.InvoiceNumber,
						JobNumber:     job.JobNumber,
						Balance:       inv.Balance,
					},
				}, nil
			}
			invoice = &inv
		}

		saved, err := e.jobRepo.UpdateStatus(ctx, job.WithStatus(target, e.now()), from)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[job][usecase] transition lost race tenant=%s job_id=%s from=%s attempt=%d", tenantID, job.ID, from, attempt)
			metrics.CASRetriesTotal.WithLabelValues("job").Inc()
			continue
		}
		if err != nil {
			return TransitionResult{}, err
		}

		metrics.JobTransitionsTotal.WithLabelValues(string(from), string(target), string(OutcomeApplied)).Inc()
		log.Printf("[job][usecase] transition applied tenant=%s job_id=%s from=%s to=%s", tenantID, saved.ID, from, saved.Status)

		e.settle(ctx, saved, actor)
		e.notify(ctx, saved, invoice)
		return TransitionResult{Outcome: OutcomeApplied, Job: saved}, nil
	}

	metrics.JobTransitionsTotal.WithLabelValues("", string(target), "conflict").Inc()
	return TransitionResult{}, ErrConcurrentModification
}

// mirroredInvoice returns the job invoice brought in line with the estimate, after the estimate itself has been
// re-derived from the billable tasks. Work approved since the last calculation is billed before completion.
func (e *JobLifecycleEngine) mirroredInvoice(ctx context.Context, job entities.Job) (entities.Invoice, error) {
	est, err := e.estimates.GetByJobID(ctx, job.TenantID, job.ID)
	if errors.Is(err, ErrEstimateNotFound) {
		return entities.Invoice{}, fmt.Errorf("%w: job %s has no estimate to bill", ErrEstimateNotFound, job.ID)
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	if !est.Closed() {
		if est, err = e.estimates.Recalculate(ctx, job.TenantID, job.ID); err != nil {
			return entities.Invoice{}, err
		}
	}
	return e.invoices.EnsureInvoiceMirrorsEstimate(ctx, job.TenantID, est.ID)
}

// settle applies the stock side effects of a closed job. The transition is already committed, so failures are
// logged and counted only.
func (e *JobLifecycleEngine) settle(ctx context.Context, job entities.Job, actor string) {
	if !job.Status.Locked() {
		return
	}
	if err := e.tasks.SettleJobTasks(ctx, job.TenantID, job.ID, job.Status, actor); err != nil {
		log.Printf("[job][usecase] settlement failed tenant=%s job_id=%s status=%s err=%v", job.TenantID, job.ID, job.Status, err)
		metrics.SettlementFailuresTotal.WithLabelValues(string(job.Status)).Inc()
	}
}

// notify hands the customer event to the dispatcher and returns immediately.
func (e *JobLifecycleEngine) notify(ctx context.Context, job entities.Job, invoice *entities.Invoice) {
	kind, ok := entities.NotificationEventFor(job.Status)
	if !ok || e.notifier == nil || e.settings == nil {
		return
	}

	params := map[string]string{
		"job_number":    job.JobNumber,
		"customer_name": job.CustomerName,
		"vehicle":       job.Vehicle,
		"status":        string(job.Status),
	}
	if invoice != nil {
		params["invoice_number"] = invoice.InvoiceNumber
		params["balance"] = invoice.Balance.StringFixed(2)
	}
	bg := context.WithoutCancel(ctx)

	e.dispatch(func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[job][notify] panic recovered tenant=%s job_id=%s event=%s panic=%v", job.TenantID, job.ID, kind, r)
				metrics.NotificationsTotal.WithLabelValues(string(kind), "failed").Inc()
			}
		}()

		nctx, cancel := context.WithTimeout(bg, notifyTimeout)
		defer cancel()

		settings, err := e.settings.Get(nctx, job.TenantID)
		if err != nil {
			log.Printf("[job][notify] settings lookup failed tenant=%s err=%v", job.TenantID, err)
			metrics.NotificationsTotal.WithLabelValues(string(kind), "failed").Inc()
			return
		}
		if !settings.SendsAutomatically() || job.CustomerEmail == "" {
			metrics.NotificationsTotal.WithLabelValues(string(kind), "skipped").Inc()
			return
		}

		if err := e.notifier.SendEventNotification(nctx, settings, kind, job.CustomerEmail, params); err != nil {
			log.Printf("[job][notify] send failed tenant=%s job_id=%s event=%s err=%v", job.TenantID, job.ID, kind, err)
			metrics.NotificationsTotal.WithLabelValues(string(kind), "failed").Inc()
			return
		}
		metrics.NotificationsTotal.WithLabelValues(string(kind), "sent").Inc()
		log.Printf("[job][notify] sent tenant=%s job_id=%s event=%s", job.TenantID, job.ID, kind)
	})
}

// ensureJobOpen fails unless the job exists and is not closed.
func ensureJobOpen(ctx context.Context, repo interfaces.IJobRepository, tenantID, jobID string) error {
	job, err := repo.GetByID(ctx, tenantID, jobID)
	if err != nil {
		return err
	}
	if job.ID == "" {
		return ErrJobNotFound
	}
	if job.Status.Locked() {
		return fmt.Errorf("%w: job %s is %s", ErrJobLocked, job.ID, job.Status)
	}
	return nil
}
