package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrEstimateAlreadyExists = errors.New("estimate already exists")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrInvalidDiscount       = errors.New("invalid discount")
	ErrInvalidEstimateState  = errors.New("invalid estimate state")
)

// IEstimateUseCase exposes the quote of a job.
//
// Totals are always derived from the job's billable tasks (APPROVED or COMPLETED, not deleted):
//   - CalculateEstimate creates the single estimate of a job
//   - Recalculate refreshes totals after task changes, keeping the discount
//   - ApplyDiscount changes the discount and refreshes totals
//   - Approve/Reject/Cancel move the estimate status by job

type IEstimateUseCase interface {
	CalculateEstimate(ctx context.Context, tenantID, jobID string, discount decimal.Decimal) (entities.Estimate, error)
	Recalculate(ctx context.Context, tenantID, jobID string) (entities.Estimate, error)
	ApplyDiscount(ctx context.Context, tenantID, estimateID string, discount decimal.Decimal) (entities.Estimate, error)
	ApproveByJobID(ctx context.Context, tenantID, jobID string) (entities.Estimate, error)
	RejectByJobID(ctx context.Context, tenantID, jobID string) (entities.Estimate, error)
	CancelByJobID(ctx context.Context, tenantID, jobID string) (entities.Estimate, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Estimate, error)
	GetByJobID(ctx context.Context, tenantID, jobID string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	taskRepo interfaces.ITaskRepository
	jobRepo  interfaces.IJobRepository
	now      func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, taskRepo interfaces.ITaskRepository, jobRepo interfaces.IJobRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, taskRepo: taskRepo, jobRepo: jobRepo, now: utcNow}
}

func (u *EstimateUseCase) CalculateEstimate(ctx context.Context, tenantID, jobID string, discount decimal.Decimal) (entities.Estimate, error) {
	trimAll(&tenantID, &jobID)
	if tenantID == "" {
		return entities.Estimate{}, ErrInvalidTenantID
	}
	if jobID == "" {
		return entities.Estimate{}, ErrInvalidJobID
	}
	if discount.IsNegative() {
		return entities.Estimate{}, ErrInvalidDiscount
	}
	if err := ensureJobOpen(ctx, u.jobRepo, tenantID, jobID); err != nil {
		return entities.Estimate{}, err
	}

	// One estimate per job.
	if existing, err := u.repo.GetByJobID(ctx, tenantID, jobID); err != nil {
		return entities.Estimate{}, err
	} else if existing.ID != "" {
		return entities.Estimate{}, ErrEstimateAlreadyExists
	}

	totals, err := u.sumJobTasks(ctx, tenantID, jobID, discount)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := u.now()
	e := entities.Estimate{
		ID:             uuid.NewString(),
		TenantID:       tenantID,
		JobID:          jobID,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		DiscountAmount: totals.DiscountAmount,
		TotalAmount:    totals.TotalAmount,
		Status:         entities.EstimateStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, e)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.Estimate{}, ErrEstimateAlreadyExists
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	log.Printf("[estimate][usecase] calculated tenant=%s job_id=%s estimate_id=%s total=%s", tenantID, jobID, created.ID, created.TotalAmount)
	return created, nil
}

func (u *EstimateUseCase) Recalculate(ctx context.Context, tenantID, jobID string) (entities.Estimate, error) {
	e, err := u.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.refresh(ctx, e, e.DiscountAmount)
}

func (u *EstimateUseCase) ApplyDiscount(ctx context.Context, tenantID, estimateID string, discount decimal.Decimal) (entities.Estimate, error) {
	if discount.IsNegative() {
		return entities.Estimate{}, ErrInvalidDiscount
	}
	e, err := u.GetByID(ctx, tenantID, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.refresh(ctx, e, discount)
}

// refresh rewrites the totals of e when the billable tasks or the discount changed.
func (u *EstimateUseCase) refresh(ctx context.Context, e entities.Estimate, discount decimal.Decimal) (entities.Estimate, error) {
	if e.Closed() {
		return entities.Estimate{}, fmt.Errorf("%w: estimate %s is %s", ErrInvalidEstimateState, e.ID, e.Status)
	}
	if err := ensureJobOpen(ctx, u.jobRepo, e.TenantID, e.JobID); err != nil {
		return entities.Estimate{}, err
	}

	totals, err := u.sumJobTasks(ctx, e.TenantID, e.JobID, discount)
	if err != nil {
		return entities.Estimate{}, err
	}
	if totals.Equal(e.Totals()) {
		return e, nil
	}

	updated, err := u.repo.UpdateTotalsByJobID(ctx, e.TenantID, e.JobID, totals)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	log.Printf("[estimate][usecase] totals refreshed tenant=%s estimate_id=%s total=%s discount=%s", e.TenantID, e.ID, updated.TotalAmount, updated.DiscountAmount)
	return updated, nil
}

func (u *EstimateUseCase) ApproveByJobID(ctx context.Context, tenantID, jobID string) (entities.Estimate, error) {
	return u.updateStatusByJobID(ctx, tenantID, jobID, entities.EstimateStatusApproved, entities.EstimateStatusPending)
}

func (u *EstimateUseCase) RejectByJobID(ctx context.Context, tenantID, jobID string) (entities.Estimate, error) {
	return u.updateStatusByJobID(ctx, tenantID, jobID, entities.EstimateStatusRejected, entities.EstimateStatusPending)
}

func (u *EstimateUseCase) CancelByJobID(ctx context.Context, tenantID, jobID string) (entities.Estimate, error) {
	return u.updateStatusByJobID(ctx, tenantID, jobID, entities.EstimateStatusCancelled, entities.EstimateStatusPending, entities.EstimateStatusApproved)
}

func (u *EstimateUseCase) updateStatusByJobID(ctx context.Context, tenantID, jobID string, status entities.EstimateStatus, from ...entities.EstimateStatus) (entities.Estimate, error) {
	current, err := u.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if current.Status == status {
		return current, nil
	}
	if !estimateStatusIn(current.Status, from) {
		return entities.Estimate{}, fmt.Errorf("%w: estimate %s is %s", ErrInvalidEstimateState, current.ID, current.Status)
	}

	updated, err := u.repo.UpdateStatusByJobID(ctx, current.TenantID, current.JobID, status, current.Status)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Estimate{}, ErrConcurrentModification
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	log.Printf("[estimate][usecase] status changed tenant=%s estimate_id=%s from=%s to=%s", current.TenantID, current.ID, current.Status, status)
	return updated, nil
}

func estimateStatusIn(s entities.EstimateStatus, set []entities.EstimateStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func (u *EstimateUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Estimate, error) {
	trimAll(&tenantID, &id)
	if tenantID == "" {
		return entities.Estimate{}, ErrInvalidTenantID
	}
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) GetByJobID(ctx context.Context, tenantID, jobID string) (entities.Estimate, error) {
	trimAll(&tenantID, &jobID)
	if tenantID == "" {
		return entities.Estimate{}, ErrInvalidTenantID
	}
	if jobID == "" {
		return entities.Estimate{}, ErrInvalidJobID
	}

	e, err := u.repo.GetByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) sumJobTasks(ctx context.Context, tenantID, jobID string, discount decimal.Decimal) (entities.EstimateTotals, error) {
	tasks, err := u.taskRepo.ListByJobID(ctx, tenantID, jobID)
	if err != nil {
		return entities.EstimateTotals{}, err
	}
	return entities.SumTasks(tasks, discount), nil
}
