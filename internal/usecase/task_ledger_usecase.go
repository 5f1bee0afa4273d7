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
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidTaskID    = errors.New("invalid task id")
	ErrInvalidTask      = errors.New("invalid task")
	ErrInvalidTaskState = errors.New("invalid task state")
)

var maxTaxRate = decimal.NewFromInt(100)

// ITaskLedger owns the per-job list of billable tasks and the DRAFT -> APPROVED -> COMPLETED state machine.
//
// Approval freezes price, quantity, labor and tax; a REPLACED task reserves its part at that moment.
// SettleJobTasks is the hook the job lifecycle runs after a committed completed/cancelled transition.

type ITaskLedger interface {
	Create(ctx context.Context, tenantID string, cmd CreateTaskCommand) (entities.Task, error)
	UpdateDraft(ctx context.Context, tenantID, taskID string, cmd UpdateTaskDraftCommand) (entities.Task, error)
	Approve(ctx context.Context, tenantID, taskID, actor string) (entities.Task, error)
	Complete(ctx context.Context, tenantID, taskID, actor string) (entities.Task, error)
	SoftDelete(ctx context.Context, tenantID, taskID, actor string) (entities.Task, error)
	GetByID(ctx context.Context, tenantID, taskID string) (entities.Task, error)
	ListByJob(ctx context.Context, tenantID, jobID string) ([]entities.Task, error)
	SettleJobTasks(ctx context.Context, tenantID, jobID string, status entities.JobStatus, actor string) error
	DiscardJobTasks(ctx context.Context, tenantID, jobID, actor string) error
}

type CreateTaskCommand struct {
	JobID           string
	Description     string
	ActionType      entities.TaskActionType
	InventoryItemID string
	Qty             int64
	LaborCost       decimal.Decimal
	TaxRate         decimal.Decimal
}

// UpdateTaskDraftCommand carries the fields to change; nil means unchanged.
type UpdateTaskDraftCommand struct {
	Description *string
	Qty         *int64
	LaborCost   *decimal.Decimal
	TaxRate     *decimal.Decimal
}

type TaskLedgerUseCase struct {
	repo      interfaces.ITaskRepository
	jobRepo   interfaces.IJobRepository
	allocator IInventoryAllocator
	now       func() time.Time
}

var _ ITaskLedger = (*TaskLedgerUseCase)(nil)

func NewTaskLedgerUseCase(repo interfaces.ITaskRepository, jobRepo interfaces.IJobRepository, allocator IInventoryAllocator) *TaskLedgerUseCase {
	return &TaskLedgerUseCase{repo: repo, jobRepo: jobRepo, allocator: allocator, now: utcNow}
}

func (u *TaskLedgerUseCase) Create(ctx context.Context, tenantID string, cmd CreateTaskCommand) (entities.Task, error) {
	trimAll(&tenantID, &cmd.JobID, &cmd.Description, &cmd.InventoryItemID)
	if tenantID == "" {
		return entities.Task{}, ErrInvalidTenantID
	}
	if cmd.JobID == "" {
		return entities.Task{}, ErrInvalidJobID
	}
	if err := validateTaskCommand(cmd); err != nil {
		return entities.Task{}, err
	}
	if err := ensureJobOpen(ctx, u.jobRepo, tenantID, cmd.JobID); err != nil {
		return entities.Task{}, err
	}

	var itemID *string
	if cmd.ActionType == entities.TaskActionReplaced {
		if _, err := u.allocator.GetItem(ctx, tenantID, cmd.InventoryItemID); err != nil {
			return entities.Task{}, err
		}
		id := cmd.InventoryItemID
		itemID = &id
	}

	now := u.now()
	t := entities.Task{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		JobID:           cmd.JobID,
		Description:     cmd.Description,
		ActionType:      cmd.ActionType,
		InventoryItemID: itemID,
		Qty:             cmd.Qty,
		LaborCost:       cmd.LaborCost,
		TaxRate:         cmd.TaxRate,
		Status:          entities.TaskStatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, t)
}

func validateTaskCommand(cmd CreateTaskCommand) error {
	if cmd.Description == "" || !cmd.ActionType.Valid() {
		return ErrInvalidTask
	}
	if cmd.LaborCost.IsNegative() || cmd.TaxRate.IsNegative() || cmd.TaxRate.GreaterThan(maxTaxRate) {
		return ErrInvalidTask
	}
	switch cmd.ActionType {
	case entities.TaskActionReplaced:
		if cmd.InventoryItemID == "" {
			return ErrInvalidInventoryItemID
		}
		if cmd.Qty <= 0 {
			return ErrInvalidQuantity
		}
	case entities.TaskActionLaborOnly:
		if cmd.InventoryItemID != "" || cmd.Qty != 0 {
			return ErrInvalidTask
		}
	}
	return nil
}

func (u *TaskLedgerUseCase) UpdateDraft(ctx context.Context, tenantID, taskID string, cmd UpdateTaskDraftCommand) (entities.Task, error) {
	t, err := u.loadForMutation(ctx, tenantID, taskID)
	if err != nil {
		return entities.Task{}, err
	}
	if t.Status != entities.TaskStatusDraft {
		return entities.Task{}, fmt.Errorf("%w: task %s is %s", ErrInvalidTaskState, t.ID, t.Status)
	}

	if cmd.Description != nil {
		t.Description = *cmd.Description
	}
	if cmd.Qty != nil {
		t.Qty = *cmd.Qty
	}
	if cmd.LaborCost != nil {
		t.LaborCost = *cmd.LaborCost
	}
	if cmd.TaxRate != nil {
		t.TaxRate = *cmd.TaxRate
	}

	itemID := ""
	if t.InventoryItemID != nil {
		itemID = *t.InventoryItemID
	}
	if err := validateTaskCommand(CreateTaskCommand{
		JobID:           t.JobID,
		Description:     t.Description,
		ActionType:      t.ActionType,
		InventoryItemID: itemID,
		Qty:             t.Qty,
		LaborCost:       t.LaborCost,
		TaxRate:         t.TaxRate,
	}); err != nil {
		return entities.Task{}, err
	}

	t.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, t, entities.TaskStatusDraft)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Task{}, fmt.Errorf("%w: task %s is no longer a draft", ErrInvalidTaskState, t.ID)
	}
	return saved, err
}

func (u *TaskLedgerUseCase) Approve(ctx context.Context, tenantID, taskID, actor string) (entities.Task, error) {
	t, err := u.loadForMutation(ctx, tenantID, taskID)
	if err != nil {
		return entities.Task{}, err
	}
	if t.Status != entities.TaskStatusDraft {
		return entities.Task{}, fmt.Errorf("%w: task %s is %s", ErrInvalidTaskState, t.ID, t.Status)
	}

	now := u.now()
	approved := t
	approved.Status = entities.TaskStatusApproved
	approved.LaborCostSnapshot = t.LaborCost
	approved.TaxRateSnapshot = t.TaxRate
	approved.UnitPriceSnapshot = decimal.Zero
	approved.ApprovedBy = actor
	approved.ApprovedAt = &now
	approved.UpdatedAt = now

	var alloc entities.Allocation
	if t.ActionType == entities.TaskActionReplaced && t.InventoryItemID != nil {
		item, err := u.allocator.GetItem(ctx, t.TenantID, *t.InventoryItemID)
		if err != nil {
			return entities.Task{}, err
		}
		approved.UnitPriceSnapshot = item.UnitPrice

		alloc, err = u.allocator.Reserve(ctx, t.TenantID, item.ID, t.Qty, t.ID)
		if err != nil {
			log.Printf("[task][usecase] approve reserve failed tenant=%s task_id=%s err=%v", t.TenantID, t.ID, err)
			return entities.Task{}, err
		}
		approved.AllocationID = &alloc.ID
	}

	saved, err := u.repo.Save(ctx, approved, entities.TaskStatusDraft)
	if err != nil {
		if alloc.ID != "" {
			if _, rerr := u.allocator.Release(ctx, t.TenantID, alloc.ID); rerr != nil {
				log.Printf("[task][usecase] compensation release failed tenant=%s task_id=%s allocation_id=%s err=%v", t.TenantID, t.ID, alloc.ID, rerr)
			}
		}
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Task{}, fmt.Errorf("%w: task %s changed during approval", ErrInvalidTaskState, t.ID)
		}
		return entities.Task{}, err
	}

	log.Printf("[task][usecase] approved tenant=%s task_id=%s job_id=%s actor=%s", saved.TenantID, saved.ID, saved.JobID, actor)
	return saved, nil
}

func (u *TaskLedgerUseCase) Complete(ctx context.Context, tenantID, taskID, actor string) (entities.Task, error) {
	t, err := u.loadForMutation(ctx, tenantID, taskID)
	if err != nil {
		return entities.Task{}, err
	}
	return u.complete(ctx, t, actor)
}

// complete consumes the task allocation (if still reserved) and marks the task COMPLETED.
// A consumed allocation is accepted so a retry after a failed task write can finish.
func (u *TaskLedgerUseCase) complete(ctx context.Context, t entities.Task, actor string) (entities.Task, error) {
	if t.Status != entities.TaskStatusApproved {
		return entities.Task{}, fmt.Errorf("%w: task %s is %s", ErrInvalidTaskState, t.ID, t.Status)
	}

	if t.AllocationID != nil {
		alloc, err := u.allocator.GetAllocation(ctx, t.TenantID, *t.AllocationID)
		if err != nil {
			return entities.Task{}, err
		}
		switch alloc.State {
		case entities.AllocationStateReserved:
			if _, err := u.allocator.Consume(ctx, t.TenantID, alloc.ID); err != nil {
				return entities.Task{}, err
			}
		case entities.AllocationStateReleased:
			return entities.Task{}, fmt.Errorf("%w: allocation %s was released", ErrInvalidAllocationState, alloc.ID)
		}
	}

	now := u.now()
	done := t
	done.Status = entities.TaskStatusCompleted
	done.CompletedBy = actor
	done.CompletedAt = &now
	done.UpdatedAt = now

	saved, err := u.repo.Save(ctx, done, entities.TaskStatusApproved)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Task{}, fmt.Errorf("%w: task %s changed during completion", ErrInvalidTaskState, t.ID)
	}
	if err != nil {
		return entities.Task{}, err
	}
	log.Printf("[task][usecase] completed tenant=%s task_id=%s job_id=%s actor=%s", saved.TenantID, saved.ID, saved.JobID, actor)
	return saved, nil
}

func (u *TaskLedgerUseCase) SoftDelete(ctx context.Context, tenantID, taskID, actor string) (entities.Task, error) {
	t, err := u.loadForMutation(ctx, tenantID, taskID)
	if err != nil {
		return entities.Task{}, err
	}
	return u.discard(ctx, t, actor)
}

// discard releases an active reservation of t and marks it deleted. Completed work stays on the ledger.
func (u *TaskLedgerUseCase) discard(ctx context.Context, t entities.Task, actor string) (entities.Task, error) {
	if t.Status == entities.TaskStatusCompleted {
		return entities.Task{}, fmt.Errorf("%w: completed task %s cannot be deleted", ErrInvalidTaskState, t.ID)
	}

	if err := u.releaseActive(ctx, t); err != nil {
		return entities.Task{}, err
	}

	now := u.now()
	deleted := t
	deleted.DeletedAt = &now
	deleted.DeletedBy = actor
	deleted.UpdatedAt = now

	saved, err := u.repo.Save(ctx, deleted, t.Status)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.Task{}, fmt.Errorf("%w: task %s changed during deletion", ErrInvalidTaskState, t.ID)
	}
	if err != nil {
		return entities.Task{}, err
	}
	log.Printf("[task][usecase] soft-deleted tenant=%s task_id=%s actor=%s", saved.TenantID, saved.ID, actor)
	return saved, nil
}

// DiscardJobTasks soft-deletes every task of a job being removed, releasing reservations first.
// It refuses before any write if the job carries completed work.
func (u *TaskLedgerUseCase) DiscardJobTasks(ctx context.Context, tenantID, jobID, actor string) error {
	tasks, err := u.ListByJob(ctx, tenantID, jobID)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		if t.Status == entities.TaskStatusCompleted {
			return fmt.Errorf("%w: job %s has completed task %s", ErrInvalidTaskState, jobID, t.ID)
		}
	}
	for _, t := range tasks {
		if _, err := u.discard(ctx, t, actor); err != nil {
			return err
		}
	}
	return nil
}

func (u *TaskLedgerUseCase) GetByID(ctx context.Context, tenantID, taskID string) (entities.Task, error) {
	trimAll(&tenantID, &taskID)
	if tenantID == "" {
		return entities.Task{}, ErrInvalidTenantID
	}
	if taskID == "" {
		return entities.Task{}, ErrInvalidTaskID
	}

	t, err := u.repo.GetByID(ctx, tenantID, taskID)
	if err != nil {
		return entities.Task{}, err
	}
	if t.ID == "" || t.Deleted() {
		return entities.Task{}, ErrTaskNotFound
	}
	return t, nil
}

func (u *TaskLedgerUseCase) ListByJob(ctx context.Context, tenantID, jobID string) ([]entities.Task, error) {
	trimAll(&tenantID, &jobID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	if jobID == "" {
		return nil, ErrInvalidJobID
	}

	all, err := u.repo.ListByJobID(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}
	tasks := make([]entities.Task, 0, len(all))
	for _, t := range all {
		if !t.Deleted() {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// SettleJobTasks applies the stock side effects of a closed job: completion consumes every APPROVED task's
// reservation, cancellation releases it. Every task is attempted; failures are joined.
func (u *TaskLedgerUseCase) SettleJobTasks(ctx context.Context, tenantID, jobID string, status entities.JobStatus, actor string) error {
	tasks, err := u.ListByJob(ctx, tenantID, jobID)
	if err != nil {
		return err
	}

	var errs []error
	for _, t := range tasks {
		if t.Status != entities.TaskStatusApproved {
			continue
		}
		switch status {
		case entities.JobStatusCompleted:
			if _, err := u.complete(ctx, t, actor); err != nil {
				errs = append(errs, fmt.Errorf("complete task %s: %w", t.ID, err))
			}
		case entities.JobStatusCancelled:
			if err := u.releaseActive(ctx, t); err != nil {
				errs = append(errs, fmt.Errorf("release task %s: %w", t.ID, err))
			}
		}
	}
	return errors.Join(errs...)
}

// releaseActive releases the task reservation if it is still reserved.
func (u *TaskLedgerUseCase) releaseActive(ctx context.Context, t entities.Task) error {
	if t.AllocationID == nil {
		return nil
	}
	alloc, err := u.allocator.GetAllocation(ctx, t.TenantID, *t.AllocationID)
	if err != nil {
		return err
	}
	if alloc.State != entities.AllocationStateReserved {
		return nil
	}
	_, err = u.allocator.Release(ctx, t.TenantID, alloc.ID)
	return err
}

func (u *TaskLedgerUseCase) loadForMutation(ctx context.Context, tenantID, taskID string) (entities.Task, error) {
	t, err := u.GetByID(ctx, tenantID, taskID)
	if err != nil {
		return entities.Task{}, err
	}
	if err := ensureJobOpen(ctx, u.jobRepo, t.TenantID, t.JobID); err != nil {
		return entities.Task{}, err
	}
	return t, nil
}
