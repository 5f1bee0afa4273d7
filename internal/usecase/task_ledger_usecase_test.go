package usecase

import (
	"context"
	"testing"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"
	mock_interfaces "garage_workflow/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTaskLedger_CreateValidation(t *testing.T) {
	g := newGarage(nil, nil)
	job := g.openJob(t)
	item := g.item(t, 3, "10")

	tests := []struct {
		name string
		cmd  CreateTaskCommand
		want error
	}{
		{"blank description", CreateTaskCommand{Description: " ", ActionType: entities.TaskActionLaborOnly}, ErrInvalidTask},
		{"unknown action", CreateTaskCommand{Description: "x", ActionType: "PAINTED"}, ErrInvalidTask},
		{"negative labor", CreateTaskCommand{Description: "x", ActionType: entities.TaskActionLaborOnly, LaborCost: dec("-1")}, ErrInvalidTask},
		{"tax above 100", CreateTaskCommand{Description: "x", ActionType: entities.TaskActionLaborOnly, TaxRate: dec("100.01")}, ErrInvalidTask},
		{"negative tax", CreateTaskCommand{Description: "x", ActionType: entities.TaskActionLaborOnly, TaxRate: dec("-5")}, ErrInvalidTask},
		{"replaced without item", CreateTaskCommand{Description: "x", ActionType: entities.TaskActionReplaced, Qty: 1}, ErrInvalidInventoryItemID},
		{"replaced without qty", CreateTaskCommand{Description: "x", ActionType: entities.TaskActionReplaced, InventoryItemID: item.ID}, ErrInvalidQuantity},
		{"labor with qty", CreateTaskCommand{Description: "x", ActionType: entities.TaskActionLaborOnly, Qty: 2}, ErrInvalidTask},
		{"labor with item", CreateTaskCommand{Description: "x", ActionType: entities.TaskActionLaborOnly, InventoryItemID: item.ID}, ErrInvalidTask},
		{"unknown item", CreateTaskCommand{Description: "x", ActionType: entities.TaskActionReplaced, InventoryItemID: "missing", Qty: 1}, ErrInventoryItemNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cmd.JobID = job.ID
			_, err := g.ledger.Create(context.Background(), tenant, tt.cmd)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := g.ledger.Create(context.Background(), tenant, CreateTaskCommand{JobID: "missing", Description: "x", ActionType: entities.TaskActionLaborOnly})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestTaskLedger_DraftTotalsIgnoreParts(t *testing.T) {
	g := newGarage(nil, nil)
	job := g.openJob(t)
	item := g.item(t, 3, "40")

	draft := g.partTask(t, job.ID, item.ID, 2, "20", "10")
	assert.Equal(t, entities.TaskStatusDraft, draft.Status)
	assert.True(t, draft.Totals().Total.Equal(dec("20")))
	assert.False(t, draft.Billable())
	assert.EqualValues(t, 0, g.stock(t, item.ID).StockReserved)
}

func TestTaskLedger_UpdateDraft(t *testing.T) {
	ctx := context.Background()
	g := newGarage(nil, nil)
	job := g.openJob(t)
	item := g.item(t, 3, "40")
	task := g.partTask(t, job.ID, item.ID, 1, "20", "10")

	qty := int64(3)
	labor := dec("35")
	updated, err := g.ledger.UpdateDraft(ctx, tenant, task.ID, UpdateTaskDraftCommand{Qty: &qty, LaborCost: &labor})
	require.NoError(t, err)
	assert.EqualValues(t, 3, updated.Qty)
	assert.True(t, updated.LaborCost.Equal(labor))
	assert.Equal(t, "Replace part", updated.Description)

	zero := int64(0)
	_, err = g.ledger.UpdateDraft(ctx, tenant, task.ID, UpdateTaskDraftCommand{Qty: &zero})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	g.approve(t, task.ID)
	desc := "late change"
	_, err = g.ledger.UpdateDraft(ctx, tenant, task.ID, UpdateTaskDraftCommand{Description: &desc})
	assert.ErrorIs(t, err, ErrInvalidTaskState)
}

func TestTaskLedger_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots prices and reserves the part", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		item := g.item(t, 5, "40")
		task := g.partTask(t, job.ID, item.ID, 2, "20", "10")

		approved := g.approve(t, task.ID)
		assert.Equal(t, entities.TaskStatusApproved, approved.Status)
		assert.Equal(t, "alice", approved.ApprovedBy)
		assert.NotNil(t, approved.ApprovedAt)
		assert.True(t, approved.UnitPriceSnapshot.Equal(dec("40")))
		assert.True(t, approved.LaborCostSnapshot.Equal(dec("20")))
		assert.True(t, approved.TaxRateSnapshot.Equal(dec("10")))
		require.NotNil(t, approved.AllocationID)

		totals := approved.Totals()
		assert.True(t, totals.PartsSubtotal.Equal(dec("80")))
		assert.True(t, totals.PartsTax.Equal(dec("8")))
		assert.True(t, totals.Total.Equal(dec("108")))

		alloc, err := g.allocator.GetAllocation(ctx, tenant, *approved.AllocationID)
		require.NoError(t, err)
		assert.Equal(t, task.ID, alloc.TaskID)
		assert.EqualValues(t, 2, alloc.Qty)
		assert.EqualValues(t, 2, g.stock(t, item.ID).StockReserved)
	})

	t.Run("labor only reserves nothing", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		approved := g.approve(t, g.laborTask(t, job.ID, "75.50").ID)
		assert.Nil(t, approved.AllocationID)
		assert.True(t, approved.UnitPriceSnapshot.IsZero())
		assert.True(t, approved.Totals().Total.Equal(dec("75.5")))
	})

	t.Run("twice is rejected", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		task := g.approve(t, g.laborTask(t, job.ID, "10").ID)

		_, err := g.ledger.Approve(ctx, tenant, task.ID, "bob")
		assert.ErrorIs(t, err, ErrInvalidTaskState)
	})

	t.Run("insufficient stock keeps the draft", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		item := g.item(t, 1, "40")
		task := g.partTask(t, job.ID, item.ID, 2, "0", "0")

		_, err := g.ledger.Approve(ctx, tenant, task.ID, "alice")
		require.ErrorIs(t, err, ErrInsufficientStock)

		got, err := g.ledger.GetByID(ctx, tenant, task.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.TaskStatusDraft, got.Status)
		assert.Nil(t, got.AllocationID)
	})

	t.Run("failed save releases the reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		taskRepo := mock_interfaces.NewMockITaskRepository(ctrl)
		jobRepo := newMemJobRepo()
		inventory := newMemInventoryRepo()
		allocator := NewInventoryAllocatorUseCase(inventory)
		ledger := NewTaskLedgerUseCase(taskRepo, jobRepo, allocator)

		_, err := jobRepo.Create(ctx, entities.Job{ID: "job-1", TenantID: tenant, Status: entities.JobStatusWorking})
		require.NoError(t, err)
		item, err := allocator.CreateItem(ctx, tenant, CreateInventoryItemCommand{Name: "Belt", UnitPrice: dec("30"), StockOnHand: 2})
		require.NoError(t, err)

		itemID := item.ID
		draft := entities.Task{
			ID:              "task-1",
			TenantID:        tenant,
			JobID:           "job-1",
			Description:     "Replace belt",
			ActionType:      entities.TaskActionReplaced,
			InventoryItemID: &itemID,
			Qty:             2,
			Status:          entities.TaskStatusDraft,
		}
		taskRepo.EXPECT().GetByID(gomock.Any(), tenant, "task-1").Return(draft, nil)
		taskRepo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.TaskStatusDraft).Return(entities.Task{}, interfaces.ErrConditionFailed)

		_, err = ledger.Approve(ctx, tenant, "task-1", "alice")
		require.ErrorIs(t, err, ErrInvalidTaskState)

		stock, err := allocator.GetItem(ctx, tenant, item.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, stock.StockReserved)
		assert.EqualValues(t, 2, stock.StockOnHand)
	})
}

func TestTaskLedger_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("consumes the reservation", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		item := g.item(t, 5, "40")
		task := g.approve(t, g.partTask(t, job.ID, item.ID, 2, "20", "10").ID)

		done, err := g.ledger.Complete(ctx, tenant, task.ID, "bob")
		require.NoError(t, err)
		assert.Equal(t, entities.TaskStatusCompleted, done.Status)
		assert.Equal(t, "bob", done.CompletedBy)
		assert.True(t, done.Billable())

		stock := g.stock(t, item.ID)
		assert.EqualValues(t, 3, stock.StockOnHand)
		assert.EqualValues(t, 0, stock.StockReserved)
	})

	t.Run("draft cannot complete", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		task := g.laborTask(t, job.ID, "10")

		_, err := g.ledger.Complete(ctx, tenant, task.ID, "bob")
		assert.ErrorIs(t, err, ErrInvalidTaskState)
	})

	t.Run("released allocation blocks completion", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		item := g.item(t, 5, "40")
		task := g.approve(t, g.partTask(t, job.ID, item.ID, 1, "0", "0").ID)
		_, err := g.allocator.Release(ctx, tenant, *task.AllocationID)
		require.NoError(t, err)

		_, err = g.ledger.Complete(ctx, tenant, task.ID, "bob")
		assert.ErrorIs(t, err, ErrInvalidAllocationState)
	})

	t.Run("already consumed allocation is accepted on retry", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		item := g.item(t, 5, "40")
		task := g.approve(t, g.partTask(t, job.ID, item.ID, 1, "0", "0").ID)
		_, err := g.allocator.Consume(ctx, tenant, *task.AllocationID)
		require.NoError(t, err)

		done, err := g.ledger.Complete(ctx, tenant, task.ID, "bob")
		require.NoError(t, err)
		assert.Equal(t, entities.TaskStatusCompleted, done.Status)
		assert.EqualValues(t, 4, g.stock(t, item.ID).StockOnHand)
	})
}

func TestTaskLedger_SoftDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("releases the reservation and hides the task", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		item := g.item(t, 5, "40")
		task := g.approve(t, g.partTask(t, job.ID, item.ID, 2, "20", "10").ID)
		keep := g.laborTask(t, job.ID, "10")

		deleted, err := g.ledger.SoftDelete(ctx, tenant, task.ID, "alice")
		require.NoError(t, err)
		assert.True(t, deleted.Deleted())
		assert.Equal(t, "alice", deleted.DeletedBy)
		assert.EqualValues(t, 0, g.stock(t, item.ID).StockReserved)

		_, err = g.ledger.GetByID(ctx, tenant, task.ID)
		assert.ErrorIs(t, err, ErrTaskNotFound)

		tasks, err := g.ledger.ListByJob(ctx, tenant, job.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, keep.ID, tasks[0].ID)

		_, err = g.ledger.SoftDelete(ctx, tenant, task.ID, "alice")
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("completed work stays", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		task := g.approve(t, g.laborTask(t, job.ID, "10").ID)
		_, err := g.ledger.Complete(ctx, tenant, task.ID, "bob")
		require.NoError(t, err)

		_, err = g.ledger.SoftDelete(ctx, tenant, task.ID, "alice")
		assert.ErrorIs(t, err, ErrInvalidTaskState)
	})

	t.Run("deleted tasks leave the estimate", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		a := g.approve(t, g.laborTask(t, job.ID, "100").ID)
		g.approve(t, g.laborTask(t, job.ID, "30").ID)

		est, err := g.estimates.CalculateEstimate(ctx, tenant, job.ID, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, est.TotalAmount.Equal(dec("130")))

		_, err = g.ledger.SoftDelete(ctx, tenant, a.ID, "alice")
		require.NoError(t, err)
		est, err = g.estimates.Recalculate(ctx, tenant, job.ID)
		require.NoError(t, err)
		assert.True(t, est.TotalAmount.Equal(dec("30")))
	})
}

func TestTaskLedger_SettleJobTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("completion leaves drafts alone", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		approved := g.approve(t, g.laborTask(t, job.ID, "10").ID)
		draft := g.laborTask(t, job.ID, "5")

		require.NoError(t, g.ledger.SettleJobTasks(ctx, tenant, job.ID, entities.JobStatusCompleted, "alice"))

		got, err := g.ledger.GetByID(ctx, tenant, approved.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.TaskStatusCompleted, got.Status)
		got, err = g.ledger.GetByID(ctx, tenant, draft.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.TaskStatusDraft, got.Status)
	})

	t.Run("failures are joined and the rest still settle", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		item := g.item(t, 5, "40")
		broken := g.approve(t, g.partTask(t, job.ID, item.ID, 1, "0", "0").ID)
		ok := g.approve(t, g.partTask(t, job.ID, item.ID, 2, "0", "0").ID)
		_, err := g.allocator.Release(ctx, tenant, *broken.AllocationID)
		require.NoError(t, err)

		err = g.ledger.SettleJobTasks(ctx, tenant, job.ID, entities.JobStatusCompleted, "alice")
		require.ErrorIs(t, err, ErrInvalidAllocationState)
		assert.Contains(t, err.Error(), broken.ID)

		got, err := g.ledger.GetByID(ctx, tenant, ok.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.TaskStatusCompleted, got.Status)
		assert.EqualValues(t, 3, g.stock(t, item.ID).StockOnHand)
	})

	t.Run("cancellation releases without completing", func(t *testing.T) {
		g := newGarage(nil, nil)
		job := g.openJob(t)
		item := g.item(t, 5, "40")
		task := g.approve(t, g.partTask(t, job.ID, item.ID, 2, "0", "0").ID)

		require.NoError(t, g.ledger.SettleJobTasks(ctx, tenant, job.ID, entities.JobStatusCancelled, "alice"))
		// Settling twice is harmless.
		require.NoError(t, g.ledger.SettleJobTasks(ctx, tenant, job.ID, entities.JobStatusCancelled, "alice"))

		got, err := g.ledger.GetByID(ctx, tenant, task.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.TaskStatusApproved, got.Status)
		assert.EqualValues(t, 0, g.stock(t, item.ID).StockReserved)
	})
}
