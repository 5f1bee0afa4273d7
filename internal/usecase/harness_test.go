package usecase

import (
	"context"
	"testing"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const tenant = "t-1"

// garage wires every usecase over the in-memory repositories.
type garage struct {
	jobRepo       *memJobRepo
	taskRepo      *memTaskRepo
	estimateRepo  *memEstimateRepo
	invoiceRepo   *memInvoiceRepo
	txnRepo       *memTxnRepo
	inventoryRepo *memInventoryRepo
	sequence      *memSequence

	allocator *InventoryAllocatorUseCase
	ledger    *TaskLedgerUseCase
	estimates *EstimateUseCase
	invoices  *InvoiceSyncUseCase
	payments  *PaymentUseCase
	jobs      *JobUseCase
	engine    *JobLifecycleEngine
}

func newGarage(notifier interfaces.INotificationPort, settings interfaces.INotificationSettingsProvider) *garage {
	g := &garage{
		jobRepo:       newMemJobRepo(),
		taskRepo:      newMemTaskRepo(),
		estimateRepo:  newMemEstimateRepo(),
		txnRepo:       &memTxnRepo{},
		inventoryRepo: newMemInventoryRepo(),
		sequence:      newMemSequence(),
	}
	g.invoiceRepo = newMemInvoiceRepo(g.txnRepo)

	g.allocator = NewInventoryAllocatorUseCase(g.inventoryRepo)
	g.ledger = NewTaskLedgerUseCase(g.taskRepo, g.jobRepo, g.allocator)
	g.estimates = NewEstimateUseCase(g.estimateRepo, g.taskRepo, g.jobRepo)
	g.invoices = NewInvoiceSyncUseCase(g.invoiceRepo, g.estimateRepo, g.sequence, 0)
	g.payments = NewPaymentUseCase(g.invoiceRepo, g.txnRepo, nil)
	g.jobs = NewJobUseCase(g.jobRepo, g.invoiceRepo, g.ledger, g.sequence)
	g.engine = NewJobLifecycleEngine(g.jobRepo, g.estimates, g.invoices, g.ledger, notifier, settings)
	g.engine.dispatch = func(f func()) { f() }
	return g
}

func (g *garage) openJob(t *testing.T) entities.Job {
	t.Helper()
	job, err := g.jobs.CreateJob(context.Background(), tenant, CreateJobCommand{
		CustomerName:  "Maria",
		CustomerEmail: "maria@example.com",
		Vehicle:       "ABC-1234",
	})
	require.NoError(t, err)
	return job
}

func (g *garage) item(t *testing.T, stock int64, price string) entities.InventoryItem {
	t.Helper()
	item, err := g.allocator.CreateItem(context.Background(), tenant, CreateInventoryItemCommand{
		SKU:         "BP-01",
		Name:        "Brake pad",
		UnitPrice:   decimal.RequireFromString(price),
		StockOnHand: stock,
	})
	require.NoError(t, err)
	return item
}

func (g *garage) laborTask(t *testing.T, jobID, labor string) entities.Task {
	t.Helper()
	task, err := g.ledger.Create(context.Background(), tenant, CreateTaskCommand{
		JobID:       jobID,
		Description: "Labor",
		ActionType:  entities.TaskActionLaborOnly,
		LaborCost:   decimal.RequireFromString(labor),
	})
	require.NoError(t, err)
	return task
}

func (g *garage) partTask(t *testing.T, jobID, itemID string, qty int64, labor, taxRate string) entities.Task {
	t.Helper()
	task, err := g.ledger.Create(context.Background(), tenant, CreateTaskCommand{
		JobID:           jobID,
		Description:     "Replace part",
		ActionType:      entities.TaskActionReplaced,
		InventoryItemID: itemID,
		Qty:             qty,
		LaborCost:       decimal.RequireFromString(labor),
		TaxRate:         decimal.RequireFromString(taxRate),
	})
	require.NoError(t, err)
	return task
}

func (g *garage) approve(t *testing.T, taskID string) entities.Task {
	t.Helper()
	task, err := g.ledger.Approve(context.Background(), tenant, taskID, "alice")
	require.NoError(t, err)
	return task
}

func (g *garage) moveTo(t *testing.T, jobID string, path ...entities.JobStatus) entities.Job {
	t.Helper()
	var res TransitionResult
	for _, status := range path {
		var err error
		res, err = g.engine.TransitionStatus(context.Background(), tenant, jobID, status, "alice")
		require.NoError(t, err)
		require.Equal(t, OutcomeApplied, res.Outcome)
	}
	return res.Job
}

func (g *garage) stock(t *testing.T, itemID string) entities.InventoryItem {
	t.Helper()
	item, err := g.allocator.GetItem(context.Background(), tenant, itemID)
	require.NoError(t, err)
	return item
}

func (g *garage) setStatus(jobID string, status entities.JobStatus) {
	g.jobRepo.mu.Lock()
	defer g.jobRepo.mu.Unlock()
	k := memKey(tenant, jobID)
	j := g.jobRepo.jobs[k]
	j.Status = status
	g.jobRepo.jobs[k] = j
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
