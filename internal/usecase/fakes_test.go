package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"
)

// In-memory repositories with the same conditional-write semantics as the DynamoDB adapters.

func memKey(tenantID, id string) string {
	return tenantID + "/" + id
}

type memJobRepo struct {
	mu        sync.Mutex
	jobs      map[string]entities.Job
	conflicts int
	// interfere runs under the lock before a status write is checked, simulating a concurrent writer.
	interfere func(stored *entities.Job)
}

var _ interfaces.IJobRepository = (*memJobRepo)(nil)

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: map[string]entities.Job{}}
}

func (r *memJobRepo) Create(_ context.Context, j entities.Job) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(j.TenantID, j.ID)
	if _, ok := r.jobs[k]; ok {
		return entities.Job{}, interfaces.ErrAlreadyExists
	}
	r.jobs[k] = j
	return j, nil
}

func (r *memJobRepo) GetByID(_ context.Context, tenantID, id string) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jobs[memKey(tenantID, id)], nil
}

func (r *memJobRepo) UpdateStatus(_ context.Context, j entities.Job, expected entities.JobStatus) (entities.Job, error) {
	return r.swap(j, expected)
}

func (r *memJobRepo) UpdateTechnician(_ context.Context, j entities.Job, expected entities.JobStatus) (entities.Job, error) {
	return r.swap(j, expected)
}

func (r *memJobRepo) swap(j entities.Job, expected entities.JobStatus) (entities.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(j.TenantID, j.ID)
	stored, ok := r.jobs[k]
	if !ok {
		return entities.Job{}, nil
	}
	if r.interfere != nil {
		r.interfere(&stored)
		r.jobs[k] = stored
	}
	if r.conflicts > 0 {
		r.conflicts--
		return entities.Job{}, interfaces.ErrConditionFailed
	}
	if stored.Status != expected {
		return entities.Job{}, interfaces.ErrConditionFailed
	}
	r.jobs[k] = j
	return j, nil
}

func (r *memJobRepo) Delete(_ context.Context, tenantID, id string, expected entities.JobStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(tenantID, id)
	stored, ok := r.jobs[k]
	if !ok || stored.Status != expected {
		return interfaces.ErrConditionFailed
	}
	delete(r.jobs, k)
	return nil
}

func (r *memJobRepo) status(tenantID, id string) entities.JobStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jobs[memKey(tenantID, id)].Status
}

type memTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]entities.Task
}

var _ interfaces.ITaskRepository = (*memTaskRepo)(nil)

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]entities.Task{}}
}

func (r *memTaskRepo) Create(_ context.Context, t entities.Task) (entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(t.TenantID, t.ID)
	if _, ok := r.tasks[k]; ok {
		return entities.Task{}, interfaces.ErrAlreadyExists
	}
	r.tasks[k] = t
	return t, nil
}

func (r *memTaskRepo) GetByID(_ context.Context, tenantID, id string) (entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tasks[memKey(tenantID, id)], nil
}

func (r *memTaskRepo) ListByJobID(_ context.Context, tenantID, jobID string) ([]entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Task
	for _, t := range r.tasks {
		if t.TenantID == tenantID && t.JobID == jobID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTaskRepo) Save(_ context.Context, t entities.Task, expected entities.TaskStatus) (entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(t.TenantID, t.ID)
	stored, ok := r.tasks[k]
	if !ok || stored.Deleted() || stored.Status != expected {
		return entities.Task{}, interfaces.ErrConditionFailed
	}
	r.tasks[k] = t
	return t, nil
}

// put stores t as-is, bypassing the ledger.
func (r *memTaskRepo) put(t entities.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[memKey(t.TenantID, t.ID)] = t
}

type memEstimateRepo struct {
	mu        sync.Mutex
	estimates map[string]entities.Estimate
}

var _ interfaces.IEstimateRepository = (*memEstimateRepo)(nil)

func newMemEstimateRepo() *memEstimateRepo {
	return &memEstimateRepo{estimates: map[string]entities.Estimate{}}
}

func (r *memEstimateRepo) Create(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(e.TenantID, e.JobID)
	if _, ok := r.estimates[k]; ok {
		return entities.Estimate{}, interfaces.ErrAlreadyExists
	}
	r.estimates[k] = e
	return e, nil
}

func (r *memEstimateRepo) GetByID(_ context.Context, tenantID, id string) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.estimates {
		if e.TenantID == tenantID && e.ID == id {
			return e, nil
		}
	}
	return entities.Estimate{}, nil
}

func (r *memEstimateRepo) GetByJobID(_ context.Context, tenantID, jobID string) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.estimates[memKey(tenantID, jobID)], nil
}

func (r *memEstimateRepo) UpdateStatusByJobID(_ context.Context, tenantID, jobID string, status, expected entities.EstimateStatus) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(tenantID, jobID)
	e, ok := r.estimates[k]
	if !ok {
		return entities.Estimate{}, nil
	}
	if e.Status != expected {
		return entities.Estimate{}, interfaces.ErrConditionFailed
	}
	e.Status = status
	r.estimates[k] = e
	return e, nil
}

func (r *memEstimateRepo) UpdateTotalsByJobID(_ context.Context, tenantID, jobID string, totals entities.EstimateTotals) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(tenantID, jobID)
	e, ok := r.estimates[k]
	if !ok {
		return entities.Estimate{}, nil
	}
	e.Subtotal = totals.Subtotal
	e.TaxAmount = totals.TaxAmount
	e.DiscountAmount = totals.DiscountAmount
	e.TotalAmount = totals.TotalAmount
	r.estimates[k] = e
	return e, nil
}

type memTxnRepo struct {
	mu   sync.Mutex
	txns []entities.PaymentTransaction
}

var _ interfaces.IPaymentTransactionRepository = (*memTxnRepo)(nil)

func (r *memTxnRepo) Create(_ context.Context, p entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txns = append(r.txns, p)
	return p, nil
}

func (r *memTxnRepo) ListByInvoiceID(_ context.Context, tenantID, invoiceID string) ([]entities.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.PaymentTransaction
	for _, p := range r.txns {
		if p.TenantID == tenantID && p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}

type memInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]entities.Invoice
	txns     *memTxnRepo
	writes   int
	// interfere runs under the lock before a versioned write is checked.
	interfere func(stored *entities.Invoice)
}

var _ interfaces.IInvoiceRepository = (*memInvoiceRepo)(nil)

func newMemInvoiceRepo(txns *memTxnRepo) *memInvoiceRepo {
	return &memInvoiceRepo{invoices: map[string]entities.Invoice{}, txns: txns}
}

func (r *memInvoiceRepo) Create(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(inv.TenantID, inv.JobID)
	if _, ok := r.invoices[k]; ok {
		return entities.Invoice{}, interfaces.ErrAlreadyExists
	}
	r.invoices[k] = inv
	r.writes++
	return inv, nil
}

func (r *memInvoiceRepo) GetByID(_ context.Context, tenantID, id string) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invoices {
		if inv.TenantID == tenantID && inv.ID == id {
			return inv, nil
		}
	}
	return entities.Invoice{}, nil
}

func (r *memInvoiceRepo) GetByJobID(_ context.Context, tenantID, jobID string) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invoices[memKey(tenantID, jobID)], nil
}

func (r *memInvoiceRepo) Update(_ context.Context, inv entities.Invoice, expectedVersion int64) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.versionedPut(inv, expectedVersion)
}

func (r *memInvoiceRepo) ApplyPayment(ctx context.Context, inv entities.Invoice, expectedVersion int64, txn entities.PaymentTransaction) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved, err := r.versionedPut(inv, expectedVersion)
	if err != nil {
		return entities.Invoice{}, err
	}
	if _, err := r.txns.Create(ctx, txn); err != nil {
		return entities.Invoice{}, err
	}
	return saved, nil
}

func (r *memInvoiceRepo) versionedPut(inv entities.Invoice, expectedVersion int64) (entities.Invoice, error) {
	k := memKey(inv.TenantID, inv.JobID)
	stored, ok := r.invoices[k]
	if ok && r.interfere != nil {
		r.interfere(&stored)
		r.invoices[k] = stored
	}
	if !ok || stored.Version != expectedVersion {
		return entities.Invoice{}, interfaces.ErrConditionFailed
	}
	inv.Version = expectedVersion + 1
	r.invoices[k] = inv
	r.writes++
	return inv, nil
}

func (r *memInvoiceRepo) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

type memInventoryRepo struct {
	mu     sync.Mutex
	items  map[string]entities.InventoryItem
	allocs map[string]entities.Allocation
}

var _ interfaces.IInventoryRepository = (*memInventoryRepo)(nil)

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{items: map[string]entities.InventoryItem{}, allocs: map[string]entities.Allocation{}}
}

func (r *memInventoryRepo) CreateItem(_ context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(item.TenantID, item.ID)
	if _, ok := r.items[k]; ok {
		return entities.InventoryItem{}, interfaces.ErrAlreadyExists
	}
	r.items[k] = item
	return item, nil
}

func (r *memInventoryRepo) GetItem(_ context.Context, tenantID, id string) (entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[memKey(tenantID, id)], nil
}

func (r *memInventoryRepo) AddStock(_ context.Context, tenantID, id string, qty int64) (entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(tenantID, id)
	item, ok := r.items[k]
	if !ok {
		return entities.InventoryItem{}, nil
	}
	item.StockOnHand += qty
	r.items[k] = item
	return item, nil
}

func (r *memInventoryRepo) Reserve(_ context.Context, item entities.InventoryItem, alloc entities.Allocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(item.TenantID, item.ID)
	stored, ok := r.items[k]
	if !ok || stored.StockOnHand != item.StockOnHand || stored.StockReserved != item.StockReserved {
		return interfaces.ErrConditionFailed
	}
	if alloc.Qty > stored.StockAvailable() {
		return errors.New("reservation exceeds available stock")
	}
	stored.StockReserved += alloc.Qty
	r.items[k] = stored
	r.allocs[memKey(alloc.TenantID, alloc.ID)] = alloc
	return nil
}

func (r *memInventoryRepo) GetAllocation(_ context.Context, tenantID, id string) (entities.Allocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.allocs[memKey(tenantID, id)], nil
}

func (r *memInventoryRepo) SettleAllocation(_ context.Context, alloc entities.Allocation, to entities.AllocationState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ak := memKey(alloc.TenantID, alloc.ID)
	stored, ok := r.allocs[ak]
	if !ok || stored.State != entities.AllocationStateReserved {
		return interfaces.ErrConditionFailed
	}
	ik := memKey(alloc.TenantID, alloc.InventoryItemID)
	item := r.items[ik]
	switch to {
	case entities.AllocationStateConsumed:
		item.StockReserved -= stored.Qty
		item.StockOnHand -= stored.Qty
	case entities.AllocationStateReleased:
		item.StockReserved -= stored.Qty
	default:
		return errors.New("unsupported allocation state")
	}
	stored.State = to
	r.items[ik] = item
	r.allocs[ak] = stored
	return nil
}

type memSequence struct {
	mu   sync.Mutex
	next map[string]int64
	err  error
}

var _ interfaces.INumberSequence = (*memSequence)(nil)

func newMemSequence() *memSequence {
	return &memSequence{next: map[string]int64{}}
}

func (s *memSequence) Next(_ context.Context, tenantID, kind string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	k := memKey(tenantID, kind)
	s.next[k]++
	return s.next[k], nil
}

type staticSettings struct {
	settings entities.NotificationSettings
	err      error
}

func (s staticSettings) Get(context.Context, string) (entities.NotificationSettings, error) {
	return s.settings, s.err
}
