package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TaskActionType string

const (
	TaskActionLaborOnly TaskActionType = "LABOR_ONLY"
	TaskActionReplaced  TaskActionType = "REPLACED"
)

func (a TaskActionType) Valid() bool {
	return a == TaskActionLaborOnly || a == TaskActionReplaced
}

type TaskStatus string

const (
	TaskStatusDraft     TaskStatus = "DRAFT"
	TaskStatusApproved  TaskStatus = "APPROVED"
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

var hundred = decimal.NewFromInt(100)

// Task is a billable line item of a Job.
//
// Qty, LaborCost and TaxRate are the draft values and may change only while the task is DRAFT.
// Approval copies them (plus the catalog unit price) into the snapshot fields, which never change afterwards.
// TaxRate is a percentage applied to the parts total only.
type Task struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenant_id"`
	JobID           string          `json:"job_id"`
	Description     string          `json:"description"`
	ActionType      TaskActionType  `json:"action_type"`
	InventoryItemID *string         `json:"inventory_item_id,omitempty"`
	Qty             int64           `json:"qty"`
	LaborCost       decimal.Decimal `json:"labor_cost"`
	TaxRate         decimal.Decimal `json:"tax_rate"`

	UnitPriceSnapshot decimal.Decimal `json:"unit_price_snapshot"`
	LaborCostSnapshot decimal.Decimal `json:"labor_cost_snapshot"`
	TaxRateSnapshot   decimal.Decimal `json:"tax_rate_snapshot"`

	Status       TaskStatus `json:"task_status"`
	AllocationID *string    `json:"allocation_id,omitempty"`

	ApprovedBy  string     `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CompletedBy string     `json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DeletedBy   string     `json:"deleted_by,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t Task) Deleted() bool {
	return t.DeletedAt != nil
}

// Billable reports whether the task contributes to the job estimate.
func (t Task) Billable() bool {
	return !t.Deleted() && (t.Status == TaskStatusApproved || t.Status == TaskStatusCompleted)
}

// TaskTotals are the computed amounts of a task. They are never stored.
type TaskTotals struct {
	PartsSubtotal decimal.Decimal `json:"parts_subtotal"`
	PartsTax      decimal.Decimal `json:"parts_tax"`
	Labor         decimal.Decimal `json:"labor"`
	Total         decimal.Decimal `json:"total"`
}

// Totals computes the task amounts. DRAFT tasks have no unit price yet, so only labor counts.
func (t Task) Totals() TaskTotals {
	labor, rate, price := t.LaborCostSnapshot, t.TaxRateSnapshot, t.UnitPriceSnapshot
	if t.Status == TaskStatusDraft {
		labor, rate, price = t.LaborCost, t.TaxRate, decimal.Zero
	}

	parts := decimal.Zero
	if t.ActionType == TaskActionReplaced {
		parts = price.Mul(decimal.NewFromInt(t.Qty))
	}
	tax := parts.Mul(rate).Div(hundred).Round(2)

	return TaskTotals{
		PartsSubtotal: parts,
		PartsTax:      tax,
		Labor:         labor,
		Total:         parts.Add(tax).Add(labor),
	}
}
