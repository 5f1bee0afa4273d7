package response

import (
	"time"

	"garage_workflow/internal/domain/entities"
)

type TaskResponse struct {
	ID                string     `json:"id"`
	JobID             string     `json:"job_id"`
	Description       string     `json:"description"`
	ActionType        string     `json:"action_type"`
	InventoryItemID   string     `json:"inventory_item_id,omitempty"`
	Qty               int64      `json:"qty"`
	LaborCost         string     `json:"labor_cost"`
	TaxRate           string     `json:"tax_rate"`
	UnitPriceSnapshot string     `json:"unit_price_snapshot"`
	LaborCostSnapshot string     `json:"labor_cost_snapshot"`
	TaxRateSnapshot   string     `json:"tax_rate_snapshot"`
	TaskStatus        string     `json:"task_status"`
	AllocationID      string     `json:"allocation_id,omitempty"`
	PartsSubtotal     string     `json:"parts_subtotal"`
	PartsTax          string     `json:"parts_tax"`
	Total             string     `json:"total"`
	ApprovedBy        string     `json:"approved_by,omitempty"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
	CompletedBy       string     `json:"completed_by,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	DeletedBy         string     `json:"deleted_by,omitempty"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromTask(t entities.Task) TaskResponse {
	totals := t.Totals()
	res := TaskResponse{
		ID:                t.ID,
		JobID:             t.JobID,
		Description:       t.Description,
		ActionType:        string(t.ActionType),
		Qty:               t.Qty,
		LaborCost:         money(t.LaborCost),
		TaxRate:           t.TaxRate.String(),
		UnitPriceSnapshot: money(t.UnitPriceSnapshot),
		LaborCostSnapshot: money(t.LaborCostSnapshot),
		TaxRateSnapshot:   t.TaxRateSnapshot.String(),
		TaskStatus:        string(t.Status),
		PartsSubtotal:     money(totals.PartsSubtotal),
		PartsTax:          money(totals.PartsTax),
		Total:             money(totals.Total),
		ApprovedBy:        t.ApprovedBy,
		ApprovedAt:        t.ApprovedAt,
		CompletedBy:       t.CompletedBy,
		CompletedAt:       t.CompletedAt,
		DeletedBy:         t.DeletedBy,
		DeletedAt:         t.DeletedAt,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
	if t.InventoryItemID != nil {
		res.InventoryItemID = *t.InventoryItemID
	}
	if t.AllocationID != nil {
		res.AllocationID = *t.AllocationID
	}
	return res
}

func FromTasks(tasks []entities.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return out
}
