package request

import (
	"strings"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateTaskRequest adds a billable line to a job. Amounts accept JSON numbers or strings ("12.50").
type CreateTaskRequest struct {
	Description     string          `json:"description" binding:"required"`
	ActionType      string          `json:"action_type" binding:"required"`
	InventoryItemID string          `json:"inventory_item_id"`
	Qty             int64           `json:"qty"`
	LaborCost       decimal.Decimal `json:"labor_cost"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
}

func (r CreateTaskRequest) ToCommand(jobID string) usecase.CreateTaskCommand {
	return usecase.CreateTaskCommand{
		JobID:           jobID,
		Description:     r.Description,
		ActionType:      entities.TaskActionType(strings.ToUpper(strings.TrimSpace(r.ActionType))),
		InventoryItemID: r.InventoryItemID,
		Qty:             r.Qty,
		LaborCost:       r.LaborCost,
		TaxRate:         r.TaxRate,
	}
}

// UpdateTaskRequest edits a DRAFT task. Omitted fields stay unchanged.
type UpdateTaskRequest struct {
	Description *string          `json:"description"`
	Qty         *int64           `json:"qty"`
	LaborCost   *decimal.Decimal `json:"labor_cost"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
}

func (r UpdateTaskRequest) Empty() bool {
	return r.Description == nil && r.Qty == nil && r.LaborCost == nil && r.TaxRate == nil
}

func (r UpdateTaskRequest) ToCommand() usecase.UpdateTaskDraftCommand {
	return usecase.UpdateTaskDraftCommand{
		Description: r.Description,
		Qty:         r.Qty,
		LaborCost:   r.LaborCost,
		TaxRate:     r.TaxRate,
	}
}
