package interfaces

import (
	"context"
	"garage_workflow/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The engine must be able to:
//   - create the single estimate of a job from its approved tasks
//   - update estimate status by job ID (approve/reject/cancel), guarded by the expected current status
//   - update estimate totals (recalculation after task changes or a discount)

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Estimate, error)
	GetByJobID(ctx context.Context, tenantID, jobID string) (entities.Estimate, error)
	UpdateStatusByJobID(ctx context.Context, tenantID, jobID string, status, expected entities.EstimateStatus) (entities.Estimate, error)
	UpdateTotalsByJobID(ctx context.Context, tenantID, jobID string, totals entities.EstimateTotals) (entities.Estimate, error)
}
