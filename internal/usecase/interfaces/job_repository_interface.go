package interfaces

import (
	"context"
	"garage_workflow/internal/domain/entities"
)

// IJobRepository abstracts tenant-scoped persistence for Job.
//
// Status-changing writes are compare-and-swap: they apply only while the stored status equals expected,
// otherwise ErrConditionFailed is returned.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Job, error)
	UpdateStatus(ctx context.Context, j entities.Job, expected entities.JobStatus) (entities.Job, error)
	UpdateTechnician(ctx context.Context, j entities.Job, expected entities.JobStatus) (entities.Job, error)
	Delete(ctx context.Context, tenantID, id string, expected entities.JobStatus) error
}
