package interfaces

import (
	"context"
	"garage_workflow/internal/domain/entities"
)

// ITaskRepository abstracts tenant-scoped persistence for Task.
//
// Save replaces the stored task only while its status equals expected and it is not soft-deleted.

type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Task, error)
	ListByJobID(ctx context.Context, tenantID, jobID string) ([]entities.Task, error)
	Save(ctx context.Context, t entities.Task, expected entities.TaskStatus) (entities.Task, error)
}
