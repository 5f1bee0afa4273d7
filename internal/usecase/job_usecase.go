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
)

var (
	ErrInvalidJob           = errors.New("invalid job")
	ErrInvalidTechnicianID  = errors.New("invalid technician id")
	ErrJobNotDeletable      = errors.New("job cannot be deleted")
	ErrJobNumberUnavailable = errors.New("job number unavailable")
)

const jobSequenceKind = "job"

// IJobUseCase covers job intake and the non-status commands of a job.

type IJobUseCase interface {
	CreateJob(ctx context.Context, tenantID string, cmd CreateJobCommand) (entities.Job, error)
	GetJob(ctx context.Context, tenantID, jobID string) (entities.Job, error)
	AssignMechanic(ctx context.Context, tenantID, jobID, technicianID string) (entities.Job, error)
	DeleteJob(ctx context.Context, tenantID, jobID, actor string) error
	ListTasks(ctx context.Context, tenantID, jobID string) ([]entities.Task, error)
}

type CreateJobCommand struct {
	CustomerName  string
	CustomerEmail string
	Vehicle       string
	Description   string
}

type JobUseCase struct {
	repo        interfaces.IJobRepository
	invoiceRepo interfaces.IInvoiceRepository
	tasks       ITaskLedger
	sequence    interfaces.INumberSequence
	now         func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, invoiceRepo interfaces.IInvoiceRepository, tasks ITaskLedger, sequence interfaces.INumberSequence) *JobUseCase {
	return &JobUseCase{repo: repo, invoiceRepo: invoiceRepo, tasks: tasks, sequence: sequence, now: utcNow}
}

func (u *JobUseCase) CreateJob(ctx context.Context, tenantID string, cmd CreateJobCommand) (entities.Job, error) {
	trimAll(&tenantID, &cmd.CustomerName, &cmd.CustomerEmail, &cmd.Vehicle, &cmd.Description)
	if tenantID == "" {
		return entities.Job{}, ErrInvalidTenantID
	}
	if cmd.CustomerName == "" || cmd.Vehicle == "" {
		return entities.Job{}, ErrInvalidJob
	}

	n, err := u.sequence.Next(ctx, tenantID, jobSequenceKind)
	if err != nil {
		log.Printf("[job][usecase] sequence failed tenant=%s err=%v", tenantID, err)
		return entities.Job{}, fmt.Errorf("%w: %v", ErrJobNumberUnavailable, err)
	}

	now := u.now()
	j := entities.Job{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		JobNumber:     fmt.Sprintf("JOB-%06d", n),
		CustomerName:  cmd.CustomerName,
		CustomerEmail: cmd.CustomerEmail,
		Vehicle:       cmd.Vehicle,
		Description:   cmd.Description,
		Status:        entities.JobStatusReceived,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] created tenant=%s job_id=%s number=%s", tenantID, created.ID, created.JobNumber)
	return created, nil
}

func (u *JobUseCase) GetJob(ctx context.Context, tenantID, jobID string) (entities.Job, error) {
	trimAll(&tenantID, &jobID)
	if tenantID == "" {
		return entities.Job{}, ErrInvalidTenantID
	}
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, tenantID, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) AssignMechanic(ctx context.Context, tenantID, jobID, technicianID string) (entities.Job, error) {
	trimAll(&technicianID)
	if technicianID == "" {
		return entities.Job{}, ErrInvalidTechnicianID
	}

	for attempt := 1; attempt <= maxCASAttempts; attempt++ {
		j, err := u.GetJob(ctx, tenantID, jobID)
		if err != nil {
			return entities.Job{}, err
		}
		if j.Status.Locked() {
			return entities.Job{}, fmt.Errorf("%w: job %s is %s", ErrJobLocked, j.ID, j.Status)
		}
		if j.TechnicianID != nil && *j.TechnicianID == technicianID {
			return j, nil
		}

		next := j
		next.TechnicianID = &technicianID
		next.UpdatedAt = u.now()

		saved, err := u.repo.UpdateTechnician(ctx, next, j.Status)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			continue
		}
		if err != nil {
			return entities.Job{}, err
		}
		log.Printf("[job][usecase] mechanic assigned tenant=%s job_id=%s technician_id=%s", saved.TenantID, saved.ID, technicianID)
		return saved, nil
	}
	return entities.Job{}, ErrConcurrentModification
}

// DeleteJob removes a job that was never billed. Reservations are released and tasks soft-deleted before the job
// row goes; the final delete only applies if the status did not move meanwhile.
func (u *JobUseCase) DeleteJob(ctx context.Context, tenantID, jobID, actor string) error {
	j, err := u.GetJob(ctx, tenantID, jobID)
	if err != nil {
		return err
	}
	if j.Status == entities.JobStatusCompleted {
		return fmt.Errorf("%w: job %s is completed", ErrJobNotDeletable, j.ID)
	}

	inv, err := u.invoiceRepo.GetByJobID(ctx, j.TenantID, j.ID)
	if err != nil {
		return err
	}
	if inv.ID != "" {
		return fmt.Errorf("%w: invoice %s references job %s", ErrJobNotDeletable, inv.InvoiceNumber, j.ID)
	}

	if err := u.tasks.DiscardJobTasks(ctx, j.TenantID, j.ID, actor); err != nil {
		if errors.Is(err, ErrInvalidTaskState) {
			return fmt.Errorf("%w: %v", ErrJobNotDeletable, err)
		}
		return err
	}

	err = u.repo.Delete(ctx, j.TenantID, j.ID, j.Status)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return ErrConcurrentModification
	}
	if err != nil {
		return err
	}
	log.Printf("[job][usecase] deleted tenant=%s job_id=%s actor=%s", j.TenantID, j.ID, actor)
	return nil
}

func (u *JobUseCase) ListTasks(ctx context.Context, tenantID, jobID string) ([]entities.Task, error) {
	j, err := u.GetJob(ctx, tenantID, jobID)
	if err != nil {
		return nil, err
	}
	return u.tasks.ListByJob(ctx, j.TenantID, j.ID)
}
