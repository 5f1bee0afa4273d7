package usecase

import (
	"context"
	"errors"
	"testing"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase/interfaces"
	mock_interfaces "garage_workflow/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type estimateMocks struct {
	repo  *mock_interfaces.MockIEstimateRepository
	tasks *mock_interfaces.MockITaskRepository
	jobs  *mock_interfaces.MockIJobRepository
}

func newEstimateUseCaseWithMocks(t *testing.T) (*EstimateUseCase, estimateMocks) {
	ctrl := gomock.NewController(t)
	m := estimateMocks{
		repo:  mock_interfaces.NewMockIEstimateRepository(ctrl),
		tasks: mock_interfaces.NewMockITaskRepository(ctrl),
		jobs:  mock_interfaces.NewMockIJobRepository(ctrl),
	}
	return NewEstimateUseCase(m.repo, m.tasks, m.jobs), m
}

func openJobRow(id string) entities.Job {
	return entities.Job{ID: id, TenantID: tenant, Status: entities.JobStatusWorking}
}

func approvedLabor(id, labor string) entities.Task {
	return entities.Task{
		ID:                id,
		TenantID:          tenant,
		JobID:             "job-1",
		ActionType:        entities.TaskActionLaborOnly,
		Status:            entities.TaskStatusApproved,
		LaborCostSnapshot: decimal.RequireFromString(labor),
	}
}

func TestEstimateUseCase_CalculateEstimate(t *testing.T) {
	t.Run("invalid job id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, err := uc.CalculateEstimate(context.Background(), tenant, "   ", decimal.Zero)
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("negative discount", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, err := uc.CalculateEstimate(context.Background(), tenant, "job-1", decimal.NewFromInt(-1))
		if !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
	})

	t.Run("locked job", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), tenant, "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusCompleted}, nil)

		_, err := uc.CalculateEstimate(context.Background(), tenant, "job-1", decimal.Zero)
		if !errors.Is(err, ErrJobLocked) {
			t.Fatalf("expected ErrJobLocked, got %v", err)
		}
	})

	t.Run("repo get by job id error", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), tenant, "job-1").Return(openJobRow("job-1"), nil)
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.CalculateEstimate(context.Background(), tenant, "job-1", decimal.Zero)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), tenant, "job-1").Return(openJobRow("job-1"), nil)
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(entities.Estimate{ID: "existing"}, nil)

		_, err := uc.CalculateEstimate(context.Background(), tenant, "job-1", decimal.Zero)
		if !errors.Is(err, ErrEstimateAlreadyExists) {
			t.Fatalf("expected ErrEstimateAlreadyExists, got %v", err)
		}
	})

	t.Run("create race maps to already exists", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), tenant, "job-1").Return(openJobRow("job-1"), nil)
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(entities.Estimate{}, nil)
		m.tasks.EXPECT().ListByJobID(gomock.Any(), tenant, "job-1").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, interfaces.ErrAlreadyExists)

		_, err := uc.CalculateEstimate(context.Background(), tenant, "job-1", decimal.Zero)
		if !errors.Is(err, ErrEstimateAlreadyExists) {
			t.Fatalf("expected ErrEstimateAlreadyExists, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), tenant, "job-1").Return(openJobRow("job-1"), nil)
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(entities.Estimate{}, nil)

		draft := approvedLabor("task-3", "999")
		draft.Status = entities.TaskStatusDraft
		m.tasks.EXPECT().ListByJobID(gomock.Any(), tenant, "job-1").Return([]entities.Task{
			approvedLabor("task-1", "100"),
			approvedLabor("task-2", "25.50"),
			draft,
		}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.JobID != "job-1" || e.TenantID != tenant || e.Status != entities.EstimateStatusPending {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if !e.Subtotal.Equal(decimal.RequireFromString("125.5")) || !e.TotalAmount.Equal(decimal.RequireFromString("115.5")) {
					t.Fatalf("unexpected totals: subtotal=%s total=%s", e.Subtotal, e.TotalAmount)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return e, nil
			},
		)

		res, err := uc.CalculateEstimate(context.Background(), " "+tenant+" ", " job-1 ", decimal.NewFromInt(10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.DiscountAmount.Equal(decimal.NewFromInt(10)) {
			t.Fatalf("expected discount 10, got %s", res.DiscountAmount)
		}
	})
}

func TestEstimateUseCase_Recalculate(t *testing.T) {
	current := entities.Estimate{
		ID:             "est-1",
		TenantID:       tenant,
		JobID:          "job-1",
		Subtotal:       decimal.NewFromInt(100),
		TaxAmount:      decimal.Zero,
		DiscountAmount: decimal.NewFromInt(5),
		TotalAmount:    decimal.NewFromInt(95),
		Status:         entities.EstimateStatusApproved,
	}

	t.Run("unchanged totals skip the write", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(current, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), tenant, "job-1").Return(openJobRow("job-1"), nil)
		m.tasks.EXPECT().ListByJobID(gomock.Any(), tenant, "job-1").Return([]entities.Task{approvedLabor("task-1", "100.00")}, nil)

		res, err := uc.Recalculate(context.Background(), tenant, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "est-1" {
			t.Fatalf("unexpected estimate: %+v", res)
		}
	})

	t.Run("keeps the discount", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(current, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), tenant, "job-1").Return(openJobRow("job-1"), nil)
		m.tasks.EXPECT().ListByJobID(gomock.Any(), tenant, "job-1").Return([]entities.Task{
			approvedLabor("task-1", "100"),
			approvedLabor("task-2", "20"),
		}, nil)
		m.repo.EXPECT().UpdateTotalsByJobID(gomock.Any(), tenant, "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, totals entities.EstimateTotals) (entities.Estimate, error) {
				if !totals.DiscountAmount.Equal(decimal.NewFromInt(5)) || !totals.TotalAmount.Equal(decimal.NewFromInt(115)) {
					t.Fatalf("unexpected totals: %+v", totals)
				}
				updated := current
				updated.Subtotal = totals.Subtotal
				updated.TotalAmount = totals.TotalAmount
				return updated, nil
			},
		)

		res, err := uc.Recalculate(context.Background(), tenant, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.TotalAmount.Equal(decimal.NewFromInt(115)) {
			t.Fatalf("expected total 115, got %s", res.TotalAmount)
		}
	})

	t.Run("rejected estimate is frozen", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		rejected := current
		rejected.Status = entities.EstimateStatusRejected
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(rejected, nil)

		_, err := uc.Recalculate(context.Background(), tenant, "job-1")
		if !errors.Is(err, ErrInvalidEstimateState) {
			t.Fatalf("expected ErrInvalidEstimateState, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(entities.Estimate{}, nil)

		_, err := uc.Recalculate(context.Background(), tenant, "job-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}

func TestEstimateUseCase_ApplyDiscount(t *testing.T) {
	t.Run("negative", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, err := uc.ApplyDiscount(context.Background(), tenant, "est-1", decimal.NewFromInt(-3))
		if !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
	})

	t.Run("capped at the gross amount", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), tenant, "est-1").Return(entities.Estimate{ID: "est-1", TenantID: tenant, JobID: "job-1", Status: entities.EstimateStatusPending}, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), tenant, "job-1").Return(openJobRow("job-1"), nil)
		m.tasks.EXPECT().ListByJobID(gomock.Any(), tenant, "job-1").Return([]entities.Task{approvedLabor("task-1", "40")}, nil)
		m.repo.EXPECT().UpdateTotalsByJobID(gomock.Any(), tenant, "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, totals entities.EstimateTotals) (entities.Estimate, error) {
				if !totals.DiscountAmount.Equal(decimal.NewFromInt(40)) || !totals.TotalAmount.IsZero() {
					t.Fatalf("unexpected totals: %+v", totals)
				}
				return entities.Estimate{ID: "est-1", DiscountAmount: totals.DiscountAmount, TotalAmount: totals.TotalAmount}, nil
			},
		)

		res, err := uc.ApplyDiscount(context.Background(), tenant, "est-1", decimal.NewFromInt(100))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.TotalAmount.IsZero() {
			t.Fatalf("expected zero total, got %s", res.TotalAmount)
		}
	})
}

func TestEstimateUseCase_StatusChanges(t *testing.T) {
	pending := entities.Estimate{ID: "est-1", TenantID: tenant, JobID: "job-1", Status: entities.EstimateStatusPending}

	t.Run("approve", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		approved := pending
		approved.Status = entities.EstimateStatusApproved
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(pending, nil)
		m.repo.EXPECT().UpdateStatusByJobID(gomock.Any(), tenant, "job-1", entities.EstimateStatusApproved, entities.EstimateStatusPending).Return(approved, nil)

		res, err := uc.ApproveByJobID(context.Background(), tenant, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EstimateStatusApproved {
			t.Fatalf("expected approved, got %s", res.Status)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		approved := pending
		approved.Status = entities.EstimateStatusApproved
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(approved, nil)

		res, err := uc.ApproveByJobID(context.Background(), tenant, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EstimateStatusApproved {
			t.Fatalf("expected approved, got %s", res.Status)
		}
	})

	t.Run("reject after approve", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		approved := pending
		approved.Status = entities.EstimateStatusApproved
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(approved, nil)

		_, err := uc.RejectByJobID(context.Background(), tenant, "job-1")
		if !errors.Is(err, ErrInvalidEstimateState) {
			t.Fatalf("expected ErrInvalidEstimateState, got %v", err)
		}
	})

	t.Run("cancel after approve", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		approved := pending
		approved.Status = entities.EstimateStatusApproved
		cancelled := pending
		cancelled.Status = entities.EstimateStatusCancelled
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(approved, nil)
		m.repo.EXPECT().UpdateStatusByJobID(gomock.Any(), tenant, "job-1", entities.EstimateStatusCancelled, entities.EstimateStatusApproved).Return(cancelled, nil)

		res, err := uc.CancelByJobID(context.Background(), tenant, "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EstimateStatusCancelled {
			t.Fatalf("expected cancelled, got %s", res.Status)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetByJobID(gomock.Any(), tenant, "job-1").Return(pending, nil)
		m.repo.EXPECT().UpdateStatusByJobID(gomock.Any(), tenant, "job-1", entities.EstimateStatusApproved, entities.EstimateStatusPending).Return(entities.Estimate{}, interfaces.ErrConditionFailed)

		_, err := uc.ApproveByJobID(context.Background(), tenant, "job-1")
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), tenant, " ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), tenant, "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), tenant, "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newEstimateUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(gomock.Any(), tenant, "est-1").Return(entities.Estimate{ID: "est-1", JobID: "job-1"}, nil)

		res, err := uc.GetByID(context.Background(), " "+tenant, "est-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.JobID != "job-1" {
			t.Fatalf("unexpected estimate: %+v", res)
		}
	})
}
