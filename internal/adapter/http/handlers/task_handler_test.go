package handlers

import (
	"context"
	"net/http"
	"testing"

	"garage_workflow/internal/adapter/http/handlers/mocks"
	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newTaskRouter(tasks *mocks.MockITaskLedger) http.Handler {
	h := NewTaskHandler(tasks)
	r := newTestRouter()
	r.POST("/v1/jobs/:job_id/tasks", h.CreateTask)
	r.GET("/v1/tasks/:task_id", h.GetTask)
	r.PATCH("/v1/tasks/:task_id", h.UpdateTask)
	r.POST("/v1/tasks/:task_id/approve", h.ApproveTask)
	r.POST("/v1/tasks/:task_id/complete", h.CompleteTask)
	r.DELETE("/v1/tasks/:task_id", h.DeleteTask)
	return r
}

func TestTaskHandler_CreateTask(t *testing.T) {
	t.Run("missing action type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newTaskRouter(mocks.NewMockITaskLedger(ctrl))

		w := doRequest(r, http.MethodPost, "/v1/jobs/job-1/tasks", `{"description":"Oil change"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("builds the command from path and body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tasks := mocks.NewMockITaskLedger(ctrl)
		r := newTaskRouter(tasks)

		tasks.EXPECT().
			Create(gomock.Any(), testTenant, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, cmd usecase.CreateTaskCommand) (entities.Task, error) {
				if cmd.JobID != "job-1" || cmd.ActionType != entities.TaskActionReplaced || cmd.Qty != 2 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if !cmd.LaborCost.Equal(decimal.RequireFromString("12.5")) {
					t.Fatalf("unexpected labor cost: %s", cmd.LaborCost)
				}
				item := cmd.InventoryItemID
				return entities.Task{
					ID:              "task-1",
					JobID:           cmd.JobID,
					ActionType:      cmd.ActionType,
					InventoryItemID: &item,
					Qty:             cmd.Qty,
					LaborCost:       cmd.LaborCost,
					Status:          entities.TaskStatusDraft,
				}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/jobs/job-1/tasks",
			`{"description":"Brake pads","action_type":"replaced","inventory_item_id":"item-1","qty":2,"labor_cost":"12.50","tax_rate":10}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["task_status"] != "DRAFT" || body["total"] != "12.50" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("locked job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tasks := mocks.NewMockITaskLedger(ctrl)
		r := newTaskRouter(tasks)

		tasks.EXPECT().Create(gomock.Any(), testTenant, gomock.Any()).Return(entities.Task{}, usecase.ErrJobLocked)

		w := doRequest(r, http.MethodPost, "/v1/jobs/job-1/tasks", `{"description":"Wash","action_type":"LABOR_ONLY"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	t.Run("empty update is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newTaskRouter(mocks.NewMockITaskLedger(ctrl))

		w := doRequest(r, http.MethodPatch, "/v1/tasks/task-1", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approved task cannot be edited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tasks := mocks.NewMockITaskLedger(ctrl)
		r := newTaskRouter(tasks)

		tasks.EXPECT().
			UpdateDraft(gomock.Any(), testTenant, "task-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, cmd usecase.UpdateTaskDraftCommand) (entities.Task, error) {
				if cmd.Qty == nil || *cmd.Qty != 3 || cmd.Description != nil {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Task{}, usecase.ErrInvalidTaskState
			})

		w := doRequest(r, http.MethodPatch, "/v1/tasks/task-1", `{"qty":3}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestTaskHandler_StateChanges(t *testing.T) {
	approved := entities.Task{ID: "task-1", JobID: "job-1", ActionType: entities.TaskActionLaborOnly, Status: entities.TaskStatusApproved, ApprovedBy: testActor}

	t.Run("approve passes the actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tasks := mocks.NewMockITaskLedger(ctrl)
		r := newTaskRouter(tasks)

		tasks.EXPECT().Approve(gomock.Any(), testTenant, "task-1", testActor).Return(approved, nil)

		w := doRequest(r, http.MethodPost, "/v1/tasks/task-1/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decodeBody(t, w)["approved_by"]; got != testActor {
			t.Fatalf("expected approved_by=%s, got %v", testActor, got)
		}
	})

	t.Run("approve without stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tasks := mocks.NewMockITaskLedger(ctrl)
		r := newTaskRouter(tasks)

		tasks.EXPECT().Approve(gomock.Any(), testTenant, "task-1", testActor).Return(entities.Task{}, usecase.ErrInsufficientStock)

		w := doRequest(r, http.MethodPost, "/v1/tasks/task-1/approve", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := decodeBody(t, w)["code"]; code != "INSUFFICIENT_STOCK" {
			t.Fatalf("expected INSUFFICIENT_STOCK, got %v", code)
		}
	})

	t.Run("complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tasks := mocks.NewMockITaskLedger(ctrl)
		r := newTaskRouter(tasks)

		done := approved
		done.Status = entities.TaskStatusCompleted
		tasks.EXPECT().Complete(gomock.Any(), testTenant, "task-1", testActor).Return(done, nil)

		w := doRequest(r, http.MethodPost, "/v1/tasks/task-1/complete", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete unknown task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tasks := mocks.NewMockITaskLedger(ctrl)
		r := newTaskRouter(tasks)

		tasks.EXPECT().SoftDelete(gomock.Any(), testTenant, "task-404", testActor).Return(entities.Task{}, usecase.ErrTaskNotFound)

		w := doRequest(r, http.MethodDelete, "/v1/tasks/task-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tasks := mocks.NewMockITaskLedger(ctrl)
		r := newTaskRouter(tasks)

		tasks.EXPECT().GetByID(gomock.Any(), testTenant, "task-1").Return(approved, nil)

		w := doRequest(r, http.MethodGet, "/v1/tasks/task-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
