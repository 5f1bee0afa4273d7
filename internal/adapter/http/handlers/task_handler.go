package handlers

import (
	"context"
	"errors"
	"net/http"

	request "garage_workflow/internal/adapter/http/dto/request"
	response "garage_workflow/internal/adapter/http/dto/response"
	"garage_workflow/internal/adapter/http/middleware"
	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

const taskComponent = "task"

// TaskHandler exposes the task ledger.

type TaskHandler struct {
	tasks usecase.ITaskLedger
}

func NewTaskHandler(tasks usecase.ITaskLedger) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// CreateTask godoc
// @Summary      Add a task to a job
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                     true  "Tenant"
// @Param        job_id       path    string                     true  "Job ID"
// @Param        body         body    request.CreateTaskRequest  true  "Task"
// @Success      201  {object}  response.TaskResponse
// @Router       /jobs/{job_id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var payload request.CreateTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, taskComponent, err)
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), middleware.TenantID(c), payload.ToCommand(c.Param("job_id")))
	if err != nil {
		respondError(c, taskComponent, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTask(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.tasks.GetByID(c.Request.Context(), middleware.TenantID(c), c.Param("task_id"))
	if err != nil {
		respondError(c, taskComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}

// UpdateTask godoc
// @Summary      Edit a draft task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                     true  "Tenant"
// @Param        task_id      path    string                     true  "Task ID"
// @Param        body         body    request.UpdateTaskRequest  true  "Fields to change"
// @Success      200  {object}  response.TaskResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /tasks/{task_id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var payload request.UpdateTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, taskComponent, err)
		return
	}
	if payload.Empty() {
		respondInvalidPayload(c, taskComponent, errors.New("no fields to update"))
		return
	}

	task, err := h.tasks.UpdateDraft(c.Request.Context(), middleware.TenantID(c), c.Param("task_id"), payload.ToCommand())
	if err != nil {
		respondError(c, taskComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}

// ApproveTask freezes the task prices and reserves its part.
// @Summary      Approve a task
// @Tags         tasks
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Tenant"
// @Param        task_id      path    string  true  "Task ID"
// @Success      200  {object}  response.TaskResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /tasks/{task_id}/approve [post]
func (h *TaskHandler) ApproveTask(c *gin.Context) {
	h.mutate(c, h.tasks.Approve)
}

// CompleteTask consumes the reserved part.
// @Summary      Complete a task
// @Tags         tasks
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Tenant"
// @Param        task_id      path    string  true  "Task ID"
// @Success      200  {object}  response.TaskResponse
// @Router       /tasks/{task_id}/complete [post]
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	h.mutate(c, h.tasks.Complete)
}

// DeleteTask soft-deletes a task, releasing its reservation.
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Tenant"
// @Param        task_id      path    string  true  "Task ID"
// @Success      200  {object}  response.TaskResponse
// @Router       /tasks/{task_id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	h.mutate(c, h.tasks.SoftDelete)
}

func (h *TaskHandler) mutate(
	c *gin.Context,
	op func(ctx context.Context, tenantID, taskID, actor string) (entities.Task, error),
) {
	task, err := op(c.Request.Context(), middleware.TenantID(c), c.Param("task_id"), middleware.Actor(c))
	if err != nil {
		respondError(c, taskComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}
