package handlers

import (
	"log"
	"net/http"

	request "garage_workflow/internal/adapter/http/dto/request"
	response "garage_workflow/internal/adapter/http/dto/response"
	"garage_workflow/internal/adapter/http/middleware"
	"garage_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

const jobComponent = "job"

// JobHandler handles job intake and the job lifecycle.

type JobHandler struct {
	jobs      usecase.IJobUseCase
	lifecycle usecase.IJobLifecycleEngine
}

func NewJobHandler(jobs usecase.IJobUseCase, lifecycle usecase.IJobLifecycleEngine) *JobHandler {
	return &JobHandler{jobs: jobs, lifecycle: lifecycle}
}

// CreateJob godoc
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                    true  "Tenant"
// @Param        body         body    request.CreateJobRequest  true  "Job"
// @Success      201  {object}  response.JobResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, jobComponent, err)
		return
	}

	job, err := h.jobs.CreateJob(c.Request.Context(), middleware.TenantID(c), payload.ToCommand())
	if err != nil {
		respondError(c, jobComponent, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// GetJob godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Tenant"
// @Param        job_id       path    string  true  "Job ID"
// @Success      200  {object}  response.JobResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /jobs/{job_id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobs.GetJob(c.Request.Context(), middleware.TenantID(c), c.Param("job_id"))
	if err != nil {
		respondError(c, jobComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// AssignMechanic godoc
// @Summary      Assign the technician of a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                         true  "Tenant"
// @Param        job_id       path    string                         true  "Job ID"
// @Param        body         body    request.AssignMechanicRequest  true  "Technician"
// @Success      200  {object}  response.JobResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/mechanic [patch]
func (h *JobHandler) AssignMechanic(c *gin.Context) {
	var payload request.AssignMechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, jobComponent, err)
		return
	}

	job, err := h.jobs.AssignMechanic(c.Request.Context(), middleware.TenantID(c), c.Param("job_id"), payload.TechnicianID)
	if err != nil {
		respondError(c, jobComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// TransitionStatus moves a job through the workflow.
//
// A completion refused because the invoice still has a balance is answered with 402 and the invoice to collect;
// it is an expected outcome, not an error.
//
// @Summary      Change job status
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                           true  "Tenant"
// @Param        job_id       path    string                           true  "Job ID"
// @Param        body         body    request.TransitionStatusRequest  true  "Target status"
// @Success      200  {object}  response.JobResponse
// @Failure      402  {object}  response.PaymentRequiredResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/status [patch]
func (h *JobHandler) TransitionStatus(c *gin.Context) {
	var payload request.TransitionStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, jobComponent, err)
		return
	}

	jobID := c.Param("job_id")
	result, err := h.lifecycle.TransitionStatus(c.Request.Context(), middleware.TenantID(c), jobID, payload.ResolveStatus(), middleware.Actor(c))
	if err != nil {
		respondError(c, jobComponent, err)
		return
	}

	switch result.Outcome {
	case usecase.OutcomePaymentRequired:
		log.Printf("[job][handler] completion blocked job_id=%s invoice_id=%s", jobID, result.PaymentRequired.InvoiceID)
		c.JSON(http.StatusPaymentRequired, response.FromPaymentRequired(result.Job, *result.PaymentRequired))
	default:
		c.JSON(http.StatusOK, response.FromJob(result.Job))
	}
}

// DeleteJob godoc
// @Summary      Delete a job that was never billed
// @Tags         jobs
// @Param        X-Tenant-ID  header  string  true  "Tenant"
// @Param        job_id       path    string  true  "Job ID"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /jobs/{job_id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.jobs.DeleteJob(c.Request.Context(), middleware.TenantID(c), c.Param("job_id"), middleware.Actor(c)); err != nil {
		respondError(c, jobComponent, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTasks godoc
// @Summary      List the tasks of a job
// @Tags         jobs
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Tenant"
// @Param        job_id       path    string  true  "Job ID"
// @Success      200  {array}  response.TaskResponse
// @Router       /jobs/{job_id}/tasks [get]
func (h *JobHandler) ListTasks(c *gin.Context) {
	tasks, err := h.jobs.ListTasks(c.Request.Context(), middleware.TenantID(c), c.Param("job_id"))
	if err != nil {
		respondError(c, jobComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTasks(tasks))
}
