package handlers

import (
	"context"
	"net/http"

	request "garage_workflow/internal/adapter/http/dto/request"
	response "garage_workflow/internal/adapter/http/dto/response"
	"garage_workflow/internal/adapter/http/middleware"
	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

const estimateComponent = "estimate"

// EstimateHandler handles HTTP requests for job estimates and invoice generation from them.

type EstimateHandler struct {
	usecase  usecase.IEstimateUseCase
	invoices usecase.IInvoiceSynchronizer
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, invoices usecase.IInvoiceSynchronizer) *EstimateHandler {
	return &EstimateHandler{usecase: uc, invoices: invoices}
}

// CreateEstimate godoc
// @Summary      Calculate the estimate of a job from its approved tasks
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                         true   "Tenant"
// @Param        job_id       path    string                         true   "Job ID"
// @Param        body         body    request.CreateEstimateRequest  false  "Discount"
// @Success      201  {object}  response.EstimateResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /jobs/{job_id}/estimate [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respondInvalidPayload(c, estimateComponent, err)
		return
	}

	estimate, err := h.usecase.CalculateEstimate(c.Request.Context(), middleware.TenantID(c), c.Param("job_id"), payload.ResolveDiscount())
	if err != nil {
		respondError(c, estimateComponent, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), middleware.TenantID(c), c.Param("estimate_id"))
	if err != nil {
		respondError(c, estimateComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchByJob(c, h.usecase.ApproveByJobID)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchByJob(c, h.usecase.RejectByJobID)
}

func (h *EstimateHandler) CancelEstimate(c *gin.Context) {
	h.patchByJob(c, h.usecase.CancelByJobID)
}

// RecalculateEstimate refreshes the totals after task changes.
func (h *EstimateHandler) RecalculateEstimate(c *gin.Context) {
	h.patchByJob(c, h.usecase.Recalculate)
}

// patchByJob resolves the estimate id to its job and applies updater to it.
func (h *EstimateHandler) patchByJob(
	c *gin.Context,
	updater func(ctx context.Context, tenantID, jobID string) (entities.Estimate, error),
) {
	ctx := c.Request.Context()
	tenantID := middleware.TenantID(c)

	current, err := h.usecase.GetByID(ctx, tenantID, c.Param("estimate_id"))
	if err != nil {
		respondError(c, estimateComponent, err)
		return
	}

	estimate, err := updater(ctx, tenantID, current.JobID)
	if err != nil {
		respondError(c, estimateComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ApplyDiscount godoc
// @Summary      Change the estimate discount
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                   true  "Tenant"
// @Param        estimate_id  path    string                   true  "Estimate ID"
// @Param        body         body    request.DiscountRequest  true  "Discount"
// @Success      200  {object}  response.EstimateResponse
// @Router       /estimates/{estimate_id}/discount [patch]
func (h *EstimateHandler) ApplyDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, estimateComponent, err)
		return
	}
	discount, err := payload.ResolveDiscount()
	if err != nil {
		respondInvalidPayload(c, estimateComponent, err)
		return
	}

	estimate, err := h.usecase.ApplyDiscount(c.Request.Context(), middleware.TenantID(c), c.Param("estimate_id"), discount)
	if err != nil {
		respondError(c, estimateComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// GenerateInvoice godoc
// @Summary      Create or re-sync the invoice mirroring an estimate
// @Tags         estimates
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Tenant"
// @Param        estimate_id  path    string  true  "Estimate ID"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{estimate_id}/invoice [post]
func (h *EstimateHandler) GenerateInvoice(c *gin.Context) {
	invoice, err := h.invoices.EnsureInvoiceMirrorsEstimate(c.Request.Context(), middleware.TenantID(c), c.Param("estimate_id"))
	if err != nil {
		respondError(c, estimateComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}
