package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"garage_workflow/internal/usecase"
	"garage_workflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapUsecaseError translates usecase sentinels into API errors.
func mapUsecaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJob),
		errors.Is(err, usecase.ErrInvalidJobStatus), errors.Is(err, usecase.ErrInvalidTechnicianID), errors.Is(err, usecase.ErrInvalidTaskID),
		errors.Is(err, usecase.ErrInvalidTask), errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidInventoryItemID),
		errors.Is(err, usecase.ErrInvalidInventoryItem), errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidDiscount),
		errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)

	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInventoryItemNotFound):
		return pkg.NewDomainErrorSimple("INVENTORY_ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAllocationNotFound):
		return pkg.NewDomainErrorSimple("ALLOCATION_NOT_FOUND", "Allocation not found", http.StatusNotFound)

	case errors.Is(err, usecase.ErrJobLocked):
		return pkg.NewDomainError("JOB_LOCKED", "Job is closed and cannot be changed", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status transition not allowed", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentExceedsBalance):
		return pkg.NewDomainError("PAYMENT_EXCEEDS_BALANCE", "Payment amount exceeds the invoice balance", err, http.StatusUnprocessableEntity)

	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainError("INSUFFICIENT_STOCK", "Not enough stock available", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTaskState):
		return pkg.NewDomainError("INVALID_TASK_STATE", "Task is not in the required state", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidAllocationState):
		return pkg.NewDomainError("INVALID_ALLOCATION_STATE", "Allocation is not in the required state", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateAlreadyExists):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_EXISTS", "Estimate already exists for this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidEstimateState), errors.Is(err, usecase.ErrEstimateNotInvoiceable):
		return pkg.NewDomainError("INVALID_ESTIMATE_STATE", "Estimate is not in the required state", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainError("INVOICE_NOT_PAYABLE", "Invoice does not accept payments", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotDeletable):
		return pkg.NewDomainError("JOB_NOT_DELETABLE", "Job cannot be deleted", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "Resource changed concurrently, retry", err, http.StatusConflict)

	case errors.Is(err, usecase.ErrPaymentRejected):
		return pkg.NewDomainError("PAYMENT_REJECTED", "Payment rejected by provider", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotAvailable), errors.Is(err, usecase.ErrJobNumberUnavailable),
		errors.Is(err, usecase.ErrInvoiceNumberUnavailable):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "A dependency is unavailable", err, http.StatusServiceUnavailable)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, component string, err error) {
	appErr := mapUsecaseError(err)
	log.Printf("[%s][handler] %s %s failed status=%d code=%s err=%v", component, c.Request.Method, c.FullPath(), appErr.HTTPStatus, appErr.Code, err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context, component string, err error) {
	log.Printf("[%s][handler] invalid payload path=%s err=%v", component, c.FullPath(), err)
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

// bindOptionalJSON decodes the body into v when one is present. An empty body leaves v untouched.
func bindOptionalJSON(c *gin.Context, v any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	if !json.Valid(raw) {
		return errors.New("request body is not valid json")
	}
	return json.Unmarshal(raw, v)
}
