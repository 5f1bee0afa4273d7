package routes

import (
	"garage_workflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathInvoices  = "/invoices"
)

func addBillingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, invoiceHandler *handlers.InvoiceHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("/:estimate_id", estimateHandler.GetEstimate)
		estimates.PATCH("/:estimate_id/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/:estimate_id/reject", estimateHandler.RejectEstimate)
		estimates.PATCH("/:estimate_id/cancel", estimateHandler.CancelEstimate)
		estimates.PATCH("/:estimate_id/discount", estimateHandler.ApplyDiscount)
		estimates.PATCH("/:estimate_id/recalculate", estimateHandler.RecalculateEstimate)
		estimates.POST("/:estimate_id/invoice", estimateHandler.GenerateInvoice)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
		invoices.POST("/:invoice_id/payments", invoiceHandler.RecordPayment)
		invoices.GET("/:invoice_id/payments", invoiceHandler.ListPayments)
	}
}
