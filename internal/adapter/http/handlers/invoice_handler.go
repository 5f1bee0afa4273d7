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

const invoiceComponent = "invoice"

// InvoiceHandler handles invoice reads and payment recording.

type InvoiceHandler struct {
	invoices usecase.IInvoiceSynchronizer
	payments usecase.IPaymentUseCase
}

func NewInvoiceHandler(invoices usecase.IInvoiceSynchronizer, payments usecase.IPaymentUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, payments: payments}
}

// GetInvoice godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Tenant"
// @Param        invoice_id   path    string  true  "Invoice ID"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoices.GetByID(c.Request.Context(), middleware.TenantID(c), c.Param("invoice_id"))
	if err != nil {
		respondError(c, invoiceComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// RecordPayment godoc
// @Summary      Record a payment against an invoice
// @Description  method=mercadopago captures the payment through Mercado Pago first using mp_payload.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                        true  "Tenant"
// @Param        invoice_id   path    string                        true  "Invoice ID"
// @Param        body         body    request.RecordPaymentRequest  true  "Payment"
// @Success      201  {object}  response.PaymentReceiptResponse
// @Failure      402  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[payment][handler] record start invoice_id=%s", invoiceID)

	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, invoiceComponent, err)
		return
	}

	receipt, err := h.payments.RecordPayment(c.Request.Context(), middleware.TenantID(c), invoiceID, payload.ToCommand(middleware.Actor(c)))
	if err != nil {
		respondError(c, invoiceComponent, err)
		return
	}
	log.Printf("[payment][handler] record success invoice_id=%s txn_id=%s status=%s", invoiceID, receipt.Transaction.ID, receipt.Invoice.Status)
	c.JSON(http.StatusCreated, response.FromPaymentReceipt(receipt))
}

// ListPayments godoc
// @Summary      List the payment transactions of an invoice
// @Tags         invoices
// @Produce      json
// @Param        X-Tenant-ID  header  string  true  "Tenant"
// @Param        invoice_id   path    string  true  "Invoice ID"
// @Success      200  {array}  response.PaymentTransactionResponse
// @Router       /invoices/{invoice_id}/payments [get]
func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	payments, err := h.payments.ListByInvoiceID(c.Request.Context(), middleware.TenantID(c), c.Param("invoice_id"))
	if err != nil {
		respondError(c, invoiceComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTransactions(payments))
}
