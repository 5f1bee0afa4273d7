package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/infrastructure/metrics"
	"garage_workflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentAmount       = errors.New("invalid payment amount")
	ErrInvalidPaymentMethod       = errors.New("invalid payment method")
	ErrPaymentExceedsBalance      = errors.New("payment exceeds invoice balance")
	ErrInvoiceNotPayable          = errors.New("invoice does not accept payments")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrPaymentGatewayNotAvailable = errors.New("payment gateway not configured")
	ErrPaymentRejected            = errors.New("payment rejected by provider")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

const providerStatusApproved = "approved"

// IPaymentUseCase records payments against invoices.
//
// RecordPayment is the only writer of an invoice's paid amount. The balance check and the paid amount change are a
// single version-guarded write, so two concurrent payments cannot both pass the balance check.
// A mercadopago payment is captured through the gateway first; a rejected capture is appended as a failed
// transaction and the invoice is left untouched.

type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, tenantID, invoiceID string, cmd RecordPaymentCommand) (PaymentReceipt, error)
	ListByInvoiceID(ctx context.Context, tenantID, invoiceID string) ([]entities.PaymentTransaction, error)
}

type RecordPaymentCommand struct {
	Amount     decimal.Decimal
	Method     entities.PaymentMethod
	Reference  string
	RecordedBy string
	// ProviderPayload is the Mercado Pago payment request (token, payment_method_id, payer...). Only read for
	// the mercadopago method.
	ProviderPayload json.RawMessage
}

type PaymentReceipt struct {
	Invoice     entities.Invoice
	Transaction entities.PaymentTransaction
}

type PaymentUseCase struct {
	invoiceRepo interfaces.IInvoiceRepository
	txnRepo     interfaces.IPaymentTransactionRepository
	gateway     interfaces.IPaymentGateway
	now         func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(invoiceRepo interfaces.IInvoiceRepository, txnRepo interfaces.IPaymentTransactionRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{invoiceRepo: invoiceRepo, txnRepo: txnRepo, gateway: gateway, now: utcNow}
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, tenantID, invoiceID string, cmd RecordPaymentCommand) (PaymentReceipt, error) {
	trimAll(&tenantID, &invoiceID, &cmd.Reference, &cmd.RecordedBy)
	log.Printf("[payment][usecase] record start tenant=%s invoice_id=%s amount=%s method=%s", tenantID, invoiceID, cmd.Amount, cmd.Method)
	if tenantID == "" {
		return PaymentReceipt{}, ErrInvalidTenantID
	}
	if invoiceID == "" {
		return PaymentReceipt{}, ErrInvalidInvoiceID
	}
	if !cmd.Method.Valid() {
		return PaymentReceipt{}, ErrInvalidPaymentMethod
	}
	if !cmd.Amount.IsPositive() {
		return PaymentReceipt{}, ErrInvalidPaymentAmount
	}

	inv, err := u.loadPayable(ctx, tenantID, invoiceID, cmd.Amount)
	if err != nil {
		log.Printf("[payment][usecase] rejected tenant=%s invoice_id=%s err=%v", tenantID, invoiceID, err)
		return PaymentReceipt{}, err
	}

	txn := entities.PaymentTransaction{
		TenantID:   tenantID,
		InvoiceID:  inv.ID,
		Amount:     cmd.Amount,
		Method:     cmd.Method,
		Reference:  cmd.Reference,
		Status:     entities.PaymentStatusSucceeded,
		RecordedBy: cmd.RecordedBy,
	}

	if cmd.Method == entities.PaymentMethodMercadoPago {
		if err := u.capture(ctx, inv, cmd, &txn); err != nil {
			return PaymentReceipt{}, err
		}
	}

	for attempt := 1; attempt <= maxCASAttempts; attempt++ {
		now := u.now()
		txn.ID = uuid.NewString()
		txn.RecordedAt = now

		paid := inv.ApplyPayment(cmd.Amount, now)
		updated, err := u.invoiceRepo.ApplyPayment(ctx, paid, inv.Version, txn)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[payment][usecase] invoice changed concurrently tenant=%s invoice_id=%s attempt=%d", tenantID, inv.ID, attempt)
			metrics.CASRetriesTotal.WithLabelValues("invoice").Inc()
			if inv, err = u.loadPayable(ctx, tenantID, invoiceID, cmd.Amount); err != nil {
				u.warnCapturedNotApplied(txn, err)
				return PaymentReceipt{}, err
			}
			continue
		}
		if err != nil {
			u.warnCapturedNotApplied(txn, err)
			return PaymentReceipt{}, err
		}

		metrics.PaymentsRecordedTotal.WithLabelValues(string(cmd.Method), string(entities.PaymentStatusSucceeded)).Inc()
		log.Printf("[payment][usecase] recorded tenant=%s invoice_id=%s txn_id=%s paid=%s balance=%s status=%s", tenantID, updated.ID, txn.ID, updated.PaidAmount, updated.Balance, updated.Status)
		return PaymentReceipt{Invoice: updated, Transaction: txn}, nil
	}

	u.warnCapturedNotApplied(txn, ErrConcurrentModification)
	return PaymentReceipt{}, ErrConcurrentModification
}

// loadPayable reads the invoice and checks it can take amount.
func (u *PaymentUseCase) loadPayable(ctx context.Context, tenantID, invoiceID string, amount decimal.Decimal) (entities.Invoice, error) {
	inv, err := u.invoiceRepo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if !inv.Payable() {
		return entities.Invoice{}, fmt.Errorf("%w: invoice %s is %s", ErrInvoiceNotPayable, inv.ID, inv.Status)
	}
	if amount.GreaterThan(inv.Balance) {
		return entities.Invoice{}, fmt.Errorf("%w: amount %s, balance %s", ErrPaymentExceedsBalance, amount, inv.Balance)
	}
	return inv, nil
}

// capture charges the provider and fills the provider fields of txn.
func (u *PaymentUseCase) capture(ctx context.Context, inv entities.Invoice, cmd RecordPaymentCommand, txn *entities.PaymentTransaction) error {
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured invoice_id=%s", inv.ID)
		return ErrPaymentGatewayNotAvailable
	}

	payload, err := providerPayload(inv, cmd)
	if err != nil {
		log.Printf("[payment][usecase] invalid provider payload invoice_id=%s err=%v", inv.ID, err)
		return err
	}

	log.Printf("[payment][usecase] calling payment gateway invoice_id=%s payload_len=%d", inv.ID, len(payload))
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed invoice_id=%s err=%v", inv.ID, err)
		u.recordFailed(ctx, *txn, providerID, providerResp)
		switch {
		case isGatewayUnauthorized(err):
			return ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return ErrPaymentGatewayBadRequest
		}
		return fmt.Errorf("%w: %v", ErrPaymentRejected, err)
	}
	if providerStatus != providerStatusApproved {
		log.Printf("[payment][usecase] payment not approved invoice_id=%s provider_payment_id=%s provider_status=%s", inv.ID, providerID, providerStatus)
		u.recordFailed(ctx, *txn, providerID, providerResp)
		return fmt.Errorf("%w: provider status %s", ErrPaymentRejected, providerStatus)
	}

	log.Printf("[payment][usecase] payment gateway success invoice_id=%s provider_payment_id=%s", inv.ID, providerID)
	txn.ProviderPaymentID = providerID
	txn.ProviderPayloadRaw = providerResp
	if txn.Reference == "" {
		txn.Reference = providerID
	}
	return nil
}

// providerPayload enriches the caller payload with the invoice linkage. The invoice is the source of truth for
// the amount.
func providerPayload(inv entities.Invoice, cmd RecordPaymentCommand) (json.RawMessage, error) {
	req := map[string]any{}
	if len(cmd.ProviderPayload) > 0 {
		if err := json.Unmarshal(cmd.ProviderPayload, &req); err != nil {
			return nil, ErrInvalidProviderPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = inv.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
	}
	req["transaction_amount"] = cmd.Amount.InexactFloat64()
	return json.Marshal(req)
}

func (u *PaymentUseCase) recordFailed(ctx context.Context, txn entities.PaymentTransaction, providerID string, providerResp json.RawMessage) {
	txn.ID = uuid.NewString()
	txn.Status = entities.PaymentStatusFailed
	txn.ProviderPaymentID = providerID
	txn.ProviderPayloadRaw = providerResp
	txn.RecordedAt = u.now()

	metrics.PaymentsRecordedTotal.WithLabelValues(string(txn.Method), string(entities.PaymentStatusFailed)).Inc()
	if _, err := u.txnRepo.Create(ctx, txn); err != nil {
		log.Printf("[payment][usecase] failed to append failed transaction invoice_id=%s err=%v", txn.InvoiceID, err)
	}
}

func (u *PaymentUseCase) warnCapturedNotApplied(txn entities.PaymentTransaction, err error) {
	if txn.ProviderPaymentID == "" {
		return
	}
	log.Printf("[payment][usecase] WARNING captured payment not applied invoice_id=%s provider_payment_id=%s err=%v", txn.InvoiceID, txn.ProviderPaymentID, err)
}

func (u *PaymentUseCase) ListByInvoiceID(ctx context.Context, tenantID, invoiceID string) ([]entities.PaymentTransaction, error) {
	trimAll(&tenantID, &invoiceID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.txnRepo.ListByInvoiceID(ctx, tenantID, invoiceID)
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
