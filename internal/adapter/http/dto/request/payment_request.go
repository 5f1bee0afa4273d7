package request

import (
	"bytes"
	"encoding/json"
	"strings"

	"garage_workflow/internal/domain/entities"
	"garage_workflow/internal/usecase"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest records a payment against an invoice.
//
// `mp_payload` is only read for method=mercadopago and is forwarded as-is (raw JSON) to support varying
// Mercado Pago schemas.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method" binding:"required"`
	Reference string          `json:"reference"`
	MPPayload json.RawMessage `json:"mp_payload"`
}

func (r RecordPaymentRequest) ToCommand(actor string) usecase.RecordPaymentCommand {
	cmd := usecase.RecordPaymentCommand{
		Amount:     r.Amount,
		Method:     entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.Method))),
		Reference:  r.Reference,
		RecordedBy: actor,
	}
	if p := bytes.TrimSpace(r.MPPayload); len(p) > 0 && !bytes.Equal(p, []byte("null")) {
		cmd.ProviderPayload = json.RawMessage(p)
	}
	return cmd
}
