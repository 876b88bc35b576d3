package response

import (
	"studio_ops/internal/domain/entities"
)

type PaymentResponse struct {
	ID        string   `json:"_id"`
	InvoiceID string   `json:"invoiceId,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	Method    string   `json:"method,omitempty"`
	Date      string   `json:"date,omitempty"`

	MPPaymentID string         `json:"mp_payment_id,omitempty"`
	MPStatus    string         `json:"mp_status,omitempty"`
	MPResponse  map[string]any `json:"mp_response,omitempty"`

	extra map[string]any
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID.String(),
		InvoiceID:   p.InvoiceID,
		Amount:      p.Amount,
		Method:      p.Method,
		Date:        p.Date,
		MPPaymentID: p.MPPaymentID,
		MPStatus:    p.MPStatus,
		MPResponse:  p.MPResponse,
		extra:       p.Extra,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

type paymentResponseAlias PaymentResponse

func (r PaymentResponse) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(paymentResponseAlias(r), r.extra)
}
