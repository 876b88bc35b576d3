package request

import (
	"encoding/json"

	"studio_ops/internal/domain/entities"
)

// PaymentRequest is the create/update payload for payments.
//
// mp_payload is the optional Mercado Pago charge request; it is forwarded to
// the gateway and never persisted itself (the provider response is).

type PaymentRequest struct {
	InvoiceID string
	Amount    *float64
	Method    string
	Date      string
	MPPayload json.RawMessage

	Extra  map[string]any
	Fields map[string]any
}

type paymentRequestBody struct {
	InvoiceID string          `json:"invoiceId"`
	Amount    *float64        `json:"amount"`
	Method    string          `json:"method"`
	Date      string          `json:"date"`
	MPPayload json.RawMessage `json:"mp_payload"`
}

func (r *PaymentRequest) UnmarshalJSON(b []byte) error {
	var body paymentRequestBody
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	var all map[string]any
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	delete(all, "mp_payload")
	delete(all, "_id")

	r.InvoiceID = body.InvoiceID
	r.Amount = body.Amount
	r.Method = body.Method
	r.Date = body.Date
	r.MPPayload = body.MPPayload
	r.Fields = all
	r.Extra = extraOf(all, "invoiceId", "amount", "method", "date")
	return nil
}

func (r PaymentRequest) ToEntity() entities.Payment {
	return entities.Payment{
		InvoiceID: r.InvoiceID,
		Amount:    r.Amount,
		Method:    r.Method,
		Date:      r.Date,
		Extra:     r.Extra,
	}
}
