package entities

import "encoding/json"

// Payment records money received against an invoice. InvoiceID is a raw
// reference; no integrity with the invoices collection is enforced.
//
// Gateway fields are populated only when the payment was processed through
// Mercado Pago:
//   - MPResponseRaw keeps the original provider body (JSON) for audit.
//   - MPResponse is the parsed representation, useful for debugging.

type Payment struct {
	ID        ID             `json:"_id"`
	InvoiceID string         `json:"invoiceId,omitempty"`
	Amount    *float64       `json:"amount,omitempty"`
	Method    string         `json:"method,omitempty"`
	Date      string         `json:"date,omitempty"`
	Extra     map[string]any `json:"-"`

	MPPaymentID   string          `json:"mp_payment_id,omitempty"`
	MPStatus      string          `json:"mp_status,omitempty"`
	MPResponseRaw json.RawMessage `json:"mp_response_raw,omitempty"`
	MPResponse    map[string]any  `json:"mp_response,omitempty"`
}
