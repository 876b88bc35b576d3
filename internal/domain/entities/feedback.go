package entities

// Feedback is a customer rating plus comment, optionally tied to a client
// and/or an invoice by raw reference.

type Feedback struct {
	ID        ID             `json:"_id"`
	ClientID  string         `json:"clientId,omitempty"`
	InvoiceID string         `json:"invoiceId,omitempty"`
	Rating    *float64       `json:"rating,omitempty"`
	Comment   string         `json:"comment,omitempty"`
	Extra     map[string]any `json:"-"`
}
