package response

import (
	"studio_ops/internal/domain/entities"
)

type InvoiceResponse struct {
	ID            string                 `json:"_id"`
	ClientID      string                 `json:"clientId,omitempty"`
	InvoiceNumber string                 `json:"invoiceNumber,omitempty"`
	Items         []entities.InvoiceItem `json:"items"`
	PPN           bool                   `json:"ppn"`
	PPH           bool                   `json:"pph"`
	Status        string                 `json:"status,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	Tax           float64                `json:"tax"`
	Total         float64                `json:"total"`
	Dibayar       *float64               `json:"dibayar,omitempty"`
	IssuedAt      string                 `json:"issuedAt,omitempty"`
	DueDate       string                 `json:"dueDate,omitempty"`
	CreatedAt     string                 `json:"createdAt,omitempty"`

	extra map[string]any
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID.String(),
		ClientID:      inv.ClientID,
		InvoiceNumber: inv.InvoiceNumber,
		Items:         inv.Items,
		PPN:           inv.PPN,
		PPH:           inv.PPH,
		Status:        inv.Status,
		Notes:         inv.Notes,
		Tax:           inv.Tax,
		Total:         inv.Total,
		Dibayar:       inv.Dibayar,
		IssuedAt:      inv.IssuedAt,
		DueDate:       inv.DueDate,
		CreatedAt:     inv.CreatedAt,
		extra:         inv.Extra,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}

type invoiceResponseAlias InvoiceResponse

func (r InvoiceResponse) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(invoiceResponseAlias(r), r.extra)
}

// InvoiceNumberResponse is the generate-number peek result.

type InvoiceNumberResponse struct {
	InvoiceNumber string `json:"invoice_number"`
}
