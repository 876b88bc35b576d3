package request

import (
	"encoding/json"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase"
)

// InvoiceRequest is the create/update payload for invoices.
//
// Caller-supplied tax and total are accepted into Fields but never trusted:
// the usecase overwrites both with recomputed values before persistence.

type InvoiceRequest struct {
	ClientID      string
	InvoiceNumber string
	Items         []entities.InvoiceItem
	PPN           bool
	PPH           bool
	Status        string
	Notes         string
	Dibayar       *float64
	IssuedAt      string
	DueDate       string
	CreatedAt     string

	Extra  map[string]any
	Fields map[string]any
}

type invoiceRequestBody struct {
	ClientID      string                 `json:"clientId"`
	InvoiceNumber string                 `json:"invoiceNumber"`
	Items         []entities.InvoiceItem `json:"items"`
	PPN           bool                   `json:"ppn"`
	PPH           bool                   `json:"pph"`
	Status        string                 `json:"status"`
	Notes         string                 `json:"notes"`
	Dibayar       *float64               `json:"dibayar"`
	IssuedAt      string                 `json:"issuedAt"`
	DueDate       string                 `json:"dueDate"`
	CreatedAt     string                 `json:"createdAt"`
}

func (r *InvoiceRequest) UnmarshalJSON(b []byte) error {
	var body invoiceRequestBody
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	var all map[string]any
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	// "_id" is the response echo of the document key, never a writable attribute.
	delete(all, "_id")

	r.ClientID = body.ClientID
	r.InvoiceNumber = body.InvoiceNumber
	r.Items = body.Items
	r.PPN = body.PPN
	r.PPH = body.PPH
	r.Status = body.Status
	r.Notes = body.Notes
	r.Dibayar = body.Dibayar
	r.IssuedAt = body.IssuedAt
	r.DueDate = body.DueDate
	r.CreatedAt = body.CreatedAt
	r.Fields = all
	r.Extra = extraOf(all,
		"clientId", "invoiceNumber", "items", "ppn", "pph", "status",
		"notes", "tax", "total", "dibayar", "issuedAt", "dueDate", "createdAt",
	)
	return nil
}

func (r InvoiceRequest) ToEntity() entities.Invoice {
	return entities.Invoice{
		ClientID:      r.ClientID,
		InvoiceNumber: r.InvoiceNumber,
		Items:         r.Items,
		PPN:           r.PPN,
		PPH:           r.PPH,
		Status:        r.Status,
		Notes:         r.Notes,
		Dibayar:       r.Dibayar,
		IssuedAt:      r.IssuedAt,
		DueDate:       r.DueDate,
		CreatedAt:     r.CreatedAt,
		Extra:         r.Extra,
	}
}

func (r InvoiceRequest) ToPatch() usecase.InvoicePatch {
	return usecase.InvoicePatch{
		Items:  r.Items,
		PPN:    r.PPN,
		PPH:    r.PPH,
		Status: r.Status,
		Fields: r.Fields,
	}
}
