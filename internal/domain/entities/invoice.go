package entities

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Invoice status values with financial meaning. Status is otherwise
// free-form.
const (
	StatusLunas = "lunas" // fully paid
	StatusCicil = "cicil" // installment; enables outstanding-balance tracking
)

// Tax rates applied to the invoice subtotal.
const (
	PPNRate = 0.11
	PPHRate = 0.025
)

// InvoiceItem is a single billable line.
type InvoiceItem struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// UnmarshalJSON decodes Price leniently: numbers and numeric strings are
// accepted, anything else (including a missing price) decodes to zero.
func (it *InvoiceItem) UnmarshalJSON(b []byte) error {
	var raw struct {
		Description string          `json:"description"`
		Price       json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	it.Description = raw.Description
	it.Price = lenientPrice(raw.Price)
	return nil
}

func lenientPrice(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v
		}
	}
	return 0
}

// Invoice is a billable transaction.
//
// ClientID is the raw stored reference: either a well-formed ID or an opaque
// legacy value (see NormalizeRef). Tax and Total are derived fields; they are
// recomputed on every write and never trusted from caller input.
//
// Monetary values are float64 with no rounding, matching the store's historic
// contents.

type Invoice struct {
	ID            ID             `json:"_id"`
	ClientID      string         `json:"clientId,omitempty"`
	InvoiceNumber string         `json:"invoiceNumber,omitempty"`
	Items         []InvoiceItem  `json:"items"`
	PPN           bool           `json:"ppn"`
	PPH           bool           `json:"pph"`
	Status        string         `json:"status,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	Tax           float64        `json:"tax"`
	Total         float64        `json:"total"`
	Dibayar       *float64       `json:"dibayar,omitempty"`
	IssuedAt      string         `json:"issuedAt,omitempty"` // YYYYMMDD date string
	DueDate       string         `json:"dueDate,omitempty"`
	CreatedAt     string         `json:"createdAt,omitempty"`
	Extra         map[string]any `json:"-"`
}

// Subtotal sums item prices.
func Subtotal(items []InvoiceItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price
	}
	return sum
}

// ComputeTax applies the enabled tax components to a subtotal.
func ComputeTax(subtotal float64, ppn, pph bool) float64 {
	var tax float64
	if ppn {
		tax += subtotal * PPNRate
	}
	if pph {
		tax += subtotal * PPHRate
	}
	return tax
}

// ApplyFinancials recomputes Tax and Total from Items/PPN/PPH and, for lunas
// invoices, forces Dibayar to the recomputed total. Caller-supplied Tax and
// Total are always discarded.
//
// The computation always runs over the full document: an update payload that
// omits Items recomputes over an empty set and zeroes Tax and Total.
func (inv *Invoice) ApplyFinancials() {
	subtotal := Subtotal(inv.Items)
	inv.Tax = ComputeTax(subtotal, inv.PPN, inv.PPH)
	inv.Total = subtotal + inv.Tax
	if inv.Status == StatusLunas {
		total := inv.Total
		inv.Dibayar = &total
	}
}

// Outstanding is the unpaid balance for installment invoices, clamped at
// zero. Non-cicil invoices always report zero.
func (inv Invoice) Outstanding() float64 {
	if inv.Status != StatusCicil {
		return 0
	}
	var paid float64
	if inv.Dibayar != nil {
		paid = *inv.Dibayar
	}
	if out := inv.Total - paid; out > 0 {
		return out
	}
	return 0
}
