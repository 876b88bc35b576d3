package response

import (
	"encoding/json"
	"testing"

	"studio_ops/internal/domain/entities"
)

func TestFromInvoiceMarshalJSON(t *testing.T) {
	paid := 10000.0
	inv := entities.Invoice{
		ID:            "64a1f0b2c3d4e5f601234567",
		ClientID:      "walk-in customer",
		InvoiceNumber: "INV-20250722-0001",
		Items:         []entities.InvoiceItem{{Description: "Design A", Price: 10000}},
		PPN:           true,
		Status:        entities.StatusCicil,
		Tax:           1100,
		Total:         11100,
		Dibayar:       &paid,
		Extra: map[string]any{
			"discount": 500.0,
			"total":    1.0, // stored junk; the typed field must win
		},
	}

	b, err := json.Marshal(FromInvoice(inv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if m["_id"] != "64a1f0b2c3d4e5f601234567" || m["invoiceNumber"] != "INV-20250722-0001" {
		t.Fatalf("unexpected body %v", m)
	}
	if m["discount"] != 500.0 {
		t.Fatalf("expected extra merged, got %v", m)
	}
	if m["total"] != 11100.0 {
		t.Fatalf("typed total must win over extra, got %v", m["total"])
	}
	if m["clientId"] != "walk-in customer" {
		t.Fatalf("expected raw ref passthrough, got %v", m["clientId"])
	}
}

func TestFromClientMarshalJSON(t *testing.T) {
	c := entities.Client{
		ID:    "64a1f0b2c3d4e5f601234567",
		Name:  "Alice Creative",
		Extra: map[string]any{"instagram": "@alice"},
	}

	b, err := json.Marshal(FromClient(c))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if m["name"] != "Alice Creative" || m["instagram"] != "@alice" {
		t.Fatalf("unexpected body %v", m)
	}
}

func TestFromInvoicesEmpty(t *testing.T) {
	out := FromInvoices(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", out)
	}
	b, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("expected [], got %s", b)
	}
}
