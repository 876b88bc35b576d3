package request

import (
	"encoding/json"
	"testing"
)

func TestInvoiceRequestUnmarshalJSON(t *testing.T) {
	body := `{
		"clientId": "64a1f0b2c3d4e5f601234567",
		"items": [{"description":"Design A","price":10000},{"description":"Design B","price":"20000"}],
		"ppn": true,
		"status": "cicil",
		"tax": 999,
		"total": 999,
		"discount": 500,
		"po_number": "PO-77"
	}`

	var r InvoiceRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.ClientID != "64a1f0b2c3d4e5f601234567" {
		t.Fatalf("unexpected clientId %q", r.ClientID)
	}
	if len(r.Items) != 2 || r.Items[1].Price != 20000 {
		t.Fatalf("unexpected items %+v", r.Items)
	}
	if !r.PPN || r.PPH {
		t.Fatalf("unexpected tax flags %+v", r)
	}

	// Unknown attributes land in Extra; known ones never do, including the
	// derived tax/total the caller has no authority over.
	if r.Extra["discount"] != float64(500) || r.Extra["po_number"] != "PO-77" {
		t.Fatalf("unexpected extra %v", r.Extra)
	}
	if _, ok := r.Extra["tax"]; ok {
		t.Fatalf("tax must not be treated as an extra attribute")
	}
	if _, ok := r.Extra["items"]; ok {
		t.Fatalf("items must not be treated as an extra attribute")
	}

	// Fields keeps everything the caller supplied, for merge updates.
	if _, ok := r.Fields["status"]; !ok {
		t.Fatalf("expected status in fields, got %v", r.Fields)
	}
	if _, ok := r.Fields["discount"]; !ok {
		t.Fatalf("expected discount in fields, got %v", r.Fields)
	}

	ent := r.ToEntity()
	if ent.Extra["discount"] != float64(500) {
		t.Fatalf("expected extra carried onto entity, got %v", ent.Extra)
	}

	patch := r.ToPatch()
	if len(patch.Items) != 2 || !patch.PPN || patch.Status != "cicil" {
		t.Fatalf("unexpected patch %+v", patch)
	}
}

func TestRequestUnmarshalDropsEchoedID(t *testing.T) {
	// A caller round-tripping a GET body into PUT echoes the "_id" key; it is
	// never a writable attribute.
	var inv InvoiceRequest
	if err := json.Unmarshal([]byte(`{"_id":"64a1f0b2c3d4e5f601234567","status":"cicil"}`), &inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := inv.Fields["_id"]; ok {
		t.Fatalf("_id leaked into fields: %v", inv.Fields)
	}
	if _, ok := inv.Extra["_id"]; ok {
		t.Fatalf("_id leaked into extra: %v", inv.Extra)
	}

	var cl ClientRequest
	if err := json.Unmarshal([]byte(`{"_id":"64a1f0b2c3d4e5f601234567","name":"Alice"}`), &cl); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cl.Fields["_id"]; ok {
		t.Fatalf("_id leaked into fields: %v", cl.Fields)
	}

	var pay PaymentRequest
	if err := json.Unmarshal([]byte(`{"_id":"64a1f0b2c3d4e5f601234567","method":"transfer"}`), &pay); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := pay.Fields["_id"]; ok {
		t.Fatalf("_id leaked into fields: %v", pay.Fields)
	}

	var fb FeedbackRequest
	if err := json.Unmarshal([]byte(`{"_id":"64a1f0b2c3d4e5f601234567","comment":"great"}`), &fb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := fb.Fields["_id"]; ok {
		t.Fatalf("_id leaked into fields: %v", fb.Fields)
	}
}

func TestClientRequestUnmarshalJSON(t *testing.T) {
	body := `{"name":"Alice Creative","phone":"628123","instagram":"@alice"}`

	var r ClientRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name != "Alice Creative" || r.Phone != "628123" {
		t.Fatalf("unexpected request %+v", r)
	}
	if r.Extra["instagram"] != "@alice" {
		t.Fatalf("expected unknown field in extra, got %v", r.Extra)
	}
	if _, ok := r.Extra["name"]; ok {
		t.Fatalf("known field leaked into extra: %v", r.Extra)
	}
}

func TestPaymentRequestUnmarshalJSON(t *testing.T) {
	body := `{"invoiceId":"64a1f0b2c3d4e5f601234567","amount":10000,"method":"transfer","mp_payload":{"transaction_amount":100}}`

	var r PaymentRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Amount == nil || *r.Amount != 10000 {
		t.Fatalf("unexpected amount %v", r.Amount)
	}
	if len(r.MPPayload) == 0 {
		t.Fatalf("expected mp_payload captured")
	}
	if _, ok := r.Fields["mp_payload"]; ok {
		t.Fatalf("mp_payload must not be persisted, got %v", r.Fields)
	}
	if _, ok := r.Extra["mp_payload"]; ok {
		t.Fatalf("mp_payload must not be an extra attribute")
	}
}
