package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio_ops/internal/adapter/http/handlers/mocks"
	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func invoiceRouter(h *InvoiceHandler) *gin.Engine {
	r := gin.New()
	r.POST("/invoices", h.CreateInvoice)
	r.GET("/invoices", h.ListInvoices)
	r.GET("/invoices/generate-number", h.GenerateInvoiceNumber)
	r.GET("/invoices/:id", h.GetInvoice)
	r.PUT("/invoices/:id", h.UpdateInvoice)
	r.DELETE("/invoices/:id", h.DeleteInvoice)
	r.GET("/invoices/:id/generate", h.GenerateInvoicePNG)
	return r
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc, nil))

		req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with computed financials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc, nil))

		id := entities.NewID()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, inv entities.Invoice) (entities.Invoice, error) {
				if len(inv.Items) != 2 || !inv.PPN {
					t.Fatalf("unexpected bound invoice %+v", inv)
				}
				inv.ID = id
				inv.ApplyFinancials()
				return inv, nil
			})

		body := `{"clientId":"64a1f0b2c3d4e5f601234567","items":[{"description":"Design A","price":10000},{"description":"Design B","price":20000}],"ppn":true,"status":"cicil"}`
		req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["_id"] != string(id) {
			t.Fatalf("expected _id %q, got %v", id, resp["_id"])
		}
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc, nil))

		req := httptest.NewRequest(http.MethodGet, "/invoices/not-hex", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "INVALID_ID" {
			t.Fatalf("expected INVALID_ID, got %v", resp["code"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc, nil))

		id := entities.NewID()
		uc.EXPECT().GetByID(gomock.Any(), id).Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/invoices/"+string(id), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc, nil))

		id := entities.NewID()
		uc.EXPECT().GetByID(gomock.Any(), id).Return(entities.Invoice{
			ID:            id,
			InvoiceNumber: "INV-20250722-0001",
			Extra:         map[string]any{"discount": 500.0},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/invoices/"+string(id), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["invoiceNumber"] != "INV-20250722-0001" {
			t.Fatalf("unexpected body %v", resp)
		}
		if resp["discount"] != 500.0 {
			t.Fatalf("expected extra field passthrough, got %v", resp)
		}
	})
}

func TestInvoiceHandler_UpdateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards patch fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc, nil))

		id := entities.NewID()
		uc.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.ID, patch usecase.InvoicePatch) error {
				if len(patch.Items) != 1 || patch.Status != "lunas" {
					t.Fatalf("unexpected patch %+v", patch)
				}
				if _, ok := patch.Fields["notes"]; !ok {
					t.Fatalf("expected notes in fields, got %v", patch.Fields)
				}
				return nil
			})

		body := `{"items":[{"description":"Design A","price":10000}],"status":"lunas","notes":"final"}`
		req := httptest.NewRequest(http.MethodPut, "/invoices/"+string(id), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(NewInvoiceHandler(uc, nil))

		id := entities.NewID()
		uc.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodPut, "/invoices/"+string(id), bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_GenerateInvoiceNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	numberUC := mocks.NewMockIInvoiceNumberUseCase(ctrl)
	r := invoiceRouter(NewInvoiceHandler(nil, numberUC))

	numberUC.EXPECT().NextNumber(gomock.Any()).Return("INV-20250722-0004", nil)

	req := httptest.NewRequest(http.MethodGet, "/invoices/generate-number", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["invoice_number"] != "INV-20250722-0004" {
		t.Fatalf("unexpected body %v", resp)
	}
}

func TestInvoiceHandler_GenerateInvoicePNG(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	r := invoiceRouter(NewInvoiceHandler(uc, nil))

	id := entities.NewID()
	uc.EXPECT().RenderPNG(gomock.Any(), id).Return([]byte("pngbytes"), entities.Invoice{ID: id, InvoiceNumber: "INV-20250722-0002"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/invoices/"+string(id)+"/generate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=invoice_INV-20250722-0002.png" {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if w.Body.String() != "pngbytes" {
		t.Fatalf("unexpected body")
	}
}
