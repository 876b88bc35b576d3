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

func clientRouter(h *ClientHandler) *gin.Engine {
	r := gin.New()
	r.POST("/clients", h.CreateClient)
	r.GET("/clients", h.ListClients)
	r.GET("/clients/:id", h.GetClient)
	r.PUT("/clients/:id", h.UpdateClient)
	r.DELETE("/clients/:id", h.DeleteClient)
	return r
}

func TestClientHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		r := clientRouter(NewClientHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with unknown fields preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		r := clientRouter(NewClientHandler(uc))

		id := entities.NewID()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, c entities.Client) (entities.Client, error) {
				if c.Name != "Alice Creative" {
					t.Fatalf("unexpected client %+v", c)
				}
				if c.Extra["instagram"] != "@alice" {
					t.Fatalf("expected unknown field captured, got %v", c.Extra)
				}
				c.ID = id
				return c, nil
			})

		body := `{"name":"Alice Creative","phone":"628123","instagram":"@alice"}`
		req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewBufferString(body))
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
		if resp["_id"] != string(id) || resp["message"] != "Client created" {
			t.Fatalf("unexpected body %v", resp)
		}
	})
}

func TestClientHandler_GetClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		r := clientRouter(NewClientHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/clients/zzz", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		r := clientRouter(NewClientHandler(uc))

		id := entities.NewID()
		uc.EXPECT().GetByID(gomock.Any(), id).Return(entities.Client{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodGet, "/clients/"+string(id), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "CLIENT_NOT_FOUND" {
			t.Fatalf("unexpected body %v", resp)
		}
	})
}

func TestClientHandler_UpdateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientUseCase(ctrl)
	r := clientRouter(NewClientHandler(uc))

	id := entities.NewID()
	uc.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ any, _ entities.ID, fields map[string]any) error {
			if fields["name"] != "Renamed" {
				t.Fatalf("expected partial fields, got %v", fields)
			}
			if _, ok := fields["phone"]; ok {
				t.Fatalf("expected unsupplied attributes absent, got %v", fields)
			}
			return nil
		})

	req := httptest.NewRequest(http.MethodPut, "/clients/"+string(id), bytes.NewBufferString(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestClientHandler_DeleteClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientUseCase(ctrl)
	r := clientRouter(NewClientHandler(uc))

	id := entities.NewID()
	uc.EXPECT().Delete(gomock.Any(), id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+string(id), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
