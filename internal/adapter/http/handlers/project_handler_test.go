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

func projectRouter(h *ProjectHandler) *gin.Engine {
	r := gin.New()
	r.GET("/projects", h.ListProjects)
	r.POST("/projects", h.CreateProject)
	return r
}

func TestProjectHandler_ListProjects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("parses query parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := projectRouter(NewProjectHandler(uc))

		uc.EXPECT().ListView(gomock.Any(), usecase.ProjectQuery{
			Search:   "alice",
			Sort:     "deadline-asc",
			Page:     2,
			PageSize: 5,
		}).Return([]entities.ProjectRow{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/projects?search=alice&sort=deadline-asc&page=2&page_size=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed paging falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := projectRouter(NewProjectHandler(uc))

		uc.EXPECT().ListView(gomock.Any(), usecase.ProjectQuery{}).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/projects?page=abc&page_size=", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("rows serialized as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := projectRouter(NewProjectHandler(uc))

		uc.EXPECT().ListView(gomock.Any(), gomock.Any()).Return([]entities.ProjectRow{
			{ID: "111111111111111111111111", ClientName: "Alice Creative", Outstanding: 23300},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var rows []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(rows) != 1 || rows[0]["outstanding"] != 23300.0 {
			t.Fatalf("unexpected rows %v", rows)
		}
	})
}

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	r := projectRouter(NewProjectHandler(uc))

	uc.EXPECT().CreateStored(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, in usecase.StoredProjectInput) (entities.Project, error) {
			if in.ProjectName != "Rebrand" {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.Project{ID: entities.NewID(), ProjectName: in.ProjectName}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString(`{"projectName":"Rebrand"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}
