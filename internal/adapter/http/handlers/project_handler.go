package handlers

import (
	"net/http"
	"strconv"

	request "studio_ops/internal/adapter/http/dto/request"
	response "studio_ops/internal/adapter/http/dto/response"
	"studio_ops/internal/usecase"
	"studio_ops/pkg"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves the computed project view and the legacy stored-copy
// create endpoint.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	query := usecase.ProjectQuery{
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
		Page:     intQuery(c, "page"),
		PageSize: intQuery(c, "page_size"),
	}

	rows, err := h.usecase.ListView(c.Request.Context(), query)
	if err != nil {
		abortWith(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	project, err := h.usecase.CreateStored(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusCreated, response.Created(project.ID, "Project created"))
}

// intQuery returns the query parameter as an int, or zero when absent or
// malformed so the usecase defaults apply.
func intQuery(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}
