package handlers

import (
	"net/http"

	"studio_ops/internal/usecase"
	"studio_ops/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves aggregate counters for the landing dashboard.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		abortWith(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, summary)
}
