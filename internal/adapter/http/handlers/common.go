package handlers

import (
	"net/http"

	"studio_ops/internal/domain/entities"
	"studio_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid identifier", http.StatusBadRequest)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// parseIDParam validates the :id path segment. Malformed identifiers are
// rejected with 400 before any storage lookup.
func parseIDParam(c *gin.Context) (entities.ID, bool) {
	id, err := entities.ParseID(c.Param("id"))
	if err != nil {
		abortWith(c, errInvalidID)
		return "", false
	}
	return id, true
}
