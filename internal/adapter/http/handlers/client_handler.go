package handlers

import (
	"errors"
	"net/http"

	request "studio_ops/internal/adapter/http/dto/request"
	response "studio_ops/internal/adapter/http/dto/response"
	"studio_ops/internal/usecase"
	"studio_ops/pkg"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles HTTP requests for client records.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		abortWith(c, mapClientError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Created(client.ID, "Client created"))
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapClientError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	client, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapClientError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	if err := h.usecase.Update(c.Request.Context(), id, payload.Fields); err != nil {
		abortWith(c, mapClientError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Client updated"})
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, mapClientError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Client deleted"})
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
