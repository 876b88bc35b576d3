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

// FeedbackHandler handles HTTP requests for client feedback records.
type FeedbackHandler struct {
	usecase usecase.IFeedbackUseCase
}

func NewFeedbackHandler(uc usecase.IFeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{usecase: uc}
}

func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var payload request.FeedbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	feedback, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		abortWith(c, mapFeedbackError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Created(feedback.ID, "Feedback created"))
}

func (h *FeedbackHandler) ListFeedbacks(c *gin.Context) {
	feedbacks, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapFeedbackError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromFeedbacks(feedbacks))
}

func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	feedback, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapFeedbackError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromFeedback(feedback))
}

func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload request.FeedbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	if err := h.usecase.Update(c.Request.Context(), id, payload.Fields); err != nil {
		abortWith(c, mapFeedbackError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Feedback updated"})
}

func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, mapFeedbackError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Feedback deleted"})
}

func mapFeedbackError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrFeedbackNotFound):
		return pkg.NewDomainErrorSimple("FEEDBACK_NOT_FOUND", "Feedback not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
