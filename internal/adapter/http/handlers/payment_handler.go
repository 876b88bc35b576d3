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

// PaymentHandler handles HTTP requests for payment records.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	payment, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(), payload.MPPayload)
	if err != nil {
		abortWith(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Created(payment.ID, "Payment created"))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	payment, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	if err := h.usecase.Update(c.Request.Context(), id, payload.Fields); err != nil {
		abortWith(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Payment updated"})
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Payment deleted"})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidGatewayPayload):
		return pkg.NewDomainErrorSimple("INVALID_GATEWAY_PAYLOAD", "Invalid payment gateway payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
