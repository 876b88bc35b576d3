package handlers

import (
	"errors"
	"net/http"

	request "studio_ops/internal/adapter/http/dto/request"
	"studio_ops/internal/usecase"
	"studio_ops/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles WhatsApp send requests.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// SendWhatsApp forwards the message to the provider and relays the provider
// response body untouched.
func (h *NotificationHandler) SendWhatsApp(c *gin.Context) {
	var payload request.WhatsAppSendRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	raw, err := h.usecase.SendWhatsApp(c.Request.Context(), payload.Phone, payload.Message)
	if err != nil {
		abortWith(c, mapNotificationError(err))
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPhoneAndMessageRequired):
		return pkg.NewDomainErrorSimple("PHONE_AND_MESSAGE_REQUIRED", "Phone and message are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "WhatsApp gateway is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("NOTIFICATION_FAILED", "Failed to send WhatsApp message", err, http.StatusBadGateway)
	}
}
