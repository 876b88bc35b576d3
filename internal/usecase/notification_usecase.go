package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"studio_ops/internal/usecase/interfaces"
)

var (
	ErrPhoneAndMessageRequired          = errors.New("phone and message required")
	ErrNotificationGatewayNotConfigured = errors.New("notification gateway not configured")
)

// INotificationUseCase sends a WhatsApp text through the provider gateway.
// The provider's raw JSON response is passed through to the caller.

type INotificationUseCase interface {
	SendWhatsApp(ctx context.Context, phone, message string) (json.RawMessage, error)
}

type NotificationUseCase struct {
	gateway interfaces.INotificationGateway
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(gateway interfaces.INotificationGateway) *NotificationUseCase {
	return &NotificationUseCase{gateway: gateway}
}

func (u *NotificationUseCase) SendWhatsApp(ctx context.Context, phone, message string) (json.RawMessage, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || strings.TrimSpace(message) == "" {
		return nil, ErrPhoneAndMessageRequired
	}

	if u.gateway == nil {
		logg.Printf("[notification][usecase] gateway not configured")
		return nil, ErrNotificationGatewayNotConfigured
	}

	resp, err := u.gateway.SendText(ctx, phone, message)
	if err != nil {
		logg.Printf("[notification][usecase] send failed phone=%s err=%v", phone, err)
		return nil, err
	}
	logg.Printf("[notification][usecase] send success phone=%s", phone)
	return resp, nil
}
