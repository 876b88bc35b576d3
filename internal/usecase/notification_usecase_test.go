package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mock_interfaces "studio_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_SendWhatsApp(t *testing.T) {
	t.Run("missing phone", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		if _, err := uc.SendWhatsApp(context.Background(), "   ", "hello"); !errors.Is(err, ErrPhoneAndMessageRequired) {
			t.Fatalf("expected ErrPhoneAndMessageRequired, got %v", err)
		}
	})

	t.Run("missing message", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		if _, err := uc.SendWhatsApp(context.Background(), "628123456789", ""); !errors.Is(err, ErrPhoneAndMessageRequired) {
			t.Fatalf("expected ErrPhoneAndMessageRequired, got %v", err)
		}
	})

	t.Run("nil gateway", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		if _, err := uc.SendWhatsApp(context.Background(), "628123456789", "hello"); !errors.Is(err, ErrNotificationGatewayNotConfigured) {
			t.Fatalf("expected ErrNotificationGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("passes provider response through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockINotificationGateway(ctrl)
		uc := NewNotificationUseCase(gateway)

		body := json.RawMessage(`{"status":false,"reason":"invalid token"}`)
		gateway.EXPECT().SendText(gomock.Any(), "628123456789", "invoice ready").Return(body, nil)

		got, err := uc.SendWhatsApp(context.Background(), " 628123456789 ", "invoice ready")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != string(body) {
			t.Fatalf("expected body passthrough, got %s", got)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockINotificationGateway(ctrl)
		uc := NewNotificationUseCase(gateway)

		gateway.EXPECT().SendText(gomock.Any(), "628123456789", "hi").Return(nil, errors.New("timeout"))

		if _, err := uc.SendWhatsApp(context.Background(), "628123456789", "hi"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
