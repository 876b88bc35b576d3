package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"studio_ops/internal/domain/entities"
	mock_interfaces "studio_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_Create(t *testing.T) {
	t.Run("without payload skips gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				return p, nil
			})

		out, err := uc.Create(context.Background(), entities.Payment{Method: "transfer"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ID == "" {
			t.Fatalf("expected generated id")
		}
		if out.MPPaymentID != "" || out.MPStatus != "" {
			t.Fatalf("expected no provider fields, got %+v", out)
		}
	})

	t.Run("with payload charges through gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway)

		payload := json.RawMessage(`{"transaction_amount":100}`)
		providerResp := json.RawMessage(`{"id":123,"status":"approved"}`)
		gateway.EXPECT().CreatePayment(gomock.Any(), payload).Return("123", "approved", providerResp, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				return p, nil
			})

		out, err := uc.Create(context.Background(), entities.Payment{}, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.MPPaymentID != "123" || out.MPStatus != "approved" {
			t.Fatalf("expected provider fields, got %+v", out)
		}
		if out.MPResponse["status"] != "approved" {
			t.Fatalf("expected parsed provider response, got %v", out.MPResponse)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		_, err := uc.Create(context.Background(), entities.Payment{}, json.RawMessage(`{broken`))
		if !errors.Is(err, ErrInvalidGatewayPayload) {
			t.Fatalf("expected ErrInvalidGatewayPayload, got %v", err)
		}
	})

	t.Run("payload without gateway configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		_, err := uc.Create(context.Background(), entities.Payment{}, json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("gateway error aborts before persistence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("declined"))

		if _, err := uc.Create(context.Background(), entities.Payment{}, json.RawMessage(`{}`)); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPaymentUseCase_NotFound(t *testing.T) {
	id := entities.NewID()

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), id).Return(entities.Payment{}, nil)

		if _, err := uc.GetByID(context.Background(), id); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(false, nil)

		if err := uc.Update(context.Background(), id, map[string]any{"method": "cash"}); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), id).Return(false, nil)

		if err := uc.Delete(context.Background(), id); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}
