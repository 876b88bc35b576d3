package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_interfaces "studio_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoiceNumberUseCase_NextNumber(t *testing.T) {
	pinned := time.Date(2025, 7, 22, 15, 4, 5, 0, time.UTC)

	t.Run("formats date and 1-based sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceNumberUseCase(repo)
		uc.clock = func() time.Time { return pinned }

		repo.EXPECT().CountByIssuedDate(gomock.Any(), "20250722").Return(int64(3), nil)

		got, err := uc.NextNumber(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "INV-20250722-0004" {
			t.Fatalf("expected INV-20250722-0004, got %q", got)
		}
	})

	t.Run("first invoice of the day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceNumberUseCase(repo)
		uc.clock = func() time.Time { return pinned }

		repo.EXPECT().CountByIssuedDate(gomock.Any(), "20250722").Return(int64(0), nil)

		got, err := uc.NextNumber(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "INV-20250722-0001" {
			t.Fatalf("expected INV-20250722-0001, got %q", got)
		}
	})

	t.Run("sequence crosses four digits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceNumberUseCase(repo)
		uc.clock = func() time.Time { return pinned }

		repo.EXPECT().CountByIssuedDate(gomock.Any(), "20250722").Return(int64(9999), nil)

		got, err := uc.NextNumber(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "INV-20250722-10000" {
			t.Fatalf("expected INV-20250722-10000, got %q", got)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceNumberUseCase(repo)
		uc.clock = func() time.Time { return pinned }

		repo.EXPECT().CountByIssuedDate(gomock.Any(), "20250722").Return(int64(0), errors.New("db"))

		if _, err := uc.NextNumber(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
