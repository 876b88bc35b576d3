package interfaces

import (
	"context"

	"studio_ops/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListAll(ctx context.Context) ([]entities.Payment, error)
	GetByID(ctx context.Context, id entities.ID) (entities.Payment, error)
	Update(ctx context.Context, id entities.ID, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id entities.ID) (bool, error)
	Count(ctx context.Context) (int64, error)
}
