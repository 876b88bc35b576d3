package interfaces

import (
	"context"

	"studio_ops/internal/domain/entities"
)

// IFeedbackRepository abstracts DynamoDB persistence for Feedback.

type IFeedbackRepository interface {
	Create(ctx context.Context, f entities.Feedback) (entities.Feedback, error)
	ListAll(ctx context.Context) ([]entities.Feedback, error)
	GetByID(ctx context.Context, id entities.ID) (entities.Feedback, error)
	Update(ctx context.Context, id entities.ID, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id entities.ID) (bool, error)
	Count(ctx context.Context) (int64, error)
}
