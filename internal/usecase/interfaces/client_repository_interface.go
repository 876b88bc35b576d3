package interfaces

import (
	"context"

	"studio_ops/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// GetByID reports absence with a zero-ID entity; Update and Delete report it
// with found=false. Update performs a partial merge: only the supplied
// attributes are written.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	ListAll(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id entities.ID) (entities.Client, error)
	Update(ctx context.Context, id entities.ID, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id entities.ID) (bool, error)
	Count(ctx context.Context) (int64, error)
}
