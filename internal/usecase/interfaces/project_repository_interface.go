package interfaces

import (
	"context"

	"studio_ops/internal/domain/entities"
)

// IProjectRepository persists stored-copy project records (POST /projects).
// The computed project view reads invoices and clients directly and never
// consults this collection.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
}
