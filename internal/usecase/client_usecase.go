package usecase

import (
	"context"
	"errors"
	"time"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase/interfaces"
)

var ErrClientNotFound = errors.New("client not found")

// IClientUseCase exposes client CRUD operations.

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id entities.ID) (entities.Client, error)
	Update(ctx context.Context, id entities.ID, fields map[string]any) error
	Delete(ctx context.Context, id entities.ID) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.ID = entities.NewID()
	if c.CreatedAt == "" {
		c.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.ListAll(ctx)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id entities.ID) (entities.Client, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id entities.ID, fields map[string]any) error {
	found, err := u.repo.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	if !found {
		return ErrClientNotFound
	}
	return nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id entities.ID) error {
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrClientNotFound
	}
	return nil
}
