package usecase

import (
	"context"
	"errors"

	"studio_ops/internal/domain/entities"
	"studio_ops/internal/usecase/interfaces"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

// IFeedbackUseCase exposes feedback CRUD operations.

type IFeedbackUseCase interface {
	Create(ctx context.Context, f entities.Feedback) (entities.Feedback, error)
	List(ctx context.Context) ([]entities.Feedback, error)
	GetByID(ctx context.Context, id entities.ID) (entities.Feedback, error)
	Update(ctx context.Context, id entities.ID, fields map[string]any) error
	Delete(ctx context.Context, id entities.ID) error
}

type FeedbackUseCase struct {
	repo interfaces.IFeedbackRepository
}

var _ IFeedbackUseCase = (*FeedbackUseCase)(nil)

func NewFeedbackUseCase(repo interfaces.IFeedbackRepository) *FeedbackUseCase {
	return &FeedbackUseCase{repo: repo}
}

func (u *FeedbackUseCase) Create(ctx context.Context, f entities.Feedback) (entities.Feedback, error) {
	f.ID = entities.NewID()
	return u.repo.Create(ctx, f)
}

func (u *FeedbackUseCase) List(ctx context.Context) ([]entities.Feedback, error) {
	return u.repo.ListAll(ctx)
}

func (u *FeedbackUseCase) GetByID(ctx context.Context, id entities.ID) (entities.Feedback, error) {
	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Feedback{}, err
	}
	if f.ID == "" {
		return entities.Feedback{}, ErrFeedbackNotFound
	}
	return f, nil
}

func (u *FeedbackUseCase) Update(ctx context.Context, id entities.ID, fields map[string]any) error {
	found, err := u.repo.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	if !found {
		return ErrFeedbackNotFound
	}
	return nil
}

func (u *FeedbackUseCase) Delete(ctx context.Context, id entities.ID) error {
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrFeedbackNotFound
	}
	return nil
}
