package usecase

import (
	"context"
	"fmt"

	"github.com/abakirov/mflix-api/internal/domain"
	"github.com/abakirov/mflix-api/internal/repository"
)

type CommentUsecase struct {
	repo repository.CommentRepository
}

func NewCommentUsecase(repo repository.CommentRepository) *CommentUsecase {
	return &CommentUsecase{repo: repo}
}

func (u *CommentUsecase) List(ctx context.Context, limit int) ([]*domain.Comment, error) {
	comments, err := u.repo.List(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (u *CommentUsecase) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	created, err := u.repo.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return created, nil
}

func (u *CommentUsecase) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *CommentUsecase) Update(ctx context.Context, id string, update repository.CommentUpdate) error {
	return u.repo.Update(ctx, id, update)
}

func (u *CommentUsecase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
