package usecase

import (
	"context"
	"fmt"

	"github.com/abakirov/mflix-api/internal/domain"
	"github.com/abakirov/mflix-api/internal/repository"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

type MovieUsecase struct {
	repo repository.MovieRepository
}

func NewMovieUsecase(repo repository.MovieRepository) *MovieUsecase {
	return &MovieUsecase{repo: repo}
}

func (u *MovieUsecase) List(ctx context.Context, limit int) ([]*domain.Movie, error) {
	movies, err := u.repo.List(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (u *MovieUsecase) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	created, err := u.repo.Create(ctx, movie)
	if err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}
	return created, nil
}

func (u *MovieUsecase) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *MovieUsecase) Update(ctx context.Context, id string, update repository.MovieUpdate) error {
	return u.repo.Update(ctx, id, update)
}

func (u *MovieUsecase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
