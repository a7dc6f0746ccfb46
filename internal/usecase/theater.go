package usecase

import (
	"context"
	"fmt"

	"github.com/abakirov/mflix-api/internal/domain"
	"github.com/abakirov/mflix-api/internal/repository"
)

type TheaterUsecase struct {
	repo repository.TheaterRepository
}

func NewTheaterUsecase(repo repository.TheaterRepository) *TheaterUsecase {
	return &TheaterUsecase{repo: repo}
}

func (u *TheaterUsecase) List(ctx context.Context, limit int) ([]*domain.Theater, error) {
	theaters, err := u.repo.List(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list theaters: %w", err)
	}
	return theaters, nil
}

func (u *TheaterUsecase) Create(ctx context.Context, theater *domain.Theater) (*domain.Theater, error) {
	created, err := u.repo.Create(ctx, theater)
	if err != nil {
		return nil, fmt.Errorf("create theater: %w", err)
	}
	return created, nil
}

func (u *TheaterUsecase) GetByID(ctx context.Context, id string) (*domain.Theater, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *TheaterUsecase) Update(ctx context.Context, id string, update repository.TheaterUpdate) error {
	return u.repo.Update(ctx, id, update)
}

func (u *TheaterUsecase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
