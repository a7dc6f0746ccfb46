package repository

import (
	"context"

	"github.com/abakirov/mflix-api/internal/domain"
)

// MovieUpdate carries the fields of a partial movie update. Nil fields are
// left untouched.
type MovieUpdate struct {
	Title  *string
	Year   *int
	Plot   *string
	Genres []string
}

type MovieRepository interface {
	List(ctx context.Context, limit int) ([]*domain.Movie, error)
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	Update(ctx context.Context, id string, update MovieUpdate) error
	Delete(ctx context.Context, id string) error
}

type CommentUpdate struct {
	Name  *string
	Email *string
	Text  *string
}

type CommentRepository interface {
	List(ctx context.Context, limit int) ([]*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	Update(ctx context.Context, id string, update CommentUpdate) error
	Delete(ctx context.Context, id string) error
}

type TheaterUpdate struct {
	Street  *string
	City    *string
	State   *string
	Zipcode *string
}

type TheaterRepository interface {
	List(ctx context.Context, limit int) ([]*domain.Theater, error)
	Create(ctx context.Context, theater *domain.Theater) (*domain.Theater, error)
	GetByID(ctx context.Context, id string) (*domain.Theater, error)
	Update(ctx context.Context, id string, update TheaterUpdate) error
	Delete(ctx context.Context, id string) error
}
