package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/abakirov/mflix-api/internal/domain"
	"github.com/abakirov/mflix-api/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovieRepository struct {
	pool *pgxpool.Pool
}

func NewMovieRepository(pool *pgxpool.Pool) *MovieRepository {
	return &MovieRepository{pool: pool}
}

func (r *MovieRepository) List(ctx context.Context, limit int) ([]*domain.Movie, error) {
	query := `
		SELECT id, title, year, plot, genres, created_at, updated_at
		FROM movies
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []*domain.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	query := `
		INSERT INTO movies (title, year, plot, genres)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, year, plot, genres, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, movie.Title, movie.Year, movie.Plot, movie.Genres)
	return scanMovie(row)
}

func (r *MovieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	query := `
		SELECT id, title, year, plot, genres, created_at, updated_at
		FROM movies
		WHERE id = $1`

	return scanMovie(r.pool.QueryRow(ctx, query, id))
}

func (r *MovieRepository) Update(ctx context.Context, id string, update repository.MovieUpdate) error {
	query := `
		UPDATE movies
		SET    title      = COALESCE($2, title),
		       year       = COALESCE($3, year),
		       plot       = COALESCE($4, plot),
		       genres     = COALESCE($5, genres),
		       updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, update.Title, update.Year, update.Plot, update.Genres)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func scanMovie(row pgx.Row) (*domain.Movie, error) {
	var m domain.Movie
	err := row.Scan(&m.ID, &m.Title, &m.Year, &m.Plot, &m.Genres, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("scan movie: %w", err)
	}
	return &m, nil
}
