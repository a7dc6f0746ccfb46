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

type TheaterRepository struct {
	pool *pgxpool.Pool
}

func NewTheaterRepository(pool *pgxpool.Pool) *TheaterRepository {
	return &TheaterRepository{pool: pool}
}

func (r *TheaterRepository) List(ctx context.Context, limit int) ([]*domain.Theater, error) {
	query := `
		SELECT id, theater_id, street, city, state, zipcode, created_at, updated_at
		FROM theaters
		ORDER BY theater_id ASC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list theaters: %w", err)
	}
	defer rows.Close()

	var theaters []*domain.Theater
	for rows.Next() {
		t, err := scanTheater(rows)
		if err != nil {
			return nil, err
		}
		theaters = append(theaters, t)
	}
	return theaters, rows.Err()
}

func (r *TheaterRepository) Create(ctx context.Context, theater *domain.Theater) (*domain.Theater, error) {
	query := `
		INSERT INTO theaters (theater_id, street, city, state, zipcode)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, theater_id, street, city, state, zipcode, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query,
		theater.TheaterID, theater.Street, theater.City, theater.State, theater.Zipcode)
	return scanTheater(row)
}

func (r *TheaterRepository) GetByID(ctx context.Context, id string) (*domain.Theater, error) {
	query := `
		SELECT id, theater_id, street, city, state, zipcode, created_at, updated_at
		FROM theaters
		WHERE id = $1`

	return scanTheater(r.pool.QueryRow(ctx, query, id))
}

func (r *TheaterRepository) Update(ctx context.Context, id string, update repository.TheaterUpdate) error {
	query := `
		UPDATE theaters
		SET    street     = COALESCE($2, street),
		       city       = COALESCE($3, city),
		       state      = COALESCE($4, state),
		       zipcode    = COALESCE($5, zipcode),
		       updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, update.Street, update.City, update.State, update.Zipcode)
	if err != nil {
		return fmt.Errorf("update theater: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTheaterNotFound
	}
	return nil
}

func (r *TheaterRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM theaters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete theater: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTheaterNotFound
	}
	return nil
}

func scanTheater(row pgx.Row) (*domain.Theater, error) {
	var t domain.Theater
	err := row.Scan(&t.ID, &t.TheaterID, &t.Street, &t.City, &t.State, &t.Zipcode, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTheaterNotFound
		}
		return nil, fmt.Errorf("scan theater: %w", err)
	}
	return &t, nil
}
