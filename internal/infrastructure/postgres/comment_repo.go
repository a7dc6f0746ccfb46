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

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) List(ctx context.Context, limit int) ([]*domain.Comment, error) {
	query := `
		SELECT id, movie_id, name, email, text, created_at, updated_at
		FROM comments
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	query := `
		INSERT INTO comments (movie_id, name, email, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, movie_id, name, email, text, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, comment.MovieID, comment.Name, comment.Email, comment.Text)
	return scanComment(row)
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	query := `
		SELECT id, movie_id, name, email, text, created_at, updated_at
		FROM comments
		WHERE id = $1`

	return scanComment(r.pool.QueryRow(ctx, query, id))
}

func (r *CommentRepository) Update(ctx context.Context, id string, update repository.CommentUpdate) error {
	query := `
		UPDATE comments
		SET    name       = COALESCE($2, name),
		       email      = COALESCE($3, email),
		       text       = COALESCE($4, text),
		       updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, update.Name, update.Email, update.Text)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.MovieID, &c.Name, &c.Email, &c.Text, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("scan comment: %w", err)
	}
	return &c, nil
}
