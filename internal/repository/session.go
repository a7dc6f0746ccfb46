package repository

import (
	"context"
	"time"

	"github.com/abakirov/mflix-api/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
