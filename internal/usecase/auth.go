package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abakirov/mflix-api/internal/domain"
	"github.com/abakirov/mflix-api/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL = 24 * time.Hour
	bcryptCost      = 10
)

type AuthUsecase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	jwtKey   []byte
	tokenTTL time.Duration
}

func NewAuthUsecase(users repository.UserRepository, sessions repository.SessionRepository, jwtKey []byte, tokenTTL time.Duration) *AuthUsecase {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthUsecase{
		users:    users,
		sessions: sessions,
		jwtKey:   jwtKey,
		tokenTTL: tokenTTL,
	}
}

// Register hashes the password and stores a new user with the default role.
// A duplicate email fails with domain.ErrUserExists, either from the
// pre-check or from the unique index when two registrations race.
func (u *AuthUsecase) Register(ctx context.Context, email, password string) (*domain.User, error) {
	existing, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, email, string(hash), domain.RoleUser)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// Login verifies the credentials, signs a token, and records a session.
// Unknown email and wrong password both return domain.ErrInvalidCredentials
// so responses cannot be used to enumerate accounts.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(u.tokenTTL)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(u.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("sign jwt: %w", err)
	}

	if _, err := u.sessions.Create(ctx, &domain.Session{
		UserID:    user.ID,
		Token:     signed,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}

	return &LoginResult{Token: signed, ExpiresAt: expiresAt}, nil
}

// TokenTTL reports the configured token lifetime, used for cookie max-age.
func (u *AuthUsecase) TokenTTL() time.Duration {
	return u.tokenTTL
}
