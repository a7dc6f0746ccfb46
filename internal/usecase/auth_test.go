package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abakirov/mflix-api/internal/domain"
	"github.com/abakirov/mflix-api/internal/usecase"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ---- fakes ----

type fakeUserRepo struct {
	create      func(ctx context.Context, email, passwordHash string, role domain.Role) (*domain.User, error)
	findByEmail func(ctx context.Context, email string) (*domain.User, error)
	findByID    func(ctx context.Context, id string) (*domain.User, error)
}

func (r *fakeUserRepo) Create(ctx context.Context, email, passwordHash string, role domain.Role) (*domain.User, error) {
	return r.create(ctx, email, passwordHash, role)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findByID(ctx, id)
}

type fakeSessionRepo struct {
	create        func(ctx context.Context, session *domain.Session) (*domain.Session, error)
	deleteExpired func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	return r.create(ctx, session)
}

func (r *fakeSessionRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.deleteExpired(ctx, cutoff)
}

// ---- helpers ----

const (
	testJWTKey   = "test-jwt-secret-at-least-32-chars!!"
	testEmail    = "test@example.com"
	testPassword = "correct horse battery staple"
	testTokenTTL = 24 * time.Hour
)

func newUsecase(users *fakeUserRepo, sessions *fakeSessionRepo) *usecase.AuthUsecase {
	return usecase.NewAuthUsecase(users, sessions, []byte(testJWTKey), testTokenTTL)
}

func noSessions() *fakeSessionRepo {
	return &fakeSessionRepo{
		create: func(_ context.Context, s *domain.Session) (*domain.Session, error) { return s, nil },
	}
}

func userWithPassword(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &domain.User{
		ID:           "user-1",
		Email:        testEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
}

// ---- Register ----

func TestRegister_StoresVerifiableHash(t *testing.T) {
	var capturedHash string
	var capturedRole domain.Role

	users := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
		create: func(_ context.Context, email, passwordHash string, role domain.Role) (*domain.User, error) {
			capturedHash = passwordHash
			capturedRole = role
			return &domain.User{ID: "user-1", Email: email, PasswordHash: passwordHash, Role: role}, nil
		},
	}

	user, err := newUsecase(users, noSessions()).Register(context.Background(), testEmail, testPassword)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected a user ID")
	}

	if capturedHash == testPassword {
		t.Fatal("password stored in cleartext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(capturedHash), []byte(testPassword)); err != nil {
		t.Errorf("stored hash does not verify against the password: %v", err)
	}
	if capturedRole != domain.RoleUser {
		t.Errorf("role = %q, want %q", capturedRole, domain.RoleUser)
	}
}

func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	var createCalls int

	users := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: testEmail}, nil
		},
		create: func(_ context.Context, _, _ string, _ domain.Role) (*domain.User, error) {
			createCalls++
			return nil, nil
		},
	}

	_, err := newUsecase(users, noSessions()).Register(context.Background(), testEmail, testPassword)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("error = %v, want ErrUserExists", err)
	}
	if createCalls != 0 {
		t.Errorf("create called %d times, want 0", createCalls)
	}
}

func TestRegister_RaceLostAtInsert_Conflict(t *testing.T) {
	// The pre-check misses a concurrent registration; the unique index
	// surfaces it at insert time and the caller still sees a conflict.
	users := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
		create: func(_ context.Context, _, _ string, _ domain.Role) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}

	_, err := newUsecase(users, noSessions()).Register(context.Background(), testEmail, testPassword)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("error = %v, want ErrUserExists", err)
	}
}

// ---- Login ----

func TestLogin_UnknownEmailAndWrongPassword_SameError(t *testing.T) {
	unknown := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	_, errUnknown := newUsecase(unknown, noSessions()).Login(context.Background(), "nobody@example.com", testPassword)

	existing := userWithPassword(t, testPassword)
	wrongPass := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) {
			return existing, nil
		},
	}
	_, errWrong := newUsecase(wrongPass, noSessions()).Login(context.Background(), testEmail, "not the password")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email error = %v, want ErrInvalidCredentials", errUnknown)
	}
	if !errors.Is(errWrong, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, want ErrInvalidCredentials", errWrong)
	}
	// Both cases collapse to one error so responses cannot enumerate users.
	if errUnknown.Error() != errWrong.Error() {
		t.Errorf("errors differ: %q vs %q", errUnknown, errWrong)
	}
}

func TestLogin_IssuesTokenWithExpectedClaims(t *testing.T) {
	user := userWithPassword(t, testPassword)
	users := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) { return user, nil },
	}

	var captured *domain.Session
	sessions := &fakeSessionRepo{
		create: func(_ context.Context, s *domain.Session) (*domain.Session, error) {
			captured = s
			return s, nil
		},
	}

	result, err := newUsecase(users, sessions).Login(context.Background(), testEmail, testPassword)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(result.Token, func(t *jwt.Token) (any, error) {
		return []byte(testJWTKey), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if sub, _ := claims["sub"].(string); sub != user.ID {
		t.Errorf("sub = %q, want %q", sub, user.ID)
	}
	if email, _ := claims["email"].(string); email != user.Email {
		t.Errorf("email = %q, want %q", email, user.Email)
	}
	if role, _ := claims["role"].(string); role != string(domain.RoleUser) {
		t.Errorf("role = %q, want %q", role, domain.RoleUser)
	}

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	if exp-iat != int64(testTokenTTL.Seconds()) {
		t.Errorf("exp - iat = %ds, want %ds", exp-iat, int64(testTokenTTL.Seconds()))
	}

	if captured == nil {
		t.Fatal("no session recorded")
	}
	if captured.UserID != user.ID {
		t.Errorf("session user = %q, want %q", captured.UserID, user.ID)
	}
	if captured.Token != result.Token {
		t.Error("session token does not mirror the issued token")
	}
	if captured.ExpiresAt.Unix() != exp {
		t.Errorf("session expiry %d does not match token exp %d", captured.ExpiresAt.Unix(), exp)
	}
}

func TestLogin_SessionInsertFailure_Errors(t *testing.T) {
	user := userWithPassword(t, testPassword)
	users := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*domain.User, error) { return user, nil },
	}
	sessions := &fakeSessionRepo{
		create: func(_ context.Context, _ *domain.Session) (*domain.Session, error) {
			return nil, errors.New("connection reset")
		},
	}

	if _, err := newUsecase(users, sessions).Login(context.Background(), testEmail, testPassword); err == nil {
		t.Fatal("expected error when the session insert fails")
	}
}
