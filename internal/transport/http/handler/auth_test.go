package handler_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/abakirov/mflix-api/internal/domain"
	"github.com/abakirov/mflix-api/internal/transport/http/handler"
	"github.com/abakirov/mflix-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fakeAuthUsecase struct {
	register func(ctx context.Context, email, password string) (*domain.User, error)
	login    func(ctx context.Context, email, password string) (*usecase.LoginResult, error)
}

func (f *fakeAuthUsecase) Register(ctx context.Context, email, password string) (*domain.User, error) {
	return f.register(ctx, email, password)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	return f.login(ctx, email, password)
}

func (f *fakeAuthUsecase) TokenTTL() time.Duration { return 24 * time.Hour }

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newAuthRouter(t *testing.T, auth *fakeAuthUsecase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := handler.NewAuthHandler(auth, false, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, w.Body.String())
	}
	return env
}

func TestRegister_MissingFields_BadRequest(t *testing.T) {
	var calls int
	auth := &fakeAuthUsecase{
		register: func(_ context.Context, _, _ string) (*domain.User, error) {
			calls++
			return nil, nil
		},
	}
	r := newAuthRouter(t, auth)

	for _, body := range []string{`{}`, `{"email":"a@b.com"}`, `{"password":"p"}`, `{"email":"","password":"p"}`} {
		w := postJSON(t, r, "/api/auth/register", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want %d", body, w.Code, http.StatusBadRequest)
		}
		env := decodeEnvelope(t, w)
		if env.Message != "Missing credentials" {
			t.Errorf("body %s: message = %q, want %q", body, env.Message, "Missing credentials")
		}
	}
	if calls != 0 {
		t.Errorf("usecase called %d times on invalid input, want 0", calls)
	}
}

func TestRegister_NonAddressEmailAccepted(t *testing.T) {
	// Only presence is validated; "admin" is a legal account identifier.
	var gotEmail string
	auth := &fakeAuthUsecase{
		register: func(_ context.Context, email, _ string) (*domain.User, error) {
			gotEmail = email
			return &domain.User{ID: "user-1", Email: email, Role: domain.RoleUser}, nil
		},
	}
	r := newAuthRouter(t, auth)

	w := postJSON(t, r, "/api/auth/register", `{"email":"admin","password":"p"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if gotEmail != "admin" {
		t.Errorf("email = %q, want %q", gotEmail, "admin")
	}
}

func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	auth := &fakeAuthUsecase{
		register: func(_ context.Context, _, _ string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	r := newAuthRouter(t, auth)

	w := postJSON(t, r, "/api/auth/register", `{"email":"test@example.com","password":"p"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
	if env := decodeEnvelope(t, w); env.Message != "User already exists" {
		t.Errorf("message = %q, want %q", env.Message, "User already exists")
	}
}

func TestRegister_Success_Created(t *testing.T) {
	auth := &fakeAuthUsecase{
		register: func(_ context.Context, email, _ string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Email: email, Role: domain.RoleUser}, nil
		},
	}
	r := newAuthRouter(t, auth)

	w := postJSON(t, r, "/api/auth/register", `{"email":"test@example.com","password":"p"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	if env.Status != http.StatusCreated {
		t.Errorf("envelope status = %d, want %d", env.Status, http.StatusCreated)
	}
	var data struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.UserID != "user-1" {
		t.Errorf("user_id = %q, want %q", data.UserID, "user-1")
	}
}

func TestLogin_BadCredentials_Unauthorized(t *testing.T) {
	auth := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (*usecase.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	r := newAuthRouter(t, auth)

	w := postJSON(t, r, "/api/auth/login", `{"email":"test@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if env := decodeEnvelope(t, w); env.Message != "Invalid credentials" {
		t.Errorf("message = %q, want %q", env.Message, "Invalid credentials")
	}
}

func TestLogin_Success_TokenInBodyAndCookie(t *testing.T) {
	expiresAt := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	auth := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (*usecase.LoginResult, error) {
			return &usecase.LoginResult{Token: "signed.jwt.here", ExpiresAt: expiresAt}, nil
		},
	}
	r := newAuthRouter(t, auth)

	w := postJSON(t, r, "/api/auth/login", `{"email":"test@example.com","password":"p"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Token != "signed.jwt.here" {
		t.Errorf("token = %q, want %q", data.Token, "signed.jwt.here")
	}

	cookie := findCookie(t, w.Result().Cookies(), "token")
	if cookie.Value != "signed.jwt.here" {
		t.Errorf("cookie value = %q, want the issued token", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Error("token cookie must be http-only")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie SameSite = %v, want Lax", cookie.SameSite)
	}
	if cookie.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Errorf("cookie MaxAge = %d, want %d", cookie.MaxAge, int((24*time.Hour).Seconds()))
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	r := newAuthRouter(t, &fakeAuthUsecase{})

	w := postJSON(t, r, "/api/auth/logout", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if env := decodeEnvelope(t, w); env.Message != "Logged out successfully" {
		t.Errorf("message = %q, want %q", env.Message, "Logged out successfully")
	}

	cookie := findCookie(t, w.Result().Cookies(), "token")
	if cookie.Value != "" {
		t.Errorf("cookie value = %q, want empty", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Errorf("cookie MaxAge = %d, want negative to expire it", cookie.MaxAge)
	}
}

func findCookie(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}
