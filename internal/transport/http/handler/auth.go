package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/abakirov/mflix-api/internal/domain"
	"github.com/abakirov/mflix-api/internal/metrics"
	"github.com/abakirov/mflix-api/internal/transport/http/response"
	"github.com/abakirov/mflix-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

const tokenCookie = "token"

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
	TokenTTL() time.Duration
}

type AuthHandler struct {
	authUsecase  authUsecaser
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler builds the auth routes. secureCookie should be true in
// every deployed environment; only local dev runs without TLS.
func NewAuthHandler(authUsecase authUsecaser, secureCookie bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		secureCookie: secureCookie,
		logger:       logger.With("component", "auth_handler"),
	}
}

// Only presence is checked: any non-empty email identifies an account, so
// a login can never 400 on a value that register accepted.
type credentialsRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, errMissingCredentials, err.Error())
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			response.Fail(c, http.StatusConflict, errUserExists, "")
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "register", "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	metrics.RegistrationsTotal.Inc()
	response.OK(c, http.StatusCreated, "User registered", gin.H{"user_id": user.ID})
}

// POST /api/auth/login
// The token is returned in the body and mirrored in an http-only cookie,
// so both header and cookie clients work against the gate.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_input").Inc()
		response.Fail(c, http.StatusBadRequest, errMissingCredentials, err.Error())
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			response.Fail(c, http.StatusUnauthorized, errInvalidCredentials, "")
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, result.Token, int(h.authUsecase.TokenTTL().Seconds()), "/", "", h.secureCookie, true)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	response.OK(c, http.StatusOK, "Login successful", gin.H{
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
	})
}

// POST /api/auth/logout
// Clears the client cookie only. The session row stays until natural
// expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, "", -1, "/", "", h.secureCookie, true)
	response.OK(c, http.StatusOK, "Logged out successfully", nil)
}
