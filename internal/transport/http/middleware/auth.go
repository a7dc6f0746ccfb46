package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/abakirov/mflix-api/internal/metrics"
	"github.com/abakirov/mflix-api/internal/transport/http/response"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	errMissingToken = "Missing token"
	errInvalidToken = "Invalid token"
)

// Auth gates protected routes behind a valid JWT. The token is taken from
// the Authorization header (Bearer scheme) and, failing that, from the
// "token" cookie set at login, so both issued transports verify.
//
// Missing token → 401. Bad signature, expired, or malformed → 403.
// On success the claims are set in the gin context as userID, userEmail,
// and userRole.
func Auth(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken := tokenFromRequest(c)
		if rawToken == "" {
			metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
			response.AbortFail(c, http.StatusUnauthorized, errMissingToken, "")
			return
		}

		token, err := jwt.Parse(rawToken, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
			response.AbortFail(c, http.StatusForbidden, errInvalidToken, "")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
			response.AbortFail(c, http.StatusForbidden, errInvalidToken, "")
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
			response.AbortFail(c, http.StatusForbidden, errInvalidToken, "")
			return
		}

		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		c.Set("userID", userID)
		c.Set("userEmail", email)
		c.Set("userRole", role)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}
