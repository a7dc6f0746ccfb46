package httptransport

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/abakirov/mflix-api/internal/transport/http/docs"
	"github.com/abakirov/mflix-api/internal/transport/http/handler"
	"github.com/abakirov/mflix-api/internal/transport/http/middleware"
	"github.com/abakirov/mflix-api/internal/transport/http/response"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

// protectedPrefix is the path space behind the auth gate. Kept in one place
// because the NoMethod handler has to honor it too.
const protectedPrefix = "/api/movies"

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	movieHandler *handler.MovieHandler,
	commentHandler *handler.CommentHandler,
	theaterHandler *handler.TheaterHandler,
	jwtKey []byte,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authGate := middleware.Auth(jwtKey)

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		// The gate runs before method dispatch: a token-less request on a
		// protected path is 401, not 405.
		if strings.HasPrefix(c.Request.URL.Path, protectedPrefix) {
			authGate(c)
			if c.IsAborted() {
				return
			}
		}
		response.Fail(c, http.StatusMethodNotAllowed, "Method Not Allowed",
			c.Request.Method+" method is not supported on this route")
	})
	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "Not Found", "")
	})

	// Auth routes and the API reference bypass the gate.
	auth := r.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	r.GET("/api-doc", docs.Spec)

	// Everything under /api/movies requires a valid token. Static segments
	// (comments, theaters) take priority over the :id parameter.
	movies := r.Group(protectedPrefix, authGate)
	movies.GET("", movieHandler.List)
	movies.POST("", movieHandler.Create)
	movies.GET("/:id", movieHandler.GetByID)
	movies.PUT("/:id", movieHandler.Update)
	movies.DELETE("/:id", movieHandler.Delete)

	comments := movies.Group("/comments")
	comments.GET("", commentHandler.List)
	comments.POST("", commentHandler.Create)
	comments.GET("/:id", commentHandler.GetByID)
	comments.PUT("/:id", commentHandler.Update)
	comments.DELETE("/:id", commentHandler.Delete)

	theaters := movies.Group("/theaters")
	theaters.GET("", theaterHandler.List)
	theaters.POST("", theaterHandler.Create)
	theaters.GET("/:id", theaterHandler.GetByID)
	theaters.PUT("/:id", theaterHandler.Update)
	theaters.DELETE("/:id", theaterHandler.Delete)

	return r
}
