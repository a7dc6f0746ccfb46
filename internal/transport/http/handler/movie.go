package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/abakirov/mflix-api/internal/domain"
	"github.com/abakirov/mflix-api/internal/repository"
	"github.com/abakirov/mflix-api/internal/transport/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type movieUsecaser interface {
	List(ctx context.Context, limit int) ([]*domain.Movie, error)
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	Update(ctx context.Context, id string, update repository.MovieUpdate) error
	Delete(ctx context.Context, id string) error
}

type MovieHandler struct {
	movieUsecase movieUsecaser
	logger       *slog.Logger
}

func NewMovieHandler(movieUsecase movieUsecaser, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{movieUsecase: movieUsecase, logger: logger.With("component", "movie_handler")}
}

type movieResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Year      int       `json:"year,omitempty"`
	Plot      string    `json:"plot,omitempty"`
	Genres    []string  `json:"genres,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toMovieResponse(m *domain.Movie) movieResponse {
	return movieResponse{
		ID:        m.ID,
		Title:     m.Title,
		Year:      m.Year,
		Plot:      m.Plot,
		Genres:    m.Genres,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// listLimit parses the optional ?limit query parameter shared by the
// collection list routes. A second return of false means it was malformed
// and a 400 has already been written.
func listLimit(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		response.Fail(c, http.StatusBadRequest, "Invalid limit", "limit must be a non-negative integer")
		return 0, false
	}
	return limit, true
}

// GET /api/movies
func (h *MovieHandler) List(c *gin.Context) {
	limit, ok := listLimit(c)
	if !ok {
		return
	}

	movies, err := h.movieUsecase.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list movies", "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	items := make([]movieResponse, 0, len(movies))
	for _, m := range movies {
		items = append(items, toMovieResponse(m))
	}
	response.OK(c, http.StatusOK, "", gin.H{"movies": items})
}

type createMovieRequest struct {
	Title  string   `json:"title"  binding:"required,max=512"`
	Year   int      `json:"year"   binding:"omitempty,min=1878,max=2100"`
	Plot   string   `json:"plot"`
	Genres []string `json:"genres" binding:"omitempty,dive,max=64"`
}

// POST /api/movies
func (h *MovieHandler) Create(c *gin.Context) {
	var req createMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	movie, err := h.movieUsecase.Create(c.Request.Context(), &domain.Movie{
		Title:  req.Title,
		Year:   req.Year,
		Plot:   req.Plot,
		Genres: req.Genres,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create movie", "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	response.OK(c, http.StatusCreated, "Movie created successfully", gin.H{"inserted_id": movie.ID})
}

// GET /api/movies/:id
func (h *MovieHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusBadRequest, errInvalidMovieID, errBadIDFormat)
		return
	}

	movie, err := h.movieUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			response.Fail(c, http.StatusNotFound, errMovieNotFound, "No movie found with the given ID")
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get movie", "movie_id", id, "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	response.OK(c, http.StatusOK, "", gin.H{"movie": toMovieResponse(movie)})
}

type updateMovieRequest struct {
	Title  *string  `json:"title"  binding:"omitempty,max=512"`
	Year   *int     `json:"year"   binding:"omitempty,min=1878,max=2100"`
	Plot   *string  `json:"plot"`
	Genres []string `json:"genres" binding:"omitempty,dive,max=64"`
}

// PUT /api/movies/:id
func (h *MovieHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusBadRequest, errInvalidMovieID, errBadIDFormat)
		return
	}

	var req updateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	err := h.movieUsecase.Update(c.Request.Context(), id, repository.MovieUpdate{
		Title:  req.Title,
		Year:   req.Year,
		Plot:   req.Plot,
		Genres: req.Genres,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			response.Fail(c, http.StatusNotFound, errMovieNotFound, "")
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "update movie", "movie_id", id, "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	response.OK(c, http.StatusOK, "Movie updated successfully", nil)
}

// DELETE /api/movies/:id
func (h *MovieHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusBadRequest, errInvalidMovieID, errBadIDFormat)
		return
	}

	if err := h.movieUsecase.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			response.Fail(c, http.StatusNotFound, errMovieNotFound, "")
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete movie", "movie_id", id, "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	response.OK(c, http.StatusOK, "Movie deleted successfully", nil)
}
