package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/abakirov/mflix-api/internal/domain"
	"github.com/abakirov/mflix-api/internal/repository"
	"github.com/abakirov/mflix-api/internal/transport/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type theaterUsecaser interface {
	List(ctx context.Context, limit int) ([]*domain.Theater, error)
	Create(ctx context.Context, theater *domain.Theater) (*domain.Theater, error)
	GetByID(ctx context.Context, id string) (*domain.Theater, error)
	Update(ctx context.Context, id string, update repository.TheaterUpdate) error
	Delete(ctx context.Context, id string) error
}

type TheaterHandler struct {
	theaterUsecase theaterUsecaser
	logger         *slog.Logger
}

func NewTheaterHandler(theaterUsecase theaterUsecaser, logger *slog.Logger) *TheaterHandler {
	return &TheaterHandler{theaterUsecase: theaterUsecase, logger: logger.With("component", "theater_handler")}
}

type theaterResponse struct {
	ID        string    `json:"id"`
	TheaterID int       `json:"theater_id"`
	Street    string    `json:"street,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Zipcode   string    `json:"zipcode,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toTheaterResponse(t *domain.Theater) theaterResponse {
	return theaterResponse{
		ID:        t.ID,
		TheaterID: t.TheaterID,
		Street:    t.Street,
		City:      t.City,
		State:     t.State,
		Zipcode:   t.Zipcode,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// GET /api/movies/theaters
func (h *TheaterHandler) List(c *gin.Context) {
	limit, ok := listLimit(c)
	if !ok {
		return
	}

	theaters, err := h.theaterUsecase.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list theaters", "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	items := make([]theaterResponse, 0, len(theaters))
	for _, t := range theaters {
		items = append(items, toTheaterResponse(t))
	}
	response.OK(c, http.StatusOK, "", gin.H{"theaters": items})
}

type createTheaterRequest struct {
	TheaterID int    `json:"theater_id" binding:"required,min=1"`
	Street    string `json:"street"     binding:"omitempty,max=256"`
	City      string `json:"city"       binding:"omitempty,max=128"`
	State     string `json:"state"      binding:"omitempty,max=64"`
	Zipcode   string `json:"zipcode"    binding:"omitempty,max=16"`
}

// POST /api/movies/theaters
func (h *TheaterHandler) Create(c *gin.Context) {
	var req createTheaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	theater, err := h.theaterUsecase.Create(c.Request.Context(), &domain.Theater{
		TheaterID: req.TheaterID,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zipcode:   req.Zipcode,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create theater", "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	response.OK(c, http.StatusCreated, "Theater created successfully", gin.H{"inserted_id": theater.ID})
}

// GET /api/movies/theaters/:id
func (h *TheaterHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusBadRequest, errInvalidTheaterID, errBadIDFormat)
		return
	}

	theater, err := h.theaterUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTheaterNotFound) {
			response.Fail(c, http.StatusNotFound, errTheaterNotFound, "No theater found with the given ID")
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get theater", "theater_id", id, "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	response.OK(c, http.StatusOK, "", gin.H{"theater": toTheaterResponse(theater)})
}

type updateTheaterRequest struct {
	Street  *string `json:"street"  binding:"omitempty,max=256"`
	City    *string `json:"city"    binding:"omitempty,max=128"`
	State   *string `json:"state"   binding:"omitempty,max=64"`
	Zipcode *string `json:"zipcode" binding:"omitempty,max=16"`
}

// PUT /api/movies/theaters/:id
func (h *TheaterHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusBadRequest, errInvalidTheaterID, errBadIDFormat)
		return
	}

	var req updateTheaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	err := h.theaterUsecase.Update(c.Request.Context(), id, repository.TheaterUpdate{
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		Zipcode: req.Zipcode,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTheaterNotFound) {
			response.Fail(c, http.StatusNotFound, errTheaterNotFound, "")
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "update theater", "theater_id", id, "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	response.OK(c, http.StatusOK, "Theater updated successfully", nil)
}

// DELETE /api/movies/theaters/:id
func (h *TheaterHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusBadRequest, errInvalidTheaterID, errBadIDFormat)
		return
	}

	if err := h.theaterUsecase.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrTheaterNotFound) {
			response.Fail(c, http.StatusNotFound, errTheaterNotFound, "")
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete theater", "theater_id", id, "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	response.OK(c, http.StatusOK, "Theater deleted successfully", nil)
}
