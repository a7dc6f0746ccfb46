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

type commentUsecaser interface {
	List(ctx context.Context, limit int) ([]*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	Update(ctx context.Context, id string, update repository.CommentUpdate) error
	Delete(ctx context.Context, id string) error
}

type CommentHandler struct {
	commentUsecase commentUsecaser
	logger         *slog.Logger
}

func NewCommentHandler(commentUsecase commentUsecaser, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase, logger: logger.With("component", "comment_handler")}
}

type commentResponse struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCommentResponse(cm *domain.Comment) commentResponse {
	return commentResponse{
		ID:        cm.ID,
		MovieID:   cm.MovieID,
		Name:      cm.Name,
		Email:     cm.Email,
		Text:      cm.Text,
		CreatedAt: cm.CreatedAt,
		UpdatedAt: cm.UpdatedAt,
	}
}

// GET /api/movies/comments
func (h *CommentHandler) List(c *gin.Context) {
	limit, ok := listLimit(c)
	if !ok {
		return
	}

	comments, err := h.commentUsecase.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list comments", "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	items := make([]commentResponse, 0, len(comments))
	for _, cm := range comments {
		items = append(items, toCommentResponse(cm))
	}
	response.OK(c, http.StatusOK, "", gin.H{"comments": items})
}

type createCommentRequest struct {
	MovieID string `json:"movie_id" binding:"required,uuid"`
	Name    string `json:"name"     binding:"required,max=256"`
	Email   string `json:"email"    binding:"required,email"`
	Text    string `json:"text"     binding:"required,max=4096"`
}

// POST /api/movies/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	comment, err := h.commentUsecase.Create(c.Request.Context(), &domain.Comment{
		MovieID: req.MovieID,
		Name:    req.Name,
		Email:   req.Email,
		Text:    req.Text,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create comment", "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	response.OK(c, http.StatusCreated, "Comment created successfully", gin.H{"inserted_id": comment.ID})
}

// GET /api/movies/comments/:id
func (h *CommentHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusBadRequest, errInvalidCommentID, errBadIDFormat)
		return
	}

	comment, err := h.commentUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			response.Fail(c, http.StatusNotFound, errCommentNotFound, "No comment found with the given ID")
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get comment", "comment_id", id, "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	response.OK(c, http.StatusOK, "", gin.H{"comment": toCommentResponse(comment)})
}

type updateCommentRequest struct {
	Name  *string `json:"name"  binding:"omitempty,max=256"`
	Email *string `json:"email" binding:"omitempty,email"`
	Text  *string `json:"text"  binding:"omitempty,max=4096"`
}

// PUT /api/movies/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusBadRequest, errInvalidCommentID, errBadIDFormat)
		return
	}

	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	err := h.commentUsecase.Update(c.Request.Context(), id, repository.CommentUpdate{
		Name:  req.Name,
		Email: req.Email,
		Text:  req.Text,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			response.Fail(c, http.StatusNotFound, errCommentNotFound, "")
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "update comment", "comment_id", id, "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	response.OK(c, http.StatusOK, "Comment updated successfully", nil)
}

// DELETE /api/movies/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusBadRequest, errInvalidCommentID, errBadIDFormat)
		return
	}

	if err := h.commentUsecase.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			response.Fail(c, http.StatusNotFound, errCommentNotFound, "")
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete comment", "comment_id", id, "error", err)
		response.Fail(c, http.StatusInternalServerError, errInternalServer, err.Error())
		return
	}

	response.OK(c, http.StatusOK, "Comment deleted successfully", nil)
}
