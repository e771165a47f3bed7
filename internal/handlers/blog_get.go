package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/models"
	"github.com/yaredtsegaye/blog-platform/internal/services"
)

// BlogGetter defines the interface that the blog lookup service must implement.
type BlogGetter interface {
	Get(ctx context.Context, blogID uuid.UUID) (*models.BlogDB, error)
}

// BlogGetErrorResponse represents an error response for blog lookup
// swagger:model BlogGetErrorResponse
type BlogGetErrorResponse struct {
	// Error message
	// default: Blog not found
	Error string `json:"error"`
}

// NewBlogGetHandler returns an HTTP handler that fetches a single blog post
// by id. A malformed id is treated the same as an unknown one.
// @Summary Get a blog post by id
// @Tags blogs
// @Produce json
// @Param id path string true "Blog id"
// @Success 200 {object} models.BlogDB "The blog post"
// @Failure 404 {object} handlers.BlogGetErrorResponse "Blog not found"
// @Router /api/v1/blogs/{id} [get]
func NewBlogGetHandler(svc BlogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(BlogGetErrorResponse{Error: "Blog not found"})
			return
		}

		blog, err := svc.Get(r.Context(), blogID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBlogNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BlogGetErrorResponse{Error: "Blog not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BlogGetErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(blog)
	}
}
