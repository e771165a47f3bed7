package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/services"
)

// BlogDeleter defines the interface that the blog deletion service must implement.
type BlogDeleter interface {
	Delete(ctx context.Context, blogID uuid.UUID) error
}

// BlogDeleteErrorResponse represents an error response for blog deletion
// swagger:model BlogDeleteErrorResponse
type BlogDeleteErrorResponse struct {
	// Error message
	// default: Blog not found
	Error string `json:"error"`
}

// NewBlogDeleteHandler returns an HTTP handler that deletes a blog post.
// Requires the admin role.
// @Summary Delete a blog post
// @Tags blogs
// @Produce json
// @Param id path string true "Blog id"
// @Param x-auth-token header string true "Session token with admin role"
// @Success 204 "Blog deleted"
// @Failure 404 {object} handlers.BlogDeleteErrorResponse "Blog not found"
// @Router /api/v1/blogs/{id} [delete]
func NewBlogDeleteHandler(svc BlogDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(BlogDeleteErrorResponse{Error: "Blog not found"})
			return
		}

		if err := svc.Delete(r.Context(), blogID); err != nil {
			switch {
			case errors.Is(err, services.ErrBlogNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BlogDeleteErrorResponse{Error: "Blog not found"})
			default:
				logger.Log.Errorw("failed to delete blog", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BlogDeleteErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
