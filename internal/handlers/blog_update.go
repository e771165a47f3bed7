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

// BlogUpdater defines the interface that the blog update service must implement.
type BlogUpdater interface {
	Update(ctx context.Context, blogID uuid.UUID, name, category, description *string) (*models.BlogDB, error)
	Like(ctx context.Context, blogID uuid.UUID, delta int64) (*models.BlogDB, error)
}

// BlogUpdateRequest represents the JSON body for a blog field-merge update.
// Omitted fields keep their current value.
// swagger:model BlogUpdateRequest
type BlogUpdateRequest struct {
	// New title
	Name *string `json:"name" validate:"omitempty,min=2,max=50"`

	// New category
	Category *string `json:"category" validate:"omitempty,min=1"`

	// New description
	Description *string `json:"description" validate:"omitempty,max=200"`
}

// BlogUpdateErrorResponse represents an error response for a blog update
// swagger:model BlogUpdateErrorResponse
type BlogUpdateErrorResponse struct {
	// Error message
	// default: Blog not found
	Error string `json:"error"`
}

// NewBlogUpdateHandler returns an HTTP handler that updates a blog post.
// Requires the admin role. With op=inc or op=dec the like counter is
// incremented or decremented and the body is ignored; otherwise the body
// fields are merged into the post.
// @Summary Update a blog post or its like counter
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog id"
// @Param op query string false "Like operation: inc or dec"
// @Param x-auth-token header string true "Session token with admin role"
// @Param blogUpdateRequest body handlers.BlogUpdateRequest false "Fields to update (ignored for like operations)"
// @Success 200 {object} models.BlogDB "Updated blog post"
// @Failure 400 {object} handlers.BlogUpdateErrorResponse "Invalid request body or op value"
// @Failure 404 {object} handlers.BlogUpdateErrorResponse "Blog not found"
// @Router /api/v1/blogs/{id} [put]
func NewBlogUpdateHandler(svc BlogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(BlogUpdateErrorResponse{Error: "Blog not found"})
			return
		}

		var blog *models.BlogDB

		switch op := r.URL.Query().Get("op"); op {
		case "inc":
			blog, err = svc.Like(r.Context(), blogID, 1)
		case "dec":
			blog, err = svc.Like(r.Context(), blogID, -1)
		case "":
			var req BlogUpdateRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BlogUpdateErrorResponse{Error: "invalid request body"})
				return
			}
			if err := validate.Struct(req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BlogUpdateErrorResponse{Error: validationMessage(err)})
				return
			}
			blog, err = svc.Update(r.Context(), blogID, req.Name, req.Category, req.Description)
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BlogUpdateErrorResponse{Error: "unknown op, expected inc or dec"})
			return
		}

		if err != nil {
			switch {
			case errors.Is(err, services.ErrBlogNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BlogUpdateErrorResponse{Error: "Blog not found"})
			default:
				logger.Log.Errorw("failed to update blog", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BlogUpdateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(blog)
	}
}
