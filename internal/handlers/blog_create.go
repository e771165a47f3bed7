package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/middlewares"
	"github.com/yaredtsegaye/blog-platform/internal/models"
)

// BlogCreator defines the interface that the blog creation service must implement.
type BlogCreator interface {
	Create(ctx context.Context, authorID uuid.UUID, name, category string, description *string) (*models.BlogDB, error)
}

// BlogCreateRequest represents the JSON body for creating a blog post.
// The author is always the authenticated caller.
// swagger:model BlogCreateRequest
type BlogCreateRequest struct {
	// Post title
	// required: true
	// default: My first post
	Name string `json:"name" validate:"required,min=2,max=50"`

	// Post category
	// required: true
	// default: tech
	Category string `json:"category" validate:"required"`

	// Optional description
	Description *string `json:"description" validate:"omitempty,max=200"`
}

// BlogCreateErrorResponse represents an error response for blog creation
// swagger:model BlogCreateErrorResponse
type BlogCreateErrorResponse struct {
	// Error message
	// default: invalid request body
	Error string `json:"error"`
}

// NewBlogCreateHandler returns an HTTP handler that creates a blog post.
// Requires the admin role.
// @Summary Create a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Param x-auth-token header string true "Session token with admin role"
// @Param blogCreateRequest body handlers.BlogCreateRequest true "Blog post to create"
// @Success 200 {object} models.BlogDB "Created blog post"
// @Failure 400 {object} handlers.BlogCreateErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.BlogCreateErrorResponse "Missing token or insufficient role"
// @Router /api/v1/blogs [post]
func NewBlogCreateHandler(svc BlogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(BlogCreateErrorResponse{Error: "Access denied"})
			return
		}

		var req BlogCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BlogCreateErrorResponse{Error: "invalid request body"})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BlogCreateErrorResponse{Error: validationMessage(err)})
			return
		}

		blog, err := svc.Create(r.Context(), claims.UserID, req.Name, req.Category, req.Description)
		if err != nil {
			logger.Log.Errorw("failed to create blog", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BlogCreateErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(blog)
	}
}
