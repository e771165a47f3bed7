package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/models"
	"github.com/yaredtsegaye/blog-platform/internal/services"
)

// BlogLister defines the interface that the blog listing service must implement.
type BlogLister interface {
	List(ctx context.Context) ([]models.BlogDB, error)
	ListByAuthorUsername(ctx context.Context, username string) ([]models.BlogDB, error)
}

// BlogListErrorResponse represents an error response for blog listing
// swagger:model BlogListErrorResponse
type BlogListErrorResponse struct {
	// Error message
	// default: Cannot fetch blogs
	Error string `json:"error"`
}

// NewBlogListHandler returns an HTTP handler that lists blog posts. The
// optional "author" query parameter restricts the listing to posts by the
// user with that username.
// @Summary List blog posts
// @Tags blogs
// @Produce json
// @Param author query string false "Filter by author username"
// @Success 200 {array} models.BlogDB "Blog posts"
// @Failure 404 {object} handlers.BlogListErrorResponse "Author username does not resolve"
// @Failure 400 {object} handlers.BlogListErrorResponse "Cannot fetch blogs"
// @Router /api/v1/blogs [get]
func NewBlogListHandler(svc BlogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			blogs []models.BlogDB
			err   error
		)

		if author := r.URL.Query().Get("author"); author != "" {
			blogs, err = svc.ListByAuthorUsername(r.Context(), author)
		} else {
			blogs, err = svc.List(r.Context())
		}

		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BlogListErrorResponse{Error: "User doesn't exist"})
			default:
				logger.Log.Errorw("failed to list blogs", "err", err)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BlogListErrorResponse{Error: "Cannot fetch blogs"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(blogs)
	}
}
