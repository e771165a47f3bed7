package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/models"
)

// UserLister defines the interface that the user listing service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserListErrorResponse represents an error response for user listing
// swagger:model UserListErrorResponse
type UserListErrorResponse struct {
	// Error message
	// default: Cannot get users
	Error string `json:"error"`
}

// NewUserListHandler returns an HTTP handler that lists all users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB "All users"
// @Failure 400 {object} handlers.UserListErrorResponse "Cannot get users"
// @Router /api/v1/users [get]
func NewUserListHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserListErrorResponse{Error: "Cannot get users"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
