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

// UserGetter defines the interface that the user lookup service must implement.
type UserGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserGetErrorResponse represents an error response for user lookup
// swagger:model UserGetErrorResponse
type UserGetErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewUserGetHandler returns an HTTP handler that fetches a single user by id.
// A malformed id is treated the same as an unknown one.
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.UserDB "The user"
// @Failure 404 {object} handlers.UserGetErrorResponse "User not found"
// @Router /api/v1/users/{id} [get]
func NewUserGetHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserGetErrorResponse{Error: "User not found"})
			return
		}

		user, err := svc.Get(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserGetErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserGetErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
