package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/middlewares"
	"github.com/yaredtsegaye/blog-platform/internal/services"
)

// UserDeleter defines the interface that the user deletion service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UserDeleteErrorResponse represents an error response for account deletion
// swagger:model UserDeleteErrorResponse
type UserDeleteErrorResponse struct {
	// Error message
	// default: Access denied
	Error string `json:"error"`
}

// NewUserDeleteHandler returns an HTTP handler that deletes a user account.
// The token subject must match the path id. Blog posts written by the user
// are kept.
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Param x-auth-token header string true "Session token"
// @Success 204 "User deleted"
// @Failure 403 {object} handlers.UserDeleteErrorResponse "Token subject does not match path id"
// @Failure 404 {object} handlers.UserDeleteErrorResponse "User not found"
// @Failure 400 {object} handlers.UserDeleteErrorResponse "Error while deleting"
// @Router /api/v1/users/{id} [delete]
func NewUserDeleteHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(UserDeleteErrorResponse{Error: "Access denied"})
			return
		}

		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserDeleteErrorResponse{Error: "User not found"})
			return
		}

		if claims.UserID != userID {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(UserDeleteErrorResponse{Error: "Access denied"})
			return
		}

		if err := svc.Delete(r.Context(), userID); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserDeleteErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to delete user", "err", err)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UserDeleteErrorResponse{Error: "Error while deleting"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
