package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/middlewares"
	"github.com/yaredtsegaye/blog-platform/internal/models"
	"github.com/yaredtsegaye/blog-platform/internal/services"
)

// UserUpdater defines the interface that the user update service must implement.
type UserUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, username, email *string, image []byte) (*models.UserDB, error)
}

// UserUpdateRequest represents the JSON body for a profile update.
// Omitted fields keep their current value.
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	// New username
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`

	// New email
	Email *string `json:"email" validate:"omitempty,min=5,max=100,email"`

	// New base64-encoded avatar image
	Image string `json:"image" validate:"omitempty,base64"`
}

// UserUpdateErrorResponse represents an error response for a profile update
// swagger:model UserUpdateErrorResponse
type UserUpdateErrorResponse struct {
	// Error message
	// default: Access denied
	Error string `json:"error"`
}

// NewUserUpdateHandler returns an HTTP handler that updates a user's profile.
// The token subject must match the path id.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param x-auth-token header string true "Session token"
// @Param userUpdateRequest body handlers.UserUpdateRequest true "Fields to update"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 403 {object} handlers.UserUpdateErrorResponse "Token subject does not match path id"
// @Failure 404 {object} handlers.UserUpdateErrorResponse "User not found"
// @Failure 409 {object} handlers.UserUpdateErrorResponse "Username or email already exists"
// @Failure 500 {object} handlers.UserUpdateErrorResponse "Internal server error"
// @Router /api/v1/users/{id} [put]
func NewUserUpdateHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "Access denied"})
			return
		}

		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "User not found"})
			return
		}

		if claims.UserID != userID {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "Access denied"})
			return
		}

		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "invalid request body"})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: validationMessage(err)})
			return
		}

		var image []byte
		if req.Image != "" {
			image, err = base64.StdEncoding.DecodeString(req.Image)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "invalid image encoding"})
				return
			}
		}

		user, err := svc.Update(r.Context(), userID, req.Username, req.Email, image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "Username or email already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserUpdateErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
