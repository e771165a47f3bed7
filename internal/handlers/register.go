package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yaredtsegaye/blog-platform/internal/jwt"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/models"
	"github.com/yaredtsegaye/blog-platform/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, role, password string, image []byte) (*models.UserDB, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required,min=3,max=50"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,min=5,max=100,email"`

	// Role, defaults to "user"
	// default: user
	Role string `json:"role" validate:"omitempty,oneof=user admin"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=4,max=2048"`

	// Optional base64-encoded avatar image
	Image string `json:"image" validate:"omitempty,base64"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Username or email already exists
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Username and email must be unique. The password is hashed before storing and a session token is returned in the x-auth-token response header.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} models.UserDB "Created user; x-auth-token header carries the session token"
// @Failure 400 {object} handlers.RegisterErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.RegisterErrorResponse "Username or email already exists"
// @Router /api/v1/users [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "invalid request body"})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: validationMessage(err)})
			return
		}

		var image []byte
		if req.Image != "" {
			var err error
			image, err = base64.StdEncoding.DecodeString(req.Image)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "invalid image encoding"})
				return
			}
		}

		user, token, err := svc.Register(r.Context(), req.Username, req.Email, req.Role, req.Password, image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Username or email already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(jwt.HeaderName, token)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
