package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database.
// The password hash is never serialized to JSON.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`                 // Primary key
	Username     string    `json:"username" db:"username"`          // Unique username
	Email        string    `json:"email" db:"email"`                // Unique email
	Role         string    `json:"role" db:"role"`                  // "user" or "admin"
	PasswordHash string    `json:"-" db:"password_hash"`            // bcrypt hash
	AvatarURL    *string   `json:"avatar,omitempty" db:"avatar_url"` // Public URL of the avatar image
	AvatarKey    *string   `json:"-" db:"avatar_key"`               // Object storage key of the avatar image
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
