package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogDB represents a blog post record in the database.
type BlogDB struct {
	BlogID      uuid.UUID `json:"id" db:"blog_id"`                        // Primary key
	Name        string    `json:"name" db:"name"`                         // Post title
	AuthorID    uuid.UUID `json:"author" db:"author_id"`                  // Reference to the authoring user
	Category    string    `json:"category" db:"category"`                 // Post category
	Description *string   `json:"description,omitempty" db:"description"` // Optional description
	Likes       int64     `json:"likes" db:"likes"`                       // Like counter
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
