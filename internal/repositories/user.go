package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/models"
)

const userColumns = `user_id, username, email, role, password_hash, avatar_url, avatar_key, created_at, updated_at`

// UserReadRepository provides read-only access to user records.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// List returns all user records ordered by creation time.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at
	`

	users := make([]models.UserDB, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &users, query)

	logger.Log.Infow("query executed",
		"sql", oneline(query),
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns the user with the given id, or nil if no such user exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
	`
	return r.get(ctx, query, userID)
}

// GetByEmail returns the user with the given email, or nil if no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	return r.get(ctx, query, email)
}

// GetByUsername returns the user with the given username, or nil if no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`
	return r.get(ctx, query, username)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, arg)

	logger.Log.Infow("query executed",
		"sql", oneline(query),
		"args", []any{arg},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository provides write access to user records.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record. Returns
// ErrUniqueViolation if the username or email is already taken.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, role, password_hash, avatar_url, avatar_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns + `
	`
	args := []any{user.Username, user.Email, user.Role, user.PasswordHash, user.AvatarURL, user.AvatarKey}

	var saved models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &saved, query, args...)

	logger.Log.Infow("query executed",
		"sql", oneline(query),
		"args", []any{user.Username, user.Email, user.Role},
		"error", err,
	)

	if isUniqueViolation(err) {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update replaces the mutable fields of a user and returns the updated
// record, or nil if no such user exists. Returns ErrUniqueViolation if the
// new username or email is already taken.
func (r *UserWriteRepository) Update(ctx context.Context, user models.UserDB) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET username = $2,
		    email = $3,
		    avatar_url = $4,
		    avatar_key = $5,
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns + `
	`
	args := []any{user.UserID, user.Username, user.Email, user.AvatarURL, user.AvatarKey}

	var updated models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &updated, query, args...)

	logger.Log.Infow("query executed",
		"sql", oneline(query),
		"args", []any{user.UserID, user.Username, user.Email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if isUniqueViolation(err) {
		return nil, ErrUniqueViolation
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the user with the given id. Returns false if no such user exists.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM users
		WHERE user_id = $1
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"sql", oneline(query),
		"args", []any{userID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
