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

const blogColumns = `blog_id, name, author_id, category, description, likes, created_at, updated_at`

// BlogReadRepository provides read-only access to blog post records.
type BlogReadRepository struct {
	db *sqlx.DB
}

func NewBlogReadRepository(db *sqlx.DB) *BlogReadRepository {
	return &BlogReadRepository{db: db}
}

// List returns all blog posts ordered by creation time, newest first.
func (r *BlogReadRepository) List(ctx context.Context) ([]models.BlogDB, error) {
	const query = `
		SELECT ` + blogColumns + `
		FROM blogs
		ORDER BY created_at DESC
	`

	blogs := make([]models.BlogDB, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &blogs, query)

	logger.Log.Infow("query executed",
		"sql", oneline(query),
		"rows", len(blogs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// ListByAuthor returns all blog posts written by the given user, newest first.
func (r *BlogReadRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.BlogDB, error) {
	const query = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE author_id = $1
		ORDER BY created_at DESC
	`

	blogs := make([]models.BlogDB, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &blogs, query, authorID)

	logger.Log.Infow("query executed",
		"sql", oneline(query),
		"args", []any{authorID},
		"rows", len(blogs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// GetByID returns the blog post with the given id, or nil if no such post exists.
func (r *BlogReadRepository) GetByID(ctx context.Context, blogID uuid.UUID) (*models.BlogDB, error) {
	const query = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE blog_id = $1
	`

	var blog models.BlogDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &blog, query, blogID)

	logger.Log.Infow("query executed",
		"sql", oneline(query),
		"args", []any{blogID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// BlogWriteRepository provides write access to blog post records.
type BlogWriteRepository struct {
	db *sqlx.DB
}

func NewBlogWriteRepository(db *sqlx.DB) *BlogWriteRepository {
	return &BlogWriteRepository{db: db}
}

// Save inserts a new blog post and returns the stored record.
func (r *BlogWriteRepository) Save(ctx context.Context, blog models.BlogDB) (*models.BlogDB, error) {
	const query = `
		INSERT INTO blogs (name, author_id, category, description)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + blogColumns + `
	`
	args := []any{blog.Name, blog.AuthorID, blog.Category, blog.Description}

	var saved models.BlogDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &saved, query, args...)

	logger.Log.Infow("query executed",
		"sql", oneline(query),
		"args", []any{blog.Name, blog.AuthorID, blog.Category},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update merges the given fields into an existing post. Nil fields keep their
// current value. Returns the updated record, or nil if no such post exists.
func (r *BlogWriteRepository) Update(ctx context.Context, blogID uuid.UUID, name, category, description *string) (*models.BlogDB, error) {
	const query = `
		UPDATE blogs
		SET name = COALESCE($2, name),
		    category = COALESCE($3, category),
		    description = COALESCE($4, description),
		    updated_at = NOW()
		WHERE blog_id = $1
		RETURNING ` + blogColumns + `
	`
	args := []any{blogID, name, category, description}

	var updated models.BlogDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &updated, query, args...)

	logger.Log.Infow("query executed",
		"sql", oneline(query),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddLikes atomically adds delta to the post's like counter and returns the
// updated record, or nil if no such post exists.
func (r *BlogWriteRepository) AddLikes(ctx context.Context, blogID uuid.UUID, delta int64) (*models.BlogDB, error) {
	const query = `
		UPDATE blogs
		SET likes = likes + $2,
		    updated_at = NOW()
		WHERE blog_id = $1
		RETURNING ` + blogColumns + `
	`

	var updated models.BlogDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &updated, query, blogID, delta)

	logger.Log.Infow("query executed",
		"sql", oneline(query),
		"args", []any{blogID, delta},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the blog post with the given id. Returns false if no such post exists.
func (r *BlogWriteRepository) Delete(ctx context.Context, blogID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM blogs
		WHERE blog_id = $1
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, blogID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"sql", oneline(query),
		"args", []any{blogID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
