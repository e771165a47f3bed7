package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/models"
)

// ErrBlogNotFound is returned when no blog post matches the given id.
var ErrBlogNotFound = errors.New("blog not found")

// BlogReader defines read-only operations for blog posts.
type BlogReader interface {
	List(ctx context.Context) ([]models.BlogDB, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.BlogDB, error)
	GetByID(ctx context.Context, blogID uuid.UUID) (*models.BlogDB, error)
}

// BlogWriter defines write operations for blog posts.
type BlogWriter interface {
	Save(ctx context.Context, blog models.BlogDB) (*models.BlogDB, error)
	Update(ctx context.Context, blogID uuid.UUID, name, category, description *string) (*models.BlogDB, error)
	AddLikes(ctx context.Context, blogID uuid.UUID, delta int64) (*models.BlogDB, error)
	Delete(ctx context.Context, blogID uuid.UUID) (bool, error)
}

// BlogService handles blog post CRUD and like counting.
type BlogService struct {
	reader BlogReader
	writer BlogWriter
	users  UserReader
	kafka  KafkaWriter
}

// NewBlogService creates a new BlogService instance.
func NewBlogService(reader BlogReader, writer BlogWriter, users UserReader, kafka KafkaWriter) *BlogService {
	return &BlogService{
		reader: reader,
		writer: writer,
		users:  users,
		kafka:  kafka,
	}
}

// List returns all blog posts.
func (svc *BlogService) List(ctx context.Context) ([]models.BlogDB, error) {
	blogs, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list blogs", "err", err)
		return nil, err
	}
	return blogs, nil
}

// ListByAuthorUsername resolves a username to a user and returns that user's
// blog posts. Returns ErrUserNotFound when the username does not resolve.
func (svc *BlogService) ListByAuthorUsername(ctx context.Context, username string) ([]models.BlogDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to resolve author", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	blogs, err := svc.reader.ListByAuthor(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list blogs by author", "author_id", user.UserID, "err", err)
		return nil, err
	}
	return blogs, nil
}

// Get returns the blog post with the given id.
func (svc *BlogService) Get(ctx context.Context, blogID uuid.UUID) (*models.BlogDB, error) {
	blog, err := svc.reader.GetByID(ctx, blogID)
	if err != nil {
		logger.Log.Errorw("failed to get blog", "blog_id", blogID, "err", err)
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}

// Create stores a new blog post. The author is always the authenticated
// caller, never a payload field.
func (svc *BlogService) Create(ctx context.Context, authorID uuid.UUID, name, category string, description *string) (*models.BlogDB, error) {
	blog := models.BlogDB{
		Name:        name,
		AuthorID:    authorID,
		Category:    category,
		Description: description,
	}

	saved, err := svc.writer.Save(ctx, blog)
	if err != nil {
		logger.Log.Errorw("failed to save blog", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafka, models.EventBlogCreated, saved.BlogID.String(), authorID.String())

	return saved, nil
}

// Update merges the given fields into an existing post. Nil fields keep
// their current value.
func (svc *BlogService) Update(ctx context.Context, blogID uuid.UUID, name, category, description *string) (*models.BlogDB, error) {
	updated, err := svc.writer.Update(ctx, blogID, name, category, description)
	if err != nil {
		logger.Log.Errorw("failed to update blog", "blog_id", blogID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrBlogNotFound
	}

	publishEvent(ctx, svc.kafka, models.EventBlogUpdated, blogID.String(), "")

	return updated, nil
}

// Like adds delta to the post's like counter. The mutation is atomic at the
// storage layer, so concurrent likes are never lost.
func (svc *BlogService) Like(ctx context.Context, blogID uuid.UUID, delta int64) (*models.BlogDB, error) {
	updated, err := svc.writer.AddLikes(ctx, blogID, delta)
	if err != nil {
		logger.Log.Errorw("failed to update like counter", "blog_id", blogID, "delta", delta, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrBlogNotFound
	}

	publishEvent(ctx, svc.kafka, models.EventBlogUpdated, blogID.String(), "")

	return updated, nil
}

// Delete removes the blog post with the given id.
func (svc *BlogService) Delete(ctx context.Context, blogID uuid.UUID) error {
	deleted, err := svc.writer.Delete(ctx, blogID)
	if err != nil {
		logger.Log.Errorw("failed to delete blog", "blog_id", blogID, "err", err)
		return err
	}
	if !deleted {
		return ErrBlogNotFound
	}

	publishEvent(ctx, svc.kafka, models.EventBlogDeleted, blogID.String(), "")

	return nil
}
