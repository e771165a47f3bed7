package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/models"
	"github.com/yaredtsegaye/blog-platform/internal/repositories"
)

// Revoker marks a user's outstanding tokens as no longer accepted.
type Revoker interface {
	Revoke(ctx context.Context, userID uuid.UUID, ttl time.Duration) error
}

// UserService handles user listing, profile updates, and account deletion.
type UserService struct {
	reader        UserReader
	writer        UserWriter
	avatars       AvatarStorer
	revoker       Revoker
	kafka         KafkaWriter
	revocationTTL time.Duration
}

// NewUserService creates a new UserService instance. revocationTTL bounds how
// long deleted accounts stay on the revocation list; it should cover the
// token lifetime, or a generous horizon when tokens never expire.
func NewUserService(reader UserReader, writer UserWriter, avatars AvatarStorer, revoker Revoker, kafka KafkaWriter, revocationTTL time.Duration) *UserService {
	return &UserService{
		reader:        reader,
		writer:        writer,
		avatars:       avatars,
		revoker:       revoker,
		kafka:         kafka,
		revocationTTL: revocationTTL,
	}
}

// List returns all users.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Get returns the user with the given id.
func (svc *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update replaces the mutable fields of a user. Nil fields keep their current
// value. A new avatar image replaces the stored one; the old object is
// released from storage.
func (svc *UserService) Update(ctx context.Context, userID uuid.UUID, username, email *string, image []byte) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if username != nil && *username != user.Username {
		existing, err := svc.reader.GetByUsername(ctx, *username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrUserAlreadyExists
		}
		user.Username = *username
	}

	if email != nil && *email != user.Email {
		existing, err := svc.reader.GetByEmail(ctx, *email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrUserAlreadyExists
		}
		user.Email = *email
	}

	if len(image) > 0 && svc.avatars != nil {
		if user.AvatarKey != nil {
			if err := svc.avatars.Delete(ctx, *user.AvatarKey); err != nil {
				logger.Log.Errorw("failed to release old avatar", "key", *user.AvatarKey, "err", err)
			}
		}
		url, key, err := svc.avatars.Upload(ctx, image, http.DetectContentType(image))
		if err != nil {
			logger.Log.Errorw("failed to upload avatar", "err", err)
			return nil, err
		}
		user.AvatarURL = &url
		user.AvatarKey = &key
	}

	updated, err := svc.writer.Update(ctx, *user)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "user_id", userID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}

// Delete removes the user, releases the stored avatar image, and revokes the
// user's outstanding tokens. Blog posts written by the user are kept.
func (svc *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.AvatarKey != nil && svc.avatars != nil {
		if err := svc.avatars.Delete(ctx, *user.AvatarKey); err != nil {
			logger.Log.Errorw("failed to release avatar", "key", *user.AvatarKey, "err", err)
		}
	}

	deleted, err := svc.writer.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	if svc.revoker != nil {
		if err := svc.revoker.Revoke(ctx, userID, svc.revocationTTL); err != nil {
			logger.Log.Errorw("failed to revoke tokens", "user_id", userID, "err", err)
		}
	}

	publishEvent(ctx, svc.kafka, models.EventUserDeleted, userID.String(), userID.String())

	return nil
}
