package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
)

// RevocationRepository marks users whose outstanding tokens must no longer be
// accepted, backed by Redis.
type RevocationRepository struct {
	client *redis.Client
}

func NewRevocationRepository(client *redis.Client) *RevocationRepository {
	return &RevocationRepository{client: client}
}

func revocationKey(userID uuid.UUID) string {
	return fmt.Sprintf("revoked:user:%s", userID)
}

// Revoke marks all tokens of the given user as revoked for the given duration.
func (r *RevocationRepository) Revoke(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	key := revocationKey(userID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("revocation set",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the given user's tokens have been revoked.
func (r *RevocationRepository) IsRevoked(ctx context.Context, userID uuid.UUID) (bool, error) {
	key := revocationKey(userID)
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("revocation check failed", "key", key, "error", err)
		return false, err
	}
	return n > 0, nil
}
