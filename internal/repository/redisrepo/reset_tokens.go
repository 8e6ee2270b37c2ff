package redisrepo

import (
	"context"
	"errors"
	"time"

	"empleaworks-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const resetTokenPrefix = "pwreset:"

var errNotConfigured = errors.New("redis: reset token store not configured")

// resetTokenRepo keeps password reset tokens in Redis with a TTL, so
// they expire without any sweeping.
type resetTokenRepo struct {
	client *redis.Client
}

func NewResetTokenRepository(client *redis.Client) domain.ResetTokenRepository {
	return &resetTokenRepo{client: client}
}

func (r *resetTokenRepo) Store(ctx context.Context, token, userID string, ttl time.Duration) error {
	if r.client == nil {
		return errNotConfigured
	}
	return r.client.Set(ctx, resetTokenPrefix+token, userID, ttl).Err()
}

func (r *resetTokenRepo) Lookup(ctx context.Context, token string) (string, error) {
	if r.client == nil {
		return "", errNotConfigured
	}
	userID, err := r.client.Get(ctx, resetTokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidResetToken
		}
		return "", err
	}
	return userID, nil
}

func (r *resetTokenRepo) Delete(ctx context.Context, token string) error {
	if r.client == nil {
		return errNotConfigured
	}
	return r.client.Del(ctx, resetTokenPrefix+token).Err()
}
