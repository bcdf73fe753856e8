package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ocevave/ocevave/internal/config"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ocevave:session:revoked:"

// RedisRevoker stores revocations as expiring Redis keys, shared across instances.
type RedisRevoker struct {
	client redis.UniversalClient
	now    func() time.Time
}

// NewRedisRevoker wraps an existing client.
func NewRedisRevoker(client redis.UniversalClient) *RedisRevoker {
	return &RedisRevoker{client: client, now: time.Now}
}

// DialRedis opens a client from cfg and verifies connectivity.
func DialRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if errPing := client.Ping(pingCtx).Err(); errPing != nil {
		_ = client.Close()
		return nil, fmt.Errorf("session: redis ping: %w", errPing)
	}
	return client, nil
}

// Revoke marks tokenID revoked until expiresAt.
func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	if errSet := r.client.Set(ctx, redisKeyPrefix+tokenID, 1, ttl).Err(); errSet != nil {
		return fmt.Errorf("session: revoke: %w", errSet)
	}
	return nil
}

// IsRevoked reports whether tokenID has a live revocation key.
func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	errGet := r.client.Get(ctx, redisKeyPrefix+tokenID).Err()
	switch {
	case errGet == nil:
		return true, nil
	case errors.Is(errGet, redis.Nil):
		return false, nil
	default:
		return false, fmt.Errorf("session: lookup: %w", errGet)
	}
}
