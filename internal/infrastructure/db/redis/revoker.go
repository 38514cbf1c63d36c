package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRevoker stores per-user revocation timestamps in Redis. A token is
// revoked when it was issued before the stored instant. Entries carry a TTL
// matching the token lifetime, since older tokens expire on their own.
type TokenRevoker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenRevoker creates a TokenRevoker wrapping the given Redis client.
// ttl should match the bearer token lifetime.
func NewTokenRevoker(client *redis.Client, ttl time.Duration) *TokenRevoker {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenRevoker{client: client, ttl: ttl}
}

// Revoke invalidates every token of userID issued before at.
func (r *TokenRevoker) Revoke(ctx context.Context, userID string, at time.Time) error {
	return r.client.Set(ctx, r.key(userID), at.Unix(), r.ttl).Err()
}

// IsRevoked reports whether a token issued at issuedAt has been revoked.
func (r *TokenRevoker) IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	val, err := r.client.Get(ctx, r.key(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}

	revokedAt, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("revocation check: parse %q: %w", val, err)
	}
	return issuedAt.Unix() < revokedAt, nil
}

func (r *TokenRevoker) key(userID string) string {
	return "revoked_before:" + userID
}
