package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "fitlog-revoked-refresh||"

// RevocationStore remembers refresh tokens (by jti) that were logged out or
// rotated, until they would have expired anyway.
type RevocationStore struct {
	redisClient *redis.Client
	now         func() time.Time
}

func NewRevocationStore(redisClient *redis.Client) *RevocationStore {
	return &RevocationStore{
		redisClient: redisClient,
		now:         time.Now,
	}
}

func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now()).Truncate(time.Second)
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}

	if err := s.redisClient.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

// Claim revokes the token only if nobody did it before, and reports whether
// this caller was the one who did. Only one of concurrent rotations with the
// same refresh token gets true.
func (s *RevocationStore) Claim(ctx context.Context, tokenID string, expiresAt time.Time) (bool, error) {
	// a zero ttl would make the key permanent
	ttl := max(expiresAt.Sub(s.now()).Truncate(time.Second), time.Second)

	claimed, err := s.redisClient.SetNX(ctx, revokedKeyPrefix+tokenID, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim refresh token: %w", err)
	}
	return claimed, nil
}
