package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lumenhotels/backoffice/internal/core/domain"
)

// ResetTokenStore keeps single-use password-reset tokens in Redis.
// Key format: pwreset:<sha256(token)>, value is the account email. Expiry is
// handled entirely by the key TTL, so stale tokens need no sweeper.
type ResetTokenStore struct {
	client *redis.Client
}

// NewResetTokenStore creates a ResetTokenStore wrapping the given Redis client.
func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

// Save stores the hashed token for the given email with the supplied TTL.
func (s *ResetTokenStore) Save(ctx context.Context, tokenHash, email string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(tokenHash), email, ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

// Lookup returns the email a live token was issued for, or
// domain.ErrResetTokenInvalid when the token is unknown or expired.
func (s *ResetTokenStore) Lookup(ctx context.Context, tokenHash string) (string, error) {
	email, err := s.client.Get(ctx, s.key(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrResetTokenInvalid
		}
		return "", fmt.Errorf("lookup reset token: %w", err)
	}
	return email, nil
}

// Delete removes a consumed token so it cannot be replayed.
func (s *ResetTokenStore) Delete(ctx context.Context, tokenHash string) error {
	return s.client.Del(ctx, s.key(tokenHash)).Err()
}

func (s *ResetTokenStore) key(tokenHash string) string {
	return "pwreset:" + tokenHash
}
