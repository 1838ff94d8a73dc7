package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResetTokenTTL is how long a password reset link stays valid.
const ResetTokenTTL = time.Hour

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// TokenStore tracks revoked JWT ids and one-time password reset tokens.
type TokenStore struct {
	client *redis.Client
}

// Revoke denylists jti until the token would have expired anyway.
func (s TokenStore) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists failed: %w", err)
	}
	return n > 0, nil
}

func (s TokenStore) SaveResetToken(ctx context.Context, token string, accountID int64) error {
	if err := s.client.Set(ctx, resetKey(token), accountID, ResetTokenTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// ConsumeResetToken returns the account id and deletes the token atomically.
func (s TokenStore) ConsumeResetToken(ctx context.Context, token string) (int64, error) {
	raw, err := s.client.GetDel(ctx, resetKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrCacheMiss
	}
	if err != nil {
		return 0, fmt.Errorf("redis getdel failed: %w", err)
	}
	return strconv.ParseInt(raw, 10, 64)
}

func revokedKey(jti string) string { return "jwt:revoked:" + jti }

func resetKey(token string) string { return "pwreset:" + token }
