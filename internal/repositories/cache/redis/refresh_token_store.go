package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	goredis "github.com/redis/go-redis/v9"
)

// RefreshTokenStore keeps one refresh token per login id under <prefix><loginID>.
type RefreshTokenStore struct {
	client goredis.Cmdable
	prefix string
}

var _ portsrepo.RefreshTokenStore = (*RefreshTokenStore)(nil)

// NewRefreshTokenStore creates a store backed by client.
func NewRefreshTokenStore(client goredis.Cmdable, prefix string) *RefreshTokenStore {
	return &RefreshTokenStore{client: client, prefix: prefix}
}

func (s *RefreshTokenStore) key(loginID string) string {
	return s.prefix + loginID
}

func (s *RefreshTokenStore) SaveRefreshToken(ctx context.Context, loginID, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(loginID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token for %s: %w", loginID, err)
	}
	return nil
}

func (s *RefreshTokenStore) GetRefreshToken(ctx context.Context, loginID string) (string, error) {
	val, err := s.client.Get(ctx, s.key(loginID)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to read refresh token for %s: %w", loginID, err)
	}
	return val, nil
}

func (s *RefreshTokenStore) DeleteRefreshToken(ctx context.Context, loginID string) error {
	if err := s.client.Del(ctx, s.key(loginID)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token for %s: %w", loginID, err)
	}
	return nil
}
