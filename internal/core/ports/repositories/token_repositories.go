package repositories

import (
	"context"
	"time"
)

// RefreshTokenStore keeps the current refresh token of each login id
type RefreshTokenStore interface {
	// SaveRefreshToken stores token for loginID, replacing any previous one.
	SaveRefreshToken(ctx context.Context, loginID, token string, ttl time.Duration) error

	// GetRefreshToken returns the stored token, or apperrors.ErrNotFound when none is live.
	GetRefreshToken(ctx context.Context, loginID string) (string, error)

	// DeleteRefreshToken removes the stored token; deleting a missing token is not an error.
	DeleteRefreshToken(ctx context.Context, loginID string) error
}
