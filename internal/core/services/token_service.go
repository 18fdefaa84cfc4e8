package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/platform/config"
	"github.com/SscSPs/pos_backend/internal/utils"
)

// tokenService implements the TokenSvc for handling JWT and refresh tokens.
// Refresh tokens are opaque random strings; only their SHA-256 hash is stored.
type tokenService struct {
	BaseService
	cfg   *config.Config
	store portsrepo.RefreshTokenStore
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, store portsrepo.RefreshTokenStore) portssvc.TokenSvc {
	return &tokenService{
		cfg:   cfg,
		store: store,
	}
}

// GenerateAccessToken creates a new JWT access token for the given member.
func (s *tokenService) GenerateAccessToken(ctx context.Context, member *domain.Member) (string, time.Time, error) {
	accessToken, expiresAt, err := utils.GenerateJWT(member.MemberID, member.LoginID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("member_id", member.MemberID))
		return "", time.Time{}, err
	}
	return accessToken, expiresAt, nil
}

// GenerateRefreshToken creates a new refresh token and stores its hash, replacing any previous one.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, member *domain.Member) (string, time.Time, error) {
	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate secure random string for refresh token: %w", err)
	}

	ttl := s.cfg.RefreshTokenExpiryDuration
	if err := s.store.SaveRefreshToken(ctx, member.LoginID, utils.HashRefreshToken(rawRefreshToken), ttl); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", slog.String("login_id", member.LoginID))
		return "", time.Time{}, err
	}
	return rawRefreshToken, time.Now().Add(ttl), nil
}

// ValidateRefreshToken checks token against the stored hash for loginID.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, loginID, token string) error {
	storedHash, err := s.store.GetRefreshToken(ctx, loginID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "No live refresh token", slog.String("login_id", loginID))
			return apperrors.ErrRefreshTokenExpired
		}
		return fmt.Errorf("failed to load refresh token: %w", err)
	}

	if !utils.CompareRefreshTokenHash(token, storedHash) {
		s.LogWarn(ctx, "Refresh token mismatch", slog.String("login_id", loginID))
		return apperrors.ErrUnauthorized
	}
	return nil
}

// RevokeRefreshToken removes the stored refresh token for loginID.
func (s *tokenService) RevokeRefreshToken(ctx context.Context, loginID string) error {
	return s.store.DeleteRefreshToken(ctx, loginID)
}
