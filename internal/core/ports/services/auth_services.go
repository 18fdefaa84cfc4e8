package services

import (
	"context"
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/dto"
)

// TokenSvc issues and verifies access and refresh tokens.
type TokenSvc interface {
	// GenerateAccessToken creates a signed JWT whose subject is the member id.
	GenerateAccessToken(ctx context.Context, member *domain.Member) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque refresh token and stores it for the member's login id.
	GenerateRefreshToken(ctx context.Context, member *domain.Member) (string, time.Time, error)

	// ValidateRefreshToken compares token with the stored one for loginID.
	ValidateRefreshToken(ctx context.Context, loginID, token string) error

	// RevokeRefreshToken deletes the stored refresh token for loginID.
	RevokeRefreshToken(ctx context.Context, loginID string) error
}

// CredentialSvc covers signup, login, logout and token refresh
type CredentialSvc interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.Member, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout revokes the refresh token; accessToken must be non-empty.
	Logout(ctx context.Context, req dto.LogoutRequest, accessToken string) error
	Refresh(ctx context.Context, req dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error)
}

// PasswordRecoverySvc covers the identity check and password reset flow
type PasswordRecoverySvc interface {
	CheckAuth(ctx context.Context, req dto.CheckAuthRequest) (bool, error)
	ResetPassword(ctx context.Context, req dto.PasswordResetRequest) error
}

// MemberLifecycleSvc toggles member activity
type MemberLifecycleSvc interface {
	DeactivateMember(ctx context.Context, req dto.MemberActivityRequest) error
	ActivateMember(ctx context.Context, req dto.ActivateMemberRequest) error
}

// AvailabilitySvc answers duplicate checks used by the signup form
type AvailabilitySvc interface {
	IsLoginIDTaken(ctx context.Context, loginID string) (bool, error)
	IsPhoneNumberTaken(ctx context.Context, phoneNumber string) (bool, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
}

// AuthSvcFacade combines all member authentication interfaces
type AuthSvcFacade interface {
	CredentialSvc
	PasswordRecoverySvc
	MemberLifecycleSvc
	AvailabilitySvc
}
