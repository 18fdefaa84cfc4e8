package dto

import (
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
)

// SignupRequest defines the data needed to create a member account.
type SignupRequest struct {
	LoginID        string `json:"loginID" binding:"required,loginid"`
	Password       string `json:"password" binding:"required,min=8,max=72"`
	Name           string `json:"name" binding:"required,max=50"`
	PhoneNumber    string `json:"phoneNumber" binding:"required,max=15"`
	Email          string `json:"email" binding:"required,email,max=30"`
	IdentityNumber string `json:"identityNumber" binding:"required"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	LoginID  string `json:"loginID" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	AccessToken           string    `json:"accessToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshToken          string    `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

// LogoutRequest identifies the member whose refresh token is revoked.
type LogoutRequest struct {
	LoginID string `json:"loginID" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new access token.
type RefreshTokenRequest struct {
	LoginID      string `json:"loginID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	AccessToken          string    `json:"accessToken"`
	AccessTokenExpiresAt time.Time `json:"accessTokenExpiresAt"`
}

// CheckAuthRequest verifies a member's identity before a password reset.
type CheckAuthRequest struct {
	LoginID string `json:"loginID" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
}

// CheckAuthResponse reports whether login id and email belong to the same member.
type CheckAuthResponse struct {
	Valid bool `json:"valid"`
}

// PasswordResetRequest sets a new password for the member matching both login id and email.
type PasswordResetRequest struct {
	LoginID     string `json:"loginID" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}

// MemberActivityRequest identifies the member whose status is toggled.
type MemberActivityRequest struct {
	LoginID string `json:"loginID" binding:"required"`
}

// ActivateMemberRequest carries the credentials of an inactive member.
type ActivateMemberRequest struct {
	LoginID  string `json:"loginID" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AvailabilityResponse reports whether a login id, phone number or email is taken.
type AvailabilityResponse struct {
	Value string `json:"value"`
	Taken bool   `json:"taken"`
}

// MemberResponse is the public view of a member.
type MemberResponse struct {
	MemberID    string              `json:"memberID"`
	LoginID     string              `json:"loginID"`
	Name        string              `json:"name"`
	PhoneNumber string              `json:"phoneNumber"`
	Email       string              `json:"email"`
	Status      domain.MemberStatus `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ToMemberResponse converts a domain.Member to its response DTO
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:    m.MemberID,
		LoginID:     m.LoginID,
		Name:        m.Name,
		PhoneNumber: m.PhoneNumber,
		Email:       m.Email,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}
