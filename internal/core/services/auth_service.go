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
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/platform/metrics"
	"github.com/SscSPs/pos_backend/internal/utils"
	"github.com/google/uuid"
)

// IdentityEncrypter seals identity numbers before they are stored.
type IdentityEncrypter interface {
	Encrypt(plaintext string) (string, error)
}

type authService struct {
	BaseService
	members portsrepo.MemberRepositoryFacade
	tokens  portssvc.TokenSvc
	cipher  IdentityEncrypter
	now     func() time.Time
}

// NewAuthService creates the member authentication service.
func NewAuthService(members portsrepo.MemberRepositoryFacade, tokens portssvc.TokenSvc, cipher IdentityEncrypter) portssvc.AuthSvcFacade {
	return &authService{
		members: members,
		tokens:  tokens,
		cipher:  cipher,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.Member, error) {
	checks := []struct {
		field string
		value string
		fn    func(context.Context, string) (bool, error)
	}{
		{"login id", req.LoginID, s.members.ExistsByLoginID},
		{"phone number", req.PhoneNumber, s.members.ExistsByPhoneNumber},
		{"email", req.Email, s.members.ExistsByEmail},
	}
	for _, c := range checks {
		taken, err := c.fn(ctx, c.value)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", c.field, err)
		}
		if taken {
			return nil, fmt.Errorf("%s already registered: %w", c.field, apperrors.ErrDuplicate)
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}
	identity, err := s.cipher.Encrypt(req.IdentityNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to encrypt identity number")
		return nil, fmt.Errorf("failed to encrypt identity number: %w", err)
	}

	now := s.now()
	member := domain.Member{
		MemberID:       uuid.NewString(),
		LoginID:        req.LoginID,
		PasswordHash:   hash,
		Name:           req.Name,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		IdentityNumber: identity,
		Status:         domain.MemberActive,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.members.SaveMember(ctx, member); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Member signed up", slog.String("member_id", member.MemberID))
	return &member, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (resp *dto.LoginResponse, err error) {
	defer func() { metrics.RecordAuthEvent("login", err) }()

	member, err := s.members.FindMemberByLoginID(ctx, req.LoginID)
	if err != nil {
		return nil, err
	}
	if !member.IsActive() {
		s.LogInfo(ctx, "Login attempt on inactive member", slog.String("login_id", req.LoginID))
		return nil, apperrors.ErrInactiveMember
	}
	if !utils.CheckPasswordHash(req.Password, member.PasswordHash) {
		s.LogWarn(ctx, "Login with wrong password", slog.String("login_id", req.LoginID))
		return nil, apperrors.ErrUnauthorized
	}

	accessToken, accessExp, err := s.tokens.GenerateAccessToken(ctx, member)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExp, err := s.tokens.GenerateRefreshToken(ctx, member)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Member logged in", slog.String("member_id", member.MemberID))
	return &dto.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

func (s *authService) Logout(ctx context.Context, req dto.LogoutRequest, accessToken string) error {
	if accessToken == "" {
		return fmt.Errorf("not logged in: %w", apperrors.ErrUnauthorized)
	}
	if err := s.tokens.RevokeRefreshToken(ctx, req.LoginID); err != nil {
		s.LogError(ctx, err, "Failed to revoke refresh token", slog.String("login_id", req.LoginID))
		return err
	}
	s.LogInfo(ctx, "Member logged out", slog.String("login_id", req.LoginID))
	return nil
}

func (s *authService) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (resp *dto.RefreshTokenResponse, err error) {
	defer func() { metrics.RecordAuthEvent("refresh", err) }()

	if err := s.tokens.ValidateRefreshToken(ctx, req.LoginID, req.RefreshToken); err != nil {
		return nil, err
	}

	member, err := s.members.FindMemberByLoginID(ctx, req.LoginID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !member.IsActive() {
		return nil, apperrors.ErrInactiveMember
	}

	accessToken, accessExp, err := s.tokens.GenerateAccessToken(ctx, member)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshTokenResponse{AccessToken: accessToken, AccessTokenExpiresAt: accessExp}, nil
}

func (s *authService) CheckAuth(ctx context.Context, req dto.CheckAuthRequest) (bool, error) {
	_, err := s.members.FindMemberByLoginIDAndEmail(ctx, req.LoginID, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *authService) ResetPassword(ctx context.Context, req dto.PasswordResetRequest) error {
	member, err := s.members.FindMemberByLoginIDAndEmail(ctx, req.LoginID, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Password reset with mismatched identity", slog.String("login_id", req.LoginID))
			return apperrors.ErrUnauthorized
		}
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.members.UpdatePassword(ctx, member.MemberID, hash, s.now()); err != nil {
		return err
	}

	// Outstanding refresh tokens were issued against the old password.
	if err := s.tokens.RevokeRefreshToken(ctx, member.LoginID); err != nil {
		s.LogWarn(ctx, "Failed to revoke refresh token after password reset", slog.String("login_id", member.LoginID))
	}

	s.LogInfo(ctx, "Password reset", slog.String("member_id", member.MemberID))
	return nil
}

func (s *authService) setStatus(ctx context.Context, loginID string, status domain.MemberStatus) error {
	member, err := s.members.FindMemberByLoginID(ctx, loginID)
	if err != nil {
		return err
	}
	if err := s.members.UpdateStatus(ctx, member.MemberID, status, s.now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Member status changed", slog.String("member_id", member.MemberID), slog.String("status", string(status)))
	return nil
}

func (s *authService) DeactivateMember(ctx context.Context, req dto.MemberActivityRequest) error {
	if err := s.setStatus(ctx, req.LoginID, domain.MemberInactive); err != nil {
		return err
	}
	return s.tokens.RevokeRefreshToken(ctx, req.LoginID)
}

func (s *authService) ActivateMember(ctx context.Context, req dto.ActivateMemberRequest) error {
	member, err := s.members.FindMemberByLoginID(ctx, req.LoginID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return err
	}
	if !utils.CheckPasswordHash(req.Password, member.PasswordHash) {
		s.LogWarn(ctx, "Activation with wrong password", slog.String("login_id", req.LoginID))
		return apperrors.ErrUnauthorized
	}
	if member.IsActive() {
		return nil
	}
	if err := s.members.UpdateStatus(ctx, member.MemberID, domain.MemberActive, s.now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Member status changed", slog.String("member_id", member.MemberID), slog.String("status", string(domain.MemberActive)))
	return nil
}

func (s *authService) IsLoginIDTaken(ctx context.Context, loginID string) (bool, error) {
	return s.members.ExistsByLoginID(ctx, loginID)
}

func (s *authService) IsPhoneNumberTaken(ctx context.Context, phoneNumber string) (bool, error) {
	return s.members.ExistsByPhoneNumber(ctx, phoneNumber)
}

func (s *authService) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	return s.members.ExistsByEmail(ctx, email)
}
