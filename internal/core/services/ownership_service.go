package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
)

type ownershipService struct {
	BaseService
	repo portsrepo.OwnershipReader
}

// NewOwnershipService creates the resolver that maps members to their Pos.
func NewOwnershipService(repo portsrepo.OwnershipReader) portssvc.OwnershipResolverSvc {
	return &ownershipService{repo: repo}
}

var _ portssvc.OwnershipResolverSvc = (*ownershipService)(nil)

func (s *ownershipService) ResolvePos(ctx context.Context, memberID string) (string, error) {
	posID, err := s.repo.FindPosIDByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Member has no pos", slog.String("member_id", memberID))
			return "", apperrors.ErrNoRegisterFound
		}
		s.LogError(ctx, err, "Failed to resolve pos", slog.String("member_id", memberID))
		return "", fmt.Errorf("failed to resolve pos for member %s: %w", memberID, err)
	}
	return posID, nil
}

func (s *ownershipService) Authorize(ctx context.Context, memberID, posID string) error {
	owned, err := s.repo.IsPosOwnedByMember(ctx, memberID, posID)
	if err != nil {
		s.LogError(ctx, err, "Failed to verify pos ownership",
			slog.String("member_id", memberID), slog.String("pos_id", posID))
		return fmt.Errorf("failed to verify ownership of pos %s: %w", posID, err)
	}
	if !owned {
		s.LogWarn(ctx, "Pos access denied", slog.String("member_id", memberID), slog.String("pos_id", posID))
		return apperrors.ErrForbidden
	}
	return nil
}
