package repositories

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
)

// OwnershipReader answers who owns which point-of-sale through the
// members -> business_registrations -> pos join.
type OwnershipReader interface {
	// FindPosIDByMemberID returns the oldest Pos owned by the member, or apperrors.ErrNotFound.
	FindPosIDByMemberID(ctx context.Context, memberID string) (string, error)

	// IsPosOwnedByMember reports whether posID belongs to one of the member's registrations.
	IsPosOwnedByMember(ctx context.Context, memberID, posID string) (bool, error)
}

// StoreReader defines read operations for registrations and registers
type StoreReader interface {
	// FindBusinessRegistrationByID retrieves a registration, or apperrors.ErrNotFound.
	FindBusinessRegistrationByID(ctx context.Context, registrationID string) (*domain.BusinessRegistration, error)

	// FindPosByMemberID lists the Pos owned by the member, oldest first.
	FindPosByMemberID(ctx context.Context, memberID string) ([]domain.Pos, error)
}

// StoreWriter defines write operations for registrations, registers and sales
type StoreWriter interface {
	// SaveBusinessRegistration persists a new registration; apperrors.ErrDuplicate on a taken business number.
	SaveBusinessRegistration(ctx context.Context, reg domain.BusinessRegistration) error

	// SavePos persists a new point-of-sale register.
	SavePos(ctx context.Context, pos domain.Pos) error

	// SaveSale inserts an immutable sale record.
	SaveSale(ctx context.Context, sale domain.PosSale) error
}

// PosRepositoryFacade combines all pos-related repository interfaces
type PosRepositoryFacade interface {
	OwnershipReader
	StoreReader
	StoreWriter
}
