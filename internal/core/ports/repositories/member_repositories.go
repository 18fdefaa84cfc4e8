package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
)

// MemberReader defines read operations for member data
type MemberReader interface {
	// FindMemberByLoginID retrieves a non-deleted member by login id.
	FindMemberByLoginID(ctx context.Context, loginID string) (*domain.Member, error)

	// FindMemberByLoginIDAndEmail retrieves a member matching both login id and email.
	FindMemberByLoginIDAndEmail(ctx context.Context, loginID, email string) (*domain.Member, error)

	// ExistsByLoginID reports whether the login id is already registered.
	ExistsByLoginID(ctx context.Context, loginID string) (bool, error)

	// ExistsByPhoneNumber reports whether the phone number is already registered.
	ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error)

	// ExistsByEmail reports whether the email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// MemberWriter defines write operations for member data
type MemberWriter interface {
	// SaveMember persists a new member.
	SaveMember(ctx context.Context, member domain.Member) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, memberID, passwordHash string, updatedAt time.Time) error

	// UpdateStatus toggles a member between ACTIVE and INACTIVE.
	UpdateStatus(ctx context.Context, memberID string, status domain.MemberStatus, updatedAt time.Time) error
}

// MemberRepositoryFacade combines all member-related repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
