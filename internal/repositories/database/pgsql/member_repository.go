package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pos_backend/internal/models"
	"github.com/jackc/pgx/v5"
)

type PgxMemberRepository struct {
	BaseRepository
}

func newPgxMemberRepository(pool PgxPool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMemberRepository implements portsrepo.MemberRepositoryFacade
var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

const memberColumns = `member_id, login_id, password_hash, name, phone_number, email,
	identity_number, status, created_at, updated_at, deleted_at`

// Helper to convert domain.Member to models.Member
func toModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:       d.MemberID,
		LoginID:        d.LoginID,
		PasswordHash:   d.PasswordHash,
		Name:           d.Name,
		PhoneNumber:    d.PhoneNumber,
		Email:          d.Email,
		IdentityNumber: d.IdentityNumber,
		Status:         string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		DeletedAt: d.DeletedAt,
	}
}

// Helper to convert models.Member to domain.Member
func toDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:       m.MemberID,
		LoginID:        m.LoginID,
		PasswordHash:   m.PasswordHash,
		Name:           m.Name,
		PhoneNumber:    m.PhoneNumber,
		Email:          m.Email,
		IdentityNumber: m.IdentityNumber,
		Status:         domain.MemberStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		DeletedAt: m.DeletedAt,
	}
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := toModelMember(member)
	query := `
		INSERT INTO members (member_id, login_id, password_hash, name, phone_number, email,
			identity_number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.conn(ctx).Exec(ctx, query,
		m.MemberID,
		m.LoginID,
		m.PasswordHash,
		m.Name,
		m.PhoneNumber,
		m.Email,
		m.IdentityNumber,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("member %s: %w", m.LoginID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE deleted_at IS NULL AND ` + where
	var m models.Member
	err := r.conn(ctx).QueryRow(ctx, query, args...).Scan(
		&m.MemberID,
		&m.LoginID,
		&m.PasswordHash,
		&m.Name,
		&m.PhoneNumber,
		&m.Email,
		&m.IdentityNumber,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	d := toDomainMember(m)
	return &d, nil
}

func (r *PgxMemberRepository) FindMemberByLoginID(ctx context.Context, loginID string) (*domain.Member, error) {
	return r.findOne(ctx, `login_id = $1`, loginID)
}

func (r *PgxMemberRepository) FindMemberByLoginIDAndEmail(ctx context.Context, loginID, email string) (*domain.Member, error) {
	return r.findOne(ctx, `login_id = $1 AND email = $2`, loginID, email)
}

func (r *PgxMemberRepository) exists(ctx context.Context, column, value string) (bool, error) {
	// column is always one of the literals below, never caller input
	query := `SELECT EXISTS (SELECT 1 FROM members WHERE ` + column + ` = $1)`
	var found bool
	if err := r.conn(ctx).QueryRow(ctx, query, value).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check member %s: %w", column, err)
	}
	return found, nil
}

func (r *PgxMemberRepository) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	return r.exists(ctx, "login_id", loginID)
}

func (r *PgxMemberRepository) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	return r.exists(ctx, "phone_number", phoneNumber)
}

func (r *PgxMemberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

func (r *PgxMemberRepository) UpdatePassword(ctx context.Context, memberID, passwordHash string, updatedAt time.Time) error {
	query := `
		UPDATE members
		SET password_hash = $1, updated_at = $2
		WHERE member_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.conn(ctx).Exec(ctx, query, passwordHash, updatedAt, memberID)
	if err != nil {
		return fmt.Errorf("failed to update member password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMemberRepository) UpdateStatus(ctx context.Context, memberID string, status domain.MemberStatus, updatedAt time.Time) error {
	query := `
		UPDATE members
		SET status = $1, updated_at = $2
		WHERE member_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.conn(ctx).Exec(ctx, query, string(status), updatedAt, memberID)
	if err != nil {
		return fmt.Errorf("failed to update member status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
	}
	return nil
}
