package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pos_backend/internal/models"
	"github.com/jackc/pgx/v5"
)

// PgxPosRepository covers registrations, registers and sale capture.
type PgxPosRepository struct {
	BaseRepository
}

func newPgxPosRepository(pool PgxPool) portsrepo.PosRepositoryFacade {
	return &PgxPosRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PosRepositoryFacade = (*PgxPosRepository)(nil)

// ownedPosJoin walks pos -> business_registrations -> members, skipping
// soft-deleted registrations and members.
const ownedPosJoin = `
	FROM pos p
	JOIN business_registrations br ON br.registration_id = p.registration_id
	JOIN members m ON m.member_id = br.member_id
	WHERE m.member_id = $1
		AND m.deleted_at IS NULL
		AND br.deleted_at IS NULL`

func (r *PgxPosRepository) FindPosIDByMemberID(ctx context.Context, memberID string) (string, error) {
	query := `SELECT p.pos_id` + ownedPosJoin + `
	ORDER BY p.created_at, p.pos_id
	LIMIT 1`

	var posID string
	if err := r.conn(ctx).QueryRow(ctx, query, memberID).Scan(&posID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to resolve pos for member %s: %w", memberID, err)
	}
	return posID, nil
}

func (r *PgxPosRepository) IsPosOwnedByMember(ctx context.Context, memberID, posID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1` + ownedPosJoin + `
		AND p.pos_id = $2)`

	var owned bool
	if err := r.conn(ctx).QueryRow(ctx, query, memberID, posID).Scan(&owned); err != nil {
		return false, fmt.Errorf("failed to check ownership of pos %s: %w", posID, err)
	}
	return owned, nil
}

func (r *PgxPosRepository) FindPosByMemberID(ctx context.Context, memberID string) ([]domain.Pos, error) {
	query := `SELECT p.pos_id, p.registration_id, p.name, p.created_at, p.updated_at` + ownedPosJoin + `
	ORDER BY p.created_at, p.pos_id`

	rows, err := r.conn(ctx).Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pos for member %s: %w", memberID, err)
	}
	defer rows.Close()

	result := []domain.Pos{}
	for rows.Next() {
		var m models.Pos
		if err := rows.Scan(&m.PosID, &m.RegistrationID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pos row: %w", err)
		}
		result = append(result, domain.Pos{
			PosID:          m.PosID,
			RegistrationID: m.RegistrationID,
			Name:           m.Name,
			AuditFields:    domain.AuditFields{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pos rows: %w", err)
	}
	return result, nil
}

func (r *PgxPosRepository) FindBusinessRegistrationByID(ctx context.Context, registrationID string) (*domain.BusinessRegistration, error) {
	query := `
		SELECT registration_id, member_id, business_number, business_name, representative_name,
			created_at, updated_at, deleted_at
		FROM business_registrations
		WHERE registration_id = $1 AND deleted_at IS NULL;
	`
	var m models.BusinessRegistration
	err := r.conn(ctx).QueryRow(ctx, query, registrationID).Scan(
		&m.RegistrationID,
		&m.MemberID,
		&m.BusinessNumber,
		&m.BusinessName,
		&m.RepresentativeName,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business registration %s: %w", registrationID, err)
	}
	return &domain.BusinessRegistration{
		RegistrationID:     m.RegistrationID,
		MemberID:           m.MemberID,
		BusinessNumber:     m.BusinessNumber,
		BusinessName:       m.BusinessName,
		RepresentativeName: m.RepresentativeName,
		AuditFields:        domain.AuditFields{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		DeletedAt:          m.DeletedAt,
	}, nil
}

func (r *PgxPosRepository) SaveBusinessRegistration(ctx context.Context, reg domain.BusinessRegistration) error {
	query := `
		INSERT INTO business_registrations (registration_id, member_id, business_number, business_name,
			representative_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.conn(ctx).Exec(ctx, query,
		reg.RegistrationID,
		reg.MemberID,
		reg.BusinessNumber,
		reg.BusinessName,
		reg.RepresentativeName,
		reg.CreatedAt,
		reg.UpdatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("business number %s: %w", reg.BusinessNumber, apperrors.ErrDuplicate)
		case pgForeignKeyViolation:
			return fmt.Errorf("member %s: %w", reg.MemberID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to save business registration: %w", err)
	}
	return nil
}

func (r *PgxPosRepository) SavePos(ctx context.Context, pos domain.Pos) error {
	query := `
		INSERT INTO pos (pos_id, registration_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.conn(ctx).Exec(ctx, query, pos.PosID, pos.RegistrationID, pos.Name, pos.CreatedAt, pos.UpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("business registration %s: %w", pos.RegistrationID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to save pos: %w", err)
	}
	return nil
}

func (r *PgxPosRepository) SaveSale(ctx context.Context, sale domain.PosSale) error {
	m := models.PosSale{
		SaleID:      sale.SaleID,
		PosID:       sale.PosID,
		SaleDate:    sale.SaleDate,
		TotalAmount: sale.TotalAmount,
		PaymentType: string(sale.PaymentType),
		CreatedAt:   sale.CreatedAt,
	}
	query := `
		INSERT INTO pos_sales (sale_id, pos_id, sale_date, total_amount, payment_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.conn(ctx).Exec(ctx, query, m.SaleID, m.PosID, m.SaleDate, m.TotalAmount, m.PaymentType, m.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("pos %s: %w", m.PosID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to save sale: %w", err)
	}
	return nil
}
