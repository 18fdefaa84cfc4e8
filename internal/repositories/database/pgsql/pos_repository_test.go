package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosRepository_FindPosIDByMemberID(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxPosRepository(mock)

	mock.ExpectQuery(`ORDER BY p.created_at, p.pos_id\s+LIMIT 1`).
		WithArgs("member-1").
		WillReturnRows(pgxmock.NewRows([]string{"pos_id"}).AddRow("pos-1"))

	posID, err := repo.FindPosIDByMemberID(context.Background(), "member-1")
	require.NoError(t, err)
	assert.Equal(t, "pos-1", posID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPosRepository_FindPosIDByMemberID_NoRows(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxPosRepository(mock)

	mock.ExpectQuery(`SELECT p.pos_id`).
		WithArgs("member-1").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindPosIDByMemberID(context.Background(), "member-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPosRepository_IsPosOwnedByMember(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxPosRepository(mock)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1`).
		WithArgs("member-1", "pos-2").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	owned, err := repo.IsPosOwnedByMember(context.Background(), "member-1", "pos-2")
	require.NoError(t, err)
	assert.False(t, owned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPosRepository_SaveBusinessRegistration_Duplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxPosRepository(mock)
	now := time.Now().UTC()
	reg := domain.BusinessRegistration{
		RegistrationID:     "reg-1",
		MemberID:           "member-1",
		BusinessNumber:     "1234567890",
		BusinessName:       "Corner Cafe",
		RepresentativeName: "Kim",
		AuditFields:        domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	mock.ExpectExec(`INSERT INTO business_registrations`).
		WithArgs(reg.RegistrationID, reg.MemberID, reg.BusinessNumber, reg.BusinessName, reg.RepresentativeName, now, now).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.SaveBusinessRegistration(context.Background(), reg)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPosRepository_SaveSale(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxPosRepository(mock)
	saleDate := time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)
	sale := domain.PosSale{
		SaleID:      "sale-1",
		PosID:       "pos-1",
		SaleDate:    saleDate,
		TotalAmount: decimal.NewFromInt(1000),
		PaymentType: domain.PaymentCard,
		CreatedAt:   saleDate,
	}

	mock.ExpectExec(`INSERT INTO pos_sales`).
		WithArgs("sale-1", "pos-1", saleDate, sale.TotalAmount, "CARD", saleDate).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.SaveSale(context.Background(), sale))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPosRepository_SavePos_MissingRegistration(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxPosRepository(mock)
	now := time.Now().UTC()

	mock.ExpectExec(`INSERT INTO pos`).
		WithArgs("pos-1", "reg-x", "Front counter", now, now).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	err := repo.SavePos(context.Background(), domain.Pos{
		PosID:          "pos-1",
		RegistrationID: "reg-x",
		Name:           "Front counter",
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPosRepository_FindPosByMemberID(t *testing.T) {
	mock := newMockPool(t)
	repo := newPgxPosRepository(mock)
	older := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	mock.ExpectQuery(`SELECT p.pos_id, p.registration_id, p.name`).
		WithArgs("member-1").
		WillReturnRows(pgxmock.NewRows([]string{"pos_id", "registration_id", "name", "created_at", "updated_at"}).
			AddRow("pos-1", "reg-1", "Front", older, older).
			AddRow("pos-2", "reg-1", "Back", newer, newer))

	list, err := repo.FindPosByMemberID(context.Background(), "member-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "pos-1", list[0].PosID)
	assert.Equal(t, "Back", list[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
