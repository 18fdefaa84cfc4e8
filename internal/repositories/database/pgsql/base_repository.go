package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by a pool and an open transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgxPool is satisfied by *pgxpool.Pool and by pgxmock pools in tests.
type PgxPool interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type txCtxKey struct{}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool PgxPool
}

// conn returns the transaction carried by ctx, or the pool when there is none.
func (r *BaseRepository) conn(ctx context.Context) DBTX {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.Pool
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// TxManager implements portsrepo.TransactionManager on top of a pool.
type TxManager struct {
	BaseRepository
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

func newTxManager(pool PgxPool) *TxManager {
	return &TxManager{BaseRepository: BaseRepository{Pool: pool}}
}

// WithinTx runs fn in a read-write transaction.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{}, fn)
}

// WithinReadOnlyTx runs fn in a read-only repeatable-read transaction.
func (m *TxManager) WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead}, fn)
}

func (m *TxManager) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
	// Nested calls join the outer transaction.
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.Pool.BeginTx(ctx, opts)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}

	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to rollback transaction", errors.Join(err, rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}
