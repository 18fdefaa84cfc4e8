package repositories

import (
	"context"
)

// TransactionManager runs a unit of work inside a database transaction.
// Repositories called with the ctx handed to fn join that transaction.
type TransactionManager interface {
	// WithinTx runs fn in a read-write transaction, committing if fn returns nil.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	// WithinReadOnlyTx runs fn in a read-only repeatable-read transaction so that
	// every query inside fn observes the same snapshot.
	WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error
}
