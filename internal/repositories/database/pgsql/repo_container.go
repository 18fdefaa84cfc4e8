package pgsql

import (
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the postgres-backed repositories. The refresh
// token store lives outside postgres and is supplied by the caller.
func NewRepositoryProvider(dbPool PgxPool, refreshTokens portsrepo.RefreshTokenStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:     newTxManager(dbPool),
		MemberRepo:    newPgxMemberRepository(dbPool),
		PosRepo:       newPgxPosRepository(dbPool),
		IncomeRepo:    newIncomeRepository(dbPool),
		RefreshTokens: refreshTokens,
	}
}
