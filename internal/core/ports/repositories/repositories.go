package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager     TransactionManager
	MemberRepo    MemberRepositoryFacade
	PosRepo       PosRepositoryFacade
	IncomeRepo    IncomeRepository
	RefreshTokens RefreshTokenStore
}
