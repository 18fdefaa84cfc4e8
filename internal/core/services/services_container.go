package services

import (
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cipher IdentityEncrypter) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Ownership is shared by reporting and sale capture
	container.Ownership = NewOwnershipService(repos.PosRepo)
	container.Income = NewIncomeAggregator(repos.IncomeRepo)
	container.Reporting = NewReportingService(repos.TxManager, container.Ownership, container.Income)
	container.Store = NewStoreService(repos.PosRepo, repos.TxManager, container.Ownership)

	container.Token = NewTokenService(cfg, repos.RefreshTokens)
	container.Auth = NewAuthService(repos.MemberRepo, container.Token, cipher)

	return container
}
