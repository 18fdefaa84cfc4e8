package services

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/dto"
)

// StoreRegistrationSvc manages businesses and their registers
type StoreRegistrationSvc interface {
	// RegisterBusiness creates a business registration owned by the member.
	RegisterBusiness(ctx context.Context, memberID string, req dto.CreateBusinessRegistrationRequest) (*domain.BusinessRegistration, error)

	// RegisterPos adds a register under one of the member's registrations.
	RegisterPos(ctx context.Context, memberID, registrationID string, req dto.CreatePosRequest) (*domain.Pos, error)

	// ListPos lists the registers owned by the member.
	ListPos(ctx context.Context, memberID string) ([]domain.Pos, error)
}

// SalesRecorderSvc captures sales on a register
type SalesRecorderSvc interface {
	// RecordSale stores one immutable sale after checking ownership of posID.
	RecordSale(ctx context.Context, memberID, posID string, req dto.RecordSaleRequest) (*domain.PosSale, error)
}

// StoreSvcFacade combines the store-related service interfaces
type StoreSvcFacade interface {
	StoreRegistrationSvc
	SalesRecorderSvc
}
