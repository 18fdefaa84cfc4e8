package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/google/uuid"
)

type storeService struct {
	BaseService
	repo      portsrepo.PosRepositoryFacade
	tx        portsrepo.TransactionManager
	ownership portssvc.OwnershipResolverSvc
	now       func() time.Time
}

// NewStoreService creates the service for registrations, registers and sales.
func NewStoreService(repo portsrepo.PosRepositoryFacade, tx portsrepo.TransactionManager, ownership portssvc.OwnershipResolverSvc) portssvc.StoreSvcFacade {
	return &storeService{
		repo:      repo,
		tx:        tx,
		ownership: ownership,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.StoreSvcFacade = (*storeService)(nil)

func (s *storeService) RegisterBusiness(ctx context.Context, memberID string, req dto.CreateBusinessRegistrationRequest) (*domain.BusinessRegistration, error) {
	now := s.now()
	reg := domain.BusinessRegistration{
		RegistrationID:     uuid.NewString(),
		MemberID:           memberID,
		BusinessNumber:     req.BusinessNumber,
		BusinessName:       req.BusinessName,
		RepresentativeName: req.RepresentativeName,
		AuditFields:        domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.repo.SaveBusinessRegistration(ctx, reg); err != nil {
		s.LogError(ctx, err, "Failed to save business registration", slog.String("member_id", memberID))
		return nil, err
	}

	s.LogInfo(ctx, "Business registered", slog.String("registration_id", reg.RegistrationID))
	return &reg, nil
}

func (s *storeService) RegisterPos(ctx context.Context, memberID, registrationID string, req dto.CreatePosRequest) (*domain.Pos, error) {
	now := s.now()
	pos := domain.Pos{
		PosID:          uuid.NewString(),
		RegistrationID: registrationID,
		Name:           req.Name,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		reg, err := s.repo.FindBusinessRegistrationByID(ctx, registrationID)
		if err != nil {
			return err
		}
		if reg.MemberID != memberID {
			s.LogWarn(ctx, "Registration belongs to another member",
				slog.String("member_id", memberID), slog.String("registration_id", registrationID))
			return apperrors.ErrForbidden
		}
		return s.repo.SavePos(ctx, pos)
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Pos registered", slog.String("pos_id", pos.PosID), slog.String("registration_id", registrationID))
	return &pos, nil
}

func (s *storeService) ListPos(ctx context.Context, memberID string) ([]domain.Pos, error) {
	list, err := s.repo.FindPosByMemberID(ctx, memberID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pos", slog.String("member_id", memberID))
		return nil, err
	}
	return list, nil
}

func (s *storeService) RecordSale(ctx context.Context, memberID, posID string, req dto.RecordSaleRequest) (*domain.PosSale, error) {
	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("total amount must not be negative: %w", apperrors.ErrValidation)
	}
	if !req.PaymentType.IsValid() {
		return nil, fmt.Errorf("payment type %q: %w", req.PaymentType, apperrors.ErrValidation)
	}

	if err := s.ownership.Authorize(ctx, memberID, posID); err != nil {
		return nil, err
	}

	now := s.now()
	saleDate := now
	if req.SaleDate != nil {
		saleDate = req.SaleDate.UTC()
	}
	// Month windows end at 23:59:59 inclusive.
	saleDate = saleDate.Truncate(time.Second)
	sale := domain.PosSale{
		SaleID:      uuid.NewString(),
		PosID:       posID,
		SaleDate:    saleDate,
		TotalAmount: req.TotalAmount.Round(2),
		PaymentType: req.PaymentType,
		CreatedAt:   now,
	}

	if err := s.repo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to record sale", slog.String("pos_id", posID))
		return nil, err
	}

	s.LogDebug(ctx, "Sale recorded", slog.String("sale_id", sale.SaleID), slog.String("pos_id", posID))
	return &sale, nil
}
