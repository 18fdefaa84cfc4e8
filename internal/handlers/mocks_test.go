package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.Member, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}
func (m *MockAuthService) Logout(ctx context.Context, req dto.LogoutRequest, accessToken string) error {
	args := m.Called(ctx, req, accessToken)
	return args.Error(0)
}
func (m *MockAuthService) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RefreshTokenResponse), args.Error(1)
}
func (m *MockAuthService) CheckAuth(ctx context.Context, req dto.CheckAuthRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}
func (m *MockAuthService) ResetPassword(ctx context.Context, req dto.PasswordResetRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockAuthService) DeactivateMember(ctx context.Context, req dto.MemberActivityRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockAuthService) ActivateMember(ctx context.Context, req dto.ActivateMemberRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockAuthService) IsLoginIDTaken(ctx context.Context, loginID string) (bool, error) {
	args := m.Called(ctx, loginID)
	return args.Bool(0), args.Error(1)
}
func (m *MockAuthService) IsPhoneNumberTaken(ctx context.Context, phoneNumber string) (bool, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Bool(0), args.Error(1)
}
func (m *MockAuthService) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock StoreService ---
type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) RegisterBusiness(ctx context.Context, memberID string, req dto.CreateBusinessRegistrationRequest) (*domain.BusinessRegistration, error) {
	args := m.Called(ctx, memberID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessRegistration), args.Error(1)
}
func (m *MockStoreService) RegisterPos(ctx context.Context, memberID, registrationID string, req dto.CreatePosRequest) (*domain.Pos, error) {
	args := m.Called(ctx, memberID, registrationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pos), args.Error(1)
}
func (m *MockStoreService) ListPos(ctx context.Context, memberID string) ([]domain.Pos, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pos), args.Error(1)
}
func (m *MockStoreService) RecordSale(ctx context.Context, memberID, posID string, req dto.RecordSaleRequest) (*domain.PosSale, error) {
	args := m.Called(ctx, memberID, posID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PosSale), args.Error(1)
}

var _ portssvc.StoreSvcFacade = (*MockStoreService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) MonthlyIncomeSummary(ctx context.Context, memberID, posID string, month domain.YearMonth) (*domain.MonthlyIncome, error) {
	args := m.Called(ctx, memberID, posID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyIncome), args.Error(1)
}
func (m *MockReportingService) DailyIncomeDetail(ctx context.Context, memberID, posID string, date time.Time) (*domain.DailyIncome, error) {
	args := m.Called(ctx, memberID, posID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyIncome), args.Error(1)
}
func (m *MockReportingService) IncomeHistory(ctx context.Context, memberID, posID string, month domain.YearMonth) (*domain.IncomeHistory, error) {
	args := m.Called(ctx, memberID, posID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeHistory), args.Error(1)
}

var _ portssvc.IncomeReportingSvc = (*MockReportingService)(nil)
