package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PosRepository ---
type MockPosRepository struct {
	mock.Mock
}

func (m *MockPosRepository) FindPosIDByMemberID(ctx context.Context, memberID string) (string, error) {
	args := m.Called(ctx, memberID)
	return args.String(0), args.Error(1)
}

func (m *MockPosRepository) IsPosOwnedByMember(ctx context.Context, memberID, posID string) (bool, error) {
	args := m.Called(ctx, memberID, posID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPosRepository) FindBusinessRegistrationByID(ctx context.Context, registrationID string) (*domain.BusinessRegistration, error) {
	args := m.Called(ctx, registrationID)
	var reg *domain.BusinessRegistration
	if args.Get(0) != nil {
		reg = args.Get(0).(*domain.BusinessRegistration)
	}
	return reg, args.Error(1)
}

func (m *MockPosRepository) FindPosByMemberID(ctx context.Context, memberID string) ([]domain.Pos, error) {
	args := m.Called(ctx, memberID)
	var list []domain.Pos
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Pos)
	}
	return list, args.Error(1)
}

func (m *MockPosRepository) SaveBusinessRegistration(ctx context.Context, reg domain.BusinessRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *MockPosRepository) SavePos(ctx context.Context, pos domain.Pos) error {
	args := m.Called(ctx, pos)
	return args.Error(0)
}

func (m *MockPosRepository) SaveSale(ctx context.Context, sale domain.PosSale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

// --- Mock MemberRepository ---
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindMemberByLoginID(ctx context.Context, loginID string) (*domain.Member, error) {
	args := m.Called(ctx, loginID)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepository) FindMemberByLoginIDAndEmail(ctx context.Context, loginID, email string) (*domain.Member, error) {
	args := m.Called(ctx, loginID, email)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepository) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	args := m.Called(ctx, loginID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdatePassword(ctx context.Context, memberID, passwordHash string, updatedAt time.Time) error {
	args := m.Called(ctx, memberID, passwordHash, updatedAt)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateStatus(ctx context.Context, memberID string, status domain.MemberStatus, updatedAt time.Time) error {
	args := m.Called(ctx, memberID, status, updatedAt)
	return args.Error(0)
}

// --- Mock RefreshTokenStore ---
type MockRefreshTokenStore struct {
	mock.Mock
}

func (m *MockRefreshTokenStore) SaveRefreshToken(ctx context.Context, loginID, token string, ttl time.Duration) error {
	args := m.Called(ctx, loginID, token, ttl)
	return args.Error(0)
}

func (m *MockRefreshTokenStore) GetRefreshToken(ctx context.Context, loginID string) (string, error) {
	args := m.Called(ctx, loginID)
	return args.String(0), args.Error(1)
}

func (m *MockRefreshTokenStore) DeleteRefreshToken(ctx context.Context, loginID string) error {
	args := m.Called(ctx, loginID)
	return args.Error(0)
}

// passThroughTx runs fn directly and counts how often a read-only snapshot was requested.
type passThroughTx struct {
	readOnlyCalls int
	readWrite     int
}

func (t *passThroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.readWrite++
	return fn(ctx)
}

func (t *passThroughTx) WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.readOnlyCalls++
	return fn(ctx)
}

// fakeIncomeRepository evaluates SalesQuery filters over an in-memory sales table.
type fakeIncomeRepository struct {
	sales   []domain.PosSale
	queries []domain.SalesQuery
	err     error
}

func (f *fakeIncomeRepository) matches(q domain.SalesQuery, s domain.PosSale) bool {
	if s.PosID != q.PosID {
		return false
	}
	if q.PaymentType != nil && s.PaymentType != *q.PaymentType {
		return false
	}
	if q.Day != nil {
		y, mo, d := s.SaleDate.Date()
		return y == q.Day.Year() && mo == q.Day.Month() && d == q.Day.Day()
	}
	return !s.SaleDate.Before(q.Window.Start) && !s.SaleDate.After(q.Window.End)
}

func (f *fakeIncomeRepository) SumSales(ctx context.Context, q domain.SalesQuery) (decimal.Decimal, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return decimal.Zero, f.err
	}
	total := decimal.Zero
	for _, s := range f.sales {
		if f.matches(q, s) {
			total = total.Add(s.TotalAmount)
		}
	}
	return total, nil
}

// DailySales returns days in reverse insertion order so that callers must sort.
func (f *fakeIncomeRepository) DailySales(ctx context.Context, posID string, window domain.Window) ([]domain.DailyIncome, error) {
	if f.err != nil {
		return nil, f.err
	}
	byDay := map[time.Time]*domain.DailyIncome{}
	var order []time.Time
	for _, s := range f.sales {
		if !f.matches(domain.WindowQuery(posID, window), s) {
			continue
		}
		day := domain.StartOfDay(s.SaleDate)
		d, ok := byDay[day]
		if !ok {
			d = &domain.DailyIncome{Date: day}
			byDay[day] = d
			order = append(order, day)
		}
		d.TotalIncome = d.TotalIncome.Add(s.TotalAmount)
		switch s.PaymentType {
		case domain.PaymentCard:
			d.CardIncome = d.CardIncome.Add(s.TotalAmount)
		case domain.PaymentCash:
			d.CashIncome = d.CashIncome.Add(s.TotalAmount)
		}
	}
	out := make([]domain.DailyIncome, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		out = append(out, *byDay[order[i]])
	}
	return out, nil
}

// fakeCipher marks values instead of encrypting them.
type fakeCipher struct{ err error }

func (c fakeCipher) Encrypt(plaintext string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return "enc:" + plaintext, nil
}
