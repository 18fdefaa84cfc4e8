package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testMemberID = "member-a"
	testPosID    = "pos-a"
	otherPosID   = "pos-b"
)

func sale(posID string, y int, m time.Month, d int, amount int64, pt domain.PaymentType) domain.PosSale {
	return domain.PosSale{
		PosID:       posID,
		SaleDate:    time.Date(y, m, d, 12, 0, 0, 0, time.UTC),
		TotalAmount: decimal.NewFromInt(amount),
		PaymentType: pt,
	}
}

type ReportingServiceTestSuite struct {
	suite.Suite
	posRepo    *MockPosRepository
	incomeRepo *fakeIncomeRepository
	tx         *passThroughTx
	service    portssvc.IncomeReportingSvc
	ctx        context.Context
	march      domain.YearMonth
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.posRepo = new(MockPosRepository)
	s.incomeRepo = &fakeIncomeRepository{sales: []domain.PosSale{
		sale(testPosID, 2024, time.January, 20, 1200, domain.PaymentCash),
		sale(testPosID, 2024, time.March, 1, 1000, domain.PaymentCard),
		sale(testPosID, 2024, time.March, 1, 500, domain.PaymentCash),
		sale(testPosID, 2024, time.March, 15, 2000, domain.PaymentCard),
		sale(otherPosID, 2024, time.March, 2, 9999, domain.PaymentCard),
	}}
	s.tx = &passThroughTx{}
	ownership := services.NewOwnershipService(s.posRepo)
	aggregator := services.NewIncomeAggregator(s.incomeRepo)
	s.service = services.NewReportingService(s.tx, ownership, aggregator)
	s.ctx = context.Background()
	s.march = domain.YearMonth{Year: 2024, Month: time.March}
}

func (s *ReportingServiceTestSuite) ownsDefaultPos() {
	s.posRepo.On("FindPosIDByMemberID", s.ctx, testMemberID).Return(testPosID, nil).Once()
	s.posRepo.On("IsPosOwnedByMember", s.ctx, testMemberID, testPosID).Return(true, nil).Once()
}

func (s *ReportingServiceTestSuite) assertDecimal(expected int64, actual decimal.Decimal) {
	s.Truef(decimal.NewFromInt(expected).Equal(actual), "expected %d, got %s", expected, actual.String())
}

func (s *ReportingServiceTestSuite) TestMonthlyIncomeSummary_March() {
	s.ownsDefaultPos()

	summary, err := s.service.MonthlyIncomeSummary(s.ctx, testMemberID, "", s.march)
	s.Require().NoError(err)

	s.Equal(testPosID, summary.PosID)
	s.assertDecimal(3500, summary.TotalIncome)
	s.assertDecimal(3000, summary.CardIncome)
	s.assertDecimal(500, summary.CashIncome)
	s.True(summary.CardIncome.Add(summary.CashIncome).Equal(summary.TotalIncome))

	s.Require().Len(summary.DailyBreakdown, 2)
	d1, d15 := summary.DailyBreakdown[0], summary.DailyBreakdown[1]
	s.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), d1.Date)
	s.assertDecimal(1500, d1.TotalIncome)
	s.assertDecimal(1000, d1.CardIncome)
	s.assertDecimal(500, d1.CashIncome)
	s.Equal(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), d15.Date)
	s.assertDecimal(2000, d15.TotalIncome)
	s.assertDecimal(2000, d15.CardIncome)
	s.assertDecimal(0, d15.CashIncome)

	sum := decimal.Zero
	for _, d := range summary.DailyBreakdown {
		sum = sum.Add(d.TotalIncome)
	}
	s.True(sum.Equal(summary.TotalIncome), "daily totals add up to the monthly total")
	s.Equal(1, s.tx.readOnlyCalls)
	s.posRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestMonthlyIncomeSummary_EmptyMonth() {
	s.ownsDefaultPos()

	summary, err := s.service.MonthlyIncomeSummary(s.ctx, testMemberID, "", domain.YearMonth{Year: 2024, Month: time.February})
	s.Require().NoError(err)
	s.assertDecimal(0, summary.TotalIncome)
	s.assertDecimal(0, summary.CardIncome)
	s.assertDecimal(0, summary.CashIncome)
	s.NotNil(summary.DailyBreakdown)
	s.Empty(summary.DailyBreakdown)
}

func (s *ReportingServiceTestSuite) TestDailyIncomeDetail_NoSales() {
	s.ownsDefaultPos()

	detail, err := s.service.DailyIncomeDetail(s.ctx, testMemberID, "", time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.Equal(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), detail.Date)
	s.assertDecimal(0, detail.TotalIncome)
	s.assertDecimal(0, detail.CardIncome)
	s.assertDecimal(0, detail.CashIncome)
}

func (s *ReportingServiceTestSuite) TestDailyIncomeDetail_MatchesCalendarDay() {
	s.ownsDefaultPos()

	// time of day on the argument is ignored
	detail, err := s.service.DailyIncomeDetail(s.ctx, testMemberID, "", time.Date(2024, time.March, 1, 23, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.assertDecimal(1500, detail.TotalIncome)
	s.assertDecimal(1000, detail.CardIncome)
	s.assertDecimal(500, detail.CashIncome)

	for _, q := range s.incomeRepo.queries {
		s.Require().NotNil(q.Day, "daily detail matches on calendar fields")
		s.Equal(testPosID, q.PosID)
	}
}

func (s *ReportingServiceTestSuite) TestIncomeHistory() {
	s.ownsDefaultPos()

	history, err := s.service.IncomeHistory(s.ctx, testMemberID, "", s.march)
	s.Require().NoError(err)
	s.assertDecimal(3500, history.Current)
	s.assertDecimal(0, history.OneMonthAgo)
	s.assertDecimal(1200, history.TwoMonthsAgo)
	s.Len(s.incomeRepo.queries, 3)
}

func (s *ReportingServiceTestSuite) TestNoRegisterFound() {
	s.posRepo.On("FindPosIDByMemberID", s.ctx, "member-without-pos").Return("", apperrors.ErrNotFound).Times(3)

	_, err := s.service.MonthlyIncomeSummary(s.ctx, "member-without-pos", "", s.march)
	s.ErrorIs(err, apperrors.ErrNoRegisterFound)
	_, err = s.service.DailyIncomeDetail(s.ctx, "member-without-pos", "", time.Now())
	s.ErrorIs(err, apperrors.ErrNoRegisterFound)
	_, err = s.service.IncomeHistory(s.ctx, "member-without-pos", "", s.march)
	s.ErrorIs(err, apperrors.ErrNoRegisterFound)

	s.Empty(s.incomeRepo.queries, "no aggregation runs without a register")
	s.posRepo.AssertNotCalled(s.T(), "IsPosOwnedByMember", mock.Anything, mock.Anything, mock.Anything)
	s.posRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestForbiddenForForeignPos() {
	s.posRepo.On("FindPosIDByMemberID", s.ctx, testMemberID).Return(testPosID, nil).Times(3)
	s.posRepo.On("IsPosOwnedByMember", s.ctx, testMemberID, otherPosID).Return(false, nil).Times(3)

	_, err := s.service.MonthlyIncomeSummary(s.ctx, testMemberID, otherPosID, s.march)
	s.ErrorIs(err, apperrors.ErrForbidden)
	_, err = s.service.DailyIncomeDetail(s.ctx, testMemberID, otherPosID, time.Now())
	s.ErrorIs(err, apperrors.ErrForbidden)
	_, err = s.service.IncomeHistory(s.ctx, testMemberID, otherPosID, s.march)
	s.ErrorIs(err, apperrors.ErrForbidden)

	s.Empty(s.incomeRepo.queries)
	s.posRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestAuthorizeRunsEvenForResolvedPos() {
	// ownership changed between resolve and the re-check
	s.posRepo.On("FindPosIDByMemberID", s.ctx, testMemberID).Return(testPosID, nil).Once()
	s.posRepo.On("IsPosOwnedByMember", s.ctx, testMemberID, testPosID).Return(false, nil).Once()

	_, err := s.service.IncomeHistory(s.ctx, testMemberID, "", s.march)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.posRepo.AssertExpectations(s.T())
}

func (s *ReportingServiceTestSuite) TestRepositoryErrorPropagates() {
	s.ownsDefaultPos()
	s.incomeRepo.err = errors.New("connection reset")

	_, err := s.service.MonthlyIncomeSummary(s.ctx, testMemberID, "", s.march)
	s.Error(err)
	s.NotErrorIs(err, apperrors.ErrForbidden)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
