package handlers_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (s *handlerSuite) TestMonthlySummary() {
	march := domain.YearMonth{Year: 2024, Month: time.March}
	s.mockReporting.On("MonthlyIncomeSummary", mock.Anything, testMemberID, "", march).Return(&domain.MonthlyIncome{
		PosID:           testPosID,
		Month:           march,
		IncomeBreakdown: domain.IncomeBreakdown{TotalIncome: dec("3500"), CardIncome: dec("2000"), CashIncome: dec("1500")},
		DailyBreakdown: []domain.DailyIncome{
			{
				Date:            time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
				IncomeBreakdown: domain.IncomeBreakdown{TotalIncome: dec("1500"), CardIncome: dec("1000"), CashIncome: dec("500")},
			},
			{
				Date:            time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC),
				IncomeBreakdown: domain.IncomeBreakdown{TotalIncome: dec("2000"), CardIncome: dec("1000"), CashIncome: dec("1000")},
			},
		},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/income/monthly?month=2024-03", nil, true)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.MonthlyIncomeResponse
	s.decode(w, &resp)
	s.Equal("2024-03", resp.Month)
	s.True(resp.TotalIncome.Equal(dec("3500")))
	s.True(resp.CardIncome.Equal(dec("2000")))
	s.True(resp.CashIncome.Equal(dec("1500")))
	s.Require().Len(resp.DailyBreakdown, 2)
	s.Equal("2024-03-05", resp.DailyBreakdown[0].Date)
	s.Equal("2024-03-17", resp.DailyBreakdown[1].Date)
	s.mockReporting.AssertExpectations(s.T())
}

func (s *handlerSuite) TestMonthlySummary_ExplicitPos() {
	march := domain.YearMonth{Year: 2024, Month: time.March}
	s.mockReporting.On("MonthlyIncomeSummary", mock.Anything, testMemberID, "pos-other", march).Return(nil, apperrors.ErrForbidden).Once()

	w := s.do(http.MethodGet, "/api/v1/income/monthly?month=2024-03&posID=pos-other", nil, true)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *handlerSuite) TestMonthlySummary_NoRegister() {
	feb := domain.YearMonth{Year: 2024, Month: time.February}
	s.mockReporting.On("MonthlyIncomeSummary", mock.Anything, testMemberID, "", feb).Return(nil, apperrors.ErrNoRegisterFound).Once()

	w := s.do(http.MethodGet, "/api/v1/income/monthly?month=2024-02", nil, true)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(apperrors.ErrNoRegisterFound.Error(), s.errorMessage(w))
}

func (s *handlerSuite) TestIncomeRoutes_BadInput() {
	tests := []struct {
		name string
		url  string
	}{
		{"missing month", "/api/v1/income/monthly"},
		{"month out of range", "/api/v1/income/monthly?month=2024-13"},
		{"bad date", "/api/v1/income/daily?date=2024-02-30"},
		{"history with date", "/api/v1/income/history?month=2024-03-01"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodGet, tt.url, nil, true)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
	s.mockReporting.AssertNotCalled(s.T(), "MonthlyIncomeSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mockReporting.AssertNotCalled(s.T(), "DailyIncomeDetail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestIncomeRoutes_BadInputIsLogged() {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(prev)
	router, err := newTestRouter(s.cfg, &portssvc.ServiceContainer{
		Auth:      s.mockAuth,
		Store:     s.mockStore,
		Reporting: s.mockReporting,
	})
	s.Require().NoError(err)
	s.router = router

	for _, url := range []string{
		"/api/v1/income/monthly?month=bad",
		"/api/v1/income/daily?date=bad",
		"/api/v1/income/history?month=bad",
	} {
		buf.Reset()
		w := s.do(http.MethodGet, url, nil, true)
		s.Equal(http.StatusBadRequest, w.Code, url)
		s.Contains(buf.String(), `"level":"WARN"`, url)
		s.Contains(buf.String(), `"msg":"Invalid `, url)
	}
	s.mockReporting.AssertNotCalled(s.T(), "IncomeHistory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestDailyDetail() {
	day := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	s.mockReporting.On("DailyIncomeDetail", mock.Anything, testMemberID, "", day).Return(&domain.DailyIncome{
		Date:            day,
		IncomeBreakdown: domain.IncomeBreakdown{TotalIncome: decimal.Zero, CardIncome: decimal.Zero, CashIncome: decimal.Zero},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/income/daily?date=2024-02-10", nil, true)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.DailyIncomeResponse
	s.decode(w, &resp)
	s.Equal("2024-02-10", resp.Date)
	s.True(resp.TotalIncome.IsZero())
}

func (s *handlerSuite) TestHistory() {
	march := domain.YearMonth{Year: 2024, Month: time.March}
	s.mockReporting.On("IncomeHistory", mock.Anything, testMemberID, "", march).Return(&domain.IncomeHistory{
		PosID:        testPosID,
		Month:        march,
		Current:      dec("3500"),
		OneMonthAgo:  decimal.Zero,
		TwoMonthsAgo: dec("1200"),
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/income/history?month=2024-03", nil, true)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.IncomeHistoryResponse
	s.decode(w, &resp)
	s.True(resp.Current.Equal(dec("3500")))
	s.True(resp.OneMonthAgo.IsZero())
	s.True(resp.TwoMonthsAgo.Equal(dec("1200")))
}

func (s *handlerSuite) TestIncomeRoutes_ExpiredToken() {
	token, _, err := utils.GenerateJWT(testMemberID, testLoginID, testJWTSecret, -time.Minute, "pos-test")
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/income/monthly?month=2024-03", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Token has expired", s.errorMessage(w))
}
