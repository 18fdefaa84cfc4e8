package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (s *handlerSuite) TestCreateBusinessRegistration() {
	req := dto.CreateBusinessRegistrationRequest{
		BusinessNumber:     "1234567890",
		BusinessName:       "Corner Cafe",
		RepresentativeName: "Kim Merchant",
	}
	s.mockStore.On("RegisterBusiness", mock.Anything, testMemberID, req).Return(&domain.BusinessRegistration{
		RegistrationID:     "reg-1",
		MemberID:           testMemberID,
		BusinessNumber:     req.BusinessNumber,
		BusinessName:       req.BusinessName,
		RepresentativeName: req.RepresentativeName,
	}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/business-registrations", req, true)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.BusinessRegistrationResponse
	s.decode(w, &resp)
	s.Equal("reg-1", resp.RegistrationID)
	s.mockStore.AssertExpectations(s.T())
}

func (s *handlerSuite) TestCreateBusinessRegistration_BadBusinessNumber() {
	req := dto.CreateBusinessRegistrationRequest{
		BusinessNumber:     "12-34",
		BusinessName:       "Corner Cafe",
		RepresentativeName: "Kim Merchant",
	}

	w := s.do(http.MethodPost, "/api/v1/business-registrations", req, true)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockStore.AssertNotCalled(s.T(), "RegisterBusiness", mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestCreatePos_ForeignRegistration() {
	req := dto.CreatePosRequest{Name: "Front counter"}
	s.mockStore.On("RegisterPos", mock.Anything, testMemberID, "reg-other", req).Return(nil, apperrors.ErrForbidden).Once()

	w := s.do(http.MethodPost, "/api/v1/business-registrations/reg-other/pos", req, true)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *handlerSuite) TestListPos() {
	s.mockStore.On("ListPos", mock.Anything, testMemberID).Return([]domain.Pos{
		{PosID: testPosID, RegistrationID: "reg-1", Name: "Front counter"},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/pos", nil, true)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListPosResponse
	s.decode(w, &resp)
	s.Require().Len(resp.Pos, 1)
	s.Equal(testPosID, resp.Pos[0].PosID)
}

func (s *handlerSuite) TestRecordSale() {
	saleDate := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)
	s.mockStore.On("RecordSale", mock.Anything, testMemberID, testPosID, mock.MatchedBy(func(r dto.RecordSaleRequest) bool {
		return r.TotalAmount.Equal(decimal.RequireFromString("12.50")) && r.PaymentType == domain.PaymentCash
	})).Return(&domain.PosSale{
		SaleID:      "sale-1",
		PosID:       testPosID,
		SaleDate:    saleDate,
		TotalAmount: decimal.RequireFromString("12.50"),
		PaymentType: domain.PaymentCash,
	}, nil).Once()

	body := map[string]any{"totalAmount": "12.50", "paymentType": "CASH"}
	w := s.do(http.MethodPost, "/api/v1/pos/"+testPosID+"/sales", body, true)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.SaleResponse
	s.decode(w, &resp)
	s.Equal("sale-1", resp.SaleID)
	s.True(resp.TotalAmount.Equal(decimal.RequireFromString("12.5")))
	s.mockStore.AssertExpectations(s.T())
}

func (s *handlerSuite) TestRecordSale_InvalidPaymentType() {
	body := map[string]any{"totalAmount": "12.50", "paymentType": "CHEQUE"}

	w := s.do(http.MethodPost, "/api/v1/pos/"+testPosID+"/sales", body, true)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockStore.AssertNotCalled(s.T(), "RecordSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestStoreRoutes_RequireAuth() {
	w := s.do(http.MethodGet, "/api/v1/pos", nil, false)
	s.Equal(http.StatusUnauthorized, w.Code)
}
