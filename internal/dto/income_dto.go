package dto

import (
	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DailyIncomeResponse represents the income of a single day
type DailyIncomeResponse struct {
	Date        string          `json:"date"`
	TotalIncome decimal.Decimal `json:"totalIncome"`
	CardIncome  decimal.Decimal `json:"cardIncome"`
	CashIncome  decimal.Decimal `json:"cashIncome"`
}

// MonthlyIncomeResponse represents the monthly income summary response
type MonthlyIncomeResponse struct {
	PosID          string                `json:"posID"`
	Month          string                `json:"month"`
	TotalIncome    decimal.Decimal       `json:"totalIncome"`
	CardIncome     decimal.Decimal       `json:"cardIncome"`
	CashIncome     decimal.Decimal       `json:"cashIncome"`
	DailyBreakdown []DailyIncomeResponse `json:"dailyBreakdown"`
}

// IncomeHistoryResponse represents the three-month income history response
type IncomeHistoryResponse struct {
	PosID        string          `json:"posID"`
	Month        string          `json:"month"`
	Current      decimal.Decimal `json:"current"`
	OneMonthAgo  decimal.Decimal `json:"oneMonthAgo"`
	TwoMonthsAgo decimal.Decimal `json:"twoMonthsAgo"`
}

// ToDailyIncomeResponse converts a domain daily income to a DTO response
func ToDailyIncomeResponse(d domain.DailyIncome) DailyIncomeResponse {
	return DailyIncomeResponse{
		Date:        domain.FormatDate(d.Date),
		TotalIncome: d.TotalIncome,
		CardIncome:  d.CardIncome,
		CashIncome:  d.CashIncome,
	}
}

// ToMonthlyIncomeResponse converts a domain monthly summary to a DTO response
func ToMonthlyIncomeResponse(m *domain.MonthlyIncome) MonthlyIncomeResponse {
	response := MonthlyIncomeResponse{
		PosID:          m.PosID,
		Month:          m.Month.String(),
		TotalIncome:    m.TotalIncome,
		CardIncome:     m.CardIncome,
		CashIncome:     m.CashIncome,
		DailyBreakdown: make([]DailyIncomeResponse, len(m.DailyBreakdown)),
	}
	for i, d := range m.DailyBreakdown {
		response.DailyBreakdown[i] = ToDailyIncomeResponse(d)
	}
	return response
}

// ToIncomeHistoryResponse converts a domain income history to a DTO response
func ToIncomeHistoryResponse(h *domain.IncomeHistory) IncomeHistoryResponse {
	return IncomeHistoryResponse{
		PosID:        h.PosID,
		Month:        h.Month.String(),
		Current:      h.Current,
		OneMonthAgo:  h.OneMonthAgo,
		TwoMonthsAgo: h.TwoMonthsAgo,
	}
}
