package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type incomeAggregator struct {
	BaseService
	repo portsrepo.IncomeRepository
}

// NewIncomeAggregator creates the aggregator over recorded sales.
func NewIncomeAggregator(repo portsrepo.IncomeRepository) portssvc.IncomeAggregatorSvc {
	return &incomeAggregator{repo: repo}
}

var _ portssvc.IncomeAggregatorSvc = (*incomeAggregator)(nil)

func (a *incomeAggregator) SumIncome(ctx context.Context, q domain.SalesQuery) (decimal.Decimal, error) {
	if q.Day == nil && !q.Window.IsValid() {
		return decimal.Zero, apperrors.ErrBadRange
	}
	if q.PaymentType != nil && !q.PaymentType.IsValid() {
		return decimal.Zero, fmt.Errorf("payment type %q: %w", *q.PaymentType, apperrors.ErrValidation)
	}

	total, err := a.repo.SumSales(ctx, q)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum income: %w", err)
	}
	return total, nil
}

func (a *incomeAggregator) DailyIncome(ctx context.Context, posID string, window domain.Window) ([]domain.DailyIncome, error) {
	if !window.IsValid() {
		return nil, apperrors.ErrBadRange
	}

	days, err := a.repo.DailySales(ctx, posID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to compute daily income: %w", err)
	}
	if days == nil {
		days = []domain.DailyIncome{}
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}
