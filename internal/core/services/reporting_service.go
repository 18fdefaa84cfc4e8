package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

const (
	reportMonthly = "monthly"
	reportDaily   = "daily"
	reportHistory = "history"
)

// reportingService implements the IncomeReportingSvc interface
type reportingService struct {
	BaseService
	tx         portsrepo.TransactionManager
	ownership  portssvc.OwnershipResolverSvc
	aggregator portssvc.IncomeAggregatorSvc
}

// NewReportingService creates the income reporting facade
func NewReportingService(
	tx portsrepo.TransactionManager,
	ownership portssvc.OwnershipResolverSvc,
	aggregator portssvc.IncomeAggregatorSvc,
) portssvc.IncomeReportingSvc {
	return &reportingService{
		tx:         tx,
		ownership:  ownership,
		aggregator: aggregator,
	}
}

var _ portssvc.IncomeReportingSvc = (*reportingService)(nil)

// authorizedPos resolves the member's Pos and re-checks ownership of the target.
// An empty requested posID targets the resolved one.
func (s *reportingService) authorizedPos(ctx context.Context, memberID, requested string) (string, error) {
	resolved, err := s.ownership.ResolvePos(ctx, memberID)
	if err != nil {
		return "", err
	}
	target := resolved
	if requested != "" {
		target = requested
	}
	if err := s.ownership.Authorize(ctx, memberID, target); err != nil {
		return "", err
	}
	return target, nil
}

// run executes fn in one read-only snapshot and records the report metric.
func (s *reportingService) run(ctx context.Context, report string, fn func(ctx context.Context) error) error {
	start := time.Now()
	err := s.tx.WithinReadOnlyTx(ctx, fn)
	metrics.RecordReport(report, err, time.Since(start))
	return err
}

func breakdown(ctx context.Context, agg portssvc.IncomeAggregatorSvc, q domain.SalesQuery) (domain.IncomeBreakdown, error) {
	var b domain.IncomeBreakdown
	var err error
	if b.TotalIncome, err = agg.SumIncome(ctx, q); err != nil {
		return b, err
	}
	if b.CardIncome, err = agg.SumIncome(ctx, q.OnlyPaidBy(domain.PaymentCard)); err != nil {
		return b, err
	}
	if b.CashIncome, err = agg.SumIncome(ctx, q.OnlyPaidBy(domain.PaymentCash)); err != nil {
		return b, err
	}
	return b, nil
}

// MonthlyIncomeSummary generates the month's totals and its per-day breakdown
func (s *reportingService) MonthlyIncomeSummary(ctx context.Context, memberID, posID string, month domain.YearMonth) (*domain.MonthlyIncome, error) {
	var result *domain.MonthlyIncome

	err := s.run(ctx, reportMonthly, func(ctx context.Context) error {
		target, err := s.authorizedPos(ctx, memberID, posID)
		if err != nil {
			return err
		}

		window := month.Window()
		totals, err := breakdown(ctx, s.aggregator, domain.WindowQuery(target, window))
		if err != nil {
			return err
		}

		days, err := s.aggregator.DailyIncome(ctx, target, window)
		if err != nil {
			return err
		}
		sort.SliceStable(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

		result = &domain.MonthlyIncome{
			PosID:           target,
			Month:           month,
			IncomeBreakdown: totals,
			DailyBreakdown:  days,
		}
		return nil
	})
	if err != nil {
		s.LogDebug(ctx, "Monthly income summary failed", slog.String("member_id", memberID), slog.String("month", month.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Monthly income summary generated",
		slog.String("pos_id", result.PosID),
		slog.String("month", month.String()),
		slog.Int("days", len(result.DailyBreakdown)))
	return result, nil
}

// DailyIncomeDetail generates totals for one calendar day
func (s *reportingService) DailyIncomeDetail(ctx context.Context, memberID, posID string, date time.Time) (*domain.DailyIncome, error) {
	var result *domain.DailyIncome
	day := domain.StartOfDay(date)

	err := s.run(ctx, reportDaily, func(ctx context.Context) error {
		target, err := s.authorizedPos(ctx, memberID, posID)
		if err != nil {
			return err
		}

		totals, err := breakdown(ctx, s.aggregator, domain.DayQuery(target, day))
		if err != nil {
			return err
		}
		result = &domain.DailyIncome{Date: day, IncomeBreakdown: totals}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// IncomeHistory generates the month's total alongside the two months before it
func (s *reportingService) IncomeHistory(ctx context.Context, memberID, posID string, month domain.YearMonth) (*domain.IncomeHistory, error) {
	var result *domain.IncomeHistory

	err := s.run(ctx, reportHistory, func(ctx context.Context) error {
		target, err := s.authorizedPos(ctx, memberID, posID)
		if err != nil {
			return err
		}

		totals := make([]decimal.Decimal, 3)
		for i := range totals {
			q := domain.WindowQuery(target, month.AddMonths(-i).Window())
			if totals[i], err = s.aggregator.SumIncome(ctx, q); err != nil {
				return err
			}
		}

		result = &domain.IncomeHistory{
			PosID:        target,
			Month:        month,
			Current:      totals[0],
			OneMonthAgo:  totals[1],
			TwoMonthsAgo: totals[2],
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
