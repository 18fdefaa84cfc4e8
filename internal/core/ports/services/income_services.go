package services

import (
	"context"
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OwnershipResolverSvc maps a member to the point-of-sale it owns.
type OwnershipResolverSvc interface {
	// ResolvePos returns the Pos owned by the member.
	// Returns apperrors.ErrNoRegisterFound when the member has none.
	ResolvePos(ctx context.Context, memberID string) (string, error)

	// Authorize re-checks that posID belongs to the member.
	// Returns apperrors.ErrForbidden when it does not.
	Authorize(ctx context.Context, memberID, posID string) error
}

// IncomeAggregatorSvc computes exact decimal sums over recorded sales.
type IncomeAggregatorSvc interface {
	// SumIncome sums total_amount over the rows selected by q.
	// Returns apperrors.ErrBadRange when a window query has Start after End.
	SumIncome(ctx context.Context, q domain.SalesQuery) (decimal.Decimal, error)

	// DailyIncome returns per-day totals inside the window, ascending by date.
	DailyIncome(ctx context.Context, posID string, window domain.Window) ([]domain.DailyIncome, error)
}

// IncomeReportingSvc is the reporting facade used by the income handlers.
// An empty posID selects the member's own Pos as resolved by OwnershipResolverSvc.
type IncomeReportingSvc interface {
	// MonthlyIncomeSummary returns total, card and cash income for the month plus a daily breakdown.
	MonthlyIncomeSummary(ctx context.Context, memberID, posID string, month domain.YearMonth) (*domain.MonthlyIncome, error)

	// DailyIncomeDetail returns total, card and cash income for one calendar day.
	DailyIncomeDetail(ctx context.Context, memberID, posID string, date time.Time) (*domain.DailyIncome, error)

	// IncomeHistory returns the month's total income with the two preceding months.
	IncomeHistory(ctx context.Context, memberID, posID string, month domain.YearMonth) (*domain.IncomeHistory, error)
}
