package repositories

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IncomeRepository defines aggregate queries over pos_sales
type IncomeRepository interface {
	// SumSales returns the sum of total_amount over rows matching q; zero when nothing matches.
	SumSales(ctx context.Context, q domain.SalesQuery) (decimal.Decimal, error)

	// DailySales groups rows of the window by calendar day with total, card and cash sums.
	// Days without sales are absent.
	DailySales(ctx context.Context, posID string, window domain.Window) ([]domain.DailyIncome, error)
}
