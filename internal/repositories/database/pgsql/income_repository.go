package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// incomeRepository implements the IncomeRepository interface
type incomeRepository struct {
	BaseRepository
}

func newIncomeRepository(pool PgxPool) portsrepo.IncomeRepository {
	return &incomeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

const (
	sumSalesSelect = `SELECT COALESCE(SUM(total_amount), 0) FROM pos_sales WHERE pos_id = $1`
	sumSalesWindow = ` AND sale_date BETWEEN $2 AND $3`
	sumSalesDay    = ` AND EXTRACT(YEAR FROM sale_date) = $2` +
		` AND EXTRACT(MONTH FROM sale_date) = $3` +
		` AND EXTRACT(DAY FROM sale_date) = $4`
)

// buildSumSalesQuery composes the statement from fixed fragments; only
// values travel as arguments.
func buildSumSalesQuery(q domain.SalesQuery) (string, []any) {
	var sb strings.Builder
	sb.WriteString(sumSalesSelect)
	args := []any{q.PosID}

	if q.Day != nil {
		d := *q.Day
		sb.WriteString(sumSalesDay)
		args = append(args, d.Year(), int(d.Month()), d.Day())
	} else {
		sb.WriteString(sumSalesWindow)
		args = append(args, q.Window.Start, q.Window.End)
	}

	if q.PaymentType != nil {
		args = append(args, string(*q.PaymentType))
		fmt.Fprintf(&sb, ` AND payment_type = $%d`, len(args))
	}
	return sb.String(), args
}

// SumSales returns the sum of total_amount for the rows selected by q
func (r *incomeRepository) SumSales(ctx context.Context, q domain.SalesQuery) (decimal.Decimal, error) {
	query, args := buildSumSalesQuery(q)

	var total decimal.Decimal
	if err := r.conn(ctx).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing sales for pos %s: %w", q.PosID, err)
	}
	return total, nil
}

// DailySales retrieves per-day totals for a window, ordered by day
func (r *incomeRepository) DailySales(ctx context.Context, posID string, window domain.Window) ([]domain.DailyIncome, error) {
	query := `
		SELECT
			DATE(sale_date) AS sale_day,
			COALESCE(SUM(total_amount), 0) AS total_income,
			COALESCE(SUM(CASE WHEN payment_type = 'CARD' THEN total_amount ELSE 0 END), 0) AS card_income,
			COALESCE(SUM(CASE WHEN payment_type = 'CASH' THEN total_amount ELSE 0 END), 0) AS cash_income
		FROM pos_sales
		WHERE pos_id = $1
			AND sale_date BETWEEN $2 AND $3
		GROUP BY DATE(sale_date)
		ORDER BY sale_day
	`

	rows, err := r.conn(ctx).Query(ctx, query, posID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("error querying daily sales: %w", err)
	}
	defer rows.Close()

	result := []domain.DailyIncome{}
	for rows.Next() {
		var day time.Time
		var row domain.DailyIncome
		if err := rows.Scan(&day, &row.TotalIncome, &row.CardIncome, &row.CashIncome); err != nil {
			return nil, fmt.Errorf("error scanning daily sales row: %w", err)
		}
		row.Date = domain.StartOfDay(day)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily sales rows: %w", err)
	}
	return result, nil
}
