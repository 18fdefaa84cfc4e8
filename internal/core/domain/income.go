package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	yearMonthLayout = "2006-01"
	dateLayout      = "2006-01-02"
)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses a YYYY-MM string.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(yearMonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// YearMonthOf returns the month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// AddMonths returns the month n months away; negative n moves backwards.
func (ym YearMonth) AddMonths(n int) YearMonth {
	// time.Date normalises month overflow, day 1 avoids end-of-month drift
	t := time.Date(ym.Year, ym.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return YearMonthOf(t)
}

// FirstDay returns midnight of the first day of the month.
func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight of the last day of the month.
func (ym YearMonth) LastDay() time.Time {
	return ym.FirstDay().AddDate(0, 1, -1)
}

// Window returns the closed interval from the first instant of the month
// up to 23:59:59 on its last day.
func (ym YearMonth) Window() Window {
	return Window{Start: ym.FirstDay(), End: EndOfDay(ym.LastDay())}
}

// ParseDate parses a YYYY-MM-DD string into midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// StartOfDay drops the time-of-day from t, keeping its calendar fields.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59 on the calendar day of t.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Window is a closed time interval, both endpoints inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether Start is not after End.
func (w Window) IsValid() bool {
	return !w.Start.After(w.End)
}

// SalesQuery selects the PosSales rows an aggregation runs over.
// Exactly one of Window or Day applies: when Day is set the rows are matched
// on year, month and day-of-month of sale_date and Window is ignored.
type SalesQuery struct {
	PosID       string
	Window      Window
	Day         *time.Time
	PaymentType *PaymentType
}

// WindowQuery builds a query over a closed time window.
func WindowQuery(posID string, w Window) SalesQuery {
	return SalesQuery{PosID: posID, Window: w}
}

// DayQuery builds a query matching a single calendar day.
func DayQuery(posID string, day time.Time) SalesQuery {
	d := StartOfDay(day)
	return SalesQuery{PosID: posID, Day: &d}
}

// OnlyPaidBy returns a copy of q restricted to one payment type.
func (q SalesQuery) OnlyPaidBy(pt PaymentType) SalesQuery {
	q.PaymentType = &pt
	return q
}

// IncomeBreakdown is a total split by payment method.
type IncomeBreakdown struct {
	TotalIncome decimal.Decimal `json:"totalIncome"`
	CardIncome  decimal.Decimal `json:"cardIncome"`
	CashIncome  decimal.Decimal `json:"cashIncome"`
}

// DailyIncome is the income of one calendar day.
type DailyIncome struct {
	Date time.Time `json:"date"`
	IncomeBreakdown
}

// MonthlyIncome summarises a month with its per-day breakdown.
type MonthlyIncome struct {
	PosID string    `json:"posID"`
	Month YearMonth `json:"month"`
	IncomeBreakdown
	DailyBreakdown []DailyIncome `json:"dailyBreakdown"`
}

// IncomeHistory compares a month's income against the two before it.
type IncomeHistory struct {
	PosID        string          `json:"posID"`
	Month        YearMonth       `json:"month"`
	Current      decimal.Decimal `json:"current"`
	OneMonthAgo  decimal.Decimal `json:"oneMonthAgo"`
	TwoMonthsAgo decimal.Decimal `json:"twoMonthsAgo"`
}
