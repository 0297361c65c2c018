package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

const maxTrendMonths = 120

// CategoryTotal is the expense total of one category, with its display fields.
type CategoryTotal struct {
	CategoryID int64
	Name       string
	Color      string
	Icon       string
	Total      decimal.Decimal
}

// MonthTotal is the expense total of one calendar month.
type MonthTotal struct {
	Start ledger.Date
	End   ledger.Date
	Total decimal.Decimal
}

// MonthOverview summarizes one calendar month.
type MonthOverview struct {
	Start      ledger.Date
	End        ledger.Date
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Net        decimal.Decimal
	Categories []CategoryTotal
}

// StatsService computes aggregates straight from storage. Dates are inclusive.
type StatsService struct {
	store Store
}

func NewStatsService(store Store) *StatsService {
	return &StatsService{store: store}
}

// TotalByTypeAndRange sums the amounts of one type between start and end.
// An empty range sums to zero.
func (s *StatsService) TotalByTypeAndRange(ctx context.Context, txType ledger.TransactionType, start, end ledger.Date, accountID *int64) (decimal.Decimal, error) {
	if !txType.Valid() {
		return decimal.Zero, ledger.NewValidationError("type", "unknown transaction type "+string(txType))
	}
	if err := requireRange(start, end); err != nil {
		return decimal.Zero, err
	}
	r, err := s.store.Read()
	if err != nil {
		return decimal.Zero, err
	}
	return r.Transactions.Sum(ctx, &transaction.AggregateFilter{Start: start, End: end, Type: &txType, AccountID: accountID})
}

// CategoryTotals sums expenses per category, largest first. Income never counts.
func (s *StatsService) CategoryTotals(ctx context.Context, start, end ledger.Date, accountID *int64) ([]CategoryTotal, error) {
	if err := requireRange(start, end); err != nil {
		return nil, err
	}
	r, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	expense := ledger.TypeExpense
	totals, err := r.Transactions.SumByCategory(ctx, &transaction.AggregateFilter{Start: start, End: end, Type: &expense, AccountID: accountID})
	if err != nil {
		return nil, err
	}
	if len(totals) == 0 {
		return nil, nil
	}

	categories, err := r.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]int, len(categories))
	for i, c := range categories {
		byID[c.ID] = i
	}

	result := make([]CategoryTotal, len(totals))
	for i, total := range totals {
		result[i] = CategoryTotal{CategoryID: total.CategoryID, Name: unknownName, Total: total.Total}
		if idx, ok := byID[total.CategoryID]; ok {
			c := categories[idx]
			result[i].Name = c.Name
			result[i].Color = c.Color
			result[i].Icon = c.Icon
		}
	}
	return result, nil
}

// DailyTotals sums expenses per day, oldest first. Days without expenses are omitted.
func (s *StatsService) DailyTotals(ctx context.Context, start, end ledger.Date, accountID *int64) ([]transaction.DayTotal, error) {
	if err := requireRange(start, end); err != nil {
		return nil, err
	}
	r, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	expense := ledger.TypeExpense
	return r.Transactions.SumByDay(ctx, &transaction.AggregateFilter{Start: start, End: end, Type: &expense, AccountID: accountID})
}

// MonthlyTrend returns the expense total of each of the last months calendar
// months up to and including the month of now, oldest first.
func (s *StatsService) MonthlyTrend(ctx context.Context, now time.Time, months int, accountID *int64) ([]MonthTotal, error) {
	if months < 1 || months > maxTrendMonths {
		return nil, ledger.NewValidationError("months", "must be between 1 and 120")
	}
	r, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	current := ledger.DateOf(now).StartOfMonth()
	expense := ledger.TypeExpense
	trend := make([]MonthTotal, months)
	for i := range trend {
		start := ledger.Date{Time: current.AddDate(0, i-months+1, 0)}
		end := start.EndOfMonth()
		total, err := r.Transactions.Sum(ctx, &transaction.AggregateFilter{Start: start, End: end, Type: &expense, AccountID: accountID})
		if err != nil {
			return nil, err
		}
		trend[i] = MonthTotal{Start: start, End: end, Total: total}
	}
	return trend, nil
}

// MonthOverview returns income, expense, net and expense category totals
// for one calendar month.
func (s *StatsService) MonthOverview(ctx context.Context, year int, month time.Month, accountID *int64) (*MonthOverview, error) {
	if month < time.January || month > time.December {
		return nil, ledger.NewValidationError("month", "must be between 1 and 12")
	}
	start := ledger.NewDate(year, month, 1)
	end := start.EndOfMonth()

	income, err := s.TotalByTypeAndRange(ctx, ledger.TypeIncome, start, end, accountID)
	if err != nil {
		return nil, err
	}
	expense, err := s.TotalByTypeAndRange(ctx, ledger.TypeExpense, start, end, accountID)
	if err != nil {
		return nil, err
	}
	categories, err := s.CategoryTotals(ctx, start, end, accountID)
	if err != nil {
		return nil, err
	}

	return &MonthOverview{
		Start:      start,
		End:        end,
		Income:     income,
		Expense:    expense,
		Net:        income.Sub(expense),
		Categories: categories,
	}, nil
}
