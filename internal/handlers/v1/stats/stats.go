package stats

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/service"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

// statsService is the subset of service.StatsService the handlers use.
type statsService interface {
	TotalByTypeAndRange(ctx context.Context, txType ledger.TransactionType, start, end ledger.Date, accountID *int64) (decimal.Decimal, error)
	CategoryTotals(ctx context.Context, start, end ledger.Date, accountID *int64) ([]service.CategoryTotal, error)
	DailyTotals(ctx context.Context, start, end ledger.Date, accountID *int64) ([]transaction.DayTotal, error)
	MonthlyTrend(ctx context.Context, now time.Time, months int, accountID *int64) ([]service.MonthTotal, error)
	MonthOverview(ctx context.Context, year int, month time.Month, accountID *int64) (*service.MonthOverview, error)
}

// RangeInput is the inclusive date range shared by the range endpoints.
// An accountID of 0 covers every account.
type RangeInput struct {
	Start     string `query:"start" required:"true" doc:"Inclusive start date, YYYY-MM-DD"`
	End       string `query:"end" required:"true" doc:"Inclusive end date, YYYY-MM-DD"`
	AccountID int64  `query:"accountID" minimum:"0" doc:"Only this account, 0 for all"`
}

func (in *RangeInput) parse() (start, end ledger.Date, accountID *int64, err error) {
	start, err = ledger.ParseDate(in.Start)
	if err != nil {
		return start, end, nil, httperror.From("invalid start", err)
	}
	end, err = ledger.ParseDate(in.End)
	if err != nil {
		return start, end, nil, httperror.From("invalid end", err)
	}
	return start, end, optionalAccount(in.AccountID), nil
}

func optionalAccount(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

// CategoryTotal is one category's expense total.
type CategoryTotal struct {
	CategoryID int64  `json:"categoryID" doc:"Category ID"`
	Name       string `json:"name" doc:"Category name, Unknown when the category is gone"`
	Color      string `json:"color" doc:"Display color"`
	Icon       string `json:"icon" doc:"Display icon"`
	Total      string `json:"total" doc:"Decimal expense total"`
}

func fromCategoryTotals(totals []service.CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, len(totals))
	for i, t := range totals {
		out[i] = CategoryTotal{
			CategoryID: t.CategoryID,
			Name:       t.Name,
			Color:      t.Color,
			Icon:       t.Icon,
			Total:      t.Total.String(),
		}
	}
	return out
}

// Handler serves the /v1/stats endpoints.
type Handler struct {
	StatsService statsService
	now          func() time.Time
}

func NewHandler(svc statsService) *Handler {
	return &Handler{StatsService: svc, now: time.Now}
}

// Register registers every stats endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	h.registerTotals(api)
	h.registerTrends(api)
}

func timed(ctx context.Context, name string) func() {
	if logData := logging.GetLogData(ctx); logData != nil {
		return logData.AddTiming(name)
	}
	return func() {}
}
