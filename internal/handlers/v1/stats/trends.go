package stats

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
)

type MonthlyTrendInput struct {
	Months    int   `query:"months" minimum:"1" maximum:"120" default:"6" doc:"Number of months ending with the current one"`
	AccountID int64 `query:"accountID" minimum:"0" doc:"Only this account, 0 for all"`
}

type MonthTotal struct {
	Start string `json:"start" format:"date" doc:"First day of the month"`
	End   string `json:"end" format:"date" doc:"Last day of the month"`
	Total string `json:"total" doc:"Decimal expense total"`
}

type MonthlyTrendBody struct {
	Months []MonthTotal `json:"months" doc:"Expense totals per month, oldest first"`
}

type MonthlyTrendOutput struct {
	Body MonthlyTrendBody
}

type OverviewInput struct {
	Year      int   `query:"year" minimum:"0" doc:"Calendar year, defaults to the current year"`
	Month     int   `query:"month" minimum:"0" maximum:"12" doc:"Calendar month 1-12, defaults to the current month"`
	AccountID int64 `query:"accountID" minimum:"0" doc:"Only this account, 0 for all"`
}

type OverviewBody struct {
	Start      string          `json:"start" format:"date" doc:"First day of the month"`
	End        string          `json:"end" format:"date" doc:"Last day of the month"`
	Income     string          `json:"income" doc:"Decimal income total"`
	Expense    string          `json:"expense" doc:"Decimal expense total"`
	Net        string          `json:"net" doc:"Income minus expense"`
	Categories []CategoryTotal `json:"categories" doc:"Expense totals per category, largest first"`
}

type OverviewOutput struct {
	Body OverviewBody
}

func (h *Handler) registerTrends(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "stats-monthly",
		Method:      http.MethodGet,
		Path:        "/v1/stats/monthly",
		Summary:     "Monthly expense trend",
		Tags:        []string{"Stats"},
	}, h.monthlyTrend)

	huma.Register(api, huma.Operation{
		OperationID: "stats-overview",
		Method:      http.MethodGet,
		Path:        "/v1/stats/overview",
		Summary:     "Month overview",
		Description: "Income, expense, net and category breakdown of one calendar month.",
		Tags:        []string{"Stats"},
	}, h.overview)
}

func (h *Handler) monthlyTrend(ctx context.Context, input *MonthlyTrendInput) (*MonthlyTrendOutput, error) {
	stop := timed(ctx, "statsMonthlyMs")
	months, err := h.StatsService.MonthlyTrend(ctx, h.now(), input.Months, optionalAccount(input.AccountID))
	stop()
	if err != nil {
		return nil, httperror.From("failed to compute monthly trend", err)
	}

	out := &MonthlyTrendOutput{}
	out.Body.Months = make([]MonthTotal, len(months))
	for i, m := range months {
		out.Body.Months[i] = MonthTotal{Start: m.Start.String(), End: m.End.String(), Total: m.Total.String()}
	}
	return out, nil
}

func (h *Handler) overview(ctx context.Context, input *OverviewInput) (*OverviewOutput, error) {
	now := h.now()
	year, month := now.Year(), now.Month()
	if input.Year > 0 {
		year = input.Year
	}
	if input.Month > 0 {
		month = time.Month(input.Month)
	}

	stop := timed(ctx, "statsOverviewMs")
	ov, err := h.StatsService.MonthOverview(ctx, year, month, optionalAccount(input.AccountID))
	stop()
	if err != nil {
		return nil, httperror.From("failed to compute overview", err)
	}

	return &OverviewOutput{Body: OverviewBody{
		Start:      ov.Start.String(),
		End:        ov.End.String(),
		Income:     ov.Income.String(),
		Expense:    ov.Expense.String(),
		Net:        ov.Net.String(),
		Categories: fromCategoryTotals(ov.Categories),
	}}, nil
}
