package stats

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
	"github.com/carson-networks/pocket-ledger/internal/ledger"
)

type TotalInput struct {
	RangeInput
	Type string `query:"type" enum:"expense,income" default:"expense" doc:"Transaction type to sum"`
}

type TotalBody struct {
	Type  string `json:"type" doc:"Transaction type summed"`
	Start string `json:"start" doc:"Inclusive start date"`
	End   string `json:"end" doc:"Inclusive end date"`
	Total string `json:"total" doc:"Decimal total, 0 when nothing matched"`
}

type TotalOutput struct {
	Body TotalBody
}

type CategoryTotalsBody struct {
	Categories []CategoryTotal `json:"categories" doc:"Expense totals per category, largest first"`
}

type CategoryTotalsOutput struct {
	Body CategoryTotalsBody
}

type DayTotal struct {
	Date  string `json:"date" format:"date" doc:"Calendar date"`
	Total string `json:"total" doc:"Decimal total of the day"`
}

type DailyTotalsBody struct {
	Days []DayTotal `json:"days" doc:"Totals per day with at least one transaction, oldest first"`
}

type DailyTotalsOutput struct {
	Body DailyTotalsBody
}

func (h *Handler) registerTotals(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "stats-total",
		Method:      http.MethodGet,
		Path:        "/v1/stats/total",
		Summary:     "Total by type",
		Description: "Sums the amounts of one transaction type over an inclusive date range.",
		Tags:        []string{"Stats"},
	}, h.total)

	huma.Register(api, huma.Operation{
		OperationID: "stats-categories",
		Method:      http.MethodGet,
		Path:        "/v1/stats/categories",
		Summary:     "Expense totals by category",
		Tags:        []string{"Stats"},
	}, h.categoryTotals)

	huma.Register(api, huma.Operation{
		OperationID: "stats-daily",
		Method:      http.MethodGet,
		Path:        "/v1/stats/daily",
		Summary:     "Totals by day",
		Tags:        []string{"Stats"},
	}, h.dailyTotals)
}

func (h *Handler) total(ctx context.Context, input *TotalInput) (*TotalOutput, error) {
	start, end, accountID, err := input.parse()
	if err != nil {
		return nil, err
	}
	txType, err := ledger.ParseTransactionType(input.Type)
	if err != nil {
		return nil, httperror.From("invalid type", err)
	}

	stop := timed(ctx, "statsTotalMs")
	total, err := h.StatsService.TotalByTypeAndRange(ctx, txType, start, end, accountID)
	stop()
	if err != nil {
		return nil, httperror.From("failed to compute total", err)
	}

	return &TotalOutput{Body: TotalBody{
		Type:  string(txType),
		Start: start.String(),
		End:   end.String(),
		Total: total.String(),
	}}, nil
}

func (h *Handler) categoryTotals(ctx context.Context, input *RangeInput) (*CategoryTotalsOutput, error) {
	start, end, accountID, err := input.parse()
	if err != nil {
		return nil, err
	}

	stop := timed(ctx, "statsCategoriesMs")
	totals, err := h.StatsService.CategoryTotals(ctx, start, end, accountID)
	stop()
	if err != nil {
		return nil, httperror.From("failed to compute category totals", err)
	}

	out := &CategoryTotalsOutput{}
	out.Body.Categories = fromCategoryTotals(totals)
	return out, nil
}

func (h *Handler) dailyTotals(ctx context.Context, input *RangeInput) (*DailyTotalsOutput, error) {
	start, end, accountID, err := input.parse()
	if err != nil {
		return nil, err
	}

	stop := timed(ctx, "statsDailyMs")
	days, err := h.StatsService.DailyTotals(ctx, start, end, accountID)
	stop()
	if err != nil {
		return nil, httperror.From("failed to compute daily totals", err)
	}

	out := &DailyTotalsOutput{}
	out.Body.Days = make([]DayTotal, len(days))
	for i, d := range days {
		out.Body.Days[i] = DayTotal{Date: d.Date.String(), Total: d.Total.String()}
	}
	return out, nil
}
