package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
)

// SearchTransactionsBody is the request body for a note search.
type SearchTransactionsBody struct {
	Query  string                  `json:"query" minLength:"1" doc:"Text to look for in notes, case-insensitive"`
	Cursor *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

type SearchTransactionsInput struct {
	Body SearchTransactionsBody
}

// SearchTransactionsHandler handles POST /v1/transactions/search.
type SearchTransactionsHandler struct {
	TransactionService transactionService
}

func NewSearchTransactionsHandler(svc transactionService) *SearchTransactionsHandler {
	return &SearchTransactionsHandler{TransactionService: svc}
}

func (h *SearchTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/search",
		Summary:     "Search transactions",
		Description: "Returns transactions whose note contains the query, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SearchTransactionsHandler) handle(ctx context.Context, input *SearchTransactionsInput) (*ListTransactionsOutput, error) {
	cursor, err := parseCursor(input.Body.Cursor)
	if err != nil {
		return nil, err
	}
	transactions, next, err := h.TransactionService.SearchTransactions(ctx, input.Body.Query, cursor)
	if err != nil {
		return nil, httperror.From("failed to search transactions", err)
	}
	return &ListTransactionsOutput{Body: toResponse(transactions, next)}, nil
}
