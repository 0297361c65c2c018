package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/service"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

// ListTransactionsCursor represents a pagination cursor in request and response bodies.
// It bundles position, limit, and maxCreationTime so subsequent pages use consistent parameters.
type ListTransactionsCursor struct {
	Position        int    `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit           int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
	MaxCreationTime string `json:"maxCreationTime,omitempty" doc:"Upper bound on created_at locked in from the first page (RFC 3339)"`
}

// ListTransactionsFilter narrows the listing. Empty fields do not filter.
type ListTransactionsFilter struct {
	Start        string `json:"start,omitempty" doc:"Inclusive start date, YYYY-MM-DD"`
	End          string `json:"end,omitempty" doc:"Inclusive end date, YYYY-MM-DD"`
	AccountID    int64  `json:"accountID,omitempty" minimum:"0" doc:"Only this account"`
	CategoryID   int64  `json:"categoryID,omitempty" minimum:"0" doc:"Only this category"`
	Type         string `json:"type,omitempty" doc:"expense or income"`
	NoteContains string `json:"noteContains,omitempty" doc:"Case-insensitive note substring"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	Filter *ListTransactionsFilter `json:"filter,omitempty" doc:"Filters applied to every page"`
	Cursor *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// ListTransactionsHandler handles POST /v1/transactions/list.
type ListTransactionsHandler struct {
	TransactionService transactionService
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionService) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/list",
		Summary:     "List transactions",
		Description: "Returns transactions newest first using cursor-based pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCursor converts an API cursor. A cursor without maxCreationTime
// starts a new listing with the given page size.
func parseCursor(in *ListTransactionsCursor) (*transaction.TransactionCursor, error) {
	if in == nil {
		return nil, nil
	}
	if in.Position < 0 {
		return nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	cursor := &transaction.TransactionCursor{Position: in.Position, Limit: in.Limit}
	if in.MaxCreationTime != "" {
		maxCreationTime, err := time.Parse(time.RFC3339Nano, in.MaxCreationTime)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid cursor maxCreationTime", err)
		}
		cursor.MaxCreationTime = maxCreationTime
	}
	return cursor, nil
}

func parseFilter(in *ListTransactionsFilter) *service.TransactionQuery {
	if in == nil {
		return nil
	}
	query := &service.TransactionQuery{
		Start:        in.Start,
		End:          in.End,
		Type:         in.Type,
		NoteContains: in.NoteContains,
	}
	if in.AccountID > 0 {
		accountID := in.AccountID
		query.AccountID = &accountID
	}
	if in.CategoryID > 0 {
		categoryID := in.CategoryID
		query.CategoryID = &categoryID
	}
	return query
}

func toResponse(transactions []*transaction.Transaction, next *transaction.TransactionCursor) ListTransactionsResponseBody {
	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = fromTransaction(tx)
	}
	if next != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position:        next.Position,
			Limit:           next.Limit,
			MaxCreationTime: next.MaxCreationTime.UTC().Format(time.RFC3339Nano),
		}
	}
	return resp
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	requestCursor, err := parseCursor(input.Body.Cursor)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, parseFilter(input.Body.Filter), requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.From("failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	return &ListTransactionsOutput{Body: toResponse(transactions, nextCursor)}, nil
}
