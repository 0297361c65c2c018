package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/storage/account"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct {
	Position int `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit    int `query:"limit" minimum:"0" maximum:"100" doc:"Page size, default 20"`
}

// ListAccountsCursor is the cursor for the next page.
type ListAccountsCursor struct {
	Position int `json:"position" doc:"Offset for next page"`
	Limit    int `json:"limit" doc:"Page size"`
}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts   []Account           `json:"accounts" doc:"Page of accounts"`
	NextCursor *ListAccountsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	AccountService accountService
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountService) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Returns a paginated list of accounts ordered by name.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listAccountsMs")
	}
	accounts, next, err := h.AccountService.ListAccounts(ctx, &account.AccountCursor{
		Position: input.Position,
		Limit:    input.Limit,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.From("failed to list accounts", err)
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := ListAccountsResponseBody{
		Accounts: make([]Account, len(accounts)),
	}
	for i, acc := range accounts {
		resp.Accounts[i] = fromAccount(acc)
	}
	if next != nil {
		resp.NextCursor = &ListAccountsCursor{Position: next.Position, Limit: next.Limit}
	}

	return &ListAccountsOutput{Body: resp}, nil
}
