package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
)

// GetAccountHandler handles GET /v1/accounts/{id}.
type GetAccountHandler struct {
	AccountService accountService
}

func NewGetAccountHandler(svc accountService) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *AccountIDInput) (*AccountOutput, error) {
	acc, err := h.AccountService.GetAccount(ctx, input.ID)
	if err != nil {
		return nil, httperror.From("failed to get account", err)
	}
	return &AccountOutput{Body: fromAccount(acc)}, nil
}
