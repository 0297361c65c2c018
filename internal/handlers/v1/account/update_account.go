package account

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

// UpdateAccountBody lists the fields that may change. Absent fields are kept.
// The balance is not writable.
type UpdateAccountBody struct {
	Name     *string `json:"name,omitempty" doc:"New account name"`
	Currency *string `json:"currency,omitempty" doc:"New ISO 4217 code"`
}

type UpdateAccountInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Account ID"`
	Body UpdateAccountBody
}

// UpdateAccountHandler handles PATCH /v1/accounts/{id}.
type UpdateAccountHandler struct {
	AccountService accountService
}

func NewUpdateAccountHandler(svc accountService) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/v1/accounts/{id}",
		Summary:     "Update an account",
		Description: "Renames an account or changes its currency code.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*AccountOutput, error) {
	var update service.AccountUpdate
	if input.Body.Name != nil {
		update.Name = omit.From(*input.Body.Name)
	}
	if input.Body.Currency != nil {
		update.Currency = omit.From(*input.Body.Currency)
	}

	acc, err := h.AccountService.UpdateAccount(ctx, input.ID, update)
	if err != nil {
		return nil, httperror.From("failed to update account", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountID", acc.ID)
	}
	return &AccountOutput{Body: fromAccount(acc)}, nil
}
