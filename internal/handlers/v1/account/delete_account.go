package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
)

// DeleteAccountHandler handles DELETE /v1/accounts/{id}.
type DeleteAccountHandler struct {
	AccountService accountService
}

func NewDeleteAccountHandler(svc accountService) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/v1/accounts/{id}",
		Summary:       "Delete an account",
		Description:   "Deletes an account together with all of its transactions.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *AccountIDInput) (*struct{}, error) {
	if err := h.AccountService.DeleteAccount(ctx, input.ID); err != nil {
		return nil, httperror.From("failed to delete account", err)
	}
	return nil, nil
}
