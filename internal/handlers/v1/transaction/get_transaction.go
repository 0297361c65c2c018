package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
)

// GetTransactionHandler handles GET /v1/transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionService
}

func NewGetTransactionHandler(svc transactionService) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{id}",
		Summary:     "Get a transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *TransactionIDInput) (*TransactionOutput, error) {
	tx, err := h.TransactionService.GetTransaction(ctx, input.ID)
	if err != nil {
		return nil, httperror.From("failed to get transaction", err)
	}
	return &TransactionOutput{Body: fromTransaction(tx)}, nil
}

// DeleteTransactionHandler handles DELETE /v1/transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionService
}

func NewDeleteTransactionHandler(svc transactionService) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transactions/{id}",
		Summary:       "Delete a transaction",
		Description:   "Deletes a transaction and takes its effect off the account balance.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *TransactionIDInput) (*struct{}, error) {
	if err := h.TransactionService.DeleteTransaction(ctx, input.ID); err != nil {
		return nil, httperror.From("failed to delete transaction", err)
	}
	return nil, nil
}
