package transaction

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

// UpdateTransactionBody lists the fields that may change. Absent fields are kept.
type UpdateTransactionBody struct {
	AccountID  *int64  `json:"accountID,omitempty" doc:"Move to this account"`
	CategoryID *int64  `json:"categoryID,omitempty" doc:"New category"`
	Amount     *string `json:"amount,omitempty" doc:"New positive decimal amount"`
	Type       *string `json:"type,omitempty" doc:"expense or income"`
	Note       *string `json:"note,omitempty" doc:"New note"`
	Date       *string `json:"date,omitempty" doc:"New date, YYYY-MM-DD"`
}

type UpdateTransactionInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Transaction ID"`
	Body UpdateTransactionBody
}

// UpdateTransactionHandler handles PATCH /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionService
}

func NewUpdateTransactionHandler(svc transactionService) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update a transaction",
		Description: "Applies a partial update. The original effect is taken off the original account and the new effect is put on the new account.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (service.TransactionUpdate, error) {
	var update service.TransactionUpdate
	body := input.Body
	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return update, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		update.Amount = omit.From(amount)
	}
	if body.AccountID != nil {
		update.AccountID = omit.From(*body.AccountID)
	}
	if body.CategoryID != nil {
		update.CategoryID = omit.From(*body.CategoryID)
	}
	if body.Type != nil {
		update.Type = omit.From(*body.Type)
	}
	if body.Note != nil {
		update.Note = omit.From(*body.Note)
	}
	if body.Date != nil {
		update.Date = omit.From(*body.Date)
	}
	return update, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*TransactionOutput, error) {
	update, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateTransactionMs")
	}
	tx, err := h.TransactionService.UpdateTransaction(ctx, input.ID, update)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.From("failed to update transaction", err)
	}
	return &TransactionOutput{Body: fromTransaction(tx)}, nil
}
