package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID  int64  `json:"accountID" minimum:"1" doc:"Account ID"`
	CategoryID int64  `json:"categoryID" minimum:"1" doc:"Category ID"`
	Amount     string `json:"amount" minLength:"1" doc:"Positive decimal amount"`
	Type       string `json:"type" enum:"expense,income" doc:"Direction of the transaction"`
	Note       string `json:"note,omitempty" doc:"Free-form note"`
	Date       string `json:"date,omitempty" doc:"YYYY-MM-DD, defaults to today"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID int64 `json:"id" doc:"Created transaction ID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionService
	now                func() time.Time
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionService) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc, now: time.Now}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Records a transaction and adjusts its account balance in the same storage transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput, now time.Time) (service.TransactionInput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date := input.Body.Date
	if date == "" {
		date = ledger.DateOf(now).String()
	}

	return service.TransactionInput{
		AccountID:  input.Body.AccountID,
		CategoryID: input.Body.CategoryID,
		Amount:     amount,
		Note:       input.Body.Note,
		Date:       date,
		Type:       input.Body.Type,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	txInput, err := parseCreateTransactionInput(input, h.now())
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	id, err := h.TransactionService.CreateTransaction(ctx, txInput)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.From("failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", id)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: id},
	}, nil
}
