package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name            string `json:"name" minLength:"1" doc:"Account name"`
	Currency        string `json:"currency,omitempty" doc:"ISO 4217 code, defaults to the configured currency"`
	StartingBalance string `json:"startingBalance,omitempty" doc:"Starting balance (e.g. '0' or '1234.56'), defaults to 0"`
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	ID int64 `json:"id" doc:"Created account ID"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// CreateAccountHandler handles POST /v1/accounts.
type CreateAccountHandler struct {
	AccountService accountService
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountService) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/accounts",
		Summary:       "Create an account",
		Description:   "Creates a new account with the given name, currency and starting balance.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (service.AccountInput, error) {
	startingBalance := decimal.Zero
	if input.Body.StartingBalance != "" {
		var err error
		startingBalance, err = decimal.NewFromString(input.Body.StartingBalance)
		if err != nil {
			return service.AccountInput{}, huma.NewError(http.StatusBadRequest, "invalid startingBalance", err)
		}
	}

	return service.AccountInput{
		Name:            input.Body.Name,
		Currency:        input.Body.Currency,
		StartingBalance: startingBalance,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	accountInput, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	id, err := h.AccountService.CreateAccount(ctx, accountInput)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperror.From("failed to create account", err)
	}

	if logData != nil {
		logData.AddData("accountID", id)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: id},
	}, nil
}
