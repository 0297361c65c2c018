package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

// newTestAPI registers every transaction handler against a humatest API.
func newTestAPI(t *testing.T, svc transactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	Register(api, svc)
	return api
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			AccountID:  1,
			CategoryID: 2,
			Amount:     "123.45",
			Type:       "income",
			Note:       "Test Transaction",
			Date:       "2025-01-15",
		},
	}

	parsed, err := parseCreateTransactionInput(input, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), parsed.AccountID)
	assert.Equal(t, int64(2), parsed.CategoryID)
	assert.True(t, parsed.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, "Test Transaction", parsed.Note)
	assert.Equal(t, "2025-01-15", parsed.Date)
	assert.Equal(t, "income", parsed.Type)
}

func TestParseCreateTransactionInput_DefaultsDateToToday(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{AccountID: 1, CategoryID: 2, Amount: "9.99", Type: "expense"},
	}

	parsed, err := parseCreateTransactionInput(input, time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-09", parsed.Date)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.AccountID == 1 &&
			in.CategoryID == 2 &&
			in.Amount.Equal(decimal.RequireFromString("12.50")) &&
			in.Note == "Coffee" &&
			in.Date == "2025-06-01" &&
			in.Type == "expense"
	})).Return(int64(77), nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{
		AccountID:  1,
		CategoryID: 2,
		Amount:     "12.50",
		Type:       "expense",
		Note:       "Coffee",
		Date:       "2025-06-01",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(77), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", map[string]any{
		"accountID": 1,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_UnknownType(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{
		AccountID: 1, CategoryID: 2, Amount: "10.00", Type: "transfer",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Amount is a plain string, so parseCreateTransactionInput validates it and returns 400.
	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{
		AccountID: 1, CategoryID: 2, Amount: "not-a-decimal", Type: "expense",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ValidationError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(int64(0), ledger.NewValidationError("amount", "must be greater than zero"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{
		AccountID: 1, CategoryID: 2, Amount: "-5", Type: "expense",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateTransaction_ReconciliationError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(int64(0), &ledger.ReconciliationError{Op: "create", TransactionID: 9, AccountID: 1, RolledBack: true, Err: ledger.ErrNotFound})

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{
		AccountID: 1, CategoryID: 2, Amount: "5", Type: "expense",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/v1/transactions", CreateTransactionBody{
		AccountID: 1, CategoryID: 2, Amount: "10.00", Type: "expense",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
