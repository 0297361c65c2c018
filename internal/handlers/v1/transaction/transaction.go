package transaction

import (
	"context"
	"time"

	"github.com/carson-networks/pocket-ledger/internal/service"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID         int64  `json:"id" doc:"Transaction ID"`
	AccountID  int64  `json:"accountID" doc:"Account ID"`
	CategoryID int64  `json:"categoryID" doc:"Category ID"`
	Amount     string `json:"amount" doc:"Decimal amount, always positive"`
	Type       string `json:"type" enum:"expense,income" doc:"Direction of the transaction"`
	Note       string `json:"note" doc:"Free-form note"`
	Date       string `json:"date" format:"date" doc:"Calendar date"`
	CreatedAt  string `json:"createdAt" format:"date-time" doc:"Creation time"`
	UpdatedAt  string `json:"updatedAt" format:"date-time" doc:"Last update time"`
}

// TransactionIDInput identifies one transaction in the path.
type TransactionIDInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Transaction ID"`
}

// TransactionOutput wraps a single transaction.
type TransactionOutput struct {
	Body Transaction
}

// transactionService is the subset of service.TransactionService the handlers use.
type transactionService interface {
	CreateTransaction(ctx context.Context, input service.TransactionInput) (int64, error)
	GetTransaction(ctx context.Context, id int64) (*transaction.Transaction, error)
	ListTransactions(ctx context.Context, query *service.TransactionQuery, cursor *transaction.TransactionCursor) ([]*transaction.Transaction, *transaction.TransactionCursor, error)
	SearchTransactions(ctx context.Context, text string, cursor *transaction.TransactionCursor) ([]*transaction.Transaction, *transaction.TransactionCursor, error)
	UpdateTransaction(ctx context.Context, id int64, update service.TransactionUpdate) (*transaction.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

func fromTransaction(tx *transaction.Transaction) Transaction {
	return Transaction{
		ID:         tx.ID,
		AccountID:  tx.AccountID,
		CategoryID: tx.CategoryID,
		Amount:     tx.Amount.String(),
		Type:       string(tx.Type),
		Note:       tx.Note,
		Date:       tx.Date.String(),
		CreatedAt:  tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  tx.UpdatedAt.Format(time.RFC3339),
	}
}
