package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/storage"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

type CreateTransaction struct {
	AccountID  int64
	CategoryID int64
	Amount     decimal.Decimal
	Note       string
	Date       ledger.Date
	Type       ledger.TransactionType

	// CreatedID is set by a successful Perform.
	CreatedID int64
}

func (t *CreateTransaction) Name() string { return "CreateTransaction" }

func (t *CreateTransaction) Affects() []ledger.Entity {
	return []ledger.Entity{ledger.EntityTransactions, ledger.EntityAccounts}
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		Amount:     t.Amount,
		CategoryID: t.CategoryID,
		AccountID:  t.AccountID,
		Note:       t.Note,
		Date:       t.Date,
		Type:       t.Type,
	})
	if err != nil {
		return err
	}

	err = adjustBalance(ctx, writer, t.AccountID, t.Type.Effect(t.Amount))
	if err != nil {
		return &ledger.ReconciliationError{Op: "create", TransactionID: id, AccountID: t.AccountID, Err: err}
	}

	t.CreatedID = id
	return nil
}
