package actions

import (
	"context"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/storage"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

type DeleteTransaction struct {
	ID int64

	Deleted *transaction.Transaction
}

func (d *DeleteTransaction) Name() string { return "DeleteTransaction" }

func (d *DeleteTransaction) Affects() []ledger.Entity {
	return []ledger.Entity{ledger.EntityTransactions, ledger.EntityAccounts}
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByID(ctx, d.ID)
	if err != nil {
		return err
	}

	if err := writer.Transactions.Delete(ctx, d.ID); err != nil {
		return err
	}

	err = adjustBalance(ctx, writer, existing.AccountID, existing.Type.Reverse(existing.Amount))
	if err != nil {
		return &ledger.ReconciliationError{Op: "delete", TransactionID: d.ID, AccountID: existing.AccountID, Err: err}
	}

	d.Deleted = existing
	return nil
}
