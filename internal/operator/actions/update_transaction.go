package actions

import (
	"context"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/storage"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

// UpdateTransaction patches a transaction, then takes the original's effect
// off its account and puts the updated effect on the (possibly different)
// new account.
type UpdateTransaction struct {
	ID    int64
	Patch transaction.TransactionPatch

	Updated *transaction.Transaction
}

func (u *UpdateTransaction) Name() string { return "UpdateTransaction" }

func (u *UpdateTransaction) Affects() []ledger.Entity {
	return []ledger.Entity{ledger.EntityTransactions, ledger.EntityAccounts}
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	original, err := writer.Transactions.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}

	if err := writer.Transactions.Update(ctx, u.ID, &u.Patch); err != nil {
		return err
	}

	updated, err := writer.Transactions.FindByID(ctx, u.ID)
	if err != nil {
		return &ledger.ReconciliationError{Op: "update", TransactionID: u.ID, AccountID: original.AccountID, Err: err}
	}

	err = adjustBalance(ctx, writer, original.AccountID, original.Type.Reverse(original.Amount))
	if err != nil {
		return &ledger.ReconciliationError{Op: "update", TransactionID: u.ID, AccountID: original.AccountID, Err: err}
	}

	err = adjustBalance(ctx, writer, updated.AccountID, updated.Type.Effect(updated.Amount))
	if err != nil {
		return &ledger.ReconciliationError{Op: "update", TransactionID: u.ID, AccountID: updated.AccountID, Err: err}
	}

	u.Updated = updated
	return nil
}
