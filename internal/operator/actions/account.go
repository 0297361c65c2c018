package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/storage"
	"github.com/carson-networks/pocket-ledger/internal/storage/account"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

type CreateAccount struct {
	AccountName     string
	Currency        string
	StartingBalance decimal.Decimal

	CreatedID int64
}

func (c *CreateAccount) Name() string { return "CreateAccount" }

func (c *CreateAccount) Affects() []ledger.Entity {
	return []ledger.Entity{ledger.EntityAccounts}
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Accounts.Insert(ctx, &account.AccountCreate{
		Name:            c.AccountName,
		Currency:        c.Currency,
		StartingBalance: c.StartingBalance,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}

// UpdateAccount changes an account's descriptive fields. The balance is not
// reachable from here.
type UpdateAccount struct {
	ID    int64
	Patch account.AccountPatch
}

func (u *UpdateAccount) Name() string { return "UpdateAccount" }

func (u *UpdateAccount) Affects() []ledger.Entity {
	return []ledger.Entity{ledger.EntityAccounts}
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Accounts.Update(ctx, u.ID, &u.Patch)
}

// DeleteAccount removes an account together with its transactions.
type DeleteAccount struct {
	ID int64
}

func (d *DeleteAccount) Name() string { return "DeleteAccount" }

func (d *DeleteAccount) Affects() []ledger.Entity {
	return []ledger.Entity{ledger.EntityAccounts, ledger.EntityTransactions}
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Accounts.Delete(ctx, d.ID)
}

// RepairBalance recomputes an account's balance from its starting balance and
// its transactions and stores the result.
type RepairBalance struct {
	AccountID int64

	Previous decimal.Decimal
	Repaired decimal.Decimal
}

func (r *RepairBalance) Name() string { return "RepairBalance" }

func (r *RepairBalance) Affects() []ledger.Entity {
	return []ledger.Entity{ledger.EntityAccounts}
}

func (r *RepairBalance) Perform(ctx context.Context, writer *storage.Writer) error {
	acc, err := writer.Accounts.FindByID(ctx, r.AccountID)
	if err != nil {
		return err
	}

	res, err := writer.Transactions.List(ctx, &transaction.TransactionFilter{AccountID: &r.AccountID})
	if err != nil {
		return err
	}

	expected := acc.StartingBalance.Add(signedTotal(res.Transactions))
	if err := writer.Accounts.UpdateBalance(ctx, r.AccountID, expected); err != nil {
		return err
	}

	r.Previous = acc.Balance
	r.Repaired = expected
	return nil
}
