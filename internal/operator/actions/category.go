package actions

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/storage"
	"github.com/carson-networks/pocket-ledger/internal/storage/category"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

type CreateCategory struct {
	CategoryName string
	Color        string
	Icon         string

	CreatedID int64
}

func (c *CreateCategory) Name() string { return "CreateCategory" }

func (c *CreateCategory) Affects() []ledger.Entity {
	return []ledger.Entity{ledger.EntityCategories}
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Categories.Insert(ctx, &category.CategoryCreate{
		Name:  c.CategoryName,
		Color: c.Color,
		Icon:  c.Icon,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}

type UpdateCategory struct {
	ID    int64
	Patch category.CategoryPatch
}

func (u *UpdateCategory) Name() string { return "UpdateCategory" }

func (u *UpdateCategory) Affects() []ledger.Entity {
	return []ledger.Entity{ledger.EntityCategories}
}

func (u *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Categories.Update(ctx, u.ID, &u.Patch)
}

// DeleteCategory deletes a category and, through the cascade, its
// transactions. Each affected account first has those transactions' effects
// taken off its balance.
type DeleteCategory struct {
	ID int64

	RemovedTransactions int
}

func (d *DeleteCategory) Name() string { return "DeleteCategory" }

func (d *DeleteCategory) Affects() []ledger.Entity {
	return []ledger.Entity{ledger.EntityCategories, ledger.EntityTransactions, ledger.EntityAccounts}
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Categories.FindByID(ctx, d.ID); err != nil {
		return err
	}

	res, err := writer.Transactions.List(ctx, &transaction.TransactionFilter{CategoryID: &d.ID})
	if err != nil {
		return err
	}

	perAccount := map[int64][]*transaction.Transaction{}
	for _, tx := range res.Transactions {
		perAccount[tx.AccountID] = append(perAccount[tx.AccountID], tx)
	}
	accountIDs := make([]int64, 0, len(perAccount))
	for id := range perAccount {
		accountIDs = append(accountIDs, id)
	}
	sort.Slice(accountIDs, func(i, j int) bool { return accountIDs[i] < accountIDs[j] })

	for _, accountID := range accountIDs {
		delta := decimal.Zero.Sub(signedTotal(perAccount[accountID]))
		if err := adjustBalance(ctx, writer, accountID, delta); err != nil {
			return &ledger.ReconciliationError{Op: "delete category", AccountID: accountID, Err: err}
		}
	}

	if err := writer.Categories.Delete(ctx, d.ID); err != nil {
		return err
	}

	d.RemovedTransactions = len(res.Transactions)
	return nil
}
