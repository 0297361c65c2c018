package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/storage"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

// IAction is one unit of work performed inside a single storage transaction.
// Perform must not commit or roll back the writer.
type IAction interface {
	Name() string
	// Affects lists the collections a committed run may have changed.
	Affects() []ledger.Entity
	Perform(ctx context.Context, writer *storage.Writer) error
}

// adjustBalance adds delta to the stored balance of accountID.
func adjustBalance(ctx context.Context, writer *storage.Writer, accountID int64, delta decimal.Decimal) error {
	account, err := writer.Accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	return writer.Accounts.UpdateBalance(ctx, accountID, account.Balance.Add(delta))
}

// signedTotal is the net balance effect of txs.
func signedTotal(txs []*transaction.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Type.Effect(tx.Amount))
	}
	return total
}
