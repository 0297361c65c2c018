package account

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
)

// Account represents an account record. Balance is only ever changed by the
// reconciliation actions.
type Account struct {
	ID              int64
	Name            string
	Balance         decimal.Decimal
	StartingBalance decimal.Decimal
	Currency        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AccountCreate is the input for creating a new account. The balance starts
// at StartingBalance.
type AccountCreate struct {
	Name            string
	Currency        string
	StartingBalance decimal.Decimal
}

// AccountPatch lists the user-editable fields. Unset fields are left alone.
type AccountPatch struct {
	Name     omit.Val[string]
	Currency omit.Val[string]
}

// AccountFilter specifies filters for listing accounts. A zero Limit returns
// every account.
type AccountFilter struct {
	Limit  int
	Offset int
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// AccountListResult contains a page of accounts and an optional next cursor.
type AccountListResult struct {
	Accounts   []*Account
	NextCursor *AccountCursor
}

// IReader is the read side of the table.
type IReader interface {
	FindByID(ctx context.Context, id int64) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error)
}

// IWriter is the table bound to a write transaction.
//
//go:generate mockery --name IWriter --inpackage --with-expecter --filename mock_IWriter.go
type IWriter interface {
	IReader
	Insert(ctx context.Context, create *AccountCreate) (int64, error)
	Update(ctx context.Context, id int64, patch *AccountPatch) error
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}

const tableName = "accounts"

var columns = []any{"id", "name", "balance", "starting_balance", "currency", "created_at", "updated_at"}

type row struct {
	ID              int64            `db:"id"`
	Name            string           `db:"name"`
	Balance         decimal.Decimal  `db:"balance"`
	StartingBalance decimal.Decimal  `db:"starting_balance"`
	Currency        string           `db:"currency"`
	CreatedAt       ledger.Timestamp `db:"created_at"`
	UpdatedAt       ledger.Timestamp `db:"updated_at"`
}

func (r row) toAccount() *Account {
	return &Account{
		ID:              r.ID,
		Name:            r.Name,
		Balance:         r.Balance,
		StartingBalance: r.StartingBalance,
		Currency:        r.Currency,
		CreatedAt:       r.CreatedAt.Time,
		UpdatedAt:       r.UpdatedAt.Time,
	}
}
