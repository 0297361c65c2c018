package transaction

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
)

// Transaction represents a transaction record. Amount is always positive;
// Type carries the direction.
type Transaction struct {
	ID         int64
	Amount     decimal.Decimal
	CategoryID int64
	AccountID  int64
	Note       string
	Date       ledger.Date
	Type       ledger.TransactionType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Amount     decimal.Decimal
	CategoryID int64
	AccountID  int64
	Note       string
	Date       ledger.Date
	Type       ledger.TransactionType
}

// TransactionPatch holds the fields to change. Unset fields keep their value.
type TransactionPatch struct {
	Amount     omit.Val[decimal.Decimal]
	CategoryID omit.Val[int64]
	AccountID  omit.Val[int64]
	Note       omit.Val[string]
	Date       omit.Val[ledger.Date]
	Type       omit.Val[ledger.TransactionType]
}

// IsEmpty reports whether no field is set.
func (p *TransactionPatch) IsEmpty() bool {
	return !p.Amount.IsValue() && !p.CategoryID.IsValue() && !p.AccountID.IsValue() &&
		!p.Note.IsValue() && !p.Date.IsValue() && !p.Type.IsValue()
}

// TransactionFilter specifies filters for listing transactions. Start and End
// are inclusive. NoteContains matches case-insensitively for ASCII.
type TransactionFilter struct {
	Start           *ledger.Date
	End             *ledger.Date
	AccountID       *int64
	CategoryID      *int64
	Type            *ledger.TransactionType
	NoteContains    string
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionListResult contains a page of transactions and an optional next cursor.
type TransactionListResult struct {
	Transactions []*Transaction
	NextCursor   *TransactionCursor
}

// AggregateFilter selects the rows an aggregate runs over. A nil Type
// includes both directions.
type AggregateFilter struct {
	Start     ledger.Date
	End       ledger.Date
	Type      *ledger.TransactionType
	AccountID *int64
}

// CategoryTotal is the summed amount of one category's transactions.
type CategoryTotal struct {
	CategoryID int64
	Total      decimal.Decimal
}

// DayTotal is the summed amount of one day's transactions.
type DayTotal struct {
	Date  ledger.Date
	Total decimal.Decimal
}

// IReader is the read side of the table.
type IReader interface {
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) (*TransactionListResult, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	Sum(ctx context.Context, filter *AggregateFilter) (decimal.Decimal, error)
	SumByCategory(ctx context.Context, filter *AggregateFilter) ([]CategoryTotal, error)
	SumByDay(ctx context.Context, filter *AggregateFilter) ([]DayTotal, error)
}

// IWriter is the table bound to a write transaction.
//
//go:generate mockery --name IWriter --inpackage --with-expecter --filename mock_IWriter.go
type IWriter interface {
	IReader
	Insert(ctx context.Context, create *TransactionCreate) (int64, error)
	Update(ctx context.Context, id int64, patch *TransactionPatch) error
	Delete(ctx context.Context, id int64) error
}

const tableName = "transactions"

var columns = []any{"id", "amount", "category_id", "account_id", "note", "date", "type", "created_at", "updated_at"}

type row struct {
	ID         int64                  `db:"id"`
	Amount     decimal.Decimal        `db:"amount"`
	CategoryID int64                  `db:"category_id"`
	AccountID  int64                  `db:"account_id"`
	Note       string                 `db:"note"`
	Date       ledger.Date            `db:"date"`
	Type       ledger.TransactionType `db:"type"`
	CreatedAt  ledger.Timestamp       `db:"created_at"`
	UpdatedAt  ledger.Timestamp       `db:"updated_at"`
}

func (r row) toTransaction() *Transaction {
	return &Transaction{
		ID:         r.ID,
		Amount:     r.Amount,
		CategoryID: r.CategoryID,
		AccountID:  r.AccountID,
		Note:       r.Note,
		Date:       r.Date,
		Type:       r.Type,
		CreatedAt:  r.CreatedAt.Time,
		UpdatedAt:  r.UpdatedAt.Time,
	}
}
