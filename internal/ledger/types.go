package ledger

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction. The amount of a
// transaction is always positive; the type carries the sign.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// Effect returns the signed balance adjustment for amount under this type.
// Income adds to the balance, expense subtracts from it.
func (t TransactionType) Effect(amount decimal.Decimal) decimal.Decimal {
	if t == TypeIncome {
		return amount
	}
	return amount.Neg()
}

// Reverse returns the adjustment that undoes Effect(amount).
func (t TransactionType) Reverse(amount decimal.Decimal) decimal.Decimal {
	return t.Effect(amount).Neg()
}

// ParseTransactionType validates s as a transaction type.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.Valid() {
		return "", NewValidationError("type", fmt.Sprintf("unknown transaction type %q", s))
	}
	return t, nil
}

// Entity names a collection of stored records.
type Entity string

const (
	EntityAccounts     Entity = "accounts"
	EntityCategories   Entity = "categories"
	EntityTransactions Entity = "transactions"
)

// AllEntities lists every collection.
var AllEntities = []Entity{EntityAccounts, EntityCategories, EntityTransactions}

const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Timestamp is a UTC instant stored as fixed-width text, so that ordering the
// column lexically orders it chronologically.
type Timestamp struct {
	time.Time
}

// NewTimestamp normalizes t to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// Value implements driver.Valuer.
func (ts Timestamp) Value() (driver.Value, error) {
	return ts.UTC().Format(timestampLayout), nil
}

// Scan implements sql.Scanner.
func (ts *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		ts.Time = time.Time{}
		return nil
	case time.Time:
		ts.Time = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("ledger: cannot scan %T into Timestamp", src)
	}
}

func (ts *Timestamp) parse(s string) error {
	for _, layout := range []string{timestampLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("ledger: invalid timestamp %q", s)
}
