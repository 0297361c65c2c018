package storage

import (
	"context"
	"errors"
	"time"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/storage/account"
	"github.com/carson-networks/pocket-ledger/internal/storage/category"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

// ErrNoTransaction is returned by Commit and Rollback on a Writer that was not
// created by Storage.Write.
var ErrNoTransaction = errors.New("writer has no transaction")

// Writer groups the table writers that share one database transaction.
type Writer struct {
	tx           *bob.Tx
	Accounts     account.IWriter
	Categories   category.IWriter
	Transactions transaction.IWriter
}

func NewWriter(tx bob.Tx, now func() time.Time) *Writer {
	return &Writer{
		tx:           &tx,
		Accounts:     account.NewWriter(tx, now),
		Categories:   category.NewWriter(tx, now),
		Transactions: transaction.NewWriter(tx, now),
	}
}

func (w *Writer) Commit() error {
	if w.tx == nil {
		return ErrNoTransaction
	}
	return ledger.WrapStorage("commit", w.tx.Commit(context.Background()))
}

func (w *Writer) Rollback() error {
	if w.tx == nil {
		return ErrNoTransaction
	}
	return ledger.WrapStorage("rollback", w.tx.Rollback(context.Background()))
}
