package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/pocket-ledger/internal/storage/account"
	"github.com/carson-networks/pocket-ledger/internal/storage/category"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

type Reader struct {
	Accounts     account.IReader
	Categories   category.IReader
	Transactions transaction.IReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:     account.NewReader(exec),
		Categories:   category.NewReader(exec),
		Transactions: transaction.NewReader(exec),
	}
}
