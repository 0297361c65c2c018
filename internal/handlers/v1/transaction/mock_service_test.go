package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/service"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, input service.TransactionInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, id int64) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*transaction.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, query *service.TransactionQuery, cursor *transaction.TransactionCursor) ([]*transaction.Transaction, *transaction.TransactionCursor, error) {
	args := m.Called(ctx, query, cursor)
	txs, _ := args.Get(0).([]*transaction.Transaction)
	next, _ := args.Get(1).(*transaction.TransactionCursor)
	return txs, next, args.Error(2)
}

func (m *mockTransactionService) SearchTransactions(ctx context.Context, text string, cursor *transaction.TransactionCursor) ([]*transaction.Transaction, *transaction.TransactionCursor, error) {
	args := m.Called(ctx, text, cursor)
	txs, _ := args.Get(0).([]*transaction.Transaction)
	next, _ := args.Get(1).(*transaction.TransactionCursor)
	return txs, next, args.Error(2)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, id int64, update service.TransactionUpdate) (*transaction.Transaction, error) {
	args := m.Called(ctx, id, update)
	tx, _ := args.Get(0).(*transaction.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func makeTransactions(n int, createdAt time.Time) []*transaction.Transaction {
	txs := make([]*transaction.Transaction, n)
	for i := range txs {
		txs[i] = &transaction.Transaction{
			ID:         int64(i + 1),
			Amount:     decimal.RequireFromString("25.00"),
			CategoryID: 2,
			AccountID:  1,
			Note:       "Groceries",
			Date:       ledger.NewDate(2025, time.June, 1),
			Type:       ledger.TypeExpense,
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
		}
	}
	return txs
}
