package transaction_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/pocket-ledger/internal/config"
	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/storage"
	"github.com/carson-networks/pocket-ledger/internal/storage/account"
	"github.com/carson-networks/pocket-ledger/internal/storage/category"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

type fixture struct {
	storage   *storage.Storage
	clock     time.Time
	account   int64
	other     int64
	food      int64
	salary    int64
	transport int64
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{clock: time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)}
	f.storage = storage.New(config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "ledger.db"),
		BusyTimeout: time.Second,
	}).WithClock(func() time.Time {
		f.clock = f.clock.Add(time.Second)
		return f.clock
	})
	t.Cleanup(func() { _ = f.storage.Close() })
	require.NoError(t, f.storage.Init(context.Background()))

	ctx := context.Background()
	w, err := f.storage.Write(ctx)
	require.NoError(t, err)
	f.account, err = w.Accounts.Insert(ctx, &account.AccountCreate{Name: "Main", Currency: "USD"})
	require.NoError(t, err)
	f.other, err = w.Accounts.Insert(ctx, &account.AccountCreate{Name: "Savings", Currency: "USD"})
	require.NoError(t, err)
	f.food, err = w.Categories.Insert(ctx, &category.CategoryCreate{Name: "Food"})
	require.NoError(t, err)
	f.salary, err = w.Categories.Insert(ctx, &category.CategoryCreate{Name: "Salary"})
	require.NoError(t, err)
	f.transport, err = w.Categories.Insert(ctx, &category.CategoryCreate{Name: "Transport"})
	require.NoError(t, err)
	require.NoError(t, w.Commit())
	return f
}

func (f *fixture) insert(t *testing.T, c transaction.TransactionCreate) int64 {
	t.Helper()
	ctx := context.Background()
	w, err := f.storage.Write(ctx)
	require.NoError(t, err)
	id, err := w.Transactions.Insert(ctx, &c)
	require.NoError(t, err)
	require.NoError(t, w.Commit())
	return id
}

func (f *fixture) reader(t *testing.T) *storage.Reader {
	t.Helper()
	r, err := f.storage.Read()
	require.NoError(t, err)
	return r
}

func day(d int) ledger.Date {
	return ledger.NewDate(2025, time.March, d)
}

func ptr[T any](v T) *T {
	return &v
}

func TestTransactions_InsertAndFind(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	id := f.insert(t, transaction.TransactionCreate{
		Amount:     decimal.RequireFromString("12.34"),
		CategoryID: f.food,
		AccountID:  f.account,
		Note:       "Lunch",
		Date:       day(3),
		Type:       ledger.TypeExpense,
	})

	got, err := f.reader(t).Transactions.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.True(t, decimal.RequireFromString("12.34").Equal(got.Amount))
	assert.Equal(t, "Lunch", got.Note)
	assert.Equal(t, "2025-03-03", got.Date.String())
	assert.Equal(t, ledger.TypeExpense, got.Type)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)

	_, err = f.reader(t).Transactions.FindByID(ctx, id+100)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestTransactions_ListOrderAndFilters(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	older := f.insert(t, transaction.TransactionCreate{Amount: decimal.NewFromInt(5), CategoryID: f.food, AccountID: f.account, Note: "Coffee", Date: day(1), Type: ledger.TypeExpense})
	first := f.insert(t, transaction.TransactionCreate{Amount: decimal.NewFromInt(7), CategoryID: f.food, AccountID: f.account, Note: "Big LUNCH", Date: day(2), Type: ledger.TypeExpense})
	second := f.insert(t, transaction.TransactionCreate{Amount: decimal.NewFromInt(900), CategoryID: f.salary, AccountID: f.other, Note: "Pay 100%", Date: day(2), Type: ledger.TypeIncome})

	res, err := f.reader(t).Transactions.List(ctx, nil)
	require.NoError(t, err)
	ids := make([]int64, len(res.Transactions))
	for i, tx := range res.Transactions {
		ids[i] = tx.ID
	}
	assert.Equal(t, []int64{second, first, older}, ids)
	assert.Nil(t, res.NextCursor)

	res, err = f.reader(t).Transactions.List(ctx, &transaction.TransactionFilter{NoteContains: "lunch"})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, first, res.Transactions[0].ID)

	res, err = f.reader(t).Transactions.List(ctx, &transaction.TransactionFilter{NoteContains: "%"})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, second, res.Transactions[0].ID)

	res, err = f.reader(t).Transactions.List(ctx, &transaction.TransactionFilter{
		Start: ptr(day(2)),
		End:   ptr(day(2)),
		Type:  ptr(ledger.TypeExpense),
	})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, first, res.Transactions[0].ID)

	res, err = f.reader(t).Transactions.List(ctx, &transaction.TransactionFilter{AccountID: ptr(f.other)})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)

	res, err = f.reader(t).Transactions.List(ctx, &transaction.TransactionFilter{CategoryID: ptr(f.food)})
	require.NoError(t, err)
	assert.Len(t, res.Transactions, 2)
}

func TestTransactions_ListPagination(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		f.insert(t, transaction.TransactionCreate{Amount: decimal.NewFromInt(int64(i)), CategoryID: f.food, AccountID: f.account, Date: day(i), Type: ledger.TypeExpense})
	}
	pin := f.clock

	res, err := f.reader(t).Transactions.List(ctx, &transaction.TransactionFilter{Limit: 2, MaxCreationTime: &pin})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 2)
	require.NotNil(t, res.NextCursor)
	assert.Equal(t, 2, res.NextCursor.Position)
	assert.Equal(t, pin, res.NextCursor.MaxCreationTime)

	// Rows created after the pinned time never show up on later pages.
	f.insert(t, transaction.TransactionCreate{Amount: decimal.NewFromInt(99), CategoryID: f.food, AccountID: f.account, Date: day(9), Type: ledger.TypeExpense})

	res, err = f.reader(t).Transactions.List(ctx, &transaction.TransactionFilter{Limit: 2, Offset: 4, MaxCreationTime: &pin})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "2025-03-01", res.Transactions[0].Date.String())
	assert.Nil(t, res.NextCursor)
}

func TestTransactions_UpdatePatch(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	id := f.insert(t, transaction.TransactionCreate{Amount: decimal.NewFromInt(100), CategoryID: f.food, AccountID: f.account, Note: "a", Date: day(1), Type: ledger.TypeExpense})

	before, err := f.reader(t).Transactions.FindByID(ctx, id)
	require.NoError(t, err)

	w, err := f.storage.Write(ctx)
	require.NoError(t, err)
	require.NoError(t, w.Transactions.Update(ctx, id, &transaction.TransactionPatch{
		Amount:    omit.From(decimal.NewFromInt(150)),
		AccountID: omit.From(f.other),
	}))
	assert.ErrorIs(t, w.Transactions.Update(ctx, id+100, &transaction.TransactionPatch{}), ledger.ErrNotFound)
	require.NoError(t, w.Commit())

	after, err := f.reader(t).Transactions.FindByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(after.Amount))
	assert.Equal(t, f.other, after.AccountID)
	assert.Equal(t, "a", after.Note)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestTransactionPatch_IsEmpty(t *testing.T) {
	assert.True(t, (&transaction.TransactionPatch{}).IsEmpty())
	assert.False(t, (&transaction.TransactionPatch{Note: omit.From("")}).IsEmpty())
	assert.False(t, (&transaction.TransactionPatch{Type: omit.From(ledger.TypeIncome)}).IsEmpty())
}

func TestTransactions_DeleteAndCascade(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	id := f.insert(t, transaction.TransactionCreate{Amount: decimal.NewFromInt(1), CategoryID: f.food, AccountID: f.account, Date: day(1), Type: ledger.TypeExpense})
	f.insert(t, transaction.TransactionCreate{Amount: decimal.NewFromInt(2), CategoryID: f.food, AccountID: f.account, Date: day(1), Type: ledger.TypeExpense})
	f.insert(t, transaction.TransactionCreate{Amount: decimal.NewFromInt(3), CategoryID: f.salary, AccountID: f.account, Date: day(1), Type: ledger.TypeIncome})

	n, err := f.reader(t).Transactions.CountByCategory(ctx, f.food)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	w, err := f.storage.Write(ctx)
	require.NoError(t, err)
	require.NoError(t, w.Transactions.Delete(ctx, id))
	assert.ErrorIs(t, w.Transactions.Delete(ctx, id), ledger.ErrNotFound)
	require.NoError(t, w.Categories.Delete(ctx, f.food))
	require.NoError(t, w.Commit())

	n, err = f.reader(t).Transactions.CountByCategory(ctx, f.food)
	require.NoError(t, err)
	assert.Zero(t, n)

	res, err := f.reader(t).Transactions.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, res.Transactions, 1)
}

func TestTransactions_Aggregates(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.insert(t, transaction.TransactionCreate{Amount: decimal.RequireFromString("10.10"), CategoryID: f.food, AccountID: f.account, Date: day(1), Type: ledger.TypeExpense})
	f.insert(t, transaction.TransactionCreate{Amount: decimal.RequireFromString("4.90"), CategoryID: f.food, AccountID: f.account, Date: day(1), Type: ledger.TypeExpense})
	f.insert(t, transaction.TransactionCreate{Amount: decimal.NewFromInt(15), CategoryID: f.transport, AccountID: f.other, Date: day(3), Type: ledger.TypeExpense})
	f.insert(t, transaction.TransactionCreate{Amount: decimal.NewFromInt(500), CategoryID: f.salary, AccountID: f.account, Date: day(2), Type: ledger.TypeIncome})
	f.insert(t, transaction.TransactionCreate{Amount: decimal.NewFromInt(8), CategoryID: f.food, AccountID: f.account, Date: day(20), Type: ledger.TypeExpense})

	r := f.reader(t).Transactions
	expense := ledger.TypeExpense
	filter := &transaction.AggregateFilter{Start: day(1), End: day(10), Type: &expense}

	sum, err := r.Sum(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, "30", sum.String())

	perCategory, err := r.SumByCategory(ctx, filter)
	require.NoError(t, err)
	require.Len(t, perCategory, 2)
	// Food and Transport both total 15; the lower id wins the tie.
	assert.Equal(t, f.food, perCategory[0].CategoryID)
	assert.Equal(t, f.transport, perCategory[1].CategoryID)

	perDay, err := r.SumByDay(ctx, filter)
	require.NoError(t, err)
	require.Len(t, perDay, 2)
	assert.Equal(t, "2025-03-01", perDay[0].Date.String())
	assert.Equal(t, "15", perDay[0].Total.String())
	assert.Equal(t, "2025-03-03", perDay[1].Date.String())

	filter.AccountID = &f.account
	sum, err = r.Sum(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, "15", sum.String())

	sum, err = r.Sum(ctx, &transaction.AggregateFilter{Start: day(25), End: day(28), Type: &expense})
	require.NoError(t, err)
	assert.True(t, sum.IsZero())

	_, err = r.Sum(ctx, &transaction.AggregateFilter{Start: day(5), End: day(1)})
	var verr *ledger.ValidationError
	assert.ErrorAs(t, err, &verr)
}
