package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

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

func newStorage(t *testing.T) *storage.Storage {
	t.Helper()
	s := storage.New(config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "ledger.db"),
		BusyTimeout: time.Second,
	})
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStorage_UseBeforeInit(t *testing.T) {
	s := newStorage(t)

	_, err := s.Read()
	assert.ErrorIs(t, err, ledger.ErrNotInitialized)

	_, err = s.Write(context.Background())
	assert.ErrorIs(t, err, ledger.ErrNotInitialized)

	assert.ErrorIs(t, s.Reset(context.Background()), ledger.ErrNotInitialized)
}

func TestStorage_InitIsIdempotent(t *testing.T) {
	s := newStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.Init(ctx))

	version, dirty, err := s.MigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}

func TestStorage_WriteCommitAndRollback(t *testing.T) {
	s := newStorage(t)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))

	w, err := s.Write(ctx)
	require.NoError(t, err)
	committedID, err := w.Accounts.Insert(ctx, &account.AccountCreate{Name: "Kept", Currency: "USD", StartingBalance: decimal.NewFromInt(10)})
	require.NoError(t, err)
	require.NoError(t, w.Commit())

	w, err = s.Write(ctx)
	require.NoError(t, err)
	_, err = w.Accounts.Insert(ctx, &account.AccountCreate{Name: "Dropped", Currency: "USD"})
	require.NoError(t, err)
	require.NoError(t, w.Rollback())

	r, err := s.Read()
	require.NoError(t, err)
	res, err := r.Accounts.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, res.Accounts, 1)
	assert.Equal(t, committedID, res.Accounts[0].ID)
	assert.True(t, decimal.NewFromInt(10).Equal(res.Accounts[0].Balance))
}

func TestStorage_ForeignKeysEnforced(t *testing.T) {
	s := newStorage(t)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))

	w, err := s.Write(ctx)
	require.NoError(t, err)
	defer func() { _ = w.Rollback() }()

	_, err = w.Transactions.Insert(ctx, &transaction.TransactionCreate{
		Amount:     decimal.NewFromInt(5),
		CategoryID: 404,
		AccountID:  404,
		Date:       ledger.NewDate(2025, time.January, 1),
		Type:       ledger.TypeExpense,
	})
	var se *ledger.StorageError
	assert.ErrorAs(t, err, &se)
}

func TestStorage_ResetClearsTables(t *testing.T) {
	s := newStorage(t)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))

	w, err := s.Write(ctx)
	require.NoError(t, err)
	_, err = w.Categories.Insert(ctx, &category.CategoryCreate{Name: "Food"})
	require.NoError(t, err)
	require.NoError(t, w.Commit())

	require.NoError(t, s.Reset(ctx))

	r, err := s.Read()
	require.NoError(t, err)
	n, err := r.Categories.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWriter_WithoutTransaction(t *testing.T) {
	w := &storage.Writer{}
	assert.ErrorIs(t, w.Commit(), storage.ErrNoTransaction)
	assert.ErrorIs(t, w.Rollback(), storage.ErrNoTransaction)
}

func TestDSN(t *testing.T) {
	dsn := storage.DSN("/tmp/x.db", 5*time.Second)
	assert.Contains(t, dsn, "file:/tmp/x.db?")
	assert.Contains(t, dsn, "foreign_keys%281%29")
	assert.Contains(t, dsn, "busy_timeout%285000%29")
}
