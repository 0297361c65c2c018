package operator

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/pocket-ledger/internal/config"
	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
	"github.com/carson-networks/pocket-ledger/internal/storage"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

type engine struct {
	t         *testing.T
	storage   *storage.Storage
	delegator *OperatorDelegator
	category  int64
}

func newEngine(t *testing.T, hooks ...CommitHook) *engine {
	t.Helper()
	s := storage.New(config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "ledger.db"),
		BusyTimeout: time.Second,
	})
	require.NoError(t, s.Init(context.Background()))

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	d := NewOperatorDelegator(s, config.OperatorConfig{Workers: 1, QueueSize: 16, ActionTimeout: 5 * time.Second}, logger)
	for _, h := range hooks {
		d.OnCommit(h)
	}
	d.Start()
	t.Cleanup(func() {
		d.Stop()
		_ = s.Close()
	})

	e := &engine{t: t, storage: s, delegator: d}
	create := &actions.CreateCategory{CategoryName: "General"}
	e.process(create)
	e.category = create.CreatedID
	return e
}

func (e *engine) process(action actions.IAction) {
	e.t.Helper()
	_, err := e.delegator.Process(context.Background(), action)
	require.NoError(e.t, err)
}

func (e *engine) account(start string) int64 {
	e.t.Helper()
	create := &actions.CreateAccount{AccountName: "Main", Currency: "INR", StartingBalance: decimal.RequireFromString(start)}
	e.process(create)
	return create.CreatedID
}

func (e *engine) create(accountID int64, amount string, typ ledger.TransactionType) int64 {
	e.t.Helper()
	create := &actions.CreateTransaction{
		AccountID:  accountID,
		CategoryID: e.category,
		Amount:     decimal.RequireFromString(amount),
		Date:       ledger.NewDate(2025, time.April, 10),
		Type:       typ,
	}
	e.process(create)
	return create.CreatedID
}

func (e *engine) balance(accountID int64) string {
	e.t.Helper()
	r, err := e.storage.Read()
	require.NoError(e.t, err)
	acc, err := r.Accounts.FindByID(context.Background(), accountID)
	require.NoError(e.t, err)
	return acc.Balance.String()
}

// assertReconciled checks balance == starting balance + signed sum for every account.
func (e *engine) assertReconciled() {
	e.t.Helper()
	ctx := context.Background()
	r, err := e.storage.Read()
	require.NoError(e.t, err)
	accounts, err := r.Accounts.List(ctx, nil)
	require.NoError(e.t, err)
	for _, acc := range accounts.Accounts {
		txs, err := r.Transactions.List(ctx, &transaction.TransactionFilter{AccountID: &acc.ID})
		require.NoError(e.t, err)
		expected := acc.StartingBalance
		for _, tx := range txs.Transactions {
			expected = expected.Add(tx.Type.Effect(tx.Amount))
		}
		assert.True(e.t, expected.Equal(acc.Balance), "account %d: balance %s, expected %s", acc.ID, acc.Balance, expected)
	}
}

func TestEngine_Scenario(t *testing.T) {
	e := newEngine(t)
	acc := e.account("1000")

	expense := e.create(acc, "200", ledger.TypeExpense)
	assert.Equal(t, "800", e.balance(acc))
	e.assertReconciled()

	income := e.create(acc, "500", ledger.TypeIncome)
	assert.Equal(t, "1300", e.balance(acc))
	e.assertReconciled()

	e.process(&actions.UpdateTransaction{ID: expense, Patch: transaction.TransactionPatch{Amount: omit.From(decimal.NewFromInt(300))}})
	assert.Equal(t, "1200", e.balance(acc))
	e.assertReconciled()

	e.process(&actions.DeleteTransaction{ID: income})
	assert.Equal(t, "700", e.balance(acc))
	e.assertReconciled()
}

func TestEngine_CreateRoundTrip(t *testing.T) {
	e := newEngine(t)
	acc := e.account("0")
	id := e.create(acc, "12.34", ledger.TypeExpense)

	r, err := e.storage.Read()
	require.NoError(t, err)
	tx, err := r.Transactions.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "12.34", tx.Amount.String())
	assert.Equal(t, acc, tx.AccountID)
	assert.Equal(t, e.category, tx.CategoryID)
	assert.Equal(t, "2025-04-10", tx.Date.String())
	assert.Equal(t, "-12.34", e.balance(acc))
}

func TestEngine_ReplayDoubleApplies(t *testing.T) {
	e := newEngine(t)
	acc := e.account("100")

	action := &actions.CreateTransaction{AccountID: acc, CategoryID: e.category, Amount: decimal.NewFromInt(10), Date: ledger.NewDate(2025, 4, 1), Type: ledger.TypeExpense}
	e.process(action)
	e.process(action)

	assert.Equal(t, "80", e.balance(acc))
	e.assertReconciled()
}

func TestEngine_UpdateAmount(t *testing.T) {
	e := newEngine(t)
	acc := e.account("1000")
	id := e.create(acc, "100", ledger.TypeExpense)

	e.process(&actions.UpdateTransaction{ID: id, Patch: transaction.TransactionPatch{Amount: omit.From(decimal.NewFromInt(150))}})

	assert.Equal(t, "850", e.balance(acc))
	e.assertReconciled()
}

func TestEngine_MoveBetweenAccounts(t *testing.T) {
	e := newEngine(t)
	a := e.account("1000")
	b := e.account("500")
	id := e.create(a, "50", ledger.TypeExpense)

	e.process(&actions.UpdateTransaction{ID: id, Patch: transaction.TransactionPatch{AccountID: omit.From(b)}})

	assert.Equal(t, "1000", e.balance(a))
	assert.Equal(t, "450", e.balance(b))
	e.assertReconciled()
}

func TestEngine_FlipType(t *testing.T) {
	e := newEngine(t)
	acc := e.account("0")
	id := e.create(acc, "40", ledger.TypeExpense)

	e.process(&actions.UpdateTransaction{ID: id, Patch: transaction.TransactionPatch{Type: omit.From(ledger.TypeIncome)}})

	assert.Equal(t, "40", e.balance(acc))
	e.assertReconciled()
}

func TestEngine_DeleteIncome(t *testing.T) {
	e := newEngine(t)
	acc := e.account("1000")
	id := e.create(acc, "200", ledger.TypeIncome)
	assert.Equal(t, "1200", e.balance(acc))

	e.process(&actions.DeleteTransaction{ID: id})

	assert.Equal(t, "1000", e.balance(acc))
	e.assertReconciled()
}

func TestEngine_OverdraftAllowed(t *testing.T) {
	e := newEngine(t)
	acc := e.account("10")
	e.create(acc, "25", ledger.TypeExpense)
	assert.Equal(t, "-15", e.balance(acc))
}

func TestEngine_DeleteMissingTransaction(t *testing.T) {
	e := newEngine(t)
	_, err := e.delegator.Process(context.Background(), &actions.DeleteTransaction{ID: 999})
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestEngine_CreateAgainstMissingAccount(t *testing.T) {
	e := newEngine(t)
	_, err := e.delegator.Process(context.Background(), &actions.CreateTransaction{
		AccountID: 999, CategoryID: e.category, Amount: decimal.NewFromInt(1), Date: ledger.NewDate(2025, 1, 1), Type: ledger.TypeExpense,
	})
	var se *ledger.StorageError
	assert.ErrorAs(t, err, &se)
}

func TestEngine_DeleteCategoryKeepsInvariant(t *testing.T) {
	e := newEngine(t)
	a := e.account("1000")
	b := e.account("1000")
	e.create(a, "100", ledger.TypeExpense)
	e.create(b, "300", ledger.TypeIncome)

	other := &actions.CreateCategory{CategoryName: "Other"}
	e.process(other)
	kept := &actions.CreateTransaction{AccountID: a, CategoryID: other.CreatedID, Amount: decimal.NewFromInt(5), Date: ledger.NewDate(2025, 4, 2), Type: ledger.TypeExpense}
	e.process(kept)

	del := &actions.DeleteCategory{ID: e.category}
	e.process(del)

	assert.Equal(t, 2, del.RemovedTransactions)
	assert.Equal(t, "995", e.balance(a))
	assert.Equal(t, "1000", e.balance(b))
	e.assertReconciled()
}

func TestEngine_DeleteAccountCascades(t *testing.T) {
	e := newEngine(t)
	a := e.account("0")
	id := e.create(a, "10", ledger.TypeExpense)

	e.process(&actions.DeleteAccount{ID: a})

	r, err := e.storage.Read()
	require.NoError(t, err)
	_, err = r.Transactions.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestEngine_RepairBalance(t *testing.T) {
	e := newEngine(t)
	acc := e.account("100")
	e.create(acc, "30", ledger.TypeExpense)

	// Simulate drift left behind by an interrupted write.
	w, err := e.storage.Write(context.Background())
	require.NoError(t, err)
	require.NoError(t, w.Accounts.UpdateBalance(context.Background(), acc, decimal.NewFromInt(5)))
	require.NoError(t, w.Commit())

	repair := &actions.RepairBalance{AccountID: acc}
	e.process(repair)

	assert.Equal(t, "5", repair.Previous.String())
	assert.Equal(t, "70", e.balance(acc))
	e.assertReconciled()
}

// failingAdjust writes a transaction and then fails like a broken balance update.
type failingAdjust struct {
	actions.CreateTransaction
}

func (f *failingAdjust) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		Amount: f.Amount, CategoryID: f.CategoryID, AccountID: f.AccountID, Date: f.Date, Type: f.Type,
	})
	if err != nil {
		return err
	}
	return &ledger.ReconciliationError{Op: "create", TransactionID: id, AccountID: f.AccountID, Err: errors.New("balance write failed")}
}

func TestEngine_RollbackOnFailedAdjustment(t *testing.T) {
	e := newEngine(t)
	acc := e.account("1000")

	_, err := e.delegator.Process(context.Background(), &failingAdjust{actions.CreateTransaction{
		AccountID: acc, CategoryID: e.category, Amount: decimal.NewFromInt(10), Date: ledger.NewDate(2025, 4, 1), Type: ledger.TypeExpense,
	}})

	var re *ledger.ReconciliationError
	require.ErrorAs(t, err, &re)
	assert.True(t, re.RolledBack)

	r, rerr := e.storage.Read()
	require.NoError(t, rerr)
	res, rerr := r.Transactions.List(context.Background(), nil)
	require.NoError(t, rerr)
	assert.Empty(t, res.Transactions)
	assert.Equal(t, "1000", e.balance(acc))
}

func TestEngine_CancelledBeforeStart(t *testing.T) {
	e := newEngine(t)
	acc := e.account("1000")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.delegator.Process(ctx, &actions.CreateTransaction{
		AccountID: acc, CategoryID: e.category, Amount: decimal.NewFromInt(10), Date: ledger.NewDate(2025, 4, 1), Type: ledger.TypeExpense,
	})
	assert.ErrorIs(t, err, context.Canceled)

	// A later action on the same worker proves the queue has been drained.
	e.create(acc, "1", ledger.TypeExpense)
	assert.Equal(t, "999", e.balance(acc))
}

func TestEngine_ConcurrentWritersSerialize(t *testing.T) {
	e := newEngine(t)
	acc := e.account("100")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.delegator.Process(context.Background(), &actions.CreateTransaction{
				AccountID: acc, CategoryID: e.category, Amount: decimal.NewFromInt(1), Date: ledger.NewDate(2025, 4, 1), Type: ledger.TypeExpense,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, "80", e.balance(acc))
	e.assertReconciled()
}

func TestEngine_CommitHooks(t *testing.T) {
	var mu sync.Mutex
	var results []ActionResult
	e := newEngine(t, func(_ context.Context, r ActionResult) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, r)
	})
	acc := e.account("0")

	opID, err := e.delegator.Process(context.Background(), &actions.CreateTransaction{
		AccountID: acc, CategoryID: e.category, Amount: decimal.NewFromInt(1), Date: ledger.NewDate(2025, 4, 1), Type: ledger.TypeIncome,
	})
	require.NoError(t, err)
	_, err = e.delegator.Process(context.Background(), &actions.DeleteTransaction{ID: 999})
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, results, 3, "category, account and transaction commits; the failed delete runs no hook")
	last := results[2]
	assert.Equal(t, opID, last.OperationID)
	assert.Equal(t, "CreateTransaction", last.Action.Name())
}

func TestEngine_Exclusive(t *testing.T) {
	e := newEngine(t)
	acc := e.account("0")

	err := e.delegator.Exclusive(context.Background(), func(ctx context.Context) error {
		return e.storage.Reset(ctx)
	})
	require.NoError(t, err)

	r, err := e.storage.Read()
	require.NoError(t, err)
	_, err = r.Accounts.FindByID(context.Background(), acc)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestEngine_ProcessAfterStop(t *testing.T) {
	e := newEngine(t)
	e.delegator.Stop()

	_, err := e.delegator.Process(context.Background(), &actions.CreateCategory{CategoryName: "Late"})
	assert.ErrorIs(t, err, ErrStopped)
}
