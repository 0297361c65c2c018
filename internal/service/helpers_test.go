package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/pocket-ledger/internal/config"
	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/operator"
	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
	"github.com/carson-networks/pocket-ledger/internal/storage"
)

// stubStore serves a fixed Reader, usually built from repository mocks.
type stubStore struct {
	reader *storage.Reader
	resets int
}

func (s *stubStore) Read() (*storage.Reader, error) {
	if s.reader == nil {
		return nil, ledger.ErrNotInitialized
	}
	return s.reader, nil
}

func (s *stubStore) Reset(context.Context) error {
	s.resets++
	return nil
}

type mockProcessor struct {
	mock.Mock
}

func newMockProcessor(t *testing.T) *mockProcessor {
	p := &mockProcessor{}
	p.Test(t)
	t.Cleanup(func() { p.AssertExpectations(t) })
	return p
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) (string, error) {
	args := m.Called(ctx, action)
	return args.String(0), args.Error(1)
}

func (m *mockProcessor) Exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, mock.Anything)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

// Now advances the clock by one second on every call.
func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// ledgerEnv is a service wired to a real SQLite file and a running engine.
type ledgerEnv struct {
	t       *testing.T
	storage *storage.Storage
	clock   *testClock
	svc     *Service
}

func newLedgerEnv(t *testing.T) *ledgerEnv {
	t.Helper()
	clock := &testClock{now: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)}
	s := storage.New(config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "ledger.db"),
		BusyTimeout: time.Second,
	}).WithClock(clock.Now)
	require.NoError(t, s.Init(context.Background()))

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	d := operator.NewOperatorDelegator(s, config.OperatorConfig{
		Workers:       1,
		QueueSize:     16,
		ActionTimeout: 5 * time.Second,
	}, logger)
	d.Start()
	t.Cleanup(func() {
		d.Stop()
		_ = s.Close()
	})

	svc := NewService(s, d, nil, config.Settings{Currency: "INR", Theme: "system"})
	svc.Transaction.now = clock.Now
	return &ledgerEnv{t: t, storage: s, clock: clock, svc: svc}
}

func (e *ledgerEnv) account(name, starting string) int64 {
	e.t.Helper()
	id, err := e.svc.Account.CreateAccount(context.Background(), AccountInput{
		Name:            name,
		StartingBalance: decimal.RequireFromString(starting),
	})
	require.NoError(e.t, err)
	return id
}

func (e *ledgerEnv) category(name string) int64 {
	e.t.Helper()
	id, err := e.svc.Category.CreateCategory(context.Background(), CategoryInput{Name: name})
	require.NoError(e.t, err)
	return id
}

func (e *ledgerEnv) transaction(accountID, categoryID int64, amount, txType, date, note string) int64 {
	e.t.Helper()
	id, err := e.svc.Transaction.CreateTransaction(context.Background(), TransactionInput{
		AccountID:  accountID,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString(amount),
		Note:       note,
		Date:       date,
		Type:       txType,
	})
	require.NoError(e.t, err)
	return id
}

func (e *ledgerEnv) balance(accountID int64) decimal.Decimal {
	e.t.Helper()
	acc, err := e.svc.Account.GetAccount(context.Background(), accountID)
	require.NoError(e.t, err)
	return acc.Balance
}

func (e *ledgerEnv) assertBalance(accountID int64, want string) {
	e.t.Helper()
	got := e.balance(accountID)
	assert.True(e.t, got.Equal(decimal.RequireFromString(want)), "balance: want %s, got %s", want, got)
}

// assertReconciled checks the stored balance against the ledger.
func (e *ledgerEnv) assertReconciled(accountID int64) {
	e.t.Helper()
	audit, err := e.svc.Account.AuditAccount(context.Background(), accountID)
	require.NoError(e.t, err)
	assert.True(e.t, audit.InBalance(), "account %d drifted by %s", accountID, audit.Drift)
}

func assertValidation(t *testing.T, err error, field string) {
	t.Helper()
	var ve *ledger.ValidationError
	if assert.ErrorAs(t, err, &ve) {
		assert.Equal(t, field, ve.Field)
	}
}
