package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/storage"
	"github.com/carson-networks/pocket-ledger/internal/storage/account"
	"github.com/carson-networks/pocket-ledger/internal/storage/category"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

// Source opens readers on the backing store.
type Source interface {
	Read() (*storage.Reader, error)
}

// Snapshot is a copy of the cached state. Mutating it does not affect the Store.
type Snapshot struct {
	Accounts           []account.Account
	Categories         []category.Category
	RecentTransactions []transaction.Transaction
	LoadedAt           time.Time
}

// Store keeps the last-known accounts, categories and most recent
// transactions for display. It is refreshed from storage after each commit
// and never consulted for balances or totals.
type Store struct {
	source      Source
	recentLimit int
	now         func() time.Time
	group       singleflight.Group

	mu         sync.RWMutex
	accounts   []account.Account
	categories []category.Category
	recent     []transaction.Transaction
	loadedAt   time.Time
}

func New(source Source, recentLimit int) *Store {
	return &Store{
		source:      source,
		recentLimit: recentLimit,
		now:         time.Now,
	}
}

// Load reads every collection concurrently.
func (s *Store) Load(ctx context.Context) error {
	return s.Refresh(ctx, ledger.AllEntities...)
}

// Refresh re-reads the named collections. Concurrent refreshes of the same
// collection share one query.
func (s *Store) Refresh(ctx context.Context, entities ...ledger.Entity) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, entity := range dedupe(entities) {
		g.Go(func() error {
			_, err, _ := s.group.Do(string(entity), func() (interface{}, error) {
				return nil, s.refreshOne(ctx, entity)
			})
			return err
		})
	}
	return g.Wait()
}

func (s *Store) refreshOne(ctx context.Context, entity ledger.Entity) error {
	r, err := s.source.Read()
	if err != nil {
		return err
	}

	switch entity {
	case ledger.EntityAccounts:
		res, err := r.Accounts.List(ctx, nil)
		if err != nil {
			return err
		}
		accounts := make([]account.Account, len(res.Accounts))
		for i, a := range res.Accounts {
			accounts[i] = *a
		}
		s.mu.Lock()
		s.accounts = accounts
		s.loadedAt = s.now()
		s.mu.Unlock()

	case ledger.EntityCategories:
		res, err := r.Categories.List(ctx)
		if err != nil {
			return err
		}
		categories := make([]category.Category, len(res))
		for i, c := range res {
			categories[i] = *c
		}
		s.mu.Lock()
		s.categories = categories
		s.loadedAt = s.now()
		s.mu.Unlock()

	case ledger.EntityTransactions:
		res, err := r.Transactions.List(ctx, &transaction.TransactionFilter{Limit: s.recentLimit})
		if err != nil {
			return err
		}
		recent := make([]transaction.Transaction, len(res.Transactions))
		for i, tx := range res.Transactions {
			recent[i] = *tx
		}
		s.mu.Lock()
		s.recent = recent
		s.loadedAt = s.now()
		s.mu.Unlock()

	default:
		return fmt.Errorf("cache: unknown entity %q", entity)
	}
	return nil
}

// Reset forgets everything. Callers reload with Load.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = nil
	s.categories = nil
	s.recent = nil
	s.loadedAt = time.Time{}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Accounts:           append([]account.Account(nil), s.accounts...),
		Categories:         append([]category.Category(nil), s.categories...),
		RecentTransactions: append([]transaction.Transaction(nil), s.recent...),
		LoadedAt:           s.loadedAt,
	}
}

func dedupe(entities []ledger.Entity) []ledger.Entity {
	seen := make(map[ledger.Entity]bool, len(entities))
	out := make([]ledger.Entity, 0, len(entities))
	for _, e := range entities {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}
