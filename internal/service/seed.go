package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
)

// SeedService creates first-run data and resets the ledger.
type SeedService struct {
	store     Store
	processor Processor
	cache     StateCache
	currency  string
}

func NewSeedService(store Store, processor Processor, cache StateCache, currency string) *SeedService {
	return &SeedService{store: store, processor: processor, cache: cache, currency: currency}
}

// SeedDefaultCategories creates the default categories when there are none
// and returns how many were created.
func (s *SeedService) SeedDefaultCategories(ctx context.Context) (int, error) {
	action := &actions.SeedCategories{}
	if _, err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Created, nil
}

// SeedSampleData fills an empty ledger with the default categories, a main
// account and sample transactions dated relative to now. It reports false
// when categories already existed and nothing was written.
func (s *SeedService) SeedSampleData(ctx context.Context, now time.Time) (bool, error) {
	action := &actions.SeedSampleData{Now: now, Currency: s.currency, StartingBalance: decimal.Zero}
	if _, err := s.processor.Process(ctx, action); err != nil {
		return false, err
	}
	return action.Seeded, nil
}

// Reset drops every record by re-creating the schema while no action runs,
// then reloads the state cache.
func (s *SeedService) Reset(ctx context.Context) error {
	err := s.processor.Exclusive(ctx, func(ctx context.Context) error {
		return s.store.Reset(ctx)
	})
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	s.cache.Reset()
	return s.cache.Load(ctx)
}
