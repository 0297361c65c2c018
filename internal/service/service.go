package service

import (
	"context"

	"github.com/carson-networks/pocket-ledger/internal/config"
	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
	"github.com/carson-networks/pocket-ledger/internal/storage"
)

// Processor runs ledger mutations. It is satisfied by operator.OperatorDelegator.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) (string, error)
	Exclusive(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store is the read and maintenance side of storage.
type Store interface {
	Read() (*storage.Reader, error)
	Reset(ctx context.Context) error
}

// StateCache is the display cache refreshed after commits.
type StateCache interface {
	Reset()
	Load(ctx context.Context) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Category    *CategoryService
	Stats       *StatsService
	Export      *ExportService
	Seed        *SeedService
	Settings    config.Settings
}

// NewService wires the services around one store and one processor.
func NewService(store Store, processor Processor, cache StateCache, settings config.Settings) *Service {
	return &Service{
		Transaction: NewTransactionService(store, processor),
		Account:     NewAccountService(store, processor, settings.Currency),
		Category:    NewCategoryService(store, processor),
		Stats:       NewStatsService(store),
		Export:      NewExportService(store),
		Seed:        NewSeedService(store, processor, cache, settings.Currency),
		Settings:    settings,
	}
}
