package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/cache"
	"github.com/carson-networks/pocket-ledger/internal/config"
	"github.com/carson-networks/pocket-ledger/internal/events"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/operator"
	"github.com/carson-networks/pocket-ledger/internal/service"
	"github.com/carson-networks/pocket-ledger/internal/storage"
)

// app is the running ledger: storage, the operator, the state cache and the
// services on top of them.
type app struct {
	cfg       *config.Config
	logger    *logrus.Logger
	store     *storage.Storage
	delegator *operator.OperatorDelegator
	cache     *cache.Store
	publisher events.Publisher
	svc       *service.Service
}

func openApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.SetupLogging(cfg.Log)
	if err != nil {
		return nil, err
	}
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		logger.Debugf("Config.Loaded %s", spew.Sdump(cfg))
	}

	store := storage.New(cfg.Database)
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}

	a := &app{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		delegator: operator.NewOperatorDelegator(store, cfg.Operator, logger),
		cache:     cache.New(store, cfg.Cache.RecentTransactions),
		publisher: events.NopPublisher{},
	}

	if cfg.AMQP.URL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("connect change publisher: %w", err)
		}
		a.publisher = publisher
	}

	a.delegator.OnCommit(a.afterCommit)
	a.delegator.Start()

	if err := a.cache.Load(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("load state cache: %w", err)
	}

	a.svc = service.NewService(store, a.delegator, a.cache, cfg.Settings)
	return a, nil
}

// afterCommit refreshes what the action touched and announces the change.
// Failures are logged; the mutation has already committed.
func (a *app) afterCommit(ctx context.Context, result operator.ActionResult) {
	entities := result.Action.Affects()
	log := a.logger.WithFields(logrus.Fields{
		"operationID": result.OperationID,
		"action":      result.Action.Name(),
	})

	if err := a.cache.Refresh(ctx, entities...); err != nil {
		log.WithError(err).Warn("Cache.Refresh.Error")
	}

	msg := events.NewChangeMessage(result.OperationID, result.Action.Name(), entities, time.Now())
	if err := a.publisher.Publish(ctx, msg); err != nil {
		log.WithError(err).Warn("Events.Publish.Error")
	}
}

func (a *app) Close() {
	a.delegator.Stop()
	if err := a.publisher.Close(); err != nil {
		a.logger.WithError(err).Warn("Events.Close.Error")
	}
	if err := a.store.Close(); err != nil {
		a.logger.WithError(err).Warn("Storage.Close.Error")
	}
}
