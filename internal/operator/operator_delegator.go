package operator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/config"
	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
	"github.com/carson-networks/pocket-ledger/internal/storage"
)

// ErrStopped is returned by Process after Stop.
var ErrStopped = errors.New("operator stopped")

// CommitHook runs on the worker after an action commits, before the caller
// is answered.
type CommitHook func(ctx context.Context, result ActionResult)

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage       *storage.Storage
	logger        *logrus.Logger
	queue         chan ActionItem
	numWorkers    int
	actionTimeout time.Duration
	hooks         []CommitHook

	// Held shared by each running action and exclusively by Exclusive.
	exclusive sync.RWMutex

	stateMu  sync.RWMutex
	stopped  bool
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(s *storage.Storage, cfg config.OperatorConfig, logger *logrus.Logger) *OperatorDelegator {
	numWorkers := cfg.Workers
	if numWorkers < 1 {
		numWorkers = 1
	}
	queueSize := cfg.QueueSize
	if queueSize < 1 {
		queueSize = 1000
	}
	timeout := cfg.ActionTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OperatorDelegator{
		storage:       s,
		logger:        logger,
		queue:         make(chan ActionItem, queueSize),
		numWorkers:    numWorkers,
		actionTimeout: timeout,
	}
}

// OnCommit registers hook. Hooks must be registered before Start.
func (d *OperatorDelegator) OnCommit(hook CommitHook) {
	d.hooks = append(d.hooks, hook)
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop drains the queue and waits for the workers to exit.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.stateMu.Lock()
		d.stopped = true
		close(d.queue)
		d.stateMu.Unlock()
		d.wg.Wait()
	})
}

// Process queues action and waits for its outcome. It returns the operation
// id assigned to the committed action. If ctx ends first the action may still
// commit later.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) (string, error) {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.stateMu.RLock()
	if d.stopped {
		d.stateMu.RUnlock()
		return "", ErrStopped
	}
	select {
	case d.queue <- item:
	case <-ctx.Done():
		d.stateMu.RUnlock()
		return "", ctx.Err()
	}
	d.stateMu.RUnlock()

	select {
	case resp := <-respCh:
		return resp.operationID, resp.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Exclusive runs fn once every in-flight action has finished, holding off
// new ones until fn returns.
func (d *OperatorDelegator) Exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	d.exclusive.Lock()
	defer d.exclusive.Unlock()
	return fn(ctx)
}
