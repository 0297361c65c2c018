package operator

import (
	"context"
	"errors"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	delegator *OperatorDelegator
}

func NewOperator(d *OperatorDelegator) *Operator {
	return &Operator{delegator: d}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.delegator.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller gave up while the item sat in the queue.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	o.delegator.exclusive.RLock()
	defer o.delegator.exclusive.RUnlock()

	result := ActionResult{
		OperationID: uuid.Must(uuid.NewV4()).String(),
		Action:      item.action,
	}
	log := o.delegator.logger.WithFields(logrus.Fields{
		"action":      item.action.Name(),
		"operationID": result.OperationID,
	})
	if o.delegator.logger.IsLevelEnabled(logrus.DebugLevel) {
		log.Debugf("Operator.Action.Start\n%s", spew.Sdump(item.action))
	}

	// Once started, an action finishes or rolls back on its own deadline.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(item.ctx), o.delegator.actionTimeout)
	defer cancel()

	start := time.Now()
	err := o.perform(ctx, item.action)
	result.Duration = time.Since(start)
	log = log.WithField("durationMs", result.Duration.Milliseconds())

	if err != nil {
		log.WithError(err).Warn("Operator.Action.Failed")
		item.response <- ActionItemResponse{err: err}
		return
	}
	log.Info("Operator.Action.Committed")

	for _, hook := range o.delegator.hooks {
		hook(ctx, result)
	}

	item.response <- ActionItemResponse{operationID: result.OperationID}
}

func (o *Operator) perform(ctx context.Context, action actions.IAction) error {
	writer, err := o.delegator.storage.Write(ctx)
	if err != nil {
		return err
	}

	err = action.Perform(ctx, writer)
	if err != nil {
		rollbackErr := writer.Rollback()
		if rollbackErr != nil {
			o.delegator.logger.WithError(rollbackErr).Error("Operator.Action.RollbackFailed")
		}
		var recErr *ledger.ReconciliationError
		if errors.As(err, &recErr) {
			recErr.RolledBack = rollbackErr == nil
		}
		return err
	}

	return writer.Commit()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	operationID string
	err         error
}

// ActionResult describes a committed action to the commit hooks.
type ActionResult struct {
	OperationID string
	Action      actions.IAction
	Duration    time.Duration
}
