package service

import (
	"context"
	"strings"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

const defaultLimit = 20

// TransactionInput is an unvalidated new transaction. Date is YYYY-MM-DD and
// Type is "expense" or "income".
type TransactionInput struct {
	AccountID  int64
	CategoryID int64
	Amount     decimal.Decimal
	Note       string
	Date       string
	Type       string
}

// TransactionUpdate is an unvalidated partial update.
type TransactionUpdate struct {
	Amount     omit.Val[decimal.Decimal]
	CategoryID omit.Val[int64]
	AccountID  omit.Val[int64]
	Note       omit.Val[string]
	Date       omit.Val[string]
	Type       omit.Val[string]
}

// TransactionQuery narrows a listing. Empty fields do not filter.
type TransactionQuery struct {
	Start        string
	End          string
	AccountID    *int64
	CategoryID   *int64
	Type         string
	NoteContains string
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	store     Store
	processor Processor
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store Store, processor Processor) *TransactionService {
	return &TransactionService{store: store, processor: processor, now: time.Now}
}

// CreateTransaction records a transaction, adjusts its account and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, input TransactionInput) (int64, error) {
	if err := requirePositive("amount", input.Amount); err != nil {
		return 0, err
	}
	txType, err := ledger.ParseTransactionType(input.Type)
	if err != nil {
		return 0, err
	}
	date, err := ledger.ParseDate(input.Date)
	if err != nil {
		return 0, err
	}

	action := &actions.CreateTransaction{
		AccountID:  input.AccountID,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		Note:       input.Note,
		Date:       date,
		Type:       txType,
	}
	if _, err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.CreatedID, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*transaction.Transaction, error) {
	r, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	return r.Transactions.FindByID(ctx, id)
}

// ListTransactions returns a page of transactions using cursor-based
// pagination. The first page pins the creation time so that later pages are
// not shifted by transactions created in between.
func (s *TransactionService) ListTransactions(ctx context.Context, query *TransactionQuery, cursor *transaction.TransactionCursor) ([]*transaction.Transaction, *transaction.TransactionCursor, error) {
	filter, err := query.filter()
	if err != nil {
		return nil, nil, err
	}

	filter.Limit = defaultLimit
	var pinned time.Time
	if cursor != nil {
		if cursor.Limit > 0 {
			filter.Limit = cursor.Limit
		}
		filter.Offset = cursor.Position
		pinned = cursor.MaxCreationTime
	}
	if pinned.IsZero() {
		pinned = s.now().UTC()
	}
	filter.MaxCreationTime = &pinned

	r, err := s.store.Read()
	if err != nil {
		return nil, nil, err
	}
	res, err := r.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return res.Transactions, res.NextCursor, nil
}

// SearchTransactions lists transactions whose note contains text, ignoring case.
func (s *TransactionService) SearchTransactions(ctx context.Context, text string, cursor *transaction.TransactionCursor) ([]*transaction.Transaction, *transaction.TransactionCursor, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil, ledger.NewValidationError("q", "must not be empty")
	}
	return s.ListTransactions(ctx, &TransactionQuery{NoteContains: text}, cursor)
}

// UpdateTransaction applies the set fields of update, moves the balance
// effect accordingly and returns the updated transaction.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, update TransactionUpdate) (*transaction.Transaction, error) {
	patch := transaction.TransactionPatch{
		CategoryID: update.CategoryID,
		AccountID:  update.AccountID,
		Note:       update.Note,
	}
	if v, ok := update.Amount.Get(); ok {
		if err := requirePositive("amount", v); err != nil {
			return nil, err
		}
		patch.Amount = omit.From(v)
	}
	if v, ok := update.Date.Get(); ok {
		date, err := ledger.ParseDate(v)
		if err != nil {
			return nil, err
		}
		patch.Date = omit.From(date)
	}
	if v, ok := update.Type.Get(); ok {
		txType, err := ledger.ParseTransactionType(v)
		if err != nil {
			return nil, err
		}
		patch.Type = omit.From(txType)
	}
	if patch.IsEmpty() {
		return nil, ledger.NewValidationError("update", "no fields to change")
	}

	action := &actions.UpdateTransaction{ID: id, Patch: patch}
	if _, err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Updated, nil
}

// DeleteTransaction removes a transaction and takes its effect off the account.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	_, err := s.processor.Process(ctx, &actions.DeleteTransaction{ID: id})
	return err
}

func (q *TransactionQuery) filter() (*transaction.TransactionFilter, error) {
	filter := &transaction.TransactionFilter{}
	if q == nil {
		return filter, nil
	}

	start, err := parseOptionalDate(q.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(q.End)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil {
		if err := requireRange(*start, *end); err != nil {
			return nil, err
		}
	}
	filter.Start = start
	filter.End = end
	filter.AccountID = q.AccountID
	filter.CategoryID = q.CategoryID
	filter.NoteContains = q.NoteContains

	if q.Type != "" {
		txType, err := ledger.ParseTransactionType(q.Type)
		if err != nil {
			return nil, err
		}
		filter.Type = &txType
	}
	return filter, nil
}
