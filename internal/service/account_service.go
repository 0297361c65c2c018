package service

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
	"github.com/carson-networks/pocket-ledger/internal/storage/account"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

const defaultAccountLimit = 20

// AccountInput describes a new account. An empty Currency falls back to the
// configured default.
type AccountInput struct {
	Name            string
	Currency        string
	StartingBalance decimal.Decimal
}

// BalanceAudit compares an account's stored balance with the balance implied
// by its starting balance and transactions.
type BalanceAudit struct {
	AccountID        int64
	Stored           decimal.Decimal
	Expected         decimal.Decimal
	Drift            decimal.Decimal
	TransactionCount int
}

// InBalance reports whether the stored balance matches the ledger.
func (a *BalanceAudit) InBalance() bool {
	return a.Drift.IsZero()
}

// AccountService handles account business logic.
type AccountService struct {
	store           Store
	processor       Processor
	defaultCurrency string
}

// NewAccountService creates a new AccountService.
func NewAccountService(store Store, processor Processor, defaultCurrency string) *AccountService {
	return &AccountService{store: store, processor: processor, defaultCurrency: defaultCurrency}
}

// CreateAccount creates a new account and returns its ID.
func (s *AccountService) CreateAccount(ctx context.Context, input AccountInput) (int64, error) {
	name, err := requireName("name", input.Name)
	if err != nil {
		return 0, err
	}
	code := input.Currency
	if code == "" {
		code = s.defaultCurrency
	}
	currency, err := requireCurrency(code)
	if err != nil {
		return 0, err
	}

	action := &actions.CreateAccount{
		AccountName:     name,
		Currency:        currency,
		StartingBalance: input.StartingBalance,
	}
	if _, err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.CreatedID, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*account.Account, error) {
	r, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	return r.Accounts.FindByID(ctx, id)
}

// ListAccounts returns a page of accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *account.AccountCursor) ([]*account.Account, *account.AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}

	r, err := s.store.Read()
	if err != nil {
		return nil, nil, err
	}
	res, err := r.Accounts.List(ctx, &account.AccountFilter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, nil, err
	}
	return res.Accounts, res.NextCursor, nil
}

// AccountUpdate holds the descriptive fields that may change.
type AccountUpdate struct {
	Name     omit.Val[string]
	Currency omit.Val[string]
}

// UpdateAccount applies the set fields of update and returns the account.
func (s *AccountService) UpdateAccount(ctx context.Context, id int64, update AccountUpdate) (*account.Account, error) {
	var patch account.AccountPatch
	if v, ok := update.Name.Get(); ok {
		name, err := requireName("name", v)
		if err != nil {
			return nil, err
		}
		patch.Name = omit.From(name)
	}
	if v, ok := update.Currency.Get(); ok {
		currency, err := requireCurrency(v)
		if err != nil {
			return nil, err
		}
		patch.Currency = omit.From(currency)
	}

	if _, err := s.processor.Process(ctx, &actions.UpdateAccount{ID: id, Patch: patch}); err != nil {
		return nil, err
	}
	return s.GetAccount(ctx, id)
}

// DeleteAccount removes the account and all of its transactions.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	_, err := s.processor.Process(ctx, &actions.DeleteAccount{ID: id})
	return err
}

// AuditAccount recomputes the expected balance without changing anything.
func (s *AccountService) AuditAccount(ctx context.Context, id int64) (*BalanceAudit, error) {
	r, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	acc, err := r.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := r.Transactions.List(ctx, &transaction.TransactionFilter{AccountID: &id})
	if err != nil {
		return nil, err
	}

	expected := acc.StartingBalance
	for _, tx := range res.Transactions {
		expected = expected.Add(tx.Type.Effect(tx.Amount))
	}
	return &BalanceAudit{
		AccountID:        id,
		Stored:           acc.Balance,
		Expected:         expected,
		Drift:            acc.Balance.Sub(expected),
		TransactionCount: len(res.Transactions),
	}, nil
}

// RepairBalance overwrites the stored balance with the ledger's and returns
// the audit as it stood before the repair.
func (s *AccountService) RepairBalance(ctx context.Context, id int64) (*BalanceAudit, error) {
	action := &actions.RepairBalance{AccountID: id}
	if _, err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return &BalanceAudit{
		AccountID: id,
		Stored:    action.Previous,
		Expected:  action.Repaired,
		Drift:     action.Previous.Sub(action.Repaired),
	}, nil
}
