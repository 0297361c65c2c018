package account

import (
	"context"
	"time"

	"github.com/carson-networks/pocket-ledger/internal/service"
	"github.com/carson-networks/pocket-ledger/internal/storage/account"
)

// Account is the API response model for an account.
type Account struct {
	ID              int64  `json:"id" doc:"Account ID"`
	Name            string `json:"name" doc:"Account name"`
	Balance         string `json:"balance" doc:"Decimal balance"`
	StartingBalance string `json:"startingBalance" doc:"Decimal balance the account was opened with"`
	Currency        string `json:"currency" doc:"ISO 4217 currency code"`
	CreatedAt       string `json:"createdAt" format:"date-time" doc:"Creation time"`
	UpdatedAt       string `json:"updatedAt" format:"date-time" doc:"Last update time"`
}

// BalanceAudit is the API response model for an audit or repair.
type BalanceAudit struct {
	AccountID        int64  `json:"accountID" doc:"Account ID"`
	Stored           string `json:"stored" doc:"Stored balance"`
	Expected         string `json:"expected" doc:"Starting balance plus the signed sum of the account's transactions"`
	Drift            string `json:"drift" doc:"Stored minus expected"`
	InBalance        bool   `json:"inBalance" doc:"Whether stored equals expected"`
	TransactionCount int    `json:"transactionCount,omitempty" doc:"Transactions considered"`
}

// AccountIDInput identifies one account in the path.
type AccountIDInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Account ID"`
}

// AccountOutput wraps a single account.
type AccountOutput struct {
	Body Account
}

// accountService is the subset of service.AccountService the handlers use.
type accountService interface {
	CreateAccount(ctx context.Context, input service.AccountInput) (int64, error)
	GetAccount(ctx context.Context, id int64) (*account.Account, error)
	ListAccounts(ctx context.Context, cursor *account.AccountCursor) ([]*account.Account, *account.AccountCursor, error)
	UpdateAccount(ctx context.Context, id int64, update service.AccountUpdate) (*account.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
	AuditAccount(ctx context.Context, id int64) (*service.BalanceAudit, error)
	RepairBalance(ctx context.Context, id int64) (*service.BalanceAudit, error)
}

func fromAccount(a *account.Account) Account {
	return Account{
		ID:              a.ID,
		Name:            a.Name,
		Balance:         a.Balance.String(),
		StartingBalance: a.StartingBalance.String(),
		Currency:        a.Currency,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
}

func fromAudit(a *service.BalanceAudit) BalanceAudit {
	return BalanceAudit{
		AccountID:        a.AccountID,
		Stored:           a.Stored.String(),
		Expected:         a.Expected.String(),
		Drift:            a.Drift.String(),
		InBalance:        a.InBalance(),
		TransactionCount: a.TransactionCount,
	}
}
