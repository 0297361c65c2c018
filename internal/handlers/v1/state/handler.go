package state

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/cache"
	"github.com/carson-networks/pocket-ledger/internal/logging"
)

type snapshotter interface {
	Snapshot() cache.Snapshot
}

type StateAccount struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

type StateCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type StateTransaction struct {
	ID         int64  `json:"id"`
	AccountID  int64  `json:"accountID"`
	CategoryID int64  `json:"categoryID"`
	Amount     string `json:"amount"`
	Type       string `json:"type"`
	Note       string `json:"note"`
	Date       string `json:"date" format:"date"`
}

// StateBody is the cached view clients render from. It may trail the
// database by one refresh; balances in it are display values only.
type StateBody struct {
	Accounts           []StateAccount     `json:"accounts" doc:"All accounts"`
	Categories         []StateCategory    `json:"categories" doc:"All categories"`
	RecentTransactions []StateTransaction `json:"recentTransactions" doc:"Most recent transactions, newest first"`
	LoadedAt           string             `json:"loadedAt,omitempty" format:"date-time" doc:"Time of the last refresh, absent before the first load"`
}

type StateOutput struct {
	Body StateBody
}

// Handler serves GET /v1/state.
type Handler struct {
	Cache snapshotter
}

func NewHandler(c snapshotter) *Handler {
	return &Handler{Cache: c}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-state",
		Method:      http.MethodGet,
		Path:        "/v1/state",
		Summary:     "Get cached state",
		Description: "Returns the in-memory snapshot of accounts, categories and recent transactions.",
		Tags:        []string{"State"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*StateOutput, error) {
	snap := h.Cache.Snapshot()

	body := StateBody{
		Accounts:           make([]StateAccount, len(snap.Accounts)),
		Categories:         make([]StateCategory, len(snap.Categories)),
		RecentTransactions: make([]StateTransaction, len(snap.RecentTransactions)),
	}
	for i, a := range snap.Accounts {
		body.Accounts[i] = StateAccount{ID: a.ID, Name: a.Name, Balance: a.Balance.String(), Currency: a.Currency}
	}
	for i, c := range snap.Categories {
		body.Categories[i] = StateCategory{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon}
	}
	for i, tx := range snap.RecentTransactions {
		body.RecentTransactions[i] = StateTransaction{
			ID:         tx.ID,
			AccountID:  tx.AccountID,
			CategoryID: tx.CategoryID,
			Amount:     tx.Amount.String(),
			Type:       string(tx.Type),
			Note:       tx.Note,
			Date:       tx.Date.String(),
		}
	}
	if !snap.LoadedAt.IsZero() {
		body.LoadedAt = snap.LoadedAt.UTC().Format(time.RFC3339)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountCount", len(body.Accounts))
		logData.AddData("recentCount", len(body.RecentTransactions))
	}
	return &StateOutput{Body: body}, nil
}
