package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/storage"
)

// CategorySeed describes one default category.
type CategorySeed struct {
	Name  string
	Color string
	Icon  string
}

// DefaultCategories is created on first start. The last entry is the income
// category used by the sample salary.
var DefaultCategories = []CategorySeed{
	{Name: "Food & Dining", Color: "#FF6B6B", Icon: "food"},
	{Name: "Transportation", Color: "#4ECDC4", Icon: "car"},
	{Name: "Shopping", Color: "#45B7D1", Icon: "shopping"},
	{Name: "Entertainment", Color: "#96CEB4", Icon: "movie"},
	{Name: "Bills & Utilities", Color: "#FFEAA7", Icon: "file-document"},
	{Name: "Healthcare", Color: "#DDA0DD", Icon: "hospital"},
	{Name: "Education", Color: "#98D8C8", Icon: "school"},
	{Name: "Travel", Color: "#F7DC6F", Icon: "airplane"},
	{Name: "Salary", Color: "#82E0AA", Icon: "cash"},
}

type sampleTransaction struct {
	amount   int64
	category int
	note     string
	kind     ledger.TransactionType
	daysAgo  int
}

var sampleTransactions = []sampleTransaction{
	{50000, 8, "Monthly Salary", ledger.TypeIncome, 25},
	{1500, 0, "Grocery shopping", ledger.TypeExpense, 2},
	{250, 0, "Restaurant dinner", ledger.TypeExpense, 3},
	{500, 1, "Fuel", ledger.TypeExpense, 5},
	{200, 1, "Uber ride", ledger.TypeExpense, 7},
	{3000, 2, "New shoes", ledger.TypeExpense, 8},
	{800, 3, "Movie tickets", ledger.TypeExpense, 10},
	{2500, 4, "Electricity bill", ledger.TypeExpense, 12},
	{1500, 4, "Internet bill", ledger.TypeExpense, 12},
	{1000, 5, "Medicine", ledger.TypeExpense, 15},
	{5000, 6, "Online course", ledger.TypeExpense, 18},
	{12000, 7, "Flight tickets", ledger.TypeExpense, 20},
	{350, 0, "Coffee and snacks", ledger.TypeExpense, 1},
	{1200, 2, "Books", ledger.TypeExpense, 4},
	{450, 3, "Spotify subscription", ledger.TypeExpense, 6},
}

// SeedCategories creates DefaultCategories when no category exists yet.
type SeedCategories struct {
	Created int
}

func (s *SeedCategories) Name() string { return "SeedCategories" }

func (s *SeedCategories) Affects() []ledger.Entity {
	return []ledger.Entity{ledger.EntityCategories}
}

func (s *SeedCategories) Perform(ctx context.Context, writer *storage.Writer) error {
	ids, err := seedCategories(ctx, writer)
	if err != nil {
		return err
	}
	s.Created = len(ids)
	return nil
}

// SeedSampleData fills an empty ledger with the default categories, a main
// account and a month of sample transactions dated relative to Now. Every
// transaction goes through CreateTransaction so balances stay reconciled.
type SeedSampleData struct {
	Now             time.Time
	Currency        string
	StartingBalance decimal.Decimal

	Seeded bool
}

func (s *SeedSampleData) Name() string { return "SeedSampleData" }

func (s *SeedSampleData) Affects() []ledger.Entity {
	return ledger.AllEntities
}

func (s *SeedSampleData) Perform(ctx context.Context, writer *storage.Writer) error {
	categoryIDs, err := seedCategories(ctx, writer)
	if err != nil {
		return err
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	createAccount := &CreateAccount{
		AccountName:     "Main Account",
		Currency:        s.Currency,
		StartingBalance: s.StartingBalance,
	}
	if err := createAccount.Perform(ctx, writer); err != nil {
		return err
	}

	today := ledger.DateOf(s.Now)
	for _, sample := range sampleTransactions {
		create := &CreateTransaction{
			AccountID:  createAccount.CreatedID,
			CategoryID: categoryIDs[sample.category],
			Amount:     decimal.NewFromInt(sample.amount),
			Note:       sample.note,
			Date:       today.AddDays(-sample.daysAgo),
			Type:       sample.kind,
		}
		if err := create.Perform(ctx, writer); err != nil {
			return err
		}
	}

	s.Seeded = true
	return nil
}

// seedCategories inserts DefaultCategories into an empty category table and
// returns their ids in order. It returns nil when categories already exist.
func seedCategories(ctx context.Context, writer *storage.Writer) ([]int64, error) {
	n, err := writer.Categories.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, nil
	}

	ids := make([]int64, len(DefaultCategories))
	for i, seed := range DefaultCategories {
		create := &CreateCategory{CategoryName: seed.Name, Color: seed.Color, Icon: seed.Icon}
		if err := create.Perform(ctx, writer); err != nil {
			return nil, err
		}
		ids[i] = create.CreatedID
	}
	return ids, nil
}
