package service

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

const unknownName = "Unknown"

var exportHeader = []string{"Date", "Type", "Amount", "Category", "Account", "Note"}

// ExportFilter limits an export to an inclusive date range. Empty bounds are open.
type ExportFilter struct {
	Start string
	End   string
}

// ExportService writes the ledger as CSV.
type ExportService struct {
	store Store
}

func NewExportService(store Store) *ExportService {
	return &ExportService{store: store}
}

// ExportFileName names an export taken at now.
func ExportFileName(now time.Time) string {
	return "expenses_" + now.Format("2006-01-02_15-04-05") + ".csv"
}

// WriteCSV writes one row per transaction, newest first, and returns the
// number of rows written excluding the header. Transactions whose category or
// account cannot be resolved are written with the name Unknown.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer, filter ExportFilter) (int, error) {
	start, err := parseOptionalDate(filter.Start)
	if err != nil {
		return 0, err
	}
	end, err := parseOptionalDate(filter.End)
	if err != nil {
		return 0, err
	}
	if start != nil && end != nil {
		if err := requireRange(*start, *end); err != nil {
			return 0, err
		}
	}

	r, err := s.store.Read()
	if err != nil {
		return 0, err
	}
	res, err := r.Transactions.List(ctx, &transaction.TransactionFilter{Start: start, End: end})
	if err != nil {
		return 0, err
	}
	categories, err := r.Categories.List(ctx)
	if err != nil {
		return 0, err
	}
	accounts, err := r.Accounts.List(ctx, nil)
	if err != nil {
		return 0, err
	}

	categoryNames := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	accountNames := make(map[int64]string, len(accounts.Accounts))
	for _, a := range accounts.Accounts {
		accountNames[a.ID] = a.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, err
	}
	for _, tx := range res.Transactions {
		record := []string{
			tx.Date.String(),
			string(tx.Type),
			tx.Amount.String(),
			nameOr(categoryNames, tx.CategoryID),
			nameOr(accountNames, tx.AccountID),
			tx.Note,
		}
		if err := cw.Write(record); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}
	return len(res.Transactions), nil
}

func nameOr(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return unknownName
}

