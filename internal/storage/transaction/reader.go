package transaction

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	found, err := bob.One(ctx, r.exec, sqlite.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	), scan.StructMapper[row]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, ledger.WrapStorage("find transaction", err)
	}
	return found.toTransaction(), nil
}

// List returns transactions newest first. With a positive Limit one extra row
// is fetched to decide whether a next page exists.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) (*TransactionListResult, error) {
	if filter == nil {
		filter = &TransactionFilter{}
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
	}
	queryMods = append(queryMods, filterMods(filter)...)
	queryMods = append(queryMods,
		sm.OrderBy("date").Desc(),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	} else if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Limit(-1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, r.exec, sqlite.Select(queryMods...), scan.StructMapper[row]())
	if err != nil {
		return nil, ledger.WrapStorage("list transactions", err)
	}

	if len(rows) == 0 {
		return &TransactionListResult{Transactions: nil, NextCursor: nil}, nil
	}

	var nextCursor *TransactionCursor
	if filter.Limit > 0 && len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
		cursor := &TransactionCursor{
			Position: filter.Offset + filter.Limit,
			Limit:    filter.Limit,
		}
		if filter.MaxCreationTime != nil {
			cursor.MaxCreationTime = *filter.MaxCreationTime
		}
		nextCursor = cursor
	}

	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = row.toTransaction()
	}
	return &TransactionListResult{Transactions: result, NextCursor: nextCursor}, nil
}

func (r *Reader) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	n, err := bob.One(ctx, r.exec, sqlite.Select(
		sm.Columns("count(*)"),
		sm.From(tableName),
		sm.Where(sqlite.Quote("category_id").EQ(sqlite.Arg(categoryID))),
	), scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, ledger.WrapStorage("count transactions", err)
	}
	return n, nil
}

// Sum adds up the amounts selected by filter. No rows gives zero.
func (r *Reader) Sum(ctx context.Context, filter *AggregateFilter) (decimal.Decimal, error) {
	rows, err := r.aggregateRows(ctx, "sum transactions", filter)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total, nil
}

// SumByCategory groups the selected amounts by category, largest total first
// and ties broken by category id.
func (r *Reader) SumByCategory(ctx context.Context, filter *AggregateFilter) ([]CategoryTotal, error) {
	rows, err := r.aggregateRows(ctx, "sum by category", filter)
	if err != nil {
		return nil, err
	}

	index := map[int64]int{}
	var totals []CategoryTotal
	for _, row := range rows {
		i, ok := index[row.CategoryID]
		if !ok {
			i = len(totals)
			index[row.CategoryID] = i
			totals = append(totals, CategoryTotal{CategoryID: row.CategoryID, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(row.Amount)
	}

	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Total.Cmp(totals[j].Total); c != 0 {
			return c > 0
		}
		return totals[i].CategoryID < totals[j].CategoryID
	})
	return totals, nil
}

// SumByDay groups the selected amounts by date, oldest first. Days without
// transactions are omitted.
func (r *Reader) SumByDay(ctx context.Context, filter *AggregateFilter) ([]DayTotal, error) {
	rows, err := r.aggregateRows(ctx, "sum by day", filter)
	if err != nil {
		return nil, err
	}

	var totals []DayTotal
	for _, row := range rows {
		n := len(totals)
		if n > 0 && totals[n-1].Date.Equal(row.Date) {
			totals[n-1].Total = totals[n-1].Total.Add(row.Amount)
			continue
		}
		totals = append(totals, DayTotal{Date: row.Date, Total: row.Amount})
	}
	return totals, nil
}

type aggregateRow struct {
	Amount     decimal.Decimal `db:"amount"`
	CategoryID int64           `db:"category_id"`
	Date       ledger.Date     `db:"date"`
}

func (r *Reader) aggregateRows(ctx context.Context, op string, filter *AggregateFilter) ([]aggregateRow, error) {
	if filter.End.Before(filter.Start) {
		return nil, ledger.NewValidationError("range", "start date is after end date")
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("amount", "category_id", "date"),
		sm.From(tableName),
	}
	queryMods = append(queryMods, filterMods(&TransactionFilter{
		Start:     &filter.Start,
		End:       &filter.End,
		Type:      filter.Type,
		AccountID: filter.AccountID,
	})...)
	queryMods = append(queryMods, sm.OrderBy("date").Asc())

	rows, err := bob.All(ctx, r.exec, sqlite.Select(queryMods...), scan.StructMapper[aggregateRow]())
	if err != nil {
		return nil, ledger.WrapStorage(op, err)
	}
	return rows, nil
}

func filterMods(filter *TransactionFilter) []bob.Mod[*dialect.SelectQuery] {
	var mods []bob.Mod[*dialect.SelectQuery]
	if filter.Start != nil {
		mods = append(mods, sm.Where(sqlite.Quote("date").GTE(sqlite.Arg(*filter.Start))))
	}
	if filter.End != nil {
		mods = append(mods, sm.Where(sqlite.Quote("date").LTE(sqlite.Arg(*filter.End))))
	}
	if filter.AccountID != nil {
		mods = append(mods, sm.Where(sqlite.Quote("account_id").EQ(sqlite.Arg(*filter.AccountID))))
	}
	if filter.CategoryID != nil {
		mods = append(mods, sm.Where(sqlite.Quote("category_id").EQ(sqlite.Arg(*filter.CategoryID))))
	}
	if filter.Type != nil {
		mods = append(mods, sm.Where(sqlite.Quote("type").EQ(sqlite.Arg(*filter.Type))))
	}
	if filter.NoteContains != "" {
		// SQLite LIKE folds case for ASCII letters only.
		mods = append(mods, sm.Where(sqlite.Raw(`"note" LIKE ? ESCAPE '\'`, "%"+escapeLike(filter.NoteContains)+"%")))
	}
	if filter.MaxCreationTime != nil {
		mods = append(mods, sm.Where(sqlite.Quote("created_at").LTE(sqlite.Arg(ledger.NewTimestamp(*filter.MaxCreationTime)))))
	}
	return mods
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
