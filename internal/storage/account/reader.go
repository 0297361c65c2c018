package account

import (
	"context"
	"database/sql"
	"errors"

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

func (r *Reader) List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error) {
	limit := 0
	offset := 0
	if filter != nil {
		limit = filter.Limit
		offset = filter.Offset
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	}
	if limit > 0 {
		queryMods = append(queryMods, sm.Limit(limit+1))
	}
	if offset > 0 {
		if limit == 0 {
			queryMods = append(queryMods, sm.Limit(-1))
		}
		queryMods = append(queryMods, sm.Offset(offset))
	}

	rows, err := bob.All(ctx, r.exec, sqlite.Select(queryMods...), scan.StructMapper[row]())
	if err != nil {
		return nil, ledger.WrapStorage("list accounts", err)
	}

	if len(rows) == 0 {
		return &AccountListResult{Accounts: nil, NextCursor: nil}, nil
	}

	var nextCursor *AccountCursor
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	result := make([]*Account, len(rows))
	for i, row := range rows {
		result[i] = row.toAccount()
	}
	return &AccountListResult{Accounts: result, NextCursor: nextCursor}, nil
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Account, error) {
	found, err := bob.One(ctx, r.exec, sqlite.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	), scan.StructMapper[row]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, ledger.WrapStorage("find account", err)
	}
	return found.toAccount(), nil
}
