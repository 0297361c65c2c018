package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
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

func (r *Reader) List(ctx context.Context) ([]*Category, error) {
	rows, err := bob.All(ctx, r.exec, sqlite.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	), scan.StructMapper[row]())
	if err != nil {
		return nil, ledger.WrapStorage("list categories", err)
	}

	result := make([]*Category, len(rows))
	for i, row := range rows {
		result[i] = row.toCategory()
	}
	return result, nil
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Category, error) {
	found, err := bob.One(ctx, r.exec, sqlite.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	), scan.StructMapper[row]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, ledger.WrapStorage("find category", err)
	}
	return found.toCategory(), nil
}

func (r *Reader) Count(ctx context.Context) (int64, error) {
	n, err := bob.One(ctx, r.exec, sqlite.Select(
		sm.Columns("count(*)"),
		sm.From(tableName),
	), scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, ledger.WrapStorage("count categories", err)
	}
	return n, nil
}
