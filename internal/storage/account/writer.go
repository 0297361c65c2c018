package account

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/um"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
)

type Writer struct {
	tx  bob.Executor
	now func() time.Time
	Reader
}

func NewWriter(tx bob.Executor, now func() time.Time) *Writer {
	return &Writer{
		tx:  tx,
		now: now,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Insert(ctx context.Context, create *AccountCreate) (int64, error) {
	ts := ledger.NewTimestamp(w.now())
	res, err := bob.Exec(ctx, w.tx, sqlite.Insert(
		im.Into(tableName, "name", "balance", "starting_balance", "currency", "created_at", "updated_at"),
		im.Values(sqlite.Arg(create.Name, create.StartingBalance, create.StartingBalance, create.Currency, ts, ts)),
	))
	if err != nil {
		return 0, ledger.WrapStorage("insert account", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, ledger.WrapStorage("insert account", err)
	}
	return id, nil
}

func (w *Writer) Update(ctx context.Context, id int64, patch *AccountPatch) error {
	mods := []bob.Mod[*dialect.UpdateQuery]{um.Table(tableName)}
	if name, ok := patch.Name.Get(); ok {
		mods = append(mods, um.SetCol("name").ToArg(name))
	}
	if currency, ok := patch.Currency.Get(); ok {
		mods = append(mods, um.SetCol("currency").ToArg(currency))
	}
	return w.update(ctx, "update account", id, mods)
}

func (w *Writer) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	return w.update(ctx, "update balance", id, []bob.Mod[*dialect.UpdateQuery]{
		um.Table(tableName),
		um.SetCol("balance").ToArg(balance),
	})
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	res, err := bob.Exec(ctx, w.tx, sqlite.Delete(
		dm.From(tableName),
		dm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	))
	return checkAffected("delete account", res, err)
}

func (w *Writer) update(ctx context.Context, op string, id int64, mods []bob.Mod[*dialect.UpdateQuery]) error {
	mods = append(mods,
		um.SetCol("updated_at").ToArg(ledger.NewTimestamp(w.now())),
		um.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)
	res, err := bob.Exec(ctx, w.tx, sqlite.Update(mods...))
	return checkAffected(op, res, err)
}

func checkAffected(op string, res sql.Result, err error) error {
	if err != nil {
		return ledger.WrapStorage(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return ledger.WrapStorage(op, err)
	}
	if n == 0 {
		return ledger.ErrNotFound
	}
	return nil
}
