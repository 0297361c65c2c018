package transaction

import (
	"context"
	"database/sql"
	"time"

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

func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	ts := ledger.NewTimestamp(w.now())
	res, err := bob.Exec(ctx, w.tx, sqlite.Insert(
		im.Into(tableName, "amount", "category_id", "account_id", "note", "date", "type", "created_at", "updated_at"),
		im.Values(sqlite.Arg(create.Amount, create.CategoryID, create.AccountID, create.Note, create.Date, create.Type, ts, ts)),
	))
	if err != nil {
		return 0, ledger.WrapStorage("insert transaction", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, ledger.WrapStorage("insert transaction", err)
	}
	return id, nil
}

// Update writes the set fields of patch and refreshes updated_at, even when
// the patch is empty.
func (w *Writer) Update(ctx context.Context, id int64, patch *TransactionPatch) error {
	mods := []bob.Mod[*dialect.UpdateQuery]{um.Table(tableName)}
	if v, ok := patch.Amount.Get(); ok {
		mods = append(mods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := patch.CategoryID.Get(); ok {
		mods = append(mods, um.SetCol("category_id").ToArg(v))
	}
	if v, ok := patch.AccountID.Get(); ok {
		mods = append(mods, um.SetCol("account_id").ToArg(v))
	}
	if v, ok := patch.Note.Get(); ok {
		mods = append(mods, um.SetCol("note").ToArg(v))
	}
	if v, ok := patch.Date.Get(); ok {
		mods = append(mods, um.SetCol("date").ToArg(v))
	}
	if v, ok := patch.Type.Get(); ok {
		mods = append(mods, um.SetCol("type").ToArg(v))
	}
	mods = append(mods,
		um.SetCol("updated_at").ToArg(ledger.NewTimestamp(w.now())),
		um.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)

	res, err := bob.Exec(ctx, w.tx, sqlite.Update(mods...))
	return checkAffected("update transaction", res, err)
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	res, err := bob.Exec(ctx, w.tx, sqlite.Delete(
		dm.From(tableName),
		dm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	))
	return checkAffected("delete transaction", res, err)
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
