package category

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

func (w *Writer) Insert(ctx context.Context, create *CategoryCreate) (int64, error) {
	res, err := bob.Exec(ctx, w.tx, sqlite.Insert(
		im.Into(tableName, "name", "color", "icon", "created_at"),
		im.Values(sqlite.Arg(create.Name, create.Color, create.Icon, ledger.NewTimestamp(w.now()))),
	))
	if err != nil {
		return 0, ledger.WrapStorage("insert category", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, ledger.WrapStorage("insert category", err)
	}
	return id, nil
}

// Update applies the set fields of patch. An empty patch only checks that the
// category exists.
func (w *Writer) Update(ctx context.Context, id int64, patch *CategoryPatch) error {
	mods := []bob.Mod[*dialect.UpdateQuery]{um.Table(tableName)}
	set := false
	if v, ok := patch.Name.Get(); ok {
		mods = append(mods, um.SetCol("name").ToArg(v))
		set = true
	}
	if v, ok := patch.Color.Get(); ok {
		mods = append(mods, um.SetCol("color").ToArg(v))
		set = true
	}
	if v, ok := patch.Icon.Get(); ok {
		mods = append(mods, um.SetCol("icon").ToArg(v))
		set = true
	}
	if !set {
		_, err := w.FindByID(ctx, id)
		return err
	}

	mods = append(mods, um.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))))
	res, err := bob.Exec(ctx, w.tx, sqlite.Update(mods...))
	return checkAffected("update category", res, err)
}

// Delete removes the category. Its transactions go with it through the
// foreign key cascade.
func (w *Writer) Delete(ctx context.Context, id int64) error {
	res, err := bob.Exec(ctx, w.tx, sqlite.Delete(
		dm.From(tableName),
		dm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	))
	return checkAffected("delete category", res, err)
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
