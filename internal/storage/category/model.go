package category

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
)

// Category labels transactions. Color and Icon are opaque to the ledger.
type Category struct {
	ID        int64
	Name      string
	Color     string
	Icon      string
	CreatedAt time.Time
}

type CategoryCreate struct {
	Name  string
	Color string
	Icon  string
}

type CategoryPatch struct {
	Name  omit.Val[string]
	Color omit.Val[string]
	Icon  omit.Val[string]
}

// IReader is the read side of the table.
type IReader interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Count(ctx context.Context) (int64, error)
}

// IWriter is the table bound to a write transaction.
//
//go:generate mockery --name IWriter --inpackage --with-expecter --filename mock_IWriter.go
type IWriter interface {
	IReader
	Insert(ctx context.Context, create *CategoryCreate) (int64, error)
	Update(ctx context.Context, id int64, patch *CategoryPatch) error
	Delete(ctx context.Context, id int64) error
}

const tableName = "categories"

var columns = []any{"id", "name", "color", "icon", "created_at"}

type row struct {
	ID        int64            `db:"id"`
	Name      string           `db:"name"`
	Color     string           `db:"color"`
	Icon      string           `db:"icon"`
	CreatedAt ledger.Timestamp `db:"created_at"`
}

func (r row) toCategory() *Category {
	return &Category{
		ID:        r.ID,
		Name:      r.Name,
		Color:     r.Color,
		Icon:      r.Icon,
		CreatedAt: r.CreatedAt.Time,
	}
}
