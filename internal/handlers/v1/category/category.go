package category

import (
	"context"
	"time"

	"github.com/carson-networks/pocket-ledger/internal/service"
	"github.com/carson-networks/pocket-ledger/internal/storage/category"
)

// Category is the API response model for a category.
type Category struct {
	ID        int64  `json:"id" doc:"Category ID"`
	Name      string `json:"name" doc:"Category name"`
	Color     string `json:"color" doc:"Display color"`
	Icon      string `json:"icon" doc:"Display icon name"`
	CreatedAt string `json:"createdAt" format:"date-time" doc:"Creation time"`
}

type CategoryIDInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Category ID"`
}

type CategoryOutput struct {
	Body Category
}

type categoryService interface {
	CreateCategory(ctx context.Context, input service.CategoryInput) (int64, error)
	GetCategory(ctx context.Context, id int64) (*category.Category, error)
	ListCategories(ctx context.Context) ([]*category.Category, error)
	UpdateCategory(ctx context.Context, id int64, update service.CategoryUpdate) (*category.Category, error)
	CountTransactions(ctx context.Context, id int64) (int64, error)
	DeleteCategory(ctx context.Context, id int64) (int, error)
}

func fromCategory(c *category.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		Icon:      c.Icon,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
