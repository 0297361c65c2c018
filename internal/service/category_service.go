package service

import (
	"context"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
	"github.com/carson-networks/pocket-ledger/internal/storage/category"
)

// CategoryInput describes a new category. Color and Icon are opaque to the ledger.
type CategoryInput struct {
	Name  string
	Color string
	Icon  string
}

// CategoryUpdate holds the fields that may change.
type CategoryUpdate struct {
	Name  omit.Val[string]
	Color omit.Val[string]
	Icon  omit.Val[string]
}

// CategoryService handles category business logic.
type CategoryService struct {
	store     Store
	processor Processor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store Store, processor Processor) *CategoryService {
	return &CategoryService{store: store, processor: processor}
}

// CreateCategory creates a category and returns its ID.
func (s *CategoryService) CreateCategory(ctx context.Context, input CategoryInput) (int64, error) {
	name, err := requireName("name", input.Name)
	if err != nil {
		return 0, err
	}
	action := &actions.CreateCategory{CategoryName: name, Color: input.Color, Icon: input.Icon}
	if _, err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.CreatedID, nil
}

// GetCategory retrieves a category by ID.
func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*category.Category, error) {
	r, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	return r.Categories.FindByID(ctx, id)
}

// ListCategories returns every category ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]*category.Category, error) {
	r, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	return r.Categories.List(ctx)
}

// UpdateCategory applies the set fields of update and returns the category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, update CategoryUpdate) (*category.Category, error) {
	patch := category.CategoryPatch{Color: update.Color, Icon: update.Icon}
	if v, ok := update.Name.Get(); ok {
		name, err := requireName("name", v)
		if err != nil {
			return nil, err
		}
		patch.Name = omit.From(name)
	}

	if _, err := s.processor.Process(ctx, &actions.UpdateCategory{ID: id, Patch: patch}); err != nil {
		return nil, err
	}
	return s.GetCategory(ctx, id)
}

// CountTransactions reports how many transactions a delete of the category
// would remove.
func (s *CategoryService) CountTransactions(ctx context.Context, id int64) (int64, error) {
	r, err := s.store.Read()
	if err != nil {
		return 0, err
	}
	if _, err := r.Categories.FindByID(ctx, id); err != nil {
		return 0, err
	}
	return r.Transactions.CountByCategory(ctx, id)
}

// DeleteCategory deletes the category and its transactions, settling their
// effects on account balances first. It returns the number of transactions removed.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) (int, error) {
	action := &actions.DeleteCategory{ID: id}
	if _, err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.RemovedTransactions, nil
}
