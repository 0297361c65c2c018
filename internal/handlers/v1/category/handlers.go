package category

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/handlers/httperror"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name  string `json:"name" minLength:"1" doc:"Category name"`
	Color string `json:"color,omitempty" doc:"Display color, e.g. #FF6B6B"`
	Icon  string `json:"icon,omitempty" doc:"Display icon name"`
}

type CreateCategoryInput struct {
	Body CreateCategoryBody
}

type CreateCategoryResponse struct {
	ID int64 `json:"id" doc:"Created category ID"`
}

type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponse
}

// UpdateCategoryBody lists the fields that may change. Absent fields are kept.
type UpdateCategoryBody struct {
	Name  *string `json:"name,omitempty" doc:"New name"`
	Color *string `json:"color,omitempty" doc:"New color"`
	Icon  *string `json:"icon,omitempty" doc:"New icon"`
}

type UpdateCategoryInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Category ID"`
	Body UpdateCategoryBody
}

type ListCategoriesBody struct {
	Categories []Category `json:"categories" doc:"All categories ordered by name"`
}

type ListCategoriesOutput struct {
	Body ListCategoriesBody
}

type CountTransactionsBody struct {
	Count int64 `json:"count" doc:"Transactions that deleting the category would remove"`
}

type CountTransactionsOutput struct {
	Body CountTransactionsBody
}

type DeleteCategoryBody struct {
	RemovedTransactions int `json:"removedTransactions" doc:"Transactions removed with the category"`
}

type DeleteCategoryOutput struct {
	Body DeleteCategoryBody
}

// Handler serves the /v1/categories endpoints.
type Handler struct {
	CategoryService categoryService
}

func NewHandler(svc categoryService) *Handler {
	return &Handler{CategoryService: svc}
}

// Register registers every category endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	tags := []string{"Categories"}
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/categories",
		Summary:       "Create a category",
		Tags:          tags,
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        tags,
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/categories/{id}",
		Summary:     "Get a category",
		Tags:        tags,
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/v1/categories/{id}",
		Summary:     "Update a category",
		Tags:        tags,
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "count-category-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/categories/{id}/transactions/count",
		Summary:     "Count a category's transactions",
		Description: "Reports how many transactions a delete of the category would remove.",
		Tags:        tags,
	}, h.count)
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/categories/{id}",
		Summary:     "Delete a category",
		Description: "Deletes a category and its transactions. Account balances are adjusted for every removed transaction.",
		Tags:        tags,
	}, h.delete)
}

func (h *Handler) create(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	id, err := h.CategoryService.CreateCategory(ctx, service.CategoryInput{
		Name:  input.Body.Name,
		Color: input.Body.Color,
		Icon:  input.Body.Icon,
	})
	if err != nil {
		return nil, httperror.From("failed to create category", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("categoryID", id)
	}
	return &CreateCategoryOutput{Status: http.StatusCreated, Body: CreateCategoryResponse{ID: id}}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	categories, err := h.CategoryService.ListCategories(ctx)
	if err != nil {
		return nil, httperror.From("failed to list categories", err)
	}
	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]Category, len(categories))
	for i, c := range categories {
		out.Body.Categories[i] = fromCategory(c)
	}
	return out, nil
}

func (h *Handler) get(ctx context.Context, input *CategoryIDInput) (*CategoryOutput, error) {
	c, err := h.CategoryService.GetCategory(ctx, input.ID)
	if err != nil {
		return nil, httperror.From("failed to get category", err)
	}
	return &CategoryOutput{Body: fromCategory(c)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	var update service.CategoryUpdate
	if input.Body.Name != nil {
		update.Name = omit.From(*input.Body.Name)
	}
	if input.Body.Color != nil {
		update.Color = omit.From(*input.Body.Color)
	}
	if input.Body.Icon != nil {
		update.Icon = omit.From(*input.Body.Icon)
	}

	c, err := h.CategoryService.UpdateCategory(ctx, input.ID, update)
	if err != nil {
		return nil, httperror.From("failed to update category", err)
	}
	return &CategoryOutput{Body: fromCategory(c)}, nil
}

func (h *Handler) count(ctx context.Context, input *CategoryIDInput) (*CountTransactionsOutput, error) {
	n, err := h.CategoryService.CountTransactions(ctx, input.ID)
	if err != nil {
		return nil, httperror.From("failed to count transactions", err)
	}
	out := &CountTransactionsOutput{}
	out.Body.Count = n
	return out, nil
}

func (h *Handler) delete(ctx context.Context, input *CategoryIDInput) (*DeleteCategoryOutput, error) {
	removed, err := h.CategoryService.DeleteCategory(ctx, input.ID)
	if err != nil {
		return nil, httperror.From("failed to delete category", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("removedTransactions", removed)
	}
	out := &DeleteCategoryOutput{}
	out.Body.RemovedTransactions = removed
	return out, nil
}
