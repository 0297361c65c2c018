package category

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/pocket-ledger/internal/ledger"
	"github.com/carson-networks/pocket-ledger/internal/service"
	"github.com/carson-networks/pocket-ledger/internal/storage/category"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, input service.CategoryInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id int64) (*category.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*category.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, id int64, update service.CategoryUpdate) (*category.Category, error) {
	args := m.Called(ctx, id, update)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) CountTransactions(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func newTestAPI(t *testing.T, svc categoryService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func food() *category.Category {
	return &category.Category{ID: 1, Name: "Food", Color: "#FF6B6B", Icon: "food", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestHTTP_CreateCategory(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("CreateCategory", mock.Anything, service.CategoryInput{Name: "Food", Color: "#FF6B6B", Icon: "food"}).
		Return(int64(1), nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/categories", CreateCategoryBody{Name: "Food", Color: "#FF6B6B", Icon: "food"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateCategoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.ID)
}

func TestHTTP_CreateCategory_MissingName(t *testing.T) {
	mockSvc := new(mockCategoryService)

	resp := newTestAPI(t, mockSvc).Post("/v1/categories", map[string]any{"color": "#000"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateCategory")
}

func TestHTTP_ListCategories(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("ListCategories", mock.Anything).Return([]*category.Category{food()}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/categories")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCategoriesBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Categories, 1)
	assert.Equal(t, "food", body.Categories[0].Icon)
}

func TestHTTP_UpdateCategory(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("UpdateCategory", mock.Anything, int64(1), mock.MatchedBy(func(u service.CategoryUpdate) bool {
		color, ok := u.Color.Get()
		return ok && color == "#000000" && !u.Name.IsValue() && !u.Icon.IsValue()
	})).Return(food(), nil)

	resp := newTestAPI(t, mockSvc).Patch("/v1/categories/1", map[string]any{"color": "#000000"})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CountAndDelete(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("CountTransactions", mock.Anything, int64(1)).Return(int64(4), nil)
	mockSvc.On("DeleteCategory", mock.Anything, int64(1)).Return(4, nil)
	mockSvc.On("DeleteCategory", mock.Anything, int64(2)).Return(0, ledger.ErrNotFound)
	api := newTestAPI(t, mockSvc)

	resp := api.Get("/v1/categories/1/transactions/count")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"count":4`)

	resp = api.Delete("/v1/categories/1")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"removedTransactions":4`)

	resp = api.Delete("/v1/categories/2")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
