package product

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/product"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(memory.NewStore().Products())

	category, err := svc.CreateCategory(ctx, product.CreateCategoryRequest{Name: "Beverages"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, product.CreateProductRequest{
		Name:       "Iced Tea",
		Price:      decimal.RequireFromString("12.50"),
		CategoryID: &category.ID,
		SKU:        " tea-01 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "TEA-01", created.SKU)
	assert.Equal(t, 12.5, created.Price)
	require.NotNil(t, created.CategoryName)
	assert.Equal(t, "Beverages", *created.CategoryName)

	t.Run("duplicate sku", func(t *testing.T) {
		_, err := svc.Create(ctx, product.CreateProductRequest{Name: "Other", Price: decimal.NewFromInt(1), SKU: "TEA-01"})
		assert.ErrorIs(t, err, product.ErrSKUExists)
	})

	t.Run("unknown category", func(t *testing.T) {
		missing := "missing"
		_, err := svc.Create(ctx, product.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(1), SKU: "X-1", CategoryID: &missing})
		assert.ErrorIs(t, err, product.ErrCategoryNotFound)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := svc.Create(ctx, product.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(-1), SKU: "X-2"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "price")
	})

	t.Run("sub-cent price", func(t *testing.T) {
		_, err := svc.Create(ctx, product.CreateProductRequest{Name: "X", Price: decimal.RequireFromString("0.004"), SKU: "X-3"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "price")
	})

	list, err := svc.List(ctx, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.TotalCount)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), categories.TotalCount)
}
