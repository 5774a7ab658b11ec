package product

import (
	"context"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
)

// ProductRepository covers products and their categories.
// Lookups return (nil, nil) when no row matches.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	GetBySKU(ctx context.Context, sku string) (*Product, error)
	List(ctx context.Context, params pagination.Params) ([]Product, int64, error)
	Create(ctx context.Context, newProduct Product) (Product, error)

	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, newCategory Category) (Category, error)
}
