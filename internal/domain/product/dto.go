package product

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/money"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *string         `json:"categoryId,omitempty"`
	SKU         string          `json:"sku" validate:"required,max=64"`
}

func (r *CreateProductRequest) Validate() error {
	r.SKU = strings.ToUpper(strings.TrimSpace(r.SKU))
	errs := validator.Struct(r)

	if !money.IsValidAmount(r.Price) {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must not be negative and may have at most 2 decimal places",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateCategoryRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type ProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        float64 `json:"price"`
	CategoryID   *string `json:"categoryId"`
	CategoryName *string `json:"categoryName,omitempty"`
	SKU          string  `json:"sku"`
}

type ListProductResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int64             `json:"totalCount"`
}

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type ListCategoryResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalCount int64              `json:"totalCount"`
}

type ProductService interface {
	List(ctx context.Context, params pagination.Params) (ListProductResponse, error)
	Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	ListCategories(ctx context.Context) (ListCategoryResponse, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
}
