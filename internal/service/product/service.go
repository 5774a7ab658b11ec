package product

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/product"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
)

type ProductServiceImpl struct {
	product.ProductRepository
}

func NewProductService(productRepository product.ProductRepository) product.ProductService {
	return &ProductServiceImpl{ProductRepository: productRepository}
}

// List implements product.ProductService.
func (s *ProductServiceImpl) List(ctx context.Context, params pagination.Params) (product.ListProductResponse, error) {
	params = pagination.New(params.Page, params.Limit)

	products, total, err := s.ProductRepository.List(ctx, params)
	if err != nil {
		return product.ListProductResponse{}, fmt.Errorf("failed to list products: %w", err)
	}

	resp := product.ListProductResponse{
		Products:   make([]product.ProductResponse, 0, len(products)),
		TotalCount: total,
	}
	for _, p := range products {
		resp.Products = append(resp.Products, toProductResponse(p))
	}
	return resp, nil
}

// Create implements product.ProductService.
func (s *ProductServiceImpl) Create(ctx context.Context, req product.CreateProductRequest) (product.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	var categoryName *string
	if req.CategoryID != nil {
		category, err := s.ProductRepository.GetCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return product.ProductResponse{}, fmt.Errorf("failed to get category: %w", err)
		}
		if category == nil {
			return product.ProductResponse{}, product.ErrCategoryNotFound
		}
		categoryName = &category.Name
	}

	existing, err := s.ProductRepository.GetBySKU(ctx, req.SKU)
	if err != nil {
		return product.ProductResponse{}, fmt.Errorf("failed to check sku: %w", err)
	}
	if existing != nil {
		return product.ProductResponse{}, product.ErrSKUExists
	}

	created, err := s.ProductRepository.Create(ctx, product.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		SKU:         req.SKU,
	})
	if err != nil {
		return product.ProductResponse{}, err
	}
	created.CategoryName = categoryName

	return toProductResponse(created), nil
}

// ListCategories implements product.ProductService.
func (s *ProductServiceImpl) ListCategories(ctx context.Context) (product.ListCategoryResponse, error) {
	categories, err := s.ProductRepository.ListCategories(ctx)
	if err != nil {
		return product.ListCategoryResponse{}, fmt.Errorf("failed to list categories: %w", err)
	}

	resp := product.ListCategoryResponse{
		Categories: make([]product.CategoryResponse, 0, len(categories)),
		TotalCount: int64(len(categories)),
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(c))
	}
	return resp, nil
}

// CreateCategory implements product.ProductService.
func (s *ProductServiceImpl) CreateCategory(ctx context.Context, req product.CreateCategoryRequest) (product.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return product.CategoryResponse{}, err
	}

	created, err := s.ProductRepository.CreateCategory(ctx, product.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return product.CategoryResponse{}, err
	}
	return toCategoryResponse(created), nil
}

func toProductResponse(p product.Product) product.ProductResponse {
	return product.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price.InexactFloat64(),
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		SKU:          p.SKU,
	}
}

func toCategoryResponse(c product.Category) product.CategoryResponse {
	return product.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
