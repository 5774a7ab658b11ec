package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/product"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/jackc/pgx/v5"
)

type productRepositoryImpl struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) product.ProductRepository {
	return &productRepositoryImpl{db: db}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.category_id, p.sku, p.created_at, c.name
	FROM products p
	LEFT JOIN product_categories c ON c.id = p.category_id
`

func scanProduct(row pgx.Row) (product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.CategoryID,
		&p.SKU,
		&p.CreatedAt,
		&p.CategoryName,
	)
	return p, err
}

func (r *productRepositoryImpl) getOne(ctx context.Context, where string, arg string) (*product.Product, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProduct(q.QueryRow(ctx, productSelect+where, arg))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

// GetByID implements product.ProductRepository.
func (r *productRepositoryImpl) GetByID(ctx context.Context, id string) (*product.Product, error) {
	return r.getOne(ctx, "WHERE p.id = $1", id)
}

// GetBySKU implements product.ProductRepository.
func (r *productRepositoryImpl) GetBySKU(ctx context.Context, sku string) (*product.Product, error) {
	return r.getOne(ctx, "WHERE p.sku = $1", sku)
}

// List implements product.ProductRepository.
func (r *productRepositoryImpl) List(ctx context.Context, params pagination.Params) ([]product.Product, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	rows, err := q.Query(ctx, productSelect+`ORDER BY p.name ASC, p.id ASC LIMIT $1 OFFSET $2`, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]product.Product, 0, params.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, total, nil
}

// Create implements product.ProductRepository.
func (r *productRepositoryImpl) Create(ctx context.Context, newProduct product.Product) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO products (name, description, price, category_id, sku)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	created := newProduct
	err := q.QueryRow(ctx, query,
		newProduct.Name,
		newProduct.Description,
		newProduct.Price,
		newProduct.CategoryID,
		newProduct.SKU,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if name, ok := constraintViolation(err, codeUniqueViolation); ok && name == "uk_products_sku" {
			return product.Product{}, product.ErrSKUExists
		}
		return product.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return created, nil
}

// GetCategoryByID implements product.ProductRepository.
func (r *productRepositoryImpl) GetCategoryByID(ctx context.Context, id string) (*product.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, description, created_at FROM product_categories WHERE id = $1`

	var c product.Category
	if err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}
	return &c, nil
}

// ListCategories implements product.ProductRepository.
func (r *productRepositoryImpl) ListCategories(ctx context.Context) ([]product.Category, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description, created_at FROM product_categories ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []product.Category{}
	for rows.Next() {
		var c product.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// CreateCategory implements product.ProductRepository.
func (r *productRepositoryImpl) CreateCategory(ctx context.Context, newCategory product.Category) (product.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO product_categories (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	created := newCategory
	if err := q.QueryRow(ctx, query, newCategory.Name, newCategory.Description).Scan(&created.ID, &created.CreatedAt); err != nil {
		return product.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}
