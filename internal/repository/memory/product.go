package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/product"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
)

type productRepository struct {
	store *Store
}

// withCategory copies p and joins the category name.
func withCategory(st *state, p product.Product) product.Product {
	p.Description = cloneString(p.Description)
	p.CategoryID = cloneString(p.CategoryID)
	p.CategoryName = nil
	if p.CategoryID != nil {
		if c, ok := st.categories[*p.CategoryID]; ok {
			name := c.Name
			p.CategoryName = &name
		}
	}
	return p
}

func cloneCategory(c product.Category) product.Category {
	c.Description = cloneString(c.Description)
	return c
}

func (r *productRepository) find(ctx context.Context, match func(product.Product) bool) (*product.Product, error) {
	var found *product.Product
	err := r.store.read(ctx, func(st *state) error {
		for _, p := range st.products {
			if match(p) {
				c := withCategory(st, p)
				found = &c
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	return r.find(ctx, func(p product.Product) bool { return p.ID == id })
}

func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*product.Product, error) {
	return r.find(ctx, func(p product.Product) bool { return p.SKU == sku })
}

func (r *productRepository) List(ctx context.Context, params pagination.Params) ([]product.Product, int64, error) {
	var all []product.Product
	err := r.store.read(ctx, func(st *state) error {
		for _, p := range st.products {
			all = append(all, withCategory(st, p))
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID < all[j].ID
	})
	return pagination.Slice(all, params), int64(len(all)), nil
}

func (r *productRepository) Create(ctx context.Context, newProduct product.Product) (product.Product, error) {
	var created product.Product
	err := r.store.write(ctx, func(st *state) error {
		for _, p := range st.products {
			if p.SKU == newProduct.SKU {
				return product.ErrSKUExists
			}
		}

		stored := withCategory(st, newProduct)
		stored.ID = newID()
		stored.CreatedAt = r.store.now()
		stored.CategoryName = nil
		st.products[stored.ID] = stored
		created = withCategory(st, stored)
		return nil
	})
	if err != nil {
		return product.Product{}, err
	}
	return created, nil
}

func (r *productRepository) GetCategoryByID(ctx context.Context, id string) (*product.Category, error) {
	var found *product.Category
	err := r.store.read(ctx, func(st *state) error {
		if c, ok := st.categories[id]; ok {
			cc := cloneCategory(c)
			found = &cc
		}
		return nil
	})
	return found, err
}

func (r *productRepository) ListCategories(ctx context.Context) ([]product.Category, error) {
	categories := []product.Category{}
	err := r.store.read(ctx, func(st *state) error {
		for _, c := range st.categories {
			categories = append(categories, cloneCategory(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Name != categories[j].Name {
			return categories[i].Name < categories[j].Name
		}
		return categories[i].ID < categories[j].ID
	})
	return categories, nil
}

func (r *productRepository) CreateCategory(ctx context.Context, newCategory product.Category) (product.Category, error) {
	var created product.Category
	err := r.store.write(ctx, func(st *state) error {
		created = cloneCategory(newCategory)
		created.ID = newID()
		created.CreatedAt = r.store.now()
		st.categories[created.ID] = created
		return nil
	})
	if err != nil {
		return product.Category{}, err
	}
	return cloneCategory(created), nil
}
