package product

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("product category not found")
	ErrSKUExists        = errors.New("sku already exists")
)
