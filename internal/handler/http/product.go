package http

import (
	"net/http"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/product"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/handler/http/response"
)

type ProductHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	CreateCategory(w http.ResponseWriter, r *http.Request)
}

type productHandlerImpl struct {
	productService product.ProductService
}

func NewProductHandler(productService product.ProductService) ProductHandler {
	return &productHandlerImpl{productService: productService}
}

// List handles GET /products
func (h *productHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	params, err := paginationFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.productService.List(r.Context(), params)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create handles POST /products
func (h *productHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req product.CreateProductRequest
	if !decodeJSON(w, r, &req, "CreateProduct") {
		return
	}

	result, err := h.productService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// ListCategories handles GET /products/categories
func (h *productHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.productService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateCategory handles POST /products/categories
func (h *productHandlerImpl) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req product.CreateCategoryRequest
	if !decodeJSON(w, r, &req, "CreateCategory") {
		return
	}

	result, err := h.productService.CreateCategory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}
