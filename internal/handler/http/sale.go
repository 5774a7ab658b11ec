package http

import (
	"net/http"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SaleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Recent(w http.ResponseWriter, r *http.Request)
	DailyStats(w http.ResponseWriter, r *http.Request)
}

type saleHandlerImpl struct {
	saleService sale.SaleService
}

func NewSaleHandler(saleService sale.SaleService) SaleHandler {
	return &saleHandlerImpl{saleService: saleService}
}

// Create handles POST /sales
func (h *saleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req sale.CreateSaleRequest
	if !decodeJSON(w, r, &req, "CreateSale") {
		return
	}

	result, err := h.saleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// Get handles GET /sales/{id}
func (h *saleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.saleService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Recent handles GET /sales/recent
func (h *saleHandlerImpl) Recent(w http.ResponseWriter, r *http.Request) {
	params, err := paginationFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.saleService.Recent(r.Context(), params)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DailyStats handles GET /sales/daily-stats?date=YYYY-MM-DD
func (h *saleHandlerImpl) DailyStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date") // format: YYYY-MM-DD, default: today

	result, err := h.saleService.DailyStats(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
