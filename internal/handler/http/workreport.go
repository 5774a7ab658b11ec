package http

import (
	"net/http"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/workreport"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkReportHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type workReportHandlerImpl struct {
	workReportService workreport.WorkReportService
}

func NewWorkReportHandler(workReportService workreport.WorkReportService) WorkReportHandler {
	return &workReportHandlerImpl{workReportService: workReportService}
}

// Create handles POST /reports
func (h *workReportHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workreport.CreateWorkReportRequest
	if !decodeJSON(w, r, &req, "CreateWorkReport") {
		return
	}

	result, err := h.workReportService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// List handles GET /reports
func (h *workReportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	params, err := paginationFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.workReportService.List(r.Context(), params)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get handles GET /reports/{id}
func (h *workReportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.workReportService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update handles PATCH /reports/{id}
func (h *workReportHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req workreport.UpdateWorkReportRequest
	if !decodeJSON(w, r, &req, "UpdateWorkReport") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.workReportService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
