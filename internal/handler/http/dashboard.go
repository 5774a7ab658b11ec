package http

import (
	"net/http"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// Stats returns today's summary cards
	Stats(w http.ResponseWriter, r *http.Request)
	// Activities returns the caller's recent activity feed
	Activities(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Stats handles GET /dashboard/stats
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Activities handles GET /dashboard/activities
func (h *dashboardHandlerImpl) Activities(w http.ResponseWriter, r *http.Request) {
	params, err := paginationFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.Activities(r.Context(), params)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
