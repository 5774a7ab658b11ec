package http

import (
	"net/http"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Location(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Record handles POST /attendance for both check-in and check-out.
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordAttendanceRequest
	if !decodeJSON(w, r, &req, "RecordAttendance") {
		return
	}

	result, err := h.attendanceService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// Today handles GET /attendance/today
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History handles GET /attendance/history
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	params, err := paginationFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.History(r.Context(), params)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Location handles GET /attendance/location
func (h *attendanceHandlerImpl) Location(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.attendanceService.Location(r.Context()))
}
