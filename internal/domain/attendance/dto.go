package attendance

import (
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/validator"
)

const (
	TypeCheckIn  = "checkin"
	TypeCheckOut = "checkout"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RecordAttendanceRequest struct {
	AttendanceType string  `json:"attendanceType" validate:"required,oneof=checkin checkout"`
	Note           *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

func (r *RecordAttendanceRequest) Validate() error {
	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	CheckInTime  string  `json:"checkInTime"`
	CheckOutTime *string `json:"checkOutTime"`
	Location     string  `json:"location"`
	Note         *string `json:"note"`
	WorkingHours *string `json:"workingHours"`
	Status       string  `json:"status"`
}

type RecordAttendanceResponse struct {
	Message      string             `json:"message"`
	Attendance   AttendanceResponse `json:"attendance"`
	WorkingHours *string            `json:"workingHours,omitempty"`
}

type TodayAttendanceResponse struct {
	Attendance    *AttendanceResponse `json:"attendance"`
	HasCheckedIn  bool                `json:"hasCheckedIn"`
	HasCheckedOut bool                `json:"hasCheckedOut"`
}

type ListAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	TotalCount  int64                `json:"totalCount"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
}

type LocationResponse struct {
	Location string `json:"location"`
}
