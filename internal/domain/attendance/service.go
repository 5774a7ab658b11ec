package attendance

import (
	"context"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Record dispatches to CheckIn or CheckOut based on the request type
	Record(ctx context.Context, req RecordAttendanceRequest) (RecordAttendanceResponse, error)

	// CheckIn opens today's record for the authenticated user
	CheckIn(ctx context.Context, note *string) (RecordAttendanceResponse, error)

	// CheckOut closes today's record and reports the elapsed working hours
	CheckOut(ctx context.Context, note *string) (RecordAttendanceResponse, error)

	// Today returns the authenticated user's record for the current day, if any
	Today(ctx context.Context) (TodayAttendanceResponse, error)

	// History lists the authenticated user's records, newest first
	History(ctx context.Context, params pagination.Params) (ListAttendanceResponse, error)

	// Location returns the fixed office location attached to check-ins
	Location(ctx context.Context) LocationResponse
}
