package attendance

import (
	"context"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID returns nil when the record does not exist
	GetByID(ctx context.Context, id string) (*Attendance, error)

	// ListByUserID returns a page of the user's records, newest check-in first, plus the total count
	ListByUserID(ctx context.Context, userID string, params pagination.Params) ([]Attendance, int64, error)

	// Update merges the non-nil fields of update and returns the stored record
	Update(ctx context.Context, id string, update AttendanceUpdate) (Attendance, error)

	// LockUser blocks other check-ins and check-outs of userID until the
	// surrounding transaction ends
	LockUser(ctx context.Context, userID string) error

	// GetTodayByUserID returns the record whose check-in falls on now's calendar day, if any
	GetTodayByUserID(ctx context.Context, userID string, now time.Time) (*Attendance, error)

	// CountUsersCheckedIn counts distinct users with a check-in on day's calendar day
	CountUsersCheckedIn(ctx context.Context, day time.Time) (int64, error)
}
