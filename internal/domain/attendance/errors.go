package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("Already checked in today")
	ErrNotCheckedIn      = errors.New("No check-in found for today")
	ErrAlreadyCheckedOut = errors.New("Already checked out today")
	ErrInvalidCheckOut   = errors.New("check-out time cannot be before check-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
