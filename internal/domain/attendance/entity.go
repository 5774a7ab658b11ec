package attendance

import (
	"fmt"
	"time"
)

type Attendance struct {
	ID        string
	UserID    string
	CheckIn   time.Time
	CheckOut  *time.Time
	Location  string
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AttendanceUpdate is a partial update; nil fields are left untouched.
type AttendanceUpdate struct {
	CheckOut *time.Time
	Location *string
	Note     *string
}

// Apply merges u into a copy of a and enforces check_out >= check_in.
func (a Attendance) Apply(u AttendanceUpdate) (Attendance, error) {
	if u.CheckOut != nil {
		if u.CheckOut.Before(a.CheckIn) {
			return Attendance{}, ErrInvalidCheckOut
		}
		checkOut := *u.CheckOut
		a.CheckOut = &checkOut
	}
	if u.Location != nil {
		a.Location = *u.Location
	}
	if u.Note != nil {
		note := *u.Note
		a.Note = &note
	}
	return a, nil
}

func (a Attendance) IsCheckedOut() bool {
	return a.CheckOut != nil
}

// FormatWorkingHours renders the elapsed time between check-in and check-out
// as "H hrs M mins", truncating to whole minutes.
func FormatWorkingHours(checkIn, checkOut time.Time) string {
	ms := checkOut.Sub(checkIn).Milliseconds()
	if ms < 0 {
		ms = 0
	}
	hours := ms / (1000 * 60 * 60)
	minutes := (ms % (1000 * 60 * 60)) / (1000 * 60)
	return fmt.Sprintf("%d hrs %d mins", hours, minutes)
}

// AppendNote joins a new note onto an existing one with "; ".
func AppendNote(existing *string, note string) string {
	if existing == nil || *existing == "" {
		return note
	}
	if note == "" {
		return *existing
	}
	return *existing + "; " + note
}
