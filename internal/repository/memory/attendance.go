package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/utils"
)

type attendanceRepository struct {
	store *Store
}

func cloneAttendance(a attendance.Attendance) attendance.Attendance {
	a.CheckOut = cloneTime(a.CheckOut)
	a.Note = cloneString(a.Note)
	return a
}

func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	if newAttendance.CheckOut != nil && newAttendance.CheckOut.Before(newAttendance.CheckIn) {
		return attendance.Attendance{}, attendance.ErrInvalidCheckOut
	}

	var created attendance.Attendance
	err := r.store.write(ctx, func(st *state) error {
		now := r.store.now()
		created = cloneAttendance(newAttendance)
		created.ID = newID()
		created.CreatedAt = now
		created.UpdatedAt = now
		st.attendances[created.ID] = created
		return nil
	})
	if err != nil {
		return attendance.Attendance{}, err
	}
	return cloneAttendance(created), nil
}

// LockUser is a no-op: a transaction already holds the store's write lock.
func (r *attendanceRepository) LockUser(ctx context.Context, userID string) error {
	return ctx.Err()
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	var found *attendance.Attendance
	err := r.store.read(ctx, func(st *state) error {
		if a, ok := st.attendances[id]; ok {
			c := cloneAttendance(a)
			found = &c
		}
		return nil
	})
	return found, err
}

func (r *attendanceRepository) ListByUserID(ctx context.Context, userID string, params pagination.Params) ([]attendance.Attendance, int64, error) {
	var owned []attendance.Attendance
	err := r.store.read(ctx, func(st *state) error {
		for _, a := range st.attendances {
			if a.UserID == userID {
				owned = append(owned, cloneAttendance(a))
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	sortNewestFirst(owned, func(a attendance.Attendance) (time.Time, string) { return a.CheckIn, a.ID })
	return pagination.Slice(owned, params), int64(len(owned)), nil
}

func (r *attendanceRepository) Update(ctx context.Context, id string, update attendance.AttendanceUpdate) (attendance.Attendance, error) {
	var updated attendance.Attendance
	err := r.store.write(ctx, func(st *state) error {
		current, ok := st.attendances[id]
		if !ok {
			return attendance.ErrAttendanceNotFound
		}
		merged, err := current.Apply(update)
		if err != nil {
			return err
		}
		merged.UpdatedAt = r.store.now()
		st.attendances[id] = merged
		updated = merged
		return nil
	})
	if err != nil {
		return attendance.Attendance{}, err
	}
	return cloneAttendance(updated), nil
}

func (r *attendanceRepository) GetTodayByUserID(ctx context.Context, userID string, now time.Time) (*attendance.Attendance, error) {
	start := utils.StartOfDay(now)
	end := utils.NextDay(start)

	var latest *attendance.Attendance
	err := r.store.read(ctx, func(st *state) error {
		for _, a := range st.attendances {
			if a.UserID != userID || a.CheckIn.Before(start) || !a.CheckIn.Before(end) {
				continue
			}
			if latest == nil || a.CheckIn.After(latest.CheckIn) {
				c := cloneAttendance(a)
				latest = &c
			}
		}
		return nil
	})
	return latest, err
}

func (r *attendanceRepository) CountUsersCheckedIn(ctx context.Context, day time.Time) (int64, error) {
	start := utils.StartOfDay(day)
	end := utils.NextDay(start)

	users := map[string]struct{}{}
	err := r.store.read(ctx, func(st *state) error {
		for _, a := range st.attendances {
			if !a.CheckIn.Before(start) && a.CheckIn.Before(end) {
				users[a.UserID] = struct{}{}
			}
		}
		return nil
	})
	return int64(len(users)), err
}
