package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/repository"
)

const (
	statusCheckedIn  = "checked_in"
	statusCheckedOut = "checked_out"
)

type AttendanceServiceImpl struct {
	tx repository.Transactor
	attendance.AttendanceRepository
	location string
	now      func() time.Time
}

func NewAttendanceService(tx repository.Transactor, repo attendance.AttendanceRepository, location string) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: repo,
		location:             location,
		now:                  time.Now,
	}
}

// Record implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.RecordAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	if req.AttendanceType == attendance.TypeCheckIn {
		return a.CheckIn(ctx, req.Note)
	}
	return a.CheckOut(ctx, req.Note)
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, note *string) (attendance.RecordAttendanceResponse, error) {
	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}
	now := a.now()

	var created attendance.Attendance
	err = a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := a.AttendanceRepository.LockUser(ctx, profile.ID); err != nil {
			return err
		}

		today, err := a.AttendanceRepository.GetTodayByUserID(ctx, profile.ID, now)
		if err != nil {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}
		if today != nil {
			return attendance.ErrAlreadyCheckedIn
		}

		created, err = a.AttendanceRepository.Create(ctx, attendance.Attendance{
			UserID:   profile.ID,
			CheckIn:  now,
			Location: a.location,
			Note:     nonEmpty(note),
		})
		if err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	return attendance.RecordAttendanceResponse{
		Message:    "Checked in successfully",
		Attendance: mapAttendanceToResponse(created),
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, note *string) (attendance.RecordAttendanceResponse, error) {
	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}
	now := a.now()

	var updated attendance.Attendance
	err = a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := a.AttendanceRepository.LockUser(ctx, profile.ID); err != nil {
			return err
		}

		today, err := a.AttendanceRepository.GetTodayByUserID(ctx, profile.ID, now)
		if err != nil {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}
		if today == nil {
			return attendance.ErrNotCheckedIn
		}
		if today.IsCheckedOut() {
			return attendance.ErrAlreadyCheckedOut
		}

		update := attendance.AttendanceUpdate{CheckOut: &now}
		if note != nil && *note != "" {
			merged := attendance.AppendNote(today.Note, *note)
			update.Note = &merged
		}

		updated, err = a.AttendanceRepository.Update(ctx, today.ID, update)
		if err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	resp := mapAttendanceToResponse(updated)
	return attendance.RecordAttendanceResponse{
		Message:      "Checked out successfully",
		Attendance:   resp,
		WorkingHours: resp.WorkingHours,
	}, nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (attendance.TodayAttendanceResponse, error) {
	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return attendance.TodayAttendanceResponse{}, err
	}

	today, err := a.AttendanceRepository.GetTodayByUserID(ctx, profile.ID, a.now())
	if err != nil {
		return attendance.TodayAttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if today == nil {
		return attendance.TodayAttendanceResponse{}, nil
	}

	resp := mapAttendanceToResponse(*today)
	return attendance.TodayAttendanceResponse{
		Attendance:    &resp,
		HasCheckedIn:  true,
		HasCheckedOut: today.IsCheckedOut(),
	}, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, params pagination.Params) (attendance.ListAttendanceResponse, error) {
	params = pagination.New(params.Page, params.Limit)

	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.ListByUserID(ctx, profile.ID, params)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		Attendances: make([]attendance.AttendanceResponse, 0, len(records)),
		TotalCount:  total,
		Page:        params.Page,
		Limit:       params.Limit,
	}
	for _, record := range records {
		resp.Attendances = append(resp.Attendances, mapAttendanceToResponse(record))
	}
	return resp, nil
}

// Location implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Location(ctx context.Context) attendance.LocationResponse {
	return attendance.LocationResponse{Location: a.location}
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           att.ID,
		Date:         att.CheckIn.Format(utils.DateLayout),
		CheckInTime:  att.CheckIn.Format(time.RFC3339),
		CheckOutTime: utils.FormatTimePtr(att.CheckOut),
		Location:     att.Location,
		Note:         att.Note,
		Status:       statusCheckedIn,
	}
	if att.CheckOut != nil {
		hours := attendance.FormatWorkingHours(att.CheckIn, *att.CheckOut)
		resp.WorkingHours = &hours
		resp.Status = statusCheckedOut
	}
	return resp
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
