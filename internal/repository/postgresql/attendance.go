package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/utils"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, check_in, check_out, location, note, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.CheckIn, &att.CheckOut,
		&att.Location, &att.Note, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (user_id, check_in, check_out, location, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		newAttendance.UserID,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		newAttendance.Location,
		newAttendance.Note,
	))
	if err != nil {
		if _, ok := constraintViolation(err, codeCheckViolation); ok {
			return attendance.Attendance{}, attendance.ErrInvalidCheckOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by id: %w", err)
	}
	return &att, nil
}

// ListByUserID implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUserID(ctx context.Context, userID string, params pagination.Params) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		ORDER BY check_in DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, userID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	attendances := make([]attendance.Attendance, 0, params.Limit)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, total, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, id string, update attendance.AttendanceUpdate) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	updates := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)
	argIdx := 1

	if update.CheckOut != nil {
		updates = append(updates, fmt.Sprintf("check_out = $%d", argIdx))
		args = append(args, *update.CheckOut)
		argIdx++
	}
	if update.Location != nil {
		updates = append(updates, fmt.Sprintf("location = $%d", argIdx))
		args = append(args, *update.Location)
		argIdx++
	}
	if update.Note != nil {
		updates = append(updates, fmt.Sprintf("note = $%d", argIdx))
		args = append(args, *update.Note)
		argIdx++
	}
	updates = append(updates, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE attendances
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(updates, ", "), argIdx, attendanceColumns)

	updated, err := scanAttendance(q.QueryRow(ctx, query, args...))
	if err != nil {
		if notFound(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		if _, ok := constraintViolation(err, codeCheckViolation); ok {
			return attendance.Attendance{}, attendance.ErrInvalidCheckOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return updated, nil
}

// LockUser implements attendance.AttendanceRepository.
// The advisory lock is released on commit or rollback, so it only holds inside WithTransaction.
func (a *attendanceRepository) LockUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, a.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('attendance:' || $1::text))`, userID); err != nil {
		return fmt.Errorf("failed to lock attendance for user: %w", err)
	}
	return nil
}

// GetTodayByUserID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetTodayByUserID(ctx context.Context, userID string, now time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	start := utils.StartOfDay(now)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		  AND check_in >= $2
		  AND check_in < $3
		ORDER BY check_in DESC
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, start, utils.NextDay(start)))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	return &att, nil
}

// CountUsersCheckedIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountUsersCheckedIn(ctx context.Context, day time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	start := utils.StartOfDay(day)

	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM attendances
		WHERE check_in >= $1 AND check_in < $2
	`

	var count int64
	if err := q.QueryRow(ctx, query, start, utils.NextDay(start)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count checked-in users: %w", err)
	}
	return count, nil
}
