package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/workreport"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/jackc/pgx/v5"
)

type workReportRepositoryImpl struct {
	db *database.DB
}

func NewWorkReportRepository(db *database.DB) workreport.WorkReportRepository {
	return &workReportRepositoryImpl{db: db}
}

const workReportColumns = `id, user_id, title, report_type, department, tasks, outcomes,
	challenges, next_steps, status, created_at, updated_at`

func scanWorkReport(row pgx.Row) (workreport.WorkReport, error) {
	var r workreport.WorkReport
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.Title,
		&r.ReportType,
		&r.Department,
		&r.Tasks,
		&r.Outcomes,
		&r.Challenges,
		&r.NextSteps,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

// GetByID implements workreport.WorkReportRepository.
func (r *workReportRepositoryImpl) GetByID(ctx context.Context, id string) (*workreport.WorkReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workReportColumns + ` FROM work_reports WHERE id = $1`

	report, err := scanWorkReport(q.QueryRow(ctx, query, id))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get work report by id: %w", err)
	}
	return &report, nil
}

// ListByUserID implements workreport.WorkReportRepository.
func (r *workReportRepositoryImpl) ListByUserID(ctx context.Context, userID string, params pagination.Params) ([]workreport.WorkReport, int64, error) {
	return r.list(ctx, &userID, params)
}

// List implements workreport.WorkReportRepository.
func (r *workReportRepositoryImpl) List(ctx context.Context, params pagination.Params) ([]workreport.WorkReport, int64, error) {
	return r.list(ctx, nil, params)
}

func (r *workReportRepositoryImpl) list(ctx context.Context, userID *string, params pagination.Params) ([]workreport.WorkReport, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := ""
	args := []interface{}{}
	if userID != nil {
		whereClause = "WHERE user_id = $1"
		args = append(args, *userID)
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM work_reports `+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work reports: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM work_reports
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, workReportColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work reports: %w", err)
	}
	defer rows.Close()

	reports := make([]workreport.WorkReport, 0, params.Limit)
	for rows.Next() {
		report, err := scanWorkReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan work report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate work reports: %w", err)
	}

	return reports, total, nil
}

// Create implements workreport.WorkReportRepository.
func (r *workReportRepositoryImpl) Create(ctx context.Context, report workreport.WorkReport) (workreport.WorkReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_reports (
			user_id, title, report_type, department, tasks, outcomes, challenges, next_steps, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + workReportColumns

	created, err := scanWorkReport(q.QueryRow(ctx, query,
		report.UserID,
		report.Title,
		report.ReportType,
		report.Department,
		report.Tasks,
		report.Outcomes,
		report.Challenges,
		report.NextSteps,
		report.Status,
	))
	if err != nil {
		return workreport.WorkReport{}, fmt.Errorf("failed to create work report: %w", err)
	}
	return created, nil
}

// Update implements workreport.WorkReportRepository.
func (r *workReportRepositoryImpl) Update(ctx context.Context, id string, update workreport.WorkReportUpdate) (workreport.WorkReport, error) {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0, 9)
	args := make([]interface{}, 0, 9)
	argIdx := 1

	set := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if update.Title != nil {
		set("title", *update.Title)
	}
	if update.ReportType != nil {
		set("report_type", *update.ReportType)
	}
	if update.Department != nil {
		set("department", *update.Department)
	}
	if update.Tasks != nil {
		set("tasks", *update.Tasks)
	}
	if update.Outcomes != nil {
		set("outcomes", *update.Outcomes)
	}
	if update.Challenges != nil {
		set("challenges", *update.Challenges)
	}
	if update.NextSteps != nil {
		set("next_steps", *update.NextSteps)
	}
	if update.Status != nil {
		set("status", *update.Status)
	}
	updates = append(updates, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE work_reports
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(updates, ", "), argIdx, workReportColumns)

	updated, err := scanWorkReport(q.QueryRow(ctx, query, args...))
	if err != nil {
		if notFound(err) {
			return workreport.WorkReport{}, workreport.ErrWorkReportNotFound
		}
		return workreport.WorkReport{}, fmt.Errorf("failed to update work report: %w", err)
	}
	return updated, nil
}

// CountByStatus implements workreport.WorkReportRepository.
func (r *workReportRepositoryImpl) CountByStatus(ctx context.Context, userID *string) (workreport.StatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT status, COUNT(*) FROM work_reports`
	args := []interface{}{}
	if userID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}
	query += ` GROUP BY status`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count work reports by status: %w", err)
	}
	defer rows.Close()

	counts := workreport.StatusCounts{}
	for rows.Next() {
		var status workreport.Status
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status counts: %w", err)
	}

	return counts, nil
}
