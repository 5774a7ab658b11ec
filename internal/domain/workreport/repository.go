package workreport

import (
	"context"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
)

type WorkReportRepository interface {
	// GetByID returns nil when the report does not exist
	GetByID(ctx context.Context, id string) (*WorkReport, error)

	// ListByUserID returns a page of the user's reports, newest first, plus the total count
	ListByUserID(ctx context.Context, userID string, params pagination.Params) ([]WorkReport, int64, error)

	// List returns a page of all reports, newest first, plus the total count
	List(ctx context.Context, params pagination.Params) ([]WorkReport, int64, error)

	Create(ctx context.Context, report WorkReport) (WorkReport, error)

	// Update merges the non-nil fields; fails with ErrWorkReportNotFound
	Update(ctx context.Context, id string, update WorkReportUpdate) (WorkReport, error)

	// CountByStatus counts reports per status, restricted to userID when non-nil
	CountByStatus(ctx context.Context, userID *string) (StatusCounts, error)
}
