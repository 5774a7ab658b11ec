package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/workreport"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
)

type workReportRepository struct {
	store *Store
}

func cloneWorkReport(r workreport.WorkReport) workreport.WorkReport {
	r.Challenges = cloneString(r.Challenges)
	r.NextSteps = cloneString(r.NextSteps)
	return r
}

func (r *workReportRepository) GetByID(ctx context.Context, id string) (*workreport.WorkReport, error) {
	var found *workreport.WorkReport
	err := r.store.read(ctx, func(st *state) error {
		if report, ok := st.workReports[id]; ok {
			c := cloneWorkReport(report)
			found = &c
		}
		return nil
	})
	return found, err
}

func (r *workReportRepository) ListByUserID(ctx context.Context, userID string, params pagination.Params) ([]workreport.WorkReport, int64, error) {
	return r.list(ctx, func(report workreport.WorkReport) bool { return report.UserID == userID }, params)
}

func (r *workReportRepository) List(ctx context.Context, params pagination.Params) ([]workreport.WorkReport, int64, error) {
	return r.list(ctx, func(workreport.WorkReport) bool { return true }, params)
}

func (r *workReportRepository) list(ctx context.Context, match func(workreport.WorkReport) bool, params pagination.Params) ([]workreport.WorkReport, int64, error) {
	var matched []workreport.WorkReport
	err := r.store.read(ctx, func(st *state) error {
		for _, report := range st.workReports {
			if match(report) {
				matched = append(matched, cloneWorkReport(report))
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	sortNewestFirst(matched, func(report workreport.WorkReport) (time.Time, string) { return report.CreatedAt, report.ID })
	return pagination.Slice(matched, params), int64(len(matched)), nil
}

func (r *workReportRepository) Create(ctx context.Context, report workreport.WorkReport) (workreport.WorkReport, error) {
	var created workreport.WorkReport
	err := r.store.write(ctx, func(st *state) error {
		now := r.store.now()
		created = cloneWorkReport(report)
		created.ID = newID()
		if created.Status == "" {
			created.Status = workreport.StatusSubmitted
		}
		created.CreatedAt = now
		created.UpdatedAt = now
		st.workReports[created.ID] = created
		return nil
	})
	if err != nil {
		return workreport.WorkReport{}, err
	}
	return cloneWorkReport(created), nil
}

func (r *workReportRepository) Update(ctx context.Context, id string, update workreport.WorkReportUpdate) (workreport.WorkReport, error) {
	var updated workreport.WorkReport
	err := r.store.write(ctx, func(st *state) error {
		current, ok := st.workReports[id]
		if !ok {
			return workreport.ErrWorkReportNotFound
		}
		merged := current.Apply(update)
		merged.UpdatedAt = r.store.now()
		st.workReports[id] = merged
		updated = merged
		return nil
	})
	if err != nil {
		return workreport.WorkReport{}, err
	}
	return cloneWorkReport(updated), nil
}

func (r *workReportRepository) CountByStatus(ctx context.Context, userID *string) (workreport.StatusCounts, error) {
	counts := workreport.StatusCounts{}
	err := r.store.read(ctx, func(st *state) error {
		for _, report := range st.workReports {
			if userID != nil && report.UserID != *userID {
				continue
			}
			counts[report.Status]++
		}
		return nil
	})
	return counts, err
}
