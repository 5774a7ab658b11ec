package workreport

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/workreport"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
)

type WorkReportServiceImpl struct {
	workreport.WorkReportRepository
}

func NewWorkReportService(repo workreport.WorkReportRepository) workreport.WorkReportService {
	return &WorkReportServiceImpl{WorkReportRepository: repo}
}

// Create implements workreport.WorkReportService.
func (s *WorkReportServiceImpl) Create(ctx context.Context, req workreport.CreateWorkReportRequest) (workreport.WorkReportResponse, error) {
	if err := req.Validate(); err != nil {
		return workreport.WorkReportResponse{}, err
	}

	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return workreport.WorkReportResponse{}, err
	}

	created, err := s.WorkReportRepository.Create(ctx, workreport.WorkReport{
		UserID:     profile.ID,
		Title:      req.Title,
		ReportType: req.ReportType,
		Department: req.Department,
		Tasks:      req.Tasks,
		Outcomes:   req.Outcomes,
		Challenges: req.Challenges,
		NextSteps:  req.NextSteps,
		Status:     workreport.StatusSubmitted,
	})
	if err != nil {
		return workreport.WorkReportResponse{}, fmt.Errorf("failed to create work report: %w", err)
	}

	return toWorkReportResponse(created), nil
}

// List implements workreport.WorkReportService.
func (s *WorkReportServiceImpl) List(ctx context.Context, params pagination.Params) (workreport.ListWorkReportResponse, error) {
	params = pagination.New(params.Page, params.Limit)

	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return workreport.ListWorkReportResponse{}, err
	}

	var (
		reports []workreport.WorkReport
		total   int64
	)
	if profile.IsAdmin() {
		reports, total, err = s.WorkReportRepository.List(ctx, params)
	} else {
		reports, total, err = s.WorkReportRepository.ListByUserID(ctx, profile.ID, params)
	}
	if err != nil {
		return workreport.ListWorkReportResponse{}, fmt.Errorf("failed to list work reports: %w", err)
	}

	resp := workreport.ListWorkReportResponse{
		Reports:    make([]workreport.WorkReportResponse, 0, len(reports)),
		TotalCount: total,
		Page:       params.Page,
		Limit:      params.Limit,
	}
	for _, r := range reports {
		resp.Reports = append(resp.Reports, toWorkReportResponse(r))
	}
	return resp, nil
}

// Get implements workreport.WorkReportService.
func (s *WorkReportServiceImpl) Get(ctx context.Context, id string) (workreport.WorkReportResponse, error) {
	report, err := s.getOwned(ctx, id)
	if err != nil {
		return workreport.WorkReportResponse{}, err
	}
	return toWorkReportResponse(*report), nil
}

// Update implements workreport.WorkReportService.
func (s *WorkReportServiceImpl) Update(ctx context.Context, req workreport.UpdateWorkReportRequest) (workreport.WorkReportResponse, error) {
	if err := req.Validate(); err != nil {
		return workreport.WorkReportResponse{}, err
	}

	if _, err := s.getOwned(ctx, req.ID); err != nil {
		return workreport.WorkReportResponse{}, err
	}

	updated, err := s.WorkReportRepository.Update(ctx, req.ID, req.ToUpdate())
	if err != nil {
		return workreport.WorkReportResponse{}, err
	}
	return toWorkReportResponse(updated), nil
}

// getOwned loads a report the caller may access: their own, or any for admins.
func (s *WorkReportServiceImpl) getOwned(ctx context.Context, id string) (*workreport.WorkReport, error) {
	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return nil, err
	}

	report, err := s.WorkReportRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get work report: %w", err)
	}
	if report == nil {
		return nil, workreport.ErrWorkReportNotFound
	}
	if !profile.IsAdmin() && report.UserID != profile.ID {
		return nil, workreport.ErrNotReportOwner
	}
	return report, nil
}

func toWorkReportResponse(r workreport.WorkReport) workreport.WorkReportResponse {
	return workreport.WorkReportResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		Title:      r.Title,
		ReportType: r.ReportType,
		Department: r.Department,
		Tasks:      r.Tasks,
		Outcomes:   r.Outcomes,
		Challenges: r.Challenges,
		NextSteps:  r.NextSteps,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
}
