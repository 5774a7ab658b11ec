package workreport

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/validator"
)

// ========================================
// WORK REPORT DTOs
// ========================================

type CreateWorkReportRequest struct {
	Title      string  `json:"title" validate:"required,max=255"`
	ReportType string  `json:"reportType" validate:"required,max=50"`
	Department string  `json:"department" validate:"required,max=100"`
	Tasks      string  `json:"tasks" validate:"required"`
	Outcomes   string  `json:"outcomes" validate:"required"`
	Challenges *string `json:"challenges,omitempty"`
	NextSteps  *string `json:"nextSteps,omitempty"`
}

func (r *CreateWorkReportRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.ReportType = strings.TrimSpace(r.ReportType)
	r.Department = strings.TrimSpace(r.Department)
	r.Tasks = strings.TrimSpace(r.Tasks)
	r.Outcomes = strings.TrimSpace(r.Outcomes)

	if errs := validator.Struct(r); len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkReportRequest struct {
	ID         string  `json:"-"`
	Title      *string `json:"title,omitempty" validate:"omitempty,max=255"`
	ReportType *string `json:"reportType,omitempty" validate:"omitempty,max=50"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Tasks      *string `json:"tasks,omitempty"`
	Outcomes   *string `json:"outcomes,omitempty"`
	Challenges *string `json:"challenges,omitempty"`
	NextSteps  *string `json:"nextSteps,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// Validate trims the text fields that are present; a present field must not be blank.
func (r *UpdateWorkReportRequest) Validate() error {
	required := []struct {
		field string
		value *string
	}{
		{"title", r.Title},
		{"reportType", r.ReportType},
		{"department", r.Department},
		{"tasks", r.Tasks},
		{"outcomes", r.Outcomes},
	}

	var errs validator.ValidationErrors
	for _, f := range required {
		if f.value == nil {
			continue
		}
		if validator.IsEmpty(*f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.field,
				Message: f.field + " must not be empty",
			})
			continue
		}
		*f.value = strings.TrimSpace(*f.value)
	}
	errs = append(errs, validator.Struct(r)...)

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(Statuses, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToUpdate converts the request into a repository update.
func (r UpdateWorkReportRequest) ToUpdate() WorkReportUpdate {
	u := WorkReportUpdate{
		Title:      r.Title,
		ReportType: r.ReportType,
		Department: r.Department,
		Tasks:      r.Tasks,
		Outcomes:   r.Outcomes,
		Challenges: r.Challenges,
		NextSteps:  r.NextSteps,
	}
	if r.Status != nil {
		s := Status(*r.Status)
		u.Status = &s
	}
	return u
}

type WorkReportResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	Title      string  `json:"title"`
	ReportType string  `json:"reportType"`
	Department string  `json:"department"`
	Tasks      string  `json:"tasks"`
	Outcomes   string  `json:"outcomes"`
	Challenges *string `json:"challenges"`
	NextSteps  *string `json:"nextSteps"`
	Status     Status  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

type ListWorkReportResponse struct {
	Reports    []WorkReportResponse `json:"reports"`
	TotalCount int64                `json:"totalCount"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

type WorkReportService interface {
	// Create stores a report with status "submitted"
	Create(ctx context.Context, req CreateWorkReportRequest) (WorkReportResponse, error)

	// List returns reports newest first; admins see everyone's
	List(ctx context.Context, params pagination.Params) (ListWorkReportResponse, error)

	Get(ctx context.Context, id string) (WorkReportResponse, error)

	// Update applies a partial update; owners and admins only
	Update(ctx context.Context, req UpdateWorkReportRequest) (WorkReportResponse, error)
}
