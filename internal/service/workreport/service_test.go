package workreport

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/workreport"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileContext(id string, role user.Role) context.Context {
	return auth.WithProfile(context.Background(), auth.Profile{ID: id, Username: id, Role: role})
}

func validRequest() workreport.CreateWorkReportRequest {
	return workreport.CreateWorkReportRequest{
		Title:      "Weekly summary",
		ReportType: "weekly",
		Department: "Sales",
		Tasks:      "Visited clients",
		Outcomes:   "Two new deals",
	}
}

func TestWorkReportService_CreateAndList(t *testing.T) {
	svc := NewWorkReportService(memory.NewStore().WorkReports())
	alice := profileContext("alice", user.RoleStaff)
	bob := profileContext("bob", user.RoleStaff)
	admin := profileContext("admin", user.RoleAdmin)

	created, err := svc.Create(alice, validRequest())
	require.NoError(t, err)
	assert.Equal(t, workreport.StatusSubmitted, created.Status)
	assert.Equal(t, "alice", created.UserID)

	_, err = svc.Create(bob, validRequest())
	require.NoError(t, err)

	mine, err := svc.List(alice, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine.TotalCount)

	all, err := svc.List(admin, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.TotalCount)

	_, err = svc.Get(bob, created.ID)
	assert.ErrorIs(t, err, workreport.ErrNotReportOwner)

	_, err = svc.Get(admin, "missing")
	assert.ErrorIs(t, err, workreport.ErrWorkReportNotFound)
}

func TestWorkReportService_CreateValidation(t *testing.T) {
	svc := NewWorkReportService(memory.NewStore().WorkReports())

	req := validRequest()
	req.Title = "  "
	req.Tasks = ""

	_, err := svc.Create(profileContext("alice", user.RoleStaff), req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "title")
	assert.Contains(t, verrs.ToMap(), "tasks")
}

func TestWorkReportService_CreateTrimsCategoryFields(t *testing.T) {
	svc := NewWorkReportService(memory.NewStore().WorkReports())
	alice := profileContext("alice", user.RoleStaff)

	blank := validRequest()
	blank.ReportType = "   "
	blank.Department = "\t\n"
	_, err := svc.Create(alice, blank)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "reportType")
	assert.Contains(t, verrs.ToMap(), "department")

	padded := validRequest()
	padded.ReportType = "  daily "
	padded.Department = " Sales  "
	created, err := svc.Create(alice, padded)
	require.NoError(t, err)
	assert.Equal(t, "daily", created.ReportType)
	assert.Equal(t, "Sales", created.Department)
}

func TestWorkReportService_UpdateRejectsBlankFields(t *testing.T) {
	svc := NewWorkReportService(memory.NewStore().WorkReports())
	alice := profileContext("alice", user.RoleStaff)

	created, err := svc.Create(alice, validRequest())
	require.NoError(t, err)

	for _, field := range []string{"title", "reportType", "department", "tasks", "outcomes"} {
		t.Run(field, func(t *testing.T) {
			blank := "   "
			req := workreport.UpdateWorkReportRequest{ID: created.ID}
			switch field {
			case "title":
				req.Title = &blank
			case "reportType":
				req.ReportType = &blank
			case "department":
				req.Department = &blank
			case "tasks":
				req.Tasks = &blank
			case "outcomes":
				req.Outcomes = &blank
			}

			_, err := svc.Update(alice, req)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, field+" must not be empty", verrs.ToMap()[field])
		})
	}

	got, err := svc.Get(alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Department, got.Department)

	title := "  Revised title  "
	updated, err := svc.Update(alice, workreport.UpdateWorkReportRequest{ID: created.ID, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Revised title", updated.Title)
}

func TestWorkReportService_Update(t *testing.T) {
	svc := NewWorkReportService(memory.NewStore().WorkReports())
	alice := profileContext("alice", user.RoleStaff)

	created, err := svc.Create(alice, validRequest())
	require.NoError(t, err)

	status := "completed"
	outcomes := "Three new deals"
	updated, err := svc.Update(alice, workreport.UpdateWorkReportRequest{ID: created.ID, Status: &status, Outcomes: &outcomes})
	require.NoError(t, err)
	assert.Equal(t, workreport.StatusCompleted, updated.Status)
	assert.Equal(t, "Three new deals", updated.Outcomes)
	assert.Equal(t, created.Title, updated.Title)

	bad := "archived"
	_, err = svc.Update(alice, workreport.UpdateWorkReportRequest{ID: created.ID, Status: &bad})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	_, err = svc.Update(profileContext("bob", user.RoleStaff), workreport.UpdateWorkReportRequest{ID: created.ID, Status: &status})
	assert.ErrorIs(t, err, workreport.ErrNotReportOwner)
}
