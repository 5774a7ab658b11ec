package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/workreport"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/money"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seeded struct {
	svc     *DashboardServiceImpl
	staff   context.Context
	admin   context.Context
	reports []workreport.WorkReport
}

func seed(t *testing.T) seeded {
	t.Helper()
	ctx := context.Background()

	start := time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local)
	tick := start
	store := memory.NewStore(memory.WithClock(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}))

	admin, err := store.Users().Create(ctx, user.User{Username: "admin", Email: "admin@example.com", Role: user.RoleAdmin})
	require.NoError(t, err)
	staff, err := store.Users().Create(ctx, user.User{Username: "staff", Email: "staff@example.com", Role: user.RoleStaff})
	require.NoError(t, err)

	_, err = store.Attendances().Create(ctx, attendance.Attendance{UserID: staff.ID, CheckIn: start.Add(time.Hour), Location: "HQ"})
	require.NoError(t, err)

	for i, amount := range []int64{500, 250} {
		_, err := store.Sales().Create(ctx, sale.Sale{
			InvoiceNumber: []string{"INV-20240315-AAAAA1", "INV-20240315-AAAAA2"}[i],
			UserID:        staff.ID,
			CustomerName:  "Acme",
			SaleDate:      start,
			TotalAmount:   decimal.NewFromInt(amount),
		})
		require.NoError(t, err)
	}

	var reports []workreport.WorkReport
	for _, title := range []string{"first", "second"} {
		r, err := store.WorkReports().Create(ctx, workreport.WorkReport{UserID: staff.ID, Title: title, Status: workreport.StatusSubmitted})
		require.NoError(t, err)
		reports = append(reports, r)
	}
	completed := workreport.StatusCompleted
	_, err = store.WorkReports().Update(ctx, reports[0].ID, workreport.WorkReportUpdate{Status: &completed})
	require.NoError(t, err)

	svc := NewDashboardService(
		store.Users(),
		store.Attendances(),
		store.Sales(),
		store.WorkReports(),
		money.NewFormatter("id", "Rp"),
		decimal.NewFromInt(1000),
	)
	svc.now = func() time.Time { return start.Add(4 * time.Hour) }

	return seeded{
		svc:     svc,
		staff:   auth.WithProfile(ctx, auth.ProfileFromUser(staff)),
		admin:   auth.WithProfile(ctx, auth.ProfileFromUser(admin)),
		reports: reports,
	}
}

func TestDashboardService_Stats(t *testing.T) {
	s := seed(t)

	stats, err := s.svc.Stats(s.staff)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", stats.Date)
	assert.Equal(t, 750.0, stats.TodaySalesAmount)
	assert.Contains(t, stats.TodaySales, "Rp")
	assert.Equal(t, int64(2), stats.TransactionCount)

	assert.Equal(t, dashboard.AttendanceStat{Present: 1, Total: 2, Rate: 50}, stats.Attendance)

	assert.Equal(t, 1000.0, stats.SalesTarget.Target)
	assert.Equal(t, 75.0, stats.SalesTarget.Progress)

	assert.Equal(t, dashboard.WorkCompleteStat{Completed: 1, Total: 2, Rate: 50}, stats.WorkCompleted)
}

func TestDashboardService_StatsProgressCapped(t *testing.T) {
	s := seed(t)
	s.svc.salesTarget = decimal.NewFromInt(100)

	stats, err := s.svc.Stats(s.admin)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stats.SalesTarget.Progress)
}

func TestDashboardService_StatsZeroTarget(t *testing.T) {
	s := seed(t)
	s.svc.salesTarget = decimal.Zero

	stats, err := s.svc.Stats(s.admin)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.SalesTarget.Progress)
}

func TestDashboardService_Activities(t *testing.T) {
	s := seed(t)

	first, err := s.svc.Activities(s.staff, pagination.New(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(5), first.TotalCount)
	require.Len(t, first.Activities, 2)
	assert.Equal(t, dashboard.ActivityAttendance, first.Activities[0].Type)
	assert.Equal(t, dashboard.ActivityReport, first.Activities[1].Type)
	assert.Equal(t, s.reports[1].ID, first.Activities[1].ID)

	second, err := s.svc.Activities(s.staff, pagination.New(2, 2))
	require.NoError(t, err)
	require.Len(t, second.Activities, 2)
	assert.Equal(t, s.reports[0].ID, second.Activities[0].ID)
	assert.Equal(t, dashboard.ActivitySale, second.Activities[1].Type)

	third, err := s.svc.Activities(s.staff, pagination.New(3, 2))
	require.NoError(t, err)
	require.Len(t, third.Activities, 1)
	assert.Equal(t, dashboard.ActivitySale, third.Activities[0].Type)

	empty, err := s.svc.Activities(s.admin, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.TotalCount)
	assert.Empty(t, empty.Activities)
}

func TestDashboardService_ActivitiesOversizedPage(t *testing.T) {
	s := seed(t)

	var (
		resp dashboard.ActivitiesResponse
		err  error
	)
	require.NotPanics(t, func() {
		resp, err = s.svc.Activities(s.staff, pagination.Params{Page: 4611686018427387905, Limit: 2})
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.TotalCount)
	assert.Empty(t, resp.Activities)
}

func TestDashboardService_Unauthenticated(t *testing.T) {
	s := seed(t)

	_, err := s.svc.Stats(context.Background())
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
}
