package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/workreport"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/money"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	users       user.UserRepository
	attendances attendance.AttendanceRepository
	sales       sale.SaleRepository
	reports     workreport.WorkReportRepository
	formatter   *money.Formatter
	salesTarget decimal.Decimal
	now         func() time.Time
}

func NewDashboardService(
	users user.UserRepository,
	attendances attendance.AttendanceRepository,
	sales sale.SaleRepository,
	reports workreport.WorkReportRepository,
	formatter *money.Formatter,
	salesTarget decimal.Decimal,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		users:       users,
		attendances: attendances,
		sales:       sales,
		reports:     reports,
		formatter:   formatter,
		salesTarget: salesTarget,
		now:         time.Now,
	}
}

// percent returns part/whole*100 rounded to two places, 0 when whole is 0.
func percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

// Stats implements dashboard.DashboardService.
// Four independent lookups run in parallel goroutines.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.StatsResponse, error) {
	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	now := s.now()

	var (
		totals       sale.DailyTotals
		totalUsers   int64
		checkedIn    int64
		reportCounts workreport.StatusCounts
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Today's sales
	g.Go(func() error {
		t, err := s.sales.GetDailyTotals(gCtx, now)
		if err != nil {
			return fmt.Errorf("failed to get daily totals: %w", err)
		}
		totals = t
		return nil
	})

	// 2. Headcount
	g.Go(func() error {
		n, err := s.users.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		totalUsers = n
		return nil
	})

	// 3. Checked in today
	g.Go(func() error {
		n, err := s.attendances.CountUsersCheckedIn(gCtx, now)
		if err != nil {
			return fmt.Errorf("failed to count checked-in users: %w", err)
		}
		checkedIn = n
		return nil
	})

	// 4. Work reports; staff only see their own
	g.Go(func() error {
		var owner *string
		if !profile.IsAdmin() {
			owner = &profile.ID
		}
		counts, err := s.reports.CountByStatus(gCtx, owner)
		if err != nil {
			return fmt.Errorf("failed to count work reports: %w", err)
		}
		reportCounts = counts
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.StatsResponse{}, err
	}

	completed := reportCounts[workreport.StatusCompleted]
	totalReports := reportCounts.Total()

	progress := percent(totals.TotalSales, s.salesTarget)
	if progress > 100 {
		progress = 100
	}

	return dashboard.StatsResponse{
		Date:             utils.StartOfDay(now).Format(utils.DateLayout),
		TodaySales:       s.formatter.Format(totals.TotalSales),
		TodaySalesAmount: totals.TotalSales.InexactFloat64(),
		TransactionCount: totals.Count,
		Attendance: dashboard.AttendanceStat{
			Present: checkedIn,
			Total:   totalUsers,
			Rate:    percent(decimal.NewFromInt(checkedIn), decimal.NewFromInt(totalUsers)),
		},
		SalesTarget: dashboard.SalesTargetStat{
			Target:    s.salesTarget.InexactFloat64(),
			Formatted: s.formatter.Format(s.salesTarget),
			Achieved:  totals.TotalSales.InexactFloat64(),
			Progress:  progress,
		},
		WorkCompleted: dashboard.WorkCompleteStat{
			Completed: completed,
			Total:     totalReports,
			Rate:      percent(decimal.NewFromInt(completed), decimal.NewFromInt(totalReports)),
		},
	}, nil
}

type activity struct {
	item dashboard.ActivityItem
	at   time.Time
}

// Activities implements dashboard.DashboardService.
// Each source is read up to page*limit rows, so the merged window is exact.
func (s *DashboardServiceImpl) Activities(ctx context.Context, params pagination.Params) (dashboard.ActivitiesResponse, error) {
	params = pagination.New(params.Page, params.Limit)

	profile, err := auth.MustProfile(ctx)
	if err != nil {
		return dashboard.ActivitiesResponse{}, err
	}

	window := pagination.Params{Page: 1, Limit: params.End()}

	var (
		attendances []attendance.Attendance
		sales       []sale.Sale
		reports     []workreport.WorkReport
		counts      [3]int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		attendances, counts[0], err = s.attendances.ListByUserID(gCtx, profile.ID, window)
		return err
	})
	g.Go(func() error {
		var err error
		sales, counts[1], err = s.sales.ListByUserID(gCtx, profile.ID, window)
		return err
	})
	g.Go(func() error {
		var err error
		reports, counts[2], err = s.reports.ListByUserID(gCtx, profile.ID, window)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.ActivitiesResponse{}, fmt.Errorf("failed to load activities: %w", err)
	}

	merged := make([]activity, 0, len(attendances)+len(sales)+len(reports))
	for _, a := range attendances {
		merged = append(merged, attendanceActivity(a))
	}
	for _, sl := range sales {
		merged = append(merged, s.saleActivity(sl))
	}
	for _, r := range reports {
		merged = append(merged, reportActivity(r))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].at.After(merged[j].at)
	})

	page := pagination.Slice(merged, params)
	resp := dashboard.ActivitiesResponse{
		Activities: make([]dashboard.ActivityItem, 0, len(page)),
		TotalCount: counts[0] + counts[1] + counts[2],
		Page:       params.Page,
		Limit:      params.Limit,
	}
	for _, a := range page {
		resp.Activities = append(resp.Activities, a.item)
	}
	return resp, nil
}

func attendanceActivity(a attendance.Attendance) activity {
	item := dashboard.ActivityItem{
		ID:          a.ID,
		Type:        dashboard.ActivityAttendance,
		Title:       "Checked in",
		Description: a.Location,
		Status:      "checked_in",
		Timestamp:   a.CheckIn.Format(time.RFC3339),
	}
	if a.CheckOut != nil {
		item.Title = "Checked out"
		item.Description = fmt.Sprintf("%s, worked %s", a.Location, attendance.FormatWorkingHours(a.CheckIn, *a.CheckOut))
		item.Status = "checked_out"
	}
	return activity{item: item, at: a.CheckIn}
}

func (s *DashboardServiceImpl) saleActivity(sl sale.Sale) activity {
	return activity{
		item: dashboard.ActivityItem{
			ID:          sl.ID,
			Type:        dashboard.ActivitySale,
			Title:       "Sale " + sl.InvoiceNumber,
			Description: fmt.Sprintf("%s, %s", sl.CustomerName, s.formatter.Format(sl.TotalAmount)),
			Status:      string(sl.Status),
			Timestamp:   sl.CreatedAt.Format(time.RFC3339),
		},
		at: sl.CreatedAt,
	}
}

func reportActivity(r workreport.WorkReport) activity {
	return activity{
		item: dashboard.ActivityItem{
			ID:          r.ID,
			Type:        dashboard.ActivityReport,
			Title:       r.Title,
			Description: fmt.Sprintf("%s report, %s", r.ReportType, r.Department),
			Status:      string(r.Status),
			Timestamp:   r.CreatedAt.Format(time.RFC3339),
		},
		at: r.CreatedAt,
	}
}
