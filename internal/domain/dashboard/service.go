package dashboard

import (
	"context"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// Stats computes today's figures concurrently
	Stats(ctx context.Context) (StatsResponse, error)

	// Activities returns the caller's attendance, sales and reports merged newest first
	Activities(ctx context.Context, params pagination.Params) (ActivitiesResponse, error)
}
