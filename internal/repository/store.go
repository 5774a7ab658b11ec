package repository

import (
	"context"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/product"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/workreport"
)

// Transactor runs fn in a single unit of work. Repository calls made with the
// ctx passed to fn join the unit; a non-nil error from fn rolls it back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store is the persistence accessor shared by every service. The PostgreSQL
// and in-memory implementations are interchangeable.
type Store interface {
	Transactor

	Users() user.UserRepository
	Attendances() attendance.AttendanceRepository
	Sales() sale.SaleRepository
	Products() product.ProductRepository
	WorkReports() workreport.WorkReportRepository

	Close()
}
