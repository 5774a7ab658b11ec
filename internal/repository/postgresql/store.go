package postgresql

import (
	"context"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/product"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/sale"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/workreport"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/repository"
)

// Store is the PostgreSQL-backed repository.Store.
type Store struct {
	db *database.DB

	users       user.UserRepository
	attendances attendance.AttendanceRepository
	sales       sale.SaleRepository
	products    product.ProductRepository
	workReports workreport.WorkReportRepository
}

var _ repository.Store = (*Store)(nil)

func NewStore(db *database.DB) *Store {
	return &Store{
		db:          db,
		users:       NewUserRepository(db),
		attendances: NewAttendanceRepository(db),
		sales:       NewSaleRepository(db),
		products:    NewProductRepository(db),
		workReports: NewWorkReportRepository(db),
	}
}

func (s *Store) Users() user.UserRepository                   { return s.users }
func (s *Store) Attendances() attendance.AttendanceRepository { return s.attendances }
func (s *Store) Sales() sale.SaleRepository                   { return s.sales }
func (s *Store) Products() product.ProductRepository          { return s.products }
func (s *Store) WorkReports() workreport.WorkReportRepository { return s.workReports }

func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, s.db, fn)
}

func (s *Store) Close() {
	s.db.Close()
}
